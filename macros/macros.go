package macros

import (
	"bytes"
	"text/template"
)

// EndpointTemplateParams specifies the macros the endpoint template may
// reference. The destination URL carries the publisher account in its path,
// so PublisherID is the only macro today.
type EndpointTemplateParams struct {
	PublisherID string
}

// ResolveMacros resolves macros in the given template with the provided params.
func ResolveMacros(aTemplate *template.Template, params interface{}) (string, error) {
	strBuf := bytes.Buffer{}

	err := aTemplate.Execute(&strBuf, params)
	if err != nil {
		return "", err
	}

	return strBuf.String(), nil
}
