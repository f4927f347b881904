package macros

import (
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
)

func TestResolveMacros(t *testing.T) {
	endpointTemplate := template.Must(template.New("endpointTemplate").Parse("https://rtb.vidlane.com/hb/{{.PublisherID}}"))

	url, err := ResolveMacros(endpointTemplate, EndpointTemplateParams{PublisherID: "pub42"})
	assert.NoError(t, err)
	assert.Equal(t, "https://rtb.vidlane.com/hb/pub42", url)
}

func TestResolveMacrosUnknownParams(t *testing.T) {
	endpointTemplate := template.Must(template.New("endpointTemplate").Parse("https://rtb.vidlane.com/hb/{{.NotAMacro}}"))

	url, err := ResolveMacros(endpointTemplate, EndpointTemplateParams{PublisherID: "pub42"})
	assert.Error(t, err)
	assert.Empty(t, url)
}
