package errortypes

// BadInput should be used for errors caused by the host handing the adapter a
// bid request it cannot translate. The request is never sent to the demand
// endpoint.
type BadInput struct {
	Message string
}

func (err *BadInput) Error() string {
	return err.Message
}

func (err *BadInput) Code() int {
	return BadInputErrorCode
}

func (err *BadInput) Severity() Severity {
	return SeverityFatal
}

// BadServerResponse should be used when the demand endpoint returns a
// response the interpreter cannot accept: a non-2xx status, a body that is
// not valid JSON, or a seat/bid layout outside the single-seat single-bid
// contract. The affected request degrades to "no bid"; sibling requests are
// unaffected.
type BadServerResponse struct {
	Message string
}

func (err *BadServerResponse) Error() string {
	return err.Message
}

func (err *BadServerResponse) Code() int {
	return BadServerResponseErrorCode
}

func (err *BadServerResponse) Severity() Severity {
	return SeverityFatal
}

// Warning is a generic non-fatal error: the request was still translated,
// but invalid or ambiguous input was ignored along the way.
type Warning struct {
	Message     string
	WarningCode int
}

func (err *Warning) Error() string {
	return err.Message
}

func (err *Warning) Code() int {
	return err.WarningCode
}

func (err *Warning) Severity() Severity {
	return SeverityWarning
}
