package model

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ErrorKind classifies a failed action so the presentation layer can render it.
type ErrorKind string

const (
	KindNone             ErrorKind = ""
	KindProviderAbsent   ErrorKind = "provider_absent"
	KindProviderRejected ErrorKind = "provider_rejected"
	KindCallFailed       ErrorKind = "call_failed"
	KindConversion       ErrorKind = "conversion"
	KindPrecondition     ErrorKind = "precondition"
	KindBusy             ErrorKind = "busy"
)
