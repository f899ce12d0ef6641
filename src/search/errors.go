package search

import (
	"github.com/bilibili-mcp/go-bilibili-mcp/src/json"
)

// ErrorCode is the code carried by every ErrorResult.
const ErrorCode = -1

// ErrorResult is the payload returned instead of a search result when the
// arguments cannot be translated or the delegated call fails.
type ErrorResult struct {
	Code    int
	Message string
	// Field names the list of accepted values, e.g. "valid_types". Empty
	// when the error carries no list.
	Field string
	Valid []string
}

// NewErrorResult returns an ErrorResult without a list of accepted values.
func NewErrorResult(message string) *ErrorResult {
	return &ErrorResult{Code: ErrorCode, Message: message}
}

func (e *ErrorResult) Error() string { return e.Message }

// Map returns the wire shape {code, message, valid_*}.
func (e *ErrorResult) Map() map[string]any {
	m := map[string]any{
		"code":    e.Code,
		"message": e.Message,
	}
	if e.Field != "" {
		valid := e.Valid
		if valid == nil {
			valid = []string{}
		}
		m[e.Field] = valid
	}
	return m
}

func (e *ErrorResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Map())
}
