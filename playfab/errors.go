package playfab

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// PreconditionError is returned when a call cannot be dispatched because local state is missing.
// No network I/O happens before it is returned.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "playfab: " + e.Reason
}

var (
	ErrTitleIDNotSet            = &PreconditionError{Reason: "title id must be set in settings to form a request url"}
	ErrSessionTicketNotSet      = &PreconditionError{Reason: "must be logged in to call this method"}
	ErrEntityTokenNotSet        = &PreconditionError{Reason: "must call GetEntityToken before calling this method"}
	ErrDeveloperSecretKeyNotSet = &PreconditionError{Reason: "developer secret key must be set in settings to call this method"}

	ErrOverrideType = errors.New("playfab: override fields must have the request record type")
)

// ValidationError reports request fields that failed validation before dispatch.
type ValidationError struct {
	Endpoint string
	Fields   validator.ValidationErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, fmt.Sprintf("%s (%s)", f.Namespace(), f.Tag()))
	}
	return fmt.Sprintf("playfab: invalid %s request: %s", e.Endpoint, strings.Join(names, ", "))
}

// APIError is the structured error returned by the service.
type APIError struct {
	HTTPCode     int                 `json:"code"`
	HTTPStatus   string              `json:"status"`
	ErrorName    string              `json:"error"`
	ErrorCode    int                 `json:"errorCode"`
	ErrorMessage string              `json:"errorMessage"`
	ErrorDetails map[string][]string `json:"errorDetails,omitempty"`

	// Path is the endpoint path the error was returned for.
	Path string `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("playfab: %s returned %d %s: %s", e.Path, e.HTTPCode, e.ErrorName, e.ErrorMessage)
}

// IsLocal reports whether err was produced without contacting the service.
func IsLocal(err error) bool {
	var pre *PreconditionError
	var val *ValidationError
	return errors.As(err, &pre) || errors.As(err, &val) || errors.Is(err, ErrOverrideType)
}

// AsAPIError unwraps err into an *APIError when it carries one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
