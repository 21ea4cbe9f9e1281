package bridge

import "github.com/heroiclabs/nakama-common/runtime"

const (
	// INVALID_ARGUMENT_ERROR_CODE represents an error for invalid input arguments.
	INVALID_ARGUMENT_ERROR_CODE = 3
	// NOT_FOUND_ERROR_CODE represents an error for a resource not being found.
	NOT_FOUND_ERROR_CODE = 5
	// PERMISSION_DENIED_ERROR_CODE represents an error for insufficient permissions.
	PERMISSION_DENIED_ERROR_CODE = 7
	// FAILED_PRECONDITION_ERROR_CODE represents an error for a failed precondition.
	FAILED_PRECONDITION_ERROR_CODE = 9
	// INTERNAL_ERROR_CODE represents an internal server error.
	INTERNAL_ERROR_CODE = 13
	// UNAVAILABLE_ERROR_CODE represents an error for a backend that could not be reached.
	UNAVAILABLE_ERROR_CODE = 14
)

var (
	ErrPayloadDecode     = runtime.NewError("cannot decode json", INVALID_ARGUMENT_ERROR_CODE)
	ErrPayloadEncode     = runtime.NewError("cannot encode json", INTERNAL_ERROR_CODE)
	ErrEndpointMissing   = runtime.NewError("endpoint is required", INVALID_ARGUMENT_ERROR_CODE)
	ErrEndpointNotFound  = runtime.NewError("unknown playfab endpoint", NOT_FOUND_ERROR_CODE)
	ErrEndpointForbidden = runtime.NewError("playfab endpoint not allowed", PERMISSION_DENIED_ERROR_CODE)
)
