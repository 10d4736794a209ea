package api

import "github.com/openrescue/rescuemap-api/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "missing required fields",
		1101: "invalid id",
		1102: "invalid status",

		1200: store.ErrRequestNotFound.Error(),
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorMissingRequiredFields = errorJSON(1100)
	errorInvalidID             = errorJSON(1101)
	errorInvalidStatus         = errorJSON(1102)

	errorRequestNotFound = errorJSON(1200)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
		Error:   message,
	}
}
