package response

// Error codes mirror the HTTP status; 0 means success.
const (
	CodeOK              = 0
	CodeBadRequest      = 400
	CodeTooManyRequests = 429
	CodeInternal        = 500
	CodeBadGateway      = 502
	CodeUnavailable     = 503
)

const (
	MessageSuccess         = "Success"
	MessageInternal        = "Something went wrong"
	MessageTooManyRequests = "Too many requests"
)
