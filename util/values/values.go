package values

type contextKey string

// Response statuses. util.StatusCode maps each to an HTTP status.
const (
	Success        = "success"
	Created        = "created"
	Failed         = "failed"
	Error          = "error"
	SystemErr      = "system-error"
	BadRequestBody = "bad-request-body"
	Unprocessable  = "unprocessable"
	NotAllowed     = "not-allowed"
	Conflict       = "conflict"
	NotFound       = "not-found"
)

const (
	HeaderRequestSource = "X-Request-Source"
	HeaderRequestID     = "X-Request-ID"
)

const ContextTracingKey contextKey = "tracing"
