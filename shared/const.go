package shared

const (
	RequestID = "request_id"

	HeaderAPIKey    = "x-api-key"
	HeaderRequestID = "X-Request-ID"

	// LimiterKeyGlobal is the counter key shared by every caller. Keying by
	// client identity instead is an extension point, not current behavior.
	LimiterKeyGlobal = "global"
)
