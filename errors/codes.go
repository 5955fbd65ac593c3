package errors

// ErrorCode identifies an application error class in API responses.
// Codes are stable integers so clients can switch on them without
// parsing messages.
type ErrorCode int32

const (
	ErrorCode_UNKNOWN          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1
	ErrorCode_INVALID_ARGUMENT ErrorCode = 2
	ErrorCode_NOT_FOUND        ErrorCode = 3
	ErrorCode_UNAUTHENTICATED  ErrorCode = 4

	ErrorCode_AUTH_INVALID_TOKEN  ErrorCode = 100
	ErrorCode_AUTH_TOKEN_EXPIRED  ErrorCode = 101
	ErrorCode_AUTH_USER_NOT_FOUND ErrorCode = 102

	ErrorCode_MEETING_NOT_FOUND         ErrorCode = 200
	ErrorCode_MEETING_NOT_READY         ErrorCode = 201
	ErrorCode_MEETING_PROCESSING_FAILED ErrorCode = 202

	ErrorCode_UPLOAD_UNSUPPORTED_TYPE ErrorCode = 300
	ErrorCode_UPLOAD_EMPTY_FILE       ErrorCode = 301
	ErrorCode_UPLOAD_TOO_LARGE        ErrorCode = 302

	ErrorCode_ACTION_ITEM_NOT_FOUND ErrorCode = 400

	ErrorCode_INTEGRATION_QUEUE_FAILED ErrorCode = 500
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:          "UNKNOWN",
	ErrorCode_INTERNAL:         "INTERNAL",
	ErrorCode_INVALID_ARGUMENT: "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:        "NOT_FOUND",
	ErrorCode_UNAUTHENTICATED:  "UNAUTHENTICATED",

	ErrorCode_AUTH_INVALID_TOKEN:  "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:  "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_USER_NOT_FOUND: "AUTH_USER_NOT_FOUND",

	ErrorCode_MEETING_NOT_FOUND:         "MEETING_NOT_FOUND",
	ErrorCode_MEETING_NOT_READY:         "MEETING_NOT_READY",
	ErrorCode_MEETING_PROCESSING_FAILED: "MEETING_PROCESSING_FAILED",

	ErrorCode_UPLOAD_UNSUPPORTED_TYPE: "UPLOAD_UNSUPPORTED_TYPE",
	ErrorCode_UPLOAD_EMPTY_FILE:       "UPLOAD_EMPTY_FILE",
	ErrorCode_UPLOAD_TOO_LARGE:        "UPLOAD_TOO_LARGE",

	ErrorCode_ACTION_ITEM_NOT_FOUND: "ACTION_ITEM_NOT_FOUND",

	ErrorCode_INTEGRATION_QUEUE_FAILED: "INTEGRATION_QUEUE_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
