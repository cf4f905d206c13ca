package handler

// Generic HTTP error messages for client responses.
// They never carry internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
)

// Log messages
const (
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgRequestDecoded   = "Request decoded"
	LogMsgValidationFailed = "Request failed validation"
	LogMsgMissingParam     = "Missing query parameter"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgFieldScanned     = "Field scanned"
	LogMsgTileClicked      = "Tile clicked"
	LogMsgChatMessageSent  = "Chat message relayed"
	LogMsgMarketQueryServe = "Market query served"
)

// Query parameters
const (
	QueryParamPlayerID = "player_id"
	QueryParamSearch   = "search"
	QueryParamCategory = "category"
	QueryParamDemand   = "demand"
)

// MaxRequestBodyBytes caps JSON request bodies
const MaxRequestBodyBytes = 1 << 16
