package apierrors

const (
	MsgFailFetchBoard     = "failFetchBoard"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailMoveTask       = "failMoveTask"
	MsgFailColumn         = "failColumn"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgColumnNotFound     = "columnNotFound"
	MsgUnauthorized       = "unauthorized"
	MsgForbidden          = "forbidden"
	MsgFailLogin          = "failLogin"
	MsgServerUnavailable  = "serverUnavailable"
	MsgDefaultColumnTitle = "defaultColumnTitle"
	MsgBatchPartial       = "batchPartial"
)
