package apierrors

const (
	MsgUnauthorized          = "unauthorized"
	MsgInvalidPayload        = "invalidPayload"
	MsgInvalidID             = "invalidID"
	MsgMissingTaskID         = "missingTaskID"
	MsgMissingTaskIDs        = "missingTaskIDs"
	MsgMissingRegistration   = "missingRegistration"
	MsgMissingDisplayName    = "missingDisplayName"
	MsgMissingEmail          = "missingEmail"
	MsgUserNotFound          = "userNotFound"
	MsgUserExists            = "userExists"
	MsgInvalidCode           = "invalidCode"
	MsgCodeExpired           = "codeExpired"
	MsgRateLimited           = "rateLimited"
	MsgFailSendOTP           = "failSendOTP"
	MsgTaskNotFound          = "taskNotFound"
	MsgTasksNotFound         = "tasksNotFound"
	MsgFailCreateTask        = "failCreateTask"
	MsgFailListTask          = "failListTask"
	MsgFailUpdateTask        = "failUpdateTask"
	MsgFailDeleteTask        = "failDeleteTask"
	MsgFailListBin           = "failListBin"
	MsgFailRestoreTask       = "failRestoreTask"
	MsgFailPurgeTask         = "failPurgeTask"
	MsgFailUpdateDisplayName = "failUpdateDisplayName"
	MsgInvalidCalendar       = "invalidCalendar"
	MsgFailImportTasks       = "failImportTasks"
	MsgStoreUnavailable      = "storeUnavailable"
	MsgInternal              = "internalError"
	MsgPageNotFound          = "pageNotFound"
)
