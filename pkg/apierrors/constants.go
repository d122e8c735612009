package apierrors

const (
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailTaskOperation  = "failTaskOperation"
	MsgFailDashboard      = "failDashboard"
	MsgMissingIdentity    = "missingIdentity"
	MsgRateLimited        = "rateLimited"

	MsgUnauthorized           = "unauthorized"
	MsgInvalidTitle           = "invalidTitle"
	MsgInvalidPriority        = "invalidPriority"
	MsgInvalidRecurrence      = "invalidRecurrence"
	MsgInvalidSubtaskDeadline = "invalidSubtaskDeadline"
	MsgInvalidFileType        = "invalidFileType"
	MsgMaxAssigneesReached    = "maxAssigneesReached"
	MsgFileSizeLimitExceeded  = "fileSizeLimitExceeded"
	MsgNoAssignees            = "noAssignees"
	MsgMinAssignees           = "minAssignees"
	MsgAssigneeNotFound       = "assigneeNotFound"
	MsgCommentNotFound        = "commentNotFound"
	MsgEmptyProjectID         = "emptyProjectID"
	MsgProjectNotFound        = "projectNotFound"
)
