package dto

type TaskItem struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	TaskName        string `json:"taskName"`
	TaskDescription string `json:"taskDescription"`
	TaskDueDate     string `json:"taskDueDate"`
	TaskPriority    string `json:"taskPriority"`
	Completed       bool   `json:"completed"`
}

type BinItem struct {
	TaskItem
	OriginalID string `json:"originalId"`
	DeletedAt  string `json:"deletedAt"`
	ExpiresAt  string `json:"expiresAt"`
}

type TaskRequest struct {
	TaskName        string `json:"taskName" binding:"required,max=255"`
	TaskDescription string `json:"taskDescription" binding:"required,max=65535"`
	TaskDueDate     string `json:"taskDueDate" binding:"required"`
	TaskPriority    string `json:"taskPriority" binding:"required"`
}

type EditTaskRequest struct {
	ID string `json:"id" binding:"required"`
	TaskRequest
}

// CompleteRequest carries either completed (mark done or undone) or action "toggle".
type CompleteRequest struct {
	ID        string `json:"id"`
	Completed *bool  `json:"completed"`
	Action    string `json:"action"`
}

type IDsRequest struct {
	IDs []string `json:"ids"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type CountResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Count   int64  `json:"count"`
}
