package dto

type CalendarEventItem struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority"`
}

type ImportTasksRequest struct {
	Tasks []TaskRequest `json:"tasks"`
}

type ImportItemResult struct {
	Index   int    `json:"index"`
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ImportTasksResponse struct {
	Imported int                `json:"imported"`
	Failed   int                `json:"failed"`
	Results  []ImportItemResult `json:"results"`
}
