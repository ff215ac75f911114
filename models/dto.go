package models

import "time"

// TaskRequest is the body of POST /tasks and PUT /tasks/:id.
// The due date arrives as free text and is parsed by the service.
type TaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate" binding:"required"`
	Status      Status `json:"status" binding:"required"`
}

// TaskPatchRequest is the body of PATCH /tasks/:id. Only non-nil fields
// are applied, so callers never have to resupply unchanged attributes.
type TaskPatchRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Status      *Status `json:"status"`
}

// TaskResponse is the wire shape returned to clients.
type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Status      string `json:"status"`
}

// NewTaskResponse maps a stored task to its wire shape.
func NewTaskResponse(t *Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate.UTC().Format(time.RFC3339),
		Status:      t.Status.String(),
	}
}
