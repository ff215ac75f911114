package models

import "time"

// Status is the closed set of task states.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Task is the persisted entity. It is never serialized to clients;
// responses go through TaskResponse so storage timestamps stay internal.
type Task struct {
	ID          int64
	Title       string
	Description string
	DueDate     time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
