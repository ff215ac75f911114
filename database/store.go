package database

import (
	"context"

	"task-tracker/models"
)

// TaskStore is the persistence contract the service depends on.
type TaskStore interface {
	// Insert persists a new task, assigning its ID and both timestamps.
	Insert(ctx context.Context, task *models.Task) error
	// GetAll returns every stored task in storage order.
	GetAll(ctx context.Context) ([]models.Task, error)
	// GetByID returns the task with the given id, or (nil, nil) when absent.
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	// Update rewrites the mutable columns of an existing task and bumps
	// its updated_at timestamp. created_at is never written.
	Update(ctx context.Context, task *models.Task) error
	// Delete removes the task with the given id.
	Delete(ctx context.Context, id int64) error
	// Exists reports whether a task with the given id is stored.
	Exists(ctx context.Context, id int64) (bool, error)
}
