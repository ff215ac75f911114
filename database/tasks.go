package database

import (
	"context"
	"database/sql"
	"time"

	"task-tracker/models"
)

// SQLTaskStore implements TaskStore over a sqlite database.
type SQLTaskStore struct {
	db *sql.DB
}

var _ TaskStore = (*SQLTaskStore)(nil)

func NewSQLTaskStore(db *sql.DB) *SQLTaskStore {
	return &SQLTaskStore{db: db}
}

// Insert inserts a new task into the database
func (s *SQLTaskStore) Insert(ctx context.Context, task *models.Task) error {
	now := time.Now().UTC()

	query := `
	INSERT INTO tasks (title, description, due_date, status, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`
	result, err := s.db.ExecContext(ctx, query,
		task.Title, task.Description, task.DueDate, task.Status.String(), now, now)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	task.ID = id
	task.CreatedAt = now
	task.UpdatedAt = now
	return nil
}

// GetAll retrieves all tasks
func (s *SQLTaskStore) GetAll(ctx context.Context) ([]models.Task, error) {
	query := `
	SELECT id, title, description, due_date, status, created_at, updated_at
	FROM tasks
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		if err := scanTask(rows.Scan, &task); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// GetByID retrieves a task by ID, returning (nil, nil) when no row matches
func (s *SQLTaskStore) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	query := `
	SELECT id, title, description, due_date, status, created_at, updated_at
	FROM tasks
	WHERE id = ?
	`
	var task models.Task
	err := scanTask(s.db.QueryRowContext(ctx, query, id).Scan, &task)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update rewrites an existing task's mutable columns
func (s *SQLTaskStore) Update(ctx context.Context, task *models.Task) error {
	now := time.Now().UTC()

	query := `
	UPDATE tasks
	SET title = ?, description = ?, due_date = ?, status = ?, updated_at = ?
	WHERE id = ?
	`
	_, err := s.db.ExecContext(ctx, query,
		task.Title, task.Description, task.DueDate, task.Status.String(), now, task.ID)
	if err != nil {
		return err
	}

	task.UpdatedAt = now
	return nil
}

// Delete deletes a task by ID
func (s *SQLTaskStore) Delete(ctx context.Context, id int64) error {
	query := `
	DELETE FROM tasks WHERE id = ?
	`
	_, err := s.db.ExecContext(ctx, query, id)
	return err
}

// Exists checks if a task with the given ID exists
func (s *SQLTaskStore) Exists(ctx context.Context, id int64) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM tasks WHERE id = ?"
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func scanTask(scan func(dest ...any) error, task *models.Task) error {
	var status string
	err := scan(&task.ID, &task.Title, &task.Description, &task.DueDate,
		&status, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return err
	}
	task.Status = models.Status(status)
	return nil
}
