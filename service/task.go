package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"task-tracker/apperr"
	"task-tracker/database"
	"task-tracker/models"
	"task-tracker/utils"
)

// TaskService carries out the CRUD operations on tasks. Each operation is
// independent and request-scoped; all state lives in the store.
type TaskService struct {
	store database.TaskStore
	log   *logrus.Entry
}

func NewTaskService(store database.TaskStore, log *logrus.Entry) *TaskService {
	return &TaskService{store: store, log: log}
}

// Create validates the request, persists a new task and returns its wire
// shape. The store assigns the identity and both timestamps.
func (s *TaskService) Create(ctx context.Context, req models.TaskRequest) (*models.TaskResponse, error) {
	due, err := utils.ParseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}
	if !req.Status.IsValid() {
		return nil, &apperr.ValidationError{Message: "invalid status: " + req.Status.String()}
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     due,
		Status:      req.Status,
	}
	if err := s.store.Insert(ctx, task); err != nil {
		s.log.WithError(err).Error("failed to create a new task")
		return nil, &apperr.InternalError{Message: "failed to create a new task", Err: err}
	}

	s.log.WithField("id", task.ID).Info("created task")
	resp := models.NewTaskResponse(task)
	return &resp, nil
}

// List returns every stored task. An empty table yields an empty slice.
func (s *TaskService) List(ctx context.Context) ([]models.TaskResponse, error) {
	tasks, err := s.store.GetAll(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to list tasks")
		return nil, &apperr.InternalError{Message: "failed to list tasks", Err: err}
	}

	responses := make([]models.TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, models.NewTaskResponse(&tasks[i]))
	}
	return responses, nil
}

// Get looks a task up by id. An absent task is (nil, nil), not an error.
func (s *TaskService) Get(ctx context.Context, id int64) (*models.TaskResponse, error) {
	task, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("id", id).Error("failed to get task")
		return nil, &apperr.InternalError{Message: "failed to get task", Err: err}
	}
	if task == nil {
		return nil, nil
	}

	resp := models.NewTaskResponse(task)
	return &resp, nil
}

// Update replaces every mutable field of an existing task. Identity and the
// creation timestamp carry over from the stored row. An absent task is
// (nil, nil).
func (s *TaskService) Update(ctx context.Context, id int64, req models.TaskRequest) (*models.TaskResponse, error) {
	task, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("id", id).Error("failed to load task for update")
		return nil, &apperr.InternalError{Message: "failed to update task", Err: err}
	}
	if task == nil {
		s.log.WithField("id", id).Info("task not found")
		return nil, nil
	}

	due, err := utils.ParseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}
	if !req.Status.IsValid() {
		return nil, &apperr.ValidationError{Message: "invalid status: " + req.Status.String()}
	}

	task.Title = req.Title
	task.Description = req.Description
	task.DueDate = due
	task.Status = req.Status
	if err := s.store.Update(ctx, task); err != nil {
		s.log.WithError(err).WithField("id", id).Error("failed to update task")
		return nil, &apperr.InternalError{Message: "failed to update task", Err: err}
	}

	s.log.WithField("id", id).Info("updated task")
	resp := models.NewTaskResponse(task)
	return &resp, nil
}

// PartialUpdate overwrites only the fields supplied in the patch; absent
// fields keep their stored values. An absent task is (nil, nil).
func (s *TaskService) PartialUpdate(ctx context.Context, id int64, patch models.TaskPatchRequest) (*models.TaskResponse, error) {
	task, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("id", id).Error("failed to load task for patch")
		return nil, &apperr.InternalError{Message: "failed to update task", Err: err}
	}
	if task == nil {
		s.log.WithField("id", id).Info("task not found")
		return nil, nil
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.DueDate != nil {
		due, err := utils.ParseDueDate(*patch.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = due
	}
	if patch.Status != nil {
		if !patch.Status.IsValid() {
			return nil, &apperr.ValidationError{Message: "invalid status: " + patch.Status.String()}
		}
		task.Status = *patch.Status
	}

	if err := s.store.Update(ctx, task); err != nil {
		s.log.WithError(err).WithField("id", id).Error("failed to patch task")
		return nil, &apperr.InternalError{Message: "failed to update task", Err: err}
	}

	s.log.WithField("id", id).Info("patched task")
	resp := models.NewTaskResponse(task)
	return &resp, nil
}

// Delete removes a task by id. Deleting a missing id fails with a
// not-found error rather than silently succeeding. The existence check and
// the delete are separate statements; a concurrent delete between them is a
// benign race since each statement is individually atomic.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("id", id).Error("failed to check task existence")
		return &apperr.InternalError{Message: "failed to delete task", Err: err}
	}
	if !exists {
		s.log.WithField("id", id).Info("task not found")
		return &apperr.NotFoundError{ID: id}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		s.log.WithError(err).WithField("id", id).Error("failed to delete task")
		return &apperr.InternalError{Message: "failed to delete task", Err: err}
	}

	s.log.WithField("id", id).Info("removed task")
	return nil
}
