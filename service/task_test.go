package service

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/apperr"
	"task-tracker/database"
	"task-tracker/models"
)

func setupService(t *testing.T) *TaskService {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewTaskService(database.NewSQLTaskStore(db), logrus.NewEntry(log))
}

func validRequest() models.TaskRequest {
	return models.TaskRequest{
		Title:       "New Task",
		Description: "New Description",
		DueDate:     "2124-11-24T15:30:45Z",
		Status:      models.StatusPending,
	}
}

func TestTaskService_Create(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	t.Run("create then get round-trips", func(t *testing.T) {
		created, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Greater(t, created.ID, int64(0))
		assert.Equal(t, "PENDING", created.Status)

		fetched, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, created.Title, fetched.Title)
		assert.Equal(t, created.Description, fetched.Description)
		assert.Equal(t, "2124-11-24T15:30:45Z", fetched.DueDate)
		assert.Equal(t, created.Status, fetched.Status)
	})

	t.Run("past due date fails", func(t *testing.T) {
		req := validRequest()
		req.DueDate = "2022-01-01T12:00:00Z"

		_, err := svc.Create(ctx, req)

		var validationErr *apperr.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("unparseable due date fails", func(t *testing.T) {
		req := validRequest()
		req.DueDate = "2124-01-01"

		_, err := svc.Create(ctx, req)

		var dateErr *apperr.DateFormatError
		require.ErrorAs(t, err, &dateErr)
		assert.Equal(t, "2124-01-01", dateErr.Input)
	})

	t.Run("unknown status fails", func(t *testing.T) {
		req := validRequest()
		req.Status = models.Status("DONE")

		_, err := svc.Create(ctx, req)

		var validationErr *apperr.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestTaskService_List(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	t.Run("empty store yields empty slice", func(t *testing.T) {
		tasks, err := svc.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Len(t, tasks, 0)
	})

	t.Run("lists created tasks", func(t *testing.T) {
		_, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)
		_, err = svc.Create(ctx, validRequest())
		require.NoError(t, err)

		tasks, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, tasks, 2)
	})
}

func TestTaskService_Get_Absent(t *testing.T) {
	svc := setupService(t)

	task, err := svc.Get(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, task)
}

func TestTaskService_Update(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	t.Run("absent id yields nil", func(t *testing.T) {
		task, err := svc.Update(ctx, 99, validRequest())
		require.NoError(t, err)
		assert.Nil(t, task)
	})

	t.Run("replaces every mutable field", func(t *testing.T) {
		created, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		update := models.TaskRequest{
			Title:       "Updated Task",
			Description: "Updated Description",
			DueDate:     "2125-01-01T00:00:00Z",
			Status:      models.StatusInProgress,
		}
		updated, err := svc.Update(ctx, created.ID, update)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Updated Task", updated.Title)
		assert.Equal(t, "Updated Description", updated.Description)
		assert.Equal(t, "2125-01-01T00:00:00Z", updated.DueDate)
		assert.Equal(t, "IN_PROGRESS", updated.Status)
	})

	t.Run("is idempotent", func(t *testing.T) {
		created, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		update := models.TaskRequest{
			Title:       "Same Twice",
			Description: "Same Description",
			DueDate:     "2125-06-01T09:00:00Z",
			Status:      models.StatusCompleted,
		}
		first, err := svc.Update(ctx, created.ID, update)
		require.NoError(t, err)
		second, err := svc.Update(ctx, created.ID, update)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("invalid due date propagates", func(t *testing.T) {
		created, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		update := validRequest()
		update.DueDate = "2125-01-01"

		_, err = svc.Update(ctx, created.ID, update)

		var dateErr *apperr.DateFormatError
		require.ErrorAs(t, err, &dateErr)
	})
}

func TestTaskService_PartialUpdate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	t.Run("absent id yields nil", func(t *testing.T) {
		title := "Updated Title"
		task, err := svc.PartialUpdate(ctx, 99, models.TaskPatchRequest{Title: &title})
		require.NoError(t, err)
		assert.Nil(t, task)
	})

	t.Run("only supplied fields change", func(t *testing.T) {
		created, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		title := "Updated Title"
		patched, err := svc.PartialUpdate(ctx, created.ID, models.TaskPatchRequest{Title: &title})
		require.NoError(t, err)
		require.NotNil(t, patched)
		assert.Equal(t, "Updated Title", patched.Title)
		assert.Equal(t, created.Description, patched.Description)
		assert.Equal(t, created.DueDate, patched.DueDate)
		assert.Equal(t, created.Status, patched.Status)
	})

	t.Run("patched due date goes through validation", func(t *testing.T) {
		created, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		past := "2022-01-01T12:00:00Z"
		_, err = svc.PartialUpdate(ctx, created.ID, models.TaskPatchRequest{DueDate: &past})

		var validationErr *apperr.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("patched status must be valid", func(t *testing.T) {
		created, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		bad := models.Status("DONE")
		_, err = svc.PartialUpdate(ctx, created.ID, models.TaskPatchRequest{Status: &bad})

		var validationErr *apperr.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestTaskService_Delete(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	t.Run("missing id fails with not found", func(t *testing.T) {
		err := svc.Delete(ctx, 99)

		var notFoundErr *apperr.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, int64(99), notFoundErr.ID)
	})

	t.Run("second delete of the same id fails", func(t *testing.T) {
		created, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, created.ID))

		err = svc.Delete(ctx, created.ID)
		var notFoundErr *apperr.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
	})
}
