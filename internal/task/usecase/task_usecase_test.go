package usecase

import (
	"fmt"
	"testing"
	"time"

	"taskmanager-backend/internal/apperr"
	"taskmanager-backend/internal/task/domain"
	"taskmanager-backend/internal/task/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestUsecase(t *testing.T) (TaskUsecase, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Task{}))
	return NewTaskUsecase(repository.NewGormTaskRepository(db)), db
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestCreateTaskBindsOwner(t *testing.T) {
	uc, _ := newTestUsecase(t)

	task, err := uc.CreateTask("owner-1", "write spec", false)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", task.OwnerID)
	assert.Equal(t, "write spec", task.Description)
	assert.False(t, task.Completed)
	assert.NotEmpty(t, task.ID)
}

func TestCreateTaskRequiresDescription(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.CreateTask("owner-1", "   ", false)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestGetTaskIsOwnerScoped(t *testing.T) {
	uc, _ := newTestUsecase(t)

	task, err := uc.CreateTask("owner-a", "write spec", false)
	require.NoError(t, err)

	got, err := uc.GetTask("owner-a", task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)

	// Someone else's task and a missing task look identical.
	_, errForeign := uc.GetTask("owner-b", task.ID)
	_, errMissing := uc.GetTask("owner-a", "no-such-id")
	assert.ErrorIs(t, errForeign, apperr.ErrNotFound)
	assert.ErrorIs(t, errMissing, apperr.ErrNotFound)
	assert.Equal(t, errForeign, errMissing)
}

func TestListTasksFiltersByCompleted(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.CreateTask("owner-a", "done thing", true)
	require.NoError(t, err)
	_, err = uc.CreateTask("owner-a", "open thing", false)
	require.NoError(t, err)
	_, err = uc.CreateTask("owner-b", "someone else's done thing", true)
	require.NoError(t, err)

	tasks, err := uc.ListTasks("owner-a", ListQuery{Completed: boolPtr(true), Limit: -1})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "done thing", tasks[0].Description)
	assert.Equal(t, "owner-a", tasks[0].OwnerID)
}

func TestListTasksSorts(t *testing.T) {
	uc, db := newTestUsecase(t)

	// Explicit timestamps so the ordering under test is unambiguous.
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, desc := range []string{"banana", "apple", "cherry"} {
		task, err := uc.CreateTask("owner-a", desc, false)
		require.NoError(t, err)
		require.NoError(t, db.Model(&domain.Task{}).Where("id = ?", task.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	tasks, err := uc.ListTasks("owner-a", ListQuery{SortBy: "description_asc", Limit: -1})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "apple", tasks[0].Description)
	assert.Equal(t, "cherry", tasks[2].Description)

	tasks, err = uc.ListTasks("owner-a", ListQuery{SortBy: "createdAt_desc", Limit: -1})
	require.NoError(t, err)
	assert.Equal(t, "cherry", tasks[0].Description)
	assert.Equal(t, "banana", tasks[2].Description)

	// No sort specified: insertion order.
	tasks, err = uc.ListTasks("owner-a", ListQuery{Limit: -1})
	require.NoError(t, err)
	assert.Equal(t, "banana", tasks[0].Description)
}

func TestListTasksRejectsUnknownSortField(t *testing.T) {
	uc, _ := newTestUsecase(t)

	tests := []string{"owner_asc", "description", "description_sideways", "password_desc"}
	for _, sortBy := range tests {
		t.Run(sortBy, func(t *testing.T) {
			_, err := uc.ListTasks("owner-a", ListQuery{SortBy: sortBy, Limit: -1})
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestListTasksPaginates(t *testing.T) {
	uc, db := newTestUsecase(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		task, err := uc.CreateTask("owner-a", "task", false)
		require.NoError(t, err)
		require.NoError(t, db.Model(&domain.Task{}).Where("id = ?", task.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	page, err := uc.ListTasks("owner-a", ListQuery{Limit: 2, Skip: 2})
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := uc.ListTasks("owner-a", ListQuery{Limit: -1, Skip: 4})
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}

func TestUpdateTaskMutatesAllowedFieldsOnly(t *testing.T) {
	uc, _ := newTestUsecase(t)

	task, err := uc.CreateTask("owner-a", "write spec", false)
	require.NoError(t, err)

	updated, err := uc.UpdateTask("owner-a", task.ID, TaskUpdateRequest{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "write spec", updated.Description)

	updated, err = uc.UpdateTask("owner-a", task.ID, TaskUpdateRequest{Description: strPtr("write tests")})
	require.NoError(t, err)
	assert.Equal(t, "write tests", updated.Description)
	assert.True(t, updated.Completed)
}

func TestUpdateTaskForeignOwnerLeavesTaskUnmodified(t *testing.T) {
	uc, _ := newTestUsecase(t)

	task, err := uc.CreateTask("owner-a", "write spec", false)
	require.NoError(t, err)

	_, err = uc.UpdateTask("owner-b", task.ID, TaskUpdateRequest{Completed: boolPtr(true)})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	got, err := uc.GetTask("owner-a", task.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

func TestDeleteTaskIsOwnerScoped(t *testing.T) {
	uc, _ := newTestUsecase(t)

	task, err := uc.CreateTask("owner-a", "write spec", false)
	require.NoError(t, err)

	_, err = uc.DeleteTask("owner-b", task.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	deleted, err := uc.DeleteTask("owner-a", task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, deleted.ID)

	_, err = uc.GetTask("owner-a", task.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
