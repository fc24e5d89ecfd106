package usecase

import (
	"strings"

	"taskmanager-backend/internal/apperr"
	"taskmanager-backend/internal/task/domain"
	"taskmanager-backend/internal/task/repository"
)

// sortColumns maps the sortable API field names onto database columns. Any
// other field name fails validation instead of reaching the store.
var sortColumns = map[string]string{
	"description": "description",
	"completed":   "completed",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{taskRepo: taskRepo}
}

func (u *taskUsecase) CreateTask(ownerID, description string, completed bool) (*domain.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, apperr.NewValidation("description", "is required")
	}

	task := &domain.Task{
		OwnerID:     ownerID,
		Description: description,
		Completed:   completed,
	}
	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) GetTask(ownerID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByIDAndOwner(taskID, ownerID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperr.ErrNotFound
	}
	return task, nil
}

func (u *taskUsecase) ListTasks(ownerID string, q ListQuery) ([]*domain.Task, error) {
	opts := repository.ListOptions{
		Completed: q.Completed,
		Limit:     q.Limit,
		Skip:      q.Skip,
	}

	if q.Skip < 0 {
		return nil, apperr.NewValidation("skip", "must not be negative")
	}

	if q.SortBy != "" {
		field, dir, ok := strings.Cut(q.SortBy, "_")
		if !ok {
			return nil, apperr.NewValidation("sortBy", "must be field_asc or field_desc")
		}
		column, known := sortColumns[field]
		if !known {
			return nil, apperr.NewValidation("sortBy", "unknown sort field "+field)
		}
		switch dir {
		case "asc":
		case "desc":
			opts.SortDesc = true
		default:
			return nil, apperr.NewValidation("sortBy", "direction must be asc or desc")
		}
		opts.SortColumn = column
	}

	return u.taskRepo.FindByOwner(ownerID, opts)
}

func (u *taskUsecase) UpdateTask(ownerID, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	if updates.Description != nil && strings.TrimSpace(*updates.Description) == "" {
		return nil, apperr.NewValidation("description", "is required")
	}

	task, err := u.taskRepo.FindByIDAndOwner(taskID, ownerID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperr.ErrNotFound
	}

	if updates.Description != nil {
		task.Description = strings.TrimSpace(*updates.Description)
	}
	if updates.Completed != nil {
		task.Completed = *updates.Completed
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) DeleteTask(ownerID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByIDAndOwner(taskID, ownerID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperr.ErrNotFound
	}

	deleted, err := u.taskRepo.Delete(taskID, ownerID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, apperr.ErrNotFound
	}
	return task, nil
}
