package repository

import "taskmanager-backend/internal/task/domain"

// ListOptions narrows and orders an owner-scoped task listing. SortColumn is
// a database column name, already validated by the caller; empty means
// insertion order. Limit <= 0 means no limit.
type ListOptions struct {
	Completed  *bool
	SortColumn string
	SortDesc   bool
	Limit      int
	Skip       int
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByIDAndOwner finds a task by id, constrained to the given owner.
	// Returns nil when the task does not exist or belongs to someone else.
	FindByIDAndOwner(id, ownerID string) (*domain.Task, error)

	// FindByOwner lists an owner's tasks with filtering, sorting and
	// pagination applied.
	FindByOwner(ownerID string, opts ListOptions) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// Delete deletes a task by id, constrained to the given owner. Reports
	// whether a row was actually removed.
	Delete(id, ownerID string) (bool, error)
}
