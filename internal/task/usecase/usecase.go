package usecase

import "taskmanager-backend/internal/task/domain"

// ListQuery is the validated-on-entry shape of a task listing request.
// SortBy is the raw "field_direction" string from the client; Limit <= 0
// means unlimited.
type ListQuery struct {
	Completed *bool
	SortBy    string
	Limit     int
	Skip      int
}

// TaskUpdateRequest represents the fields that can be updated
type TaskUpdateRequest struct {
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// TaskUsecase defines the interface for task business logic. Every lookup is
// scoped to the acting owner; a task belonging to someone else is
// indistinguishable from one that does not exist.
type TaskUsecase interface {
	// CreateTask creates a task bound to the given owner. The owner comes
	// from the authenticated request, never from the body.
	CreateTask(ownerID, description string, completed bool) (*domain.Task, error)

	// GetTask retrieves one task by id for the given owner
	GetTask(ownerID, taskID string) (*domain.Task, error)

	// ListTasks returns the owner's tasks, filtered, sorted and paginated
	ListTasks(ownerID string, q ListQuery) ([]*domain.Task, error)

	// UpdateTask applies a partial update to description and/or completed
	UpdateTask(ownerID, taskID string, updates TaskUpdateRequest) (*domain.Task, error)

	// DeleteTask deletes one task by id for the given owner
	DeleteTask(ownerID, taskID string) (*domain.Task, error)
}
