package domain

import "time"

// Task is a work item owned by exactly one user. OwnerID is bound from the
// authenticated caller at creation and never changes afterwards.
type Task struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	OwnerID     string    `json:"owner" gorm:"index;not null"`
	Description string    `json:"description" gorm:"not null"`
	Completed   bool      `json:"completed" gorm:"default:false"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
