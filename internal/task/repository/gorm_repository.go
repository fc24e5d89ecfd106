package repository

import (
	"errors"
	"fmt"
	"math"
	"time"

	"taskmanager-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByIDAndOwner(id, ownerID string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindByOwner(ownerID string, opts ListOptions) ([]*domain.Task, error) {
	var tasks []*domain.Task

	query := r.db.Model(&domain.Task{}).Where("owner_id = ?", ownerID)

	if opts.Completed != nil {
		query = query.Where("completed = ?", *opts.Completed)
	}

	// Ties always break on id ascending so pagination is deterministic.
	if opts.SortColumn != "" {
		dir := "asc"
		if opts.SortDesc {
			dir = "desc"
		}
		query = query.Order(fmt.Sprintf("%s %s, id asc", opts.SortColumn, dir))
	} else {
		query = query.Order("created_at asc, id asc")
	}

	// Zero means unlimited, as it does in the document stores this API
	// originally fronted.
	limit := opts.Limit
	if limit <= 0 {
		limit = -1
		if opts.Skip > 0 {
			// SQLite accepts OFFSET only after a LIMIT clause.
			limit = math.MaxInt32
		}
	}
	err := query.Limit(limit).Offset(opts.Skip).Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	task.UpdatedAt = time.Now()
	return r.db.Save(task).Error
}

func (r *gormTaskRepository) Delete(id, ownerID string) (bool, error) {
	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&domain.Task{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
