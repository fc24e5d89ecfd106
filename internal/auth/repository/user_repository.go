package repository

import (
	"errors"
	"time"

	authdomain "taskmanager-backend/internal/auth/domain"
	taskdomain "taskmanager-backend/internal/task/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost matches the hashing cost of the original service.
const bcryptCost = 12

// userRepository implements UserRepository using GORM
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(user *authdomain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

func (r *userRepository) FindByEmail(email string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(user *authdomain.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

// Delete cascades over the user's tasks and tokens inside one transaction so
// a failure at any step leaves everything in place. Orphan tasks with a dead
// owner id must never be observable.
func (r *userRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", id).Delete(&taskdomain.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&authdomain.AuthToken{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&authdomain.User{}).Error
	})
}

func (r *userRepository) SaveToken(token *authdomain.AuthToken) error {
	token.CreatedAt = time.Now()
	return r.db.Create(token).Error
}

func (r *userRepository) FindToken(token string) (*authdomain.AuthToken, error) {
	var authToken authdomain.AuthToken
	err := r.db.Where("token = ?", token).First(&authToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &authToken, nil
}

func (r *userRepository) DeleteToken(token string) error {
	return r.db.Where("token = ?", token).Delete(&authdomain.AuthToken{}).Error
}

func (r *userRepository) DeleteTokensByUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&authdomain.AuthToken{}).Error
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
