package repository

import authdomain "taskmanager-backend/internal/auth/domain"

// UserRepository defines data access for users and their live token sets.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	Update(user *authdomain.User) error

	// Delete removes the user together with every task they own and every
	// token issued to them, as a single transaction.
	Delete(id string) error

	SaveToken(token *authdomain.AuthToken) error
	FindToken(token string) (*authdomain.AuthToken, error)
	DeleteToken(token string) error
	DeleteTokensByUser(userID string) error
}
