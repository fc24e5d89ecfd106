package usecase

import (
	authdomain "taskmanager-backend/internal/auth/domain"
	authdto "taskmanager-backend/internal/auth/dto"
)

// AuthUsecase owns the account lifecycle: credentials, the live token set,
// profile updates, avatar storage, and cascading account deletion.
type AuthUsecase interface {
	// Signup creates the account, issues its first token, and fires the
	// welcome notification.
	Signup(req *authdto.SignupRequest) (*authdto.TokenResponse, error)

	// Login verifies credentials and appends a fresh token to the live set.
	// Unknown email and wrong password produce the same error.
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// Logout revokes exactly the presented token; other sessions survive.
	Logout(token string) error

	// LogoutAll empties the user's live token set.
	LogoutAll(userID string) error

	// UpdateProfile applies a whitelisted partial update. A password in the
	// update set is re-validated and re-hashed; nothing is applied unless
	// every field passes.
	UpdateProfile(user *authdomain.User, req *authdto.UpdateUserRequest) error

	// DeleteAccount removes the user and cascades over their tasks and
	// tokens, then fires the farewell notification.
	DeleteAccount(user *authdomain.User) error

	SetAvatar(user *authdomain.User, avatar []byte) error
	ClearAvatar(user *authdomain.User) error

	// GetAvatar is the one public read: avatar bytes by user id.
	GetAvatar(userID string) ([]byte, error)

	// ValidateToken checks the signature and the live-set membership of a
	// bearer token and resolves its user.
	ValidateToken(token string) (*authdomain.User, error)
}
