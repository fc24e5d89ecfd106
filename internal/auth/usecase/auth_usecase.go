package usecase

import (
	"errors"
	"strings"
	"time"

	"taskmanager-backend/internal/apperr"
	authdomain "taskmanager-backend/internal/auth/domain"
	authdto "taskmanager-backend/internal/auth/dto"
	"taskmanager-backend/internal/auth/repository"
	"taskmanager-backend/internal/mailer"
	"taskmanager-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// dummyHash keeps the bcrypt comparison on the login path even when the email
// is unknown, so both failure modes take comparable time.
const dummyHash = "$2a$12$8Fb1lX0QmJ9Y5u0eGq3P7eZk8w2T9rVtY4n6dJbCQeHhGxFZlYd0W"

// Claims binds the owning user's id into a signed token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	notifier *mailer.Service
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, notifier *mailer.Service, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		notifier: notifier,
		config:   cfg,
	}
}

// validatePassword enforces the plaintext rules: at least 7 characters and
// never the word "password", in any case.
func validatePassword(plaintext string) error {
	if len(plaintext) < 7 {
		return apperr.NewValidation("password", "must be at least 7 characters")
	}
	if strings.Contains(strings.ToLower(plaintext), "password") {
		return apperr.NewValidation("password", "must not contain the word password")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *authUsecase) Signup(req *authdto.SignupRequest) (*authdto.TokenResponse, error) {
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.NewValidation("name", "is required")
	}

	hashed, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Name:     name,
		Age:      req.Age,
		Email:    normalizeEmail(req.Email),
		Password: hashed,
	}
	if err := u.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewValidation("email", "is already in use")
		}
		return nil, err
	}

	u.notifier.SendWelcome(user.Email, user.Name)

	token, err := u.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &authdto.TokenResponse{User: user, Token: token}, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}

	if user == nil {
		repository.CheckPasswordHash(req.Password, dummyHash)
		return nil, apperr.ErrAuth
	}
	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperr.ErrAuth
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &authdto.TokenResponse{User: user, Token: token}, nil
}

// Logout is idempotent: revoking a token that is already gone is a no-op.
func (u *authUsecase) Logout(token string) error {
	return u.userRepo.DeleteToken(token)
}

func (u *authUsecase) LogoutAll(userID string) error {
	return u.userRepo.DeleteTokensByUser(userID)
}

func (u *authUsecase) UpdateProfile(user *authdomain.User, req *authdto.UpdateUserRequest) error {
	// Validate the whole update set before touching the record.
	if req.Password != nil {
		if err := validatePassword(*req.Password); err != nil {
			return err
		}
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return apperr.NewValidation("name", "is required")
	}
	if req.Age != nil && *req.Age < 0 {
		return apperr.NewValidation("age", "must not be negative")
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Age != nil {
		user.Age = *req.Age
	}
	if req.Email != nil {
		user.Email = normalizeEmail(*req.Email)
	}
	if req.Password != nil {
		// The hash is recomputed here and only here: the incoming value
		// is always plaintext, a stored hash is never re-hashed.
		hashed, err := repository.HashPassword(*req.Password)
		if err != nil {
			return err
		}
		user.Password = hashed
	}

	if err := u.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.NewValidation("email", "is already in use")
		}
		return err
	}
	return nil
}

func (u *authUsecase) DeleteAccount(user *authdomain.User) error {
	if err := u.userRepo.Delete(user.ID); err != nil {
		return err
	}
	u.notifier.SendGoodbye(user.Email, user.Name)
	return nil
}

func (u *authUsecase) SetAvatar(user *authdomain.User, avatar []byte) error {
	user.Avatar = avatar
	return u.userRepo.Update(user)
}

func (u *authUsecase) ClearAvatar(user *authdomain.User) error {
	user.Avatar = nil
	return u.userRepo.Update(user)
}

func (u *authUsecase) GetAvatar(userID string) ([]byte, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || len(user.Avatar) == 0 {
		return nil, apperr.ErrNotFound
	}
	return user.Avatar, nil
}

// issueToken mints a signed token for the user and appends it to the live
// set. Tokens carry no expiry; deleting the row is the only invalidation.
func (u *authUsecase) issueToken(user *authdomain.User) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.New().String(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		UserID: user.ID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(u.config.JWTSecret))
	if err != nil {
		return "", err
	}

	if err := u.userRepo.SaveToken(&authdomain.AuthToken{Token: signed, UserID: user.ID}); err != nil {
		return "", err
	}
	return signed, nil
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.ErrAuth
	}

	// Signature alone is not authorization: the exact token must still be
	// in the user's live set.
	stored, err := u.userRepo.FindToken(tokenString)
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.UserID != claims.UserID {
		return nil, apperr.ErrAuth
	}

	user, err := u.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrAuth
	}
	return user, nil
}
