package domain

import "time"

// User is an account record. Password holds the bcrypt hash and, like the
// avatar bytes, is never serialized; the live token set lives in its own
// table (AuthToken) so it cannot leak through a User response either.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Age       int       `json:"age" gorm:"default:0"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Avatar    []byte    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthToken is one row of a user's live token set. A signed token authorizes
// a request only while its row still exists; deleting the row is revocation.
// Each login appends one row, so every device session can be ended on its own.
type AuthToken struct {
	Token     string    `json:"-" gorm:"primaryKey"`
	UserID    string    `json:"-" gorm:"index;not null"`
	CreatedAt time.Time `json:"-"`
}
