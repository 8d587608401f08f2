// internal/domain/user.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a registered account. Users are created on the first
// successful session exchange and never deleted.
type User struct {
	UserID      string          `db:"user_id" json:"user_id"`
	Email       string          `db:"email" json:"email"` // Unique
	Name        string          `db:"name" json:"name"`
	Picture     *string         `db:"picture" json:"picture"`
	GoldBalance decimal.Decimal `db:"gold_balance" json:"gold_balance"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// NewUser creates a new User instance.
func NewUser(email, name string, picture *string) *User {
	return &User{
		UserID:      NewID("user"),
		Email:       email,
		Name:        name,
		Picture:     picture,
		GoldBalance: decimal.Zero,
		CreatedAt:   time.Now().UTC(),
	}
}
