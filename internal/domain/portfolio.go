// internal/domain/portfolio.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Portfolio tracks a user's bullion holdings. Holdings and invested amount
// only ever increase; current value is recomputed from the latest 24k price,
// not accumulated.
type Portfolio struct {
	UserID        string          `db:"user_id" json:"user_id"`
	GoldHoldings  decimal.Decimal `db:"gold_holdings" json:"gold_holdings"` // grams
	TotalInvested decimal.Decimal `db:"total_invested" json:"total_invested"`
	CurrentValue  decimal.Decimal `db:"current_value" json:"current_value"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// NewPortfolio creates a zeroed portfolio for userID.
func NewPortfolio(userID string) *Portfolio {
	return &Portfolio{
		UserID:        userID,
		GoldHoldings:  decimal.Zero,
		TotalInvested: decimal.Zero,
		CurrentValue:  decimal.Zero,
		UpdatedAt:     time.Now().UTC(),
	}
}
