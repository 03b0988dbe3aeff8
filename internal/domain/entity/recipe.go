package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe is owned by exactly one user; Tags and Ingredients only ever
// reference labels of the same owner.
type Recipe struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"-"`
	Title       string          `json:"title"`
	TimeMinutes int             `json:"time_minutes"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Link        string          `json:"link"`
	Tags        []Label         `json:"tags"`
	Ingredients []Label         `json:"ingredients"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}
