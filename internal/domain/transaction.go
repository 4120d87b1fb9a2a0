package domain

import "time"

// DateLayout is the calendar-day format used on every form and filter.
const DateLayout = "2006-01-02"

// Transaction types
const (
	TypeDeposit    = "deposit"
	TypeWithdrawal = "withdrawal"
)

// Transaction Model. Amount is an unsigned magnitude; the sign is derived
// from Type when a balance is computed. Records are immutable once created.
type Transaction struct {
	ID     uint      `gorm:"primaryKey"`               // Primary key, auto-increment follows insertion order
	Amount float64   `gorm:"not null"`                 // Transaction magnitude, never negative
	Date   time.Time `gorm:"type:date;not null;index"` // Calendar day the transaction belongs to
	Type   string    `gorm:"size:50;not null"`         // "deposit" or "withdrawal"
	Reason string    `gorm:"size:250"`                 // Required for withdrawals
	UserID uint      `gorm:"not null;index"`           // Owning user
}
