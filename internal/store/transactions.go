package store

import (
	"context"
	"strconv"
	"strings"
	"time"

	"kassa/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// AddInput carries the raw form values for one new ledger entry. Parsing and
// validation happen inside Add so every caller gets identical leniency.
type AddInput struct {
	Amount string // Decimal magnitude, must parse non-negative
	Date   string // YYYY-MM-DD; anything unparseable falls back to today
	Type   string // "deposit" or "withdrawal"
	Reason string // Required for withdrawals
}

// Filter narrows a ledger query. Bounds that fail to parse are silently
// ignored, and Type only applies when it is exactly one of the two types.
type Filter struct {
	StartDate string // Inclusive lower bound, YYYY-MM-DD
	EndDate   string // Inclusive upper bound, YYYY-MM-DD
	Type      string // "deposit", "withdrawal" or anything (ignored)
}

// TransactionStore persists the append-only ledger.
type TransactionStore struct {
	db  *gorm.DB
	now func() time.Time // Injected clock for the bad-date fallback
}

// NewTransactionStore wraps a database handle into a ledger store.
func NewTransactionStore(db *gorm.DB) *TransactionStore {
	return &TransactionStore{db: db, now: time.Now}
}

// Add validates the raw input and persists a transaction owned by userID.
// Validation order: amount first (domain.ErrInvalidAmount), then the date
// fallback, then the withdrawal reason (domain.ErrMissingReason).
func (s *TransactionStore) Add(ctx context.Context, userID uint, in AddInput) (uint, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(in.Amount), 64)
	if err != nil || amount < 0 {
		return 0, domain.ErrInvalidAmount
	}
	date, err := time.Parse(domain.DateLayout, in.Date)
	if err != nil {
		date = s.today() // Bad or missing dates silently fall back to today
	}
	reason := strings.TrimSpace(in.Reason)
	if in.Type == domain.TypeWithdrawal && reason == "" {
		return 0, domain.ErrMissingReason
	}
	tx := domain.Transaction{
		Amount: amount, // Unsigned magnitude
		Date:   date,   // Calendar day
		Type:   in.Type,
		Reason: reason,
		UserID: userID, // Owner, always set server-side
	}
	if err := s.db.WithContext(ctx).Create(&tx).Error; err != nil {
		return 0, err
	}
	return tx.ID, nil
}

// Query returns the user's transactions matching the filter, newest date
// first with ties in insertion order. Only rows owned by userID are ever
// visible.
func (s *TransactionStore) Query(ctx context.Context, userID uint, f Filter) ([]domain.Transaction, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if start, err := time.Parse(domain.DateLayout, f.StartDate); err == nil {
		q = q.Where("date >= ?", start)
	}
	if end, err := time.Parse(domain.DateLayout, f.EndDate); err == nil {
		q = q.Where("date <= ?", end)
	}
	if f.Type == domain.TypeDeposit || f.Type == domain.TypeWithdrawal {
		q = q.Where("type = ?", f.Type)
	}
	var txs []domain.Transaction
	if err := q.Order("date DESC, id ASC").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// QueryRange returns the user's transactions with date in [start, end],
// same ordering as Query. Used by the report pipeline, which already holds
// parsed dates.
func (s *TransactionStore) QueryRange(ctx context.Context, userID uint, start, end time.Time) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date DESC, id ASC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// today truncates the injected clock to a UTC calendar day, matching how
// parsed form dates are stored.
func (s *TransactionStore) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
