package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kassa/internal/domain"
)

func TestComputeBalance(t *testing.T) {
	t.Run("empty set is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, ComputeBalance(nil))
		assert.Equal(t, 0.0, ComputeBalance([]domain.Transaction{}))
	})

	t.Run("deposits add, withdrawals subtract", func(t *testing.T) {
		txs := []domain.Transaction{
			{Type: domain.TypeDeposit, Amount: 100},
			{Type: domain.TypeWithdrawal, Amount: 30.5},
			{Type: domain.TypeDeposit, Amount: 12.25},
		}
		assert.InDelta(t, 81.75, ComputeBalance(txs), 1e-9)
	})

	t.Run("order independent", func(t *testing.T) {
		a := []domain.Transaction{
			{Type: domain.TypeWithdrawal, Amount: 5},
			{Type: domain.TypeDeposit, Amount: 20},
			{Type: domain.TypeWithdrawal, Amount: 7},
		}
		b := []domain.Transaction{a[2], a[0], a[1]}
		assert.InDelta(t, ComputeBalance(a), ComputeBalance(b), 1e-9)
	})

	t.Run("withdrawals can drive the total negative", func(t *testing.T) {
		txs := []domain.Transaction{
			{Type: domain.TypeDeposit, Amount: 10},
			{Type: domain.TypeWithdrawal, Amount: 25},
		}
		assert.InDelta(t, -15, ComputeBalance(txs), 1e-9)
	})
}
