// Package ledger derives balances from transaction sets.
package ledger

import "kassa/internal/domain"

// ComputeBalance folds a transaction set into a signed total: deposits add
// their amount, everything else subtracts it. Pure and order-independent;
// an empty set yields 0.
func ComputeBalance(txs []domain.Transaction) float64 {
	var balance float64
	for _, tx := range txs {
		if tx.Type == domain.TypeDeposit {
			balance += tx.Amount
		} else {
			balance -= tx.Amount
		}
	}
	return balance
}
