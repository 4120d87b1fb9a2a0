package api

import (
	"errors"
	"net/http"
	"time"

	"kassa/internal/domain"     // Importing domain models
	"kassa/internal/ledger"     // Balance calculator
	"kassa/internal/middleware" // Session context key
	"kassa/internal/store"      // Ledger store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// TransactionForm is the payload of the add-transaction form. Every field
// arrives as a raw string; the store parses and validates them.
type TransactionForm struct {
	Amount string `form:"amount"`           // Decimal magnitude
	Date   string `form:"date"`             // YYYY-MM-DD, optional
	Type   string `form:"transaction_type"` // "deposit" or "withdrawal"
	Reason string `form:"reason"`           // Required for withdrawals
}

// currentUser pulls the authenticated user ID stored by RequireSession.
func currentUser(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserKey).(uint)
}

// DashboardHandler lists the user's transactions with optional date and
// type filters, together with the running balance over the filtered set.
func DashboardHandler(transactions *store.TransactionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUser(c)
		filter := store.Filter{
			StartDate: c.Query("start_date"),       // Optional lower bound
			EndDate:   c.Query("end_date"),         // Optional upper bound
			Type:      c.Query("transaction_type"), // Optional type filter
		}
		txs, err := transactions.Query(c.Request.Context(), userID, filter)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to load transactions")
			c.HTML(http.StatusInternalServerError, "dashboard.html", gin.H{
				"flash":        "Could not load transactions.",
				"transactions": []domain.Transaction{},
				"balance":      0.0,
				"today":        time.Now().Format(domain.DateLayout),
				"filter":       filter,
			})
			return
		}
		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"flash":        takeFlash(c),                              // Pending notice, if any
			"transactions": txs,                                       // Filtered, ordered ledger
			"balance":      ledger.ComputeBalance(txs),                // Signed running total
			"today":        time.Now().Format(domain.DateLayout),      // Default for the date field
			"filter":       filter,                                    // Echo the active filter
		})
	}
}

// AddTransactionHandler records a deposit or withdrawal from the form and
// redirects back to the dashboard with a flash notice either way.
func AddTransactionHandler(transactions *store.TransactionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUser(c)
		var form TransactionForm
		_ = c.ShouldBind(&form) // All fields are free-form strings; the store validates
		id, err := transactions.Add(c.Request.Context(), userID, store.AddInput{
			Amount: form.Amount,
			Date:   form.Date,
			Type:   form.Type,
			Reason: form.Reason,
		})
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			setFlash(c, "Invalid amount entered.")
		case errors.Is(err, domain.ErrMissingReason):
			setFlash(c, "Reason is required for a withdrawal.")
		case err != nil:
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"type":    form.Type,   // Transaction type
				"error":   err.Error(), // Error message
			}).Error("Failed to add transaction")
			setFlash(c, "Could not save the transaction.")
		default:
			logrus.WithFields(logrus.Fields{
				"user_id":        userID,    // User ID
				"transaction_id": id,        // New record ID
				"type":           form.Type, // Transaction type
			}).Info("Transaction added")
			setFlash(c, "Transaction added successfully!")
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}
