package api

import (
	"net/http"
	"time"

	"kassa/internal/ledger" // Balance calculator
	"kassa/internal/report" // Period resolver + PDF renderer
	"kassa/internal/store"  // Ledger store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ReportHandler resolves the requested period, renders the user's
// transactions and balance for it, and streams the result as a PDF
// attachment. Any failure flashes a notice and falls back to the dashboard.
func ReportHandler(transactions *store.TransactionStore, renderer *report.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUser(c)
		reportType := c.DefaultQuery("type", report.TypeDaily) // Daily unless asked otherwise

		start, end, err := report.ResolvePeriod(reportType, time.Now())
		if err != nil {
			setFlash(c, "Invalid report type.")
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		txs, err := transactions.QueryRange(c.Request.Context(), userID, start, end)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"type":    reportType,  // Report type
				"error":   err.Error(), // Error message
			}).Error("Failed to load report transactions")
			setFlash(c, "Could not load transactions.")
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		balance := ledger.ComputeBalance(txs) // Balance over the period only

		pdfBytes, err := renderer.Render(txs, balance, reportType, start, end)
		if err != nil {
			// No partial file is ever served
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"type":    reportType,  // Report type
				"error":   err.Error(), // Error message
			}).Error("Report rendering failed")
			setFlash(c, "Error generating PDF report.")
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":      userID,          // User ID
			"type":         reportType,      // Report type
			"transactions": len(txs),        // Rows in the document
		}).Info("Report generated")
		c.Header("Content-Disposition", "attachment; filename="+reportType+"_report.pdf")
		c.Data(http.StatusOK, "application/pdf", pdfBytes)
	}
}
