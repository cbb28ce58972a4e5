package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Sarankumarr01/Budget-Planner-main/internal/analytics"
	"github.com/Sarankumarr01/Budget-Planner-main/internal/models"
	"github.com/Sarankumarr01/Budget-Planner-main/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AnalyticsHandler fetches a user's rows and delegates to the analytics
// package. It owns no state beyond the store handle.
type AnalyticsHandler struct {
	DB         *gorm.DB
	FetchLimit int
}

func NewAnalyticsHandler(db *gorm.DB, fetchLimit int) *AnalyticsHandler {
	if fetchLimit <= 0 {
		fetchLimit = 10000
	}
	return &AnalyticsHandler{DB: db, FetchLimit: fetchLimit}
}

func (h *AnalyticsHandler) fetchTransactions(userID string) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := h.DB.Where("user_id = ?", userID).Limit(h.FetchLimit).Find(&txns).Error
	return txns, err
}

// queryInt parses a required integer query parameter. Writes the 400 response
// itself; ok is false when the caller should bail out.
func queryInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, name+" must be an integer")
		return 0, false
	}
	return v, true
}

// Monthly compares actuals against budgets for every expense category.
func (h *AnalyticsHandler) Monthly(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	month, ok := queryInt(c, "month")
	if !ok {
		return
	}
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}

	var categories []models.Category
	if err := h.DB.Where("user_id = ? AND type = ?", user.ID, models.TypeExpense).
		Find(&categories).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query categories failed")
		return
	}

	var budgets []models.Budget
	if err := h.DB.Where("user_id = ? AND month = ? AND year = ?", user.ID, month, year).
		Find(&budgets).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query budgets failed")
		return
	}

	txns, err := h.fetchTransactions(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query transactions failed")
		return
	}

	util.Success(c, util.Response{
		"items": analytics.Monthly(categories, budgets, txns, month, year),
	})
}

// Yearly returns the Jan..Dec series for one year.
func (h *AnalyticsHandler) Yearly(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	year, ok := queryInt(c, "year")
	if !ok {
		return
	}

	txns, err := h.fetchTransactions(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query transactions failed")
		return
	}

	util.Success(c, util.Response{
		"items": analytics.Yearly(txns, year),
	})
}

// CategoryBreakdown returns per-category sums for one month and type.
func (h *AnalyticsHandler) CategoryBreakdown(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	month, ok := queryInt(c, "month")
	if !ok {
		return
	}
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}
	txnType := c.Query("type")
	if txnType != models.TypeIncome && txnType != models.TypeExpense {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "type must be income or expense")
		return
	}

	txns, err := h.fetchTransactions(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query transactions failed")
		return
	}

	util.Success(c, util.Response{
		"items": analytics.CategoryBreakdown(txns, month, year, txnType),
	})
}

// Trend returns the trailing N-month series.
func (h *AnalyticsHandler) Trend(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	months, ok := queryInt(c, "months")
	if !ok {
		return
	}
	if months < 1 || months > 60 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "months must be between 1 and 60")
		return
	}

	txns, err := h.fetchTransactions(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query transactions failed")
		return
	}

	util.Success(c, util.Response{
		"items": analytics.Trend(txns, months, time.Now().UTC()),
	})
}

// FiscalYear returns the Apr..Mar series starting in start_year.
func (h *AnalyticsHandler) FiscalYear(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	startYear, ok := queryInt(c, "start_year")
	if !ok {
		return
	}

	txns, err := h.fetchTransactions(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query transactions failed")
		return
	}

	util.Success(c, util.Response{
		"items": analytics.FiscalYear(txns, startYear),
	})
}

// BurnRate returns trailing burn, lifetime balance and runway.
func (h *AnalyticsHandler) BurnRate(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	txns, err := h.fetchTransactions(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query transactions failed")
		return
	}

	rate := analytics.ComputeBurnRate(txns, time.Now().UTC())
	util.Success(c, util.Response{
		"monthly_burn_rate": rate.MonthlyBurnRate,
		"current_balance":   rate.CurrentBalance,
		"runway_months":     rate.RunwayMonths,
	})
}
