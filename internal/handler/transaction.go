package handler

import (
	"net/http"

	"github.com/Sarankumarr01/Budget-Planner-main/internal/models"
	"github.com/Sarankumarr01/Budget-Planner-main/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TransactionHandler serves the per-user transaction store.
type TransactionHandler struct {
	DB         *gorm.DB
	FetchLimit int
}

func NewTransactionHandler(db *gorm.DB, fetchLimit int) *TransactionHandler {
	if fetchLimit <= 0 {
		fetchLimit = 10000
	}
	return &TransactionHandler{DB: db, FetchLimit: fetchLimit}
}

// transactionReq deliberately skips date-format and amount-sign checks: the
// date is free text that analytics filters later, and categories are not
// checked against the category store.
type transactionReq struct {
	Date        string  `json:"date" binding:"required"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description" binding:"max=255"`
	Category    string  `json:"category" binding:"max=64"`
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	IsRecurring bool    `json:"is_recurring"`
	RecurringID *string `json:"recurring_id"`
}

// List returns the user's transactions up to the fetch ceiling, newest first.
func (h *TransactionHandler) List(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var txns []models.Transaction
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("date DESC, created_at DESC").
		Limit(h.FetchLimit).
		Find(&txns).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query transactions failed")
		return
	}

	util.Success(c, util.Response{
		"items": txns,
	})
}

// Create inserts a manual transaction. The recurring fields are forced to
// their defaults here; only the generator sets them.
func (h *TransactionHandler) Create(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	txn := models.Transaction{
		UserID:      user.ID,
		Date:        req.Date,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Type:        req.Type,
	}
	if err := h.DB.Create(&txn).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create transaction failed")
		return
	}

	util.Success(c, util.Response{
		"transaction": txn,
	})
}

// Update replaces every mutable field of an owned transaction.
func (h *TransactionHandler) Update(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	result := h.DB.Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		Updates(map[string]interface{}{
			"date":         req.Date,
			"amount":       req.Amount,
			"description":  req.Description,
			"category":     req.Category,
			"type":         req.Type,
			"is_recurring": req.IsRecurring,
			"recurring_id": req.RecurringID,
		})
	if result.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "update transaction failed")
		return
	}
	if result.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "transaction not found")
		return
	}

	util.Success(c, util.Response{
		"message": "transaction updated",
	})
}

// Delete removes an owned transaction.
func (h *TransactionHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	result := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		Delete(&models.Transaction{})
	if result.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete transaction failed")
		return
	}
	if result.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "transaction not found")
		return
	}

	util.Success(c, util.Response{
		"message": "transaction deleted",
	})
}
