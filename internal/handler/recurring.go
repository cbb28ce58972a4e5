package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Sarankumarr01/Budget-Planner-main/internal/models"
	"github.com/Sarankumarr01/Budget-Planner-main/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RecurringHandler serves recurring templates and their on-demand generation.
type RecurringHandler struct {
	DB *gorm.DB
}

func NewRecurringHandler(db *gorm.DB) *RecurringHandler {
	return &RecurringHandler{DB: db}
}

type recurringReq struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description" binding:"max=255"`
	Category    string  `json:"category" binding:"max=64"`
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	DayOfMonth  int     `json:"day_of_month" binding:"required,min=1,max=31"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     *string `json:"end_date"`
}

// List returns all of the user's templates, active or not.
func (h *RecurringHandler) List(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var templates []models.RecurringTransaction
	if err := h.DB.Where("user_id = ?", user.ID).Find(&templates).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query recurring transactions failed")
		return
	}

	util.Success(c, util.Response{
		"items": templates,
	})
}

// Create adds a template, active by default.
func (h *RecurringHandler) Create(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req recurringReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	template := models.RecurringTransaction{
		UserID:      user.ID,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Type:        req.Type,
		DayOfMonth:  req.DayOfMonth,
		IsActive:    true,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if err := h.DB.Create(&template).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create recurring transaction failed")
		return
	}

	util.Success(c, util.Response{
		"recurring_transaction": template,
	})
}

// Update replaces the template fields; the active flag is only changed by Toggle.
func (h *RecurringHandler) Update(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req recurringReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	result := h.DB.Model(&models.RecurringTransaction{}).
		Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		Updates(map[string]interface{}{
			"amount":       req.Amount,
			"description":  req.Description,
			"category":     req.Category,
			"type":         req.Type,
			"day_of_month": req.DayOfMonth,
			"start_date":   req.StartDate,
			"end_date":     req.EndDate,
		})
	if result.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "update recurring transaction failed")
		return
	}
	if result.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "recurring transaction not found")
		return
	}

	util.Success(c, util.Response{
		"message": "recurring transaction updated",
	})
}

// Delete removes a template. Transactions it generated keep their dangling
// recurring_id; there is no cascade.
func (h *RecurringHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	result := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		Delete(&models.RecurringTransaction{})
	if result.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete recurring transaction failed")
		return
	}
	if result.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "recurring transaction not found")
		return
	}

	util.Success(c, util.Response{
		"message": "recurring transaction deleted",
	})
}

// Toggle flips the active flag and reports the new state.
func (h *RecurringHandler) Toggle(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var template models.RecurringTransaction
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		First(&template).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "recurring transaction not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query recurring transaction failed")
		}
		return
	}

	newState := !template.IsActive
	if err := h.DB.Model(&template).Update("is_active", newState).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "update recurring transaction failed")
		return
	}

	util.Success(c, util.Response{
		"is_active": newState,
	})
}

// Generate materializes this month's transactions for the user's active
// templates and reports how many were created.
func (h *RecurringHandler) Generate(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	count, err := generateRecurring(h.DB, user.ID, time.Now().UTC())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "generate recurring transactions failed")
		return
	}

	util.Success(c, util.Response{
		"count":   count,
		"message": fmt.Sprintf("generated %d recurring transactions", count),
	})
}

// generateRecurring creates at most one transaction per active template for
// the month containing now. The target date is built straight from the
// template's day_of_month, so day 31 in a 30-day month yields a date string
// that never parses; it is stored anyway. Re-running within the same month is
// a no-op because the (recurring_id, date) pair already exists.
func generateRecurring(db *gorm.DB, userID string, now time.Time) (int, error) {
	var templates []models.RecurringTransaction
	if err := db.Where("user_id = ? AND is_active = ?", userID, true).
		Find(&templates).Error; err != nil {
		return 0, fmt.Errorf("query active templates: %w", err)
	}

	generated := 0
	for _, template := range templates {
		date := fmt.Sprintf("%04d-%02d-%02d", now.Year(), int(now.Month()), template.DayOfMonth)

		var count int64
		if err := db.Model(&models.Transaction{}).
			Where("user_id = ? AND recurring_id = ? AND date = ?", userID, template.ID, date).
			Count(&count).Error; err != nil {
			return generated, fmt.Errorf("check existing transaction: %w", err)
		}
		if count > 0 {
			continue
		}

		recurringID := template.ID
		txn := models.Transaction{
			UserID:      userID,
			Date:        date,
			Amount:      template.Amount,
			Description: template.Description,
			Category:    template.Category,
			Type:        template.Type,
			IsRecurring: true,
			RecurringID: &recurringID,
		}
		if err := db.Create(&txn).Error; err != nil {
			return generated, fmt.Errorf("create generated transaction: %w", err)
		}
		generated++
	}

	return generated, nil
}
