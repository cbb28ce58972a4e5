package handler

import (
	"net/http"

	"github.com/Sarankumarr01/Budget-Planner-main/internal/models"
	"github.com/Sarankumarr01/Budget-Planner-main/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BudgetHandler serves planned amounts per (category, month, year).
type BudgetHandler struct {
	DB *gorm.DB
}

func NewBudgetHandler(db *gorm.DB) *BudgetHandler {
	return &BudgetHandler{DB: db}
}

type budgetReq struct {
	Category      string  `json:"category" binding:"required,max=64"`
	Month         int     `json:"month" binding:"required,min=1,max=12"`
	Year          int     `json:"year" binding:"required"`
	PlannedAmount float64 `json:"planned_amount"`
}

// List returns the user's budgets, optionally narrowed by month and year.
func (h *BudgetHandler) List(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	query := h.DB.Where("user_id = ?", user.ID)
	if month := c.Query("month"); month != "" {
		query = query.Where("month = ?", month)
	}
	if year := c.Query("year"); year != "" {
		query = query.Where("year = ?", year)
	}

	var budgets []models.Budget
	if err := query.Find(&budgets).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query budgets failed")
		return
	}

	util.Success(c, util.Response{
		"items": budgets,
	})
}

// Upsert sets the planned amount for one key: a second POST for the same
// (category, month, year) updates in place rather than adding a row. The
// read-then-write pair is not transactional; concurrent posts for the same
// key are last-write-wins.
func (h *BudgetHandler) Upsert(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req budgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	var existing models.Budget
	err := h.DB.Where("user_id = ? AND category = ? AND month = ? AND year = ?",
		user.ID, req.Category, req.Month, req.Year).
		First(&existing).Error

	switch {
	case err == nil:
		if err := h.DB.Model(&existing).
			Update("planned_amount", req.PlannedAmount).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "update budget failed")
			return
		}
		util.Success(c, util.Response{
			"message": "budget updated",
		})

	case err == gorm.ErrRecordNotFound:
		budget := models.Budget{
			UserID:        user.ID,
			Category:      req.Category,
			Month:         req.Month,
			Year:          req.Year,
			PlannedAmount: req.PlannedAmount,
		}
		if err := h.DB.Create(&budget).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create budget failed")
			return
		}
		util.Success(c, util.Response{
			"message": "budget created",
		})

	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query budget failed")
	}
}
