package handler

import (
	"net/http"

	"github.com/Sarankumarr01/Budget-Planner-main/internal/models"
	"github.com/Sarankumarr01/Budget-Planner-main/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SettingsHandler serves per-user preferences.
type SettingsHandler struct {
	DB *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{DB: db}
}

type settingsReq struct {
	Currency string `json:"currency" binding:"required,max=8"`
}

// Get returns the user's settings, creating the default row on first read if
// the account predates it.
func (h *SettingsHandler) Get(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var settings models.UserSettings
	err := h.DB.Where("user_id = ?", user.ID).First(&settings).Error
	if err == gorm.ErrRecordNotFound {
		settings = models.UserSettings{UserID: user.ID, Currency: models.DefaultCurrency}
		if err := h.DB.Create(&settings).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create settings failed")
			return
		}
	} else if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query settings failed")
		return
	}

	util.Success(c, util.Response{
		"settings": settings,
	})
}

// Update upserts the currency symbol.
func (h *SettingsHandler) Update(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req settingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	result := h.DB.Model(&models.UserSettings{}).
		Where("user_id = ?", user.ID).
		Update("currency", req.Currency)
	if result.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "update settings failed")
		return
	}
	if result.RowsAffected == 0 {
		settings := models.UserSettings{UserID: user.ID, Currency: req.Currency}
		if err := h.DB.Create(&settings).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create settings failed")
			return
		}
	}

	util.Success(c, util.Response{
		"message": "settings updated",
	})
}
