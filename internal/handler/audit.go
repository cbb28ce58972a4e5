package handler

import (
	"net/http"
	"strconv"

	"github.com/Sarankumarr01/Budget-Planner-main/internal/models"
	"github.com/Sarankumarr01/Budget-Planner-main/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuditHandler struct {
	DB *gorm.DB
}

func NewAuditHandler(db *gorm.DB) *AuditHandler {
	return &AuditHandler{DB: db}
}

// List returns the caller's own request trail, newest first, paginated.
func (h *AuditHandler) List(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	if err := h.DB.Model(&models.AuditLog{}).
		Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "count audit logs failed")
		return
	}

	var logs []models.AuditLog
	err := h.DB.Where("user_id = ?", user.ID).
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&logs).Error
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query audit logs failed")
		return
	}

	util.Success(c, util.Response{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"items":     logs,
	})
}
