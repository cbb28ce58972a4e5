package handler

import (
	"net/http"

	"github.com/Sarankumarr01/Budget-Planner-main/internal/models"
	"github.com/Sarankumarr01/Budget-Planner-main/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryHandler serves the per-user category set.
type CategoryHandler struct {
	DB *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{DB: db}
}

type categoryReq struct {
	Name string `json:"name" binding:"required,max=64"`
	Type string `json:"type" binding:"required,oneof=income expense"`
}

// List returns the user's categories, optionally filtered by type.
func (h *CategoryHandler) List(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	query := h.DB.Where("user_id = ?", user.ID)
	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}

	var categories []models.Category
	if err := query.Find(&categories).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query categories failed")
		return
	}

	util.Success(c, util.Response{
		"items": categories,
	})
}

// Create adds a user-defined category; it is never predefined.
func (h *CategoryHandler) Create(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	category := models.Category{
		UserID:       user.ID,
		Name:         req.Name,
		Type:         req.Type,
		IsPredefined: false,
	}
	if err := h.DB.Create(&category).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create category failed")
		return
	}

	util.Success(c, util.Response{
		"category": category,
	})
}

// Update changes name and type only; the predefined flag cannot be touched.
func (h *CategoryHandler) Update(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	result := h.DB.Model(&models.Category{}).
		Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		Updates(map[string]interface{}{"name": req.Name, "type": req.Type})
	if result.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "update category failed")
		return
	}
	if result.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "category not found")
		return
	}

	util.Success(c, util.Response{
		"message": "category updated",
	})
}

// Delete removes a user-defined category. Predefined categories are permanent.
func (h *CategoryHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var category models.Category
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		First(&category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "category not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query category failed")
		}
		return
	}

	if category.IsPredefined {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidOp, "cannot delete predefined category")
		return
	}

	if err := h.DB.Delete(&category).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete category failed")
		return
	}

	util.Success(c, util.Response{
		"message": "category deleted",
	})
}
