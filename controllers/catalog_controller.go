package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ieadaj/church-orders-api/config"
	"github.com/ieadaj/church-orders-api/models"
	"gorm.io/gorm"
)

// The lot/size/model catalogs are add-only: entries are never edited or
// removed, and inserting an existing key is a no-op reported as a conflict.

// AddLotRequest represents the request body for adding a lot
type AddLotRequest struct {
	LotNumber   string `json:"lot_number" binding:"required"`
	Description string `json:"description"`
}

// AddSizeRequest represents the request body for adding a size
type AddSizeRequest struct {
	SizeName    string `json:"size_name" binding:"required"`
	Description string `json:"description"`
}

// AddModelRequest represents the request body for adding a t-shirt model
type AddModelRequest struct {
	ModelName   string `json:"model_name" binding:"required"`
	Description string `json:"description"`
}

// AddLot handles POST /api/v1/lots
func AddLot(c *gin.Context) {
	var req AddLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		catalogValidationFailed(c, err)
		return
	}

	db := config.GetDB()

	var existing models.Lot
	err := db.Where("lot_number = ?", req.LotNumber).First(&existing).Error
	if err == nil {
		catalogDuplicate(c, "Lote já existe")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		catalogQueryFailed(c)
		return
	}

	lot := models.Lot{LotNumber: req.LotNumber, Description: req.Description}
	if err := db.Create(&lot).Error; err != nil {
		catalogQueryFailed(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    lot,
	})
}

// GetLots handles GET /api/v1/lots
func GetLots(c *gin.Context) {
	db := config.GetDB()

	var lots []models.Lot
	if err := db.Find(&lots).Error; err != nil {
		catalogQueryFailed(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    lots,
	})
}

// AddSize handles POST /api/v1/sizes
func AddSize(c *gin.Context) {
	var req AddSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		catalogValidationFailed(c, err)
		return
	}

	db := config.GetDB()

	var existing models.Size
	err := db.Where("size_name = ?", req.SizeName).First(&existing).Error
	if err == nil {
		catalogDuplicate(c, "Tamanho já existe")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		catalogQueryFailed(c)
		return
	}

	size := models.Size{SizeName: req.SizeName, Description: req.Description}
	if err := db.Create(&size).Error; err != nil {
		catalogQueryFailed(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    size,
	})
}

// GetSizes handles GET /api/v1/sizes
func GetSizes(c *gin.Context) {
	db := config.GetDB()

	var sizes []models.Size
	if err := db.Find(&sizes).Error; err != nil {
		catalogQueryFailed(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sizes,
	})
}

// AddModel handles POST /api/v1/models
func AddModel(c *gin.Context) {
	var req AddModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		catalogValidationFailed(c, err)
		return
	}

	db := config.GetDB()

	var existing models.TShirtModel
	err := db.Where("model_name = ?", req.ModelName).First(&existing).Error
	if err == nil {
		catalogDuplicate(c, "Modelo já existe")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		catalogQueryFailed(c)
		return
	}

	model := models.TShirtModel{ModelName: req.ModelName, Description: req.Description}
	if err := db.Create(&model).Error; err != nil {
		catalogQueryFailed(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    model,
	})
}

// GetModels handles GET /api/v1/models
func GetModels(c *gin.Context) {
	db := config.GetDB()

	var tshirtModels []models.TShirtModel
	if err := db.Find(&tshirtModels).Error; err != nil {
		catalogQueryFailed(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tshirtModels,
	})
}

// catalogValidationFailed writes the 400 envelope for malformed catalog input
func catalogValidationFailed(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Dados inválidos",
			"details": err.Error(),
		},
	})
}

// catalogDuplicate writes the 409 envelope for duplicate catalog keys
func catalogDuplicate(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "DUPLICATE",
			"message": message,
		},
	})
}

// catalogQueryFailed writes the 500 envelope for catalog persistence failures
func catalogQueryFailed(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "DATABASE_ERROR",
			"message": "Falha ao acessar o catálogo",
		},
	})
}
