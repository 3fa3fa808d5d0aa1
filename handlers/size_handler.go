package handlers

import (
	"Boutique/models"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 尺寸及其在某商品的庫存
type sizeWithStock struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Measurements string `json:"measurements"`
	Stock        int    `json:"stock"`
}

// 查詢商品各尺寸的庫存
func findProductSizes(db *gorm.DB, productID uint) ([]sizeWithStock, error) {
	sizes := make([]sizeWithStock, 0)
	err := db.Table("product_sizes").
		Select("sizes.id", "sizes.name", "sizes.measurements", "product_sizes.stock").
		Joins("JOIN sizes ON sizes.id = product_sizes.size_id").
		Where("product_sizes.product_id = ?", productID).
		Order("sizes.id ASC").
		Scan(&sizes).
		Error
	return sizes, err
}

// 查詢尺寸列表
func GetSizeListHandler(c *gin.Context, db *gorm.DB) {
	var sizes []models.Size
	err := db.Order("id ASC").Find(&sizes).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法讀取尺寸列表",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "成功讀取尺寸列表",
		"sizes":   sizes,
	})
}

// 新增尺寸
func CreateSizeHandler(c *gin.Context, db *gorm.DB) {
	var newSize struct {
		Name         string `json:"name" binding:"required"`
		Measurements string `json:"measurements"`
	}
	if err := c.ShouldBindJSON(&newSize); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "綁定請求資料錯誤",
			"error":   err.Error(),
		})
		return
	}

	size := models.Size{
		Name:         newSize.Name,
		Measurements: newSize.Measurements,
	}
	if err := db.Create(&size).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "新增尺寸失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "成功新增尺寸",
		"size":    size,
	})
}

// 查詢商品各尺寸的庫存列表
func GetProductSizesHandler(c *gin.Context, db *gorm.DB) {
	productID := c.Param("productID")

	var product models.Product
	err := db.First(&product, "id = ?", productID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "找不到此商品",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢商品資料失敗",
			"error":   err.Error(),
		})
		return
	}

	sizes, err := findProductSizes(db, product.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢商品尺寸庫存失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "成功查詢商品尺寸庫存",
		"sizes":   sizes,
	})
}
