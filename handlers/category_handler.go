package handlers

import (
	"Boutique/models"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 查詢商品分類列表
func GetCategoryListHandler(c *gin.Context, db *gorm.DB) {
	var categories []models.Category
	err := db.Order("id ASC").Find(&categories).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法讀取商品分類列表",
			"error":   err.Error(),
		})
		return
	}

	categoriesData := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		categoriesData = append(categoriesData, gin.H{
			"id":          category.ID,
			"name":        category.Name,
			"description": category.Description,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "成功讀取商品分類列表",
		"categories": categoriesData,
	})
}

// 新增商品分類
func CreateCategoryHandler(c *gin.Context, db *gorm.DB) {
	var newCategory struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&newCategory); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "綁定請求資料錯誤",
			"error":   err.Error(),
		})
		return
	}

	category := models.Category{
		Name:        newCategory.Name,
		Description: newCategory.Description,
	}
	if err := db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "新增商品分類失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "成功新增商品分類",
		"category": category,
	})
}

// 查詢分類下的所有商品
func GetCategoryProductsHandler(c *gin.Context, db *gorm.DB) {
	categoryID := c.Param("categoryID")

	var category models.Category
	err := db.First(&category, "id = ?", categoryID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "找不到此商品分類",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢商品分類失敗",
			"error":   err.Error(),
		})
		return
	}

	var products []models.Product
	err = db.Where("category_id = ?", category.ID).Order("id ASC").Find(&products).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法讀取分類商品列表",
			"error":   err.Error(),
		})
		return
	}

	showPrice := canViewPrices(c, db)

	productsData := make([]gin.H, 0, len(products))
	for i := range products {
		productsData = append(productsData, makeProductData(db, &products[i], showPrice))
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "成功讀取分類商品列表",
		"products": productsData,
	})
}
