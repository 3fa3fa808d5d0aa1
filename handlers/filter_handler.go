package handlers

import (
	"Boutique/models"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 依條件篩選商品，所有條件皆為選填且同時成立(AND)，
// 數字格式錯誤的條件直接忽略，不回傳錯誤
func FilterProductsHandler(c *gin.Context, db *gorm.DB) {
	query := db.Model(&models.Product{})

	if fabric := c.Query("fabric"); fabric != "" {
		query = query.Where("products.fabric = ?", fabric)
	}
	if style := c.Query("style"); style != "" {
		query = query.Where("products.style = ?", style)
	}
	if occasion := c.Query("occasion"); occasion != "" {
		query = query.Where("products.occasion = ?", occasion)
	}
	if minPrice := c.Query("min_price"); minPrice != "" {
		if value, err := strconv.ParseFloat(minPrice, 64); err == nil {
			query = query.Where("products.price >= ?", value)
		}
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		if value, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			query = query.Where("products.price <= ?", value)
		}
	}

	//尺寸條件：商品任一關聯尺寸名稱符合即成立，不論該尺寸庫存
	if size := c.Query("size"); size != "" {
		query = query.
			Joins("JOIN product_sizes ON product_sizes.product_id = products.id").
			Joins("JOIN sizes ON sizes.id = product_sizes.size_id").
			Where("sizes.name = ?", size).
			Distinct("products.*")
	}

	var products []models.Product
	err := query.Order("products.id ASC").Find(&products).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "篩選商品失敗",
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
		"message":    "成功篩選商品",
		"products":   productsData,
		"totalCount": len(productsData),
	})
}
