package handlers

import (
	"Boutique/models"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 查詢促銷商品列表(有特價的商品)，僅premium會員可存取，
// premium會員必可查看價格
func GetPromotionsHandler(c *gin.Context, db *gorm.DB) {
	var products []models.Product
	err := db.Where("sale_price IS NOT NULL").Order("id ASC").Find(&products).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法讀取促銷商品列表",
			"error":   err.Error(),
		})
		return
	}

	productsData := make([]gin.H, 0, len(products))
	for i := range products {
		productsData = append(productsData, makeProductData(db, &products[i], true))
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "成功讀取促銷商品列表",
		"products": productsData,
	})
}
