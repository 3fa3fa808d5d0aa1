package handlers

import (
	"Boutique/models"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 檢查請求者是否可查看價格，未登入視為不可
func canViewPrices(c *gin.Context, db *gorm.DB) bool {
	userID, exists := c.Get("UserID")
	if !exists {
		return false
	}

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return false
	}

	return user.CanViewPrices()
}

// 將商品轉為回應資料，無權限者價格以null回傳
func makeProductData(db *gorm.DB, product *models.Product, showPrice bool) gin.H {
	var price, salePrice interface{}
	if showPrice {
		price = product.Price
		salePrice = product.SalePrice
	}

	sizes, err := findProductSizes(db, product.ID)
	if err != nil {
		log.Printf("查詢商品尺寸失敗: %v\n", err)
	}

	return gin.H{
		"id":          product.ID,
		"name":        product.Name,
		"description": product.Description,
		"price":       price,
		"sale_price":  salePrice,
		"fabric":      product.Fabric,
		"style":       product.Style,
		"occasion":    product.Occasion,
		"sleeve_type": product.SleeveType,
		"neck_type":   product.NeckType,
		"images":      product.Images,
		"stock":       product.Stock,
		"is_featured": product.IsFeatured,
		"category_id": product.CategoryID,
		"sizes":       sizes,
		"created_at":  product.CreatedAt,
		"updated_at":  product.UpdatedAt,
	}
}

// 查詢商品列表
func GetProductListHandler(c *gin.Context, db *gorm.DB) {
	var products []models.Product
	err := db.Order("id ASC").Find(&products).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法讀取商品列表",
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
		"message":    "成功讀取商品列表",
		"products":   productsData,
		"totalCount": len(productsData),
	})
}

// 查詢精選商品列表
func GetFeaturedProductsHandler(c *gin.Context, db *gorm.DB) {
	var products []models.Product
	err := db.Where("is_featured = ?", true).Order("id ASC").Find(&products).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法讀取精選商品列表",
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
		"message":  "成功讀取精選商品列表",
		"products": productsData,
	})
}

// 查詢商品詳細資料
func GetProductDataHandler(c *gin.Context, db *gorm.DB) {
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

	c.JSON(http.StatusOK, gin.H{
		"message": "成功查詢商品資料",
		"product": makeProductData(db, &product, canViewPrices(c, db)),
	})
}

// 新增商品
func CreateProductHandler(c *gin.Context, db *gorm.DB) {
	var newProduct struct {
		Name        string                    `json:"name" binding:"required"`
		Description string                    `json:"description"`
		Price       float64                   `json:"price" binding:"required"`
		SalePrice   *float64                  `json:"sale_price"`
		Fabric      string                    `json:"fabric"`
		Style       string                    `json:"style"`
		Occasion    string                    `json:"occasion"`
		SleeveType  string                    `json:"sleeve_type"`
		NeckType    string                    `json:"neck_type"`
		Images      []string                  `json:"images"`
		IsFeatured  bool                      `json:"is_featured"`
		CategoryID  uint                      `json:"category_id" binding:"required"`
		Sizes       []models.ProductSizeInput `json:"sizes"`
	}
	err := c.ShouldBindJSON(&newProduct)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "綁定請求資料錯誤",
			"error":   err.Error(),
		})
		return
	}

	//檢查商品分類是否存在
	var category models.Category
	err = db.First(&category, "id = ?", newProduct.CategoryID).Error
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

	product := models.Product{
		Name:        newProduct.Name,
		Description: newProduct.Description,
		Price:       newProduct.Price,
		SalePrice:   newProduct.SalePrice,
		Fabric:      newProduct.Fabric,
		Style:       newProduct.Style,
		Occasion:    newProduct.Occasion,
		SleeveType:  newProduct.SleeveType,
		NeckType:    newProduct.NeckType,
		Images:      newProduct.Images,
		IsFeatured:  newProduct.IsFeatured,
		CategoryID:  newProduct.CategoryID,
	}

	tx := db.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "開啟資料庫事務失敗",
			"error":   tx.Error.Error(),
		})
		return
	}

	err = tx.Create(&product).Error
	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "新增商品失敗",
			"error":   err.Error(),
		})
		return
	}

	//建立各尺寸庫存並計算總庫存，查無此尺寸時直接略過
	totalStock, err := replaceProductSizes(tx, product.ID, newProduct.Sizes)
	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "建立商品尺寸庫存失敗",
			"error":   err.Error(),
		})
		return
	}

	product.Stock = totalStock
	err = tx.Save(&product).Error
	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "更新商品總庫存失敗",
			"error":   err.Error(),
		})
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "提交事務失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "成功新增商品",
		"product": makeProductData(db, &product, true),
	})
}

// 修改商品資料，未提供的欄位保留原值
func UpdateProductHandler(c *gin.Context, db *gorm.DB) {
	productID := c.Param("productID")

	var productDataReq struct {
		Name        *string                    `json:"name"`
		Description *string                    `json:"description"`
		Price       *float64                   `json:"price"`
		SalePrice   *float64                   `json:"sale_price"`
		Fabric      *string                    `json:"fabric"`
		Style       *string                    `json:"style"`
		Occasion    *string                    `json:"occasion"`
		SleeveType  *string                    `json:"sleeve_type"`
		NeckType    *string                    `json:"neck_type"`
		Images      []string                   `json:"images"`
		IsFeatured  *bool                      `json:"is_featured"`
		CategoryID  *uint                      `json:"category_id"`
		Sizes       *[]models.ProductSizeInput `json:"sizes"`
	}
	err := c.ShouldBindJSON(&productDataReq)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "綁定請求資料錯誤",
			"error":   err.Error(),
		})
		return
	}

	var product models.Product
	err = db.First(&product, "id = ?", productID).Error
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

	if productDataReq.CategoryID != nil {
		var category models.Category
		err = db.First(&category, "id = ?", *productDataReq.CategoryID).Error
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
		product.CategoryID = *productDataReq.CategoryID
	}

	if productDataReq.Name != nil {
		product.Name = *productDataReq.Name
	}
	if productDataReq.Description != nil {
		product.Description = *productDataReq.Description
	}
	if productDataReq.Price != nil {
		product.Price = *productDataReq.Price
	}
	if productDataReq.SalePrice != nil {
		product.SalePrice = productDataReq.SalePrice
	}
	if productDataReq.Fabric != nil {
		product.Fabric = *productDataReq.Fabric
	}
	if productDataReq.Style != nil {
		product.Style = *productDataReq.Style
	}
	if productDataReq.Occasion != nil {
		product.Occasion = *productDataReq.Occasion
	}
	if productDataReq.SleeveType != nil {
		product.SleeveType = *productDataReq.SleeveType
	}
	if productDataReq.NeckType != nil {
		product.NeckType = *productDataReq.NeckType
	}
	if productDataReq.Images != nil {
		product.Images = productDataReq.Images
	}
	if productDataReq.IsFeatured != nil {
		product.IsFeatured = *productDataReq.IsFeatured
	}

	tx := db.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "開啟資料庫事務失敗",
			"error":   tx.Error.Error(),
		})
		return
	}

	//有提供sizes時，清除原有的尺寸庫存並全部重建，總庫存重新計算
	if productDataReq.Sizes != nil {
		err = tx.Where("product_id = ?", product.ID).Delete(&models.ProductSize{}).Error
		if err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "清除商品尺寸庫存失敗",
				"error":   err.Error(),
			})
			return
		}

		totalStock, err := replaceProductSizes(tx, product.ID, *productDataReq.Sizes)
		if err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "建立商品尺寸庫存失敗",
				"error":   err.Error(),
			})
			return
		}

		product.Stock = totalStock
	}

	err = tx.Save(&product).Error
	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "修改商品資料失敗",
			"error":   err.Error(),
		})
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "提交事務失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "成功修改商品資料",
		"product": makeProductData(db, &product, true),
	})
}

// 建立商品各尺寸庫存並回傳總庫存，查無此尺寸ID時直接略過
func replaceProductSizes(tx *gorm.DB, productID uint, sizeInputs []models.ProductSizeInput) (int, error) {
	totalStock := 0
	for _, sizeInput := range sizeInputs {
		var size models.Size
		err := tx.First(&size, "id = ?", sizeInput.SizeID).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				continue //查無此尺寸，略過此筆
			}
			return 0, err
		}

		productSize := models.ProductSize{
			ProductID: productID,
			SizeID:    size.ID,
			Stock:     sizeInput.Stock,
		}
		if err := tx.Create(&productSize).Error; err != nil {
			return 0, err
		}

		totalStock += sizeInput.Stock
	}

	return totalStock, nil
}

// 刪除商品及其尺寸庫存
func DeleteProductHandler(c *gin.Context, db *gorm.DB) {
	productID := c.Param("productID")

	tx := db.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "開啟資料庫事務失敗",
			"error":   tx.Error.Error(),
		})
		return
	}

	var product models.Product
	err := tx.First(&product, "id = ?", productID).Error
	if err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "找不到此商品",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查找此商品失敗",
			"error":   err.Error(),
		})
		return
	}

	err = tx.Where("product_id = ?", product.ID).Delete(&models.ProductSize{}).Error
	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "刪除商品尺寸庫存失敗",
			"error":   err.Error(),
		})
		return
	}

	err = tx.Delete(&product).Error
	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "刪除商品失敗",
			"error":   err.Error(),
		})
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "提交事務失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "成功刪除商品",
	})
}
