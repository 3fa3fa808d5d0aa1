package routers

import (
	"Boutique/handlers"
	"Boutique/middleware"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRouters(db *gorm.DB, rdb *redis.Client) *gin.Engine {
	//建立Gin路由器
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Authorization")
		c.Next()
	})
	err := router.SetTrustedProxies(nil)
	if err != nil {
		return nil
	}

	//設定商品圖片靜態資源路徑
	router.Static("/uploads", "./uploads")

	router.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	//狀態檢查
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Mishri Boutique API",
			"status":  "running",
		})
	})

	////無須權限，使用中間件解析登入身分(影響價格顯示)
	router.Use(middleware.AuthMiddleware(rdb))
	{
		//註冊帳號
		router.POST("/api/v1/auth/register", func(context *gin.Context) {
			handlers.RegisterHandler(context, db)
		})
		//登入帳號
		router.POST("/api/v1/auth/login", func(context *gin.Context) {
			handlers.LoginHandler(context, db, rdb)
		})
		//查詢商品列表
		router.GET("/api/v1/products", func(context *gin.Context) {
			handlers.GetProductListHandler(context, db)
		})
		//查詢精選商品列表
		router.GET("/api/v1/products/featured", func(context *gin.Context) {
			handlers.GetFeaturedProductsHandler(context, db)
		})
		//依條件篩選商品
		router.GET("/api/v1/products/filter", func(context *gin.Context) {
			handlers.FilterProductsHandler(context, db)
		})
		//查詢商品詳細資料
		router.GET("/api/v1/products/:productID", func(context *gin.Context) {
			handlers.GetProductDataHandler(context, db)
		})
		//查詢商品各尺寸的庫存
		router.GET("/api/v1/products/:productID/sizes", func(context *gin.Context) {
			handlers.GetProductSizesHandler(context, db)
		})
		//查詢商品分類列表
		router.GET("/api/v1/categories", func(context *gin.Context) {
			handlers.GetCategoryListHandler(context, db)
		})
		//查詢分類下的所有商品
		router.GET("/api/v1/categories/:categoryID/products", func(context *gin.Context) {
			handlers.GetCategoryProductsHandler(context, db)
		})
		//查詢尺寸列表
		router.GET("/api/v1/sizes", func(context *gin.Context) {
			handlers.GetSizeListHandler(context, db)
		})

		////需要登入，使用中間件檢查是否登入
		loginRequired := router.Group("/api/v1/user")
		loginRequired.Use(middleware.CheckLoginMiddleware())
		{
			//查詢使用者資料
			loginRequired.GET("/profile", func(context *gin.Context) {
				handlers.GetUserProfileHandler(context, db)
			})
			//增加點數
			loginRequired.POST("/points/add", func(context *gin.Context) {
				handlers.AddPointsHandler(context, db)
			})
			//查詢是否可查看價格
			loginRequired.GET("/check-price-access", func(context *gin.Context) {
				handlers.CheckPriceAccessHandler(context, db)
			})
			//查詢是否可接收促銷通知
			loginRequired.GET("/check-promotion-access", func(context *gin.Context) {
				handlers.CheckPromotionAccessHandler(context, db)
			})
			//登出
			loginRequired.POST("/logout", func(context *gin.Context) {
				handlers.LogOutHandler(context, rdb)
			})
		}

		////目錄寫入操作，需要登入
		writeRequired := router.Group("/api/v1")
		writeRequired.Use(middleware.CheckLoginMiddleware())
		{
			//新增商品
			writeRequired.POST("/products", func(context *gin.Context) {
				handlers.CreateProductHandler(context, db)
			})
			//修改商品
			writeRequired.PUT("/products/:productID", func(context *gin.Context) {
				handlers.UpdateProductHandler(context, db)
			})
			//刪除商品
			writeRequired.DELETE("/products/:productID", func(context *gin.Context) {
				handlers.DeleteProductHandler(context, db)
			})
			//新增商品分類
			writeRequired.POST("/categories", func(context *gin.Context) {
				handlers.CreateCategoryHandler(context, db)
			})
			//新增尺寸
			writeRequired.POST("/sizes", func(context *gin.Context) {
				handlers.CreateSizeHandler(context, db)
			})
			//上傳商品圖片
			writeRequired.POST("/images", func(context *gin.Context) {
				handlers.UploadImageHandler(context)
			})
		}

		////促銷商品列表，需要premium會員資格
		promotionRequired := router.Group("/api/v1/promotions")
		promotionRequired.Use(middleware.CheckLoginMiddleware(), middleware.CheckPromotionPermissionMiddleware(db))
		{
			promotionRequired.GET("", func(context *gin.Context) {
				handlers.GetPromotionsHandler(context, db)
			})
		}
	}

	return router
}
