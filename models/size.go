package models

type Size struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Name         string `gorm:"not null" json:"name"` //XS、S、M、L、XL、XXL等
	Measurements string `json:"measurements"`         //例如"Bust: 36, Length: 45"
}

// 商品與尺寸的關聯，紀錄每個尺寸的庫存
type ProductSize struct {
	ID        uint `gorm:"primarykey" json:"id"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_product_size" json:"product_id"`
	SizeID    uint `gorm:"not null;uniqueIndex:idx_product_size" json:"size_id"`
	Stock     int  `gorm:"default:0" json:"stock"`
}

// 新增或修改商品尺寸庫存的請求資料
type ProductSizeInput struct {
	SizeID uint `json:"size_id" binding:"required"`
	Stock  int  `json:"stock"`
}
