package models

import (
	"time"
)

type Product struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	SalePrice   *float64  `json:"sale_price"` //特價，無特價時為null
	Fabric      string    `json:"fabric"`     //例如Cotton、Silk、Chiffon
	Style       string    `json:"style"`      //例如A-line、Straight、Anarkali
	Occasion    string    `json:"occasion"`   //例如Casual、Party、Festival
	SleeveType  string    `json:"sleeve_type"`
	NeckType    string    `json:"neck_type"`
	Images      []string  `gorm:"type:text;serializer:json" json:"images"`
	Stock       int       `gorm:"default:0" json:"stock"` //所有尺寸的總庫存
	IsFeatured  bool      `gorm:"default:false" json:"is_featured"`
	CategoryID  uint      `gorm:"not null" json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
