package models

import (
	"time"
)

// 會員等級
const (
	UserTypeBasic   = "basic"   //無法查看價格
	UserTypePlus    = "plus"    //可查看價格
	UserTypePremium = "premium" //可查看價格並接收促銷通知
)

// 會員等級重新計算門檻
const (
	PlusThreshold    = 100
	PremiumThreshold = 500
)

type User struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	Username  string     `gorm:"unique;not null" json:"username"`
	Email     string     `gorm:"unique;not null" json:"email"`
	Password  string     `gorm:"not null" json:"-"`
	UserType  string     `gorm:"default:basic" json:"user_type"`
	Points    int        `gorm:"default:0" json:"points"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}

// 依累積點數重新計算會員等級，可升可降
func (u *User) UpdateUserType() {
	switch {
	case u.Points >= PremiumThreshold:
		u.UserType = UserTypePremium
	case u.Points >= PlusThreshold:
		u.UserType = UserTypePlus
	default:
		u.UserType = UserTypeBasic
	}
}

// 增加點數並檢查是否達到升級門檻，只升不降
func (u *User) AddPoints(points int) {
	u.Points += points
	if u.Points >= 1000 && u.UserType == UserTypeBasic {
		u.UserType = UserTypePlus
	} else if u.Points >= 2000 && u.UserType == UserTypePlus {
		u.UserType = UserTypePremium
	}
}

// 檢查是否可查看價格
func (u *User) CanViewPrices() bool {
	return u.UserType == UserTypePlus || u.UserType == UserTypePremium
}

// 檢查是否可接收促銷通知
func (u *User) CanReceivePromotions() bool {
	return u.UserType == UserTypePremium
}
