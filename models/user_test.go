package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddPointsUpgradeThresholds(t *testing.T) {
	user := User{UserType: UserTypeBasic, Points: 0}

	user.AddPoints(999)
	assert.Equal(t, UserTypeBasic, user.UserType)
	assert.False(t, user.CanViewPrices())

	user.AddPoints(1)
	assert.Equal(t, 1000, user.Points)
	assert.Equal(t, UserTypePlus, user.UserType)
	assert.True(t, user.CanViewPrices())
	assert.False(t, user.CanReceivePromotions())

	user.AddPoints(999)
	assert.Equal(t, UserTypePlus, user.UserType)

	user.AddPoints(1)
	assert.Equal(t, 2000, user.Points)
	assert.Equal(t, UserTypePremium, user.UserType)
	assert.True(t, user.CanReceivePromotions())
}

// 單次大量加點只會升一級，需再次加點才會升到premium
func TestAddPointsUpgradesOneLevelPerCall(t *testing.T) {
	user := User{UserType: UserTypeBasic, Points: 0}

	user.AddPoints(2500)
	assert.Equal(t, UserTypePlus, user.UserType)

	user.AddPoints(0)
	assert.Equal(t, UserTypePremium, user.UserType)
}

// 加點路徑只升不降，負數點數也不會降級
func TestAddPointsNeverDowngrades(t *testing.T) {
	user := User{UserType: UserTypePremium, Points: 2000}

	user.AddPoints(-5000)
	assert.Equal(t, UserTypePremium, user.UserType)
	assert.True(t, user.CanViewPrices())

	previous := user.UserType
	for _, delta := range []int{0, 1, 50, 100, 500, 1000} {
		user.AddPoints(delta)
		assert.Equal(t, previous, user.UserType)
		previous = user.UserType
	}
}

func TestUpdateUserTypeRecompute(t *testing.T) {
	tests := []struct {
		points   int
		expected string
	}{
		{0, UserTypeBasic},
		{99, UserTypeBasic},
		{100, UserTypePlus},
		{499, UserTypePlus},
		{500, UserTypePremium},
		{2000, UserTypePremium},
	}

	for _, test := range tests {
		user := User{UserType: UserTypeBasic, Points: test.points}
		user.UpdateUserType()
		assert.Equal(t, test.expected, user.UserType, "points=%d", test.points)
	}
}

// 重新計算路徑與加點路徑不同，會依點數降級
func TestUpdateUserTypeCanDowngrade(t *testing.T) {
	user := User{UserType: UserTypePremium, Points: 50}
	user.UpdateUserType()
	assert.Equal(t, UserTypeBasic, user.UserType)
}

func TestCapabilitiesByUserType(t *testing.T) {
	basic := User{UserType: UserTypeBasic}
	assert.False(t, basic.CanViewPrices())
	assert.False(t, basic.CanReceivePromotions())

	plus := User{UserType: UserTypePlus}
	assert.True(t, plus.CanViewPrices())
	assert.False(t, plus.CanReceivePromotions())

	premium := User{UserType: UserTypePremium}
	assert.True(t, premium.CanViewPrices())
	assert.True(t, premium.CanReceivePromotions())
}
