package handlers

import (
	"Boutique/models"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesBasicUser(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(db, 0)

	w := doJSONRequest(t, router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"username": "mishri_fan",
		"email":    "fan@example.com",
		"password": "SuperSecret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "fan@example.com").Error)
	assert.Equal(t, models.UserTypeBasic, user.UserType)
	assert.Equal(t, 0, user.Points)
	assert.NotEqual(t, "SuperSecret1", user.Password) //密碼必須Hash後儲存
}

// 重複信箱註冊回傳400且不會新增第二筆使用者
func TestRegisterWithDuplicateEmailReturnsBadRequest(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(db, 0)

	w := doJSONRequest(t, router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"username": "firstuser",
		"email":    "taken@example.com",
		"password": "SuperSecret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSONRequest(t, router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"username": "seconduser",
		"email":    "taken@example.com",
		"password": "SuperSecret1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "taken@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterWithDuplicateUsernameReturnsBadRequest(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(db, 0)

	w := doJSONRequest(t, router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"username": "sameuser",
		"email":    "first@example.com",
		"password": "SuperSecret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSONRequest(t, router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"username": "sameuser",
		"email":    "second@example.com",
		"password": "SuperSecret1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(db, 0)

	//信箱格式錯誤
	w := doJSONRequest(t, router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"username": "validuser",
		"email":    "not-an-email",
		"password": "SuperSecret1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	//密碼過短
	w = doJSONRequest(t, router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"username": "validuser",
		"email":    "valid@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

// 透過API加點:999點仍為basic，加1點達1000升為plus並可查看價格
func TestAddPointsEndpointUpgradesAtThreshold(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Username: "member", Email: "member@example.com", Password: "x", UserType: models.UserTypeBasic, Points: 0}
	require.NoError(t, db.Create(&user).Error)
	router := newTestRouter(db, user.ID)

	w := doJSONRequest(t, router, http.MethodPost, "/api/v1/user/points/add", gin.H{
		"points": 999,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User struct {
			UserType      string `json:"user_type"`
			Points        int    `json:"points"`
			CanViewPrices bool   `json:"can_view_prices"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.UserTypeBasic, resp.User.UserType)
	assert.False(t, resp.User.CanViewPrices)

	w = doJSONRequest(t, router, http.MethodPost, "/api/v1/user/points/add", gin.H{
		"points": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1000, resp.User.Points)
	assert.Equal(t, models.UserTypePlus, resp.User.UserType)
	assert.True(t, resp.User.CanViewPrices)

	//資料庫同步更新
	require.NoError(t, db.First(&user, "id = ?", user.ID).Error)
	assert.Equal(t, models.UserTypePlus, user.UserType)
}
