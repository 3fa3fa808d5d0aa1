package handlers

import (
	"Boutique/models"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type filterResponse struct {
	Products []struct {
		ID        uint     `json:"id"`
		Name      string   `json:"name"`
		Price     *float64 `json:"price"`
		SalePrice *float64 `json:"sale_price"`
	} `json:"products"`
	TotalCount int `json:"totalCount"`
}

// 建立篩選測試資料:
// p1 Cotton/A-line/Casual $100 尺寸S(5)、M(0)
// p2 Silk/Straight/Party  $250特價$199 尺寸L(3)
// p3 Cotton/Anarkali/Party $400 無尺寸
func seedFilterData(t *testing.T, db *gorm.DB) (p1, p2, p3 models.Product) {
	category := models.Category{Name: "Kurtis"}
	require.NoError(t, db.Create(&category).Error)

	sizeS := models.Size{Name: "S"}
	sizeM := models.Size{Name: "M"}
	sizeL := models.Size{Name: "L"}
	require.NoError(t, db.Create(&sizeS).Error)
	require.NoError(t, db.Create(&sizeM).Error)
	require.NoError(t, db.Create(&sizeL).Error)

	salePrice := 199.0
	p1 = models.Product{
		Name: "Cotton Kurti", Price: 100, Fabric: "Cotton", Style: "A-line",
		Occasion: "Casual", Stock: 5, CategoryID: category.ID,
	}
	p2 = models.Product{
		Name: "Silk Kurti", Price: 250, SalePrice: &salePrice, Fabric: "Silk",
		Style: "Straight", Occasion: "Party", Stock: 3, CategoryID: category.ID,
	}
	p3 = models.Product{
		Name: "Anarkali Dress", Price: 400, Fabric: "Cotton", Style: "Anarkali",
		Occasion: "Party", CategoryID: category.ID,
	}
	require.NoError(t, db.Create(&p1).Error)
	require.NoError(t, db.Create(&p2).Error)
	require.NoError(t, db.Create(&p3).Error)

	require.NoError(t, db.Create(&models.ProductSize{ProductID: p1.ID, SizeID: sizeS.ID, Stock: 5}).Error)
	require.NoError(t, db.Create(&models.ProductSize{ProductID: p1.ID, SizeID: sizeM.ID, Stock: 0}).Error)
	require.NoError(t, db.Create(&models.ProductSize{ProductID: p2.ID, SizeID: sizeL.ID, Stock: 3}).Error)

	return p1, p2, p3
}

func doFilterRequest(t *testing.T, router http.Handler, query string) filterResponse {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/filter"+query, nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp filterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestFilterWithoutParametersReturnsFullCatalog(t *testing.T) {
	db := setupTestDB(t)
	p1, p2, p3 := seedFilterData(t, db)
	router := newTestRouter(db, 0)

	resp := doFilterRequest(t, router, "")
	require.Len(t, resp.Products, 3)
	assert.Equal(t, 3, resp.TotalCount)

	//結果依ID遞增排序
	assert.Equal(t, p1.ID, resp.Products[0].ID)
	assert.Equal(t, p2.ID, resp.Products[1].ID)
	assert.Equal(t, p3.ID, resp.Products[2].ID)
}

func TestFilterByFabric(t *testing.T) {
	db := setupTestDB(t)
	p1, _, p3 := seedFilterData(t, db)
	router := newTestRouter(db, 0)

	resp := doFilterRequest(t, router, "?fabric=Cotton")
	require.Len(t, resp.Products, 2)
	assert.Equal(t, p1.ID, resp.Products[0].ID)
	assert.Equal(t, p3.ID, resp.Products[1].ID)
}

// 多個條件同時成立才符合
func TestFilterParametersAreConjunctive(t *testing.T) {
	db := setupTestDB(t)
	_, _, p3 := seedFilterData(t, db)
	router := newTestRouter(db, 0)

	resp := doFilterRequest(t, router, "?fabric=Cotton&occasion=Party")
	require.Len(t, resp.Products, 1)
	assert.Equal(t, p3.ID, resp.Products[0].ID)
}

// min_price與max_price為閉區間，相等時只回傳該價格的商品
func TestFilterByExactPriceWindow(t *testing.T) {
	db := setupTestDB(t)
	_, p2, _ := seedFilterData(t, db)
	router := newTestRouter(db, 0)

	resp := doFilterRequest(t, router, "?min_price=250&max_price=250")
	require.Len(t, resp.Products, 1)
	assert.Equal(t, p2.ID, resp.Products[0].ID)
}

// 尺寸條件只看關聯是否存在，不看該尺寸庫存
func TestFilterBySizeMatchesZeroStockLink(t *testing.T) {
	db := setupTestDB(t)
	p1, _, _ := seedFilterData(t, db)
	router := newTestRouter(db, 0)

	resp := doFilterRequest(t, router, "?size=M")
	require.Len(t, resp.Products, 1)
	assert.Equal(t, p1.ID, resp.Products[0].ID)
}

// 數字格式錯誤的條件直接忽略，不回傳錯誤
func TestFilterIgnoresMalformedNumericParameters(t *testing.T) {
	db := setupTestDB(t)
	seedFilterData(t, db)
	router := newTestRouter(db, 0)

	resp := doFilterRequest(t, router, "?min_price=abc&max_price=")
	assert.Len(t, resp.Products, 3)
}

func TestFilterWithNoMatchesReturnsEmptyList(t *testing.T) {
	db := setupTestDB(t)
	seedFilterData(t, db)
	router := newTestRouter(db, 0)

	resp := doFilterRequest(t, router, "?fabric=Chiffon")
	assert.Len(t, resp.Products, 0)
	assert.Equal(t, 0, resp.TotalCount)
}

// 未登入的請求所有價格皆為null
func TestFilterRedactsPricesForAnonymous(t *testing.T) {
	db := setupTestDB(t)
	seedFilterData(t, db)
	router := newTestRouter(db, 0)

	resp := doFilterRequest(t, router, "")
	require.Len(t, resp.Products, 3)
	for _, product := range resp.Products {
		assert.Nil(t, product.Price, "product %d", product.ID)
		assert.Nil(t, product.SalePrice, "product %d", product.ID)
	}
}

// basic會員看不到價格，plus會員可以
func TestFilterPriceVisibilityByUserType(t *testing.T) {
	db := setupTestDB(t)
	seedFilterData(t, db)

	basicUser := models.User{Username: "basicuser", Email: "basic@example.com", Password: "x", UserType: models.UserTypeBasic}
	plusUser := models.User{Username: "plususer", Email: "plus@example.com", Password: "x", UserType: models.UserTypePlus, Points: 1000}
	require.NoError(t, db.Create(&basicUser).Error)
	require.NoError(t, db.Create(&plusUser).Error)

	resp := doFilterRequest(t, newTestRouter(db, basicUser.ID), "")
	require.Len(t, resp.Products, 3)
	for _, product := range resp.Products {
		assert.Nil(t, product.Price)
	}

	resp = doFilterRequest(t, newTestRouter(db, plusUser.ID), "")
	require.Len(t, resp.Products, 3)
	for _, product := range resp.Products {
		assert.NotNil(t, product.Price)
	}
	assert.Equal(t, 100.0, *resp.Products[0].Price)
	require.NotNil(t, resp.Products[1].SalePrice)
	assert.Equal(t, 199.0, *resp.Products[1].SalePrice)
}
