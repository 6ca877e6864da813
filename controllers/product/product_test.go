package productControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/PerryB-GIT/sweetmeadow-bakery/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Inventory{},
		&models.InventoryLog{},
		&models.Favorite{},
	))
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", GetMenuHandler(db))
	r.GET("/admin/products", GetAllProductsHandler(db))
	r.POST("/admin/products", CreateProductHandler(db))
	r.PATCH("/admin/products/:id", UpdateProductHandler(db))
	r.DELETE("/admin/products/:id", DeleteProductHandler(db))
	r.GET("/categories", GetCategoriesHandler(db))
	r.POST("/admin/categories", CreateCategoryHandler(db))
	r.DELETE("/admin/categories/:id", DeleteCategoryHandler(db))
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProductProvisionsInventory(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db)

	w := doJSON(r, http.MethodPost, "/admin/products", gin.H{
		"name":  "Lemon Tart",
		"price": 6.50,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var product models.Product
	require.NoError(t, db.First(&product, "name = ?", "Lemon Tart").Error)
	assert.True(t, product.Available)

	var inventory models.Inventory
	require.NoError(t, db.First(&inventory, "product_id = ?", product.ID).Error)
	assert.Equal(t, 0, inventory.Quantity)
	assert.Equal(t, 5, inventory.LowStockAlert)
}

func TestPublicMenuHidesUnavailable(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db)

	visible := models.Product{ID: uuid.NewString(), Name: "Croissant", Price: 3.50, Available: true}
	hidden := models.Product{ID: uuid.NewString(), Name: "Secret Cake", Price: 40, Available: false}
	require.NoError(t, db.Create(&visible).Error)
	require.NoError(t, db.Create(&hidden).Error)

	w := doJSON(r, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Croissant")
	assert.NotContains(t, w.Body.String(), "Secret Cake")

	// The admin listing sees everything.
	w = doJSON(r, http.MethodGet, "/admin/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Secret Cake")
}

func TestUpdateProductClearsCategory(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db)

	category := models.Category{ID: uuid.NewString(), Name: "Cakes", Slug: "cakes"}
	require.NoError(t, db.Create(&category).Error)
	product := models.Product{ID: uuid.NewString(), Name: "Cake", Price: 20, Available: true, CategoryID: &category.ID}
	require.NoError(t, db.Create(&product).Error)

	w := doJSON(r, http.MethodPatch, "/admin/products/"+product.ID, gin.H{"category_id": ""})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Product
	require.NoError(t, db.First(&updated, "id = ?", product.ID).Error)
	assert.Nil(t, updated.CategoryID)
}

func TestDeleteProductCascades(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db)

	product := models.Product{ID: uuid.NewString(), Name: "Scone", Price: 2.75, Available: true}
	require.NoError(t, db.Create(&product).Error)
	inventory := models.Inventory{ID: uuid.NewString(), ProductID: product.ID, Quantity: 8, LowStockAlert: 5}
	require.NoError(t, db.Create(&inventory).Error)
	require.NoError(t, db.Create(&models.InventoryLog{ID: uuid.NewString(), InventoryID: inventory.ID, Change: 8, Reason: "Manual adjustment"}).Error)
	require.NoError(t, db.Create(&models.Favorite{ID: uuid.NewString(), UserID: uuid.NewString(), ProductID: product.ID}).Error)

	w := doJSON(r, http.MethodDelete, "/admin/products/"+product.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products, inventories, logs, favorites int64
	db.Model(&models.Product{}).Count(&products)
	db.Model(&models.Inventory{}).Count(&inventories)
	db.Model(&models.InventoryLog{}).Count(&logs)
	db.Model(&models.Favorite{}).Count(&favorites)
	assert.Zero(t, products)
	assert.Zero(t, inventories)
	assert.Zero(t, logs)
	assert.Zero(t, favorites)
}

func TestDeleteCategoryDetachesProducts(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db)

	category := models.Category{ID: uuid.NewString(), Name: "Seasonal", Slug: "seasonal"}
	require.NoError(t, db.Create(&category).Error)
	product := models.Product{ID: uuid.NewString(), Name: "Pumpkin Pie", Price: 18, Available: true, CategoryID: &category.ID}
	require.NoError(t, db.Create(&product).Error)

	w := doJSON(r, http.MethodDelete, "/admin/categories/"+category.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var kept models.Product
	require.NoError(t, db.First(&kept, "id = ?", product.ID).Error)
	assert.Nil(t, kept.CategoryID)

	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.Zero(t, count)
}

func TestCategoriesSortedBySortOrder(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db)

	require.NoError(t, db.Create(&models.Category{ID: uuid.NewString(), Name: "Second", Slug: "second", SortOrder: 2}).Error)
	require.NoError(t, db.Create(&models.Category{ID: uuid.NewString(), Name: "First", Slug: "first", SortOrder: 1}).Error)

	w := doJSON(r, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories []struct {
			Name string `json:"name"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Categories, 2)
	assert.Equal(t, "First", resp.Categories[0].Name)
	assert.Equal(t, "Second", resp.Categories[1].Name)
}
