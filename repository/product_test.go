package repository

import (
	"testing"

	"coursehub/cache"
	"coursehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestProduct(t *testing.T, db *gorm.DB, name string, price int, courseIDs ...string) *models.Product {
	t.Helper()
	product, err := CreateProduct(db, ProductInput{
		Name:           name,
		Description:    "desc",
		PriceInDollars: price,
		Status:         models.ProductStatusPublic,
		CourseIDs:      courseIDs,
	})
	require.NoError(t, err)
	return product
}

func TestCreateProductLinksCourses(t *testing.T) {
	db := setupTestDb(t)
	c1 := createTestCourse(t, db, "Go Basics")
	c2 := createTestCourse(t, db, "Go Advanced")

	product := createTestProduct(t, db, "Go Bundle", 49, c1.ID, c2.ID)

	got, err := GetProduct(db, product.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{c1.ID, c2.ID}, got.CourseIDs)
}

func TestUpdateProductReplacesLinks(t *testing.T) {
	db := setupTestDb(t)
	c1 := createTestCourse(t, db, "Go Basics")
	c2 := createTestCourse(t, db, "Go Advanced")

	product := createTestProduct(t, db, "Go Bundle", 49, c1.ID)

	_, err := UpdateProduct(db, product.ID, ProductInput{CourseIDs: []string{c2.ID}})
	require.NoError(t, err)

	got, err := GetProduct(db, product.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{c2.ID}, got.CourseIDs)
}

func TestDeleteProductHidesIt(t *testing.T) {
	db := setupTestDb(t)
	product := createTestProduct(t, db, "Go Bundle", 49)

	_, err := DeleteProduct(db, product.ID)
	require.NoError(t, err)

	_, err = GetProduct(db, product.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var links int64
	require.NoError(t, db.Model(&models.ProductCourse{}).Where("product_id = ?", product.ID).Count(&links).Error)
	assert.Zero(t, links)
}

func TestListProductsPublicOnly(t *testing.T) {
	db := setupTestDb(t)
	createTestProduct(t, db, "Public", 10)

	_, err := CreateProduct(db, ProductInput{
		Name:           "Hidden",
		PriceInDollars: 10,
		Status:         models.ProductStatusPrivate,
	})
	require.NoError(t, err)

	all, err := ListProducts(db, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	public, err := ListProducts(db, true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Public", public[0].Name)
}

func TestUpdateProductInvalidatesCache(t *testing.T) {
	db := setupTestDb(t)
	product := createTestProduct(t, db, "Go Bundle", 49)

	seedCacheProbe("probe-product", cache.IdTag("products", product.ID))
	seedCacheProbe("probe-products", cache.GlobalTag("products"))

	_, err := UpdateProduct(db, product.ID, ProductInput{Name: "Renamed"})
	require.NoError(t, err)

	assert.True(t, probeEvicted("probe-product"))
	assert.True(t, probeEvicted("probe-products"))
}
