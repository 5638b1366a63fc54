package repository

import (
	"encoding/json"
	"testing"
	"time"

	"coursehub/cache"
	"coursehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreatePurchaseSnapshotsProduct(t *testing.T) {
	db := setupTestDb(t)
	course := createTestCourse(t, db, "Go Basics")
	product := createTestProduct(t, db, "Go Bundle", 49, course.ID)

	purchase, err := CreatePurchase(db, "user-1", product.ID)
	require.NoError(t, err)

	assert.Equal(t, 4900, purchase.PricePaidInCents)

	var snapshot map[string]interface{}
	require.NoError(t, json.Unmarshal(purchase.ProductDetails, &snapshot))
	assert.Equal(t, "Go Bundle", snapshot["name"])
	assert.Equal(t, float64(49), snapshot["price_in_dollars"])

	// Later edits must not leak into the stored receipt
	_, err = UpdateProduct(db, product.ID, ProductInput{Name: "Renamed", PriceInDollars: 99})
	require.NoError(t, err)

	var stored models.Purchase
	require.NoError(t, db.Where("id = ?", purchase.ID).First(&stored).Error)
	require.NoError(t, json.Unmarshal(stored.ProductDetails, &snapshot))
	assert.Equal(t, "Go Bundle", snapshot["name"])
}

func TestCreatePurchaseDuplicate(t *testing.T) {
	db := setupTestDb(t)
	product := createTestProduct(t, db, "Go Bundle", 49)

	_, err := CreatePurchase(db, "user-1", product.ID)
	require.NoError(t, err)

	_, err = CreatePurchase(db, "user-1", product.ID)
	assert.ErrorIs(t, err, ErrAlreadyPurchased)

	// A different user is unaffected
	_, err = CreatePurchase(db, "user-2", product.ID)
	assert.NoError(t, err)
}

func TestCreatePurchasePrivateProduct(t *testing.T) {
	db := setupTestDb(t)

	product, err := CreateProduct(db, ProductInput{
		Name:           "Hidden",
		PriceInDollars: 10,
		Status:         models.ProductStatusPrivate,
	})
	require.NoError(t, err)

	_, err = CreatePurchase(db, "user-1", product.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreatePurchaseAfterRefund(t *testing.T) {
	db := setupTestDb(t)
	product := createTestProduct(t, db, "Go Bundle", 49)

	first, err := CreatePurchase(db, "user-1", product.ID)
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, db.Model(&models.Purchase{}).Where("id = ?", first.ID).Update("refunded_at", now).Error)

	// A refunded purchase no longer blocks buying again
	_, err = CreatePurchase(db, "user-1", product.ID)
	assert.NoError(t, err)
}

func TestUserOwnsCourse(t *testing.T) {
	db := setupTestDb(t)
	owned := createTestCourse(t, db, "Go Basics")
	other := createTestCourse(t, db, "Go Advanced")
	product := createTestProduct(t, db, "Go Bundle", 49, owned.ID)

	purchase, err := CreatePurchase(db, "user-1", product.ID)
	require.NoError(t, err)

	got, err := UserOwnsCourse(db, "user-1", owned.ID)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = UserOwnsCourse(db, "user-1", other.ID)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = UserOwnsCourse(db, "user-2", owned.ID)
	require.NoError(t, err)
	assert.False(t, got)

	// Refunds revoke access
	require.NoError(t, db.Model(&models.Purchase{}).Where("id = ?", purchase.ID).Update("refunded_at", time.Now()).Error)

	got, err = UserOwnsCourse(db, "user-1", owned.ID)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestCreatePurchaseInvalidatesUserScope(t *testing.T) {
	db := setupTestDb(t)
	product := createTestProduct(t, db, "Go Bundle", 49)

	seedCacheProbe("probe-purchases", cache.ParentTag("purchases", "user-1"))

	_, err := CreatePurchase(db, "user-1", product.ID)
	require.NoError(t, err)

	assert.True(t, probeEvicted("probe-purchases"))
}

func TestListUserPurchases(t *testing.T) {
	db := setupTestDb(t)
	p1 := createTestProduct(t, db, "Bundle A", 10)
	p2 := createTestProduct(t, db, "Bundle B", 20)

	_, err := CreatePurchase(db, "user-1", p1.ID)
	require.NoError(t, err)
	_, err = CreatePurchase(db, "user-1", p2.ID)
	require.NoError(t, err)
	_, err = CreatePurchase(db, "user-2", p1.ID)
	require.NoError(t, err)

	purchases, err := ListUserPurchases(db, "user-1")
	require.NoError(t, err)
	assert.Len(t, purchases, 2)
}
