package repository

import (
	"encoding/json"
	"errors"

	"coursehub/cache"
	"coursehub/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrAlreadyPurchased is returned when the user already holds an
// unrefunded purchase of the product
var ErrAlreadyPurchased = errors.New("product already purchased")

// productSnapshot is the product state frozen into the purchase row
type productSnapshot struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	ImagePath      string `json:"image_path"`
	PriceInDollars int    `json:"price_in_dollars"`
}

// CreatePurchase records an access grant for a public product. The product
// row is snapshotted into the purchase so receipts survive later edits.
func CreatePurchase(db *gorm.DB, userID, productID string) (*models.Purchase, error) {
	var purchase *models.Purchase

	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Where("id = ? AND is_deleted = ? AND status = ?", productID, false, models.ProductStatusPublic).First(&product).Error; err != nil {
			return err
		}

		var existing models.Purchase
		if err := tx.Where("user_id = ? AND product_id = ? AND refunded_at IS NULL", userID, productID).First(&existing).Error; err == nil {
			return ErrAlreadyPurchased
		}

		details, err := json.Marshal(productSnapshot{
			Name:           product.Name,
			Description:    product.Description,
			ImagePath:      product.ImagePath,
			PriceInDollars: product.PriceInDollars,
		})
		if err != nil {
			return err
		}

		purchase = &models.Purchase{
			UserID:           userID,
			ProductID:        productID,
			PricePaidInCents: product.PriceInDollars * 100,
			ProductDetails:   datatypes.JSON(details),
		}
		return tx.Create(purchase).Error
	})
	if err != nil {
		return nil, err
	}

	cache.RevalidatePurchaseTags(purchase.ID, userID)
	return purchase, nil
}

// ListUserPurchases returns the user's purchases, cached against the
// user's purchase scope
func ListUserPurchases(db *gorm.DB, userID string) ([]models.Purchase, error) {
	cacheKey := "purchases:user:" + userID
	if cached, ok := cache.Get(cacheKey); ok {
		return cached.([]models.Purchase), nil
	}

	var purchases []models.Purchase
	if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&purchases).Error; err != nil {
		return nil, err
	}

	cache.Set(cacheKey, purchases, cache.ParentTag("purchases", userID))
	return purchases, nil
}

// UserOwnsCourse reports whether the user holds an unrefunded purchase of
// any product bundling the course
func UserOwnsCourse(db *gorm.DB, userID, courseID string) (bool, error) {
	var count int64
	err := db.Model(&models.Purchase{}).
		Joins("JOIN product_courses ON product_courses.product_id = purchases.product_id").
		Where("purchases.user_id = ? AND purchases.refunded_at IS NULL AND product_courses.course_id = ?", userID, courseID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
