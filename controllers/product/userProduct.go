package controllers

import (
	"errors"

	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/repository"
	"coursehub/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetProductList lists public products for the storefront
func GetProductList(c *fiber.Ctx) error {
	products, err := repository.ListProducts(database.Database.Db, true)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch products!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Products fetched successfully!", products)
}

// GetProductDetails returns one public product
func GetProductDetails(c *fiber.Ctx) error {
	productID := c.Locals("productID").(string)

	product, err := repository.GetProduct(database.Database.Db, productID)
	if err != nil || product.Status != models.ProductStatusPublic {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product fetched successfully!", product)
}

// PurchaseProduct records an access grant for the caller and sends a
// receipt email. Payment collection happens outside this API.
func PurchaseProduct(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	productID := c.Locals("productID").(string)

	purchase, err := repository.CreatePurchase(database.Database.Db, userID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyPurchased) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Product already purchased!", nil)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to purchase product!", nil)
	}

	go utils.SendPurchaseReceiptEmail(user.Email, user.Name, purchase)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Product purchased successfully!", purchase)
}

// GetMyPurchases lists the caller's purchases
func GetMyPurchases(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	purchases, err := repository.ListUserPurchases(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch purchases!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchases fetched successfully!", purchases)
}
