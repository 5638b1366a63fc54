package controllers

import (
	"errors"

	"coursehub/database"
	"coursehub/middleware"
	"coursehub/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminCreateProduct creates a new product bundling one or more courses
func AdminCreateProduct(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProduct").(*struct {
		Name           string   `json:"name"`
		Description    string   `json:"description"`
		ImagePath      string   `json:"image_path"`
		PriceInDollars int      `json:"price_in_dollars"`
		Status         string   `json:"status"`
		CourseIDs      []string `json:"course_ids"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	product, err := repository.CreateProduct(database.Database.Db, repository.ProductInput{
		Name:           reqData.Name,
		Description:    reqData.Description,
		ImagePath:      reqData.ImagePath,
		PriceInDollars: reqData.PriceInDollars,
		Status:         reqData.Status,
		CourseIDs:      reqData.CourseIDs,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create product!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Product created successfully!", product)
}

// AdminUpdateProduct updates a product and its course links
func AdminUpdateProduct(c *fiber.Ctx) error {
	productID := c.Locals("productID").(string)

	reqData, ok := c.Locals("validatedProductUpdate").(*struct {
		Name           string   `json:"name"`
		Description    string   `json:"description"`
		ImagePath      string   `json:"image_path"`
		PriceInDollars int      `json:"price_in_dollars"`
		Status         string   `json:"status"`
		CourseIDs      []string `json:"course_ids"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	product, err := repository.UpdateProduct(database.Database.Db, productID, repository.ProductInput{
		Name:           reqData.Name,
		Description:    reqData.Description,
		ImagePath:      reqData.ImagePath,
		PriceInDollars: reqData.PriceInDollars,
		Status:         reqData.Status,
		CourseIDs:      reqData.CourseIDs,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product updated successfully!", product)
}

// AdminDeleteProduct deletes a product
func AdminDeleteProduct(c *fiber.Ctx) error {
	productID := c.Locals("productID").(string)

	product, err := repository.DeleteProduct(database.Database.Db, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product deleted successfully!", product)
}

// AdminListProducts lists all live products including private ones
func AdminListProducts(c *fiber.Ctx) error {
	products, err := repository.ListProducts(database.Database.Db, false)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch products!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Products fetched successfully!", products)
}
