package repository

import (
	"coursehub/cache"
	"coursehub/models"

	"gorm.io/gorm"
)

// ProductInput carries the writable product fields plus the bundled courses
type ProductInput struct {
	Name           string
	Description    string
	ImagePath      string
	PriceInDollars int
	Status         string
	CourseIDs      []string
}

// ProductWithCourses is a product row with its bundled course ids
type ProductWithCourses struct {
	models.Product
	CourseIDs []string `json:"course_ids"`
}

// CreateProduct inserts a product and its course links in one transaction
func CreateProduct(db *gorm.DB, input ProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:           input.Name,
		Description:    input.Description,
		ImagePath:      input.ImagePath,
		PriceInDollars: input.PriceInDollars,
		Status:         input.Status,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		for _, courseID := range input.CourseIDs {
			link := models.ProductCourse{ProductID: product.ID, CourseID: courseID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cache.RevalidateProductTags(product.ID)
	return product, nil
}

// UpdateProduct rewrites a product and replaces its course links
func UpdateProduct(db *gorm.DB, productID string, input ProductInput) (*models.Product, error) {
	var product models.Product

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND is_deleted = ?", productID, false).First(&product).Error; err != nil {
			return err
		}

		if input.Name != "" {
			product.Name = input.Name
		}
		if input.Description != "" {
			product.Description = input.Description
		}
		if input.ImagePath != "" {
			product.ImagePath = input.ImagePath
		}
		if input.PriceInDollars > 0 {
			product.PriceInDollars = input.PriceInDollars
		}
		if input.Status != "" {
			product.Status = input.Status
		}
		if err := tx.Save(&product).Error; err != nil {
			return err
		}

		if len(input.CourseIDs) > 0 {
			if err := tx.Where("product_id = ?", productID).Delete(&models.ProductCourse{}).Error; err != nil {
				return err
			}
			for _, courseID := range input.CourseIDs {
				link := models.ProductCourse{ProductID: productID, CourseID: courseID}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cache.RevalidateProductTags(product.ID)
	return &product, nil
}

// DeleteProduct soft-deletes a product and removes its course links
func DeleteProduct(db *gorm.DB, productID string) (*models.Product, error) {
	var product models.Product

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND is_deleted = ?", productID, false).First(&product).Error; err != nil {
			return err
		}

		product.IsDeleted = true
		if err := tx.Save(&product).Error; err != nil {
			return err
		}
		return tx.Where("product_id = ?", productID).Delete(&models.ProductCourse{}).Error
	})
	if err != nil {
		return nil, err
	}

	cache.RevalidateProductTags(product.ID)
	return &product, nil
}

// ListProducts returns live products, optionally restricted to public
// ones, cached against the product global tag
func ListProducts(db *gorm.DB, publicOnly bool) ([]ProductWithCourses, error) {
	cacheKey := "products:all"
	if publicOnly {
		cacheKey = "products:public"
	}
	if cached, ok := cache.Get(cacheKey); ok {
		return cached.([]ProductWithCourses), nil
	}

	query := db.Where("is_deleted = ?", false)
	if publicOnly {
		query = query.Where("status = ?", models.ProductStatusPublic)
	}
	var products []models.Product
	if err := query.Order("name asc").Find(&products).Error; err != nil {
		return nil, err
	}

	result := make([]ProductWithCourses, 0, len(products))
	for _, product := range products {
		courseIDs, err := productCourseIDs(db, product.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, ProductWithCourses{Product: product, CourseIDs: courseIDs})
	}

	cache.Set(cacheKey, result, cache.GlobalTag("products"))
	return result, nil
}

// GetProduct returns one live product with its course ids, cached against
// the product's id tag
func GetProduct(db *gorm.DB, productID string) (*ProductWithCourses, error) {
	cacheKey := "products:id:" + productID
	if cached, ok := cache.Get(cacheKey); ok {
		return cached.(*ProductWithCourses), nil
	}

	var product models.Product
	if err := db.Where("id = ? AND is_deleted = ?", productID, false).First(&product).Error; err != nil {
		return nil, err
	}

	courseIDs, err := productCourseIDs(db, productID)
	if err != nil {
		return nil, err
	}

	result := &ProductWithCourses{Product: product, CourseIDs: courseIDs}
	cache.Set(cacheKey, result, cache.IdTag("products", productID), cache.GlobalTag("products"))
	return result, nil
}

func productCourseIDs(db *gorm.DB, productID string) ([]string, error) {
	var courseIDs []string
	err := db.Model(&models.ProductCourse{}).Where("product_id = ?", productID).Pluck("course_id", &courseIDs).Error
	return courseIDs, err
}
