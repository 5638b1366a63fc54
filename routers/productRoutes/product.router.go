package productRoutes

import (
	controllers "coursehub/controllers/product"
	"coursehub/middleware"
	validators "coursehub/validators/product"

	"github.com/gofiber/fiber/v2"
)

// SetupProductRoutes sets up admin and customer product routes
func SetupProductRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/product", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Post("/create", validators.CreateProduct(), controllers.AdminCreateProduct)
	adminGroup.Get("/list", controllers.AdminListProducts)
	adminGroup.Put("/:id", validators.UpdateProduct(), controllers.AdminUpdateProduct)
	adminGroup.Delete("/:id", validators.ProductID(), controllers.AdminDeleteProduct)

	productGroup := app.Group("/product", middleware.JWTMiddleware)
	productGroup.Get("/list", controllers.GetProductList)
	productGroup.Get("/:id", validators.ProductID(), controllers.GetProductDetails)
	productGroup.Post("/:id/purchase", validators.ProductID(), controllers.PurchaseProduct)

	userGroup := app.Group("/user", middleware.JWTMiddleware)
	userGroup.Get("/purchases", controllers.GetMyPurchases)
}
