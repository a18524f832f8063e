// Package routes wires the HTTP surface: controllers, route names, and the
// auth gates on mutating endpoints.
package routes

import (
	"github.com/shashiranjanraj/kashvi-admin/app/controllers"
	"github.com/shashiranjanraj/kashvi-admin/app/repositories"
	"github.com/shashiranjanraj/kashvi-admin/app/services"
	"github.com/shashiranjanraj/kashvi-admin/pkg/middleware"
	"github.com/shashiranjanraj/kashvi-admin/pkg/rbac"
	"github.com/shashiranjanraj/kashvi-admin/pkg/router"
	"github.com/shashiranjanraj/kashvi-admin/pkg/workerpool"
)

// Register mounts every API route on r. The pool is shared by all upload
// fan-outs.
func Register(r *router.Router, pool *workerpool.Pool) {
	catalog := services.NewCatalogService(
		repositories.NewProductRepository(),
		repositories.NewCategoryRepository(),
		pool,
	)
	slides := services.NewSlideService(repositories.NewSlideRepository(), services.UploadAsset)
	auth := services.NewAuthService(repositories.NewUserRepository())

	products := controllers.NewProductController(catalog)
	categories := controllers.NewCategoryController(catalog)
	slideCtrl := controllers.NewSlideController(slides)
	authCtrl := controllers.NewAuthController(auth)

	api := r.Group("/api")
	api.Post("/login", "login", authCtrl.Login)

	api.Get("/products", "products.index", products.Index)
	api.Get("/products/{id}", "products.show", products.Show)
	api.Get("/categories/options", "categories.options", categories.Options)

	// Mutations require an authenticated admin.
	admin := api.Group("", middleware.Auth, rbac.HasRole("admin"))
	admin.Post("/products", "products.store", products.Store)
	admin.Put("/products/{id}", "products.update", products.Update)
	admin.Post("/categories", "categories.store", categories.Store)
	admin.Post("/slides", "slides.store", slideCtrl.Store)
}
