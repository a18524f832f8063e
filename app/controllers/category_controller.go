package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/app/services"
	"github.com/shashiranjanraj/kashvi-admin/pkg/bind"
	"github.com/shashiranjanraj/kashvi-admin/pkg/logger"
	"github.com/shashiranjanraj/kashvi-admin/pkg/response"
)

// CategoryController exposes the taxonomy endpoints.
type CategoryController struct {
	catalog *services.CatalogService
}

func NewCategoryController(catalog *services.CatalogService) *CategoryController {
	return &CategoryController{catalog: catalog}
}

// Options handles GET /api/categories/options?parent=X. Without the filter
// it returns the whole taxonomy.
func (c *CategoryController) Options(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalog.CategoryOptions(r.Context(), r.URL.Query().Get("parent"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("category options", "error", err)
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(w, map[string]interface{}{"categories": categories})
}

// Store handles POST /api/categories.
func (c *CategoryController) Store(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if _, err := bind.JSON(r, &category); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	errs, err := c.catalog.CreateCategory(r.Context(), &category)
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("create category", "error", err)
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Created(w, map[string]interface{}{
		"message":  "Category created successfully",
		"category": category,
	})
}
