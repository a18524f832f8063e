package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/shashiranjanraj/kashvi-admin/app/repositories"
	"github.com/shashiranjanraj/kashvi-admin/app/services"
	"github.com/shashiranjanraj/kashvi-admin/pkg/bind"
	"github.com/shashiranjanraj/kashvi-admin/pkg/logger"
	"github.com/shashiranjanraj/kashvi-admin/pkg/response"
	"github.com/shashiranjanraj/kashvi-admin/pkg/router"
)

// ProductController exposes the product catalog endpoints.
type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// Index handles GET /api/products.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.List(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("list products", "error", err)
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(w, map[string]interface{}{"products": products})
}

// Show handles GET /api/products/{id}.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	product, err := c.catalog.Get(r.Context(), router.Param(r, "id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.NotFound(w)
			return
		}
		logger.WithCtx(r.Context()).Error("get product", "error", err)
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(w, map[string]interface{}{"product": product})
}

// Store handles POST /api/products: a multipart form with text fields, one
// or more images, and an optional video.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	form, err := bind.Multipart(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	input := services.CreateProduct{
		SKU:           form.Value("sku"),
		Name:          form.Value("name"),
		Description:   form.Value("description"),
		Price:         form.Value("price"),
		DiscountPrice: form.Value("discountPrice"),
		Category:      form.Value("category"),
		SubCategory:   form.Value("subCategory"),
		Collections:   form.Values("collections"),
		Metal:         form.Value("metal"),
		Stock:         form.Value("stock"),
		Mode:          form.Value("mode"),
	}

	input.Images, err = readAssets(form.Files("images"))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if fh := form.File("video"); fh != nil {
		video, err := readAsset(fh)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		input.Video = &video
	}

	product, err := c.catalog.Create(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			response.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrInvalidCategory), errors.Is(err, services.ErrInvalidPrice):
			response.Error(w, http.StatusForbidden, err.Error())
		default:
			logger.WithCtx(r.Context()).Error("create product", "error", err)
			response.Error(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.Created(w, map[string]interface{}{
		"message": "Product created successfully",
		"product": product,
	})
}

// Update handles PUT /api/products/{id}: the edit-form JSON payload.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	var input services.UpdateProduct
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, errs, err := c.catalog.Update(r.Context(), router.Param(r, "id"), input)
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.NotFound(w)
			return
		}
		logger.WithCtx(r.Context()).Error("update product", "error", err)
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(w, map[string]interface{}{
		"message": "Product updated successfully",
		"product": product,
	})
}

func readAssets(fhs []*multipart.FileHeader) ([]services.Asset, error) {
	assets := make([]services.Asset, 0, len(fhs))
	for _, fh := range fhs {
		a, err := readAsset(fh)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, nil
}

func readAsset(fh *multipart.FileHeader) (services.Asset, error) {
	data, err := bind.ReadFile(fh)
	if err != nil {
		return services.Asset{}, err
	}
	return services.Asset{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
