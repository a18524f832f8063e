package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/kashvi-admin/app/services"
	"github.com/shashiranjanraj/kashvi-admin/pkg/bind"
	"github.com/shashiranjanraj/kashvi-admin/pkg/logger"
	"github.com/shashiranjanraj/kashvi-admin/pkg/response"
)

// SlideController exposes the homepage promo slide endpoints.
type SlideController struct {
	slides *services.SlideService
}

func NewSlideController(slides *services.SlideService) *SlideController {
	return &SlideController{slides: slides}
}

// Store handles POST /api/slides: a multipart form with a desktop banner, a
// mobile banner, a links target, and a section label.
func (c *SlideController) Store(w http.ResponseWriter, r *http.Request) {
	form, err := bind.Multipart(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	input := services.CreateSlide{
		Links:   form.Value("links"),
		Section: form.Value("section"),
	}
	if fh := form.File("desktopbanner"); fh != nil {
		a, err := readAsset(fh)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		input.DesktopBanner = &a
	}
	if fh := form.File("mobilebanner"); fh != nil {
		a, err := readAsset(fh)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		input.MobileBanner = &a
	}

	slide, err := c.slides.Create(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSlideImageType), errors.Is(err, services.ErrSlideFields):
			response.Error(w, http.StatusBadRequest, err.Error())
		default:
			logger.WithCtx(r.Context()).Error("create slide", "error", err)
			response.Error(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.Created(w, map[string]interface{}{
		"message": "Slide added successfully",
		"home":    slide,
	})
}
