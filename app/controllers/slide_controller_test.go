package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
)

func slideFields() map[string]string {
	return map[string]string{
		"links":   "/collections/summer",
		"section": "hero",
	}
}

func slideFiles() map[string][]upload {
	return map[string][]upload{
		"desktopbanner": {{name: "d.jpg", contentType: "image/jpeg", data: []byte("d")}},
		"mobilebanner":  {{name: "m.jpg", contentType: "image/jpeg", data: []byte("m")}},
	}
}

func TestSlideStore(t *testing.T) {
	app := newTestApp(t)

	body, contentType := multipartBody(t, slideFields(), slideFiles())
	req := httptest.NewRequest(http.MethodPost, "/api/slides", body)
	req.Header.Set("Content-Type", contentType)

	rec := app.do(req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Message string           `json:"message"`
		Home    models.HomeSlide `json:"home"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Slide added successfully", resp.Message)
	assert.Contains(t, resp.Home.DesktopBannerImage, "slide/desktop/")
	assert.Contains(t, resp.Home.MobileBannerImage, "slide/mobile/")
	require.Len(t, app.slides.list, 1)
}

func TestSlideStoreMissingLinksAndSection(t *testing.T) {
	app := newTestApp(t)

	body, contentType := multipartBody(t, map[string]string{}, slideFiles())
	req := httptest.NewRequest(http.MethodPost, "/api/slides", body)
	req.Header.Set("Content-Type", contentType)

	rec := app.do(req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "All fields are required", resp["message"])
}

// A submission with only one of links/section present still passes the
// field screen.
func TestSlideStorePartialFields(t *testing.T) {
	app := newTestApp(t)

	body, contentType := multipartBody(t, map[string]string{"section": "hero"}, slideFiles())
	req := httptest.NewRequest(http.MethodPost, "/api/slides", body)
	req.Header.Set("Content-Type", contentType)

	rec := app.do(req)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestSlideStoreMissingBanner(t *testing.T) {
	app := newTestApp(t)

	files := slideFiles()
	delete(files, "mobilebanner")
	body, contentType := multipartBody(t, slideFields(), files)
	req := httptest.NewRequest(http.MethodPost, "/api/slides", body)
	req.Header.Set("Content-Type", contentType)

	rec := app.do(req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, app.slides.list)
}
