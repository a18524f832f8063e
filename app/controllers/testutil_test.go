package controllers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/app/repositories"
	"github.com/shashiranjanraj/kashvi-admin/app/services"
	"github.com/shashiranjanraj/kashvi-admin/pkg/router"
	"github.com/shashiranjanraj/kashvi-admin/pkg/storage"
	"github.com/shashiranjanraj/kashvi-admin/pkg/workerpool"
)

// testApp wires the controllers against fakes and serves them through the
// real router so tests exercise paths, parameters, and status codes.
type testApp struct {
	products   *memProducts
	categories *memCategories
	slides     *memSlides
	handler    http.Handler
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	storage.RegisterDisk("ctrl-test", nullDisk{})
	storage.SetDefault("ctrl-test")
	t.Cleanup(func() { storage.SetDefault("local") })

	pool := workerpool.New(4)
	t.Cleanup(pool.Shutdown)

	app := &testApp{
		products: &memProducts{},
		categories: &memCategories{list: []models.Category{
			{Name: "Rings", ParentCategory: "jewellery"},
			{Name: "Silver Rings", ParentCategory: "silver"},
		}},
		slides: &memSlides{},
	}

	catalog := services.NewCatalogService(app.products, app.categories, pool)
	slideSvc := services.NewSlideService(app.slides, services.UploadAsset)

	products := NewProductController(catalog)
	categories := NewCategoryController(catalog)
	slides := NewSlideController(slideSvc)

	r := router.New()
	api := r.Group("/api")
	api.Get("/products", "", products.Index)
	api.Get("/products/{id}", "", products.Show)
	api.Post("/products", "", products.Store)
	api.Put("/products/{id}", "", products.Update)
	api.Get("/categories/options", "", categories.Options)
	api.Post("/categories", "", categories.Store)
	api.Post("/slides", "", slides.Store)

	app.handler = r.Handler()
	return app
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

// multipartBody builds a multipart request body from text fields and files.
func multipartBody(t *testing.T, fields map[string]string, files map[string][]upload) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	for key, ups := range files {
		for _, up := range ups {
			h := make(textproto.MIMEHeader)
			h.Set("Content-Disposition",
				fmt.Sprintf(`form-data; name=%q; filename=%q`, key, up.name))
			h.Set("Content-Type", up.contentType)
			part, err := w.CreatePart(h)
			if err != nil {
				t.Fatalf("create part %s: %v", key, err)
			}
			if _, err := part.Write(up.data); err != nil {
				t.Fatalf("write part %s: %v", key, err)
			}
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

type upload struct {
	name        string
	contentType string
	data        []byte
}

// nullDisk accepts every write and returns deterministic URLs.
type nullDisk struct{}

func (nullDisk) Put(string, []byte) error                { return nil }
func (nullDisk) PutFile(string, []byte, string) error    { return nil }
func (nullDisk) Get(string) ([]byte, error)              { return nil, nil }
func (nullDisk) GetStream(string) (io.ReadCloser, error) { return nil, nil }
func (nullDisk) Exists(string) bool                      { return false }
func (nullDisk) Size(string) (int64, error)              { return 0, nil }
func (nullDisk) URL(path string) string                  { return "https://cdn.test/" + path }
func (nullDisk) Delete(string) error                     { return nil }
func (nullDisk) Files(string) ([]string, error)          { return nil, nil }

type memProducts struct {
	mu       sync.Mutex
	list     []models.Product
	byTarget map[string]int
}

func (m *memProducts) Insert(_ context.Context, collection string, p *models.Product) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = primitive.NewObjectID()
	m.list = append(m.list, *p)
	if m.byTarget == nil {
		m.byTarget = map[string]int{}
	}
	m.byTarget[collection]++
	return p, nil
}

func (m *memProducts) All(context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Product(nil), m.list...), nil
}

func (m *memProducts) FindByID(_ context.Context, id string) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.list {
		if p.ID.Hex() == id {
			return p, nil
		}
	}
	return models.Product{}, repositories.ErrNotFound
}

func (m *memProducts) Update(_ context.Context, id string, fields bson.M) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.list {
		if p.ID.Hex() == id {
			if name, ok := fields["name"].(string); ok {
				m.list[i].Name = name
			}
			if pct, ok := fields["discountPercent"].(int); ok {
				m.list[i].DiscountPercent = pct
			}
			return m.list[i], nil
		}
	}
	return models.Product{}, repositories.ErrNotFound
}

type memCategories struct {
	list []models.Category
}

func (m *memCategories) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, c := range m.list {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memCategories) All(context.Context) ([]models.Category, error) {
	return m.list, nil
}

func (m *memCategories) Create(_ context.Context, c *models.Category) error {
	c.ID = primitive.NewObjectID()
	m.list = append(m.list, *c)
	return nil
}

type memSlides struct {
	list []models.HomeSlide
}

func (m *memSlides) Insert(_ context.Context, s *models.HomeSlide) (*models.HomeSlide, error) {
	s.ID = primitive.NewObjectID()
	m.list = append(m.list, *s)
	return s, nil
}
