package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/pkg/collection"
	"github.com/shashiranjanraj/kashvi-admin/pkg/metrics"
	"github.com/shashiranjanraj/kashvi-admin/pkg/storage"
	"github.com/shashiranjanraj/kashvi-admin/pkg/validate"
	"github.com/shashiranjanraj/kashvi-admin/pkg/workerpool"
)

// Business-rule violations surfaced to the client, in the order the
// creation handler checks them.
var (
	ErrMissingFields   = errors.New("Please fill required fields")
	ErrInvalidCategory = errors.New("Invalid Category")
	ErrInvalidPrice    = errors.New("Invalid price or discounted price values")
)

// ProductStore is the persistence surface the catalog service needs.
type ProductStore interface {
	Insert(ctx context.Context, collection string, p *models.Product) (*models.Product, error)
	All(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (models.Product, error)
	Update(ctx context.Context, id string, fields bson.M) (models.Product, error)
}

// CategoryStore resolves taxonomy lookups.
type CategoryStore interface {
	ExistsByName(ctx context.Context, name string) (bool, error)
	All(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, c *models.Category) error
}

// Asset is one uploaded file pulled out of the multipart form.
type Asset struct {
	Name        string
	ContentType string
	Data        []byte
}

// CreateProduct carries the parsed product-creation form.
type CreateProduct struct {
	SKU           string
	Name          string
	Description   string
	Price         string
	DiscountPrice string
	Category      string // parent category type
	SubCategory   string // leaf category name
	Collections   []string
	Metal         string
	Stock         string
	Mode          string
	Images        []Asset
	Video         *Asset
}

// UpdateProduct is the edit-form payload. The rule set here is the single
// definition of the edit validation; the admin frontend mirrors it for
// display only and is never authoritative.
type UpdateProduct struct {
	Name           string             `json:"name" validate:"required,min=2"`
	SKU            string             `json:"sku" validate:"required"`
	Slug           string             `json:"slug" validate:"required"`
	Price          float64            `json:"price" validate:"required,gt=0"`
	DiscountPrice  float64            `json:"discountPrice" validate:"required,gt=0"`
	Stock          int                `json:"stock" validate:"gte=0"`
	Category       models.CategoryRef `json:"category" validate:"required"`
	CollectionName []string           `json:"collectionName"`
	Metal          string             `json:"metal" validate:"required,in=silver,gold,platinum,rose gold"`
	Description    string             `json:"description"`
}

// CatalogService owns product reads/writes and the asset upload fan-out.
type CatalogService struct {
	products   ProductStore
	categories CategoryStore
	pool       *workerpool.Pool
}

func NewCatalogService(products ProductStore, categories CategoryStore, pool *workerpool.Pool) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
		pool:       pool,
	}
}

// Slugify derives the URL slug from a product name: lowercased, spaces to
// hyphens, everything outside [A-Za-z0-9_-] stripped. Idempotent.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "-")
	return nonWordRE.ReplaceAllString(s, "")
}

var nonWordRE = regexp.MustCompile(`[^\w-]+`)

// DiscountPercent computes the derived discount percentage, rounded up.
func DiscountPercent(price, discountPrice float64) int {
	if price == 0 {
		return 0
	}
	return int(math.Ceil(((price - discountPrice) / price) * 100))
}

// List returns all products from the standard collection.
func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	return s.products.All(ctx)
}

// Get returns one product by ID.
func (s *CatalogService) Get(ctx context.Context, id string) (models.Product, error) {
	return s.products.FindByID(ctx, id)
}

// Create validates the submission, uploads its assets, computes the derived
// fields, and persists the product. Validation is fail-fast: each rule has
// its own client-facing error.
//
// Uploaded assets are not cleaned up when a later step fails; the write is
// terminal either way and the orphaned object is accepted.
func (s *CatalogService) Create(ctx context.Context, in CreateProduct) (*models.Product, error) {
	if len(in.Images) == 0 || in.Name == "" || in.Price == "" || in.Category == "" || in.SubCategory == "" {
		return nil, ErrMissingFields
	}

	exists, err := s.categories.ExistsByName(ctx, in.SubCategory)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrInvalidCategory
	}

	price, discountPrice, err := parsePrices(in.Price, in.DiscountPrice)
	if err != nil || price <= 0 || discountPrice < 0 {
		return nil, ErrInvalidPrice
	}

	images, err := s.uploadImages(in.Images)
	if err != nil {
		return nil, err
	}

	var videoURL string
	if in.Video != nil && in.Video.ContentType != "" {
		videoURL, err = UploadAsset("video", "products/vedio/", *in.Video)
		if err != nil {
			return nil, err
		}
	}

	product := &models.Product{
		SKU:             in.SKU,
		Images:          images,
		Video:           videoURL,
		Name:            in.Name,
		Slug:            Slugify(in.Name),
		Description:     in.Description,
		Price:           price,
		DiscountPrice:   discountPrice,
		DiscountPercent: DiscountPercent(price, discountPrice),
		Category:        models.CategoryRef{Name: in.SubCategory, Type: in.Category},
		CollectionName:  in.Collections,
		Metal:           in.Metal,
		Stock:           parseStock(in.Stock),
	}

	target := models.ProductCollection
	if in.Mode == "offline" {
		target = models.OfflineProductCollection
	}

	created, err := s.products.Insert(ctx, target, product)
	if err != nil {
		return nil, err
	}
	metrics.DocumentsWritten.WithLabelValues(target).Inc()
	return created, nil
}

// Update applies the edit-form payload. Returns the field-level validation
// error map when the payload violates the shared rule set.
func (s *CatalogService) Update(ctx context.Context, id string, in UpdateProduct) (models.Product, map[string]string, error) {
	if errs := validate.Struct(&in); validate.HasErrors(errs) {
		return models.Product{}, errs, nil
	}

	// Derived at write time, never trusted from the client.
	fields := bson.M{
		"name":            in.Name,
		"sku":             in.SKU,
		"slug":            in.Slug,
		"description":     in.Description,
		"price":           in.Price,
		"discountPrice":   in.DiscountPrice,
		"discountPercent": DiscountPercent(in.Price, in.DiscountPrice),
		"stock":           in.Stock,
		"category":        in.Category,
		"collectionName":  in.CollectionName,
		"metal":           in.Metal,
	}

	updated, err := s.products.Update(ctx, id, fields)
	if err != nil {
		return models.Product{}, nil, err
	}
	return updated, nil, nil
}

// CategoryOptions returns the taxonomy, optionally narrowed to leaves whose
// name contains the parent term as a whole word, case-insensitively. This is
// the same two-stage filter the edit form applies.
func (s *CatalogService) CategoryOptions(ctx context.Context, parent string) ([]models.Category, error) {
	categories, err := s.categories.All(ctx)
	if err != nil {
		return nil, err
	}
	if parent == "" {
		return categories, nil
	}

	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(parent) + `\b`)
	if err != nil {
		return nil, fmt.Errorf("catalog: parent filter: %w", err)
	}
	return collection.Filter(categories, func(c models.Category) bool {
		return re.MatchString(c.Name)
	}), nil
}

// CreateCategory persists a new taxonomy entry.
func (s *CatalogService) CreateCategory(ctx context.Context, c *models.Category) (map[string]string, error) {
	input := struct {
		Name           string `json:"name" validate:"required"`
		ParentCategory string `json:"parentCategory" validate:"required"`
	}{c.Name, c.ParentCategory}

	if errs := validate.Struct(&input); validate.HasErrors(errs) {
		return errs, nil
	}
	return nil, s.categories.Create(ctx, c)
}

// uploadImages fans out one upload per image through the shared worker pool
// and waits for all of them. The returned URLs preserve submission order.
// The first failure wins; uploads already in flight still run to completion.
func (s *CatalogService) uploadImages(images []Asset) ([]string, error) {
	urls := make([]string, len(images))
	errs := make([]error, len(images))

	var wg sync.WaitGroup
	for i, img := range images {
		i, img := i, img
		wg.Add(1)
		task := func() {
			defer wg.Done()
			urls[i], errs[i] = UploadAsset("image", "products/image/", img)
		}
		if err := s.pool.SubmitWait(task); err != nil {
			wg.Done()
			errs[i] = err
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return urls, nil
}

// uploadSeq disambiguates assets stored within the same millisecond, so two
// same-named files uploaded concurrently never share an object key.
var uploadSeq atomic.Uint64

// UploadAsset stores one asset on the default disk under a
// timestamp-prefixed unique name and returns its public URL. kind labels
// the upload metrics.
func UploadAsset(kind, prefix string, a Asset) (string, error) {
	start := time.Now()
	name := fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), uploadSeq.Add(1), filepath.Base(a.Name))

	url, err := storage.Upload(prefix, name, a.ContentType, a.Data)
	metrics.UploadDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AssetUploads.WithLabelValues(kind, "failed").Inc()
		return "", err
	}
	metrics.AssetUploads.WithLabelValues(kind, "success").Inc()
	return url, nil
}

func parsePrices(price, discountPrice string) (float64, float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil {
		return 0, 0, err
	}
	// Absent discount price parses as zero, matching the admin form.
	if strings.TrimSpace(discountPrice) == "" {
		return p, 0, nil
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(discountPrice), 64)
	if err != nil {
		return 0, 0, err
	}
	return p, d, nil
}

func parseStock(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
