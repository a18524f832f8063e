package services

import (
	"bytes"
	"context"
	"io"
	"os"
	"sort"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/app/repositories"
	"github.com/shashiranjanraj/kashvi-admin/pkg/storage"
)

// memDisk is an in-memory storage driver for tests.
type memDisk struct {
	mu    sync.Mutex
	files map[string][]byte
	types map[string]string
	fail  bool
}

func newMemDisk() *memDisk {
	return &memDisk{files: map[string][]byte{}, types: map[string]string{}}
}

func (d *memDisk) Put(path string, content []byte) error {
	return d.PutFile(path, content, "")
}

func (d *memDisk) PutFile(path string, content []byte, contentType string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fail {
		return os.ErrPermission
	}
	d.files[path] = append([]byte(nil), content...)
	d.types[path] = contentType
	return nil
}

func (d *memDisk) Get(path string) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	content, ok := d.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return content, nil
}

func (d *memDisk) GetStream(path string) (io.ReadCloser, error) {
	content, err := d.Get(path)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (d *memDisk) Exists(path string) bool {
	_, err := d.Get(path)
	return err == nil
}

func (d *memDisk) Size(path string) (int64, error) {
	content, err := d.Get(path)
	if err != nil {
		return 0, err
	}
	return int64(len(content)), nil
}

func (d *memDisk) URL(path string) string { return "https://cdn.test/" + path }

func (d *memDisk) Delete(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.files, path)
	return nil
}

func (d *memDisk) Files(directory string) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var names []string
	for path := range d.files {
		names = append(names, path)
	}
	sort.Strings(names)
	return names, nil
}

// useMemDisk installs a fresh in-memory disk as the default for the test.
func useMemDisk(t *testing.T) *memDisk {
	t.Helper()
	d := newMemDisk()
	storage.RegisterDisk("test", d)
	storage.SetDefault("test")
	t.Cleanup(func() { storage.SetDefault("local") })
	return d
}

// fakeProductStore records inserts and serves canned reads.
type fakeProductStore struct {
	mu       sync.Mutex
	inserted []insertedProduct
	products []models.Product
	updated  map[string]bson.M
}

type insertedProduct struct {
	collection string
	product    models.Product
}

func (f *fakeProductStore) Insert(_ context.Context, collection string, p *models.Product) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, insertedProduct{collection, *p})
	return p, nil
}

func (f *fakeProductStore) All(context.Context) ([]models.Product, error) {
	return f.products, nil
}

func (f *fakeProductStore) FindByID(_ context.Context, id string) (models.Product, error) {
	for _, p := range f.products {
		if p.ID.Hex() == id {
			return p, nil
		}
	}
	return models.Product{}, repositories.ErrNotFound
}

func (f *fakeProductStore) Update(_ context.Context, id string, fields bson.M) (models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updated == nil {
		f.updated = map[string]bson.M{}
	}
	for _, p := range f.products {
		if p.ID.Hex() == id {
			f.updated[id] = fields
			return p, nil
		}
	}
	return models.Product{}, repositories.ErrNotFound
}

// fakeCategoryStore serves a fixed taxonomy.
type fakeCategoryStore struct {
	categories []models.Category
	created    []models.Category
}

func (f *fakeCategoryStore) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryStore) All(context.Context) ([]models.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryStore) Create(_ context.Context, c *models.Category) error {
	c.ID = primitive.NewObjectID()
	f.created = append(f.created, *c)
	return nil
}

// fakeSlideStore records inserts.
type fakeSlideStore struct {
	inserted []models.HomeSlide
}

func (f *fakeSlideStore) Insert(_ context.Context, s *models.HomeSlide) (*models.HomeSlide, error) {
	s.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, *s)
	return s, nil
}
