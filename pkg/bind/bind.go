// Package bind decodes HTTP request bodies: JSON for the edit workflow,
// multipart form data for the asset upload forms.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/shashiranjanraj/kashvi-admin/config"
	"github.com/shashiranjanraj/kashvi-admin/pkg/validate"
)

// JSON decodes r.Body as JSON into dest and runs validation.
// Returns (errs, nil) when there are validation failures.
// Returns (nil, err) when the body is malformed JSON or too large.
func JSON(r *http.Request, dest interface{}) (errs map[string]string, err error) {
	r.Body = http.MaxBytesReader(nil, r.Body, config.MaxUploadSize())

	dec := json.NewDecoder(r.Body)
	if err = dec.Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	errs = validate.Struct(dest)
	if validate.HasErrors(errs) {
		return errs, nil
	}

	return nil, nil
}

// Form wraps a parsed multipart form with ergonomic accessors.
type Form struct {
	r *http.Request
}

// Multipart parses r as a multipart form, capped at MAX_UPLOAD_SIZE
// (50 MB by default, matching the admin upload limit).
func Multipart(r *http.Request) (*Form, error) {
	if err := r.ParseMultipartForm(config.MaxUploadSize()); err != nil {
		return nil, fmt.Errorf("parse multipart form: %w", err)
	}
	return &Form{r: r}, nil
}

// Value returns the named text field, or "" when absent.
func (f *Form) Value(key string) string {
	return f.r.FormValue(key)
}

// Values returns every value submitted under key.
func (f *Form) Values(key string) []string {
	if f.r.MultipartForm == nil {
		return nil
	}
	return f.r.MultipartForm.Value[key]
}

// File returns the first file submitted under key, or nil when absent.
func (f *Form) File(key string) *multipart.FileHeader {
	if fs := f.Files(key); len(fs) > 0 {
		return fs[0]
	}
	return nil
}

// Files returns every file submitted under key, in submission order.
func (f *Form) Files(key string) []*multipart.FileHeader {
	if f.r.MultipartForm == nil {
		return nil
	}
	return f.r.MultipartForm.File[key]
}

// ReadFile reads the full content of an uploaded file.
func ReadFile(fh *multipart.FileHeader) ([]byte, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read upload %s: %w", fh.Filename, err)
	}
	return data, nil
}
