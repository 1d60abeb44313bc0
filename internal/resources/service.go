package resources

import (
	"context"
	"fmt"

	"server/internal/storage"
	"server/pkg/zip"
)

// Template is one downloadable resource document.
type Template struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	MIME        string `json:"mime"`
	content     string
}

// Service serves the founder resource templates. When a file store is
// configured the shipped contents are written there once and reads prefer
// the on-disk copy, so operators can edit templates in place.
type Service struct {
	store     *storage.FileStore
	templates []Template
}

// NewService builds the service and materializes the templates. A nil store
// serves the built-in contents only.
func NewService(ctx context.Context, store *storage.FileStore) (*Service, error) {
	s := &Service{
		store: store,
		templates: []Template{
			{
				Key:         interviewTemplateKey,
				Title:       "Customer Interview Template",
				Description: "Structured scripts for problem discovery, solution validation, and pricing conversations",
				MIME:        "text/plain; charset=utf-8",
				content:     interviewTemplate,
			},
			{
				Key:         validationTrackerKey,
				Title:       "Validation Tracking Sheet",
				Description: "Spreadsheet to monitor your validation funnel and key startup metrics",
				MIME:        "text/csv; charset=utf-8",
				content:     validationTracker,
			},
		},
	}
	if store != nil {
		for _, t := range s.templates {
			if _, err := store.Read(ctx, t.Key); err == nil {
				continue
			}
			if _, err := store.Write(ctx, t.Key, []byte(t.content)); err != nil {
				return nil, fmt.Errorf("resources: materialize %s: %w", t.Key, err)
			}
		}
	}
	return s, nil
}

// List returns the template catalog without contents.
func (s *Service) List() []Template {
	out := make([]Template, len(s.templates))
	copy(out, s.templates)
	for i := range out {
		out[i].content = ""
	}
	return out
}

// Get returns one template and its contents.
func (s *Service) Get(ctx context.Context, key string) (Template, []byte, error) {
	for _, t := range s.templates {
		if t.Key != key {
			continue
		}
		if s.store != nil {
			if data, err := s.store.Read(ctx, t.Key); err == nil {
				return t, data, nil
			}
		}
		return t, []byte(t.content), nil
	}
	return Template{}, nil, fmt.Errorf("resources: unknown template %q", key)
}

// Bundle zips every template for the one-click download.
func (s *Service) Bundle(ctx context.Context) ([]byte, error) {
	files := make([]zip.File, 0, len(s.templates))
	for _, t := range s.templates {
		_, data, err := s.Get(ctx, t.Key)
		if err != nil {
			return nil, err
		}
		files = append(files, zip.File{Name: t.Key, MIME: t.MIME, Data: data})
	}
	return zip.Bundle(files)
}
