package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"finishing-directory-web/internal/domain"
)

func (s *RESTStore) AdminCompanies(ctx context.Context) ([]domain.Company, error) {
	var res struct {
		Success bool             `json:"success"`
		Data    []domain.Company `json:"data"`
	}
	if err := s.doJSON(ctx, http.MethodGet, "/admin/companies", nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (s *RESTStore) AdminCompany(ctx context.Context, id int64) (*domain.Company, error) {
	var res struct {
		Success bool           `json:"success"`
		Data    domain.Company `json:"data"`
	}
	if err := s.doJSON(ctx, http.MethodGet, fmt.Sprintf("/admin/companies/%d", id), nil, &res); err != nil {
		return nil, err
	}
	company := res.Data
	return &company, nil
}

func (s *RESTStore) CreateCompany(ctx context.Context, input CompanyInput) error {
	return s.doJSON(ctx, http.MethodPost, "/admin/companies", input, nil)
}

func (s *RESTStore) UpdateCompany(ctx context.Context, id int64, input CompanyInput) error {
	return s.doJSON(ctx, http.MethodPut, fmt.Sprintf("/admin/companies/%d", id), input, nil)
}

func (s *RESTStore) DeleteCompany(ctx context.Context, id int64) error {
	return s.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/admin/companies/%d", id), nil, nil)
}

func (s *RESTStore) ResetCompanyPassword(ctx context.Context, id int64, newPassword string) error {
	payload := struct {
		NewPassword string `json:"newPassword"`
	}{newPassword}
	return s.doJSON(ctx, http.MethodPut, fmt.Sprintf("/admin/companies/%d/reset-password", id), payload, nil)
}

func (s *RESTStore) Reviews(ctx context.Context) ([]domain.Review, error) {
	var res struct {
		Success bool            `json:"success"`
		Data    []domain.Review `json:"data"`
	}
	if err := s.doJSON(ctx, http.MethodGet, "/reviews", nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (s *RESTStore) DeleteReview(ctx context.Context, id int64) error {
	return s.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/reviews/%d", id), nil, nil)
}

// blogFields flattens a BlogPostInput into the multipart fields the upstream
// expects: optional fields are omitted when empty, tags are a JSON array
// string.
func blogFields(input BlogPostInput) [][2]string {
	fields := [][2]string{
		{"title", input.Title},
		{"content", input.Content},
	}
	optional := [][2]string{
		{"author", input.Author},
		{"slug", input.Slug},
		{"excerpt", input.Excerpt},
		{"category", input.Category},
		{"status", input.Status},
		{"published_at", input.PublishedAt},
	}
	for _, f := range optional {
		if f[1] != "" {
			fields = append(fields, f)
		}
	}
	if input.Tags != nil {
		encoded, _ := json.Marshal(input.Tags)
		fields = append(fields, [2]string{"tags", string(encoded)})
	}
	return fields
}

func (s *RESTStore) CreateBlogPost(ctx context.Context, input BlogPostInput, image *FileUpload) error {
	var files []FileUpload
	if image != nil {
		image.Field = "image"
		files = append(files, *image)
	}
	return s.doMultipart(ctx, http.MethodPost, "/blog", blogFields(input), files, nil)
}

func (s *RESTStore) UpdateBlogPost(ctx context.Context, id int64, input BlogPostInput, image *FileUpload) error {
	var files []FileUpload
	if image != nil {
		image.Field = "image"
		files = append(files, *image)
	}
	return s.doMultipart(ctx, http.MethodPut, fmt.Sprintf("/blog/%d", id), blogFields(input), files, nil)
}

func (s *RESTStore) DeleteBlogPost(ctx context.Context, id int64) error {
	return s.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/blog/%d", id), nil, nil)
}

func (s *RESTStore) ContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	var res struct {
		Success bool                    `json:"success"`
		Data    []domain.ContactMessage `json:"data"`
	}
	if err := s.doJSON(ctx, http.MethodGet, "/contact", nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (s *RESTStore) ContactMessage(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	var res struct {
		Success bool                  `json:"success"`
		Data    domain.ContactMessage `json:"data"`
	}
	if err := s.doJSON(ctx, http.MethodGet, fmt.Sprintf("/contact/%d", id), nil, &res); err != nil {
		return nil, err
	}
	msg := res.Data
	return &msg, nil
}

func (s *RESTStore) DeleteContactMessage(ctx context.Context, id int64) error {
	return s.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/contact/%d", id), nil, nil)
}

func (s *RESTStore) MarkMessageRead(ctx context.Context, id int64) error {
	return s.doJSON(ctx, http.MethodPut, fmt.Sprintf("/contact/%d/read", id), nil, nil)
}

func (s *RESTStore) CreateCategory(ctx context.Context, input CategoryInput) error {
	return s.doJSON(ctx, http.MethodPost, "/admin/categories", input, nil)
}

func (s *RESTStore) UpdateCategory(ctx context.Context, id int64, input CategoryInput) error {
	return s.doJSON(ctx, http.MethodPut, fmt.Sprintf("/admin/categories/%d", id), input, nil)
}

func (s *RESTStore) DeleteCategory(ctx context.Context, id int64) error {
	return s.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/admin/categories/%d", id), nil, nil)
}
