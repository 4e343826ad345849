package store

import (
	"context"
	"fmt"
	"net/http"

	"finishing-directory-web/internal/domain"
)

func (s *RESTStore) Profile(ctx context.Context) (*domain.Company, error) {
	var res struct {
		Success bool           `json:"success"`
		Data    domain.Company `json:"data"`
	}
	if err := s.doJSON(ctx, http.MethodGet, "/companies/profile", nil, &res); err != nil {
		return nil, err
	}
	profile := res.Data
	return &profile, nil
}

func (s *RESTStore) UpdateProfile(ctx context.Context, update ProfileUpdate) error {
	return s.doJSON(ctx, http.MethodPut, "/companies/profile", update, nil)
}

func (s *RESTStore) UploadLogo(ctx context.Context, logo FileUpload) error {
	logo.Field = "logo"
	return s.doMultipart(ctx, http.MethodPut, "/companies/logo", nil, []FileUpload{logo}, nil)
}

func (s *RESTStore) UploadImages(ctx context.Context, images []FileUpload) error {
	for i := range images {
		images[i].Field = "images"
	}
	return s.doMultipart(ctx, http.MethodPost, "/companies/images", nil, images, nil)
}

func (s *RESTStore) DeleteImage(ctx context.Context, id int64) error {
	return s.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/companies/images/%d", id), nil, nil)
}

func (s *RESTStore) UploadVideos(ctx context.Context, videos []FileUpload) error {
	for i := range videos {
		videos[i].Field = "videos"
	}
	return s.doMultipart(ctx, http.MethodPost, "/companies/videos", nil, videos, nil)
}

func (s *RESTStore) DeleteVideo(ctx context.Context, id int64) error {
	return s.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/companies/videos/%d", id), nil, nil)
}

type numberPayload struct {
	Number string `json:"number"`
}

func (s *RESTStore) AddPhone(ctx context.Context, number string) error {
	return s.doJSON(ctx, http.MethodPost, "/companies/phones", numberPayload{number}, nil)
}

func (s *RESTStore) DeletePhone(ctx context.Context, id int64) error {
	return s.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/companies/phones/%d", id), nil, nil)
}

func (s *RESTStore) AddWhatsApp(ctx context.Context, number string) error {
	return s.doJSON(ctx, http.MethodPost, "/companies/whatsapp", numberPayload{number}, nil)
}

func (s *RESTStore) DeleteWhatsApp(ctx context.Context, id int64) error {
	return s.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/companies/whatsapp/%d", id), nil, nil)
}

type servicePayload struct {
	ServiceName string `json:"service_name"`
}

func (s *RESTStore) AddService(ctx context.Context, name string) error {
	return s.doJSON(ctx, http.MethodPost, "/companies/services", servicePayload{name}, nil)
}

func (s *RESTStore) UpdateService(ctx context.Context, id int64, name string) error {
	return s.doJSON(ctx, http.MethodPut, fmt.Sprintf("/companies/services/%d", id), servicePayload{name}, nil)
}

func (s *RESTStore) DeleteService(ctx context.Context, id int64) error {
	return s.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/companies/services/%d", id), nil, nil)
}

func (s *RESTStore) AddPricingPlan(ctx context.Context, plan PricingPlanInput) error {
	return s.doJSON(ctx, http.MethodPost, "/companies/pricing-plans", plan, nil)
}

func (s *RESTStore) UpdatePricingPlan(ctx context.Context, id int64, plan PricingPlanInput) error {
	return s.doJSON(ctx, http.MethodPut, fmt.Sprintf("/companies/pricing-plans/%d", id), plan, nil)
}

func (s *RESTStore) DeletePricingPlan(ctx context.Context, id int64) error {
	return s.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/companies/pricing-plans/%d", id), nil, nil)
}

func (s *RESTStore) SetCategories(ctx context.Context, categoryIDs []int64) error {
	payload := struct {
		CategoryIDs []int64 `json:"category_ids"`
	}{categoryIDs}
	return s.doJSON(ctx, http.MethodPut, "/companies/categories", payload, nil)
}
