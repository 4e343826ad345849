package store

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"finishing-directory-web/internal/domain"
)

func (s *RESTStore) Companies(ctx context.Context, category string) ([]domain.Company, error) {
	path := "/public/companies"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var res struct {
		Success bool             `json:"success"`
		Data    []domain.Company `json:"data"`
	}
	if err := s.doJSON(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (s *RESTStore) Company(ctx context.Context, id int64) (*domain.Company, error) {
	var res struct {
		Success bool           `json:"success"`
		Data    domain.Company `json:"data"`
	}
	if err := s.doJSON(ctx, http.MethodGet, fmt.Sprintf("/public/companies/%d", id), nil, &res); err != nil {
		return nil, err
	}
	company := res.Data
	return &company, nil
}

func (s *RESTStore) Categories(ctx context.Context) ([]domain.Category, error) {
	var res struct {
		Success bool              `json:"success"`
		Data    []domain.Category `json:"data"`
	}
	if err := s.doJSON(ctx, http.MethodGet, "/public/categories", nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (s *RESTStore) Stats(ctx context.Context) (*domain.Stats, error) {
	var res struct {
		Success bool         `json:"success"`
		Data    domain.Stats `json:"data"`
	}
	if err := s.doJSON(ctx, http.MethodGet, "/public/stats", nil, &res); err != nil {
		return nil, err
	}
	stats := res.Data
	return &stats, nil
}
