package store

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"finishing-directory-web/internal/domain"
)

func (s *RESTStore) Posts(ctx context.Context) ([]domain.BlogPost, error) {
	var res struct {
		Success bool              `json:"success"`
		Data    []domain.BlogPost `json:"data"`
	}
	if err := s.doJSON(ctx, http.MethodGet, "/blog", nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (s *RESTStore) Post(ctx context.Context, idOrSlug string) (*domain.BlogPost, error) {
	var res struct {
		Success bool            `json:"success"`
		Data    domain.BlogPost `json:"data"`
	}
	if err := s.doJSON(ctx, http.MethodGet, "/blog/"+url.PathEscape(idOrSlug), nil, &res); err != nil {
		return nil, err
	}
	post := res.Data
	return &post, nil
}

func (s *RESTStore) PostComments(ctx context.Context, idOrSlug string) ([]domain.Comment, error) {
	var res struct {
		Success bool             `json:"success"`
		Data    []domain.Comment `json:"data"`
	}
	if err := s.doJSON(ctx, http.MethodGet, "/comments/post/"+url.PathEscape(idOrSlug), nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (s *RESTStore) AddComment(ctx context.Context, idOrSlug string, input CommentInput) error {
	return s.doJSON(ctx, http.MethodPost, "/comments/post/"+url.PathEscape(idOrSlug), input, nil)
}

func (s *RESTStore) AdminPostComments(ctx context.Context, idOrSlug, status string) ([]domain.Comment, error) {
	path := "/comments/admin/post/" + url.PathEscape(idOrSlug)
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var res struct {
		Success bool             `json:"success"`
		Data    []domain.Comment `json:"data"`
	}
	if err := s.doJSON(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (s *RESTStore) ApproveComment(ctx context.Context, id int64) error {
	return s.doJSON(ctx, http.MethodPut, fmt.Sprintf("/comments/%d/approve", id), nil, nil)
}

func (s *RESTStore) DeleteComment(ctx context.Context, id int64) error {
	return s.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/comments/%d", id), nil, nil)
}

func (s *RESTStore) CompanyReviews(ctx context.Context, companyID int64) ([]domain.Review, error) {
	var res struct {
		Success bool            `json:"success"`
		Data    []domain.Review `json:"data"`
	}
	if err := s.doJSON(ctx, http.MethodGet, fmt.Sprintf("/reviews/company/%d", companyID), nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (s *RESTStore) AddReview(ctx context.Context, companyID int64, input ReviewInput) (*domain.Review, error) {
	var res struct {
		Success bool          `json:"success"`
		Data    domain.Review `json:"data"`
	}
	if err := s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/reviews/company/%d", companyID), input, &res); err != nil {
		return nil, err
	}
	review := res.Data
	return &review, nil
}

func (s *RESTStore) SubmitContactMessage(ctx context.Context, input ContactInput) error {
	return s.doJSON(ctx, http.MethodPost, "/contact", input, nil)
}
