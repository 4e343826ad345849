package store

import (
	"context"
	"net/http"

	"finishing-directory-web/internal/domain"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    domain.User `json:"user"`
}

func (s *RESTStore) login(ctx context.Context, path, username, password string) (string, *domain.User, error) {
	var res loginResponse
	err := s.doJSON(ctx, http.MethodPost, path, loginRequest{Username: username, Password: password}, &res)
	if err != nil {
		return "", nil, err
	}
	user := res.User
	return res.Token, &user, nil
}

func (s *RESTStore) LoginCompany(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.login(ctx, "/auth/company/login", username, password)
}

func (s *RESTStore) LoginAdmin(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.login(ctx, "/auth/admin/login", username, password)
}

func (s *RESTStore) CurrentUser(ctx context.Context) (*domain.User, error) {
	var res struct {
		Success bool        `json:"success"`
		Data    domain.User `json:"data"`
	}
	if err := s.doJSON(ctx, http.MethodGet, "/auth/me", nil, &res); err != nil {
		return nil, err
	}
	user := res.Data
	return &user, nil
}

func (s *RESTStore) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	payload := struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}{currentPassword, newPassword}
	return s.doJSON(ctx, http.MethodPut, "/auth/change-password", payload, nil)
}

func (s *RESTStore) ForgotPassword(ctx context.Context, email string) error {
	payload := struct {
		Email string `json:"email"`
	}{email}
	return s.doJSON(ctx, http.MethodPost, "/auth/forgot-password", payload, nil)
}
