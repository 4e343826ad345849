package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// RESTStore implements every storer interface against the upstream REST API.
// It attaches the bearer token found in the request context (put there by the
// session middleware) to every outgoing call, and maps 401 responses to
// ErrUnauthorized so the caller can apply the global fail-closed policy.
type RESTStore struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

// NewRESTStore builds a store for the given API base URL, e.g.
// "https://example.com/api". A zero timeout means no client-side timeout.
func NewRESTStore(baseURL string, timeout time.Duration, logger *log.Logger) *RESTStore {
	return &RESTStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type ctxKey int

const tokenKey ctxKey = iota

// WithToken returns a context carrying the upstream bearer token. Requests made
// with this context are authenticated.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFrom extracts the bearer token from the context, if any.
func TokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

// do performs one upstream request and decodes the JSON response body into out
// (when out is non-nil). Status mapping: 401 -> ErrUnauthorized, 404 ->
// ErrNotFound, any other non-2xx -> *UpstreamError with the upstream message.
func (s *RESTStore) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token, ok := TokenFrom(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("upstream %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case res.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case res.StatusCode >= 400:
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
			s.logger.Printf("WARN: upstream %s %s returned %d with undecodable body: %v", method, path, res.StatusCode, err)
		}
		msg := payload.Message
		if msg == "" {
			msg = payload.Error
		}
		return &UpstreamError{Status: res.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// doJSON marshals in as a JSON body (nil means no body).
func (s *RESTStore) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
		contentType = "application/json"
	}
	return s.do(ctx, method, path, body, contentType, out)
}

// doMultipart sends fields and files as multipart/form-data, fields first,
// then files.
func (s *RESTStore) doMultipart(ctx context.Context, method, path string, fields [][2]string, files []FileUpload, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return fmt.Errorf("write multipart field %q: %w", f[0], err)
		}
	}
	for _, file := range files {
		part, err := w.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return fmt.Errorf("create multipart file %q: %w", file.Field, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return fmt.Errorf("copy multipart file %q: %w", file.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}
	return s.do(ctx, method, path, &buf, w.FormDataContentType(), out)
}
