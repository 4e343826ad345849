package store

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finishing-directory-web/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, handler http.HandlerFunc) *RESTStore {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewRESTStore(server.URL, 5*time.Second, log.New(io.Discard, "", 0))
}

func TestRESTStore_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	s := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":[]}`))
	})

	ctx := WithToken(context.Background(), "tok-123")
	_, err := s.Companies(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestRESTStore_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	s := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":[]}`))
	})

	_, err := s.Companies(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestRESTStore_StatusMapping(t *testing.T) {
	s := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/public/companies/1":
			w.WriteHeader(http.StatusUnauthorized)
		case "/public/companies/2":
			w.WriteHeader(http.StatusNotFound)
		case "/public/companies/3":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"البيانات غير صحيحة"}`))
		}
	})

	_, err := s.Company(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = s.Company(context.Background(), 2)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Company(context.Background(), 3)
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusBadRequest, upstream.Status)
	assert.Equal(t, "البيانات غير صحيحة", upstream.Message)
}

func TestRESTStore_UserMessageFallback(t *testing.T) {
	s := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`not json`))
	})

	_, err := s.Company(context.Background(), 1)
	assert.Equal(t, "حدث خطأ", UserMessage(err, "حدث خطأ"))

	withMessage := &UpstreamError{Status: 400, Message: "رسالة من الخادم"}
	assert.Equal(t, "رسالة من الخادم", UserMessage(withMessage, "حدث خطأ"))
}

func TestRESTStore_LoginCompany(t *testing.T) {
	s := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/company/login", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "paints-co", payload["username"])
		assert.Equal(t, "secret", payload["password"])

		w.Write([]byte(`{"success":true,"token":"tok-9","user":{"id":7,"username":"paints-co","role":"company"}}`))
	})

	token, user, err := s.LoginCompany(context.Background(), "paints-co", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-9", token)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, domain.RoleCompany, user.Role)
}

func TestRESTStore_CompaniesCategoryParam(t *testing.T) {
	var gotQuery string
	s := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"success":true,"data":[{"id":1,"company_name":"الإتقان"}]}`))
	})

	companies, err := s.Companies(context.Background(), "دهانات")
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "الإتقان", companies[0].CompanyName)
	assert.Contains(t, gotQuery, "category=")
}

func TestRESTStore_UploadLogoMultipart(t *testing.T) {
	s := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/companies/logo", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		files := r.MultipartForm.File["logo"]
		require.Len(t, files, 1)
		assert.Equal(t, "logo.png", files[0].Filename)

		w.Write([]byte(`{"success":true}`))
	})

	err := s.UploadLogo(context.Background(), FileUpload{
		Field:    "logo",
		Filename: "logo.png",
		Content:  strings.NewReader("fake-png"),
	})
	require.NoError(t, err)
}

func TestRESTStore_CreateBlogPostMultipart(t *testing.T) {
	s := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/blog", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "عنوان", r.FormValue("title"))
		assert.Equal(t, "محتوى<br />سطر", r.FormValue("content"))
		assert.Equal(t, `["دهانات","أرضيات"]`, r.FormValue("tags"))
		assert.Equal(t, "published", r.FormValue("status"))
		// empty optional fields stay out of the payload entirely
		_, hasSlug := r.MultipartForm.Value["slug"]
		assert.False(t, hasSlug)

		images := r.MultipartForm.File["image"]
		require.Len(t, images, 1)
		assert.Equal(t, "cover.jpg", images[0].Filename)

		w.Write([]byte(`{"success":true}`))
	})

	err := s.CreateBlogPost(context.Background(), BlogPostInput{
		Title:   "عنوان",
		Content: "محتوى<br />سطر",
		Tags:    []string{"دهانات", "أرضيات"},
		Status:  "published",
	}, &FileUpload{Filename: "cover.jpg", Content: strings.NewReader("fake-jpg")})
	require.NoError(t, err)
}

func TestRESTStore_SetCategories(t *testing.T) {
	s := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/companies/categories", r.URL.Path)

		var payload struct {
			CategoryIDs []int64 `json:"category_ids"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, []int64{3, 5}, payload.CategoryIDs)

		w.Write([]byte(`{"success":true}`))
	})

	require.NoError(t, s.SetCategories(context.Background(), []int64{3, 5}))
}

func TestRESTStore_AdminPostCommentsStatusScope(t *testing.T) {
	var gotPath, gotQuery string
	s := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"success":true,"data":[{"id":1,"user_name":"زائر","content":"تعليق","status":"pending"}]}`))
	})

	comments, err := s.AdminPostComments(context.Background(), "choosing-tiles", "pending")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "/comments/admin/post/choosing-tiles", gotPath)
	assert.Contains(t, gotQuery, "status=pending")
}

func TestRESTStore_ChangePasswordPayload(t *testing.T) {
	s := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/auth/change-password", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "old-pass", payload["currentPassword"])
		assert.Equal(t, "new-pass", payload["newPassword"])

		w.Write([]byte(`{"success":true}`))
	})

	require.NoError(t, s.ChangePassword(context.Background(), "old-pass", "new-pass"))
}
