package api

import (
	"embed"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"finishing-directory-web/internal/media"
	"finishing-directory-web/internal/session"
	"finishing-directory-web/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Page sizes and collection caps shown in page copy. The caps are enforced
// authoritatively upstream; client-side checks are a courtesy.
const (
	companiesPerPage = 8
	postsPerPage     = 6
	adminPerPage     = 10
	latestPostsHome  = 3

	maxImages       = 30
	maxVideos       = 2
	maxPricingPlans = 3
	maxServices     = 10
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Storers groups the upstream interfaces the handlers depend on. Handlers only
// see interfaces so tests can mock each resource group independently.
type Storers struct {
	Auth    store.AuthStorer
	Public  store.PublicStorer
	Company store.CompanyStorer
	Admin   store.AdminStorer
	Blog    store.BlogStorer
	Reviews store.ReviewStorer
	Contact store.ContactStorer
}

// Handler holds dependencies for the page and form handlers.
type Handler struct {
	storers  Storers
	sessions *session.Manager
	media    *media.Resolver
	validate *validator.Validate
	tmpl     *template.Template
	logger   *log.Logger
}

// NewHandler creates a Handler with its template set parsed from the embedded
// files.
func NewHandler(st Storers, sessions *session.Manager, resolver *media.Resolver, logger *log.Logger) (*Handler, error) {
	funcs := template.FuncMap{
		"media": resolver.URL,
		"seq": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i + 1
			}
			return out
		},
		"rating1": func(v float64) string { return fmt.Sprintf("%.1f", v) },
		// Post content is admin-authored; its <br /> markup renders as-is.
		"safe": func(s string) template.HTML { return template.HTML(s) },
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Handler{
		storers:  st,
		sessions: sessions,
		media:    resolver,
		validate: validator.New(),
		tmpl:     tmpl,
		logger:   logger,
	}, nil
}

// basePage is embedded by every page's view data.
type basePage struct {
	Title string
	User  *session.Session
	Flash *Flash
}

func (h *Handler) base(w http.ResponseWriter, r *http.Request, title string) basePage {
	return basePage{
		Title: title,
		User:  SessionFrom(r.Context()),
		Flash: h.popFlash(w, r),
	}
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Printf("ERROR: render %s: %v", name, err)
	}
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusSeeOther)
}

type errorPage struct {
	basePage
	Message string
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, "notfound.html", errorPage{basePage: h.base(w, r, "غير موجود")})
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Printf("ERROR: %s %s: %v", r.Method, r.URL.Path, err)
	h.render(w, http.StatusInternalServerError, "error.html", errorPage{
		basePage: h.base(w, r, "خطأ"),
		Message:  "حدث خطأ غير متوقع، حاول مرة أخرى",
	})
}

// unauthorized applies the global fail-closed policy: clear the session keys
// and hard-redirect to the company login page, regardless of which page made
// the call.
func (h *Handler) unauthorized(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	h.redirect(w, r, "/login/company")
}

// failPage is the shared error path for GET page handlers.
func (h *Handler) failPage(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrUnauthorized):
		h.unauthorized(w, r)
	case errors.Is(err, store.ErrNotFound):
		h.notFound(w, r)
	default:
		h.serverError(w, r, err)
	}
}

// failBack is the shared error path for form POST handlers: unauthorized is
// handled globally, everything else becomes a flash banner with the upstream
// message (or fallback) and a redirect back, leaving prior state intact.
func (h *Handler) failBack(w http.ResponseWriter, r *http.Request, err error, fallback, backTo string) {
	if errors.Is(err, store.ErrUnauthorized) {
		h.unauthorized(w, r)
		return
	}
	h.logger.Printf("WARN: %s %s: %v", r.Method, r.URL.Path, err)
	h.setFlash(w, flashError, store.UserMessage(err, fallback))
	h.redirect(w, r, backTo)
}

// Flash is a one-shot banner carried across a redirect.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

const (
	flashCookieName = "fdw_flash"
	flashSuccess    = "success"
	flashError      = "error"
)

func (h *Handler) setFlash(w http.ResponseWriter, kind, message string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(kind + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookieName, Value: "", Path: "/", MaxAge: -1})
	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	kind, message, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil
	}
	return &Flash{Kind: kind, Message: message}
}

// confirmPage renders the explicit confirmation step required before every
// destructive action. The action must be a local path; the POST only fires
// from here.
type confirmData struct {
	basePage
	Prompt string
	Action string
	Back   string
}

func (h *Handler) ConfirmPage(w http.ResponseWriter, r *http.Request) {
	action := r.URL.Query().Get("action")
	back := r.URL.Query().Get("back")
	prompt := r.URL.Query().Get("prompt")
	if !strings.HasPrefix(action, "/") || strings.HasPrefix(action, "//") {
		h.notFound(w, r)
		return
	}
	if !strings.HasPrefix(back, "/") || strings.HasPrefix(back, "//") {
		back = "/"
	}
	if prompt == "" {
		prompt = "هل أنت متأكد من الحذف؟"
	}
	h.render(w, http.StatusOK, "confirm.html", confirmData{
		basePage: h.base(w, r, "تأكيد"),
		Prompt:   prompt,
		Action:   action,
		Back:     back,
	})
}

// RegisterRoutes sets up all page and form routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Use(h.WithSession)

	r.Handle("/static/*", http.FileServer(http.FS(staticFS)))

	// Public pages
	r.Get("/", h.HomePage)
	r.Get("/companies", h.CompaniesPage)
	r.Get("/companies/{companyId}", h.CompanyDetailPage)
	r.Post("/companies/{companyId}/reviews", h.SubmitReview)
	r.Get("/blog", h.BlogPage)
	r.Get("/blog/{idOrSlug}", h.BlogPostPage)
	r.Post("/blog/{idOrSlug}/comments", h.SubmitComment)
	r.Get("/about", h.AboutPage)
	r.Get("/contact", h.ContactPage)
	r.Post("/contact", h.SubmitContact)
	r.Get("/confirm", h.ConfirmPage)

	// Auth
	r.Get("/login/{role}", h.LoginPage)
	r.Post("/login/{role}", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/password/forgot", h.ForgotPasswordPage)
	r.Post("/password/forgot", h.ForgotPassword)
	r.Group(func(r chi.Router) {
		r.Use(h.RequireSession)
		r.Get("/password/change", h.ChangePasswordPage)
		r.Post("/password/change", h.ChangePassword)
	})

	// Company self-service dashboard
	r.Route("/company", func(r chi.Router) {
		r.Use(h.RequireRole("company"))
		r.Get("/dashboard", h.CompanyDashboardPage)
		r.Post("/profile", h.UpdateProfile)
		r.Post("/logo", h.UploadLogo)
		r.Post("/images", h.UploadImages)
		r.Post("/images/{id}/delete", h.DeleteImage)
		r.Post("/videos", h.UploadVideos)
		r.Post("/videos/{id}/delete", h.DeleteVideo)
		r.Post("/phones", h.AddPhone)
		r.Post("/phones/{id}/delete", h.DeletePhone)
		r.Post("/whatsapp", h.AddWhatsApp)
		r.Post("/whatsapp/{id}/delete", h.DeleteWhatsApp)
		r.Post("/services", h.AddService)
		r.Post("/services/{id}", h.UpdateService)
		r.Post("/services/{id}/delete", h.DeleteService)
		r.Post("/pricing-plans", h.AddPricingPlan)
		r.Post("/pricing-plans/{id}", h.UpdatePricingPlan)
		r.Post("/pricing-plans/{id}/delete", h.DeletePricingPlan)
		r.Post("/categories/toggle", h.ToggleCategory)
	})

	// Admin back-office
	r.Route("/admin", func(r chi.Router) {
		r.Use(h.RequireRole("admin"))
		r.Get("/dashboard", h.AdminDashboardPage)
		r.Get("/companies/new", h.AdminCompanyFormPage)
		r.Get("/companies/{id}/edit", h.AdminCompanyFormPage)
		r.Post("/companies", h.AdminCreateCompany)
		r.Post("/companies/{id}", h.AdminUpdateCompany)
		r.Post("/companies/{id}/delete", h.AdminDeleteCompany)
		r.Post("/companies/{id}/reset-password", h.AdminResetCompanyPassword)
		r.Post("/reviews/{id}/delete", h.AdminDeleteReview)
		r.Get("/messages/{id}", h.AdminMessagePage)
		r.Post("/messages/{id}/delete", h.AdminDeleteMessage)
		r.Get("/blog/new", h.AdminBlogFormPage)
		r.Get("/blog/{id}/edit", h.AdminBlogFormPage)
		r.Post("/blog", h.AdminCreateBlogPost)
		r.Post("/blog/{id}", h.AdminUpdateBlogPost)
		r.Post("/blog/{id}/delete", h.AdminDeleteBlogPost)
		r.Get("/posts/{idOrSlug}/comments", h.AdminPostCommentsPage)
		r.Post("/comments/{id}/approve", h.AdminApproveComment)
		r.Post("/comments/{id}/delete", h.AdminDeleteComment)
		r.Post("/categories", h.AdminCreateCategory)
		r.Post("/categories/{id}", h.AdminUpdateCategory)
		r.Post("/categories/{id}/delete", h.AdminDeleteCategory)
	})

	r.NotFound(h.notFound)
}

// pathID parses a numeric chi URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}
