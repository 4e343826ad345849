package api

import (
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"finishing-directory-web/internal/domain"
	"finishing-directory-web/internal/listing"
	"finishing-directory-web/internal/store"

	"github.com/go-chi/chi/v5"
)

type homePage struct {
	basePage
	Companies  []domain.Company
	Categories []domain.Category
	Stats      domain.Stats
	Posts      []domain.BlogPost
}

// HomePage issues its four fetches concurrently; they are independent and may
// resolve in any order. A failed fetch degrades its strip to empty rather than
// failing the whole page.
func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := homePage{basePage: h.base(w, r, "الرئيسية")}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		companies, err := h.storers.Public.Companies(ctx, "")
		if err != nil {
			h.logger.Printf("WARN: home companies fetch: %v", err)
			return
		}
		if len(companies) > companiesPerPage {
			companies = companies[:companiesPerPage]
		}
		data.Companies = companies
	}()
	go func() {
		defer wg.Done()
		categories, err := h.storers.Public.Categories(ctx)
		if err != nil {
			h.logger.Printf("WARN: home categories fetch: %v", err)
			return
		}
		data.Categories = categories
	}()
	go func() {
		defer wg.Done()
		stats, err := h.storers.Public.Stats(ctx)
		if err != nil {
			h.logger.Printf("WARN: home stats fetch: %v", err)
			return
		}
		data.Stats = *stats
	}()
	go func() {
		defer wg.Done()
		posts, err := h.storers.Blog.Posts(ctx)
		if err != nil {
			h.logger.Printf("WARN: home posts fetch: %v", err)
			return
		}
		published := listing.PublishedPosts(posts)
		if len(published) > latestPostsHome {
			published = published[:latestPostsHome]
		}
		data.Posts = published
	}()
	wg.Wait()

	h.render(w, http.StatusOK, "home.html", data)
}

type companiesPage struct {
	basePage
	Companies  []domain.Company
	Categories []domain.Category
	Page       listing.Page
	Search     string
	Category   string
	Location   string
	Rating     int
	Query      string // encoded filter params, reused by pager links
}

// CompaniesPage fetches the collection (upstream-narrowed by category when
// requested) and applies search/location/rating filters and pagination
// in-process. Any filter change implies page 1 because the filter form never
// carries a page parameter.
func (h *Handler) CompaniesPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("search")
	category := q.Get("category")
	location := q.Get("location")
	rating, _ := strconv.Atoi(q.Get("rating"))
	pageNum, _ := strconv.Atoi(q.Get("page"))

	companies, err := h.storers.Public.Companies(r.Context(), category)
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	categories, err := h.storers.Public.Categories(r.Context())
	if err != nil {
		h.logger.Printf("WARN: categories fetch: %v", err)
	}

	filtered := listing.FilterCompanies(companies, listing.CompanyFilter{
		Search:    search,
		Location:  location,
		MinRating: rating,
	})
	page := listing.Paginate(len(filtered), pageNum, companiesPerPage)

	params := url.Values{}
	for key, value := range map[string]string{"search": search, "category": category, "location": location} {
		if value != "" {
			params.Set(key, value)
		}
	}
	if rating > 0 {
		params.Set("rating", strconv.Itoa(rating))
	}

	h.render(w, http.StatusOK, "companies.html", companiesPage{
		basePage:   h.base(w, r, "الشركات"),
		Companies:  filtered[page.Start:page.End],
		Categories: categories,
		Page:       page,
		Search:     search,
		Category:   category,
		Location:   location,
		Rating:     rating,
		Query:      params.Encode(),
	})
}

type companyDetailPage struct {
	basePage
	Company   domain.Company
	Tab       string
	Lightbox  int // current image index, -1 when closed
	PrevImage int
	NextImage int
	Submitted bool
	Error     string
}

var detailTabs = map[string]bool{
	"overview": true, "gallery": true, "services": true,
	"pricing": true, "reviews": true, "contact": true,
}

func (h *Handler) companyDetail(w http.ResponseWriter, r *http.Request, company domain.Company) companyDetailPage {
	tab := r.URL.Query().Get("tab")
	if !detailTabs[tab] {
		tab = "overview"
	}
	lightbox := -1
	if raw := r.URL.Query().Get("img"); raw != "" && len(company.Images) > 0 {
		if idx, err := strconv.Atoi(raw); err == nil {
			n := len(company.Images)
			// prev/next wrap modulo the gallery length
			lightbox = ((idx % n) + n) % n
		}
	}
	data := companyDetailPage{
		basePage: h.base(w, r, company.CompanyName),
		Company:  company,
		Tab:      tab,
		Lightbox: lightbox,
	}
	if lightbox >= 0 {
		n := len(company.Images)
		data.PrevImage = (lightbox - 1 + n) % n
		data.NextImage = (lightbox + 1) % n
	}
	// some upstream deployments omit reviews from the detail payload
	if tab == "reviews" && len(company.Reviews) == 0 {
		reviews, err := h.storers.Reviews.CompanyReviews(r.Context(), company.ID)
		if err != nil {
			h.logger.Printf("WARN: reviews fetch for company %d: %v", company.ID, err)
		} else {
			data.Company.Reviews = reviews
		}
	}
	return data
}

func (h *Handler) CompanyDetailPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "companyId")
	if err != nil {
		h.notFound(w, r)
		return
	}
	company, err := h.storers.Public.Company(r.Context(), id)
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	h.render(w, http.StatusOK, "company_detail.html", h.companyDetail(w, r, *company))
}

type reviewForm struct {
	ReviewerName string `validate:"required"`
	Rating       int    `validate:"required,min=1,max=5"`
	Comment      string
}

// SubmitReview posts a visitor review, then re-renders the detail page with a
// display-only optimistic aggregate: the new average is recomputed locally and
// the review is prepended to the list. The authoritative aggregate appears on
// the next full fetch.
func (h *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "companyId")
	if err != nil {
		h.notFound(w, r)
		return
	}
	back := "/companies/" + chi.URLParam(r, "companyId") + "?tab=reviews"
	if err := r.ParseForm(); err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", back)
		return
	}
	rating, _ := strconv.Atoi(r.FormValue("rating"))
	form := reviewForm{
		ReviewerName: r.FormValue("reviewer_name"),
		Rating:       rating,
		Comment:      r.FormValue("comment"),
	}
	if err := h.validate.Struct(form); err != nil {
		h.setFlash(w, flashError, "اختر تقييماً من 1 إلى 5 وأدخل اسمك")
		h.redirect(w, r, back)
		return
	}

	company, err := h.storers.Public.Company(r.Context(), id)
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	created, err := h.storers.Reviews.AddReview(r.Context(), id, store.ReviewInput{
		ReviewerName: form.ReviewerName,
		Rating:       form.Rating,
		Comment:      form.Comment,
	})
	if err != nil {
		h.failBack(w, r, err, "تعذر إرسال التقييم", back)
		return
	}

	newAvg, newCount := listing.OptimisticAverage(company.AvgRating, company.ReviewCount, form.Rating)
	company.AvgRating = newAvg
	company.ReviewCount = newCount
	review := domain.Review{
		ReviewerName: form.ReviewerName,
		Rating:       form.Rating,
		Comment:      form.Comment,
		CreatedAt:    time.Now(),
	}
	if created != nil && created.ID != 0 {
		review = *created
	}
	company.Reviews = append([]domain.Review{review}, company.Reviews...)

	data := h.companyDetail(w, r, *company)
	data.Tab = "reviews"
	data.Submitted = true
	h.render(w, http.StatusOK, "company_detail.html", data)
}

type blogPage struct {
	basePage
	Posts    []domain.BlogPost
	Page     listing.Page
	Search   string
	Category string
	Query    string
}

func (h *Handler) BlogPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("search")
	category := q.Get("category")
	pageNum, _ := strconv.Atoi(q.Get("page"))

	posts, err := h.storers.Blog.Posts(r.Context())
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	filtered := listing.FilterPosts(listing.PublishedPosts(posts), search, category)
	page := listing.Paginate(len(filtered), pageNum, postsPerPage)

	params := url.Values{}
	if search != "" {
		params.Set("search", search)
	}
	if category != "" {
		params.Set("category", category)
	}

	h.render(w, http.StatusOK, "blog.html", blogPage{
		basePage: h.base(w, r, "المدونة"),
		Posts:    filtered[page.Start:page.End],
		Page:     page,
		Search:   search,
		Category: category,
		Query:    params.Encode(),
	})
}

type blogPostPage struct {
	basePage
	Post     domain.BlogPost
	Comments []domain.Comment
}

func (h *Handler) BlogPostPage(w http.ResponseWriter, r *http.Request) {
	idOrSlug := chi.URLParam(r, "idOrSlug")
	post, err := h.storers.Blog.Post(r.Context(), idOrSlug)
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	comments, err := h.storers.Blog.PostComments(r.Context(), idOrSlug)
	if err != nil {
		h.logger.Printf("WARN: comments fetch for %s: %v", idOrSlug, err)
	}
	h.render(w, http.StatusOK, "blog_post.html", blogPostPage{
		basePage: h.base(w, r, post.Title),
		Post:     *post,
		Comments: comments,
	})
}

type commentForm struct {
	UserName  string `validate:"required"`
	UserEmail string `validate:"omitempty,email"`
	Content   string `validate:"required"`
}

func (h *Handler) SubmitComment(w http.ResponseWriter, r *http.Request) {
	idOrSlug := chi.URLParam(r, "idOrSlug")
	back := "/blog/" + url.PathEscape(idOrSlug)
	if err := r.ParseForm(); err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", back)
		return
	}
	form := commentForm{
		UserName:  r.FormValue("user_name"),
		UserEmail: r.FormValue("user_email"),
		Content:   r.FormValue("content"),
	}
	if err := h.validate.Struct(form); err != nil {
		h.setFlash(w, flashError, "الاسم ونص التعليق مطلوبان")
		h.redirect(w, r, back)
		return
	}
	err := h.storers.Blog.AddComment(r.Context(), idOrSlug, store.CommentInput{
		UserName:  form.UserName,
		UserEmail: form.UserEmail,
		Content:   form.Content,
	})
	if err != nil {
		h.failBack(w, r, err, "تعذر إرسال التعليق", back)
		return
	}
	h.setFlash(w, flashSuccess, "تم استلام تعليقك وسيظهر بعد المراجعة")
	h.redirect(w, r, back)
}

func (h *Handler) AboutPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "about.html", struct{ basePage }{h.base(w, r, "من نحن")})
}

func (h *Handler) ContactPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "contact.html", struct{ basePage }{h.base(w, r, "اتصل بنا")})
}

type contactForm struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Subject string
	Message string `validate:"required"`
}

func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", "/contact")
		return
	}
	form := contactForm{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Subject: r.FormValue("subject"),
		Message: r.FormValue("message"),
	}
	if err := h.validate.Struct(form); err != nil {
		h.setFlash(w, flashError, "الاسم والبريد الإلكتروني والرسالة مطلوبة")
		h.redirect(w, r, "/contact")
		return
	}
	err := h.storers.Contact.SubmitContactMessage(r.Context(), store.ContactInput{
		Name:    form.Name,
		Email:   form.Email,
		Subject: form.Subject,
		Message: form.Message,
	})
	if err != nil {
		h.failBack(w, r, err, "تعذر إرسال الرسالة", "/contact")
		return
	}
	h.setFlash(w, flashSuccess, "تم إرسال رسالتك بنجاح")
	h.redirect(w, r, "/contact")
}
