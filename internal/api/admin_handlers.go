package api

import (
	"errors"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"finishing-directory-web/internal/domain"
	"finishing-directory-web/internal/listing"
	"finishing-directory-web/internal/store"

	"github.com/go-chi/chi/v5"
)

const adminDashboard = "/admin/dashboard"

var adminSections = map[string]bool{
	"overview": true, "companies": true, "reviews": true,
	"messages": true, "blog": true, "settings": true,
}

type adminOverview struct {
	Companies int
	Reviews   int
	Messages  int
	Unread    int
	Posts     int
}

type adminDashboardPage struct {
	basePage
	Section    string
	Page       listing.Page
	Overview   adminOverview
	Companies  []domain.Company
	Reviews    []domain.Review
	Messages   []domain.ContactMessage
	Posts      []domain.BlogPost
	Categories []domain.Category
}

func sectionPath(section string, page int) string {
	v := url.Values{}
	v.Set("section", section)
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	return adminDashboard + "?" + v.Encode()
}

// AdminDashboardPage drives one fetch per section; each section keeps its own
// page number via the query string.
func (h *Handler) AdminDashboardPage(w http.ResponseWriter, r *http.Request) {
	section := r.URL.Query().Get("section")
	if !adminSections[section] {
		section = "overview"
	}
	pageNum, _ := strconv.Atoi(r.URL.Query().Get("page"))

	data := adminDashboardPage{
		basePage: h.base(w, r, "لوحة تحكم الإدارة"),
		Section:  section,
	}

	var err error
	switch section {
	case "overview":
		data.Overview, err = h.adminOverview(r)
	case "companies":
		var companies []domain.Company
		companies, err = h.storers.Admin.AdminCompanies(r.Context())
		if err == nil {
			data.Page = listing.Paginate(len(companies), pageNum, adminPerPage)
			data.Companies = companies[data.Page.Start:data.Page.End]
		}
	case "reviews":
		var reviews []domain.Review
		reviews, err = h.storers.Admin.Reviews(r.Context())
		if err == nil {
			data.Page = listing.Paginate(len(reviews), pageNum, adminPerPage)
			data.Reviews = reviews[data.Page.Start:data.Page.End]
		}
	case "messages":
		var messages []domain.ContactMessage
		messages, err = h.storers.Admin.ContactMessages(r.Context())
		if err == nil {
			data.Page = listing.Paginate(len(messages), pageNum, adminPerPage)
			data.Messages = messages[data.Page.Start:data.Page.End]
		}
	case "blog":
		var posts []domain.BlogPost
		posts, err = h.storers.Blog.Posts(r.Context())
		if err == nil {
			data.Page = listing.Paginate(len(posts), pageNum, adminPerPage)
			data.Posts = posts[data.Page.Start:data.Page.End]
		}
	case "settings":
		data.Categories, err = h.storers.Public.Categories(r.Context())
	}
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	h.render(w, http.StatusOK, "admin_dashboard.html", data)
}

// adminOverview derives its counters from concurrent fetches of the admin
// collections. A failing fetch leaves its counter at zero; only a rejected
// session is reported back so the usual clear-and-redirect policy applies.
func (h *Handler) adminOverview(r *http.Request) (adminOverview, error) {
	ctx := r.Context()
	var overview adminOverview
	var authErr error
	var mu sync.Mutex

	// Only a rejected session aborts the page; any other failure just leaves
	// the counter at zero.
	record := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if errors.Is(err, store.ErrUnauthorized) && authErr == nil {
			authErr = err
		}
	}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		companies, err := h.storers.Admin.AdminCompanies(ctx)
		if err != nil {
			record(err)
			return
		}
		overview.Companies = len(companies)
	}()
	go func() {
		defer wg.Done()
		reviews, err := h.storers.Admin.Reviews(ctx)
		if err != nil {
			record(err)
			return
		}
		overview.Reviews = len(reviews)
	}()
	go func() {
		defer wg.Done()
		messages, err := h.storers.Admin.ContactMessages(ctx)
		if err != nil {
			record(err)
			return
		}
		overview.Messages = len(messages)
		for _, m := range messages {
			if !m.IsRead {
				overview.Unread++
			}
		}
	}()
	go func() {
		defer wg.Done()
		posts, err := h.storers.Blog.Posts(ctx)
		if err != nil {
			record(err)
			return
		}
		overview.Posts = len(posts)
	}()
	wg.Wait()
	return overview, authErr
}

// --- Company CRUD ---

type adminCompanyFormPage struct {
	basePage
	Editing bool
	Company domain.Company
}

func (h *Handler) AdminCompanyFormPage(w http.ResponseWriter, r *http.Request) {
	data := adminCompanyFormPage{basePage: h.base(w, r, "بيانات الشركة")}
	if raw := chi.URLParam(r, "id"); raw != "" {
		id, err := pathID(r, "id")
		if err != nil {
			h.notFound(w, r)
			return
		}
		company, err := h.storers.Admin.AdminCompany(r.Context(), id)
		if err != nil {
			h.failPage(w, r, err)
			return
		}
		data.Editing = true
		data.Company = *company
	}
	h.render(w, http.StatusOK, "admin_company_form.html", data)
}

type adminCompanyCreateForm struct {
	Username    string `validate:"required"`
	Password    string `validate:"required,min=6"`
	CompanyName string `validate:"required"`
}

func companyInputFromForm(r *http.Request) store.CompanyInput {
	return store.CompanyInput{
		Username:     r.FormValue("username"),
		Password:     r.FormValue("password"),
		CompanyName:  r.FormValue("company_name"),
		Email:        r.FormValue("email"),
		Description:  r.FormValue("description"),
		Address:      r.FormValue("address"),
		City:         r.FormValue("city"),
		Region:       r.FormValue("region"),
		ContactEmail: r.FormValue("contact_email"),
	}
}

func (h *Handler) AdminCreateCompany(w http.ResponseWriter, r *http.Request) {
	back := sectionPath("companies", 1)
	if err := r.ParseForm(); err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", back)
		return
	}
	input := companyInputFromForm(r)
	form := adminCompanyCreateForm{
		Username:    input.Username,
		Password:    input.Password,
		CompanyName: input.CompanyName,
	}
	if err := h.validate.Struct(form); err != nil {
		h.setFlash(w, flashError, "اسم المستخدم وكلمة المرور واسم الشركة مطلوبة")
		h.redirect(w, r, "/admin/companies/new")
		return
	}
	if err := h.storers.Admin.CreateCompany(r.Context(), input); err != nil {
		h.failBack(w, r, err, "تعذر إنشاء الشركة", "/admin/companies/new")
		return
	}
	h.setFlash(w, flashSuccess, "تم إنشاء الشركة")
	h.redirect(w, r, back)
}

// AdminUpdateCompany ignores the username field (immutable when editing) and
// sends an empty password as "unchanged".
func (h *Handler) AdminUpdateCompany(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.notFound(w, r)
		return
	}
	back := sectionPath("companies", 1)
	if err := r.ParseForm(); err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", back)
		return
	}
	input := companyInputFromForm(r)
	input.Username = ""
	if input.CompanyName == "" {
		h.setFlash(w, flashError, "اسم الشركة مطلوب")
		h.redirect(w, r, "/admin/companies/"+chi.URLParam(r, "id")+"/edit")
		return
	}
	if err := h.storers.Admin.UpdateCompany(r.Context(), id, input); err != nil {
		h.failBack(w, r, err, "تعذر حفظ الشركة", back)
		return
	}
	h.setFlash(w, flashSuccess, "تم حفظ بيانات الشركة")
	h.redirect(w, r, back)
}

func (h *Handler) AdminDeleteCompany(w http.ResponseWriter, r *http.Request) {
	h.adminDelete(w, r, func(id int64) error { return h.storers.Admin.DeleteCompany(r.Context(), id) },
		"تم حذف الشركة", sectionPath("companies", 1))
}

func (h *Handler) AdminResetCompanyPassword(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.notFound(w, r)
		return
	}
	back := sectionPath("companies", 1)
	if err := r.ParseForm(); err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", back)
		return
	}
	newPassword := r.FormValue("new_password")
	if len(newPassword) < 6 {
		h.setFlash(w, flashError, "كلمة المرور الجديدة يجب ألا تقل عن 6 أحرف")
		h.redirect(w, r, back)
		return
	}
	if err := h.storers.Admin.ResetCompanyPassword(r.Context(), id, newPassword); err != nil {
		h.failBack(w, r, err, "تعذر إعادة تعيين كلمة المرور", back)
		return
	}
	h.setFlash(w, flashSuccess, "تم إعادة تعيين كلمة المرور")
	h.redirect(w, r, back)
}

// adminDelete factors the shared delete flow for admin subresources.
func (h *Handler) adminDelete(w http.ResponseWriter, r *http.Request, remove func(int64) error, done, back string) {
	id, err := pathID(r, "id")
	if err != nil {
		h.notFound(w, r)
		return
	}
	if err := remove(id); err != nil {
		h.failBack(w, r, err, "تعذر الحذف", back)
		return
	}
	h.setFlash(w, flashSuccess, done)
	h.redirect(w, r, back)
}

func (h *Handler) AdminDeleteReview(w http.ResponseWriter, r *http.Request) {
	h.adminDelete(w, r, func(id int64) error { return h.storers.Admin.DeleteReview(r.Context(), id) },
		"تم حذف التقييم", sectionPath("reviews", 1))
}

// --- Messages ---

type adminMessagePage struct {
	basePage
	Message domain.ContactMessage
}

// AdminMessagePage shows one contact message and marks it read.
func (h *Handler) AdminMessagePage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.notFound(w, r)
		return
	}
	message, err := h.storers.Admin.ContactMessage(r.Context(), id)
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	if !message.IsRead {
		if err := h.storers.Admin.MarkMessageRead(r.Context(), id); err != nil {
			h.logger.Printf("WARN: mark message %d read: %v", id, err)
		} else {
			message.IsRead = true
		}
	}
	h.render(w, http.StatusOK, "admin_message.html", adminMessagePage{
		basePage: h.base(w, r, "رسالة"),
		Message:  *message,
	})
}

func (h *Handler) AdminDeleteMessage(w http.ResponseWriter, r *http.Request) {
	h.adminDelete(w, r, func(id int64) error { return h.storers.Admin.DeleteContactMessage(r.Context(), id) },
		"تم حذف الرسالة", sectionPath("messages", 1))
}

// --- Blog CRUD ---

type adminBlogFormPage struct {
	basePage
	Editing bool
	Post    domain.BlogPost
	TagsCSV string
	// Content with stored <br /> markup converted back to newlines for the
	// textarea. The conversion is lossy by convention; see listing.
	EditContent string
}

func (h *Handler) AdminBlogFormPage(w http.ResponseWriter, r *http.Request) {
	data := adminBlogFormPage{basePage: h.base(w, r, "مقالة")}
	if raw := chi.URLParam(r, "id"); raw != "" {
		id, err := pathID(r, "id")
		if err != nil {
			h.notFound(w, r)
			return
		}
		post, err := h.storers.Blog.Post(r.Context(), strconv.FormatInt(id, 10))
		if err != nil {
			h.failPage(w, r, err)
			return
		}
		data.Editing = true
		data.Post = *post
		data.TagsCSV = listing.JoinTags(post.Tags)
		data.EditContent = listing.BreaksToNewlines(post.Content)
	}
	h.render(w, http.StatusOK, "admin_blog_form.html", data)
}

type blogForm struct {
	Title   string `validate:"required"`
	Content string `validate:"required"`
}

// blogInputFromForm builds the upstream payload: tags are comma-split and
// trimmed, textarea newlines become <br /> markup.
func blogInputFromForm(r *http.Request) store.BlogPostInput {
	return store.BlogPostInput{
		Title:       r.FormValue("title"),
		Content:     listing.NewlinesToBreaks(r.FormValue("content")),
		Author:      r.FormValue("author"),
		Slug:        r.FormValue("slug"),
		Excerpt:     r.FormValue("excerpt"),
		Category:    r.FormValue("category"),
		Tags:        listing.SplitTags(r.FormValue("tags")),
		Status:      r.FormValue("status"),
		PublishedAt: r.FormValue("published_at"),
	}
}

func (h *Handler) blogImage(r *http.Request) (*store.FileUpload, []multipart.File, error) {
	uploads, open, err := formFiles(r, "image")
	if err != nil {
		return nil, open, err
	}
	if len(uploads) == 0 {
		return nil, open, nil
	}
	return &uploads[0], open, nil
}

func (h *Handler) AdminCreateBlogPost(w http.ResponseWriter, r *http.Request) {
	back := sectionPath("blog", 1)
	image, open, err := h.blogImage(r)
	defer closeFiles(open)
	if err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", "/admin/blog/new")
		return
	}
	input := blogInputFromForm(r)
	if err := h.validate.Struct(blogForm{Title: input.Title, Content: input.Content}); err != nil {
		h.setFlash(w, flashError, "العنوان والمحتوى مطلوبان")
		h.redirect(w, r, "/admin/blog/new")
		return
	}
	if err := h.storers.Admin.CreateBlogPost(r.Context(), input, image); err != nil {
		h.failBack(w, r, err, "تعذر إنشاء المقالة", "/admin/blog/new")
		return
	}
	h.setFlash(w, flashSuccess, "تم إنشاء المقالة")
	h.redirect(w, r, back)
}

func (h *Handler) AdminUpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.notFound(w, r)
		return
	}
	back := sectionPath("blog", 1)
	editPath := "/admin/blog/" + chi.URLParam(r, "id") + "/edit"
	image, open, err := h.blogImage(r)
	defer closeFiles(open)
	if err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", editPath)
		return
	}
	input := blogInputFromForm(r)
	if err := h.validate.Struct(blogForm{Title: input.Title, Content: input.Content}); err != nil {
		h.setFlash(w, flashError, "العنوان والمحتوى مطلوبان")
		h.redirect(w, r, editPath)
		return
	}
	if err := h.storers.Admin.UpdateBlogPost(r.Context(), id, input, image); err != nil {
		h.failBack(w, r, err, "تعذر حفظ المقالة", editPath)
		return
	}
	h.setFlash(w, flashSuccess, "تم حفظ المقالة")
	h.redirect(w, r, back)
}

func (h *Handler) AdminDeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	h.adminDelete(w, r, func(id int64) error { return h.storers.Admin.DeleteBlogPost(r.Context(), id) },
		"تم حذف المقالة", sectionPath("blog", 1))
}

// --- Comment moderation ---

var commentStatuses = map[string]bool{
	domain.CommentStatusPending:  true,
	domain.CommentStatusApproved: true,
	domain.CommentStatusSpam:     true,
}

type adminCommentsPage struct {
	basePage
	IDOrSlug string
	Status   string
	Comments []domain.Comment
}

// AdminPostCommentsPage lists one post's comments scoped by the status filter;
// switching the filter re-fetches only this scope.
func (h *Handler) AdminPostCommentsPage(w http.ResponseWriter, r *http.Request) {
	idOrSlug := chi.URLParam(r, "idOrSlug")
	status := r.URL.Query().Get("status")
	if !commentStatuses[status] {
		status = domain.CommentStatusPending
	}
	comments, err := h.storers.Blog.AdminPostComments(r.Context(), idOrSlug, status)
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	h.render(w, http.StatusOK, "admin_comments.html", adminCommentsPage{
		basePage: h.base(w, r, "تعليقات المقالة"),
		IDOrSlug: idOrSlug,
		Status:   status,
		Comments: comments,
	})
}

func commentsBack(r *http.Request) string {
	post := r.FormValue("post")
	status := r.FormValue("status")
	if post == "" {
		return sectionPath("blog", 1)
	}
	back := "/admin/posts/" + url.PathEscape(post) + "/comments"
	if status != "" {
		back += "?status=" + url.QueryEscape(status)
	}
	return back
}

func (h *Handler) AdminApproveComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.notFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", sectionPath("blog", 1))
		return
	}
	back := commentsBack(r)
	if err := h.storers.Blog.ApproveComment(r.Context(), id); err != nil {
		h.failBack(w, r, err, "تعذر اعتماد التعليق", back)
		return
	}
	h.setFlash(w, flashSuccess, "تم اعتماد التعليق")
	h.redirect(w, r, back)
}

func (h *Handler) AdminDeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.notFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", sectionPath("blog", 1))
		return
	}
	back := commentsBack(r)
	if err := h.storers.Blog.DeleteComment(r.Context(), id); err != nil {
		h.failBack(w, r, err, "تعذر حذف التعليق", back)
		return
	}
	h.setFlash(w, flashSuccess, "تم حذف التعليق")
	h.redirect(w, r, back)
}

// --- Categories (settings) ---

func (h *Handler) AdminCreateCategory(w http.ResponseWriter, r *http.Request) {
	back := sectionPath("settings", 1)
	if err := r.ParseForm(); err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", back)
		return
	}
	input := store.CategoryInput{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}
	if input.Name == "" {
		h.setFlash(w, flashError, "اسم الفئة مطلوب")
		h.redirect(w, r, back)
		return
	}
	if err := h.storers.Admin.CreateCategory(r.Context(), input); err != nil {
		h.failBack(w, r, err, "تعذر إنشاء الفئة", back)
		return
	}
	h.setFlash(w, flashSuccess, "تم إنشاء الفئة")
	h.redirect(w, r, back)
}

func (h *Handler) AdminUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.notFound(w, r)
		return
	}
	back := sectionPath("settings", 1)
	if err := r.ParseForm(); err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", back)
		return
	}
	input := store.CategoryInput{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}
	if input.Name == "" {
		h.setFlash(w, flashError, "اسم الفئة مطلوب")
		h.redirect(w, r, back)
		return
	}
	if err := h.storers.Admin.UpdateCategory(r.Context(), id, input); err != nil {
		h.failBack(w, r, err, "تعذر حفظ الفئة", back)
		return
	}
	h.setFlash(w, flashSuccess, "تم حفظ الفئة")
	h.redirect(w, r, back)
}

func (h *Handler) AdminDeleteCategory(w http.ResponseWriter, r *http.Request) {
	h.adminDelete(w, r, func(id int64) error { return h.storers.Admin.DeleteCategory(r.Context(), id) },
		"تم حذف الفئة", sectionPath("settings", 1))
}
