package api

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"finishing-directory-web/internal/domain"
	"finishing-directory-web/internal/listing"
	"finishing-directory-web/internal/store"
)

const companyDashboard = "/company/dashboard"

type companyDashboardPage struct {
	basePage
	Profile       domain.Company
	AllCategories []domain.Category
	SelectedIDs   map[int64]bool
	ExclusiveID   int64
	MaxImages     int
	MaxVideos     int
	MaxPlans      int
	MaxServices   int
}

// CompanyDashboardPage renders the whole self-service dashboard from one
// profile fetch plus the category list. Every mutation below redirects back
// here, so the page is always a full re-fetch and server-computed fields stay
// consistent.
func (h *Handler) CompanyDashboardPage(w http.ResponseWriter, r *http.Request) {
	profile, err := h.storers.Company.Profile(r.Context())
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	categories, err := h.storers.Public.Categories(r.Context())
	if err != nil {
		h.logger.Printf("WARN: categories fetch: %v", err)
	}

	selected := make(map[int64]bool, len(profile.Categories))
	for _, c := range profile.Categories {
		selected[c.ID] = true
	}

	h.render(w, http.StatusOK, "company_dashboard.html", companyDashboardPage{
		basePage:      h.base(w, r, "لوحة تحكم الشركة"),
		Profile:       *profile,
		AllCategories: categories,
		SelectedIDs:   selected,
		ExclusiveID:   exclusiveCategoryID(categories),
		MaxImages:     maxImages,
		MaxVideos:     maxVideos,
		MaxPlans:      maxPricingPlans,
		MaxServices:   maxServices,
	})
}

func exclusiveCategoryID(categories []domain.Category) int64 {
	for _, c := range categories {
		if c.Name == domain.ExclusiveCategoryName {
			return c.ID
		}
	}
	return 0
}

type profileForm struct {
	CompanyName  string `validate:"required"`
	ContactEmail string `validate:"omitempty,email"`
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", companyDashboard)
		return
	}
	form := profileForm{
		CompanyName:  r.FormValue("company_name"),
		ContactEmail: r.FormValue("contact_email"),
	}
	if err := h.validate.Struct(form); err != nil {
		h.setFlash(w, flashError, "اسم الشركة مطلوب والبريد يجب أن يكون صحيحاً")
		h.redirect(w, r, companyDashboard)
		return
	}
	update := store.ProfileUpdate{
		CompanyName:  form.CompanyName,
		Description:  r.FormValue("description"),
		Address:      r.FormValue("address"),
		City:         r.FormValue("city"),
		Region:       r.FormValue("region"),
		ContactEmail: form.ContactEmail,
		SocialLinks: domain.SocialLinks{
			Facebook:  r.FormValue("facebook"),
			Instagram: r.FormValue("instagram"),
			Website:   r.FormValue("website"),
		},
	}
	if err := h.storers.Company.UpdateProfile(r.Context(), update); err != nil {
		h.failBack(w, r, err, "تعذر حفظ البيانات", companyDashboard)
		return
	}
	h.setFlash(w, flashSuccess, "تم حفظ بيانات الشركة")
	h.redirect(w, r, companyDashboard)
}

// formFiles collects the uploaded files under the given form field. The
// handler forwards them to the upstream without persisting anything locally.
func formFiles(r *http.Request, field string) ([]store.FileUpload, []multipart.File, error) {
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		// a plain form post simply carries no files
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil, r.ParseForm()
		}
		return nil, nil, err
	}
	var uploads []store.FileUpload
	var open []multipart.File
	if r.MultipartForm == nil {
		return nil, nil, nil
	}
	for _, header := range r.MultipartForm.File[field] {
		f, err := header.Open()
		if err != nil {
			return nil, open, err
		}
		open = append(open, f)
		uploads = append(uploads, store.FileUpload{
			Field:    field,
			Filename: header.Filename,
			Content:  f,
		})
	}
	return uploads, open, nil
}

func closeFiles(files []multipart.File) {
	for _, f := range files {
		f.Close()
	}
}

func (h *Handler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	uploads, open, err := formFiles(r, "logo")
	defer closeFiles(open)
	if err != nil {
		h.failBack(w, r, err, "تعذر قراءة الملف", companyDashboard)
		return
	}
	if len(uploads) == 0 {
		h.setFlash(w, flashError, "اختر ملف الشعار أولاً")
		h.redirect(w, r, companyDashboard)
		return
	}
	if err := h.storers.Company.UploadLogo(r.Context(), uploads[0]); err != nil {
		h.failBack(w, r, err, "تعذر رفع الشعار", companyDashboard)
		return
	}
	h.setFlash(w, flashSuccess, "تم تحديث الشعار")
	h.redirect(w, r, companyDashboard)
}

func (h *Handler) UploadImages(w http.ResponseWriter, r *http.Request) {
	uploads, open, err := formFiles(r, "images")
	defer closeFiles(open)
	if err != nil {
		h.failBack(w, r, err, "تعذر قراءة الملفات", companyDashboard)
		return
	}
	if len(uploads) == 0 {
		h.setFlash(w, flashError, "اختر صوراً أولاً")
		h.redirect(w, r, companyDashboard)
		return
	}
	if err := h.storers.Company.UploadImages(r.Context(), uploads); err != nil {
		h.failBack(w, r, err, "تعذر رفع الصور", companyDashboard)
		return
	}
	h.setFlash(w, flashSuccess, "تم رفع الصور")
	h.redirect(w, r, companyDashboard)
}

func (h *Handler) UploadVideos(w http.ResponseWriter, r *http.Request) {
	uploads, open, err := formFiles(r, "videos")
	defer closeFiles(open)
	if err != nil {
		h.failBack(w, r, err, "تعذر قراءة الملفات", companyDashboard)
		return
	}
	if len(uploads) == 0 {
		h.setFlash(w, flashError, "اختر فيديو أولاً")
		h.redirect(w, r, companyDashboard)
		return
	}
	if err := h.storers.Company.UploadVideos(r.Context(), uploads); err != nil {
		h.failBack(w, r, err, "تعذر رفع الفيديو", companyDashboard)
		return
	}
	h.setFlash(w, flashSuccess, "تم رفع الفيديو")
	h.redirect(w, r, companyDashboard)
}

// deleteByID factors the shared delete-one-subresource flow: parse id, call
// the storer, flash, redirect back to the dashboard.
func (h *Handler) deleteByID(w http.ResponseWriter, r *http.Request, remove func(int64) error, done string) {
	id, err := pathID(r, "id")
	if err != nil {
		h.notFound(w, r)
		return
	}
	if err := remove(id); err != nil {
		h.failBack(w, r, err, "تعذر الحذف", companyDashboard)
		return
	}
	h.setFlash(w, flashSuccess, done)
	h.redirect(w, r, companyDashboard)
}

func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, func(id int64) error { return h.storers.Company.DeleteImage(r.Context(), id) }, "تم حذف الصورة")
}

func (h *Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, func(id int64) error { return h.storers.Company.DeleteVideo(r.Context(), id) }, "تم حذف الفيديو")
}

func (h *Handler) AddPhone(w http.ResponseWriter, r *http.Request) {
	h.addNumber(w, r, h.storers.Company.AddPhone, "تم إضافة الرقم")
}

func (h *Handler) DeletePhone(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, func(id int64) error { return h.storers.Company.DeletePhone(r.Context(), id) }, "تم حذف الرقم")
}

func (h *Handler) AddWhatsApp(w http.ResponseWriter, r *http.Request) {
	h.addNumber(w, r, h.storers.Company.AddWhatsApp, "تم إضافة رقم الواتساب")
}

func (h *Handler) DeleteWhatsApp(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, func(id int64) error { return h.storers.Company.DeleteWhatsApp(r.Context(), id) }, "تم حذف رقم الواتساب")
}

func (h *Handler) addNumber(w http.ResponseWriter, r *http.Request, add func(ctx context.Context, number string) error, done string) {
	if err := r.ParseForm(); err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", companyDashboard)
		return
	}
	number := r.FormValue("number")
	if number == "" {
		h.setFlash(w, flashError, "أدخل الرقم أولاً")
		h.redirect(w, r, companyDashboard)
		return
	}
	if err := add(r.Context(), number); err != nil {
		h.failBack(w, r, err, "تعذر إضافة الرقم", companyDashboard)
		return
	}
	h.setFlash(w, flashSuccess, done)
	h.redirect(w, r, companyDashboard)
}

func (h *Handler) AddService(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", companyDashboard)
		return
	}
	name := r.FormValue("service_name")
	if name == "" {
		h.setFlash(w, flashError, "أدخل اسم الخدمة أولاً")
		h.redirect(w, r, companyDashboard)
		return
	}
	if err := h.storers.Company.AddService(r.Context(), name); err != nil {
		h.failBack(w, r, err, "تعذر إضافة الخدمة", companyDashboard)
		return
	}
	h.setFlash(w, flashSuccess, "تم إضافة الخدمة")
	h.redirect(w, r, companyDashboard)
}

func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.notFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", companyDashboard)
		return
	}
	name := r.FormValue("service_name")
	if name == "" {
		h.setFlash(w, flashError, "أدخل اسم الخدمة أولاً")
		h.redirect(w, r, companyDashboard)
		return
	}
	if err := h.storers.Company.UpdateService(r.Context(), id, name); err != nil {
		h.failBack(w, r, err, "تعذر تعديل الخدمة", companyDashboard)
		return
	}
	h.setFlash(w, flashSuccess, "تم تعديل الخدمة")
	h.redirect(w, r, companyDashboard)
}

func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, func(id int64) error { return h.storers.Company.DeleteService(r.Context(), id) }, "تم حذف الخدمة")
}

type pricingPlanForm struct {
	Title         string  `validate:"required"`
	PricePerMeter float64 `validate:"required,gt=0"`
}

func pricingPlanInput(r *http.Request) (store.PricingPlanInput, pricingPlanForm) {
	price, _ := strconv.ParseFloat(r.FormValue("price_per_meter"), 64)
	input := store.PricingPlanInput{
		Title:         r.FormValue("title"),
		Description:   r.FormValue("description"),
		PricePerMeter: price,
		Pros:          listing.SplitLines(r.FormValue("pros")),
	}
	return input, pricingPlanForm{Title: input.Title, PricePerMeter: price}
}

func (h *Handler) AddPricingPlan(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", companyDashboard)
		return
	}
	input, form := pricingPlanInput(r)
	if err := h.validate.Struct(form); err != nil {
		h.setFlash(w, flashError, "عنوان الباقة وسعر المتر مطلوبان")
		h.redirect(w, r, companyDashboard)
		return
	}
	if err := h.storers.Company.AddPricingPlan(r.Context(), input); err != nil {
		h.failBack(w, r, err, "تعذر إضافة الباقة", companyDashboard)
		return
	}
	h.setFlash(w, flashSuccess, "تم إضافة الباقة")
	h.redirect(w, r, companyDashboard)
}

func (h *Handler) UpdatePricingPlan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.notFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", companyDashboard)
		return
	}
	input, form := pricingPlanInput(r)
	if err := h.validate.Struct(form); err != nil {
		h.setFlash(w, flashError, "عنوان الباقة وسعر المتر مطلوبان")
		h.redirect(w, r, companyDashboard)
		return
	}
	if err := h.storers.Company.UpdatePricingPlan(r.Context(), id, input); err != nil {
		h.failBack(w, r, err, "تعذر تعديل الباقة", companyDashboard)
		return
	}
	h.setFlash(w, flashSuccess, "تم تعديل الباقة")
	h.redirect(w, r, companyDashboard)
}

func (h *Handler) DeletePricingPlan(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, func(id int64) error { return h.storers.Company.DeletePricingPlan(r.Context(), id) }, "تم حذف الباقة")
}

// ToggleCategory applies one checkbox toggle to the company's category
// selection under the exclusivity rule, then persists the whole selection.
// The form carries the current selection, the toggled category and direction.
func (h *Handler) ToggleCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", companyDashboard)
		return
	}
	toggled, err := strconv.ParseInt(r.FormValue("category_id"), 10, 64)
	if err != nil || toggled <= 0 {
		h.setFlash(w, flashError, "فئة غير صحيحة")
		h.redirect(w, r, companyDashboard)
		return
	}
	checked := r.FormValue("checked") == "1"

	var current []int64
	for _, raw := range r.Form["selected"] {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			current = append(current, id)
		}
	}

	categories, err := h.storers.Public.Categories(r.Context())
	if err != nil {
		h.failBack(w, r, err, "تعذر تحميل الفئات", companyDashboard)
		return
	}
	selection := listing.ApplySelection(current, toggled, checked, exclusiveCategoryID(categories))
	if err := h.storers.Company.SetCategories(r.Context(), selection); err != nil {
		h.failBack(w, r, err, "تعذر حفظ الفئات", companyDashboard)
		return
	}
	h.setFlash(w, flashSuccess, "تم تحديث فئات الشركة")
	h.redirect(w, r, companyDashboard)
}
