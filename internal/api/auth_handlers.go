package api

import (
	"net/http"

	"finishing-directory-web/internal/domain"
	"finishing-directory-web/internal/session"
	"finishing-directory-web/internal/store"

	"github.com/go-chi/chi/v5"
)

type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type loginPage struct {
	basePage
	Role     string
	Username string
	Error    string
}

func loginRole(r *http.Request) string {
	role := chi.URLParam(r, "role")
	if role != domain.RoleAdmin {
		role = domain.RoleCompany
	}
	return role
}

func dashboardPath(role string) string {
	if role == domain.RoleAdmin {
		return "/admin/dashboard"
	}
	return "/company/dashboard"
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	role := loginRole(r)
	if s := SessionFrom(r.Context()); s != nil {
		h.redirect(w, r, dashboardPath(s.Role))
		return
	}
	h.render(w, http.StatusOK, "login.html", loginPage{
		basePage: h.base(w, r, "تسجيل الدخول"),
		Role:     role,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	role := loginRole(r)
	if err := r.ParseForm(); err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", "/login/"+role)
		return
	}
	form := loginForm{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}
	if err := h.validate.Struct(form); err != nil {
		h.render(w, http.StatusOK, "login.html", loginPage{
			basePage: h.base(w, r, "تسجيل الدخول"),
			Role:     role,
			Username: form.Username,
			Error:    "اسم المستخدم وكلمة المرور مطلوبان",
		})
		return
	}

	login := h.storers.Auth.LoginCompany
	if role == domain.RoleAdmin {
		login = h.storers.Auth.LoginAdmin
	}
	token, user, err := login(r.Context(), form.Username, form.Password)
	if err != nil {
		h.logger.Printf("WARN: login failed for role %s: %v", role, err)
		h.render(w, http.StatusOK, "login.html", loginPage{
			basePage: h.base(w, r, "تسجيل الدخول"),
			Role:     role,
			Username: form.Username,
			Error:    store.UserMessage(err, "فشل تسجيل الدخول، حاول مرة أخرى"),
		})
		return
	}

	// Token, user id and role are persisted together, as one session.
	err = h.sessions.Issue(w, session.Session{
		Token:    token,
		UserID:   user.ID,
		Role:     user.Role,
		Username: user.Username,
	})
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.redirect(w, r, dashboardPath(user.Role))
}

// Logout clears the session locally; no upstream call is needed.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	h.redirect(w, r, "/")
}

type changePasswordForm struct {
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required,min=6"`
}

func (h *Handler) ChangePasswordPage(w http.ResponseWriter, r *http.Request) {
	// checks the token is still accepted upstream before showing the form
	if _, err := h.storers.Auth.CurrentUser(r.Context()); err != nil {
		h.failPage(w, r, err)
		return
	}
	h.render(w, http.StatusOK, "change_password.html", struct{ basePage }{h.base(w, r, "تغيير كلمة المرور")})
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", "/password/change")
		return
	}
	form := changePasswordForm{
		CurrentPassword: r.FormValue("current_password"),
		NewPassword:     r.FormValue("new_password"),
	}
	if err := h.validate.Struct(form); err != nil {
		h.setFlash(w, flashError, "كلمة المرور الجديدة يجب ألا تقل عن 6 أحرف")
		h.redirect(w, r, "/password/change")
		return
	}
	if err := h.storers.Auth.ChangePassword(r.Context(), form.CurrentPassword, form.NewPassword); err != nil {
		h.failBack(w, r, err, "فشل تغيير كلمة المرور", "/password/change")
		return
	}
	h.setFlash(w, flashSuccess, "تم تغيير كلمة المرور بنجاح")
	h.redirect(w, r, dashboardPath(SessionFrom(r.Context()).Role))
}

type forgotPasswordForm struct {
	Email string `validate:"required,email"`
}

func (h *Handler) ForgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "forgot_password.html", struct{ basePage }{h.base(w, r, "استعادة كلمة المرور")})
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.failBack(w, r, err, "تعذر قراءة النموذج", "/password/forgot")
		return
	}
	form := forgotPasswordForm{Email: r.FormValue("email")}
	if err := h.validate.Struct(form); err != nil {
		h.setFlash(w, flashError, "أدخل بريداً إلكترونياً صحيحاً")
		h.redirect(w, r, "/password/forgot")
		return
	}
	if err := h.storers.Auth.ForgotPassword(r.Context(), form.Email); err != nil {
		h.failBack(w, r, err, "تعذر إرسال طلب الاستعادة", "/password/forgot")
		return
	}
	h.setFlash(w, flashSuccess, "تم إرسال تعليمات الاستعادة إلى بريدك")
	h.redirect(w, r, "/password/forgot")
}
