package store

import (
	"context"
	"io"

	"finishing-directory-web/internal/domain"
)

// FileUpload is one file forwarded to a multipart upstream endpoint.
type FileUpload struct {
	Field    string // multipart field name, e.g. "logo", "images"
	Filename string
	Content  io.Reader
}

// ProfileUpdate holds the editable fields of a company's own profile.
type ProfileUpdate struct {
	CompanyName  string             `json:"company_name"`
	Description  string             `json:"description"`
	Address      string             `json:"address"`
	City         string             `json:"city"`
	Region       string             `json:"region"`
	ContactEmail string             `json:"contact_email"`
	SocialLinks  domain.SocialLinks `json:"social_links"`
}

// PricingPlanInput is the payload for creating or updating a pricing plan.
type PricingPlanInput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	PricePerMeter float64  `json:"price_per_meter"`
	Pros          []string `json:"pros,omitempty"`
}

// CompanyInput is the admin payload for creating or updating a company account.
// Password left empty on update keeps the existing password.
type CompanyInput struct {
	Username     string `json:"username,omitempty"`
	Password     string `json:"password,omitempty"`
	CompanyName  string `json:"company_name"`
	Email        string `json:"email,omitempty"`
	Description  string `json:"description,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	Region       string `json:"region,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
}

// BlogPostInput is the admin payload for creating or updating a blog post. The
// upstream expects multipart fields; Tags are sent as a JSON array string.
type BlogPostInput struct {
	Title       string
	Content     string
	Author      string
	Slug        string
	Excerpt     string
	Category    string
	Tags        []string
	Status      string
	PublishedAt string
}

// CategoryInput is the admin payload for category create/update.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ReviewInput is a visitor review submission.
type ReviewInput struct {
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment,omitempty"`
}

// CommentInput is a visitor comment submission (always lands pending upstream).
type CommentInput struct {
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email,omitempty"`
	Content   string `json:"content"`
}

// ContactInput is a visitor contact-form submission.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// AuthStorer covers the authentication endpoints.
type AuthStorer interface {
	LoginCompany(ctx context.Context, username, password string) (string, *domain.User, error)
	LoginAdmin(ctx context.Context, username, password string) (string, *domain.User, error)
	CurrentUser(ctx context.Context) (*domain.User, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	ForgotPassword(ctx context.Context, email string) error
}

// PublicStorer covers the anonymous read-only endpoints.
type PublicStorer interface {
	Companies(ctx context.Context, category string) ([]domain.Company, error)
	Company(ctx context.Context, id int64) (*domain.Company, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

// CompanyStorer covers the company self-service endpoints (company role).
type CompanyStorer interface {
	Profile(ctx context.Context) (*domain.Company, error)
	UpdateProfile(ctx context.Context, update ProfileUpdate) error
	UploadLogo(ctx context.Context, logo FileUpload) error
	UploadImages(ctx context.Context, images []FileUpload) error
	DeleteImage(ctx context.Context, id int64) error
	UploadVideos(ctx context.Context, videos []FileUpload) error
	DeleteVideo(ctx context.Context, id int64) error
	AddPhone(ctx context.Context, number string) error
	DeletePhone(ctx context.Context, id int64) error
	AddWhatsApp(ctx context.Context, number string) error
	DeleteWhatsApp(ctx context.Context, id int64) error
	AddService(ctx context.Context, name string) error
	UpdateService(ctx context.Context, id int64, name string) error
	DeleteService(ctx context.Context, id int64) error
	AddPricingPlan(ctx context.Context, plan PricingPlanInput) error
	UpdatePricingPlan(ctx context.Context, id int64, plan PricingPlanInput) error
	DeletePricingPlan(ctx context.Context, id int64) error
	SetCategories(ctx context.Context, categoryIDs []int64) error
}

// AdminStorer covers the admin back-office endpoints (admin role).
type AdminStorer interface {
	AdminCompanies(ctx context.Context) ([]domain.Company, error)
	AdminCompany(ctx context.Context, id int64) (*domain.Company, error)
	CreateCompany(ctx context.Context, input CompanyInput) error
	UpdateCompany(ctx context.Context, id int64, input CompanyInput) error
	DeleteCompany(ctx context.Context, id int64) error
	ResetCompanyPassword(ctx context.Context, id int64, newPassword string) error
	Reviews(ctx context.Context) ([]domain.Review, error)
	DeleteReview(ctx context.Context, id int64) error
	CreateBlogPost(ctx context.Context, input BlogPostInput, image *FileUpload) error
	UpdateBlogPost(ctx context.Context, id int64, input BlogPostInput, image *FileUpload) error
	DeleteBlogPost(ctx context.Context, id int64) error
	ContactMessages(ctx context.Context) ([]domain.ContactMessage, error)
	ContactMessage(ctx context.Context, id int64) (*domain.ContactMessage, error)
	DeleteContactMessage(ctx context.Context, id int64) error
	MarkMessageRead(ctx context.Context, id int64) error
	CreateCategory(ctx context.Context, input CategoryInput) error
	UpdateCategory(ctx context.Context, id int64, input CategoryInput) error
	DeleteCategory(ctx context.Context, id int64) error
}

// BlogStorer covers public blog reads and comment endpoints (mixed access).
type BlogStorer interface {
	Posts(ctx context.Context) ([]domain.BlogPost, error)
	Post(ctx context.Context, idOrSlug string) (*domain.BlogPost, error)
	PostComments(ctx context.Context, idOrSlug string) ([]domain.Comment, error)
	AddComment(ctx context.Context, idOrSlug string, input CommentInput) error
	AdminPostComments(ctx context.Context, idOrSlug, status string) ([]domain.Comment, error)
	ApproveComment(ctx context.Context, id int64) error
	DeleteComment(ctx context.Context, id int64) error
}

// ReviewStorer covers visitor review endpoints.
type ReviewStorer interface {
	CompanyReviews(ctx context.Context, companyID int64) ([]domain.Review, error)
	AddReview(ctx context.Context, companyID int64, input ReviewInput) (*domain.Review, error)
}

// ContactStorer covers the visitor contact form.
type ContactStorer interface {
	SubmitContactMessage(ctx context.Context, input ContactInput) error
}
