package api

import (
	"context"

	"finishing-directory-web/internal/domain"
	"finishing-directory-web/internal/store"

	"github.com/stretchr/testify/mock"
)

// MockAuthStorer is a mock implementation of store.AuthStorer.
type MockAuthStorer struct {
	mock.Mock
}

func (m *MockAuthStorer) LoginCompany(ctx context.Context, username, password string) (string, *domain.User, error) {
	args := m.Called(ctx, username, password)
	var user *domain.User
	if arg1 := args.Get(1); arg1 != nil {
		user = arg1.(*domain.User)
	}
	return args.String(0), user, args.Error(2)
}

func (m *MockAuthStorer) LoginAdmin(ctx context.Context, username, password string) (string, *domain.User, error) {
	args := m.Called(ctx, username, password)
	var user *domain.User
	if arg1 := args.Get(1); arg1 != nil {
		user = arg1.(*domain.User)
	}
	return args.String(0), user, args.Error(2)
}

func (m *MockAuthStorer) CurrentUser(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthStorer) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	return m.Called(ctx, currentPassword, newPassword).Error(0)
}

func (m *MockAuthStorer) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

// MockPublicStorer is a mock implementation of store.PublicStorer.
type MockPublicStorer struct {
	mock.Mock
}

func (m *MockPublicStorer) Companies(ctx context.Context, category string) ([]domain.Company, error) {
	args := m.Called(ctx, category)
	var companies []domain.Company
	if arg0 := args.Get(0); arg0 != nil {
		companies = arg0.([]domain.Company)
	}
	return companies, args.Error(1)
}

func (m *MockPublicStorer) Company(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockPublicStorer) Categories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	var categories []domain.Category
	if arg0 := args.Get(0); arg0 != nil {
		categories = arg0.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *MockPublicStorer) Stats(ctx context.Context) (*domain.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}

// MockCompanyStorer is a mock implementation of store.CompanyStorer.
type MockCompanyStorer struct {
	mock.Mock
}

func (m *MockCompanyStorer) Profile(ctx context.Context) (*domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyStorer) UpdateProfile(ctx context.Context, update store.ProfileUpdate) error {
	return m.Called(ctx, update).Error(0)
}

func (m *MockCompanyStorer) UploadLogo(ctx context.Context, logo store.FileUpload) error {
	return m.Called(ctx, logo).Error(0)
}

func (m *MockCompanyStorer) UploadImages(ctx context.Context, images []store.FileUpload) error {
	return m.Called(ctx, images).Error(0)
}

func (m *MockCompanyStorer) DeleteImage(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCompanyStorer) UploadVideos(ctx context.Context, videos []store.FileUpload) error {
	return m.Called(ctx, videos).Error(0)
}

func (m *MockCompanyStorer) DeleteVideo(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCompanyStorer) AddPhone(ctx context.Context, number string) error {
	return m.Called(ctx, number).Error(0)
}

func (m *MockCompanyStorer) DeletePhone(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCompanyStorer) AddWhatsApp(ctx context.Context, number string) error {
	return m.Called(ctx, number).Error(0)
}

func (m *MockCompanyStorer) DeleteWhatsApp(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCompanyStorer) AddService(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *MockCompanyStorer) UpdateService(ctx context.Context, id int64, name string) error {
	return m.Called(ctx, id, name).Error(0)
}

func (m *MockCompanyStorer) DeleteService(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCompanyStorer) AddPricingPlan(ctx context.Context, plan store.PricingPlanInput) error {
	return m.Called(ctx, plan).Error(0)
}

func (m *MockCompanyStorer) UpdatePricingPlan(ctx context.Context, id int64, plan store.PricingPlanInput) error {
	return m.Called(ctx, id, plan).Error(0)
}

func (m *MockCompanyStorer) DeletePricingPlan(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCompanyStorer) SetCategories(ctx context.Context, categoryIDs []int64) error {
	return m.Called(ctx, categoryIDs).Error(0)
}

// MockAdminStorer is a mock implementation of store.AdminStorer.
type MockAdminStorer struct {
	mock.Mock
}

func (m *MockAdminStorer) AdminCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	var companies []domain.Company
	if arg0 := args.Get(0); arg0 != nil {
		companies = arg0.([]domain.Company)
	}
	return companies, args.Error(1)
}

func (m *MockAdminStorer) AdminCompany(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockAdminStorer) CreateCompany(ctx context.Context, input store.CompanyInput) error {
	return m.Called(ctx, input).Error(0)
}

func (m *MockAdminStorer) UpdateCompany(ctx context.Context, id int64, input store.CompanyInput) error {
	return m.Called(ctx, id, input).Error(0)
}

func (m *MockAdminStorer) DeleteCompany(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminStorer) ResetCompanyPassword(ctx context.Context, id int64, newPassword string) error {
	return m.Called(ctx, id, newPassword).Error(0)
}

func (m *MockAdminStorer) Reviews(ctx context.Context) ([]domain.Review, error) {
	args := m.Called(ctx)
	var reviews []domain.Review
	if arg0 := args.Get(0); arg0 != nil {
		reviews = arg0.([]domain.Review)
	}
	return reviews, args.Error(1)
}

func (m *MockAdminStorer) DeleteReview(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminStorer) CreateBlogPost(ctx context.Context, input store.BlogPostInput, image *store.FileUpload) error {
	return m.Called(ctx, input, image).Error(0)
}

func (m *MockAdminStorer) UpdateBlogPost(ctx context.Context, id int64, input store.BlogPostInput, image *store.FileUpload) error {
	return m.Called(ctx, id, input, image).Error(0)
}

func (m *MockAdminStorer) DeleteBlogPost(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminStorer) ContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	args := m.Called(ctx)
	var messages []domain.ContactMessage
	if arg0 := args.Get(0); arg0 != nil {
		messages = arg0.([]domain.ContactMessage)
	}
	return messages, args.Error(1)
}

func (m *MockAdminStorer) ContactMessage(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}

func (m *MockAdminStorer) DeleteContactMessage(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminStorer) MarkMessageRead(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminStorer) CreateCategory(ctx context.Context, input store.CategoryInput) error {
	return m.Called(ctx, input).Error(0)
}

func (m *MockAdminStorer) UpdateCategory(ctx context.Context, id int64, input store.CategoryInput) error {
	return m.Called(ctx, id, input).Error(0)
}

func (m *MockAdminStorer) DeleteCategory(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockBlogStorer is a mock implementation of store.BlogStorer.
type MockBlogStorer struct {
	mock.Mock
}

func (m *MockBlogStorer) Posts(ctx context.Context) ([]domain.BlogPost, error) {
	args := m.Called(ctx)
	var posts []domain.BlogPost
	if arg0 := args.Get(0); arg0 != nil {
		posts = arg0.([]domain.BlogPost)
	}
	return posts, args.Error(1)
}

func (m *MockBlogStorer) Post(ctx context.Context, idOrSlug string) (*domain.BlogPost, error) {
	args := m.Called(ctx, idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}

func (m *MockBlogStorer) PostComments(ctx context.Context, idOrSlug string) ([]domain.Comment, error) {
	args := m.Called(ctx, idOrSlug)
	var comments []domain.Comment
	if arg0 := args.Get(0); arg0 != nil {
		comments = arg0.([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *MockBlogStorer) AddComment(ctx context.Context, idOrSlug string, input store.CommentInput) error {
	return m.Called(ctx, idOrSlug, input).Error(0)
}

func (m *MockBlogStorer) AdminPostComments(ctx context.Context, idOrSlug, status string) ([]domain.Comment, error) {
	args := m.Called(ctx, idOrSlug, status)
	var comments []domain.Comment
	if arg0 := args.Get(0); arg0 != nil {
		comments = arg0.([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *MockBlogStorer) ApproveComment(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBlogStorer) DeleteComment(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockReviewStorer is a mock implementation of store.ReviewStorer.
type MockReviewStorer struct {
	mock.Mock
}

func (m *MockReviewStorer) CompanyReviews(ctx context.Context, companyID int64) ([]domain.Review, error) {
	args := m.Called(ctx, companyID)
	var reviews []domain.Review
	if arg0 := args.Get(0); arg0 != nil {
		reviews = arg0.([]domain.Review)
	}
	return reviews, args.Error(1)
}

func (m *MockReviewStorer) AddReview(ctx context.Context, companyID int64, input store.ReviewInput) (*domain.Review, error) {
	args := m.Called(ctx, companyID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

// MockContactStorer is a mock implementation of store.ContactStorer.
type MockContactStorer struct {
	mock.Mock
}

func (m *MockContactStorer) SubmitContactMessage(ctx context.Context, input store.ContactInput) error {
	return m.Called(ctx, input).Error(0)
}
