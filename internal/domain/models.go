package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Entities below are exchanged verbatim with the upstream REST API. The json tags
// match the wire field names; the frontend does not enforce invariants beyond
// required-field form validation.

// User is the authenticated identity carried by a session.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"` // "admin" or "company"
}

// Roles accepted by the login endpoints and the route guard.
const (
	RoleAdmin   = "admin"
	RoleCompany = "company"
)

// SocialLinks holds a company's external profiles.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Service is a single offered service line, owned by a company (capped at 10).
type Service struct {
	ID   int64  `json:"id"`
	Name string `json:"service_name"`
}

// Phone is a contact number, plain or whatsapp depending on the owning collection.
type Phone struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
}

// PricingPlanPro is one feature bullet of a pricing plan.
type PricingPlanPro struct {
	ID   int64  `json:"id,omitempty"`
	Text string `json:"pro_text"`
}

// PricingPlan is a price-per-meter offering with feature bullets, capped at 3 per company.
type PricingPlan struct {
	ID            int64            `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description,omitempty"`
	PricePerMeter float64          `json:"price_per_meter"`
	Pros          []PricingPlanPro `json:"pros,omitempty"`
}

// MediaItem is an uploaded image or video owned by a company.
// Path is relative to the media base URL unless it is already absolute.
type MediaItem struct {
	ID   int64  `json:"id"`
	Path string `json:"path"`
}

// Company is a directory entry. List endpoints return a subset of fields; the
// detail endpoint returns the full record including nested collections.
type Company struct {
	ID           int64       `json:"id"`
	Username     string      `json:"username,omitempty"`
	CompanyName  string      `json:"company_name"`
	Email        string      `json:"email,omitempty"`
	Description  string      `json:"description,omitempty"`
	Address      string      `json:"address,omitempty"`
	City         string      `json:"city,omitempty"`
	Region       string      `json:"region,omitempty"`
	ContactEmail string      `json:"contact_email,omitempty"`
	LogoPath     string      `json:"logo_path,omitempty"`
	Categories   []Category  `json:"categories,omitempty"`
	Services     []Service   `json:"services,omitempty"`
	Phones       []Phone     `json:"phones,omitempty"`
	WhatsApp     []Phone     `json:"whatsapp,omitempty"`
	PricingPlans []PricingPlan `json:"pricing_plans,omitempty"`
	Images       []MediaItem `json:"images,omitempty"`
	Videos       []MediaItem `json:"videos,omitempty"`
	SocialLinks  SocialLinks `json:"social_links"`
	AvgRating    float64     `json:"avg_rating"`
	ReviewCount  int         `json:"review_count"`
	Reviews      []Review    `json:"reviews,omitempty"`
}

// Category groups companies. The pest-control category is exclusive: a company
// may carry it alone, or any combination of other categories, never both.
type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	CompanyCount int    `json:"company_count,omitempty"`
}

// ExclusiveCategoryName is the display name of the exclusive category ("pest control").
const ExclusiveCategoryName = "مكافحة حشرات"

// Review is a visitor rating of a company. Aggregates are computed upstream.
type Review struct {
	ID           int64     `json:"id"`
	CompanyID    int64     `json:"company_id,omitempty"`
	CompanyName  string    `json:"company_name,omitempty"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Blog post statuses.
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
	BlogStatusArchived  = "archived"
)

// TagList is a post's tags. Historic rows store the field as a JSON-encoded
// string (or plain comma-separated text) instead of a real array, so decoding
// accepts all three shapes.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err == nil {
		*t = tags
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*t = nil
		return nil
	}
	if strings.HasPrefix(raw, "[") && json.Unmarshal([]byte(raw), &tags) == nil {
		*t = tags
		return nil
	}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	*t = tags
	return nil
}

// BlogPost is an admin-authored article. Content is HTML; newlines entered in the
// edit form are stored as <br /> markup (see listing.NewlinesToBreaks).
type BlogPost struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug,omitempty"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Author      string    `json:"author,omitempty"`
	Category    string    `json:"category,omitempty"`
	Tags        TagList   `json:"tags,omitempty"`
	Status      string    `json:"status"`
	PublishedAt time.Time `json:"published_at,omitempty"`
	ImagePath   string    `json:"image_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Comment statuses.
const (
	CommentStatusPending  = "pending"
	CommentStatusApproved = "approved"
	CommentStatusSpam     = "spam"
)

// Comment is a visitor comment on a blog post. Visitor-created comments always
// start as pending and become visible once an admin approves them.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email,omitempty"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactMessage is a visitor message triaged by admins.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats is the public counters strip shown on the home page.
type Stats struct {
	Companies  int `json:"companies"`
	Categories int `json:"categories"`
	Reviews    int `json:"reviews"`
}
