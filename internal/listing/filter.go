// Package listing holds the pure, stateless list transforms behind the public
// pages and dashboards: free-text/location/rating filtering, pagination,
// category-selection rules, and the blog content conventions. Everything here
// operates on in-memory slices fetched from the upstream API.
package listing

import (
	"strings"

	"finishing-directory-web/internal/domain"
)

// CompanyFilter narrows a fetched company collection. Zero values mean "no
// constraint". The three predicates are independent and commute.
type CompanyFilter struct {
	Search    string // case-insensitive substring of name or description
	Location  string // case-insensitive substring of city, region or address
	MinRating int    // keep companies with avg_rating >= MinRating
}

// FilterCompanies applies f to companies and returns the matching subset in
// the original order.
func FilterCompanies(companies []domain.Company, f CompanyFilter) []domain.Company {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	location := strings.ToLower(strings.TrimSpace(f.Location))

	out := make([]domain.Company, 0, len(companies))
	for _, c := range companies {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.CompanyName), search) &&
			!strings.Contains(strings.ToLower(c.Description), search) {
			continue
		}
		if location != "" &&
			!strings.Contains(strings.ToLower(c.City), location) &&
			!strings.Contains(strings.ToLower(c.Region), location) &&
			!strings.Contains(strings.ToLower(c.Address), location) {
			continue
		}
		if f.MinRating > 0 && c.AvgRating < float64(f.MinRating) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FilterPosts narrows a fetched blog collection by free-text search over
// title, excerpt and category, and by an exact category name.
func FilterPosts(posts []domain.BlogPost, search, category string) []domain.BlogPost {
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]domain.BlogPost, 0, len(posts))
	for _, p := range posts {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Excerpt), search) &&
			!strings.Contains(strings.ToLower(p.Category), search) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// PublishedPosts keeps only posts with published status, preserving order.
func PublishedPosts(posts []domain.BlogPost) []domain.BlogPost {
	out := make([]domain.BlogPost, 0, len(posts))
	for _, p := range posts {
		if p.Status == domain.BlogStatusPublished {
			out = append(out, p)
		}
	}
	return out
}
