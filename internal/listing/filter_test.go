package listing

import (
	"testing"

	"finishing-directory-web/internal/domain"

	"github.com/stretchr/testify/assert"
)

func sampleCompanies() []domain.Company {
	return []domain.Company{
		{ID: 1, CompanyName: "شركة الإتقان للتشطيب", Description: "تشطيب فاخر", City: "القاهرة", Region: "مدينة نصر", AvgRating: 4.5},
		{ID: 2, CompanyName: "ديكورات المنار", Description: "أعمال جبس", City: "الجيزة", AvgRating: 3.0},
		{ID: 3, CompanyName: "Modern Finish", Description: "interior finishing", City: "الإسكندرية", AvgRating: 4.0},
	}
}

func TestFilterCompanies_Search(t *testing.T) {
	got := FilterCompanies(sampleCompanies(), CompanyFilter{Search: "المنار"})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)

	// search is case-insensitive and matches the description too
	got = FilterCompanies(sampleCompanies(), CompanyFilter{Search: "INTERIOR"})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestFilterCompanies_Location(t *testing.T) {
	got := FilterCompanies(sampleCompanies(), CompanyFilter{Location: "نصر"})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestFilterCompanies_MinRating(t *testing.T) {
	got := FilterCompanies(sampleCompanies(), CompanyFilter{MinRating: 4})
	assert.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestFilterCompanies_PredicatesIntersect(t *testing.T) {
	companies := sampleCompanies()

	// applying both filters at once equals applying them one after the other,
	// in either order
	both := FilterCompanies(companies, CompanyFilter{Search: "تشطيب", MinRating: 4})
	searchThenRating := FilterCompanies(FilterCompanies(companies, CompanyFilter{Search: "تشطيب"}), CompanyFilter{MinRating: 4})
	ratingThenSearch := FilterCompanies(FilterCompanies(companies, CompanyFilter{MinRating: 4}), CompanyFilter{Search: "تشطيب"})

	assert.Equal(t, both, searchThenRating)
	assert.Equal(t, both, ratingThenSearch)
	assert.Len(t, both, 1)
	assert.Equal(t, int64(1), both[0].ID)
}

func TestFilterCompanies_EmptyFilterKeepsAll(t *testing.T) {
	companies := sampleCompanies()
	got := FilterCompanies(companies, CompanyFilter{})
	assert.Equal(t, companies, got)
}

func TestFilterPosts(t *testing.T) {
	posts := []domain.BlogPost{
		{ID: 1, Title: "اختيار السيراميك", Excerpt: "دليل شامل", Category: "أرضيات", Status: domain.BlogStatusPublished},
		{ID: 2, Title: "ألوان الدهانات", Category: "دهانات", Status: domain.BlogStatusPublished},
		{ID: 3, Title: "مسودة", Category: "أرضيات", Status: domain.BlogStatusDraft},
	}

	got := FilterPosts(posts, "سيراميك", "")
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	got = FilterPosts(posts, "", "أرضيات")
	assert.Len(t, got, 2)

	// category match is exact, not substring
	got = FilterPosts(posts, "", "أرض")
	assert.Empty(t, got)
}

func TestPublishedPosts(t *testing.T) {
	posts := []domain.BlogPost{
		{ID: 1, Status: domain.BlogStatusPublished},
		{ID: 2, Status: domain.BlogStatusDraft},
		{ID: 3, Status: domain.BlogStatusArchived},
		{ID: 4, Status: domain.BlogStatusPublished},
	}
	got := PublishedPosts(posts)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(4), got[1].ID)
}
