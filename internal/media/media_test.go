package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_URL(t *testing.T) {
	r := NewResolver("https://api.example.com")

	assert.Equal(t, "https://api.example.com/uploads/logo.png", r.URL("uploads/logo.png"))
	assert.Equal(t, "https://api.example.com/uploads/logo.png", r.URL("/uploads/logo.png"))
	assert.Equal(t, "https://cdn.other.com/x.png", r.URL("https://cdn.other.com/x.png"))
	assert.Equal(t, "", r.URL(""))
}

func TestResolver_TrailingSlashBase(t *testing.T) {
	r := NewResolver("https://api.example.com/")
	assert.Equal(t, "https://api.example.com/uploads/a.jpg", r.URL("uploads/a.jpg"))
}
