package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFilename(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
		ok   bool
	}{
		{"plain url", "https://cdn.example.com/makanan/a.jpg", "a.jpg", true},
		{"query string stripped", "https://cdn.example.com/makanan/b.jpg?X-Amz-Expires=300", "b.jpg", true},
		{"trailing slash", "https://cdn.example.com/makanan/c.png/", "c.png", true},
		{"bare filename", "d.webp", "d.webp", true},
		{"no extension", "https://cdn.example.com/makanan/thumbnail", "", false},
		{"empty", "", "", false},
		{"only slashes", "///", "", false},
		{"query only", "?v=2", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractFilename(tc.url)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMemoryStoreListFiltersByPrefix(t *testing.T) {
	store := NewMemoryStore("https://cdn.example.com")
	seed := func(key string) {
		_, err := store.Upload(context.Background(), key, strings.NewReader("img"), "image/jpeg")
		assert.NoError(t, err)
	}
	seed("makanan/a.jpg")
	seed("makanan/b.jpg")
	seed("other/c.jpg")

	keys, err := store.List(context.Background(), "makanan")
	assert.NoError(t, err)
	assert.Equal(t, []string{"makanan/a.jpg", "makanan/b.jpg"}, keys)
}
