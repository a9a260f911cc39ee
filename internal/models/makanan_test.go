package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFotoURLsJSONList(t *testing.T) {
	got := ParseFotoURLs(`["https://host/makanan/a.jpg","https://host/makanan/b.jpg"]`)
	assert.Equal(t, []string{"https://host/makanan/a.jpg", "https://host/makanan/b.jpg"}, got)
}

func TestParseFotoURLsLegacyBareString(t *testing.T) {
	got := ParseFotoURLs("https://host/makanan/old.jpg")
	assert.Equal(t, []string{"https://host/makanan/old.jpg"}, got)
}

func TestParseFotoURLsEmpty(t *testing.T) {
	assert.Empty(t, ParseFotoURLs(""))
	assert.Empty(t, ParseFotoURLs("   "))
	assert.Empty(t, ParseFotoURLs("[]"))
}

func TestParseFotoURLsDropsEmptyEntries(t *testing.T) {
	got := ParseFotoURLs(`["https://host/makanan/a.jpg",""]`)
	assert.Equal(t, []string{"https://host/makanan/a.jpg"}, got)
}

func TestSerializeFotoURLsRoundTrip(t *testing.T) {
	urls := []string{"https://host/makanan/a.jpg"}
	assert.Equal(t, urls, ParseFotoURLs(SerializeFotoURLs(urls)))

	// nil serializes to an empty list, not JSON null.
	assert.Equal(t, "[]", SerializeFotoURLs(nil))
}
