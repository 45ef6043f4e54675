package helpers

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Summer Sale", "summer-sale"},
		{"trailing punctuation", "Summer Sale!", "summer-sale"},
		{"surrounding whitespace", "   Summer   Sale  ", "summer-sale"},
		{"mixed punctuation", "Kids' Toys, Games", "kids-toys-games"},
		{"digits kept", "Top 10 Gadgets", "top-10-gadgets"},
		{"accents transliterated", "Café Crème", "cafe-creme"},
		{"nothing sluggable", "!!! ???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.in))
		})
	}
}

func TestGenerateSlug_ValidNamesProduceLowercaseTokens(t *testing.T) {
	names := []string{
		"Summer Sale",
		"HOME & Garden",
		"Books\tand\nMagazines",
		"Men's Shoes (Size 42)",
		"Electronics/Phones",
		"Ünïcödé Stuff",
	}

	v := NewValidator()
	for _, name := range names {
		form := struct {
			Name string `validate:"required,max=100,sluggable"`
		}{Name: name}
		require.NoError(t, v.Struct(form), name)

		got := GenerateSlug(name)
		assert.NotEmpty(t, got, name)
		assert.Equal(t, strings.ToLower(got), got, name)
		assert.False(t, strings.ContainsFunc(got, unicode.IsSpace), name)
	}
}

func TestGenerateSlug_SuffixedSlugFitsColumn(t *testing.T) {
	names := []string{
		strings.Repeat("&", 100),
		strings.Repeat("中", 100),
		strings.Repeat("Ω", 100),
		strings.Repeat("a ", 50),
		strings.Repeat("x", 100),
	}

	v := NewValidator()
	for _, name := range names {
		require.NoError(t, v.Struct(categoryInput{Name: name}), name)

		base := GenerateSlug(name)
		assert.NotEmpty(t, base, name)
		assert.False(t, strings.HasSuffix(base, "-"), name)

		got := WithRandomSuffix(base, func(int) int { return 9999 })
		assert.LessOrEqual(t, len(got), MaxSlugLength, name)
	}
}

func TestWithRandomSuffix(t *testing.T) {
	var bound int
	got := WithRandomSuffix("summer-sale", func(n int) int {
		bound = n
		return 42
	})

	assert.Equal(t, "summer-sale-42", got)
	assert.Equal(t, 10000, bound)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, PasswordCompare(hash, []byte("s3cret")))
	assert.False(t, PasswordCompare(hash, []byte("wrong")))
	assert.False(t, PasswordCompare("not-a-hash", []byte("s3cret")))
}
