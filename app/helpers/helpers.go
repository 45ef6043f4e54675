package helpers

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxSlugSuffix = 10000

	// MaxSlugLength matches the size of the categories.slug column.
	MaxSlugLength = 120
	// maxBaseSlugLength leaves room for a "-9999" suffix.
	maxBaseSlugLength = MaxSlugLength - len("-9999")
)

// GenerateSlug lowercases s, transliterates it to ASCII and joins the
// remaining words with single hyphens. Names without letters or digits
// produce an empty slug. The result is cut to maxBaseSlugLength bytes so a
// suffixed slug still fits the column.
func GenerateSlug(s string) string {
	out := slug.Make(s)
	if len(out) > maxBaseSlugLength {
		out = strings.TrimRight(out[:maxBaseSlugLength], "-")
	}
	return out
}

// WithRandomSuffix appends "-n" to base, n drawn from [0, 9999] by intn.
// It lowers the odds of a collision but does not rule one out.
func WithRandomSuffix(base string, intn func(int) int) string {
	return fmt.Sprintf("%s-%d", base, intn(maxSlugSuffix))
}

func PasswordCompare(hashPass string, password []byte) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashPass), password) == nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(bytes), nil
}
