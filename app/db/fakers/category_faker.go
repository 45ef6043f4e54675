package fakers

import (
	"strings"

	"github.com/go-faker/faker/v4"
)

// CategoryName returns a human looking category name such as "Vintage Clock".
func CategoryName() string {
	words := []string{faker.Word(), faker.Word()}
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.TrimSpace(strings.Join(words, " "))
}
