package util

import (
	"fmt"

	"github.com/jinzhu/inflection"
)

// Plural formats n with the singular or plural form of a noun.
func Plural(n int, singular, plural string) string {
	if n == 1 || n == -1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// Pluralize formats n with word, deriving the plural form with English
// inflection rules, irregular nouns included.
func Pluralize(n int, word string) string {
	return Plural(n, word, inflection.Plural(word))
}
