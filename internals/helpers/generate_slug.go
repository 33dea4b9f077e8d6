package helper

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

// GenerateSlug normalizes a string into a slug:
// - lower-case
// - spaces & non-alnum become "-"
// - collapse repeated "-" into one
// - trim "-" at both ends
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else {
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")

	reDash := regexp.MustCompile(`-+`)
	return reDash.ReplaceAllString(out, "-")
}

// EnsureUniqueSlug appends -2, -3, ... until the slug is free in the given
// table/column. deletedColumn is the soft-delete column ("" = none).
func EnsureUniqueSlug(db *gorm.DB, base, table, column, deletedColumn string) (string, error) {
	slug := GenerateSlug(base)
	if slug == "" {
		slug = "item"
	}
	if len(slug) > DefaultSlugMaxLen {
		slug = strings.Trim(slug[:DefaultSlugMaxLen], "-")
	}

	candidate := slug
	for i := 2; ; i++ {
		var n int64
		q := db.Table(table).Where(column+" = ?", candidate)
		if deletedColumn != "" {
			q = q.Where(deletedColumn + " IS NULL")
		}
		if err := q.Count(&n).Error; err != nil {
			return "", err
		}
		if n == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", slug, i)
	}
}
