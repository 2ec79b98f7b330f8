package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// SlugMaxLen matches the size of the slug columns
const SlugMaxLen = 200

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// GenerateSlug lower-cases s, strips diacritics and collapses everything outside [a-z0-9] into
// single hyphens. It returns "" when nothing usable is left.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	s = reNonAlnum.ReplaceAllString(b.String(), "-")
	s = reHyphen.ReplaceAllString(s, "-")
	return cutToLen(strings.Trim(s, "-"), SlugMaxLen)
}

func cutToLen(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.Trim(s[:n], "-")
}

// UniqueSlug returns base if no row of table uses it in column, otherwise base-2, base-3, ...
func UniqueSlug(db *gorm.DB, table, column, base string) (string, error) {
	if base == "" {
		return "", errors.New("slug: empty base")
	}
	for i := 1; i < 1000; i++ {
		candidate := base
		if i > 1 {
			suffix := fmt.Sprintf("-%d", i)
			candidate = cutToLen(base, SlugMaxLen-len(suffix)) + suffix
		}
		var count int64
		if err := db.Table(table).Where(column+" = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("slug: no free variant of %q", base)
}
