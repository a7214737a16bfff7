package helper

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// Slugify turns free text into a [a-z0-9-] slug: strips diacritics,
// compresses "-", trims the ends, enforces maxLen (default 100 if <=0),
// falls back to "item".
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 100
	}
	s = strings.ToLower(strings.TrimSpace(s))

	// strip diacritics (é → e)
	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) { // mark nonspacing
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		s = "item"
	}
	if utf8.RuneCountInString(s) > maxLen {
		rs := []rune(s)
		s = string(rs[:maxLen])
		s = strings.Trim(s, "-")
	}
	if s == "" {
		s = "item"
	}
	return s
}

// EnsureUniqueSlug makes the slug unique within one table/column by probing
// suffixes -2, -3, ... with a short random fallback.
func EnsureUniqueSlug(db *gorm.DB, table, column, baseSlug string) (string, error) {
	slug := baseSlug

	for i := 0; i < 25; i++ {
		var count int64
		if err := db.Table(table).
			Where(fmt.Sprintf("LOWER(%s) = ?", column), strings.ToLower(slug)).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", baseSlug, i+2)
	}

	// fallback: short time-based suffix
	return fmt.Sprintf("%s-%x", baseSlug, time.Now().UnixNano()&0xffff), nil
}
