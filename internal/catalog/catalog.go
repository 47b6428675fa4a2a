package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CategoryDelimiter joins category names into a readable hierarchical path.
const CategoryDelimiter = " > "

const (
	widthToken        = "{width}"
	slugToken         = "{slug}"
	defaultImageWidth = "500"
)

// Product is a catalog entry, either from the locally mirrored table or
// reshaped from a live upstream lookup (Source tells them apart).
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Category    string
	Image       string
	SKU         string
	Description string
	Brand       string
	Currency    string
	Source      string
}

// decodeCategoryPath turns the mirror's `{"A","B"}` encoding into `A > B`.
// An empty encoding decodes to an empty path; anything that does not carry
// the wrapper tokens is returned unmodified.
func decodeCategoryPath(raw string) string {
	if raw == "" {
		return ""
	}

	if !strings.HasPrefix(raw, "{") || !strings.HasSuffix(raw, "}") {
		return raw
	}

	inner := strings.TrimSpace(raw[1 : len(raw)-1])
	if inner == "" {
		return ""
	}

	parts := strings.Split(inner, ",")
	names := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `"`)
		if p == "" {
			continue
		}

		names = append(names, p)
	}

	return strings.Join(names, CategoryDelimiter)
}

// RenderImageURL substitutes the catalog's width template with the default
// width and drops the slug token.
func RenderImageURL(raw string) string {
	out := strings.ReplaceAll(raw, widthToken, defaultImageWidth)

	return strings.ReplaceAll(out, slugToken, "")
}
