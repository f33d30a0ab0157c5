// Package types provides type definitions for structured data used throughout the resume-analyzer system.
package types

import "fmt"

// Category identifies which dictionary list a keyword was matched from.
// It is a closed set: adding a category requires updating every exhaustive
// switch that consumes it.
type Category string

const (
	// CategoryTechnical covers programming languages, frameworks, and platforms.
	CategoryTechnical Category = "technical"
	// CategorySoft covers interpersonal and organizational skills.
	CategorySoft Category = "soft"
	// CategoryTool covers named products and development tools.
	CategoryTool Category = "tool"
	// CategoryCertification covers certifications and degree credentials.
	CategoryCertification Category = "certification"
	// CategoryCustom covers user-supplied keywords.
	CategoryCustom Category = "custom"
	// CategoryOther covers terms that fit none of the above.
	CategoryOther Category = "other"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryTechnical,
		CategorySoft,
		CategoryTool,
		CategoryCertification,
		CategoryCustom,
		CategoryOther,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryTechnical, CategorySoft, CategoryTool, CategoryCertification, CategoryCustom, CategoryOther:
		return true
	}
	return false
}

// String returns the wire form of the category.
func (c Category) String() string {
	return string(c)
}

// ParseCategory converts a string into a Category, rejecting unknown values.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown keyword category: %q", s)
	}
	return c, nil
}

// Keyword is a dictionary or custom term detected in a document.
type Keyword struct {
	// Text is the canonical surface form as it appears in the dictionary,
	// not the casing found in the document.
	Text string `json:"text"`
	// Category records which dictionary list matched the term.
	Category Category `json:"category"`
	// Count is the number of whole-word, case-insensitive occurrences.
	Count int `json:"count"`
	// Importance is a heuristic weight reflecting how emphatically the
	// document requires the term. Always populated by the extractor;
	// floor is 0.1.
	Importance float64 `json:"importance"`
	// Context holds up to three deduplicated sentence excerpts (<=100
	// chars each) containing the term.
	Context []string `json:"context,omitempty"`
}

// CategorizeKeywords groups keywords by category, preserving input order
// within each group.
func CategorizeKeywords(keywords []Keyword) map[Category][]Keyword {
	grouped := make(map[Category][]Keyword)
	for _, kw := range keywords {
		grouped[kw.Category] = append(grouped[kw.Category], kw)
	}
	return grouped
}
