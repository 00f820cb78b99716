package domain

import "time"

// LanguageTags is the fixed set of technology tags a project can carry.
// Order matters for rendering; unlisted tags are implicitly false.
var LanguageTags = []string{
	"html",
	"css",
	"js",
	"react",
	"reactNative",
	"bootstrap",
	"tailwindCss",
	"firebase",
	"nextjs",
}

// Project represents one portfolio entry. The store key is the ID; it is
// assigned on creation and immutable thereafter, as is Timestamp.
type Project struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
	Languages   map[string]bool `json:"languages"`
	DemoLink    string          `json:"demoLink"`
	// Timestamp is the creation time in milliseconds since epoch. Set once
	// at first persistence and preserved across edits.
	Timestamp int64 `json:"timestamp"`
}

// Record is the store representation of a project: everything but the ID,
// which lives in the store key.
type Record struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
	Languages   map[string]bool `json:"languages"`
	DemoLink    string          `json:"demoLink"`
	Timestamp   int64           `json:"timestamp"`
}

// DefaultLanguages returns the fixed tag set with every flag false.
func DefaultLanguages() map[string]bool {
	m := make(map[string]bool, len(LanguageTags))
	for _, tag := range LanguageTags {
		m[tag] = false
	}
	return m
}

// MergeLanguages overlays a record's tags onto the fixed default set. Tags
// newly introduced since the record was saved appear defaulted false; tags
// outside the fixed set are preserved untouched so legacy records survive a
// resave.
func MergeLanguages(existing map[string]bool) map[string]bool {
	m := DefaultLanguages()
	for k, v := range existing {
		m[k] = v
	}
	return m
}

// FilterImages drops blank entries. Insertion order is meaningful (the first
// image is the cover), so order is preserved.
func FilterImages(images []string) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if img != "" {
			out = append(out, img)
		}
	}
	return out
}

// NowMillis matches the store's millisecond timestamp convention.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

func (p *Project) Record() Record {
	return Record{
		Title:       p.Title,
		Description: p.Description,
		Images:      p.Images,
		Languages:   p.Languages,
		DemoLink:    p.DemoLink,
		Timestamp:   p.Timestamp,
	}
}
