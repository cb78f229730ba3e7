package domain

// Category groups prompts by domain. Categories are static reference data
// loaded from the seed; no operation mutates them.
type Category struct {
	ID          int64  `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Slug        string `json:"slug" yaml:"slug"`
	Description string `json:"description" yaml:"description"`
	Color       string `json:"color,omitempty" yaml:"color"`
}
