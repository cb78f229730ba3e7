// Package domain contains the core data types for the prompt library.
// This package has no dependencies on other internal packages and is
// imported by every other internal package (query, repo, service, handler).
package domain

import (
	"strings"
	"time"
)

// PromptType classifies what kind of model a prompt targets.
type PromptType string

const (
	PromptTypeText   PromptType = "Text"
	PromptTypeImage  PromptType = "Image"
	PromptTypeCode   PromptType = "Code"
	PromptTypeHybrid PromptType = "Hybrid"
)

// PromptTypes lists every valid PromptType in display order.
var PromptTypes = []PromptType{PromptTypeText, PromptTypeImage, PromptTypeCode, PromptTypeHybrid}

// Valid reports whether t is one of the known prompt types.
func (t PromptType) Valid() bool {
	for _, known := range PromptTypes {
		if t == known {
			return true
		}
	}
	return false
}

// DefaultChangeNote is recorded on a version when an update supplies none.
const DefaultChangeNote = "Updated via edit"

// Prompt is a stored AI-instruction template with metadata and usage counters.
//
// A prompt carries its text either as a single legacy PromptText or as a
// SystemPrompt/UserPrompt pair. Content returns whichever form is present.
// The JSON field names are the persisted snapshot format.
type Prompt struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	PromptText   string          `json:"prompt_text"`
	SystemPrompt string          `json:"system_prompt,omitempty"`
	UserPrompt   string          `json:"user_prompt,omitempty"`
	Type         PromptType      `json:"prompt_type"`
	Language     string          `json:"language"`
	CategoryID   int64           `json:"category_id"`
	AuthorID     int64           `json:"author_id"`
	AuthorName   string          `json:"author_name"`
	IsFeatured   bool            `json:"is_featured"`
	IsPublished  bool            `json:"is_published"`
	ViewCount    int64           `json:"view_count"`
	CopyCount    int64           `json:"copy_count"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Tags         []string        `json:"tags"`
	Versions     []PromptVersion `json:"versions"`
}

// PromptVersion is an append-only snapshot of a prompt's content, taken each
// time the prompt is updated. ID is scoped to the parent prompt and
// VersionNumber is 1-based and contiguous.
type PromptVersion struct {
	ID            int64     `json:"id"`
	VersionNumber int       `json:"version_number"`
	PromptText    string    `json:"prompt_text"`
	ChangeNote    string    `json:"change_note"`
	CreatedAt     time.Time `json:"created_at"`
}

// Content returns the text a client copies: PromptText when set, otherwise
// the non-empty system and user parts separated by a blank line.
func (p Prompt) Content() string {
	if p.PromptText != "" {
		return p.PromptText
	}
	var parts []string
	for _, s := range []string{p.SystemPrompt, p.UserPrompt} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

// HasTag reports whether any of p's tags contains sub, ignoring case.
func (p Prompt) HasTag(sub string) bool {
	sub = strings.ToLower(sub)
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), sub) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of p so callers never alias the store's slices.
// Tags and Versions are never nil in the copy, so they encode as [].
func (p Prompt) Clone() Prompt {
	c := p
	c.Tags = append(make([]string, 0, len(p.Tags)), p.Tags...)
	c.Versions = append(make([]PromptVersion, 0, len(p.Versions)), p.Versions...)
	return c
}

// PromptInput carries the fields a client may supply when creating a prompt.
// Zero values mean "not supplied" and are replaced by defaults.
type PromptInput struct {
	Title        string     `json:"title" validate:"max=200"`
	Description  string     `json:"description" validate:"max=2000"`
	PromptText   string     `json:"prompt_text"`
	SystemPrompt string     `json:"system_prompt"`
	UserPrompt   string     `json:"user_prompt"`
	Type         PromptType `json:"prompt_type" validate:"omitempty,oneof=Text Image Code Hybrid"`
	CategoryID   int64      `json:"category_id" validate:"gte=0"`
	Tags         []string   `json:"tags" validate:"max=20,dive,max=50"`

	// Enhance asks the service to fill SystemPrompt from UserPrompt with the
	// enhancer before saving. Enhancer failures never block creation.
	Enhance bool `json:"enhance"`
}

// PromptPatch carries a partial update. Nil fields are left untouched.
type PromptPatch struct {
	Title        *string     `json:"title" validate:"omitempty,max=200"`
	Description  *string     `json:"description" validate:"omitempty,max=2000"`
	PromptText   *string     `json:"prompt_text"`
	SystemPrompt *string     `json:"system_prompt"`
	UserPrompt   *string     `json:"user_prompt"`
	Type         *PromptType `json:"prompt_type" validate:"omitempty,oneof=Text Image Code Hybrid"`
	CategoryID   *int64      `json:"category_id" validate:"omitempty,gte=1"`
	Tags         *[]string   `json:"tags" validate:"omitempty,max=20,dive,max=50"`
	IsFeatured   *bool       `json:"is_featured"`
	IsPublished  *bool       `json:"is_published"`

	// ChangeNote labels the version record this update appends.
	// DefaultChangeNote is used when it is empty.
	ChangeNote string `json:"change_note" validate:"max=200"`
}
