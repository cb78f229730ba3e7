// Package seed provides the built-in dataset: the static categories and
// users, and the prompts used when no snapshot has been stored yet.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/promptlib/backend/internal/domain"
)

//go:embed seed.yaml
var defaultYAML []byte

// Dataset is the decoded seed. Prompts have their author names resolved and
// their timestamps set to the load time.
type Dataset struct {
	Categories []domain.Category
	Users      []domain.User
	Prompts    []domain.Prompt
}

type file struct {
	Categories []domain.Category `yaml:"categories"`
	Users      []domain.User     `yaml:"users"`
	Prompts    []promptEntry     `yaml:"prompts"`
}

type promptEntry struct {
	ID           int64             `yaml:"id"`
	Title        string            `yaml:"title"`
	Description  string            `yaml:"description"`
	PromptText   string            `yaml:"prompt_text"`
	SystemPrompt string            `yaml:"system_prompt"`
	UserPrompt   string            `yaml:"user_prompt"`
	Type         domain.PromptType `yaml:"prompt_type"`
	CategoryID   int64             `yaml:"category_id"`
	AuthorID     int64             `yaml:"author_id"`
	Featured     bool              `yaml:"featured"`
	Draft        bool              `yaml:"draft"`
	ViewCount    int64             `yaml:"view_count"`
	CopyCount    int64             `yaml:"copy_count"`
	Tags         []string          `yaml:"tags"`
	Versions     []versionEntry    `yaml:"versions"`
}

type versionEntry struct {
	VersionNumber int    `yaml:"version_number"`
	PromptText    string `yaml:"prompt_text"`
	ChangeNote    string `yaml:"change_note"`
}

// Default decodes the embedded dataset, stamping every prompt with now.
func Default(now time.Time) (Dataset, error) {
	return Parse(defaultYAML, now)
}

// LoadFile decodes a dataset from a YAML file on disk.
func LoadFile(path string, now time.Time) (Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("seed.LoadFile: %w", err)
	}
	return Parse(b, now)
}

// Parse decodes a YAML dataset. It fails if a prompt references an unknown
// author or category, or carries an invalid prompt type.
func Parse(b []byte, now time.Time) (Dataset, error) {
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return Dataset{}, fmt.Errorf("seed.Parse: %w", err)
	}

	users := make(map[int64]domain.User, len(f.Users))
	for _, u := range f.Users {
		users[u.ID] = u
	}
	categories := make(map[int64]bool, len(f.Categories))
	for _, c := range f.Categories {
		categories[c.ID] = true
	}

	ds := Dataset{
		Categories: f.Categories,
		Users:      f.Users,
		Prompts:    make([]domain.Prompt, 0, len(f.Prompts)),
	}
	for _, e := range f.Prompts {
		author, ok := users[e.AuthorID]
		if !ok {
			return Dataset{}, fmt.Errorf("seed.Parse: prompt %d: unknown author %d", e.ID, e.AuthorID)
		}
		if !categories[e.CategoryID] {
			return Dataset{}, fmt.Errorf("seed.Parse: prompt %d: unknown category %d", e.ID, e.CategoryID)
		}
		if e.Type == "" {
			e.Type = domain.PromptTypeText
		}
		if !e.Type.Valid() {
			return Dataset{}, fmt.Errorf("seed.Parse: prompt %d: invalid prompt type %q", e.ID, e.Type)
		}
		ds.Prompts = append(ds.Prompts, e.toPrompt(author, now))
	}
	return ds, nil
}

func (e promptEntry) toPrompt(author domain.User, now time.Time) domain.Prompt {
	p := domain.Prompt{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		PromptText:   e.PromptText,
		SystemPrompt: e.SystemPrompt,
		UserPrompt:   e.UserPrompt,
		Type:         e.Type,
		Language:     "en",
		CategoryID:   e.CategoryID,
		AuthorID:     author.ID,
		AuthorName:   author.Username,
		IsFeatured:   e.Featured,
		IsPublished:  !e.Draft,
		ViewCount:    e.ViewCount,
		CopyCount:    e.CopyCount,
		CreatedAt:    now,
		UpdatedAt:    now,
		Tags:         e.Tags,
		Versions:     make([]domain.PromptVersion, 0, len(e.Versions)),
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	for i, v := range e.Versions {
		p.Versions = append(p.Versions, domain.PromptVersion{
			ID:            int64(i + 1),
			VersionNumber: v.VersionNumber,
			PromptText:    v.PromptText,
			ChangeNote:    v.ChangeNote,
			CreatedAt:     now,
		})
	}
	return p
}
