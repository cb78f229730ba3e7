package domain

// TagCount is a tag string together with the number of published prompts
// that carry it. Tags have no lifecycle of their own; they only exist
// embedded in a prompt's tag list, so TagCount is always derived.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
