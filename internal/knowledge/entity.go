package knowledge

type SnippetKind string

const (
	SnippetPrimary SnippetKind = "primary"
	SnippetRelated SnippetKind = "related"
)

type Snippet struct {
	Title   string      `json:"title"`
	Content string      `json:"content"`
	Kind    SnippetKind `json:"kind"`
}

type Summary struct {
	Title     string `json:"title"`
	Extract   string `json:"extract"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
}
