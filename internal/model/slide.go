package model

// Slide types produced by the LLM (and by the fallback generator).
const (
	SlideTypeTitle   = "title"
	SlideTypeSection = "section"
	SlideTypeSummary = "summary"
)

// Slide is a single slide descriptor as returned by the LLM.
type Slide struct {
	SlideType       string   `json:"slide_type"`
	Title           string   `json:"title"`
	Subtitle        string   `json:"subtitle,omitempty"`
	Content         []string `json:"content,omitempty"`
	BackgroundColor string   `json:"background_color"`
}

// Deck is the full presentation structure parsed from the LLM response.
type Deck struct {
	Title  string  `json:"title"`
	Slides []Slide `json:"slides"`
}

// PresentationMeta describes a generated presentation file kept in the
// in-memory registry until the client downloads or discards it.
type PresentationMeta struct {
	ID         string `json:"id"`
	Topic      string `json:"topic"`
	Filename   string `json:"filename"`
	Path       string `json:"-"`
	SlideCount int    `json:"slide_count"`
	FileSize   int64  `json:"file_size"`
	CreatedAt  string `json:"created_at"`
}

// PresentationMetaResponse is the public view of a registry entry.
type PresentationMetaResponse struct {
	ID          string `json:"id"`
	Topic       string `json:"topic"`
	Filename    string `json:"filename"`
	SlideCount  int    `json:"slide_count"`
	FileSize    int64  `json:"file_size"`
	CreatedAt   string `json:"created_at"`
	DownloadURL string `json:"download_url"`
}

func (m *PresentationMeta) ToResponse() PresentationMetaResponse {
	return PresentationMetaResponse{
		ID:          m.ID,
		Topic:       m.Topic,
		Filename:    m.Filename,
		SlideCount:  m.SlideCount,
		FileSize:    m.FileSize,
		CreatedAt:   m.CreatedAt,
		DownloadURL: "/api/presentations/" + m.ID + "/download",
	}
}
