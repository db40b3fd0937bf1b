package formatter

import (
	"strings"

	"tinylink/internal/domain"
)

type IDEncoder interface {
	Encode(id int64) string
}

// Formatter maps stored links to their public representation.
type Formatter struct {
	baseURL string
	ids     IDEncoder
}

func New(baseURL string, ids IDEncoder) *Formatter {
	return &Formatter{
		baseURL: strings.TrimRight(baseURL, "/"),
		ids:     ids,
	}
}

func (f *Formatter) ShortURL(code string) string {
	return f.baseURL + "/" + code
}

func (f *Formatter) Link(l *domain.Link) domain.LinkResponse {
	resp := domain.LinkResponse{
		ID:          f.ids.Encode(l.ID),
		Code:        l.Code,
		OriginalURL: l.OriginalURL,
		ClickCount:  max(l.ClickCount, 0),
		CreatedAt:   l.CreatedAt.UTC(),
		UpdatedAt:   l.UpdatedAt.UTC(),
		ShortURL:    f.ShortURL(l.Code),
	}
	if l.LastClickedAt != nil {
		t := l.LastClickedAt.UTC()
		resp.LastClickedAt = &t
	}
	return resp
}

func (f *Formatter) Links(links []domain.Link) []domain.LinkResponse {
	out := make([]domain.LinkResponse, len(links))
	for i := range links {
		out[i] = f.Link(&links[i])
	}
	return out
}
