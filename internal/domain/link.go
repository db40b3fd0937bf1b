package domain

import "time"

// Link is the stored mapping from a short code to its target.
type Link struct {
	ID            int64
	Code          string
	OriginalURL   string
	ClickCount    int64
	LastClickedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type LinkOrder int

const (
	OrderRecent LinkOrder = iota
	OrderPopular
)

// ParseLinkOrder maps the public sort name; anything but "popular" is recent.
func ParseLinkOrder(sort string) LinkOrder {
	if sort == "popular" {
		return OrderPopular
	}
	return OrderRecent
}

func (o LinkOrder) String() string {
	if o == OrderPopular {
		return "popular"
	}
	return "recent"
}

type ListParams struct {
	Limit  int
	Offset int
	Order  LinkOrder
}

type CreateLinkRequest struct {
	OriginalURL string `json:"originalUrl"`
	CustomCode  string `json:"customCode,omitempty"`
}

type LinkResponse struct {
	ID            string     `json:"id"`
	Code          string     `json:"code"`
	OriginalURL   string     `json:"originalUrl"`
	ClickCount    int64      `json:"clickCount"`
	LastClickedAt *time.Time `json:"lastClickedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	ShortURL      string     `json:"shortUrl"`
}

type ListLinksResponse struct {
	Links  []LinkResponse `json:"links"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type DeleteLinkResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type HealthResponse struct {
	OK        bool      `json:"ok"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
	Uptime    int64     `json:"uptime"`
}
