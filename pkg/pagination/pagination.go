package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 20
	// MaxLimit caps how many rows any listing query can request.
	MaxLimit = 100
)

// Params holds page/limit pagination inputs from controllers or services.
type Params struct {
	Page  int
	Limit int
}

// Normalize enforces the configured default page and limit bounds.
func (p Params) Normalize() Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the row offset for the normalized page.
func (p Params) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

// Meta describes a page of results for response envelopes.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewMeta computes pagination metadata; totalPages == ceil(total/limit).
func NewMeta(total int64, p Params) Meta {
	n := p.Normalize()
	pages := int((total + int64(n.Limit) - 1) / int64(n.Limit))
	return Meta{
		Total:      total,
		Page:       n.Page,
		Limit:      n.Limit,
		TotalPages: pages,
	}
}

// HasMore reports whether pages remain after the current one.
func (m Meta) HasMore() bool {
	return m.Page < m.TotalPages
}
