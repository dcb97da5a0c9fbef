package repository

import "gorm.io/gorm"

const (
	DefaultLimit = 25
	MaxLimit     = 100
)

// Page is a clamped limit/offset pair. Build it with NewPage.
type Page struct {
	Limit  int
	Offset int
}

// NewPage clamps limit into [1, MaxLimit] and offset to >= 0. Nil means
// "not supplied" and takes the default.
func NewPage(limit, offset *int) Page {
	p := Page{Limit: DefaultLimit}
	if limit != nil {
		p.Limit = min(max(*limit, 1), MaxLimit)
	}
	if offset != nil {
		p.Offset = max(*offset, 0)
	}
	return p
}

func (p Page) apply(db *gorm.DB) *gorm.DB {
	return db.Limit(p.Limit).Offset(p.Offset)
}
