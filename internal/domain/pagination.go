package domain

const (
	DefaultPageLimit = 5
	MaxPageLimit     = 50
)

// Pagination is a skip/limit window over an ordered collection.
type Pagination struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=5" binding:"min=1,max=50"`
}

// Normalize clamps values that bypassed request binding.
func (p Pagination) Normalize() Pagination {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}
