package pages

import "fmt"

type Pagination struct {
	Skip         int
	Limit        int
	Total        int
	TotalPages   int
	CurrentPage  int
	PrevSkip     int
	NextSkip     int
	PrevDisabled bool
	NextDisabled bool
}

func NewPagination(skip, limit, total int) Pagination {
	if limit <= 0 {
		limit = 1
	}

	if skip < 0 {
		skip = 0
	}

	return Pagination{
		Skip:         skip,
		Limit:        limit,
		Total:        total,
		TotalPages:   (total + limit - 1) / limit,
		CurrentPage:  skip/limit + 1,
		PrevSkip:     max(0, skip-limit),
		NextSkip:     skip + limit,
		PrevDisabled: skip == 0,
		NextDisabled: skip+limit >= total,
	}
}

// Visible reports whether the controls are rendered at all.
func (p Pagination) Visible() bool {
	return p.TotalPages > 1
}

func (p Pagination) Showing() string {
	return fmt.Sprintf("Showing %d to %d of %d employees", p.Skip+1, min(p.Skip+p.Limit, p.Total), p.Total)
}

func (p Pagination) PageText() string {
	return fmt.Sprintf("Page %d of %d", p.CurrentPage, p.TotalPages)
}
