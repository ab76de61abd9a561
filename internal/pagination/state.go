package pagination

// State describes the position within a paged result set as the list screen sees it.
// RangeStart and RangeEnd are nil when there are no items.
type State struct {
	CurrentPage int  `json:"current_page"`
	PerPage     int  `json:"per_page"`
	TotalItems  int  `json:"total_items"`
	LastPage    int  `json:"last_page"`
	RangeStart  *int `json:"from"`
	RangeEnd    *int `json:"to"`
}

// LastPageFor returns ceil(total/perPage), never less than 1.
func LastPageFor(totalItems, perPage int) int {
	if perPage < 1 || totalItems < 1 {
		return 1
	}
	q := totalItems / perPage
	if totalItems%perPage != 0 {
		q++
	}
	return q
}

// NewState derives the last page and the displayed range from raw totals.
// It does not validate page; an out-of-range page yields a nil range.
func NewState(page, perPage, totalItems int) State {
	s := State{
		CurrentPage: page,
		PerPage:     perPage,
		TotalItems:  totalItems,
		LastPage:    LastPageFor(totalItems, perPage),
	}
	if totalItems <= 0 || perPage < 1 || page < 1 {
		return s
	}
	// page-1 >= ceil(total/perPage) means the page starts past the last item
	if page-1 >= s.LastPage {
		return s
	}
	from := (page-1)*perPage + 1
	to := totalItems
	if perPage-1 < totalItems-from {
		to = from + perPage - 1
	}
	s.RangeStart, s.RangeEnd = &from, &to
	return s
}

// Window is a shorthand for ComputePageWindow on the state's positions.
func (s State) Window() []Indicator {
	return ComputePageWindow(s.CurrentPage, s.LastPage)
}

func (s State) HasPrevious() bool { return s.CurrentPage > 1 }
func (s State) HasNext() bool     { return s.CurrentPage < s.LastPage }
