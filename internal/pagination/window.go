package pagination

// FullListingThreshold is the largest page count rendered without gaps.
const FullListingThreshold = 7

// Clamp normalizes positions the way ComputePageWindow does before computing:
// lastPage is at least 1 and currentPage falls inside [1, lastPage].
func Clamp(currentPage, lastPage int) (int, int) {
	if lastPage < 1 {
		lastPage = 1
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > lastPage {
		currentPage = lastPage
	}
	return currentPage, lastPage
}

// ComputePageWindow returns the indicators to render for currentPage out of lastPage.
//
// Up to FullListingThreshold pages every page is listed. Past that the first and
// last pages are always present and the window is fixed-width:
//
//	near start (cur <= 3):       1 2 3 4 … last
//	near end   (cur >= last-2):  1 … last-3 last-2 last-1 last
//	middle:                      1 … cur-1 cur cur+1 … last
//
// Out-of-range input is clamped first (see Clamp).
func ComputePageWindow(currentPage, lastPage int) []Indicator {
	currentPage, lastPage = Clamp(currentPage, lastPage)

	if lastPage <= FullListingThreshold {
		out := make([]Indicator, 0, lastPage)
		for n := 1; n <= lastPage; n++ {
			out = append(out, Page(n))
		}
		return out
	}

	out := make([]Indicator, 0, 7)
	out = append(out, Page(1))
	switch {
	case currentPage <= 3:
		out = append(out, Page(2), Page(3), Page(4), Ellipsis(), Page(lastPage))
	case currentPage >= lastPage-2:
		out = append(out, Ellipsis(), Page(lastPage-3), Page(lastPage-2), Page(lastPage-1), Page(lastPage))
	default:
		out = append(out, Ellipsis(), Page(currentPage-1), Page(currentPage), Page(currentPage+1), Ellipsis(), Page(lastPage))
	}
	return out
}
