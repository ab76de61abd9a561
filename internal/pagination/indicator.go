// Package pagination computes which page buttons a paged list should render.
// It knows nothing about the items being paged; callers hand in positions and
// get back an ordered sequence of indicators.
package pagination

import (
	"encoding/json"
	"strconv"
)

// Kind discriminates the two indicator variants.
type Kind uint8

const (
	KindPage Kind = iota + 1
	KindEllipsis
)

func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindEllipsis:
		return "ellipsis"
	default:
		return "unknown"
	}
}

// MarshalText lets Kind travel as "page" / "ellipsis" in JSON.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Indicator is one unit of a pagination control: either a page number or a gap.
// The zero value is not a valid indicator; build one with Page or Ellipsis.
type Indicator struct {
	kind   Kind
	number int
}

// Page returns a clickable indicator for page n.
func Page(n int) Indicator { return Indicator{kind: KindPage, number: n} }

// Ellipsis returns a gap marker. It never carries a page number.
func Ellipsis() Indicator { return Indicator{kind: KindEllipsis} }

func (i Indicator) Kind() Kind       { return i.kind }
func (i Indicator) IsEllipsis() bool { return i.kind == KindEllipsis }
func (i Indicator) IsPage() bool     { return i.kind == KindPage }

// Number returns the page number and true for page indicators, 0 and false for gaps.
func (i Indicator) Number() (int, bool) {
	if i.kind != KindPage {
		return 0, false
	}
	return i.number, true
}

func (i Indicator) String() string {
	if i.kind == KindEllipsis {
		return "…"
	}
	return strconv.Itoa(i.number)
}

type indicatorJSON struct {
	Kind Kind `json:"kind"`
	Page *int `json:"page,omitempty"`
}

func (i Indicator) MarshalJSON() ([]byte, error) {
	out := indicatorJSON{Kind: i.kind}
	if n, ok := i.Number(); ok {
		out.Page = &n
	}
	return json.Marshal(out)
}
