// Package control turns a pagination state into the model a list screen draws:
// which indicators to show, the previous/next affordances and the summary line.
package control

import (
	"fmt"
	"strconv"

	"github.com/maxviazov/pagination-service/internal/pagination"
)

// Item is a single rendered indicator. Key is unique within one Control and is
// only meant for list rendering; two ellipses get different keys.
type Item struct {
	Kind      pagination.Kind `json:"kind"`
	Page      *int            `json:"page,omitempty"`
	Key       string          `json:"key"`
	Current   bool            `json:"current"`
	Clickable bool            `json:"clickable"`
}

// Step is the previous or next affordance.
type Step struct {
	Enabled bool `json:"enabled"`
	Page    int  `json:"page,omitempty"`
}

// Control is everything needed to draw a pagination bar under a list.
type Control struct {
	Visible  bool             `json:"visible"`
	State    pagination.State `json:"state"`
	Items    []Item           `json:"items"`
	Previous Step             `json:"previous"`
	Next     Step             `json:"next"`
	Summary  string           `json:"summary"`
}

// Build derives the control for state. A single page hides the whole control.
func Build(state pagination.State, itemName string) Control {
	c := Control{
		State:   state,
		Items:   []Item{},
		Summary: Summary(state, itemName),
	}
	if state.LastPage <= 1 {
		return c
	}

	c.Visible = true
	for i, ind := range state.Window() {
		c.Items = append(c.Items, newItem(i, ind, state.CurrentPage))
	}
	if state.HasPrevious() {
		c.Previous = Step{Enabled: true, Page: state.CurrentPage - 1}
	}
	if state.HasNext() {
		c.Next = Step{Enabled: true, Page: state.CurrentPage + 1}
	}
	return c
}

func newItem(pos int, ind pagination.Indicator, current int) Item {
	n, ok := ind.Number()
	if !ok {
		return Item{Kind: ind.Kind(), Key: "ellipsis-" + strconv.Itoa(pos)}
	}
	return Item{
		Kind:      ind.Kind(),
		Page:      &n,
		Key:       "page-" + strconv.Itoa(n),
		Current:   n == current,
		Clickable: n != current,
	}
}

// Summary formats the "Showing X to Y of Z" line.
func Summary(state pagination.State, itemName string) string {
	if state.RangeStart == nil || state.RangeEnd == nil {
		return fmt.Sprintf("No %s found", itemName)
	}
	return fmt.Sprintf("Showing %d to %d of %d %s", *state.RangeStart, *state.RangeEnd, state.TotalItems, itemName)
}

// Activate reports a click on item to onPageChange. Gaps and the current page
// are inert; the return value tells whether the handler was called.
func Activate(item Item, onPageChange func(page int)) bool {
	if !item.Clickable || item.Page == nil || onPageChange == nil {
		return false
	}
	onPageChange(*item.Page)
	return true
}

// ActivateStep is Activate for the previous/next affordances.
func ActivateStep(step Step, onPageChange func(page int)) bool {
	if !step.Enabled || onPageChange == nil {
		return false
	}
	onPageChange(step.Page)
	return true
}
