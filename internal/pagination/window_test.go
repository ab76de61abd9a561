package pagination_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/pagination-service/internal/pagination"
)

func render(in []pagination.Indicator) string {
	parts := make([]string, len(in))
	for i, ind := range in {
		parts[i] = ind.String()
	}
	return strings.Join(parts, ",")
}

func TestComputePageWindow_Scenarios(t *testing.T) {
	cases := []struct {
		current, last int
		want          string
	}{
		{1, 5, "1,2,3,4,5"},
		{3, 7, "1,2,3,4,5,6,7"},
		{1, 10, "1,2,3,4,…,10"},
		{2, 10, "1,2,3,4,…,10"},
		{3, 10, "1,2,3,4,…,10"},
		{4, 10, "1,…,3,4,5,…,10"},
		{5, 10, "1,…,4,5,6,…,10"},
		{7, 10, "1,…,6,7,8,…,10"},
		{8, 10, "1,…,7,8,9,10"},
		{9, 10, "1,…,7,8,9,10"},
		{10, 10, "1,…,7,8,9,10"},
		{4, 8, "1,…,3,4,5,…,8"},
		{1, 8, "1,2,3,4,…,8"},
		{6, 8, "1,…,5,6,7,8"},
		{1, 1, "1"},
		{50, 100, "1,…,49,50,51,…,100"},
	}
	for _, tc := range cases {
		got := render(pagination.ComputePageWindow(tc.current, tc.last))
		assert.Equalf(t, tc.want, got, "current=%d last=%d", tc.current, tc.last)
	}
}

func TestComputePageWindow_FullListingUpToThreshold(t *testing.T) {
	for last := 1; last <= pagination.FullListingThreshold; last++ {
		for cur := 1; cur <= last; cur++ {
			out := pagination.ComputePageWindow(cur, last)
			require.Len(t, out, last)
			for i, ind := range out {
				n, ok := ind.Number()
				require.True(t, ok, "unexpected ellipsis at %d (cur=%d last=%d)", i, cur, last)
				assert.Equal(t, i+1, n)
			}
		}
	}
}

func TestComputePageWindow_WindowedProperties(t *testing.T) {
	for last := pagination.FullListingThreshold + 1; last <= 40; last++ {
		for cur := 1; cur <= last; cur++ {
			out := pagination.ComputePageWindow(cur, last)
			require.NotEmpty(t, out)

			first, ok := out[0].Number()
			require.True(t, ok)
			assert.Equal(t, 1, first)
			tail, ok := out[len(out)-1].Number()
			require.True(t, ok)
			assert.Equal(t, last, tail)

			gaps, prev := 0, 0
			for i, ind := range out {
				if ind.IsEllipsis() {
					gaps++
					require.False(t, out[i-1].IsEllipsis(), "consecutive gaps cur=%d last=%d", cur, last)
					before, _ := out[i-1].Number()
					after, _ := out[i+1].Number()
					assert.Greater(t, after-before, 1, "gap skips nothing cur=%d last=%d", cur, last)
					continue
				}
				n, _ := ind.Number()
				assert.Greater(t, n, prev, "not ascending cur=%d last=%d", cur, last)
				prev = n
			}
			assert.GreaterOrEqual(t, gaps, 1)
			assert.LessOrEqual(t, gaps, 2)
		}
	}
}

func TestComputePageWindow_Idempotent(t *testing.T) {
	a := pagination.ComputePageWindow(5, 20)
	b := pagination.ComputePageWindow(5, 20)
	assert.Equal(t, a, b)

	// mutating one result must not leak into the next call
	a[0] = pagination.Ellipsis()
	assert.Equal(t, b, pagination.ComputePageWindow(5, 20))
}

func TestComputePageWindow_ClampsOutOfRange(t *testing.T) {
	cases := []struct {
		name          string
		current, last int
		want          string
	}{
		{"page below one", 0, 10, "1,2,3,4,…,10"},
		{"negative page", -3, 5, "1,2,3,4,5"},
		{"page past end", 42, 10, "1,…,7,8,9,10"},
		{"zero pages", 1, 0, "1"},
		{"negative pages", 5, -2, "1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, render(pagination.ComputePageWindow(tc.current, tc.last)))
		})
	}
}

func TestIndicator_Variants(t *testing.T) {
	p := pagination.Page(3)
	n, ok := p.Number()
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	assert.Equal(t, pagination.KindPage, p.Kind())

	e := pagination.Ellipsis()
	_, ok = e.Number()
	assert.False(t, ok)
	assert.True(t, e.IsEllipsis())
	assert.Equal(t, "ellipsis", e.Kind().String())
}

func TestIndicator_MarshalJSON(t *testing.T) {
	b, err := pagination.Page(4).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"page","page":4}`, string(b))

	b, err = pagination.Ellipsis().MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"ellipsis"}`, string(b))
}
