package pagination_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/pagination-service/internal/pagination"
)

func TestLastPageFor(t *testing.T) {
	assert.Equal(t, 1, pagination.LastPageFor(0, 10))
	assert.Equal(t, 1, pagination.LastPageFor(10, 10))
	assert.Equal(t, 2, pagination.LastPageFor(11, 10))
	assert.Equal(t, 10, pagination.LastPageFor(95, 10))
	assert.Equal(t, 1, pagination.LastPageFor(5, 0))
}

func TestLastPageFor_NearMaxInt(t *testing.T) {
	assert.Equal(t, math.MaxInt/2+1, pagination.LastPageFor(math.MaxInt, 2))
	assert.Equal(t, (math.MaxInt-10)/100+1, pagination.LastPageFor(math.MaxInt-10, 100))
	assert.Equal(t, math.MaxInt, pagination.LastPageFor(math.MaxInt, 1))
}

func TestNewState_HugeTotals(t *testing.T) {
	s := pagination.NewState(1, 2, math.MaxInt)
	assert.Equal(t, math.MaxInt/2+1, s.LastPage)
	require.NotNil(t, s.RangeStart)
	require.NotNil(t, s.RangeEnd)
	assert.Equal(t, 1, *s.RangeStart)
	assert.Equal(t, 2, *s.RangeEnd)

	last := pagination.NewState(s.LastPage, 2, math.MaxInt)
	require.NotNil(t, last.RangeStart)
	require.NotNil(t, last.RangeEnd)
	assert.Equal(t, math.MaxInt, *last.RangeStart)
	assert.Equal(t, math.MaxInt, *last.RangeEnd)

	assert.Equal(t, "1,…,4,5,6,…,"+strconv.Itoa(s.LastPage), render(pagination.NewState(5, 2, math.MaxInt).Window()))
}

func TestNewState_Range(t *testing.T) {
	s := pagination.NewState(3, 10, 25)
	assert.Equal(t, 3, s.LastPage)
	require.NotNil(t, s.RangeStart)
	require.NotNil(t, s.RangeEnd)
	assert.Equal(t, 21, *s.RangeStart)
	assert.Equal(t, 25, *s.RangeEnd)
	assert.True(t, s.HasPrevious())
	assert.False(t, s.HasNext())
}

func TestNewState_NoItems(t *testing.T) {
	s := pagination.NewState(1, 10, 0)
	assert.Equal(t, 1, s.LastPage)
	assert.Nil(t, s.RangeStart)
	assert.Nil(t, s.RangeEnd)
	assert.False(t, s.HasPrevious())
	assert.False(t, s.HasNext())
}

func TestNewState_PageBeyondItems(t *testing.T) {
	s := pagination.NewState(9, 10, 25)
	assert.Nil(t, s.RangeStart)
	assert.Nil(t, s.RangeEnd)
}

func TestState_Window(t *testing.T) {
	s := pagination.NewState(5, 10, 100)
	assert.Equal(t, "1,…,4,5,6,…,10", render(s.Window()))
}
