package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eliteGoblin/focusd/pt_titlebar/internal/domain"
)

func TestEnumRegistry_DispatchToRegisteredYield(t *testing.T) {
	r := newEnumRegistry()

	var seen []domain.Handle
	id := r.register(func(h domain.Handle) bool {
		seen = append(seen, h)
		return h != 2
	})

	assert.True(t, r.dispatch(id, 1))
	assert.False(t, r.dispatch(id, 2))
	assert.Equal(t, []domain.Handle{1, 2}, seen)
}

func TestEnumRegistry_DistinctIDs(t *testing.T) {
	r := newEnumRegistry()

	a := r.register(func(domain.Handle) bool { return true })
	b := r.register(func(domain.Handle) bool { return false })

	assert.NotEqual(t, a, b)
	assert.NotZero(t, a)
	assert.True(t, r.dispatch(a, 1))
	assert.False(t, r.dispatch(b, 1))
}

// TestEnumRegistry_ReleasedIDStops verifies a stale ID ends enumeration instead of calling anything
func TestEnumRegistry_ReleasedIDStops(t *testing.T) {
	r := newEnumRegistry()
	called := false
	id := r.register(func(domain.Handle) bool {
		called = true
		return true
	})

	r.release(id)

	assert.False(t, r.dispatch(id, 1))
	assert.False(t, called)
	assert.Zero(t, r.len())
}

// growStack recurses with a large frame so the goroutine stack has to be copied
func growStack(depth int) int {
	var pad [1024]byte
	pad[depth%len(pad)] = byte(depth)
	if depth == 0 {
		return int(pad[0])
	}
	return growStack(depth-1) + int(pad[depth%len(pad)])
}

// TestEnumRegistry_SurvivesStackGrowth verifies dispatch still reaches the yield
// func after the caller's stack moved between callbacks
func TestEnumRegistry_SurvivesStackGrowth(t *testing.T) {
	r := newEnumRegistry()

	calls := 0
	yield := func(domain.Handle) bool {
		calls++
		growStack(2000)
		return true
	}
	id := r.register(yield)
	defer r.release(id)

	for h := domain.Handle(1); h <= 5; h++ {
		assert.True(t, r.dispatch(id, h))
	}
	assert.Equal(t, 5, calls)
}
