package infra

import (
	"sync"

	"github.com/eliteGoblin/focusd/pt_titlebar/internal/domain"
)

// enumRegistry maps the integer passed as an enumeration lParam to the
// yield func of that enumeration. Only the ID crosses into C, so the
// goroutine stack may move while callbacks run.
type enumRegistry struct {
	mu     sync.Mutex
	next   uintptr
	yields map[uintptr]func(domain.Handle) bool
}

var enumerations = newEnumRegistry()

func newEnumRegistry() *enumRegistry {
	return &enumRegistry{yields: make(map[uintptr]func(domain.Handle) bool)}
}

// register stores yield and returns its ID. IDs start at 1.
func (r *enumRegistry) register(yield func(domain.Handle) bool) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	r.yields[r.next] = yield
	return r.next
}

func (r *enumRegistry) release(id uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.yields, id)
}

// dispatch hands h to the yield func registered under id.
// An unknown ID stops the enumeration.
func (r *enumRegistry) dispatch(id uintptr, h domain.Handle) bool {
	r.mu.Lock()
	yield, ok := r.yields[id]
	r.mu.Unlock()

	if !ok {
		return false
	}
	return yield(h)
}

func (r *enumRegistry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.yields)
}
