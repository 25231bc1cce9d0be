package fieldaccess

import (
	"sync"
)

// Guarded serialises access to a record: any number of View calls run
// together, Update runs alone.
type Guarded struct {
	mu    sync.RWMutex
	owner AnyFieldAccess
}

func Guard(owner AnyFieldAccess) *Guarded {
	return &Guarded{owner: owner}
}

// View calls fn with the named field under the read lock. The Field must not
// be retained after fn returns.
func (g *Guarded) View(name string, fn func(Field) error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return fn(FieldOf(g.owner, name))
}

// Update calls fn with the named field under the write lock. The FieldMut must
// not be retained after fn returns.
func (g *Guarded) Update(name string, fn func(FieldMut) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return fn(FieldMutOf(g.owner, name))
}

func (g *Guarded) Names() []string {
	return g.owner.FieldNames()
}
