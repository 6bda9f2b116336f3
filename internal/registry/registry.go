package registry

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/funvibe/funkos/internal/infer"
)

// Kernel is a compiled specialization of a workunit for one exact
// combination of inferred types.
type Kernel interface {
	Signature() string
}

// Specializer compiles a workunit using the inference results. It is
// implemented by the code-generation backend.
type Specializer interface {
	Specialize(wu *infer.Workunit, u *infer.Updated) (Kernel, error)
}

type entry struct {
	ready  chan struct{}
	kernel Kernel
	err    error
}

// Registry caches specializations keyed by workunit name plus signature.
// At most one compilation is in flight per key; once an entry is ready it
// is read concurrently without blocking.
type Registry struct {
	mu          sync.Mutex
	entries     map[string]*entry
	specializer Specializer
}

func New(s Specializer) *Registry {
	return &Registry{
		entries:     make(map[string]*entry),
		specializer: s,
	}
}

// Key builds the cache key for a workunit and its inference result. A nil
// result means nothing was inferred; the workunit then has a single
// specialization.
func Key(wu *infer.Workunit, u *infer.Updated) string {
	if u == nil || u.Signature == "" {
		return wu.Name
	}
	return wu.Name + "/" + u.Signature
}

// Lookup returns the specialization for the given inference result,
// compiling it first if this is the first dispatch with this key. A
// failed compilation is cached: inference and specialization are
// deterministic, so retrying cannot succeed.
func (r *Registry) Lookup(wu *infer.Workunit, u *infer.Updated) (Kernel, error) {
	key := Key(wu, u)

	r.mu.Lock()
	e, ok := r.entries[key]
	if !ok {
		e = &entry{ready: make(chan struct{})}
		r.entries[key] = e
		r.mu.Unlock()

		kernel, err := r.specializer.Specialize(wu, u)
		if err != nil {
			e.err = errors.Wrapf(err, "specializing %s", key)
		} else {
			e.kernel = kernel
		}
		close(e.ready)
		return e.kernel, e.err
	}
	r.mu.Unlock()

	<-e.ready
	return e.kernel, e.err
}

// Len returns the number of cached specializations.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
