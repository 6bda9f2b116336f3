package registry

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"

	"github.com/funvibe/funkos/internal/infer"
)

type stubKernel struct {
	signature string
}

func (k *stubKernel) Signature() string { return k.signature }

type countingSpecializer struct {
	compiles int32
	fail     bool
}

func (s *countingSpecializer) Specialize(wu *infer.Workunit, u *infer.Updated) (Kernel, error) {
	atomic.AddInt32(&s.compiles, 1)
	if s.fail {
		return nil, errors.New("codegen failed")
	}
	sig := ""
	if u != nil {
		sig = u.Signature
	}
	return &stubKernel{signature: sig}, nil
}

func updatedWithSignature(wu *infer.Workunit, sig string) *infer.Updated {
	u := &infer.Updated{Workunit: wu, Signature: sig}
	return u
}

func TestLookupCompilesOncePerSignature(t *testing.T) {
	spec := &countingSpecializer{}
	reg := New(spec)
	wu := infer.NewWorkunit("axpy", nil, nil)

	for i := 0; i < 5; i++ {
		if _, err := reg.Lookup(wu, updatedWithSignature(wu, "i1DdR")); err != nil {
			t.Fatalf("Lookup() error: %v", err)
		}
	}
	if spec.compiles != 1 {
		t.Errorf("compiled %d times, want 1", spec.compiles)
	}

	if _, err := reg.Lookup(wu, updatedWithSignature(wu, "i1DfR")); err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	if spec.compiles != 2 {
		t.Errorf("compiled %d times after new signature, want 2", spec.compiles)
	}
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}
}

func TestLookupNilUpdated(t *testing.T) {
	spec := &countingSpecializer{}
	reg := New(spec)
	wu := infer.NewWorkunit("fully_typed", nil, nil)

	if _, err := reg.Lookup(wu, nil); err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	if _, err := reg.Lookup(wu, nil); err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	if spec.compiles != 1 {
		t.Errorf("compiled %d times, want 1", spec.compiles)
	}
}

func TestLookupSingleFlight(t *testing.T) {
	spec := &countingSpecializer{}
	reg := New(spec)
	wu := infer.NewWorkunit("axpy", nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := reg.Lookup(wu, updatedWithSignature(wu, "i2DdL")); err != nil {
				t.Errorf("Lookup() error: %v", err)
			}
		}()
	}
	wg.Wait()

	if spec.compiles != 1 {
		t.Errorf("compiled %d times under concurrency, want 1", spec.compiles)
	}
}

func TestLookupCachesFailure(t *testing.T) {
	spec := &countingSpecializer{fail: true}
	reg := New(spec)
	wu := infer.NewWorkunit("broken", nil, nil)

	for i := 0; i < 3; i++ {
		if _, err := reg.Lookup(wu, updatedWithSignature(wu, "i")); err == nil {
			t.Fatalf("Lookup() should fail")
		}
	}
	if spec.compiles != 1 {
		t.Errorf("failed compile retried %d times, want 1 attempt", spec.compiles)
	}
}

func TestKey(t *testing.T) {
	wu := infer.NewWorkunit("axpy", nil, nil)
	if got := Key(wu, nil); got != "axpy" {
		t.Errorf("Key(nil) = %q, want axpy", got)
	}
	if got := Key(wu, updatedWithSignature(wu, "i2DdR")); got != "axpy/i2DdR" {
		t.Errorf("Key() = %q, want axpy/i2DdR", got)
	}
}
