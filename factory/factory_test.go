package factory

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/objpath/objpath"
	"github.com/objpath/objpath/errors"
)

type fakeSession struct {
	subject any
	parent  objpath.Session
}

func (s *fakeSession) Subject() any { return s.subject }

func (s *fakeSession) Parent() objpath.Session { return s.parent }

func (s *fakeSession) Evaluate(ctx context.Context, path string) (any, error) {
	return nil, nil
}

type fakeFactory struct{}

func (f *fakeFactory) NewSession(parent objpath.Session, subject any) (objpath.Session, error) {
	if subject == nil {
		return nil, errors.InvalidInput(errors.PhaseSession, "subject cannot be nil")
	}
	return &fakeSession{subject: subject, parent: parent}, nil
}

// resetName clears the process identifier cache and restores it after the
// test. Test-only hook; the production cache is write-once.
func resetName(t *testing.T) {
	t.Helper()
	nameOnce = sync.Once{}
	cachedName = ""
	t.Cleanup(func() {
		nameOnce = sync.Once{}
		cachedName = ""
	})
}

// stubResolveName replaces the resolution step and restores it after the test.
func stubResolveName(t *testing.T, fn func() string) {
	t.Helper()
	orig := resolveName
	resolveName = fn
	t.Cleanup(func() { resolveName = orig })
}

func TestLoad_Success(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister("com.example.A", noopConstructor)

	f, err := load("com.example.A", reg)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if _, ok := f.(*fakeFactory); !ok {
		t.Fatalf("Expected *fakeFactory, got %T", f)
	}

	sess, err := f.NewSession(nil, map[string]any{"k": "v"})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if sess.Parent() != nil {
		t.Fatal("Expected root session")
	}
}

func TestLoad_FreshInstanceEachCall(t *testing.T) {
	var calls int32
	reg := NewRegistry()
	reg.MustRegister("com.example.A", func() (objpath.Factory, error) {
		atomic.AddInt32(&calls, 1)
		return &fakeFactory{}, nil
	})

	if _, err := load("com.example.A", reg); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if _, err := load("com.example.A", reg); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if calls != 2 {
		t.Fatalf("Expected 2 constructor calls, got %d", calls)
	}
}

func TestLoad_Unregistered(t *testing.T) {
	_, err := load("com.example.Missing", NewRegistry())
	if err == nil {
		t.Fatal("Expected configuration error")
	}
	if !errors.IsConfiguration(err) {
		t.Fatalf("Expected configuration kind, got %v", err)
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindNotFound}) {
		t.Fatalf("Expected not_found cause in chain, got %v", err)
	}
}

func TestLoad_ConstructorError(t *testing.T) {
	cause := fmt.Errorf("engine unavailable")
	reg := NewRegistry()
	reg.MustRegister("com.example.Broken", func() (objpath.Factory, error) {
		return nil, cause
	})

	f, err := load("com.example.Broken", reg)
	if f != nil {
		t.Fatal("Expected no factory on failure")
	}
	if !errors.IsConfiguration(err) {
		t.Fatalf("Expected configuration kind, got %v", err)
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("Expected cause preserved in chain")
	}
}

func TestLoad_NilFactory(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister("com.example.Nil", func() (objpath.Factory, error) {
		return nil, nil
	})

	f, err := load("com.example.Nil", reg)
	if f != nil || !errors.IsConfiguration(err) {
		t.Fatalf("Expected configuration error for nil factory, got %v", err)
	}
}

func TestLoad_ConstructorPanic(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister("com.example.Panics", func() (objpath.Factory, error) {
		panic("boom")
	})

	f, err := load("com.example.Panics", reg)
	if f != nil {
		t.Fatal("Expected no factory after panic")
	}
	if !errors.IsConfiguration(err) {
		t.Fatalf("Expected configuration kind, got %v", err)
	}
}

func TestName_ComputedOnce(t *testing.T) {
	resetName(t)

	var calls int32
	stubResolveName(t, func() string {
		// A different answer on every run; only the first may be observed.
		return fmt.Sprintf("com.example.Run%d", atomic.AddInt32(&calls, 1))
	})

	first := Name()
	second := Name()
	if first != "com.example.Run1" || second != first {
		t.Fatalf("Expected stable cached name, got %q then %q", first, second)
	}
	if calls != 1 {
		t.Fatalf("Expected one resolution, got %d", calls)
	}
}

func TestName_ConcurrentFirstAccess(t *testing.T) {
	resetName(t)

	var calls int32
	stubResolveName(t, func() string {
		atomic.AddInt32(&calls, 1)
		time.Sleep(10 * time.Millisecond)
		return "com.example.Concurrent"
	})

	const goroutines = 16
	names := make([]string, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			names[i] = Name()
		}(i)
	}
	wg.Wait()

	for i, name := range names {
		if name != "com.example.Concurrent" {
			t.Fatalf("Goroutine %d observed %q", i, name)
		}
	}
	if calls != 1 {
		t.Fatalf("Expected exactly one resolution, got %d", calls)
	}
}

func TestNew_UsesCachedIdentifier(t *testing.T) {
	resetName(t)
	stubResolveName(t, func() string { return "com.example.ProcessWide" })

	MustRegister("com.example.ProcessWide", noopConstructor)

	f, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, ok := f.(*fakeFactory); !ok {
		t.Fatalf("Expected *fakeFactory, got %T", f)
	}

	// The identifier stays fixed even though resolution would now differ.
	stubResolveName(t, func() string { return "com.example.SomethingElse" })
	if Name() != "com.example.ProcessWide" {
		t.Fatal("Cached identifier must not change")
	}
}

func TestName_IgnoresSourceMutation(t *testing.T) {
	resetName(t)
	t.Setenv("OBJPATH_FACTORY", "com.example.First")

	if got := Name(); got != "com.example.First" {
		t.Fatalf("Expected com.example.First, got %q", got)
	}

	// Mutating the source after first access must not change the answer.
	t.Setenv("OBJPATH_FACTORY", "com.example.Second")
	if got := Name(); got != "com.example.First" {
		t.Fatalf("Cached name changed to %q", got)
	}
}

func TestNew_UnregisteredDefault(t *testing.T) {
	resetName(t)
	stubResolveName(t, func() string { return DefaultFactoryName })

	_, err := New()
	if !errors.IsConfiguration(err) {
		t.Fatalf("Expected configuration error without a registered engine, got %v", err)
	}
}
