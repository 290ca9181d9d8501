package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubsystem struct {
	initErr     error
	shutdownErr error
}

func (f *fakeSubsystem) Init() error     { return f.initErr }
func (f *fakeSubsystem) Shutdown() error { return f.shutdownErr }

func TestRegisterAssignsStableID(t *testing.T) {
	r := New()
	id := r.Register("srv", &fakeSubsystem{})
	require.NotEqual(t, -1, id)

	assert.Equal(t, id, r.IDByName("srv"))
	assert.Equal(t, Inactive, r.State(id))
}

func TestDuplicateRegistrationRejected(t *testing.T) {
	r := New()
	first := r.Register("srv", &fakeSubsystem{})
	require.NotEqual(t, -1, first)

	second := r.Register("srv", &fakeSubsystem{})
	assert.Equal(t, -1, second)

	// The first registration remains intact with no state change.
	assert.Equal(t, first, r.IDByName("srv"))
	assert.Equal(t, Inactive, r.State(first))
}

func TestRegisterEmptyNameRejected(t *testing.T) {
	r := New()
	assert.Equal(t, -1, r.Register("", &fakeSubsystem{}))
}

func TestAddDependencyIdempotentDedup(t *testing.T) {
	r := New()
	id := r.Register("b", &fakeSubsystem{})

	assert.True(t, r.AddDependency(id, "a"))
	assert.True(t, r.AddDependency(id, "a"))
	assert.Equal(t, 1, r.DependencyCount(id))
}

func TestAddDependencyCapAtTwenty(t *testing.T) {
	r := New()
	id := r.Register("b", &fakeSubsystem{})

	for i := 0; i < 20; i++ {
		ok := r.AddDependency(id, depName(i))
		require.True(t, ok)
	}
	assert.Equal(t, 20, r.DependencyCount(id))
	assert.False(t, r.AddDependency(id, "one-too-many"))
	assert.Equal(t, 20, r.DependencyCount(id))
}

func depName(i int) string {
	return string(rune('a' + i))
}

func TestAddDependencyInvalidID(t *testing.T) {
	r := New()
	assert.False(t, r.AddDependency(99, "a"))
}

func TestResetClearsEverything(t *testing.T) {
	r := New()
	id := r.Register("srv", &fakeSubsystem{})
	r.AddDependency(id, "dep")

	r.Reset()

	assert.Equal(t, 0, r.Count())
	assert.Equal(t, -1, r.IDByName("srv"))
	assert.Equal(t, Inactive, r.State(id))
}

func TestUpdateStateNoopOnInvalidID(t *testing.T) {
	r := New()
	r.UpdateState(42, Running)
	assert.Equal(t, Inactive, r.State(42))
}

func TestStateStringLabels(t *testing.T) {
	assert.Equal(t, "Inactive", Inactive.String())
	assert.Equal(t, "Starting", Starting.String())
	assert.Equal(t, "Running", Running.String())
	assert.Equal(t, "Stopping", Stopping.String())
	assert.Equal(t, "Error", Error.String())
	assert.Equal(t, "Unknown", State(99).String())
}

func TestIsRunningByName(t *testing.T) {
	r := New()
	id := r.Register("srv", &fakeSubsystem{})
	assert.False(t, r.IsRunningByName("srv"))

	r.UpdateState(id, Running)
	assert.True(t, r.IsRunningByName("srv"))
	assert.False(t, r.IsRunningByName("does-not-exist"))
}

func TestDependentsOf(t *testing.T) {
	r := New()
	aID := r.Register("a", &fakeSubsystem{})
	bID := r.Register("b", &fakeSubsystem{})
	r.AddDependency(bID, "a")

	deps := r.DependentsOf("a")
	require.Len(t, deps, 1)
	assert.Equal(t, bID, deps[0])
	_ = aID
}

var errInit = errors.New("init failed")

func TestFakeSubsystemInitFailure(t *testing.T) {
	s := &fakeSubsystem{initErr: errInit}
	assert.ErrorIs(t, s.Init(), errInit)
}
