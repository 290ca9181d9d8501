package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrogen-project/hydrogen/internal/registry"
)

type recordingSubsystem struct {
	name       string
	shutdownCh chan<- string
	initErr    error
}

func (s *recordingSubsystem) Init() error { return s.initErr }
func (s *recordingSubsystem) Shutdown() error {
	s.shutdownCh <- s.name
	return nil
}

func alwaysReady(name string, id int) Probe {
	return func() Readiness {
		return Readiness{Name: name, ID: id, Ready: true, Messages: []string{name + " ready"}}
	}
}

// TestLaunchReadyRespectsDependencyOrder covers dependency-ordered launch:
// a subsystem whose dependency is not yet Running stays Inactive for that
// pass, and LaunchReady converges once the dependency is up. b's probe is
// declared before a's, so the first pass skips b and the second launches it.
func TestLaunchReadyRespectsDependencyOrder(t *testing.T) {
	reg := registry.New()
	ctrl := New(reg, time.Second)

	aID := reg.Register("a", &recordingSubsystem{name: "a", shutdownCh: make(chan string, 1)})
	bID := reg.Register("b", &recordingSubsystem{name: "b", shutdownCh: make(chan string, 1)})
	reg.AddDependency(bID, "a")

	ctrl.Register(bID, alwaysReady("b", bID))
	ctrl.Register(aID, alwaysReady("a", aID))

	readiness := ctrl.CheckAllReadiness()
	launched := ctrl.LaunchReady(readiness)

	assert.Equal(t, 2, launched)
	assert.True(t, reg.IsRunning(aID))
	assert.True(t, reg.IsRunning(bID))
}

// TestDependencyCascadeStop covers spec scenario 4: three subsystems A, B,
// C registered in order, B depends on A, C depends on B, all Running.
// stop_subsystem_and_dependents(A) stops C, then B, then A, leaving all
// three Inactive.
func TestDependencyCascadeStop(t *testing.T) {
	reg := registry.New()
	ctrl := New(reg, time.Second)

	order := make(chan string, 3)
	aID := reg.Register("a", &recordingSubsystem{name: "a", shutdownCh: order})
	bID := reg.Register("b", &recordingSubsystem{name: "b", shutdownCh: order})
	cID := reg.Register("c", &recordingSubsystem{name: "c", shutdownCh: order})

	reg.AddDependency(bID, "a")
	reg.AddDependency(cID, "b")

	reg.UpdateState(aID, registry.Running)
	reg.UpdateState(bID, registry.Running)
	reg.UpdateState(cID, registry.Running)

	ok := ctrl.StopAndDependents(aID)
	require.True(t, ok)

	close(order)
	var got []string
	for name := range order {
		got = append(got, name)
	}
	assert.Equal(t, []string{"c", "b", "a"}, got)

	assert.Equal(t, registry.Inactive, reg.State(aID))
	assert.Equal(t, registry.Inactive, reg.State(bID))
	assert.Equal(t, registry.Inactive, reg.State(cID))
}

// TestStopAndDependentsNoopOnInactive covers the "already-Inactive target
// is a no-op returning true" rule.
func TestStopAndDependentsNoopOnInactive(t *testing.T) {
	reg := registry.New()
	ctrl := New(reg, time.Second)
	id := reg.Register("srv", &recordingSubsystem{name: "srv", shutdownCh: make(chan string, 1)})

	assert.True(t, ctrl.StopAndDependents(id))
	assert.Equal(t, registry.Inactive, reg.State(id))
}

// TestShutdownTimeoutMarksError covers the bounded-wait shutdown: a
// subsystem whose Shutdown blocks past the controller's wait transitions to
// Error, and the walk still completes.
func TestShutdownTimeoutMarksError(t *testing.T) {
	reg := registry.New()
	ctrl := New(reg, 10*time.Millisecond)

	blocking := &blockingSubsystem{unblock: make(chan struct{})}
	defer close(blocking.unblock)

	id := reg.Register("slow", blocking)
	reg.UpdateState(id, registry.Running)

	ctrl.StopAndDependents(id)
	assert.Equal(t, registry.Error, reg.State(id))
}

type blockingSubsystem struct {
	unblock chan struct{}
}

func (b *blockingSubsystem) Init() error { return nil }
func (b *blockingSubsystem) Shutdown() error {
	<-b.unblock
	return nil
}

// TestLandingWalksReverseDeclarationOrder covers landing_sequence: Running
// entries stop in the reverse of declaration order.
func TestLandingWalksReverseDeclarationOrder(t *testing.T) {
	reg := registry.New()
	ctrl := New(reg, time.Second)

	order := make(chan string, 2)
	aID := reg.Register("a", &recordingSubsystem{name: "a", shutdownCh: order})
	bID := reg.Register("b", &recordingSubsystem{name: "b", shutdownCh: order})
	reg.UpdateState(aID, registry.Running)
	reg.UpdateState(bID, registry.Running)

	ctrl.Landing()
	close(order)

	var got []string
	for name := range order {
		got = append(got, name)
	}
	assert.Equal(t, []string{"b", "a"}, got)
}
