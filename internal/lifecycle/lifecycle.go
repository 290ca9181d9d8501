// Package lifecycle implements Hydrogen's lifecycle controller: readiness
// probing, dependency-ordered launch, and reverse-ordered landing, all
// driven off an internal/registry.Registry.
package lifecycle

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hydrogen-project/hydrogen/internal/registry"
)

// Readiness is the decision a probe returns for one subsystem: whether its
// configuration and environment currently permit launch, plus the ordered
// diagnostic lines that justify the verdict.
type Readiness struct {
	Name     string
	ID       int
	Ready    bool
	Messages []string
}

// Probe inspects AppConfig/environment and reports launch readiness for one
// subsystem. It never mutates registry state.
type Probe func() Readiness

// registration pairs a registry id with the probe that decides its
// readiness, preserving the declaration order the launch sequence walks in.
type registration struct {
	id    int
	probe Probe
}

// Controller drives a Registry through readiness checks, ordered launch, and
// reverse-ordered landing. It owns no subsystem state itself; all state
// lives in the Registry.
type Controller struct {
	reg          *registry.Registry
	shutdownWait time.Duration
	regs         []registration
}

// New returns a Controller driving reg. shutdownWait bounds how long a
// single subsystem's Shutdown is allowed to run before the controller marks
// it Error and moves on.
func New(reg *registry.Registry, shutdownWait time.Duration) *Controller {
	return &Controller{reg: reg, shutdownWait: shutdownWait}
}

// Register associates a readiness probe with an already-registered
// subsystem id, appending it to the declaration-ordered launch sequence.
func (c *Controller) Register(id int, probe Probe) {
	c.regs = append(c.regs, registration{id: id, probe: probe})
}

// CheckAllReadiness runs every probe in declaration order, returning every
// result. It never short-circuits on the first failure.
func (c *Controller) CheckAllReadiness() []Readiness {
	out := make([]Readiness, 0, len(c.regs))
	for _, r := range c.regs {
		ready := r.probe()
		out = append(out, ready)
		if !ready.Ready {
			log.Warn().Str("subsystem", ready.Name).Strs("messages", ready.Messages).
				Msg("subsystem not ready")
		}
	}
	return out
}

// LaunchReady repeatedly passes over the readiness list, launching every
// entry that is ready and whose dependencies are all Running, until a pass
// launches nothing new. It returns the total number of subsystems launched.
func (c *Controller) LaunchReady(readiness []Readiness) int {
	byName := make(map[string]Readiness, len(readiness))
	for _, r := range readiness {
		byName[r.Name] = r
	}

	total := 0
	for {
		launchedThisPass := 0
		for _, r := range readiness {
			if !r.Ready {
				continue
			}
			if c.reg.State(r.ID) != registry.Inactive {
				continue
			}
			if !c.dependenciesRunning(r.ID) {
				continue
			}
			if c.launchOne(r.ID, r.Name) {
				launchedThisPass++
				total++
			}
		}
		if launchedThisPass == 0 {
			break
		}
	}
	return total
}

func (c *Controller) dependenciesRunning(id int) bool {
	for _, dep := range c.reg.DependencyNames(id) {
		depID := c.reg.IDByName(dep)
		if depID == -1 || !c.reg.IsRunning(depID) {
			return false
		}
	}
	return true
}

func (c *Controller) launchOne(id int, name string) bool {
	c.reg.UpdateState(id, registry.Starting)
	sub := c.reg.Subsystem(id)
	if sub == nil {
		c.reg.UpdateState(id, registry.Error)
		log.Error().Str("subsystem", name).Msg("no subsystem implementation bound to entry")
		return false
	}
	if err := sub.Init(); err != nil {
		c.reg.UpdateState(id, registry.Error)
		log.Error().Err(err).Str("subsystem", name).Msg("subsystem init failed")
		return false
	}
	c.reg.UpdateState(id, registry.Running)
	log.Info().Str("subsystem", name).Msg("subsystem running")
	return true
}

// StopAndDependents stops id and, first, every entry that (recursively)
// declares id's name as a dependency — in reverse-dependency order, so the
// deepest dependent stops first. An already-Inactive target is a no-op.
// Shutdown is never invoked on an entry that is not Running; an entry whose
// Shutdown does not return within the controller's bounded wait moves to
// Error but the walk continues.
func (c *Controller) StopAndDependents(id int) bool {
	name := c.reg.NameByID(id)
	if name == "" {
		return false
	}
	if c.reg.State(id) == registry.Inactive {
		return true
	}

	order := c.dependentOrder(name)
	order = append(order, id)

	for _, depID := range order {
		c.stopOne(depID)
	}
	return true
}

// dependentOrder returns, deepest-first, every id (recursively) dependent on
// name, without including name's own id.
func (c *Controller) dependentOrder(name string) []int {
	var order []int
	seen := map[int]bool{}

	var visit func(string)
	visit = func(n string) {
		for _, depID := range c.reg.DependentsOf(n) {
			if seen[depID] {
				continue
			}
			seen[depID] = true
			visit(c.reg.NameByID(depID))
			order = append(order, depID)
		}
	}
	visit(name)
	return order
}

func (c *Controller) stopOne(id int) {
	if c.reg.State(id) != registry.Running {
		return
	}
	name := c.reg.NameByID(id)
	c.reg.UpdateState(id, registry.Stopping)

	sub := c.reg.Subsystem(id)
	if sub == nil {
		c.reg.UpdateState(id, registry.Error)
		return
	}

	done := make(chan error, 1)
	go func() { done <- sub.Shutdown() }()

	select {
	case err := <-done:
		if err != nil {
			log.Error().Err(err).Str("subsystem", name).Msg("subsystem shutdown reported failure")
			c.reg.UpdateState(id, registry.Error)
			return
		}
		c.reg.UpdateState(id, registry.Inactive)
		log.Info().Str("subsystem", name).Msg("subsystem stopped")
	case <-time.After(c.shutdownWait):
		log.Error().Str("subsystem", name).Dur("wait", c.shutdownWait).
			Msg("subsystem shutdown timed out")
		c.reg.UpdateState(id, registry.Error)
	}
}

// Landing walks every Running entry in the reverse of declaration order,
// calling StopAndDependents on each. Best-effort: it never aborts early on
// a single subsystem's failure to stop cleanly.
func (c *Controller) Landing() {
	ids := c.reg.IDsInDeclarationOrder()
	for i := len(ids) - 1; i >= 0; i-- {
		id := ids[i]
		if c.reg.State(id) != registry.Running {
			continue
		}
		c.StopAndDependents(id)
	}
}
