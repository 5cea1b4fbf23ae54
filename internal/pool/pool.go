// Package pool recycles pre-built game objects instead of creating and
// destroying them. There is no release call: callers deactivate an object
// and the pool hands it out again on a later Acquire.
package pool

import (
	"math/rand"

	"pillarrun/internal/components"
	"pillarrun/internal/engine"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mode decides what Acquire does when every object is in use.
type Mode int

const (
	// Grow builds a new object and keeps it.
	Grow Mode = iota
	// Fixed takes over a random active object.
	Fixed
)

func (m Mode) String() string {
	switch m {
	case Grow:
		return "grow"
	case Fixed:
		return "fixed"
	}
	return "unknown"
}

// Prototype builds one kind of pooled object.
type Prototype struct {
	Name  string
	Build func() *engine.GameObject
}

type entry struct {
	obj   *engine.GameObject
	proto int
}

type Recycler struct {
	name    string
	mode    Mode
	protos  []Prototype
	entries []entry
	rng     *rand.Rand
	logger  *log.Logger

	// OnCreate runs once for every object the pool builds, before it is
	// first handed out. Sessions use it to register objects with the scene
	// and the physics world.
	OnCreate func(g *engine.GameObject)
}

func New(name string, mode Mode, rng *rand.Rand, logger *log.Logger, protos ...Prototype) *Recycler {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if logger == nil {
		logger = log.Default()
	}
	r := &Recycler{
		name:   name,
		mode:   mode,
		protos: protos,
		rng:    rng,
		logger: logger.WithPrefix("pool").With("pool", name),
	}
	if len(protos) == 0 {
		r.logger.Error("no prototypes configured")
	}
	return r
}

// Prewarm builds n inactive objects, picking a prototype at random for each.
func (r *Recycler) Prewarm(n int) {
	if len(r.protos) == 0 {
		return
	}
	for i := 0; i < n; i++ {
		obj := r.create(r.pick())
		obj.SetActive(false)
	}
	r.logger.Debug("prewarmed", "count", n, "size", len(r.entries))
}

// Acquire returns an active object placed at position with the given Euler
// rotation. It reuses an inactive object when one exists; otherwise the
// mode decides between growing and repurposing. Returns nil only when the
// pool has no prototypes.
func (r *Recycler) Acquire(position, rotation rl.Vector3) *engine.GameObject {
	if len(r.protos) == 0 {
		return nil
	}
	proto := r.pick()

	obj := r.findInactive(proto)
	if obj == nil && r.mode == Fixed {
		obj = r.findInactive(-1)
	}

	if obj == nil {
		switch r.mode {
		case Fixed:
			obj = r.repurpose()
		case Grow:
			obj = r.create(proto)
			obj.SetActive(false)
			r.logger.Debug("grew", "size", len(r.entries))
		}
		if obj == nil {
			// Fixed pool with nothing built yet
			obj = r.create(proto)
			obj.SetActive(false)
		}
	}

	obj.Transform.Position = position
	obj.Transform.Rotation = rotation
	obj.SetActive(true)
	return obj
}

func (r *Recycler) pick() int {
	if len(r.protos) == 1 {
		return 0
	}
	return r.rng.Intn(len(r.protos))
}

// findInactive scans in insertion order. proto < 0 matches any prototype.
func (r *Recycler) findInactive(proto int) *engine.GameObject {
	for _, e := range r.entries {
		if (proto < 0 || e.proto == proto) && !e.obj.Active() {
			return e.obj
		}
	}
	return nil
}

// repurpose retires a random active object so it can be handed out again.
// Physics state is reset before the caller reactivates it.
func (r *Recycler) repurpose() *engine.GameObject {
	if len(r.entries) == 0 {
		return nil
	}
	obj := r.entries[r.rng.Intn(len(r.entries))].obj
	obj.SetActive(false)
	if rb := engine.GetComponent[*components.Rigidbody](obj); rb != nil {
		rb.Reset()
	}
	r.logger.Debug("repurposed active object", "object", obj.Name)
	return obj
}

func (r *Recycler) create(proto int) *engine.GameObject {
	obj := r.protos[proto].Build()
	r.entries = append(r.entries, entry{obj: obj, proto: proto})
	if r.OnCreate != nil {
		r.OnCreate(obj)
	}
	return obj
}

func (r *Recycler) Name() string { return r.name }

func (r *Recycler) Mode() Mode { return r.mode }

// Len is the number of objects the pool owns.
func (r *Recycler) Len() int { return len(r.entries) }

// Objects returns every pooled object, active or not.
func (r *Recycler) Objects() []*engine.GameObject {
	out := make([]*engine.GameObject, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.obj
	}
	return out
}

// Active returns the pooled objects currently in use.
func (r *Recycler) Active() []*engine.GameObject {
	var out []*engine.GameObject
	for _, e := range r.entries {
		if e.obj.Active() {
			out = append(out, e.obj)
		}
	}
	return out
}

// Owns reports whether g came from this pool.
func (r *Recycler) Owns(g *engine.GameObject) bool {
	for _, e := range r.entries {
		if e.obj == g {
			return true
		}
	}
	return false
}

// PrototypeOf returns the prototype name g was built from, or "".
func (r *Recycler) PrototypeOf(g *engine.GameObject) string {
	for _, e := range r.entries {
		if e.obj == g {
			return r.protos[e.proto].Name
		}
	}
	return ""
}
