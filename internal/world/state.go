package world

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/embedsim/simcore/internal/core/ecs"
	"github.com/embedsim/simcore/internal/core/event"
	"github.com/embedsim/simcore/internal/core/geom"
)

// State is the registry of one simulation run: live objects in registration
// order, the deferred component-start queue, the deferred destroy queue and
// the collision manager. Single-goroutine access only (game loop).
type State struct {
	log *zap.Logger
	bus *event.Bus

	pool    *ecs.EntityPool
	objects []*Object
	byID    map[ecs.EntityID]*Object
	nameSeq int

	initQueue    []Component
	destroyQueue []*Object
	started      bool

	collisions *Collisions
}

// NewState creates an empty registry. bus may be nil when nobody observes
// simulation events.
func NewState(log *zap.Logger, bus *event.Bus) *State {
	if log == nil {
		log = zap.NewNop()
	}
	s := &State{
		log:          log,
		bus:          bus,
		pool:         ecs.NewEntityPool(),
		objects:      make([]*Object, 0, 256),
		byID:         make(map[ecs.EntityID]*Object, 256),
		initQueue:    make([]Component, 0, 32),
		destroyQueue: make([]*Object, 0, 32),
	}
	s.collisions = newCollisions(s)
	return s
}

func (s *State) Log() *zap.Logger        { return s.log }
func (s *State) Bus() *event.Bus         { return s.bus }
func (s *State) Collisions() *Collisions { return s.collisions }

// Started reports whether the bulk awake/start pass has run.
func (s *State) Started() bool { return s.started }

// MarkStarted flips the state to Started. It never reverts.
func (s *State) MarkStarted() { s.started = true }

// NewObject creates and registers an object. An empty name becomes
// GameObject_<n>, an empty tag becomes DefaultTag.
func (s *State) NewObject(name, tag string) *Object {
	if name == "" {
		name = fmt.Sprintf("GameObject_%d", s.nameSeq)
	}
	s.nameSeq++
	if tag == "" {
		tag = DefaultTag
	}
	o := &Object{
		Name:      name,
		Tag:       tag,
		Transform: geom.NewTransform(),
		id:        s.pool.Create(),
		state:     s,
		byKind:    make(map[ecs.Kind][]Component, 4),
	}
	s.Register(o)
	return o
}

// Register appends o to the live list. No duplicate check: NewObject is the
// only caller and registers each object once.
func (s *State) Register(o *Object) {
	s.objects = append(s.objects, o)
	s.byID[o.id] = o
}

// Object resolves a handle. Destroyed and zero handles resolve to false.
func (s *State) Object(id ecs.EntityID) (*Object, bool) {
	o, ok := s.byID[id]
	return o, ok
}

// Objects returns a snapshot of the live objects in registration order.
func (s *State) Objects() []*Object {
	return slices.Clone(s.objects)
}

func (s *State) Len() int { return len(s.objects) }

// FindGameObject returns the first live object whose name equals name.
// Names compare after Unicode canonical composition, so precomposed and
// decomposed spellings of the same text match.
func (s *State) FindGameObject(name string) (*Object, bool) {
	want := norm.NFC.String(name)
	for _, o := range s.objects {
		if o.Name == name || norm.NFC.String(o.Name) == want {
			return o, true
		}
	}
	return nil, false
}

// FindGameObjectsWithTag returns every live object carrying tag.
func (s *State) FindGameObjectsWithTag(tag string) []*Object {
	var out []*Object
	for _, o := range s.objects {
		if o.Tag == tag {
			out = append(out, o)
		}
	}
	return out
}

// QueueComponentInitialization runs c's awake immediately and defers its
// start to the next FlushInitQueue.
func (s *State) QueueComponentInitialization(c Component) {
	c.base().pendingStart = true
	c.OnAwake(s)
	s.initQueue = append(s.initQueue, c)
}

// QueueDestroy requests destruction of o at the next tick boundary.
// Repeated requests are ignored.
func (s *State) QueueDestroy(o *Object) {
	if o.pendingDestroy {
		return
	}
	o.pendingDestroy = true
	s.destroyQueue = append(s.destroyQueue, o)
}

// FlushInitQueue runs the deferred start of every component queued before
// the call, in FIFO order. Components queued while flushing wait for the
// next flush. Components detached, or whose owner was destroyed, while
// waiting are dropped.
func (s *State) FlushInitQueue() int {
	queued := s.initQueue
	s.initQueue = make([]Component, 0, cap(queued))
	n := 0
	for _, c := range queued {
		b := c.base()
		if !b.pendingStart {
			continue
		}
		b.pendingStart = false
		if _, live := s.byID[c.Owner()]; !live {
			continue
		}
		c.OnStart(s)
		n++
	}
	return n
}

// FlushDestroyQueue fires OnDestroy on each queued object, then removes it
// from the registry and from the collision manager. Objects queued while
// flushing are processed in the same flush.
func (s *State) FlushDestroyQueue() int {
	n := 0
	for len(s.destroyQueue) > 0 {
		o := s.destroyQueue[0]
		s.destroyQueue = s.destroyQueue[1:]

		o.destroy()
		if i := slices.Index(s.objects, o); i >= 0 {
			s.objects = slices.Delete(s.objects, i, i+1)
		}
		delete(s.byID, o.id)
		s.collisions.Forget(o)
		s.pool.Destroy(o.id)
		n++

		event.Emit(s.bus, event.EntityDestroyed{EntityID: o.id, Name: o.Name})
		s.log.Debug("object destroyed", zap.String("name", o.Name), zap.Uint64("id", uint64(o.id)))
	}
	s.destroyQueue = s.destroyQueue[:0]
	return n
}

// AwakeAll runs awake on every registered object, then start on every
// registered object. No start hook runs before every awake hook has.
func (s *State) AwakeAll() {
	objs := s.Objects()
	for _, o := range objs {
		o.awake()
	}
	for _, o := range objs {
		o.start()
	}
}

// UpdateAll runs OnUpdate on every live object in registration order.
// Objects registered during the pass wait for the next tick.
func (s *State) UpdateAll(dt float64) {
	for _, o := range s.Objects() {
		if _, live := s.byID[o.id]; !live {
			continue
		}
		o.update(dt)
	}
}
