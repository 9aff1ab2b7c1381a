package game

import (
	"time"

	"github.com/embedsim/simcore/internal/core/ecs"
	"github.com/embedsim/simcore/internal/world"
)

type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestManager() (*Manager, *fakeClock) {
	clk := newFakeClock()
	return New(nil, WithClock(clk.Now)), clk
}

// recorder logs every hook as "<name>:<hook>[:other]".
type recorder struct {
	world.Base
	name     string
	log      *[]string
	onUpdate func(s *world.State)
}

func newRecorder(name string, log *[]string) *recorder {
	return &recorder{name: name, log: log}
}

func (r *recorder) Kind() ecs.Kind { return ecs.KindCustom }

func (r *recorder) rec(ev string) { *r.log = append(*r.log, r.name+":"+ev) }

func (r *recorder) OnAwake(*world.State)   { r.rec("awake") }
func (r *recorder) OnStart(*world.State)   { r.rec("start") }
func (r *recorder) OnDestroy(*world.State) { r.rec("destroy") }

func (r *recorder) OnUpdate(s *world.State, _ float64) {
	r.rec("update")
	if r.onUpdate != nil {
		r.onUpdate(s)
	}
}

func (r *recorder) OnCollisionEnter(_ *world.State, o *world.Object) { r.rec("enter:" + o.Name) }
func (r *recorder) OnCollisionStay(_ *world.State, o *world.Object)  { r.rec("stay:" + o.Name) }
func (r *recorder) OnCollisionExit(_ *world.State, o *world.Object)  { r.rec("exit:" + o.Name) }

func count(log []string, ev string) int {
	n := 0
	for _, e := range log {
		if e == ev {
			n++
		}
	}
	return n
}

type constRand float64

func (r constRand) Float64() float64 { return float64(r) }
