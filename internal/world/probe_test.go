package world

import (
	"fmt"

	"github.com/embedsim/simcore/internal/core/ecs"
)

const kindProbe = ecs.KindCustom

// probe records every hook call as "<name>:<hook>[:other]".
type probe struct {
	Base
	name string
	log  *[]string
	// optional reactions
	onAwake   func(s *State)
	onStart   func(s *State)
	onUpdate  func(s *State)
	onDestroy func(s *State)
}

func newProbe(name string, log *[]string) *probe {
	return &probe{name: name, log: log}
}

func (p *probe) Kind() ecs.Kind { return kindProbe }

func (p *probe) rec(ev string) { *p.log = append(*p.log, p.name+":"+ev) }

func (p *probe) OnAwake(s *State) {
	p.rec("awake")
	if p.onAwake != nil {
		p.onAwake(s)
	}
}

func (p *probe) OnStart(s *State) {
	p.rec("start")
	if p.onStart != nil {
		p.onStart(s)
	}
}

func (p *probe) OnUpdate(s *State, dt float64) {
	p.rec(fmt.Sprintf("update(%g)", dt))
	if p.onUpdate != nil {
		p.onUpdate(s)
	}
}

func (p *probe) OnDestroy(s *State) {
	p.rec("destroy")
	if p.onDestroy != nil {
		p.onDestroy(s)
	}
}

func (p *probe) OnCollisionEnter(_ *State, other *Object) { p.rec("enter:" + other.Name) }
func (p *probe) OnCollisionStay(_ *State, other *Object)  { p.rec("stay:" + other.Name) }
func (p *probe) OnCollisionExit(_ *State, other *Object)  { p.rec("exit:" + other.Name) }

// sphere is a minimal collider.
type sphere struct {
	Base
	r float64
}

func (c *sphere) Kind() ecs.Kind  { return ecs.KindSphereCollider }
func (c *sphere) Radius() float64 { return c.r }

func count(log []string, ev string) int {
	n := 0
	for _, e := range log {
		if e == ev {
			n++
		}
	}
	return n
}
