package data

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/embedsim/simcore/internal/core/ecs"
)

var (
	ErrUnknownKind = errors.New("unknown component kind")
	ErrBadRange    = errors.New("invalid range")
	ErrDuplicate   = errors.New("duplicate archetype")
)

// TargetRandom makes a target_follow point at a random object spawned
// earlier in the same population.
const TargetRandom = "random"

//go:embed archetypes.yaml
var defaultArchetypes []byte

// Range is a closed interval sampled uniformly. In YAML it is either a
// scalar (fixed value) or a two-element sequence [min, max].
type Range struct {
	Min float64
	Max float64
}

func (r *Range) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := n.Decode(&v); err != nil {
			return err
		}
		r.Min, r.Max = v, v
		return nil
	case yaml.SequenceNode:
		var vs []float64
		if err := n.Decode(&vs); err != nil {
			return err
		}
		if len(vs) != 2 {
			return fmt.Errorf("line %d: want [min, max], got %d values: %w", n.Line, len(vs), ErrBadRange)
		}
		r.Min, r.Max = vs[0], vs[1]
		return nil
	}
	return fmt.Errorf("line %d: want scalar or [min, max]: %w", n.Line, ErrBadRange)
}

// Fixed reports whether the range holds a single value.
func (r Range) Fixed() bool { return r.Min == r.Max }

func (r Range) valid() bool { return r.Min <= r.Max && r.Min >= 0 }

// ComponentSpec describes one component to attach. Only the fields that
// make sense for Kind are read.
type ComponentSpec struct {
	KindName string `yaml:"kind"`
	Speed    Range  `yaml:"speed"`    // random_walk, target_follow
	Distance Range  `yaml:"distance"` // random_walk
	Radius   Range  `yaml:"radius"`   // sphere_collider
	Target   string `yaml:"target"`   // target_follow: "" or "random"

	Kind ecs.Kind `yaml:"-"`
}

// Archetype is a spawn template: Count objects sharing a tag and a
// component list, scattered uniformly within Spread of the origin on XY.
type Archetype struct {
	Name       string          `yaml:"name"`
	Tag        string          `yaml:"tag"`
	Count      int             `yaml:"count"`
	Spread     float64         `yaml:"spread"`
	Components []ComponentSpec `yaml:"components"`
}

type archetypeFile struct {
	Archetypes []Archetype `yaml:"archetypes"`
}

// ArchetypeTable holds archetypes in file order; spawn order follows it.
type ArchetypeTable struct {
	list   []*Archetype
	byName map[string]*Archetype
}

// LoadArchetypeTable loads archetypes from a YAML file.
func LoadArchetypeTable(path string) (*ArchetypeTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read archetypes: %w", err)
	}
	t, err := ParseArchetypeTable(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// DefaultArchetypeTable returns the built-in population: enemies, walkers
// and followers.
func DefaultArchetypeTable() *ArchetypeTable {
	t, err := ParseArchetypeTable(defaultArchetypes)
	if err != nil {
		panic(fmt.Sprintf("embedded archetypes: %v", err))
	}
	return t
}

// ParseArchetypeTable decodes and validates an archetype document.
func ParseArchetypeTable(raw []byte) (*ArchetypeTable, error) {
	var f archetypeFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse archetypes: %w", err)
	}
	t := &ArchetypeTable{
		list:   make([]*Archetype, 0, len(f.Archetypes)),
		byName: make(map[string]*Archetype, len(f.Archetypes)),
	}
	for i := range f.Archetypes {
		a := &f.Archetypes[i]
		if err := a.validate(); err != nil {
			return nil, fmt.Errorf("archetype %q: %w", a.Name, err)
		}
		if _, dup := t.byName[a.Name]; dup {
			return nil, fmt.Errorf("archetype %q: %w", a.Name, ErrDuplicate)
		}
		t.list = append(t.list, a)
		t.byName[a.Name] = a
	}
	return t, nil
}

func (a *Archetype) validate() error {
	if a.Count < 0 {
		return fmt.Errorf("count %d: %w", a.Count, ErrBadRange)
	}
	if a.Spread < 0 {
		return fmt.Errorf("spread %g: %w", a.Spread, ErrBadRange)
	}
	for i := range a.Components {
		c := &a.Components[i]
		k, ok := ecs.ParseKind(c.KindName)
		if !ok {
			return fmt.Errorf("%q: %w", c.KindName, ErrUnknownKind)
		}
		c.Kind = k
		ranges := [...]struct {
			name string
			r    Range
		}{{"speed", c.Speed}, {"distance", c.Distance}, {"radius", c.Radius}}
		for _, f := range ranges {
			if !f.r.valid() {
				return fmt.Errorf("%s %s [%g, %g]: %w", c.KindName, f.name, f.r.Min, f.r.Max, ErrBadRange)
			}
		}
		if c.Target != "" && c.Target != TargetRandom {
			return fmt.Errorf("%s target %q: %w", c.KindName, c.Target, ErrBadRange)
		}
	}
	return nil
}

// All returns the archetypes in file order.
func (t *ArchetypeTable) All() []*Archetype { return t.list }

// Get returns an archetype by name, or nil if not found.
func (t *ArchetypeTable) Get(name string) *Archetype {
	return t.byName[name]
}

// Count returns the number of archetypes.
func (t *ArchetypeTable) Count() int { return len(t.list) }

// Population returns how many objects the table spawns in total.
func (t *ArchetypeTable) Population() int {
	n := 0
	for _, a := range t.list {
		n += a.Count
	}
	return n
}
