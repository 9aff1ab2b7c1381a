package game

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/embedsim/simcore/internal/component"
	"github.com/embedsim/simcore/internal/core/ecs"
	"github.com/embedsim/simcore/internal/data"
	"github.com/embedsim/simcore/internal/world"
)

// Populate spawns every archetype of tbl into m, in table order. Objects get
// default names, a position scattered within the archetype's spread on the
// XY plane, and their components attached in listed order. A follower whose
// target is "random" picks among the objects spawned before it by this call,
// other random followers excluded.
func Populate(m *Manager, tbl *data.ArchetypeTable, rng component.Rand) ([]*world.Object, error) {
	if tbl == nil {
		return nil, errors.New("populate: nil archetype table")
	}
	spawned := make([]*world.Object, 0, tbl.Population())
	targets := make([]*world.Object, 0, tbl.Population())
	for _, a := range tbl.All() {
		follower := followsRandom(a)
		for i := 0; i < a.Count; i++ {
			comps, err := build(a, rng, targets)
			if err != nil {
				return spawned, fmt.Errorf("populate %s: %w", a.Name, err)
			}
			o := m.NewObject("", a.Tag)
			o.SetPosition(component.InsideUnitCircle(rng).Scale(a.Spread))
			for _, c := range comps {
				o.AddComponent(c)
			}
			spawned = append(spawned, o)
			if !follower {
				targets = append(targets, o)
			}
		}
		m.log.Debug("archetype spawned", zap.String("archetype", a.Name), zap.Int("count", a.Count))
	}
	m.log.Info("population spawned", zap.Int("objects", len(spawned)), zap.Int("archetypes", tbl.Count()))
	return spawned, nil
}

func followsRandom(a *data.Archetype) bool {
	for i := range a.Components {
		if a.Components[i].Target == data.TargetRandom {
			return true
		}
	}
	return false
}

func build(a *data.Archetype, rng component.Rand, earlier []*world.Object) ([]world.Component, error) {
	out := make([]world.Component, 0, len(a.Components))
	for i := range a.Components {
		spec := &a.Components[i]
		kind := spec.Kind
		if kind == ecs.KindNone {
			var ok bool
			if kind, ok = ecs.ParseKind(spec.KindName); !ok {
				return nil, fmt.Errorf("%q: %w", spec.KindName, data.ErrUnknownKind)
			}
		}
		switch kind {
		case ecs.KindSphereCollider:
			out = append(out, component.NewSphereCollider(sample(rng, spec.Radius)))
		case ecs.KindRandomWalk:
			out = append(out, component.NewRandomWalk(sample(rng, spec.Speed), sample(rng, spec.Distance), rng))
		case ecs.KindTargetFollow:
			target := ecs.NoEntity
			if spec.Target == data.TargetRandom && len(earlier) > 0 {
				idx := int(rng.Float64() * float64(len(earlier)))
				if idx == len(earlier) {
					idx--
				}
				target = earlier[idx].ID()
			}
			out = append(out, component.NewTargetFollow(target, sample(rng, spec.Speed)))
		case ecs.KindEnemyAI:
			out = append(out, component.NewEnemyAI())
		default:
			return nil, fmt.Errorf("%s: %w", kind, data.ErrUnknownKind)
		}
	}
	return out, nil
}

func sample(rng component.Rand, r data.Range) float64 {
	if r.Fixed() {
		return r.Min
	}
	return component.Range(rng, r.Min, r.Max)
}
