package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embedsim/simcore/internal/component"
	"github.com/embedsim/simcore/internal/core/ecs"
	"github.com/embedsim/simcore/internal/data"
)

func TestPopulateDefaultTable(t *testing.T) {
	m, _ := newTestManager()
	tbl := data.DefaultArchetypeTable()
	objs, err := Populate(m, tbl, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, objs, tbl.Population())
	assert.Equal(t, tbl.Population(), m.Len())

	assert.Len(t, m.FindGameObjectsWithTag(component.EnemyTag), 118)
	assert.Len(t, m.FindGameObjectsWithTag("Walker"), 121)

	first := objs[0]
	assert.Equal(t, "GameObject_0", first.Name)
	for _, k := range []ecs.Kind{ecs.KindRandomWalk, ecs.KindTargetFollow, ecs.KindSphereCollider, ecs.KindEnemyAI} {
		assert.True(t, first.HasComponent(k), k.String())
	}
	c, _ := first.GetComponent(ecs.KindSphereCollider)
	r := c.(*component.SphereCollider).Radius()
	assert.GreaterOrEqual(t, r, 2.0)
	assert.Less(t, r, 5.0)
	assert.LessOrEqual(t, first.Position().Magnitude(), 100.0)

	seen := make(map[ecs.EntityID]int, len(objs))
	for i, o := range objs {
		seen[o.ID()] = i
	}
	for _, o := range objs[118+121:] {
		c, ok := o.GetComponent(ecs.KindTargetFollow)
		require.True(t, ok)
		f := c.(*component.TargetFollow)
		require.True(t, f.HasTarget())
		assert.Less(t, seen[f.Target], 118+121, "followers only target enemies and walkers")
	}
}

func TestPopulateIsDeterministicForSeed(t *testing.T) {
	run := func() []float64 {
		m, _ := newTestManager()
		objs, err := Populate(m, data.DefaultArchetypeTable(), rand.New(rand.NewSource(99)))
		require.NoError(t, err)
		xs := make([]float64, 0, len(objs))
		for _, o := range objs {
			xs = append(xs, o.Position().X)
		}
		return xs
	}
	assert.Equal(t, run(), run())
}

func TestPopulateFollowerWithoutEarlierObjects(t *testing.T) {
	tbl, err := data.ParseArchetypeTable([]byte(`
archetypes:
  - name: lone
    count: 1
    components:
      - kind: target_follow
        speed: 1
        target: random
`))
	require.NoError(t, err)
	m, _ := newTestManager()
	objs, err := Populate(m, tbl, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	c, _ := objs[0].GetComponent(ecs.KindTargetFollow)
	assert.False(t, c.(*component.TargetFollow).HasTarget())
}

func TestPopulateNilTable(t *testing.T) {
	m, _ := newTestManager()
	_, err := Populate(m, nil, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestDefaultPopulationRuns(t *testing.T) {
	m, clk := newTestManager()
	_, err := Populate(m, data.DefaultArchetypeTable(), rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	m.StartGame()
	for i := 0; i < 120; i++ {
		clk.Advance(16 * time.Millisecond)
		m.UpdateGame()
	}
	assert.Equal(t, uint64(120), m.Ticks())
	assert.Equal(t, 118+121+86, m.Len())

	chasing := 0
	for _, o := range m.FindGameObjectsWithTag(component.EnemyTag) {
		c, _ := o.GetComponent(ecs.KindEnemyAI)
		if c.(*component.EnemyAI).Chasing() {
			chasing++
		}
	}
	assert.LessOrEqual(t, chasing, 118)
}
