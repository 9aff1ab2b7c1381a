package ecs

// Kind identifies a component variant. The set is closed: lookups on an
// entity go through a Kind instead of runtime type inspection.
type Kind uint8

const (
	KindNone Kind = iota
	KindSphereCollider
	KindRandomWalk
	KindTargetFollow
	KindEnemyAI

	// KindCustom is the first value free for components defined outside
	// the built-in set (test probes, experiment-specific behaviours).
	KindCustom Kind = 64
)

var kindNames = map[Kind]string{
	KindNone:           "none",
	KindSphereCollider: "sphere_collider",
	KindRandomWalk:     "random_walk",
	KindTargetFollow:   "target_follow",
	KindEnemyAI:        "enemy_ai",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "custom"
}

// ParseKind maps a name as used in data files back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name && k != KindNone {
			return k, true
		}
	}
	return KindNone, false
}
