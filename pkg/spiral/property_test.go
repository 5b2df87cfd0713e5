package spiral

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestSpiralRings_PropertyBased verifies, for random centers and distances,
// that every walker produces each point of its first maxDistance rings
// exactly once, that Ring() matches the metric distance of every produced
// point, and that rings never decrease.
func TestSpiralRings_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	registry := NewRegistry[int32]()
	for _, name := range registry.List() {
		metric, _ := registry.Metric(name)
		properties.Property(name+" covers its rings exactly once", prop.ForAll(
			func(cx, cy, m int32) bool {
				it := registry.MustCreate(name, cx, cy, m)
				seen := make(map[Point[int32]]struct{})
				var previous int32
				for p := range All(it) {
					ring := it.Ring()
					if ring < previous || ring >= m {
						t.Logf("%s: ring %d after %d (max %d)", name, ring, previous, m)
						return false
					}
					if got := metric.Ring(int64(p.X-cx), int64(p.Y-cy)); got != uint64(ring) {
						t.Logf("%s: point %v has distance %d, cursor ring %d", name, p, got, ring)
						return false
					}
					if _, dup := seen[p]; dup {
						t.Logf("%s: point %v produced twice", name, p)
						return false
					}
					seen[p] = struct{}{}
					previous = ring
				}
				return uint64(len(seen)) == Size(metric, uint64(m))
			},
			gen.Int32Range(-1000, 1000),
			gen.Int32Range(-1000, 1000),
			gen.Int32Range(1, 25),
		))
	}

	properties.TestingRun(t)
}

// TestEuclideanStrategies_PropertyBased verifies that the table and the
// incremental Euclidean walkers produce identical sequences, and that the
// squared distance never decreases inside a ring.
func TestEuclideanStrategies_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("table and incremental walkers agree", prop.ForAll(
		func(cx, cy int64, m int64) bool {
			table, err := NewEuclidean(cx, cy, m)
			if err != nil {
				return false
			}
			incremental, err := NewEuclideanIncremental(cx, cy, m)
			if err != nil {
				return false
			}

			var ring, previous int64 = 0, -1
			for {
				a, okA := table.Next()
				b, okB := incremental.Next()
				if okA != okB || a != b || table.Ring() != incremental.Ring() {
					t.Logf("divergence at %v / %v", a, b)
					return false
				}
				if !okA {
					return ring == m-1
				}
				if table.Ring() != ring {
					ring, previous = table.Ring(), -1
				}
				dx, dy := a.X-cx, a.Y-cy
				d2 := dx*dx + dy*dy
				if d2 < previous {
					return false
				}
				previous = d2
			}
		},
		gen.Int64Range(-1<<40, 1<<40),
		gen.Int64Range(-1<<40, 1<<40),
		gen.Int64Range(1, 60),
	))

	properties.TestingRun(t)
}
