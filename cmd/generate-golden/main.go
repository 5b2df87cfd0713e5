package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// GoldenData represents a single spiral in the golden file.
type GoldenData struct {
	Metric string   `json:"metric"`
	X      int64    `json:"x"`
	Y      int64    `json:"y"`
	Max    int64    `json:"max"`
	Points []string `json:"points"`
}

func main() {
	outputDir := flag.String("out", "pkg/spiral/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "spiral_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	// A mix of centered, offset and degenerate spirals per metric.
	targets := []GoldenData{
		{Metric: "chebyshev", X: 0, Y: 0, Max: 3},
		{Metric: "chebyshev", X: -3, Y: 4, Max: 4},
		{Metric: "chebyshev", X: 100, Y: -100, Max: 1},
		{Metric: "manhattan", X: 2, Y: 2, Max: 3},
		{Metric: "manhattan", X: -5, Y: 7, Max: 4},
		{Metric: "euclidean", X: 0, Y: 0, Max: 4},
		{Metric: "euclidean", X: 10, Y: -3, Max: 3},
		{Metric: "euclidean", X: 0, Y: 0, Max: 6},
	}

	fmt.Println("Generating golden data...")

	for i := range targets {
		tc := &targets[i]
		for _, o := range oracle(tc.Metric, tc.Max) {
			tc.Points = append(tc.Points, fmt.Sprintf("(%d,%d)", tc.X+o.dx, tc.Y+o.dy))
		}
		fmt.Printf("Generated %s(%d,%d) max %d: %d points\n", tc.Metric, tc.X, tc.Y, tc.Max, len(tc.Points))
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(targets); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s\n", filename)
}

type offset struct {
	dx, dy int64
	key    [4]int64
}

// oracle enumerates every offset of the bounding box, keeps those whose
// ring is below maxDistance and sorts them by a closed-form position key.
// It serves as the brute-force reference for the walkers.
func oracle(metric string, maxDistance int64) []offset {
	var out []offset
	for dx := -maxDistance; dx <= maxDistance; dx++ {
		for dy := -maxDistance; dy <= maxDistance; dy++ {
			var key [4]int64
			switch metric {
			case "chebyshev":
				key = chebyshevKey(dx, dy)
			case "manhattan":
				key = manhattanKey(dx, dy)
			default:
				key = euclideanKey(dx, dy)
			}
			if key[0] < maxDistance {
				out = append(out, offset{dx: dx, dy: dy, key: key})
			}
		}
	}
	slices.SortFunc(out, func(a, b offset) int {
		return slices.Compare(a.key[:], b.key[:])
	})
	return out
}

// chebyshevKey ranks a point by ring, then by its position on the ring
// perimeter starting just above the bottom-right corner, counter-clockwise.
func chebyshevKey(dx, dy int64) [4]int64 {
	r := max(abs(dx), abs(dy))
	switch {
	case r == 0:
		return [4]int64{}
	case dx == r && dy > -r:
		return [4]int64{r, dy + r - 1}
	case dy == r:
		return [4]int64{r, 2*r + (r - 1 - dx)}
	case dx == -r:
		return [4]int64{r, 4*r + (r - 1 - dy)}
	default:
		return [4]int64{r, 6*r + (dx + r - 1)}
	}
}

// manhattanKey ranks a point by ring, then by its position on the diamond
// starting at (r, 0), counter-clockwise.
func manhattanKey(dx, dy int64) [4]int64 {
	r := abs(dx) + abs(dy)
	switch {
	case r == 0:
		return [4]int64{}
	case dx > 0 && dy >= 0:
		return [4]int64{r, dy}
	case dx <= 0 && dy > 0:
		return [4]int64{r, r - dx}
	case dx < 0:
		return [4]int64{r, 2*r - dy}
	default:
		return [4]int64{r, 3*r + dx}
	}
}

// euclideanKey ranks a point by its octant row max(|dx|,|dy|), then by the
// smaller absolute coordinate and finally by the first reflection of the
// canonical point that lands on it.
func euclideanKey(dx, dy int64) [4]int64 {
	a, b := min(abs(dx), abs(dy)), max(abs(dx), abs(dy))
	reflections := [8][2]int64{
		{a, b}, {a, -b}, {-a, b}, {-a, -b},
		{b, a}, {b, -a}, {-b, a}, {-b, -a},
	}
	index := slices.IndexFunc(reflections[:], func(p [2]int64) bool {
		return p[0] == dx && p[1] == dy
	})
	return [4]int64{b, a, int64(index)}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
