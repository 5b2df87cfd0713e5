package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/agbru/spiral/internal/render"
	"github.com/agbru/spiral/internal/ui"
)

// WalkOutput carries what the display functions need to know about one
// finished walk.
type WalkOutput struct {
	Walker string
	X, Y   int64
	Max    int64
	Count  uint64
	Digest uint64
	Visits []render.Visit
}

func (w WalkOutput) title() string {
	return fmt.Sprintf("%s%s%s around (%d,%d), max %d: %s%s%s points",
		ui.ColorBold(), w.Walker, ui.ColorReset(), w.X, w.Y, w.Max,
		ui.ColorBlue(), formatNumber(w.Count), ui.ColorReset())
}

// DisplayGrid prints a titled grid of the walk's visit order.
func DisplayGrid(out io.Writer, w WalkOutput) error {
	fmt.Fprintf(out, "\n%s\n", w.title())
	return render.NewGrid(w.Visits).Write(out, ui.GetCurrentTheme())
}

// DisplayList prints one line per visit: index, point and ring.
func DisplayList(out io.Writer, w WalkOutput) {
	fmt.Fprintf(out, "\n%s\n", w.title())
	for i, v := range w.Visits {
		fmt.Fprintf(out, "%6d  (%d,%d)  ring %d\n", i+1, v.X, v.Y, v.Ring)
	}
}

// DisplayCount prints the one-line summary used in quiet count mode.
func DisplayCount(out io.Writer, w WalkOutput) {
	fmt.Fprintf(out, "%s %d %016x\n", w.Walker, w.Count, w.Digest)
}

// jsonWalk is the JSON form of one walk.
type jsonWalk struct {
	Walker string     `json:"walker"`
	X      int64      `json:"x"`
	Y      int64      `json:"y"`
	Max    int64      `json:"max"`
	Count  uint64     `json:"count"`
	Digest string     `json:"digest"`
	Points [][3]int64 `json:"points,omitempty"`
	Error  string     `json:"error,omitempty"`
}

// WriteJSON encodes the walks as a JSON array. Each point is written as
// [x, y, ring]. errs[i], when non-nil, is reported instead of walk i.
//
// Parameters:
//   - out: The destination writer.
//   - walks: The walks to encode.
//   - errs: Per-walk errors, parallel to walks (may be nil).
//
// Returns:
//   - error: An encoding or write error.
func WriteJSON(out io.Writer, walks []WalkOutput, errs []error) error {
	doc := make([]jsonWalk, len(walks))
	for i, w := range walks {
		jw := jsonWalk{Walker: w.Walker, X: w.X, Y: w.Y, Max: w.Max}
		if i < len(errs) && errs[i] != nil {
			jw.Error = errs[i].Error()
		} else {
			jw.Count = w.Count
			jw.Digest = fmt.Sprintf("%016x", w.Digest)
			jw.Points = make([][3]int64, len(w.Visits))
			for j, v := range w.Visits {
				jw.Points[j] = [3]int64{v.X, v.Y, v.Ring}
			}
		}
		doc[i] = jw
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
