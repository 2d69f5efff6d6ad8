package export

import (
	"fmt"
	"io"
	"math"

	"github.com/ndehigampala97/sawmc/chain"
	"github.com/ndehigampala97/sawmc/lattice"
)

// xyzElement is the placeholder element label written for every bead.
const xyzElement = "C"

// XYZWriter emits multi-frame XYZ trajectories to an io.Writer.
// The zero value is not usable; construct with NewXYZWriter.
type XYZWriter struct {
	w        io.Writer
	recenter bool
}

// NewXYZWriter returns a trajectory writer. With recenter set, each frame
// is rigidly shifted so its centroid rounds to the origin — useful for
// viewers, irrelevant to observables.
func NewXYZWriter(w io.Writer, recenter bool) *XYZWriter {
	return &XYZWriter{w: w, recenter: recenter}
}

// WriteFrame appends one XYZ frame for ch, labeled with the step index.
// Complexity: O(N).
func (x *XYZWriter) WriteFrame(step int, ch *chain.Chain) error {
	view := ch
	if x.recenter {
		view = recentered(ch)
	}

	n := view.Len()
	if _, err := fmt.Fprintf(x.w, "%d\nFrame %d\n", n, step); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		p := view.At(i)
		if _, err := fmt.Fprintf(x.w, "%s %.3f %.3f 0.000\n", xyzElement, float64(p.X), float64(p.Y)); err != nil {
			return err
		}
	}

	return nil
}

// recentered returns ch shifted so its centroid rounds to (0,0).
// Integer shift keeps the configuration on-lattice.
func recentered(ch *chain.Chain) *chain.Chain {
	n := ch.Len()
	var sx, sy float64
	for i := 0; i < n; i++ {
		p := ch.At(i)
		sx += float64(p.X)
		sy += float64(p.Y)
	}
	shift := lattice.Point{
		X: -int(math.Round(sx / float64(n))),
		Y: -int(math.Round(sy / float64(n))),
	}

	return ch.Translate(shift)
}
