// Package export emits simulation output in the two formats the classic
// workflow consumes: multi-frame XYZ trajectories for viewers such as
// VMD, and CSV observable series for downstream analysis.
//
// What:
//
//   - XYZWriter writes one frame per accepted configuration: a bead-count
//     line, a "Frame <step>" comment, then one "C x y 0.000" line per
//     bead (2D coordinates with a zero z so 3D viewers load them).
//     Recentering shifts each frame's centroid near the origin for
//     viewing only; the physics is untouched.
//   - CSVWriter writes the header "step,R,Rg,contacts" and one row per
//     observable record.
//
// Both writers wrap a caller-owned io.Writer and report I/O failure as
// ordinary errors; they never buffer frames across calls except through
// CSVWriter's Flush, which mirrors encoding/csv.
package export
