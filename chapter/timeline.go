// Package chapter discovers chapter boundaries on a watch page and finds the boundaries around
// the playhead for chapter-granular skipping.
package chapter

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// MinBoundaries is the smallest number of distinct timestamps a source must yield to count as a
// chapter list. Shorter lists are incidental links, not chapters.
const MinBoundaries = 3

// Hysteresis is how far, in seconds, the playhead must be past a boundary before "previous"
// targets it rather than the one before.
const Hysteresis = 3.0

// Timeline is a strictly ascending list of chapter starts in seconds.
type Timeline []int

// Normalize sorts ts ascending and drops duplicates and negative values.
func Normalize(ts []int) Timeline {
	kept := lo.Filter(ts, func(t int, _ int) bool { return t >= 0 })
	slices.Sort(kept)
	return Timeline(slices.Compact(kept))
}

// Valid reports whether t has enough boundaries to be used.
func (t Timeline) Valid() bool {
	return len(t) >= MinBoundaries
}

// Nearest holds the boundaries a previous/next action would seek to.
type Nearest struct {
	Previous mo.Option[int]
	Next     mo.Option[int]
}

// Find computes the boundaries around pos. Next is the first boundary strictly after pos.
// Previous is the latest boundary before it that pos has moved more than Hysteresis past.
func (t Timeline) Find(pos float64) Nearest {
	n := Nearest{Previous: mo.None[int](), Next: mo.None[int]()}

	for _, b := range t {
		if float64(b) > pos {
			n.Next = mo.Some(b)
			break
		}
		if pos-float64(b) > Hysteresis {
			n.Previous = mo.Some(b)
		}
	}
	return n
}
