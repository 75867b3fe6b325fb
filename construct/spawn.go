// Package construct - spawn.go implements the point-spawning rule: after a
// placement is accepted, ten candidate points are derived from its corner
// geometry and the set of already-placed rectangles in the container (see
// SPEC_FULL.md §4.3 for the full rationale of each class).
package construct

import (
	"github.com/AlkiviadisAleiferis/hyperpack/model"
	"github.com/AlkiviadisAleiferis/hyperpack/points"
)

// spawned is one candidate point tagged with its destination class.
type spawned struct {
	class points.Class
	x, y  int
}

// projectDown returns the y-coordinate of the top edge of the highest
// rectangle among placed that spans column x and whose top edge lies at or
// below yStart (i.e. is a legitimate support). Falls back to 0 (the
// container floor) when no such rectangle exists.
func projectDown(placed []model.Placement, x, yStart int) int {
	best := 0
	found := false
	var r model.Placement
	for _, r = range placed {
		if x < r.X || x >= r.X+r.W {
			continue
		}
		top := r.Y + r.L
		if top > yStart {
			continue
		}
		if !found || top > best {
			best = top
			found = true
		}
	}

	return best
}

// projectLeft returns the x-coordinate of the right edge of the rightmost
// rectangle among placed that spans row y and whose right edge lies at or
// left of xStart. Falls back to 0 (the container's left wall).
func projectLeft(placed []model.Placement, xStart, y int) int {
	best := 0
	found := false
	var r model.Placement
	for _, r = range placed {
		if y < r.Y || y >= r.Y+r.L {
			continue
		}
		right := r.X + r.W
		if right > xStart {
			continue
		}
		if !found || right > best {
			best = right
			found = true
		}
	}

	return best
}

// projectUp returns the y-coordinate of the bottom edge of the lowest
// rectangle among placed that spans column x and whose bottom edge lies at
// or above yStart. Falls back to ceiling (the container's top wall).
func projectUp(placed []model.Placement, x, yStart, ceiling int) int {
	best := ceiling
	found := false
	var r model.Placement
	for _, r = range placed {
		if x < r.X || x >= r.X+r.W {
			continue
		}
		if r.Y < yStart {
			continue
		}
		if !found || r.Y < best {
			best = r.Y
			found = true
		}
	}

	return best
}

// projectRight returns the x-coordinate of the left edge of the leftmost
// rectangle among placed that spans row y and whose left edge lies at or
// right of xStart. Falls back to wall (the container's right wall).
func projectRight(placed []model.Placement, xStart, y, wall int) int {
	best := wall
	found := false
	var r model.Placement
	for _, r = range placed {
		if y < r.Y || y >= r.Y+r.L {
			continue
		}
		if r.X < xStart {
			continue
		}
		if !found || r.X < best {
			best = r.X
			found = true
		}
	}

	return best
}

// spawnPoints derives the ten candidate points for placement r, given the
// full set of already-placed rectangles in the container (r included) and
// the container's dimensions. Points outside [0,W]x[0,L] are omitted by the
// caller (pushSpawnedPoints), not here.
func spawnPoints(r model.Placement, containerW, containerL int, placed []model.Placement) [10]spawned {
	ax, ay := r.X+r.W, r.Y
	bx, by := r.X, r.Y+r.L
	cx, cy := r.X+r.W, r.Y+r.L

	return [10]spawned{
		{class: points.ClassA, x: ax, y: ay},
		{class: points.ClassB, x: bx, y: by},
		{class: points.ClassAPrime, x: ax, y: projectDown(placed, ax, ay)},
		{class: points.ClassBPrime, x: projectLeft(placed, bx, by), y: by},
		{class: points.ClassADouble, x: ax, y: projectUp(placed, ax, ay, containerL)},
		{class: points.ClassBDouble, x: projectRight(placed, bx, by, containerW), y: by},
		{class: points.ClassC, x: cx, y: cy},
		{class: points.ClassD, x: r.X, y: r.Y},
		{class: points.ClassE, x: cx, y: projectDown(placed, cx, cy)},
		{class: points.ClassF, x: projectLeft(placed, cx, cy), y: cy},
	}
}
