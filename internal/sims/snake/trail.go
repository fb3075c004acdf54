package snake

import "glyph-snake/internal/core"

type trailKey struct {
	oldDx, oldDy, newDx, newDy int
}

// trailTable maps the direction the head left a cell with and the direction
// it is moving now onto the body glyph left behind. Rows grow downward.
var trailTable = map[trailKey]Symbol{
	{1, 0, 1, 0}:   Body(Horizontal),
	{-1, 0, -1, 0}: Body(Horizontal),
	{0, 1, 0, 1}:   Body(Vertical),
	{0, -1, 0, -1}: Body(Vertical),

	{-1, 0, 0, -1}: Body(LeftToUp),
	{0, 1, 1, 0}:   Body(LeftToUp),
	{1, 0, 0, 1}:   Body(RightToDown),
	{0, -1, -1, 0}: Body(RightToDown),
	{-1, 0, 0, 1}:  Body(LeftToDown),
	{0, -1, 1, 0}:  Body(LeftToDown),
	{1, 0, 0, -1}:  Body(RightToUp),
	{0, 1, -1, 0}:  Body(RightToUp),
}

// ChooseTrail returns the glyph for the cell the head just vacated. A pair
// of displacements that no legal move produces yields StartMarker.
func ChooseTrail(prev, next core.Point) Symbol {
	if s, ok := trailTable[trailKey{prev.X, prev.Y, next.X, next.Y}]; ok {
		return s
	}
	return StartMarker
}

// Connects reports whether a body segment with trail t has an opening
// towards d.
func (t Trail) Connects(d core.Point) bool {
	switch t {
	case Horizontal:
		return d == left || d == right
	case Vertical:
		return d == up || d == down
	case RightToUp:
		return d == left || d == up
	case LeftToUp:
		return d == right || d == up
	case RightToDown:
		return d == left || d == down
	case LeftToDown:
		return d == right || d == down
	}
	return false
}
