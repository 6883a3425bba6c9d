/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package guide

// Stateless snapping algorithms over guide collections. All functions take
// the relevant guide slice(s) and an explicit tolerance; the Layer wraps
// them with its own store and tolerance.
//
// Tolerance convention: the boundary is inclusive. A point exactly
// `tolerance` away from a guide still snaps; the first strictly greater
// distance does not.

import (
	"math"

	"guidekit/internal/geom"
)

// SnapResult reports the outcome of a multi-point snap: the translation
// to apply and which guide, if any, matched on each axis. A nil guide
// means no match on that axis and a zero offset component.
type SnapResult struct {
	Offset            geom.Size
	MatchedVertical   *Guide
	MatchedHorizontal *Guide
}

// Nearest returns the guide in gs closest to pos, provided its distance
// is within tol (inclusive); nil otherwise. When two guides are
// equidistant the one encountered first in iteration order wins.
func Nearest(gs []*Guide, pos, tol float64) *Guide {
	var best *Guide
	bestDist := math.Inf(1)
	for _, g := range gs {
		if d := math.Abs(g.Position - pos); d < bestDist {
			best = g
			bestDist = d
		}
	}
	if best == nil || bestDist > tol {
		return nil
	}
	return best
}

// SnapPoint snaps p against the vertical guides on X and the horizontal
// guides on Y, independently. Either, both or neither coordinate may move.
func SnapPoint(vertical, horizontal []*Guide, p geom.Pt, tol float64) geom.Pt {
	if g := Nearest(vertical, p.X, tol); g != nil {
		p.X = g.Position
	}
	if g := Nearest(horizontal, p.Y, tol); g != nil {
		p.Y = g.Position
	}
	return p
}

// SnapPoints derives a single (dx, dy) translation for an arbitrary point
// set: per axis, the first point in order whose coordinate snaps supplies
// that axis's offset and the remaining points are ignored for it. The two
// axes may therefore derive their offset from different points. Axes with
// no match contribute a zero offset. Intended for snapping an irregular
// shape's control points by translating the whole set.
func SnapPoints(vertical, horizontal []*Guide, pts []geom.Pt, tol float64) SnapResult {
	var res SnapResult
	for _, p := range pts {
		if res.MatchedVertical == nil {
			if g := Nearest(vertical, p.X, tol); g != nil {
				res.MatchedVertical = g
				res.Offset.W = g.Position - p.X
			}
		}
		if res.MatchedHorizontal == nil {
			if g := Nearest(horizontal, p.Y, tol); g != nil {
				res.MatchedHorizontal = g
				res.Offset.H = g.Position - p.Y
			}
		}
		if res.MatchedVertical != nil && res.MatchedHorizontal != nil {
			break
		}
	}
	return res
}

// SnapRect snaps r's corners, plus its edge midpoints when includeCentres
// is set, and shifts the origin by the first-match offset per axis. The
// size never changes.
func SnapRect(vertical, horizontal []*Guide, r geom.Rect, tol float64, includeCentres bool) geom.Rect {
	res := SnapPoints(vertical, horizontal, rectSnapCandidates(r, includeCentres), tol)
	return r.Offset(res.Offset.W, res.Offset.H)
}

// rectSnapCandidates enumerates the snap candidate points of a rect in a
// fixed order: corners clockwise from top-left, then edge midpoints
// (top, right, bottom, left).
func rectSnapCandidates(r geom.Rect, includeCentres bool) []geom.Pt {
	pts := []geom.Pt{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
	if includeCentres {
		pts = append(pts,
			geom.Pt{X: r.X + r.Width/2, Y: r.Y},
			geom.Pt{X: r.X + r.Width, Y: r.Y + r.Height/2},
			geom.Pt{X: r.X + r.Width/2, Y: r.Y + r.Height},
			geom.Pt{X: r.X, Y: r.Y + r.Height/2},
		)
	}
	return pts
}
