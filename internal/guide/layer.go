/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package guide

import (
	"github.com/google/uuid"

	"guidekit/internal/geom"
)

// DefaultSnapTolerance is the process-wide default snap distance in
// drawing units. Settings read it once when built; changing it later does
// not affect existing layers.
var DefaultSnapTolerance = 6.0

// guideRectEpsilon is the half-width of the strip a guide occupies for
// redraw purposes.
const guideRectEpsilon = 1.0

// Settings carries the per-layer configuration a Layer is built with.
type Settings struct {
	SnapTolerance float64
	GuideColour   Color
	SnapToGrid    bool
	ShowDragInfo  bool
}

// DefaultSettings returns the stock configuration: the process-wide snap
// tolerance, the default guide colour, no grid snapping, drag info shown.
func DefaultSettings() Settings {
	return Settings{
		SnapTolerance: DefaultSnapTolerance,
		GuideColour:   DefaultColour,
		ShowDragInfo:  true,
	}
}

// Layer orchestrates a guide store for one drawing surface: snapping
// queries at the layer's tolerance, the interactive create/drag/commit
// lifecycle, and invalidation rects for the host's redraw requests.
//
// The layer never draws and holds no locks; the host calls it from its
// single event-handling goroutine. Two host hooks may be set after
// construction: Locked reports whether the layer is locked (create and
// clear become silent no-ops), and Invalidate receives the region to
// redraw after a guide changes. Both may be left nil.
type Layer struct {
	store  *Store
	bounds geom.Rect

	snapTolerance float64
	guideColour   Color
	deletionRect  geom.Rect

	// GuidesSnapToGrid is advisory: the host resolves grid snapping
	// itself, the layer only records the intent.
	GuidesSnapToGrid bool
	// ShowsDragInfoWindow tells the host whether to float an info window
	// while a guide is dragged.
	ShowsDragInfoWindow bool
	// GuidesDrawnInEnclosingScrollview is an advisory rendering-extent flag.
	GuidesDrawnInEnclosingScrollview bool

	Locked     func() bool
	Invalidate func(geom.Rect)

	dragID uuid.UUID
}

// NewLayer builds a guide layer for a drawing surface with the given
// bounds. The deletion rect defaults to the bounds: guides dragged
// outside the drawing are removed when the drag ends.
func NewLayer(bounds geom.Rect, s Settings) *Layer {
	if s.SnapTolerance < 0 {
		s.SnapTolerance = 0
	}
	if s.GuideColour.IsZero() {
		s.GuideColour = DefaultColour
	}
	return &Layer{
		store:               NewStore(),
		bounds:              bounds,
		snapTolerance:       s.SnapTolerance,
		guideColour:         s.GuideColour,
		deletionRect:        bounds,
		GuidesSnapToGrid:    s.SnapToGrid,
		ShowsDragInfoWindow: s.ShowDragInfo,
	}
}

// Bounds returns the drawing surface extent the layer was built for.
func (l *Layer) Bounds() geom.Rect { return l.bounds }

// SnapTolerance returns the layer's snap distance.
func (l *Layer) SnapTolerance() float64 { return l.snapTolerance }

// SetSnapTolerance updates the snap distance; negative values clamp to 0.
func (l *Layer) SetSnapTolerance(t float64) {
	if t < 0 {
		t = 0
	}
	l.snapTolerance = t
}

// GuideColour returns the colour applied to newly added guides that lack one.
func (l *Layer) GuideColour() Color { return l.guideColour }

func (l *Layer) SetGuideColour(c Color) {
	if c.IsZero() {
		c = DefaultColour
	}
	l.guideColour = c
}

// GuideDeletionRect returns the zone guides must end a drag inside to survive.
func (l *Layer) GuideDeletionRect() geom.Rect { return l.deletionRect }

func (l *Layer) SetGuideDeletionRect(r geom.Rect) { l.deletionRect = r }

// AddGuide adds g to the layer, giving it the layer's guide colour if it
// has none, and requests a redraw of its strip.
func (l *Layer) AddGuide(g *Guide) {
	if g == nil {
		return
	}
	if g.Colour.IsZero() {
		g.Colour = l.guideColour
	}
	l.store.Add(g)
	l.RefreshGuide(g)
}

// RemoveGuide removes g from the layer. Removing the guide currently
// being dragged also abandons the drag.
func (l *Layer) RemoveGuide(g *Guide) {
	if g == nil {
		return
	}
	l.RefreshGuide(g)
	l.store.Remove(g)
	if g.ID == l.dragID {
		l.dragID = uuid.Nil
	}
}

// RemoveAllGuides clears the store and requests a full redraw.
func (l *Layer) RemoveAllGuides() {
	l.store.RemoveAll()
	l.dragID = uuid.Nil
	l.invalidateAll()
}

// SetGuides replaces the entire guide set, colouring incoming guides that
// lack a colour.
func (l *Layer) SetGuides(gs []*Guide) {
	l.store.RemoveAll()
	l.dragID = uuid.Nil
	for _, g := range gs {
		if g == nil {
			continue
		}
		if g.Colour.IsZero() {
			g.Colour = l.guideColour
		}
		l.store.Add(g)
	}
	l.invalidateAll()
}

// Guides returns a snapshot of all guides, vertical first.
func (l *Layer) Guides() []*Guide { return l.store.All() }

// VerticalGuides returns a snapshot of the vertical guides.
func (l *Layer) VerticalGuides() []*Guide { return l.store.Vertical() }

// HorizontalGuides returns a snapshot of the horizontal guides.
func (l *Layer) HorizontalGuides() []*Guide { return l.store.Horizontal() }

// CreateVerticalGuideAndBeginDragging makes a vertical guide at p.X, adds
// it and marks it as the active drag guide. This is the ruler drag-off
// entry point. Returns nil without side effects when the layer is locked.
func (l *Layer) CreateVerticalGuideAndBeginDragging(p geom.Pt) *Guide {
	return l.createAndBeginDragging(Vertical, p.X)
}

// CreateHorizontalGuideAndBeginDragging makes a horizontal guide at p.Y,
// adds it and marks it as the active drag guide. Returns nil when locked.
func (l *Layer) CreateHorizontalGuideAndBeginDragging(p geom.Pt) *Guide {
	return l.createAndBeginDragging(Horizontal, p.Y)
}

func (l *Layer) createAndBeginDragging(o Orientation, pos float64) *Guide {
	if l.locked() {
		return nil
	}
	g := New(o, pos)
	l.AddGuide(g)
	l.dragID = g.ID
	return g
}

// DragGuide returns the guide currently being dragged, or nil.
func (l *Layer) DragGuide() *Guide { return l.store.ByID(l.dragID) }

// UpdateDrag moves the active drag guide to p (the coordinate matching
// its orientation), invalidating both the old and new strips. No-op when
// no drag is in progress.
func (l *Layer) UpdateDrag(p geom.Pt) {
	g := l.store.ByID(l.dragID)
	if g == nil {
		return
	}
	l.RefreshGuide(g)
	if g.Orientation == Vertical {
		g.Position = p.X
	} else {
		g.Position = p.Y
	}
	l.RefreshGuide(g)
}

// EndDrag finishes the interactive positioning of the active drag guide.
// A guide whose position falls outside the deletion rect's projection on
// its axis is removed; otherwise it stays committed in the store. The
// drag reference is cleared either way.
func (l *Layer) EndDrag() {
	g := l.store.ByID(l.dragID)
	l.dragID = uuid.Nil
	if g == nil {
		return
	}
	if !l.insideDeletionZone(g) {
		l.RemoveGuide(g)
	}
}

func (l *Layer) insideDeletionZone(g *Guide) bool {
	if g.Orientation == Vertical {
		return l.deletionRect.ContainsX(g.Position)
	}
	return l.deletionRect.ContainsY(g.Position)
}

// NearestVerticalGuideToPosition returns the closest vertical guide
// within the layer's snap tolerance of pos, or nil.
func (l *Layer) NearestVerticalGuideToPosition(pos float64) *Guide {
	return Nearest(l.store.vertical, pos, l.snapTolerance)
}

// NearestHorizontalGuideToPosition returns the closest horizontal guide
// within the layer's snap tolerance of pos, or nil.
func (l *Layer) NearestHorizontalGuideToPosition(pos float64) *Guide {
	return Nearest(l.store.horizontal, pos, l.snapTolerance)
}

// SnapPointToGuide snaps p to the nearest guides on each axis
// independently; coordinates with no guide in range pass through.
func (l *Layer) SnapPointToGuide(p geom.Pt) geom.Pt {
	return SnapPoint(l.store.vertical, l.store.horizontal, p, l.snapTolerance)
}

// SnapRectToGuide snaps r's corners (and edge midpoints when
// includingCentres is set) to the guides, moving only the origin.
func (l *Layer) SnapRectToGuide(r geom.Rect, includingCentres bool) geom.Rect {
	return SnapRect(l.store.vertical, l.store.horizontal, r, l.snapTolerance, includingCentres)
}

// SnapPointsToGuide derives the first-match translation for an arbitrary
// point set and reports which guides matched.
func (l *Layer) SnapPointsToGuide(pts []geom.Pt) SnapResult {
	return SnapPoints(l.store.vertical, l.store.horizontal, pts, l.snapTolerance)
}

// RefreshGuide asks the host to redraw the strip occupied by g.
func (l *Layer) RefreshGuide(g *Guide) {
	if g == nil || l.Invalidate == nil {
		return
	}
	l.Invalidate(l.GuideRect(g))
}

// GuideRect returns the thin rect occupied by g: a strip a small epsilon
// either side of its position, spanning the full drawing extent along the
// guide's orientation.
func (l *Layer) GuideRect(g *Guide) geom.Rect {
	if g.Orientation == Vertical {
		return geom.R(g.Position-guideRectEpsilon, l.bounds.Y, 2*guideRectEpsilon, l.bounds.Height)
	}
	return geom.R(l.bounds.X, g.Position-guideRectEpsilon, l.bounds.Width, 2*guideRectEpsilon)
}

// ClearGuides removes every guide; hooked to the host's menu action.
// Does nothing when the layer is locked.
func (l *Layer) ClearGuides() {
	if l.locked() {
		return
	}
	l.RemoveAllGuides()
}

func (l *Layer) locked() bool { return l.Locked != nil && l.Locked() }

func (l *Layer) invalidateAll() {
	if l.Invalidate != nil {
		l.Invalidate(l.bounds)
	}
}
