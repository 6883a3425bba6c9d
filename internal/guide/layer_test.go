/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package guide

import (
	"testing"

	"guidekit/internal/geom"
)

func testLayer() *Layer {
	return NewLayer(geom.R(0, 0, 600, 400), DefaultSettings())
}

func TestNewLayerDefaults(t *testing.T) {
	l := testLayer()
	if l.SnapTolerance() != DefaultSnapTolerance {
		t.Fatalf("tolerance = %v, want %v", l.SnapTolerance(), DefaultSnapTolerance)
	}
	if !l.ShowsDragInfoWindow {
		t.Fatalf("drag info window should default to shown")
	}
	if l.GuidesSnapToGrid {
		t.Fatalf("grid snapping should default off")
	}
	if l.GuideDeletionRect() != l.Bounds() {
		t.Fatalf("deletion rect should default to the drawing bounds")
	}
}

func TestSetSnapToleranceClampsNegative(t *testing.T) {
	l := testLayer()
	l.SetSnapTolerance(-3)
	if l.SnapTolerance() != 0 {
		t.Fatalf("negative tolerance should clamp to 0, got %v", l.SnapTolerance())
	}
}

func TestAddGuideAppliesLayerColour(t *testing.T) {
	l := testLayer()
	g := New(Vertical, 100)
	l.AddGuide(g)
	if g.Colour != l.GuideColour() {
		t.Fatalf("guide colour %v, want layer colour %v", g.Colour, l.GuideColour())
	}

	own := New(Vertical, 120)
	own.Colour = Color{R: 1, G: 2, B: 3, A: 255}
	l.AddGuide(own)
	if own.Colour != (Color{R: 1, G: 2, B: 3, A: 255}) {
		t.Fatalf("explicit guide colour was overwritten: %v", own.Colour)
	}
}

func TestCreateAndBeginDragging(t *testing.T) {
	l := testLayer()
	g := l.CreateVerticalGuideAndBeginDragging(geom.Pt{X: 150, Y: 99})
	if g == nil {
		t.Fatalf("expected a guide")
	}
	if g.Orientation != Vertical || g.Position != 150 {
		t.Fatalf("unexpected guide %+v", g)
	}
	if l.DragGuide() != g {
		t.Fatalf("created guide should be the active drag guide")
	}
	if len(l.VerticalGuides()) != 1 {
		t.Fatalf("created guide missing from store")
	}

	h := l.CreateHorizontalGuideAndBeginDragging(geom.Pt{X: 10, Y: 77})
	if h == nil || h.Orientation != Horizontal || h.Position != 77 {
		t.Fatalf("unexpected horizontal guide %+v", h)
	}
}

func TestCreateWhileLockedReturnsNil(t *testing.T) {
	l := testLayer()
	l.Locked = func() bool { return true }
	if g := l.CreateVerticalGuideAndBeginDragging(geom.Pt{X: 10}); g != nil {
		t.Fatalf("locked layer must not create guides, got %+v", g)
	}
	if len(l.Guides()) != 0 {
		t.Fatalf("locked create left a guide in the store")
	}
}

func TestUpdateDragMovesActiveGuide(t *testing.T) {
	l := testLayer()
	g := l.CreateVerticalGuideAndBeginDragging(geom.Pt{X: 100})
	l.UpdateDrag(geom.Pt{X: 250, Y: 999})
	if g.Position != 250 {
		t.Fatalf("drag update did not move guide, position=%v", g.Position)
	}
	l.EndDrag()
	l.UpdateDrag(geom.Pt{X: 300})
	if g.Position != 250 {
		t.Fatalf("drag update after EndDrag moved guide to %v", g.Position)
	}
}

func TestEndDragCommitsInsideDeletionZone(t *testing.T) {
	l := testLayer()
	g := l.CreateVerticalGuideAndBeginDragging(geom.Pt{X: 300})
	l.EndDrag()
	if l.DragGuide() != nil {
		t.Fatalf("drag reference should be cleared")
	}
	if len(l.VerticalGuides()) != 1 || l.VerticalGuides()[0] != g {
		t.Fatalf("guide inside deletion zone was not committed")
	}
}

func TestEndDragDeletesOutsideDeletionZone(t *testing.T) {
	l := testLayer()
	l.CreateVerticalGuideAndBeginDragging(geom.Pt{X: 300})
	l.UpdateDrag(geom.Pt{X: 700}) // beyond bounds width 600
	l.EndDrag()
	if len(l.VerticalGuides()) != 0 {
		t.Fatalf("guide dragged out of the deletion zone survived")
	}
	if l.DragGuide() != nil {
		t.Fatalf("drag reference not cleared after deletion")
	}
}

func TestEndDragUsesAxisProjection(t *testing.T) {
	l := testLayer()
	l.SetGuideDeletionRect(geom.R(100, 100, 200, 50))
	g := l.CreateHorizontalGuideAndBeginDragging(geom.Pt{Y: 125})
	l.EndDrag()
	if len(l.HorizontalGuides()) != 1 {
		t.Fatalf("horizontal guide at y=125 lies inside [100,150], must survive, got %+v", g)
	}

	l.CreateHorizontalGuideAndBeginDragging(geom.Pt{Y: 160})
	l.EndDrag()
	if len(l.HorizontalGuides()) != 1 {
		t.Fatalf("horizontal guide at y=160 lies outside [100,150], must be deleted")
	}
}

func TestRemoveGuideClearsDragReference(t *testing.T) {
	l := testLayer()
	g := l.CreateVerticalGuideAndBeginDragging(geom.Pt{X: 50})
	l.RemoveGuide(g)
	if l.DragGuide() != nil {
		t.Fatalf("removing the dragged guide must clear the drag reference")
	}
	l.EndDrag() // must be a harmless no-op
}

func TestSetGuidesReplacesStore(t *testing.T) {
	l := testLayer()
	l.AddGuide(New(Vertical, 1))
	l.SetGuides([]*Guide{New(Horizontal, 2), New(Vertical, 3), nil})
	if len(l.VerticalGuides()) != 1 || len(l.HorizontalGuides()) != 1 {
		t.Fatalf("SetGuides result wrong: %d/%d", len(l.VerticalGuides()), len(l.HorizontalGuides()))
	}
	for _, g := range l.Guides() {
		if g.Colour.IsZero() {
			t.Fatalf("SetGuides left a guide without colour")
		}
	}
}

func TestClearGuides(t *testing.T) {
	l := testLayer()
	l.AddGuide(New(Vertical, 1))
	l.AddGuide(New(Horizontal, 2))

	locked := true
	l.Locked = func() bool { return locked }
	l.ClearGuides()
	if len(l.Guides()) != 2 {
		t.Fatalf("locked ClearGuides removed guides")
	}
	locked = false
	l.ClearGuides()
	if len(l.Guides()) != 0 {
		t.Fatalf("ClearGuides left %d guides", len(l.Guides()))
	}
}

func TestClearGuidesRequestsFullRedraw(t *testing.T) {
	l := testLayer()
	l.AddGuide(New(Vertical, 1))
	var got []geom.Rect
	l.Invalidate = func(r geom.Rect) { got = append(got, r) }
	l.ClearGuides()
	if len(got) == 0 || got[len(got)-1] != l.Bounds() {
		t.Fatalf("expected a full-bounds invalidation, got %+v", got)
	}
}

func TestGuideRectIsThinStripAcrossBounds(t *testing.T) {
	l := testLayer()
	v := New(Vertical, 150)
	r := l.GuideRect(v)
	if r.X >= 150 || r.X+r.Width <= 150 {
		t.Fatalf("strip does not straddle the guide position: %+v", r)
	}
	if r.Y != 0 || r.Height != 400 {
		t.Fatalf("vertical guide strip must span full drawing height: %+v", r)
	}
	if r.Width > 4 {
		t.Fatalf("strip unexpectedly wide: %+v", r)
	}

	h := New(Horizontal, 90)
	r = l.GuideRect(h)
	if r.X != 0 || r.Width != 600 {
		t.Fatalf("horizontal guide strip must span full drawing width: %+v", r)
	}
}

func TestRefreshGuideInvalidatesStrip(t *testing.T) {
	l := testLayer()
	var got []geom.Rect
	l.Invalidate = func(r geom.Rect) { got = append(got, r) }
	g := New(Vertical, 100)
	l.AddGuide(g)
	if len(got) != 1 || got[0] != l.GuideRect(g) {
		t.Fatalf("AddGuide should invalidate the guide strip, got %+v", got)
	}
}

func TestUpdateDragInvalidatesOldAndNewStrips(t *testing.T) {
	l := testLayer()
	g := l.CreateVerticalGuideAndBeginDragging(geom.Pt{X: 100})
	var got []geom.Rect
	l.Invalidate = func(r geom.Rect) { got = append(got, r) }
	old := l.GuideRect(g)
	l.UpdateDrag(geom.Pt{X: 200})
	if len(got) != 2 {
		t.Fatalf("expected two invalidations, got %d", len(got))
	}
	if got[0] != old || got[1] != l.GuideRect(g) {
		t.Fatalf("invalidations do not cover old and new strips: %+v", got)
	}
}

func TestNearestDelegationUsesLayerTolerance(t *testing.T) {
	l := testLayer()
	l.AddGuide(New(Vertical, 100))
	l.AddGuide(New(Horizontal, 200))

	if g := l.NearestVerticalGuideToPosition(104); g == nil || g.Position != 100 {
		t.Fatalf("expected vertical guide at 100, got %+v", g)
	}
	if g := l.NearestHorizontalGuideToPosition(204); g == nil || g.Position != 200 {
		t.Fatalf("expected horizontal guide at 200, got %+v", g)
	}
	l.SetSnapTolerance(2)
	if g := l.NearestVerticalGuideToPosition(104); g != nil {
		t.Fatalf("tightened tolerance should exclude the guide, got %+v", g)
	}
}

func TestLayerSnapDelegation(t *testing.T) {
	l := testLayer()
	l.AddGuide(New(Vertical, 100))
	l.AddGuide(New(Horizontal, 200))

	if p := l.SnapPointToGuide(geom.Pt{X: 104, Y: 196}); p.X != 100 || p.Y != 200 {
		t.Fatalf("point snap wrong: %+v", p)
	}
	r := l.SnapRectToGuide(geom.R(96, 196, 50, 50), false)
	if r.X != 100 || r.Y != 200 || r.Width != 50 || r.Height != 50 {
		t.Fatalf("rect snap wrong: %+v", r)
	}
	res := l.SnapPointsToGuide([]geom.Pt{{X: 97, Y: 0}})
	if res.Offset.W != 3 || res.MatchedVertical == nil {
		t.Fatalf("points snap wrong: %+v", res)
	}
}
