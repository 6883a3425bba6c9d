/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package guide

import (
	"encoding/json"
	"testing"
)

func TestGuideJSONRoundTrip(t *testing.T) {
	g := New(Vertical, 123.456)
	g.Colour = Color{R: 10, G: 20, B: 30, A: 255}

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Guide
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.ID != g.ID || back.Position != g.Position || back.Orientation != g.Orientation || back.Colour != g.Colour {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, *g)
	}
}

func TestOrientationText(t *testing.T) {
	if Vertical.String() != "vertical" || Horizontal.String() != "horizontal" {
		t.Fatalf("orientation strings wrong")
	}
	var o Orientation
	if err := o.UnmarshalText([]byte("vertical")); err != nil || o != Vertical {
		t.Fatalf("unmarshal vertical failed: %v %v", o, err)
	}
	if err := o.UnmarshalText([]byte("diagonal")); err == nil {
		t.Fatalf("expected error for unknown orientation")
	}
}

func TestParseColour(t *testing.T) {
	c, err := ParseColour("cornflowerblue")
	if err != nil {
		t.Fatalf("named colour: %v", err)
	}
	if c.A != 255 || c.IsZero() {
		t.Fatalf("named colour parsed wrong: %+v", c)
	}

	c, err = ParseColour("#6699ff")
	if err != nil {
		t.Fatalf("hex colour: %v", err)
	}
	if c != (Color{R: 0x66, G: 0x99, B: 0xff, A: 255}) {
		t.Fatalf("hex colour parsed wrong: %+v", c)
	}

	if _, err := ParseColour("not-a-colour"); err == nil {
		t.Fatalf("expected error for unknown colour")
	}
	if _, err := ParseColour(""); err == nil {
		t.Fatalf("expected error for empty colour")
	}
}
