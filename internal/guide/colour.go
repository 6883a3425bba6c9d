/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package guide

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is an 8-bit RGBA display colour for a guide line.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// DefaultColour is the fallback guide colour when neither the guide nor
// the layer specifies one (pale blue, the usual ruler-guide tint).
var DefaultColour = Color{R: 102, G: 153, B: 255, A: 255}

// IsZero reports whether the colour is unset (fully transparent black).
func (c Color) IsZero() bool { return c == Color{} }

// ParseColour accepts either an SVG 1.1 colour name ("cornflowerblue") or
// a hex triplet ("#66f", "#6699ff"). The result is fully opaque.
func ParseColour(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Color{}, fmt.Errorf("empty colour")
	}
	if c, ok := colornames.Map[s]; ok {
		return Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	if strings.HasPrefix(s, "#") {
		hc, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("parse colour %q: %w", s, err)
		}
		r, g, b := hc.RGB255()
		return Color{R: r, G: g, B: b, A: 255}, nil
	}
	return Color{}, fmt.Errorf("unknown colour %q", s)
}
