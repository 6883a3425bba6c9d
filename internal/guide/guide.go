/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package guide implements alignment guides for a 2D drawing surface:
// the guide entity, the layer-owned guide store, the snapping algorithms
// and the interactive guide layer controller. Everything here is
// UI-agnostic and deterministic to enable unit testing and reuse across
// different frontends.
package guide

import (
	"fmt"

	"github.com/google/uuid"
)

// Orientation classifies a guide as horizontal or vertical. A vertical
// guide constrains the X coordinate, a horizontal guide the Y coordinate.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// MarshalText serializes the orientation as "horizontal" or "vertical".
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Orientation) UnmarshalText(b []byte) error {
	switch string(b) {
	case "horizontal":
		*o = Horizontal
	case "vertical":
		*o = Vertical
	default:
		return fmt.Errorf("unknown orientation %q", string(b))
	}
	return nil
}

// Guide is a single infinite alignment line at a fixed coordinate.
// Position is measured along the axis perpendicular to the orientation:
// X for vertical guides, Y for horizontal ones. Orientation never changes
// after construction; reorienting a guide means removing it and adding a
// new one. Colour is display-only and is defaulted from the owning layer
// when the guide is added without an explicit colour.
type Guide struct {
	ID          uuid.UUID   `json:"id"`
	Position    float64     `json:"position"`
	Orientation Orientation `json:"orientation"`
	Colour      Color       `json:"colour"`
}

// New constructs a guide with a fresh identity and no colour; the owning
// layer assigns its default colour on add.
func New(o Orientation, position float64) *Guide {
	return &Guide{ID: uuid.New(), Orientation: o, Position: position}
}
