/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package guide

import "github.com/google/uuid"

// Store owns the two guide collections of a layer, one per orientation.
// Order is insertion order; it carries no snapping meaning but is stable,
// which makes tie-breaking in the snap engine deterministic. Guide counts
// are expected to be small (tens), so plain slices suffice.
//
// The store is the sole owner of guide lifetimes. Accessors return copied
// slices so a caller can hold a guide list across later mutations.
type Store struct {
	vertical   []*Guide
	horizontal []*Guide
}

func NewStore() *Store { return &Store{} }

// Add appends g to the collection matching its orientation. Adding a
// guide already present anywhere in the store is a no-op.
func (s *Store) Add(g *Guide) {
	if g == nil || s.contains(g) {
		return
	}
	if g.Orientation == Vertical {
		s.vertical = append(s.vertical, g)
	} else {
		s.horizontal = append(s.horizontal, g)
	}
}

// Remove removes g from whichever collection contains it; no-op if absent.
func (s *Store) Remove(g *Guide) {
	if g == nil {
		return
	}
	s.vertical = removeFrom(s.vertical, g)
	s.horizontal = removeFrom(s.horizontal, g)
}

// RemoveAll clears both collections.
func (s *Store) RemoveAll() {
	s.vertical = nil
	s.horizontal = nil
}

// ReplaceAll clears the store and adds each guide from gs, partitioned by
// orientation.
func (s *Store) ReplaceAll(gs []*Guide) {
	s.RemoveAll()
	for _, g := range gs {
		s.Add(g)
	}
}

// Vertical returns a snapshot of the vertical guides.
func (s *Store) Vertical() []*Guide { return append([]*Guide(nil), s.vertical...) }

// Horizontal returns a snapshot of the horizontal guides.
func (s *Store) Horizontal() []*Guide { return append([]*Guide(nil), s.horizontal...) }

// All returns a snapshot of every guide, vertical first.
func (s *Store) All() []*Guide {
	all := make([]*Guide, 0, len(s.vertical)+len(s.horizontal))
	all = append(all, s.vertical...)
	all = append(all, s.horizontal...)
	return all
}

// ByID returns the guide with the given identity, or nil.
func (s *Store) ByID(id uuid.UUID) *Guide {
	if id == uuid.Nil {
		return nil
	}
	for _, g := range s.vertical {
		if g.ID == id {
			return g
		}
	}
	for _, g := range s.horizontal {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// Len returns the total number of guides.
func (s *Store) Len() int { return len(s.vertical) + len(s.horizontal) }

func (s *Store) contains(g *Guide) bool {
	for _, e := range s.vertical {
		if e == g {
			return true
		}
	}
	for _, e := range s.horizontal {
		if e == g {
			return true
		}
	}
	return false
}

func removeFrom(gs []*Guide, g *Guide) []*Guide {
	for i, e := range gs {
		if e == g {
			return append(gs[:i], gs[i+1:]...)
		}
	}
	return gs
}
