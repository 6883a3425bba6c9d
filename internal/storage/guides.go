/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package storage persists guide-layer state as a human-readable JSON
// document with transactional writes. Documents are validated against an
// embedded JSON schema on load so a host never ingests a malformed file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	gojsonschema "github.com/xeipuuv/gojsonschema"

	"guidekit/internal/geom"
	"guidekit/internal/guide"
)

// DocVersion is the current guide document format version.
const DocVersion = 1

// Document is the serialized form of a guide layer: the guide lists and
// the layer-level fields the host persists.
type Document struct {
	Version             int           `json:"version"`
	Bounds              geom.Rect     `json:"bounds"`
	SnapTolerance       float64       `json:"snapTolerance"`
	GuidesSnapToGrid    bool          `json:"guidesSnapToGrid"`
	ShowsDragInfoWindow bool          `json:"showsDragInfoWindow"`
	GuideDeletionRect   geom.Rect     `json:"guideDeletionRect"`
	Guides              []guide.Guide `json:"guides"`
}

// ErrInvalidDocument wraps schema validation failures on load.
var ErrInvalidDocument = errors.New("invalid guide document")

// guideSchema validates the document shape before unmarshalling.
const guideSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "bounds", "snapTolerance", "guides"],
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "bounds": {"$ref": "#/definitions/rect"},
    "snapTolerance": {"type": "number", "minimum": 0},
    "guidesSnapToGrid": {"type": "boolean"},
    "showsDragInfoWindow": {"type": "boolean"},
    "guideDeletionRect": {"$ref": "#/definitions/rect"},
    "guides": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["position", "orientation"],
        "properties": {
          "id": {"type": "string"},
          "position": {"type": "number"},
          "orientation": {"enum": ["horizontal", "vertical"]},
          "colour": {
            "type": "object",
            "properties": {
              "r": {"type": "integer", "minimum": 0, "maximum": 255},
              "g": {"type": "integer", "minimum": 0, "maximum": 255},
              "b": {"type": "integer", "minimum": 0, "maximum": 255},
              "a": {"type": "integer", "minimum": 0, "maximum": 255}
            }
          }
        }
      }
    }
  },
  "definitions": {
    "rect": {
      "type": "object",
      "required": ["x", "y", "width", "height"],
      "properties": {
        "x": {"type": "number"},
        "y": {"type": "number"},
        "width": {"type": "number"},
        "height": {"type": "number"}
      }
    }
  }
}`

// Encode captures the persisted state of a layer into a document.
func Encode(l *guide.Layer) Document {
	guides := l.Guides()
	vals := make([]guide.Guide, 0, len(guides))
	for _, g := range guides {
		vals = append(vals, *g)
	}
	return Document{
		Version:             DocVersion,
		Bounds:              l.Bounds(),
		SnapTolerance:       l.SnapTolerance(),
		GuidesSnapToGrid:    l.GuidesSnapToGrid,
		ShowsDragInfoWindow: l.ShowsDragInfoWindow,
		GuideDeletionRect:   l.GuideDeletionRect(),
		Guides:              vals,
	}
}

// Restore builds a guide layer from a document. Guides with a nil ID
// (hand-edited files) get a fresh identity.
func Restore(doc Document, s guide.Settings) *guide.Layer {
	s.SnapTolerance = doc.SnapTolerance
	s.SnapToGrid = doc.GuidesSnapToGrid
	s.ShowDragInfo = doc.ShowsDragInfoWindow
	l := guide.NewLayer(doc.Bounds, s)
	if !doc.GuideDeletionRect.IsEmpty() {
		l.SetGuideDeletionRect(doc.GuideDeletionRect)
	}
	gs := make([]*guide.Guide, 0, len(doc.Guides))
	for i := range doc.Guides {
		g := doc.Guides[i]
		if g.ID == uuid.Nil {
			g.ID = uuid.New()
		}
		gs = append(gs, &g)
	}
	l.SetGuides(gs)
	return l
}

// Save writes the document transactionally: temp file in the same
// directory, fsync, then rename over the target.
func Save(path string, doc Document) error {
	if path == "" {
		return errors.New("document path is required")
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal guide document: %w", err)
	}
	data = append(data, '\n')
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure document dir: %w", err)
	}
	temp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%d-%d", filepath.Base(path), os.Getpid(), rand.Int()))
	if err := writeFileSync(temp, data); err != nil {
		return fmt.Errorf("write temp document: %w", err)
	}
	// On Windows, replace by removing destination first if needed
	if _, err := os.Stat(path); err == nil {
		_ = os.Remove(path)
	}
	if err := os.Rename(temp, path); err != nil {
		_ = os.Remove(temp)
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

// Load reads, validates and unmarshals a guide document.
func Load(path string) (Document, error) {
	var doc Document
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("read guide document: %w", err)
	}
	if err := validate(data); err != nil {
		return doc, err
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("parse guide document: %w", err)
	}
	return doc, nil
}

func validate(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(guideSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %v", ErrInvalidDocument, msgs)
	}
	return nil
}

// writeFileSync writes data to a file and ensures it is flushed to disk.
func writeFileSync(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}
