/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// guidekit is a developer harness around the guide engine: it manages a
// guide document on disk and runs snap queries against it. The engine
// itself is an embedded component; hosts integrate internal/guide
// directly and use this tool for inspection and fixtures.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"guidekit/internal/config"
	"guidekit/internal/geom"
	"guidekit/internal/guide"
	applog "guidekit/internal/log"
	"guidekit/internal/storage"
	"guidekit/internal/version"
)

func usage() {
	fmt.Println("guidekit — guide & snap engine harness")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  guidekit version|-v|--version          Show version")
	fmt.Println("  guidekit init <file> [<w> <h>]         Create a guide document (default 612x792)")
	fmt.Println("  guidekit add <file> v|h <pos>          Add a vertical/horizontal guide")
	fmt.Println("  guidekit list <file>                   List guides and layer settings")
	fmt.Println("  guidekit snap <file> <x> <y>           Snap a point against the document's guides")
	fmt.Println("  guidekit clear <file>                  Remove all guides")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Defaults()
	}
	applog.Init(applog.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format, File: cfg.Logging.File})
	l := applog.WithComponent("cli")

	args := os.Args
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}

	switch args[1] {
	case "version", "--version", "-v":
		fmt.Println(version.String())
	case "init":
		if len(args) < 3 {
			fmt.Println("init requires <file>")
			usage()
			os.Exit(2)
		}
		w, h := 612.0, 792.0
		if len(args) >= 5 {
			w = parseFloat(args[3])
			h = parseFloat(args[4])
		}
		layer := guide.NewLayer(geom.R(0, 0, w, h), cfg.LayerSettings())
		if err := storage.Save(args[2], storage.Encode(layer)); err != nil {
			fail(l, "init", err)
		}
		l.Info("document created", slog.String("path", args[2]), slog.Float64("w", w), slog.Float64("h", h))
	case "add":
		if len(args) < 5 {
			fmt.Println("add requires <file>, v|h and <pos>")
			usage()
			os.Exit(2)
		}
		layer := loadLayer(l, args[2], cfg)
		pos := parseFloat(args[4])
		var g *guide.Guide
		switch args[3] {
		case "v":
			g = guide.New(guide.Vertical, pos)
		case "h":
			g = guide.New(guide.Horizontal, pos)
		default:
			fmt.Println("orientation must be v or h")
			os.Exit(2)
		}
		layer.AddGuide(g)
		if err := storage.Save(args[2], storage.Encode(layer)); err != nil {
			fail(l, "add", err)
		}
		l.Info("guide added", slog.String("orientation", g.Orientation.String()), slog.Float64("pos", g.Position))
	case "list":
		if len(args) < 3 {
			fmt.Println("list requires <file>")
			os.Exit(2)
		}
		layer := loadLayer(l, args[2], cfg)
		fmt.Printf("bounds: %+v  tolerance: %g  snapToGrid: %v  dragInfo: %v\n",
			layer.Bounds(), layer.SnapTolerance(), layer.GuidesSnapToGrid, layer.ShowsDragInfoWindow)
		for _, g := range layer.Guides() {
			fmt.Printf("  %-10s %10.3f  #%02x%02x%02x\n", g.Orientation, g.Position, g.Colour.R, g.Colour.G, g.Colour.B)
		}
	case "snap":
		if len(args) < 5 {
			fmt.Println("snap requires <file>, <x> and <y>")
			os.Exit(2)
		}
		layer := loadLayer(l, args[2], cfg)
		p := geom.Pt{X: parseFloat(args[3]), Y: parseFloat(args[4])}
		s := layer.SnapPointToGuide(p)
		fmt.Printf("(%g, %g) -> (%g, %g)\n", p.X, p.Y, s.X, s.Y)
	case "clear":
		if len(args) < 3 {
			fmt.Println("clear requires <file>")
			os.Exit(2)
		}
		layer := loadLayer(l, args[2], cfg)
		layer.ClearGuides()
		if err := storage.Save(args[2], storage.Encode(layer)); err != nil {
			fail(l, "clear", err)
		}
		l.Info("guides cleared", slog.String("path", args[2]))
	default:
		usage()
		os.Exit(2)
	}
}

func loadLayer(l *slog.Logger, path string, cfg config.AppConfig) *guide.Layer {
	doc, err := storage.Load(path)
	if err != nil {
		fail(l, "load", err)
	}
	return storage.Restore(doc, cfg.LayerSettings())
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fmt.Printf("invalid number %q\n", s)
		os.Exit(2)
	}
	return f
}

func fail(l *slog.Logger, op string, err error) {
	l.Error(op+" failed", slog.Any("err", err))
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
