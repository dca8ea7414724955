// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package plotui

import (
	"fmt"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontDesc selects a font family and pixel size.
// Recognized families: "sans-serif", "serif" and "" (Go Regular),
// "monospace" (Go Mono).
type FontDesc struct {
	Family string
	Size   float64
	Bold   bool
}

// Font is shorthand for FontDesc{Family: family, Size: size}.
func Font(family string, size float64) FontDesc {
	return FontDesc{Family: family, Size: size}
}

// Emboldened returns a bold copy of f.
func (f FontDesc) Emboldened() FontDesc {
	f.Bold = true
	return f
}

// HAlign is the horizontal anchor of a text position.
type HAlign uint8

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is the vertical anchor of a text position.
type VAlign uint8

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// TextStyle describes how DrawText renders a string.
type TextStyle struct {
	Font   FontDesc
	Color  color.Color
	HAlign HAlign
	VAlign VAlign
}

// opentype faces keep per-face scratch buffers, so all use goes through
// faceMu.
var (
	faceMu    sync.Mutex
	parsed    = map[string]*opentype.Font{}
	faceCache = map[FontDesc]font.Face{}
)

func fontData(f FontDesc) (string, []byte) {
	switch f.Family {
	case "monospace", "mono":
		if f.Bold {
			return "gomonobold", gomonobold.TTF
		}
		return "gomono", gomono.TTF
	default:
		if f.Bold {
			return "gobold", gobold.TTF
		}
		return "goregular", goregular.TTF
	}
}

// withFace calls fn with the face for f while holding faceMu.
func withFace(f FontDesc, fn func(font.Face)) error {
	if f.Size <= 0 {
		f.Size = 12
	}
	faceMu.Lock()
	defer faceMu.Unlock()

	face, ok := faceCache[f]
	if !ok {
		name, data := fontData(f)
		otf, ok := parsed[name]
		if !ok {
			var err error
			otf, err = opentype.Parse(data)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", name, err)
			}
			parsed[name] = otf
		}
		var err error
		face, err = opentype.NewFace(otf, &opentype.FaceOptions{
			Size:    f.Size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return fmt.Errorf("creating %s face: %w", name, err)
		}
		faceCache[f] = face
	}
	fn(face)
	return nil
}

// MeasureText returns the width and height in pixels of s rendered in f.
func MeasureText(s string, f FontDesc) (w, h int, err error) {
	err = withFace(f, func(face font.Face) {
		m := face.Metrics()
		w = font.MeasureString(face, s).Ceil()
		h = (m.Ascent + m.Descent).Ceil()
	})
	return w, h, err
}
