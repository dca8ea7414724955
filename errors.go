// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package plotui

import "errors"

var (
	// ErrNilImage is returned when a nil *Image is passed to the adapter.
	ErrNilImage = errors.New("plotui: nil image")
	// ErrUnsupportedFormat is returned for images that are not BGRA8.
	ErrUnsupportedFormat = errors.New("plotui: unsupported texture format")
	// ErrBufferTooSmall is returned when the pixel buffer cannot back the
	// declared dimensions.
	ErrBufferTooSmall = errors.New("plotui: pixel buffer too small")
	// ErrInvalidDimensions is returned for zero width or height.
	ErrInvalidDimensions = errors.New("plotui: invalid dimensions")

	// ErrEmptyRange is returned when a chart axis has min >= max.
	ErrEmptyRange = errors.New("plotui: empty axis range")
	// ErrAreaTooSmall is returned when margins and label areas leave no
	// room for the plot itself.
	ErrAreaTooSmall = errors.New("plotui: drawing area too small")

	// ErrBindingMismatch is returned when a shader's resource bindings do
	// not match the material layout.
	ErrBindingMismatch = errors.New("plotui: shader bindings do not match material")
)
