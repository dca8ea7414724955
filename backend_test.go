// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package plotui

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bothWorlds = UsageMainWorld | UsageRenderWorld

func TestTryAsBackendAcceptsBGRA8(t *testing.T) {
	for _, format := range []TextureFormat{FormatBGRA8Unorm, FormatBGRA8UnormSrgb} {
		t.Run(format.String(), func(t *testing.T) {
			img := NewImage(4, 3, make([]byte, 4*3*4), format, bothWorlds)
			b, ok := TryAsBackend(img)
			require.True(t, ok)
			assert.Equal(t, image.Rect(0, 0, 4, 3), b.Bounds())
		})
	}
}

func TestTryAsBackendRejectsOtherFormats(t *testing.T) {
	for _, format := range []TextureFormat{FormatRGBA8Unorm, FormatRGBA8UnormSrgb, FormatR8Unorm, FormatRGBA16Float, TextureFormat(200)} {
		t.Run(format.String(), func(t *testing.T) {
			data := bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef}, 8*8*2)
			img := NewImage(8, 8, data, format, bothWorlds)

			b, ok := TryAsBackend(img)
			assert.False(t, ok)
			assert.Nil(t, b)

			_, err := AsBackend(img)
			assert.ErrorIs(t, err, ErrUnsupportedFormat)
		})
	}
}

func TestTryAsBackendShortBuffer(t *testing.T) {
	img := NewImage(10, 10, make([]byte, 10*10*4-1), FormatBGRA8Unorm, bothWorlds)

	assert.NotPanics(t, func() {
		b, ok := TryAsBackend(img)
		assert.False(t, ok)
		assert.Nil(t, b)
	})
	_, err := AsBackend(img)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestAsBackendEdgeCases(t *testing.T) {
	_, err := AsBackend(nil)
	require.ErrorIs(t, err, ErrNilImage)

	_, err = AsBackend(NewImage(0, 5, nil, FormatBGRA8Unorm, bothWorlds))
	require.ErrorIs(t, err, ErrInvalidDimensions)

	// A longer buffer is fine; only the first width*height*4 bytes are used.
	img := NewImage(2, 2, make([]byte, 64), FormatBGRA8Unorm, bothWorlds)
	b, err := AsBackend(img)
	require.NoError(t, err)
	assert.Len(t, b.Pixels(), 16)
}

func TestBackendWritesThroughCallerBuffer(t *testing.T) {
	img := NewImage(3, 2, make([]byte, 3*2*4), FormatBGRA8UnormSrgb, bothWorlds)
	b, ok := TryAsBackend(img)
	require.True(t, ok)
	assert.Same(t, &img.Data[0], &b.Pixels()[0])

	b.Set(2, 1, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff})

	i := (1*3 + 2) * 4
	assert.Equal(t, []byte{0x33, 0x22, 0x11}, img.Data[i:i+3])
	assert.Equal(t, BGRX{B: 0x33, G: 0x22, R: 0x11}, b.At(2, 1))

	b.FillRect(image.Rect(0, 0, 1, 2), color.RGBA{R: 0xff, A: 0xff})
	assert.Equal(t, []byte{0x00, 0x00, 0xff}, img.Data[0:3])
	assert.Equal(t, []byte{0x00, 0x00, 0xff}, img.Data[12:15])
}

func TestBackendIgnoresPaddingOnRead(t *testing.T) {
	img := NewImageFill(1, 1, []byte{1, 2, 3, 0x07}, FormatBGRA8Unorm, bothWorlds)
	b, ok := TryAsBackend(img)
	require.True(t, ok)

	_, _, _, a := b.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), a)

	// Out of bounds is a no-op.
	b.Set(5, 5, Red)
	assert.Equal(t, []byte{1, 2, 3, 0x07}, img.Data)
}

func TestFillWhite500(t *testing.T) {
	const size = 500
	img := NewImage(size, size, make([]byte, size*size*4), FormatBGRA8Unorm, bothWorlds)
	b, ok := TryAsBackend(img)
	require.True(t, ok)

	b.IntoDrawingArea().Fill(White)
	require.NoError(t, b.Present())

	for i := 0; i < len(img.Data); i += 4 {
		if img.Data[i] != 0xff || img.Data[i+1] != 0xff || img.Data[i+2] != 0xff {
			t.Fatalf("pixel %d = %v, want white", i/4, img.Data[i:i+3])
		}
	}
}

func TestAsBackendWarnsOnMissingUsage(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })

	tests := []struct {
		usage AssetUsage
		warn  bool
	}{
		{usage: bothWorlds, warn: false},
		{usage: UsageMainWorld, warn: true},
		{usage: UsageRenderWorld, warn: true},
		{usage: 0, warn: true},
	}
	for _, tt := range tests {
		t.Run(tt.usage.String(), func(t *testing.T) {
			buf.Reset()
			img := NewImage(1, 1, make([]byte, 4), FormatBGRA8Unorm, tt.usage)

			_, ok := TryAsBackend(img)
			assert.True(t, ok, "missing usage flags must not block the adapter")
			if tt.warn {
				assert.Contains(t, buf.String(), "level=WARN")
				assert.Contains(t, buf.String(), "main world and render world")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
