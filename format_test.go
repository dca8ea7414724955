// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package plotui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextureFormat(t *testing.T) {
	tests := []struct {
		format TextureFormat
		bgra   bool
		bpp    int
	}{
		{FormatRGBA8Unorm, false, 4},
		{FormatRGBA8UnormSrgb, false, 4},
		{FormatBGRA8Unorm, true, 4},
		{FormatBGRA8UnormSrgb, true, 4},
		{FormatR8Unorm, false, 1},
		{FormatRGBA16Float, false, 8},
		{TextureFormat(99), false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			assert.Equal(t, tt.bgra, tt.format.IsBGRA8())
			assert.Equal(t, tt.bpp, tt.format.BytesPerPixel())
		})
	}
}

func TestAssetUsage(t *testing.T) {
	assert.True(t, bothWorlds.Contains(UsageMainWorld))
	assert.True(t, bothWorlds.Contains(bothWorlds))
	assert.False(t, UsageMainWorld.Contains(bothWorlds))
	assert.False(t, UsageRenderWorld.Contains(bothWorlds))
	assert.True(t, AssetUsage(0).Contains(0))

	assert.Equal(t, "MAIN_WORLD|RENDER_WORLD", bothWorlds.String())
	assert.Equal(t, "RENDER_WORLD", UsageRenderWorld.String())
	assert.Equal(t, "NONE", AssetUsage(0).String())
}

func TestNewImageFill(t *testing.T) {
	img := NewImageFill(2, 3, []byte{1, 2, 3, 4}, FormatBGRA8Unorm, bothWorlds)
	assert.Len(t, img.Data, 2*3*4)
	assert.Equal(t, img.ByteLen(), len(img.Data))
	for i := 0; i < len(img.Data); i += 4 {
		assert.Equal(t, []byte{1, 2, 3, 4}, img.Data[i:i+4])
	}
}
