// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package plotui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssets(t *testing.T) {
	a := NewAssets[Image]()
	assert.False(t, Handle[Image]{}.IsValid())

	h := a.Add(Image{Width: 1, Height: 1})
	require.True(t, h.IsValid())
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, uint64(1), a.Generation(h))

	img, ok := a.Get(h)
	require.True(t, ok)
	assert.Equal(t, uint32(1), img.Width)
	assert.Equal(t, uint64(1), a.Generation(h), "Get must not mark changes")

	img, ok = a.GetMut(h)
	require.True(t, ok)
	img.Width = 7
	assert.Equal(t, uint64(2), a.Generation(h))

	got, ok := a.Get(h)
	require.True(t, ok)
	assert.Equal(t, uint32(7), got.Width)

	removed, ok := a.Remove(h)
	require.True(t, ok)
	assert.Equal(t, uint32(7), removed.Width)
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, uint64(0), a.Generation(h))

	_, ok = a.Get(h)
	assert.False(t, ok)
	_, ok = a.GetMut(h)
	assert.False(t, ok)
	_, ok = a.Remove(h)
	assert.False(t, ok)
}

func TestAssetsHandlesAreDistinct(t *testing.T) {
	a := NewAssets[int]()
	h1 := a.Add(1)
	h2 := a.Add(2)
	assert.NotEqual(t, h1, h2)

	v, _ := a.Get(h2)
	assert.Equal(t, 2, *v)
}
