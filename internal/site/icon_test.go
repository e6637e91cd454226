// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package site

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconPNG_Decodes(t *testing.T) {
	data, err := IconPNG()
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, IconSize, img.Bounds().Dx())
	assert.Equal(t, IconSize, img.Bounds().Dy())
}

func TestIconPNG_SameBytes(t *testing.T) {
	first, err := IconPNG()
	require.NoError(t, err)
	second, err := IconPNG()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDrawIcon_Pixels(t *testing.T) {
	img, err := DrawIcon()
	require.NoError(t, err)

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{name: "top-left corner is transparent", x: 0, y: 0, want: color.RGBA{}},
		{name: "bottom-right corner is transparent", x: IconSize - 1, y: IconSize - 1, want: color.RGBA{}},
		{name: "top edge center is background", x: IconSize / 2, y: 0, want: IconBackground},
		{name: "left edge center is background", x: 0, y: IconSize / 2, want: IconBackground},
		{name: "inside corner arc is background", x: IconCornerRadius, y: IconCornerRadius, want: IconBackground},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, img.RGBAAt(tt.x, tt.y))
		})
	}
}

func TestDrawIcon_LabelIsCentered(t *testing.T) {
	img, err := DrawIcon()
	require.NoError(t, err)

	const margin = 8
	center := image.Rect(margin, margin, IconSize-margin, IconSize-margin)

	var white int
	var sumX, sumY int
	for y := 0; y < IconSize; y++ {
		for x := 0; x < IconSize; x++ {
			if img.RGBAAt(x, y) != IconForeground {
				continue
			}
			require.True(t, image.Pt(x, y).In(center), "white pixel (%d, %d) outside the center region", x, y)
			white++
			sumX += x
			sumY += y
		}
	}

	require.Greater(t, white, 150)
	assert.InDelta(t, IconSize/2, sumX/white, 6, "label is horizontally centered")
	assert.InDelta(t, IconSize/2, sumY/white, 6, "label is vertically centered")
}

func TestInsideRoundedRect(t *testing.T) {
	assert.False(t, insideRoundedRect(0, 0, 64, 12))
	assert.False(t, insideRoundedRect(63, 0, 64, 12))
	assert.False(t, insideRoundedRect(0, 63, 64, 12))
	assert.True(t, insideRoundedRect(32, 32, 64, 12))
	assert.True(t, insideRoundedRect(3, 3, 64, 0))
}
