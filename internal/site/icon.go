// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package site

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Icon geometry.
const (
	IconSize         = 64
	IconCornerRadius = 12
	IconContentType  = "image/png"

	// IconLabel is drawn in bold at IconFontSize pixels.
	IconLabel    = "AI"
	IconFontSize = 36
)

var (
	IconBackground = color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
	IconForeground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

var iconPNG = sync.OnceValues(encodeIcon)

// IconPNG returns the encoded application icon. The image is generated once
// and the same bytes are returned on every call; callers must not modify them.
func IconPNG() ([]byte, error) {
	return iconPNG()
}

// DrawIcon paints the application icon: a rounded square in the brand color
// with IconLabel centered in white Go Bold. Pixels outside the rounded
// corners stay transparent.
func DrawIcon() (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, IconSize, IconSize))

	for y := 0; y < IconSize; y++ {
		for x := 0; x < IconSize; x++ {
			if insideRoundedRect(x, y, IconSize, IconCornerRadius) {
				img.SetRGBA(x, y, IconBackground)
			}
		}
	}

	face, err := labelFace()
	if err != nil {
		return nil, err
	}
	defer face.Close()

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(IconForeground),
		Face: face,
	}

	// Center the ink box of the label, not its advance box.
	bounds, _ := drawer.BoundString(IconLabel)
	inkW := bounds.Max.X - bounds.Min.X
	inkH := bounds.Max.Y - bounds.Min.Y
	drawer.Dot = fixed.Point26_6{
		X: (fixed.I(IconSize)-inkW)/2 - bounds.Min.X,
		Y: (fixed.I(IconSize)-inkH)/2 - bounds.Min.Y,
	}
	drawer.DrawString(IconLabel)

	return img, nil
}

func labelFace() (font.Face, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("%w: parse font: %w", ErrEncodingIcon, err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    IconFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: font face: %w", ErrEncodingIcon, err)
	}
	return face, nil
}

func encodeIcon() ([]byte, error) {
	img, err := DrawIcon()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingIcon, err)
	}
	return buf.Bytes(), nil
}

// insideRoundedRect reports whether the center of pixel (x, y) lies inside a
// size x size square whose corners are rounded with radius r.
func insideRoundedRect(x, y, size, r int) bool {
	px := float64(x) + 0.5
	py := float64(y) + 0.5
	fr := float64(r)
	fs := float64(size)

	var cx, cy float64
	switch {
	case px < fr:
		cx = fr
	case px > fs-fr:
		cx = fs - fr
	default:
		return true
	}
	switch {
	case py < fr:
		cy = fr
	case py > fs-fr:
		cy = fs - fr
	default:
		return true
	}

	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= fr*fr
}
