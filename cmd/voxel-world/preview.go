package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"voxel-world/internal/block"
	"voxel-world/internal/world"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const captionHeight = 16

// surfaceMap renders one pixel per column: the surface block's color,
// darker for lower columns. Empty columns stay black.
func surfaceMap(w *world.World) *image.RGBA {
	width, height, depth := w.Dims()
	img := image.NewRGBA(image.Rect(0, 0, width, depth))
	for x := 0; x < width; x++ {
		for z := 0; z < depth; z++ {
			y, t := w.SurfaceAt(x, z)
			if y < 0 {
				img.SetRGBA(x, z, color.RGBA{A: 255})
				continue
			}
			c := block.Color(t)
			shade := 0.55 + 0.45*float64(y+1)/float64(height)
			img.SetRGBA(x, z, color.RGBA{
				R: uint8(float64(c[0]) * shade),
				G: uint8(float64(c[1]) * shade),
				B: uint8(float64(c[2]) * shade),
				A: 255,
			})
		}
	}
	return img
}

// renderPreview scales the surface map and adds a caption with the seed
func renderPreview(w *world.World, scale int) *image.RGBA {
	src := surfaceMap(w)
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale+captionHeight))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.RGBA{32, 32, 32, 255}), image.Point{}, draw.Src)
	draw.NearestNeighbor.Scale(dst, image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale), src, b, draw.Src, nil)

	width, height, depth := w.Dims()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(2, b.Dy()*scale+captionHeight-3),
	}
	d.DrawString(fmt.Sprintf("seed %d  %dx%dx%d", w.Seed(), width, height, depth))
	return dst
}

func writePreview(w *world.World, path string, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, renderPreview(w, scale)); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
