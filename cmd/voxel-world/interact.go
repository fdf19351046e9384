package main

import (
	"log"

	"voxel-world/internal/block"
	"voxel-world/internal/graphics"
	"voxel-world/internal/world"
)

// removeSelected removes the voxel under the crosshair
func removeSelected(w *world.World, cam *graphics.Camera) bool {
	pos, ok := w.DetectSelectedBlock(cam.Position, cam.Front())
	if !ok {
		return false
	}
	if err := w.UpdateBlock(pos[0], pos[1], pos[2], block.Air); err != nil {
		log.Printf("remove %v: %v", pos, err)
		return false
	}
	return true
}

// placeHeld puts t into the last air voxel before the crosshair hit, unless
// the viewer's own body occupies it.
func placeHeld(w *world.World, cam *graphics.Camera, t block.Type) bool {
	target, ok := w.FindLastAirBlock(cam.Position, cam.Front())
	if !ok {
		return false
	}
	lo, hi := cam.Body()
	if !w.CanPlaceAt(target, lo, hi) {
		return false
	}
	if err := w.UpdateBlock(target[0], target[1], target[2], t); err != nil {
		log.Printf("place %s at %v: %v", t, target, err)
		return false
	}
	return true
}
