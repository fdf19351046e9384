package config

import "sync"

// RenderSettings holds viewer settings that can change while running
type RenderSettings struct {
	mu           sync.RWMutex
	viewDistance float32 // far plane, in blocks
	fov          float32 // vertical, degrees
	fpsLimit     int     // 0 means uncapped
}

var globalRenderSettings = &RenderSettings{
	viewDistance: 500,
	fov:          60,
	fpsLimit:     120,
}

// GetViewDistance returns the far clip distance in blocks
func GetViewDistance() float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.viewDistance
}

// SetViewDistance sets the far clip distance, clamped to [32, 2000]
func SetViewDistance(d float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.viewDistance = min(max(d, 32), 2000)
}

// GetFOV returns the vertical field of view in degrees
func GetFOV() float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fov
}

// SetFOV sets the vertical field of view, clamped to [30, 110]
func SetFOV(deg float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.fov = min(max(deg, 30), 110)
}

// GetFPSLimit returns the frame cap; 0 means uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap; negative values uncap
func SetFPSLimit(fps int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.fpsLimit = max(fps, 0)
}
