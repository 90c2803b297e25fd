package config

import "sync"

// RuntimeSettings holds toggles changed from the keyboard while running
type RuntimeSettings struct {
	mu         sync.RWMutex
	fpsLimit   int // 0 = unlimited
	hudVisible bool
	wireframe  bool
}

var globalRuntimeSettings = &RuntimeSettings{
	fpsLimit:   120,
	hudVisible: true,
}

// Apply seeds the runtime settings from a loaded config
func Apply(c *Config) {
	SetFPSLimit(c.Window.FPSLimit)
	SetHUDVisible(c.HUD.Enabled)
	SetWireframe(false)
}

// GetFPSLimit returns the frame cap, 0 meaning unlimited
func GetFPSLimit() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}
	if limit > 0 && limit < 10 {
		limit = 10
	}

	globalRuntimeSettings.fpsLimit = limit
}

func GetHUDVisible() bool {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.hudVisible
}

func SetHUDVisible(visible bool) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.hudVisible = visible
}

// ToggleHUD flips HUD visibility and returns the new value
func ToggleHUD() bool {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.hudVisible = !globalRuntimeSettings.hudVisible
	return globalRuntimeSettings.hudVisible
}

func GetWireframe() bool {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.wireframe
}

func SetWireframe(enabled bool) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.wireframe = enabled
}

// ToggleWireframe flips wireframe mode and returns the new value
func ToggleWireframe() bool {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.wireframe = !globalRuntimeSettings.wireframe
	return globalRuntimeSettings.wireframe
}
