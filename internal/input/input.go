package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical viewer action, not a physical key
type Action int

const (
	ActionOrbit Action = iota
	ActionResetCamera
	ActionToggleHUD
	ActionToggleWireframe
	ActionZoomIn
	ActionZoomOut
	ActionQuit
	ActionModShift
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys and buttons to logical actions and tracks
// mouse drag and wheel input in normalized device coordinates.
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Mouse button to action mapping
	mouseButtonToActions map[glfw.MouseButton][]Action

	// Current frame state (indexed by Action)
	currentState [ActionCount]bool

	// Just pressed/released flags (reset each frame)
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	drag   Drag
	scroll float64
	width  int
	height int
}

// NewInputManager creates an InputManager with the default bindings.
// The right mouse button is left unbound.
func NewInputManager(width, height int) *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
		width:                width,
		height:               height,
	}

	im.BindKey(glfw.KeyR, ActionResetCamera)
	im.BindKey(glfw.KeyH, ActionToggleHUD)
	im.BindKey(glfw.KeyF, ActionToggleWireframe)
	im.BindKey(glfw.KeyEqual, ActionZoomIn)
	im.BindKey(glfw.KeyKPAdd, ActionZoomIn)
	im.BindKey(glfw.KeyMinus, ActionZoomOut)
	im.BindKey(glfw.KeyKPSubtract, ActionZoomOut)
	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyLeftShift, ActionModShift)
	im.BindKey(glfw.KeyRightShift, ActionModShift)

	im.BindMouseButton(glfw.MouseButtonLeft, ActionOrbit)

	return im
}

// BindKey binds a physical key to a logical action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
	im.mu.Unlock()
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	delete(im.keyToActions, key)
	im.mu.Unlock()
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
	im.mu.Unlock()
}

// HandleKeyEvent processes a key event and updates internal state
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	actions, ok := im.keyToActions[key]
	if !ok {
		return
	}
	im.setActions(actions, action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent processes a button event. Pressing the orbit button
// starts a drag at the last known cursor position; releasing ends it.
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	actions, ok := im.mouseButtonToActions[button]
	if !ok {
		return
	}
	pressed := action == glfw.Press
	im.setActions(actions, pressed)
	for _, a := range actions {
		if a != ActionOrbit {
			continue
		}
		if pressed {
			im.drag.Press()
		} else {
			im.drag.Release()
		}
	}
}

// HandleCursorPos records the cursor in window pixels
func (im *InputManager) HandleCursorPos(x, y float64) {
	im.mu.Lock()
	defer im.mu.Unlock()
	nx, ny := PixelToNDC(x, y, im.width, im.height)
	im.drag.Move(nx, ny)
}

// HandleScroll accumulates vertical wheel offsets until the next ConsumeScroll
func (im *InputManager) HandleScroll(yoff float64) {
	im.mu.Lock()
	im.scroll += yoff
	im.mu.Unlock()
}

// SetWindowSize sets the pixel size used for NDC conversion
func (im *InputManager) SetWindowSize(width, height int) {
	im.mu.Lock()
	im.width, im.height = width, height
	im.mu.Unlock()
}

// Install registers the GLFW callbacks for this manager on window
func (im *InputManager) Install(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		im.HandleCursorPos(x, y)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		im.HandleScroll(yoff)
	})
	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		im.SetWindowSize(width, height)
	})
}

// ConsumeDrag returns the NDC motion of the orbit drag since the last call
func (im *InputManager) ConsumeDrag() (dx, dy float32) {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.drag.Consume()
}

// ConsumeScroll returns the wheel offset accumulated since the last call
func (im *InputManager) ConsumeScroll() float64 {
	im.mu.Lock()
	defer im.mu.Unlock()
	s := im.scroll
	im.scroll = 0
	return s
}

// PostUpdate must be called at the end of each frame to reset edge flags
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	clear(im.justPressed[:])
	clear(im.justReleased[:])
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justReleased[action]
}

// setActions updates state and edges; callers hold mu
func (im *InputManager) setActions(actions []Action, pressed bool) {
	for _, act := range actions {
		if pressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !pressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = pressed
	}
}
