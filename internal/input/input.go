// Package input maps physical keys and mouse buttons to logical viewer
// actions with per-frame edge detection.
package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical viewer action, not a physical key.
type Action int

const (
	ActionPanLeft Action = iota
	ActionPanRight
	ActionPanUp
	ActionPanDown
	ActionExportWorld
	ActionToggleTour
	ActionToggleLabels
	ActionToggleOutlines
	ActionResetView
	ActionQuit
	ActionMouseLeft
	ActionMouseRight
	ActionMouseMiddle
	ActionModControl
	ActionModShift
	ActionModSuper
	ActionCount // sentinel for array sizing
)

// Manager maps physical keys/buttons to logical actions and tracks held and
// just-pressed state per frame.
type Manager struct {
	mu sync.RWMutex

	// One key can map to multiple actions.
	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewManager creates a Manager with the default bindings.
func NewManager() *Manager {
	m := &Manager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	m.BindKey(glfw.KeyLeft, ActionPanLeft)
	m.BindKey(glfw.KeyRight, ActionPanRight)
	m.BindKey(glfw.KeyUp, ActionPanUp)
	m.BindKey(glfw.KeyDown, ActionPanDown)
	m.BindKey(glfw.KeyE, ActionExportWorld)
	m.BindKey(glfw.KeyT, ActionToggleTour)
	m.BindKey(glfw.KeyL, ActionToggleLabels)
	m.BindKey(glfw.KeyO, ActionToggleOutlines)
	m.BindKey(glfw.KeyR, ActionResetView)
	m.BindKey(glfw.KeyEscape, ActionQuit)

	m.BindMouseButton(glfw.MouseButtonLeft, ActionMouseLeft)
	m.BindMouseButton(glfw.MouseButtonRight, ActionMouseRight)
	m.BindMouseButton(glfw.MouseButtonMiddle, ActionMouseMiddle)

	m.BindKey(glfw.KeyLeftControl, ActionModControl)
	m.BindKey(glfw.KeyRightControl, ActionModControl)
	m.BindKey(glfw.KeyLeftShift, ActionModShift)
	m.BindKey(glfw.KeyRightShift, ActionModShift)
	m.BindKey(glfw.KeyLeftSuper, ActionModSuper)
	m.BindKey(glfw.KeyRightSuper, ActionModSuper)

	return m
}

// BindKey binds a physical key to a logical action. Multiple keys can be
// bound to the same action.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// BindMouseButton binds a mouse button to a logical action.
func (m *Manager) BindMouseButton(button glfw.MouseButton, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}
	m.mouseButtonToActions[button] = append(m.mouseButtonToActions[button], action)
}

// HandleKeyEvent processes a key event; call it from the GLFW key callback.
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.RLock()
	actions, exists := m.keyToActions[key]
	m.mu.RUnlock()

	if !exists {
		return
	}
	isPressed := action == glfw.Press || action == glfw.Repeat
	m.applyEvent(actions, isPressed)
}

// HandleMouseButtonEvent processes a mouse button event; call it from the
// GLFW mouse button callback.
func (m *Manager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	m.mu.RLock()
	actions, exists := m.mouseButtonToActions[button]
	m.mu.RUnlock()

	if !exists {
		return
	}
	m.applyEvent(actions, action == glfw.Press)
}

func (m *Manager) applyEvent(actions []Action, isPressed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, act := range actions {
		if act < 0 || act >= ActionCount {
			continue
		}
		// Detect edges immediately when the event arrives.
		if isPressed && !m.currentState[act] {
			m.justPressed[act] = true
		}
		if !isPressed && m.currentState[act] {
			m.justReleased[act] = true
		}
		m.currentState[act] = isPressed
	}
}

// PostUpdate clears edge flags; call at the end of each frame after all
// input checks are done.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.justPressed {
		m.justPressed[i] = false
		m.justReleased[i] = false
	}
}

// IsActive returns true while the action is held down.
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentState[action]
}

// JustPressed returns true only on the frame the action was pressed.
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[action]
}

// JustReleased returns true only on the frame the action was released.
func (m *Manager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justReleased[action]
}
