package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyEdges(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if !im.IsActive(ActionMoveForward) || !im.JustPressed(ActionMoveForward) {
		t.Fatalf("W press not registered")
	}

	im.PostUpdate()
	im.HandleKeyEvent(glfw.KeyW, glfw.Repeat)
	if !im.IsActive(ActionMoveForward) {
		t.Errorf("repeat should keep the action held")
	}
	if im.JustPressed(ActionMoveForward) {
		t.Errorf("repeat must not count as a new press")
	}

	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if im.IsActive(ActionMoveForward) || !im.JustReleased(ActionMoveForward) {
		t.Errorf("release not registered")
	}
	im.PostUpdate()
	if im.JustReleased(ActionMoveForward) {
		t.Errorf("PostUpdate should clear edges")
	}
}

func TestMouseBindings(t *testing.T) {
	im := NewInputManager()
	im.HandleMouseButtonEvent(glfw.MouseButtonRight, glfw.Press)
	if !im.JustPressed(ActionPlaceBlock) || im.JustPressed(ActionRemoveBlock) {
		t.Errorf("right click should place, not remove")
	}
}

func TestSelectKeys(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.Key3, glfw.Press)
	for i, a := range SelectActions {
		if got := im.JustPressed(a); got != (i == 2) {
			t.Errorf("select %d pressed = %v", i+1, got)
		}
	}
}

func TestUnbindAndInvalidActions(t *testing.T) {
	im := NewInputManager()
	im.UnbindKey(glfw.KeyW)
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if im.IsActive(ActionMoveForward) {
		t.Errorf("unbound key still drives its action")
	}

	im.BindKey(glfw.KeyW, ActionCount)
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if im.IsActive(-1) || im.JustPressed(ActionCount) {
		t.Errorf("out-of-range actions must read as inactive")
	}
}
