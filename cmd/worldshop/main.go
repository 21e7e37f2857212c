package main

import (
	"log"
	"runtime"

	"worldshop/internal/config"
	"worldshop/internal/input"
	"worldshop/internal/registry"
	"worldshop/internal/scenes"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	defer glfw.Terminate()

	config.LoadPrefs()

	window, err := setupWindow()
	if err != nil {
		log.Fatalf("window setup: %v", err)
	}

	if err := scenes.RegisterAll(); err != nil {
		log.Fatalf("scene registration: %v", err)
	}

	components, err := setupViewer()
	if err != nil {
		log.Fatalf("viewer setup: %v", err)
	}

	inputManager := input.NewManager()
	loop := NewViewerLoop(window, components, inputManager)
	setupInputHandlers(window, loop, components, inputManager)

	loop.Run()

	// Teardown: renderables first, then scene-held resources.
	components.Renderer.Dispose()
	components.Controller.Dispose()
	for _, inst := range components.Instances {
		if d, ok := inst.(registry.Disposer); ok {
			d.Dispose()
		}
	}
	if err := config.SavePrefs(); err != nil {
		log.Printf("save prefs: %v", err)
	}
}
