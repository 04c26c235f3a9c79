// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"image"
	"runtime"
	"time"

	"github.com/ShadowCurse/breakout-zero/breakout"
	"github.com/ShadowCurse/breakout-zero/gpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	configFile := flag.String("config", "", "path of a TOML config file; defaults apply without one")
	flag.Parse()

	cfg, err := breakout.LoadConfig(*configFile)
	if err != nil {
		return
	}

	var resize func(size image.Point)
	size := image.Point{cfg.Window.Width, cfg.Window.Height}
	window, sp, terminate, pollEvents, err := gpu.GLFWCreateWindow(size, cfg.Window.Title, &resize)
	if err != nil {
		return
	}

	gp, err := gpu.NewGPU(sp)
	if err != nil {
		terminate()
		return
	}
	sf, err := gpu.NewSurface(gp, sp, size, 1, gpu.Depth32)
	if err != nil {
		gp.Release()
		terminate()
		return
	}

	gm, err := breakout.NewGame(gp, sf, cfg)
	if err != nil {
		sf.Release()
		gp.Release()
		terminate()
		return
	}

	resize = func(size image.Point) { gm.SetSize(size) }
	destroy := func() {
		gm.Release()
		sf.Release()
		gp.Release()
		terminate()
	}

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		switch key {
		case glfw.KeyA:
			switch action {
			case glfw.Press:
				gm.SetPlatformMovement(-1)
			case glfw.Release:
				gm.SetPlatformMovement(0)
			}
		case glfw.KeyD:
			switch action {
			case glfw.Press:
				gm.SetPlatformMovement(1)
			case glfw.Release:
				gm.SetPlatformMovement(0)
			}
		case glfw.KeyEscape:
			if action == glfw.Press {
				w.SetShouldClose(true)
			}
		}
	})

	lastFrame := time.Now()
	renderFrame := func() {
		now := time.Now()
		dt := float32(now.Sub(lastFrame).Seconds())
		lastFrame = now

		gm.Update(dt)
		if err := gm.Sync(); err != nil {
			return
		}
		gm.Render()
	}

	exitC := make(chan struct{}, 2)

	fpsDelay := time.Second / 60
	fpsTicker := time.NewTicker(fpsDelay)
	for {
		select {
		case <-exitC:
			fpsTicker.Stop()
			destroy()
			return
		case <-fpsTicker.C:
			if !pollEvents() {
				exitC <- struct{}{}
				continue
			}
			renderFrame()
		}
	}
}
