/*
cullcheck loads a scene file, culls its objects against the scene camera and
reports what is visible. With -watch it keeps running and culls again every
time the scene file changes.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spaghettifunk/spatial/engine/core"
	"github.com/spaghettifunk/spatial/engine/culling"
)

func main() {
	configPath := flag.String("config", "", "optional TOML configuration file")
	scenePath := flag.String("scene", "testdata/scene.toml", "TOML scene file")
	pngPath := flag.String("png", "", "write a top-down debug image of each pass to this file")
	width := flag.Int("width", 512, "debug image width")
	height := flag.Int("height", 512, "debug image height")
	watch := flag.Bool("watch", false, "re-run the pass whenever the scene file changes")
	flag.Parse()

	cfg := core.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = core.LoadConfig(*configPath); err != nil {
			core.LogFatal("%s", err.Error())
		}
	}
	if err := cfg.Apply(); err != nil {
		core.LogFatal("%s", err.Error())
	}

	culler := culling.NewCuller(cfg.Culling)
	defer culler.Close()
	var mutex sync.Mutex
	pass := func(scene *culling.Scene) {
		mutex.Lock()
		defer mutex.Unlock()

		result := culler.CullScene(scene)
		for _, v := range result.Visible {
			core.LogDebug("visible %s %q %s", v.ID, v.Name, v.Containment)
		}
		for _, id := range result.Culled {
			core.LogDebug("culled %s", id)
		}
		if *pngPath == "" {
			return
		}
		raster, err := culling.RenderPass(*width, *height, scene, result)
		if err != nil {
			core.LogError("%s", err.Error())
			return
		}
		if err := raster.SavePNG(*pngPath); err != nil {
			core.LogError("%s", err.Error())
		}
	}

	if !*watch {
		scene, err := culling.LoadScene(*scenePath)
		if err != nil {
			core.LogFatal("%s", err.Error())
		}
		pass(scene)
		return
	}

	watcher, err := culling.NewWatcher(*scenePath, func(scene *culling.Scene, err error) {
		if err == nil {
			pass(scene)
		}
	})
	if err != nil {
		core.LogFatal("%s", err.Error())
	}
	pass(watcher.Scene())

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	<-sigCh

	core.LogInfo("shutting down, %d passes, avg %s", culler.Metrics().Passes(), culler.Metrics().Average())
	if err := watcher.Close(); err != nil {
		core.LogError("%s", err.Error())
	}
}
