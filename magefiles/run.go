//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs cullcheck on $SCENE (default testdata/scene.toml) and writes cull.png.
func (Run) Cullcheck() error {
	scene := os.Getenv("SCENE")
	if scene == "" {
		scene = "testdata/scene.toml"
	}
	fmt.Println("Run cullcheck...")
	if _, err := executeCmd("go", withArgs("run", "./cmd/cullcheck", "-scene", scene, "-png", "cull.png"), withStream()); err != nil {
		return err
	}
	return nil
}
