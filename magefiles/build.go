//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Tidies the module and builds the cullcheck binary into bin/.
func (Build) Cullcheck() error {
	if err := goModTidy(); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/cullcheck", "./cmd/cullcheck"), withStream()); err != nil {
		return err
	}
	return nil
}
