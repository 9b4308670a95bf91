/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that loads
// config and wires up extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. This two-phase pattern allows extensions to
// declare commands before configuration is loaded. The config is loaded
// once and shared across all extensions via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/rgkit/extension"
	"github.com/jpl-au/rgkit/internal/config"
)

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions loads configuration and injects it into extensions.
//
// Why sync.Once: The config is read from disk and must be shared across all
// extensions. We use sync.Once to guarantee exactly one initialisation per
// process, even if multiple commands somehow trigger it.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		extContext = extension.NewContext(cfg)

		// Inject the shared context into all Initializable extensions.
		// This is dependency injection - extensions receive the config rather
		// than loading it themselves, enabling shared state and a single
		// source of truth for defaults.
		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

// Context returns the shared extension context. Nil before initialisation.
func Context() extension.Context {
	return extContext
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
	})
}
