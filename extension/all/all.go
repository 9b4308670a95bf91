// Package all imports all core rgkit extensions.
// Import this package to register all built-in commands.
package all

import (
	// Core extensions - each registers itself via init()
	_ "github.com/jpl-au/rgkit/extension/core"
	_ "github.com/jpl-au/rgkit/extension/search"
)
