// Package config loads the binary descriptor that tells binstage which
// executable to provision and where to put it.
//
// The descriptor is read once at startup from package metadata. Three
// formats are accepted, chosen by file name:
//
//   - package.json (or any .json file): the "goBinary" object used by npm
//     lifecycle hooks, {"name", "path", "pathCommand", "toolName", "archLabels"}.
//   - .yaml / .yml: a top-level "binary" mapping.
//   - .lua: a sandboxed script that assigns a global "binstage" table. The
//     read-only "platform" table from the platform package is available, so a
//     script can pick a different install_dir per operating system.
//
// Lua scripts run with os, io, require, load*, dofile and debug removed.
//
// # Example
//
//	binstage = {
//	    name = "konk",
//	    install_dir = platform.is_windows and "bin" or "./node_modules/.bin",
//	    arch_labels = { amd64 = "amd64_v1" },
//	}
package config
