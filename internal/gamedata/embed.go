// Package gamedata provides embedded creature definitions and
// utilities for loading them.
package gamedata

import "embed"

// dataFS embeds the JSON definition files at build time.
//
//go:embed *.json
var dataFS embed.FS
