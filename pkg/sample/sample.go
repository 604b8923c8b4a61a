// Package sample provides the lap log of a kart session used by the
// report command.
package sample

import (
	_ "embed"
)

//go:embed session.log
var session string

// Session returns the raw session log
func Session() string {
	return session
}
