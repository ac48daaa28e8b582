// Package mpris exposes the podcast player to desktop media keys over the
// MPRIS D-Bus interface.
package mpris

import "time"

// CommandKind identifies a remote control request.
type CommandKind int

const (
	CmdPlay CommandKind = iota
	CmdPause
	CmdPlayPause
	CmdSeek        // relative, Offset
	CmdSetPosition // absolute, Offset
)

// Command is a request from the desktop. It is applied by the UI loop so
// the player state is only mutated from one goroutine.
type Command struct {
	Kind   CommandKind
	Offset time.Duration
}

// Status is the player state reported to the desktop.
type Status struct {
	Loaded   bool
	Playing  bool
	Position time.Duration
	Duration time.Duration
	Source   string
	Title    string
	Artist   string
	Album    string
	ArtPath  string
}
