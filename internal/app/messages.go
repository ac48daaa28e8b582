package app

import (
	"github.com/llehouerou/showcase/internal/media"
	"github.com/llehouerou/showcase/internal/mpris"
)

// MediaEventMsg carries a notification from a media element.
type MediaEventMsg struct {
	Name  string // controller name, see media.NamePodcast
	Event media.Event
	OK    bool // false once the element's channel is closed
}

// ScrollSettledMsg is delivered once scrolling has paused for the debounce
// delay.
type ScrollSettledMsg struct {
	Offset int
}

// MediaKeyMsg carries a desktop media key request.
type MediaKeyMsg struct {
	Command mpris.Command
}

// StderrMsg carries a line written to stderr by a C library.
type StderrMsg struct {
	Line string
}
