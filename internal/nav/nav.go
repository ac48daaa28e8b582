// Package nav handles the navigation menu and smooth scrolling to page
// sections.
package nav

import (
	"strings"
)

// CompactWidth is the terminal width below which links collapse into the
// hamburger menu.
const CompactWidth = 80

// IndicatorTarget is the section the scroll indicator jumps to.
const IndicatorTarget = "podcast"

// Link is a navigation entry pointing at a section anchor such as "#podcast".
type Link struct {
	Label  string
	Target string
}

// ID returns the section id the link points at.
func (l Link) ID() string {
	return strings.TrimPrefix(l.Target, "#")
}

// Resolver maps section ids to line offsets.
type Resolver interface {
	SectionOffset(id string) (int, bool)
}

// Compact reports whether the layout at width uses the hamburger menu.
func Compact(width int) bool {
	return width < CompactWidth
}

// Controller owns the menu state and the running scroll animation.
type Controller struct {
	links    []Link
	resolver Resolver
	menuOpen bool
	cursor   int
	scroller Scroller
}

// New creates a controller with the menu closed.
func New(links []Link, resolver Resolver) *Controller {
	return &Controller{links: links, resolver: resolver}
}

// Links returns the navigation links.
func (c *Controller) Links() []Link { return c.links }

// ToggleMenu flips the menu and returns the new state.
func (c *Controller) ToggleMenu() bool {
	c.menuOpen = !c.menuOpen
	if c.menuOpen {
		c.cursor = 0
	}
	return c.menuOpen
}

// MenuOpen reports whether the menu is shown.
func (c *Controller) MenuOpen() bool { return c.menuOpen }

// CloseMenu hides the menu.
func (c *Controller) CloseMenu() { c.menuOpen = false }

// Cursor returns the highlighted menu entry.
func (c *Controller) Cursor() int { return c.cursor }

// MoveCursor moves the menu highlight, wrapping around.
func (c *Controller) MoveCursor(delta int) {
	n := len(c.links)
	if n == 0 {
		return
	}
	c.cursor = ((c.cursor+delta)%n + n) % n
}

// Selected returns the highlighted link.
func (c *Controller) Selected() (Link, bool) {
	if c.cursor < 0 || c.cursor >= len(c.links) {
		return Link{}, false
	}
	return c.links[c.cursor], true
}

// Follow starts a smooth scroll from the current offset to the link's
// section. The menu is closed whether or not the section exists.
func (c *Controller) Follow(link Link, from int) bool {
	c.menuOpen = false
	return c.scrollTo(link.ID(), from)
}

// ScrollIndicator scrolls to the podcast section.
func (c *Controller) ScrollIndicator(from int) bool {
	return c.scrollTo(IndicatorTarget, from)
}

// Scrolling reports whether an animation is running.
func (c *Controller) Scrolling() bool { return c.scroller.Active() }

// Step advances the animation by one frame.
func (c *Controller) Step() (offset int, done bool) {
	return c.scroller.Step()
}

// Cancel stops the animation where it is.
func (c *Controller) Cancel() { c.scroller.Stop() }

func (c *Controller) scrollTo(id string, from int) bool {
	if c.resolver == nil {
		return false
	}
	to, ok := c.resolver.SectionOffset(id)
	if !ok {
		return false
	}
	c.scroller.Start(from, to)
	return true
}
