package app

import (
	"fmt"
	"strconv"
	"strings"
)

type regionKind int

const (
	regionCard regionKind = iota
	regionResource
	regionFeature
	regionHint
)

// region is a clickable area of the page, in content coordinates: rows are
// content lines, columns are screen columns.
type region struct {
	id     string
	kind   regionKind
	top    int
	height int
	left   int
	width  int

	// transport bar of a media card, row -1 when absent
	transportRow   int
	transportLeft  int
	transportWidth int

	// video poster rows
	posterTop    int
	posterHeight int
}

func (r region) contains(line, x int) bool {
	return line >= r.top && line < r.top+r.height && x >= r.left && x < r.left+r.width
}

// focusable reports whether tab can land on the region.
func (r region) focusable() bool {
	return r.kind == regionCard || r.kind == regionResource
}

type regions struct {
	list []region
}

func (r *regions) reset() { r.list = r.list[:0] }

func (r *regions) add(reg region) { r.list = append(r.list, reg) }

// at returns the region under a content position.
func (r *regions) at(line, x int) (region, bool) {
	for _, reg := range r.list {
		if reg.contains(line, x) {
			return reg, true
		}
	}
	return region{}, false
}

func (r *regions) get(id string) (region, bool) {
	for _, reg := range r.list {
		if reg.id == id {
			return reg, true
		}
	}
	return region{}, false
}

// focusables returns the ids tab cycles through, in page order.
func (r *regions) focusables() []string {
	var ids []string
	for _, reg := range r.list {
		if reg.focusable() {
			ids = append(ids, reg.id)
		}
	}
	return ids
}

func resourceID(i int) string { return fmt.Sprintf("resource:%d", i) }

func featureID(i int) string { return fmt.Sprintf("feature:%d", i) }

// resourceIndex parses an id made by resourceID.
func resourceIndex(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "resource:")
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(rest)
	return i, err == nil
}
