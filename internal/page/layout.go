package page

// Block is the line span of a rendered section.
type Block struct {
	ID     string
	Start  int
	Height int
}

// End returns the first line after the block.
func (b Block) End() int { return b.Start + b.Height }

// Layout records the line offsets of rendered sections.
type Layout struct {
	blocks []Block
	index  map[string]int
	total  int
}

// NewLayout creates an empty layout.
func NewLayout() *Layout {
	return &Layout{index: make(map[string]int)}
}

// Reset empties the layout so it can be rebuilt in place. Holders of the
// layout keep seeing the current blocks.
func (l *Layout) Reset() {
	l.blocks = l.blocks[:0]
	clear(l.index)
	l.total = 0
}

// Add appends a block of height lines. Blocks with an empty id take space
// but cannot be targeted.
func (l *Layout) Add(id string, height int) Block {
	b := Block{ID: id, Start: l.total, Height: max(height, 0)}
	l.total += b.Height
	if id != "" {
		l.index[id] = len(l.blocks)
	}
	l.blocks = append(l.blocks, b)
	return b
}

// SectionOffset returns the first line of the section with id.
func (l *Layout) SectionOffset(id string) (int, bool) {
	i, ok := l.index[id]
	if !ok {
		return 0, false
	}
	return l.blocks[i].Start, true
}

// Block returns the block with id.
func (l *Layout) Block(id string) (Block, bool) {
	i, ok := l.index[id]
	if !ok {
		return Block{}, false
	}
	return l.blocks[i], true
}

// Blocks returns every block in display order.
func (l *Layout) Blocks() []Block {
	return append([]Block(nil), l.blocks...)
}

// Height returns the total line count.
func (l *Layout) Height() int { return l.total }
