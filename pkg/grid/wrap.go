package grid

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// unbounded is the width used when measuring intrinsic content width.
const unbounded = 1 << 30

type itemKind int

const (
	itemWord itemKind = iota
	itemSpace
	itemBreak
	itemBlock
)

// item is one element of an inline flow. Consecutive words with no space
// between them form an unbreakable chunk; spaces are the only soft break
// points.
type item struct {
	kind  itemKind
	seg   segment
	nobr  bool
	lines []line
}

// wrapper fills lines greedily from a flow of items.
type wrapper struct {
	width      int
	lines      []line
	cur        line
	pending    []segment
	afterBlock bool
}

// wrap lays items out into lines no wider than width, except where nobr
// content cannot fit.
func wrap(items []item, width int) []line {
	if width < 1 {
		width = 1
	}
	w := &wrapper{width: width}
	for i := 0; i < len(items); {
		it := items[i]
		switch it.kind {
		case itemSpace:
			w.pending = append(w.pending, it.seg)
			i++
		case itemBreak:
			if w.afterBlock && w.cur.empty() {
				// the newline that ends a block's source line
				w.pending = nil
				w.afterBlock = false
			} else {
				w.flushPending()
				w.push()
			}
			i++
		case itemBlock:
			w.pending = nil
			if !w.cur.empty() {
				w.push()
			}
			w.lines = append(w.lines, it.lines...)
			w.afterBlock = true
			i++
		case itemWord:
			j := i
			for j < len(items) && items[j].kind == itemWord {
				j++
			}
			w.placeChunk(items[i:j])
			w.afterBlock = false
			i = j
		}
	}
	if !w.cur.empty() {
		w.flushPending()
		w.push()
	}
	return w.lines
}

func (w *wrapper) push() {
	w.lines = append(w.lines, w.cur)
	w.cur = line{}
	w.pending = nil
}

func (w *wrapper) pendingWidth() int {
	n := 0
	for _, seg := range w.pending {
		n += seg.width
	}
	return n
}

// flushPending appends pending spaces to the current line when they fit.
func (w *wrapper) flushPending() {
	if w.cur.width+w.pendingWidth() <= w.width {
		for _, seg := range w.pending {
			w.cur.add(seg)
		}
	}
	w.pending = nil
}

func (w *wrapper) placeChunk(words []item) {
	chunkWidth := 0
	breakable := true
	for _, it := range words {
		chunkWidth += it.seg.width
		if it.nobr {
			breakable = false
		}
	}

	if !w.cur.empty() {
		if w.cur.width+w.pendingWidth()+chunkWidth <= w.width {
			w.flushPending()
			w.addChunk(words)
			return
		}
		w.push()
	} else if w.afterBlock {
		w.pending = nil
	} else if len(w.pending) > 0 {
		// leading spaces after a hard break are content
		w.flushPending()
		if w.cur.width+chunkWidth > w.width {
			w.cur = line{}
		}
	}

	if w.cur.width+chunkWidth <= w.width || !breakable {
		w.addChunk(words)
		return
	}
	w.splitChunk(words)
}

func (w *wrapper) addChunk(words []item) {
	for _, it := range words {
		w.cur.add(it.seg)
	}
}

// splitChunk breaks an over-long chunk at grapheme boundaries.
func (w *wrapper) splitChunk(words []item) {
	for _, it := range words {
		g := uniseg.NewGraphemes(it.seg.text)
		for g.Next() {
			cluster := g.Str()
			cw := runewidth.StringWidth(cluster)
			if !w.cur.empty() && w.cur.width+cw > w.width {
				w.push()
			}
			w.cur.add(segment{text: cluster, style: it.seg.style, width: cw})
		}
	}
}
