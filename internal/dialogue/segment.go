// Package dialogue splits book text into quoted/narration segments,
// merges non-dialogic quoted fragments back into narration, and
// attributes a speaker to every surviving quoted segment.
package dialogue

// nilIndex marks the absence of a prev/next link in the arena.
const nilIndex = -1

// segment is one arena-indexed node of the book's line/quote sequence.
type segment struct {
	RowNum   int
	Text     string
	IsQuoted bool
	Speaker  string
	prev     int
	next     int
}

// List is an arena-backed doubly linked list of segments. Using integer
// indices rather than owning pointers lets the merger splice and delete
// nodes in O(1) without disturbing the rest of the arena, and keeps the
// whole sequence in one contiguous slice for cheap iteration.
type List struct {
	nodes []segment
	head  int
	tail  int
}

// newList builds an empty list.
func newList() *List {
	return &List{head: nilIndex, tail: nilIndex}
}

// push appends a new segment to the tail of the list and returns its
// arena index.
func (l *List) push(s segment) int {
	s.prev = l.tail
	s.next = nilIndex
	idx := len(l.nodes)
	l.nodes = append(l.nodes, s)

	if l.tail == nilIndex {
		l.head = idx
	} else {
		l.nodes[l.tail].next = idx
	}
	l.tail = idx
	return idx
}

// unlink splices node idx out of the list without freeing its slot;
// the node's own prev/next are left untouched so callers that hold a
// stale index can still read its last position, but it is no longer
// reachable by walking the list.
func (l *List) unlink(idx int) {
	n := l.nodes[idx]
	if n.prev != nilIndex {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nilIndex {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}
}

func (l *List) at(idx int) *segment {
	if idx == nilIndex {
		return nil
	}
	return &l.nodes[idx]
}

// Utterance is one document-order unit of the consumer contract: a line
// of narration (IsQuoted false) or attributed/unattributed speech.
type Utterance struct {
	RowNum   int
	Speaker  string
	Text     string
	IsQuoted bool
}

// Utterances returns every live segment in document order. Go versions
// predating range-over-func iterators are targeted here, so this is a
// plain slice accessor rather than an iter.Seq.
func (l *List) Utterances() []Utterance {
	var out []Utterance
	for idx := l.head; idx != nilIndex; idx = l.nodes[idx].next {
		n := l.nodes[idx]
		out = append(out, Utterance{
			RowNum:   n.RowNum,
			Speaker:  n.Speaker,
			Text:     n.Text,
			IsQuoted: n.IsQuoted,
		})
	}
	return out
}
