package textbuf

import "strings"

// Leaf sizing for the rope. Leaves are built at leafChunk runes and may grow
// to maxLeafLen through in-place inserts before they are split.
const (
	leafChunk  = 512
	maxLeafLen = 1024
)

// node is an immutable rope node. A node with no children is a leaf and owns
// its runes; internal nodes cache totals for their subtree so that offset,
// line and length queries descend in O(log n).
//
// Nodes are never mutated after construction, so subtrees are freely shared
// between the results of split and join.
type node struct {
	left, right *node
	runes       []rune

	length int // rune count
	lines  int // '\n' count
	height int
}

func newLeaf(runes []rune) *node {
	if len(runes) == 0 {
		return nil
	}
	n := &node{runes: runes, length: len(runes)}
	for _, r := range runes {
		if r == '\n' {
			n.lines++
		}
	}
	return n
}

func newInternal(left, right *node) *node {
	return &node{
		left:   left,
		right:  right,
		length: left.length + right.length,
		lines:  left.lines + right.lines,
		height: max(left.height, right.height) + 1,
	}
}

func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func height(n *node) int {
	if n == nil {
		return -1
	}
	return n.height
}

func length(n *node) int {
	if n == nil {
		return 0
	}
	return n.length
}

func lineBreaks(n *node) int {
	if n == nil {
		return 0
	}
	return n.lines
}

// build creates a balanced rope from runes.
func build(runes []rune) *node {
	if len(runes) == 0 {
		return nil
	}

	leaves := make([]*node, 0, len(runes)/leafChunk+1)
	for start := 0; start < len(runes); start += leafChunk {
		end := min(start+leafChunk, len(runes))
		chunk := make([]rune, end-start)
		copy(chunk, runes[start:end])
		leaves = append(leaves, newLeaf(chunk))
	}
	return buildBalanced(leaves)
}

func buildBalanced(leaves []*node) *node {
	switch len(leaves) {
	case 0:
		return nil
	case 1:
		return leaves[0]
	}
	mid := len(leaves) / 2
	return newInternal(buildBalanced(leaves[:mid]), buildBalanced(leaves[mid:]))
}

// join concatenates two ropes, keeping the AVL height invariant.
func join(a, b *node) *node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	if a.isLeaf() && b.isLeaf() && a.length+b.length <= maxLeafLen {
		merged := make([]rune, 0, a.length+b.length)
		merged = append(merged, a.runes...)
		merged = append(merged, b.runes...)
		return newLeaf(merged)
	}

	switch ha, hb := a.height, b.height; {
	case ha > hb+1:
		return rebalance(a.left, join(a.right, b))
	case hb > ha+1:
		return rebalance(join(a, b.left), b.right)
	default:
		return newInternal(a, b)
	}
}

// rebalance builds an internal node from left and right, rotating when their
// heights differ by more than one.
func rebalance(left, right *node) *node {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}

	switch {
	case left.height > right.height+1:
		if height(left.left) < height(left.right) {
			// Double rotation: left-right case.
			lr := left.right
			return newInternal(
				newInternal(left.left, lr.left),
				newInternal(lr.right, right),
			)
		}
		return newInternal(left.left, join(left.right, right))
	case right.height > left.height+1:
		if height(right.right) < height(right.left) {
			rl := right.left
			return newInternal(
				newInternal(left, rl.left),
				newInternal(rl.right, right.right),
			)
		}
		return newInternal(join(left, right.left), right.right)
	default:
		return newInternal(left, right)
	}
}

// split divides n at rune index i into [0, i) and [i, len).
func split(n *node, i int) (*node, *node) {
	if n == nil {
		return nil, nil
	}
	if i <= 0 {
		return nil, n
	}
	if i >= n.length {
		return n, nil
	}

	if n.isLeaf() {
		left := make([]rune, i)
		copy(left, n.runes[:i])
		right := make([]rune, n.length-i)
		copy(right, n.runes[i:])
		return newLeaf(left), newLeaf(right)
	}

	switch leftLen := n.left.length; {
	case i < leftLen:
		ll, lr := split(n.left, i)
		return ll, join(lr, n.right)
	case i > leftLen:
		rl, rr := split(n.right, i-leftLen)
		return join(n.left, rl), rr
	default:
		return n.left, n.right
	}
}

// insert returns n with text inserted at rune index i. Small inserts land in
// the target leaf directly; larger ones are spliced in with split and join.
func insert(n *node, i int, text []rune) *node {
	if len(text) == 0 {
		return n
	}
	if n == nil {
		return build(text)
	}

	if n.isLeaf() {
		if n.length+len(text) <= maxLeafLen {
			runes := make([]rune, 0, n.length+len(text))
			runes = append(runes, n.runes[:i]...)
			runes = append(runes, text...)
			runes = append(runes, n.runes[i:]...)
			return newLeaf(runes)
		}
		left, right := split(n, i)
		return join(join(left, build(text)), right)
	}

	if i <= n.left.length {
		return join(insert(n.left, i, text), n.right)
	}
	return join(n.left, insert(n.right, i-n.left.length, text))
}

// remove returns n without the runes in [start, end).
func remove(n *node, start, end int) *node {
	left, rest := split(n, start)
	_, right := split(rest, end-start)
	return join(left, right)
}

// runeAt returns the rune at index i, which must be in range.
func (n *node) runeAt(i int) rune {
	for !n.isLeaf() {
		if i < n.left.length {
			n = n.left
			continue
		}
		i -= n.left.length
		n = n.right
	}
	return n.runes[i]
}

// linesBefore counts '\n' runes in [0, i).
func (n *node) linesBefore(i int) int {
	count := 0
	for n != nil && i > 0 {
		if n.isLeaf() {
			for _, r := range n.runes[:min(i, n.length)] {
				if r == '\n' {
					count++
				}
			}
			return count
		}
		if i <= n.left.length {
			n = n.left
			continue
		}
		count += n.left.lines
		i -= n.left.length
		n = n.right
	}
	return count
}

// offsetAfterLine returns the rune index just past the k-th '\n' (1-based).
// k must satisfy 1 <= k <= n.lines.
func (n *node) offsetAfterLine(k int) int {
	offset := 0
	for !n.isLeaf() {
		if k <= n.left.lines {
			n = n.left
			continue
		}
		k -= n.left.lines
		offset += n.left.length
		n = n.right
	}
	for idx, r := range n.runes {
		if r != '\n' {
			continue
		}
		k--
		if k == 0 {
			return offset + idx + 1
		}
	}
	return offset + n.length
}

// appendRange writes runes [start, end) of n to sb.
func (n *node) appendRange(sb *strings.Builder, start, end int) {
	if n == nil || start >= end {
		return
	}
	if n.isLeaf() {
		for _, r := range n.runes[start:end] {
			sb.WriteRune(r)
		}
		return
	}

	leftLen := n.left.length
	if start < leftLen {
		n.left.appendRange(sb, start, min(end, leftLen))
	}
	if end > leftLen {
		n.right.appendRange(sb, max(start-leftLen, 0), end-leftLen)
	}
}
