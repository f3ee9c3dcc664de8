package doctree

import "fmt"

// Position is a transient, non-owning reference to a spot inside the
// tree: a node handle plus a local rune offset. For text leaves the
// offset counts runes into the leaf; the one exception is the degenerate
// position {root, 0} used for an empty surface.
type Position struct {
	Node   Handle
	Offset int
}

// Selection is the surface's native selection primitive. It holds at
// most one anchor; a collapsed selection (anchor only, start == end) is
// a caret. The anchor container is either a text leaf with a rune offset
// or an element with a child index offset.
type Selection struct {
	tree   *Tree
	anchor Handle
	offset int
	active bool
}

// NewSelection creates an inactive selection bound to a tree.
func NewSelection(t *Tree) *Selection {
	return &Selection{tree: t, anchor: None}
}

// Tree returns the tree this selection is bound to.
func (s *Selection) Tree() *Tree {
	return s.tree
}

// Anchor reports the current anchor container and in-container offset.
// ok is false when no selection exists.
func (s *Selection) Anchor() (container Handle, offset int, ok bool) {
	if !s.active || !s.tree.Valid(s.anchor) {
		return None, 0, false
	}
	return s.anchor, s.offset, true
}

// SetAnchor places the anchor at an arbitrary container and offset.
func (s *Selection) SetAnchor(container Handle, offset int) error {
	if !s.tree.Valid(container) {
		return fmt.Errorf("set anchor: %w", ErrInvalidHandle)
	}
	s.anchor = container
	s.offset = offset
	s.active = true
	return nil
}

// Collapse sets a collapsed caret at pos (start == end). It fails when
// the position's node is no longer attached to the tree, which happens
// when a computed position is applied after an intervening removal.
func (s *Selection) Collapse(pos Position) error {
	if !s.tree.Valid(pos.Node) {
		return fmt.Errorf("collapse to node %d: %w", pos.Node, ErrInvalidHandle)
	}
	s.anchor = pos.Node
	s.offset = pos.Offset
	s.active = true
	return nil
}

// Clear removes the anchor; Anchor reports ok=false afterwards.
func (s *Selection) Clear() {
	s.anchor = None
	s.offset = 0
	s.active = false
}
