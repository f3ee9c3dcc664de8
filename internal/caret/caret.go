// Package caret translates between flat character offsets and concrete
// positions inside the document tree, in both directions. The functions
// here are pure: they hold no state and never retain node handles after
// a call returns.
package caret

import (
	"errors"

	"github.com/inkwell-editor/inkwell/internal/doctree"
)

var (
	// ErrNoSelection means no live anchor exists. Callers must treat this
	// as "caret position unknown", not as offset zero.
	ErrNoSelection = errors.New("caret: no selection anchor")

	// ErrNotFound means the tree has no attached nodes, or an anchor is
	// not reachable from it.
	ErrNotFound = errors.New("caret: position not found")
)

// OffsetFromSelection computes the global character offset of the
// selection anchor. Leaf text lengths strictly before the anchor are
// accumulated in document order; a text-leaf anchor then contributes its
// in-container offset, while an element anchor (whose offset is a child
// index) coincides with the nearest preceding leaf boundary.
func OffsetFromSelection(t *doctree.Tree, sel *doctree.Selection) (int, error) {
	container, offset, ok := sel.Anchor()
	if !ok {
		return 0, ErrNoSelection
	}
	root := t.Root()
	if root == doctree.None {
		return 0, ErrNotFound
	}

	kind, err := t.Kind(container)
	if err != nil {
		return 0, ErrNotFound
	}

	acc := 0
	found := false

	var walk func(h doctree.Handle) bool
	walk = func(h doctree.Handle) bool {
		if h == container {
			found = true
			if kind == doctree.KindText {
				acc += clamp(offset, 0, t.Len(h))
				return true
			}
			children, _ := t.Children(h)
			idx := clamp(offset, 0, len(children))
			for i := 0; i < idx; i++ {
				acc += subtreeLen(t, children[i])
			}
			return true
		}
		k, _ := t.Kind(h)
		if k == doctree.KindText {
			acc += t.Len(h)
			return false
		}
		children, _ := t.Children(h)
		for _, c := range children {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(root)

	if !found {
		return 0, ErrNotFound
	}
	return acc, nil
}

// PositionFromOffset resolves a global offset to a leaf plus local
// offset. The first leaf whose inclusive cumulative length reaches the
// target wins, so a target falling exactly on a boundary between two
// leaves resolves to the end of the earlier leaf rather than the start
// of the next one. Out-of-range targets clamp silently: stale offsets
// after an edit are expected and must not lose the caret. The degenerate
// position {root, 0} is returned for a tree with a root but no leaves;
// ErrNotFound only for a tree with no attached nodes at all.
func PositionFromOffset(t *doctree.Tree, target int) (doctree.Position, error) {
	root := t.Root()
	if root == doctree.None {
		return doctree.Position{Node: doctree.None}, ErrNotFound
	}
	if target < 0 {
		target = 0
	}

	leaves := t.Leaves()
	if len(leaves) == 0 {
		return doctree.Position{Node: root, Offset: 0}, nil
	}

	acc := 0
	for _, leaf := range leaves {
		n := t.Len(leaf)
		if acc+n >= target {
			return doctree.Position{Node: leaf, Offset: target - acc}, nil
		}
		acc += n
	}

	last := leaves[len(leaves)-1]
	return doctree.Position{Node: last, Offset: t.Len(last)}, nil
}

// Apply collapses the selection to a caret at pos. This is a thin
// pass-through to the native selection primitive; a failure means the
// node is no longer attached and the caller should log and continue,
// since a missed caret placement is cosmetic.
func Apply(sel *doctree.Selection, pos doctree.Position) error {
	return sel.Collapse(pos)
}

// subtreeLen sums the leaf lengths of the subtree rooted at h.
func subtreeLen(t *doctree.Tree, h doctree.Handle) int {
	k, err := t.Kind(h)
	if err != nil {
		return 0
	}
	if k == doctree.KindText {
		return t.Len(h)
	}
	total := 0
	children, _ := t.Children(h)
	for _, c := range children {
		total += subtreeLen(t, c)
	}
	return total
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
