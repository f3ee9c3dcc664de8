// Package doctree models the editable surface as an arena of nodes
// addressed by stable handles. Only text nodes carry characters; element
// nodes are structural. Document order is a pre-order, left-to-right walk
// and all offsets are rune offsets.
package doctree

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Handle addresses a node in the arena. Handles stay stable across
// mutations; a handle to a removed node becomes invalid rather than
// being reused.
type Handle int

// None is the zero position / missing node handle.
const None Handle = -1

// Kind distinguishes structural nodes from text-bearing leaves.
type Kind uint8

const (
	KindElement Kind = iota
	KindText
)

// ErrInvalidHandle reports an operation on a missing or detached node.
var ErrInvalidHandle = errors.New("doctree: invalid node handle")

type node struct {
	kind     Kind
	parent   Handle
	children []Handle
	text     string
	detached bool
}

// Tree is the arena. The zero value is a fully empty tree with no nodes;
// use New to create a tree with a root element.
type Tree struct {
	nodes []node
	root  Handle
}

// New creates a tree containing a single root element.
func New() *Tree {
	t := &Tree{root: None}
	t.root = t.alloc(node{kind: KindElement, parent: None})
	return t
}

func (t *Tree) alloc(n node) Handle {
	t.nodes = append(t.nodes, n)
	return Handle(len(t.nodes) - 1)
}

// Root returns the root element handle, or None for an empty tree.
func (t *Tree) Root() Handle {
	if t.root == None || !t.Valid(t.root) {
		return None
	}
	return t.root
}

// Valid reports whether h addresses a live, attached node.
func (t *Tree) Valid(h Handle) bool {
	return h >= 0 && int(h) < len(t.nodes) && !t.nodes[h].detached
}

// AppendElement adds a structural child under parent.
func (t *Tree) AppendElement(parent Handle) (Handle, error) {
	return t.appendNode(parent, node{kind: KindElement})
}

// AppendText adds a text leaf under parent. Empty text is allowed;
// zero-length leaves are legal positions for a caret.
func (t *Tree) AppendText(parent Handle, text string) (Handle, error) {
	return t.appendNode(parent, node{kind: KindText, text: text})
}

func (t *Tree) appendNode(parent Handle, n node) (Handle, error) {
	if !t.Valid(parent) {
		return None, fmt.Errorf("append under %d: %w", parent, ErrInvalidHandle)
	}
	if t.nodes[parent].kind != KindElement {
		return None, fmt.Errorf("append under text node %d: %w", parent, ErrInvalidHandle)
	}
	n.parent = parent
	h := t.alloc(n)
	t.nodes[parent].children = append(t.nodes[parent].children, h)
	return h, nil
}

// Remove detaches the subtree rooted at h. Every handle inside the
// subtree becomes invalid. Removing the root leaves a tree with no
// attached nodes.
func (t *Tree) Remove(h Handle) error {
	if !t.Valid(h) {
		return fmt.Errorf("remove %d: %w", h, ErrInvalidHandle)
	}
	parent := t.nodes[h].parent
	if parent != None {
		siblings := t.nodes[parent].children
		for i, c := range siblings {
			if c == h {
				t.nodes[parent].children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}
	t.detach(h)
	if h == t.root {
		t.root = None
	}
	return nil
}

func (t *Tree) detach(h Handle) {
	t.nodes[h].detached = true
	for _, c := range t.nodes[h].children {
		t.detach(c)
	}
}

// Clear removes all children of the root, leaving an empty surface.
func (t *Tree) Clear() {
	root := t.Root()
	if root == None {
		return
	}
	for _, c := range t.nodes[root].children {
		t.detach(c)
	}
	t.nodes[root].children = nil
}

// Kind returns the node kind for a valid handle.
func (t *Tree) Kind(h Handle) (Kind, error) {
	if !t.Valid(h) {
		return KindElement, fmt.Errorf("kind of %d: %w", h, ErrInvalidHandle)
	}
	return t.nodes[h].kind, nil
}

// Parent returns the parent handle, None for the root.
func (t *Tree) Parent(h Handle) (Handle, error) {
	if !t.Valid(h) {
		return None, fmt.Errorf("parent of %d: %w", h, ErrInvalidHandle)
	}
	return t.nodes[h].parent, nil
}

// Children returns a copy of the child handle list of an element.
func (t *Tree) Children(h Handle) ([]Handle, error) {
	if !t.Valid(h) {
		return nil, fmt.Errorf("children of %d: %w", h, ErrInvalidHandle)
	}
	out := make([]Handle, len(t.nodes[h].children))
	copy(out, t.nodes[h].children)
	return out, nil
}

// Text returns the text of a leaf; empty for element nodes.
func (t *Tree) Text(h Handle) (string, error) {
	if !t.Valid(h) {
		return "", fmt.Errorf("text of %d: %w", h, ErrInvalidHandle)
	}
	return t.nodes[h].text, nil
}

// SetText replaces the text of a leaf node.
func (t *Tree) SetText(h Handle, text string) error {
	if !t.Valid(h) || t.nodes[h].kind != KindText {
		return fmt.Errorf("set text of %d: %w", h, ErrInvalidHandle)
	}
	t.nodes[h].text = text
	return nil
}

// Len returns the rune length of a leaf's text, 0 for elements.
func (t *Tree) Len(h Handle) int {
	if !t.Valid(h) {
		return 0
	}
	return utf8.RuneCountInString(t.nodes[h].text)
}

// Leaves returns all text leaves in document order.
func (t *Tree) Leaves() []Handle {
	var leaves []Handle
	t.Walk(func(h Handle) bool {
		if t.nodes[h].kind == KindText {
			leaves = append(leaves, h)
		}
		return true
	})
	return leaves
}

// Walk visits every attached node in document order (pre-order,
// left to right). Returning false from fn stops the walk.
func (t *Tree) Walk(fn func(Handle) bool) {
	root := t.Root()
	if root == None {
		return
	}
	t.walk(root, fn)
}

func (t *Tree) walk(h Handle, fn func(Handle) bool) bool {
	if !fn(h) {
		return false
	}
	for _, c := range t.nodes[h].children {
		if !t.walk(c, fn) {
			return false
		}
	}
	return true
}

// Flatten concatenates all leaf texts in document order. This is the
// flattened string view the statistics and paragraph navigation operate on.
func (t *Tree) Flatten() string {
	var b strings.Builder
	t.Walk(func(h Handle) bool {
		if t.nodes[h].kind == KindText {
			b.WriteString(t.nodes[h].text)
		}
		return true
	})
	return b.String()
}

// TotalLen is the sum of all leaf rune lengths in document order.
func (t *Tree) TotalLen() int {
	total := 0
	t.Walk(func(h Handle) bool {
		if t.nodes[h].kind == KindText {
			total += utf8.RuneCountInString(t.nodes[h].text)
		}
		return true
	})
	return total
}
