package doctree

import "testing"

func TestNewTreeHasEmptyRoot(t *testing.T) {
	tree := New()

	root := tree.Root()
	if root == None {
		t.Fatal("expected a root handle")
	}
	kind, err := tree.Kind(root)
	if err != nil {
		t.Fatalf("kind: %v", err)
	}
	if kind != KindElement {
		t.Errorf("root kind = %v, want KindElement", kind)
	}
	if got := tree.Flatten(); got != "" {
		t.Errorf("Flatten() = %q, want empty", got)
	}
	if got := tree.TotalLen(); got != 0 {
		t.Errorf("TotalLen() = %d, want 0", got)
	}
}

func TestZeroValueTreeIsEmpty(t *testing.T) {
	var tree Tree
	if tree.Root() != None {
		t.Error("zero-value tree should have no root")
	}
	if leaves := tree.Leaves(); len(leaves) != 0 {
		t.Errorf("zero-value tree has %d leaves", len(leaves))
	}
}

func TestLeavesDocumentOrder(t *testing.T) {
	tree := New()
	// root -> [el(a, b), c, el(el(d))]
	el1, _ := tree.AppendElement(tree.Root())
	a, _ := tree.AppendText(el1, "a")
	b, _ := tree.AppendText(el1, "b")
	c, _ := tree.AppendText(tree.Root(), "c")
	el2, _ := tree.AppendElement(tree.Root())
	el3, _ := tree.AppendElement(el2)
	d, _ := tree.AppendText(el3, "d")

	want := []Handle{a, b, c, d}
	got := tree.Leaves()
	if len(got) != len(want) {
		t.Fatalf("got %d leaves, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("leaf %d = %d, want %d", i, got[i], want[i])
		}
	}
	if text := tree.Flatten(); text != "abcd" {
		t.Errorf("Flatten() = %q, want %q", text, "abcd")
	}
}

func TestAppendUnderTextNodeFails(t *testing.T) {
	tree := New()
	leaf, _ := tree.AppendText(tree.Root(), "x")

	if _, err := tree.AppendText(leaf, "y"); err == nil {
		t.Error("expected error appending under a text node")
	}
}

func TestRuneLengths(t *testing.T) {
	tree := New()
	leaf, _ := tree.AppendText(tree.Root(), "héllo") // 5 runes, 6 bytes

	if got := tree.Len(leaf); got != 5 {
		t.Errorf("Len = %d, want 5", got)
	}
	if got := tree.TotalLen(); got != 5 {
		t.Errorf("TotalLen = %d, want 5", got)
	}
}

func TestRemoveInvalidatesSubtreeHandles(t *testing.T) {
	tree := New()
	el, _ := tree.AppendElement(tree.Root())
	leaf, _ := tree.AppendText(el, "abc")
	sibling, _ := tree.AppendText(tree.Root(), "de")

	if err := tree.Remove(el); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if tree.Valid(el) || tree.Valid(leaf) {
		t.Error("handles inside a removed subtree must become invalid")
	}
	if !tree.Valid(sibling) {
		t.Error("sibling handle must stay valid after removal")
	}
	if got := tree.Flatten(); got != "de" {
		t.Errorf("Flatten() = %q, want %q", got, "de")
	}
	if err := tree.SetText(leaf, "zzz"); err == nil {
		t.Error("expected error writing to a detached leaf")
	}
}

func TestRemoveRootDetachesEverything(t *testing.T) {
	tree := New()
	tree.AppendText(tree.Root(), "abc")

	if err := tree.Remove(tree.Root()); err != nil {
		t.Fatalf("remove root: %v", err)
	}
	if tree.Root() != None {
		t.Error("root should be None after removal")
	}
	if leaves := tree.Leaves(); len(leaves) != 0 {
		t.Errorf("expected no leaves, got %d", len(leaves))
	}
}

func TestClearKeepsRoot(t *testing.T) {
	tree := New()
	el, _ := tree.AppendElement(tree.Root())
	tree.AppendText(el, "abc")

	tree.Clear()

	if tree.Root() == None {
		t.Fatal("root must survive Clear")
	}
	if tree.Valid(el) {
		t.Error("children must be detached by Clear")
	}
	if got := tree.TotalLen(); got != 0 {
		t.Errorf("TotalLen = %d after Clear, want 0", got)
	}
}

func TestSelectionAnchorLifecycle(t *testing.T) {
	tree := New()
	leaf, _ := tree.AppendText(tree.Root(), "abc")
	sel := NewSelection(tree)

	if _, _, ok := sel.Anchor(); ok {
		t.Error("fresh selection should have no anchor")
	}

	if err := sel.Collapse(Position{Node: leaf, Offset: 2}); err != nil {
		t.Fatalf("collapse: %v", err)
	}
	container, offset, ok := sel.Anchor()
	if !ok || container != leaf || offset != 2 {
		t.Errorf("anchor = (%d, %d, %v), want (%d, 2, true)", container, offset, ok, leaf)
	}

	sel.Clear()
	if _, _, ok := sel.Anchor(); ok {
		t.Error("cleared selection should have no anchor")
	}
}

func TestSelectionAnchorGoesStaleOnRemoval(t *testing.T) {
	tree := New()
	leaf, _ := tree.AppendText(tree.Root(), "abc")
	sel := NewSelection(tree)

	if err := sel.Collapse(Position{Node: leaf, Offset: 1}); err != nil {
		t.Fatalf("collapse: %v", err)
	}
	if err := tree.Remove(leaf); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if _, _, ok := sel.Anchor(); ok {
		t.Error("anchor on a removed node must report no selection")
	}
	if err := sel.Collapse(Position{Node: leaf, Offset: 0}); err == nil {
		t.Error("collapsing onto a removed node must fail")
	}
}
