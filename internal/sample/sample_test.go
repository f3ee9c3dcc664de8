package sample

import (
	"strings"
	"testing"

	"github.com/inkwell-editor/inkwell/internal/doctree"
)

func TestFromMarkdownLowersBlocks(t *testing.T) {
	src := []byte(`# Title

First paragraph here.

Second paragraph,
wrapped across lines.
`)

	tree := doctree.New()
	if err := FromMarkdown(tree, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flat := tree.Flatten()
	want := "Title\n\nFirst paragraph here.\n\nSecond paragraph,\nwrapped across lines."
	if flat != want {
		t.Errorf("Flatten() = %q, want %q", flat, want)
	}

	// Three content blocks plus two separator leaves.
	leaves := tree.Leaves()
	if len(leaves) != 5 {
		t.Fatalf("got %d leaves, want 5", len(leaves))
	}
	sep, err := tree.Text(leaves[1])
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	if sep != "\n\n" {
		t.Errorf("separator leaf = %q, want %q", sep, "\n\n")
	}
}

func TestFromMarkdownReplacesExistingContent(t *testing.T) {
	tree := doctree.New()
	old, _ := tree.AppendText(tree.Root(), "previous draft")

	if err := FromMarkdown(tree, []byte("fresh start\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Valid(old) {
		t.Error("old content handle must be detached")
	}
	if got := tree.Flatten(); got != "fresh start" {
		t.Errorf("Flatten() = %q, want %q", got, "fresh start")
	}
}

func TestEmbeddedSamplesLoad(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("no embedded samples")
	}

	for _, name := range names {
		tree := doctree.New()
		if err := Fill(tree, name); err != nil {
			t.Fatalf("Fill(%q): %v", name, err)
		}
		flat := tree.Flatten()
		if strings.TrimSpace(flat) == "" {
			t.Errorf("sample %q produced empty content", name)
		}
		if !strings.Contains(flat, "\n\n") {
			t.Errorf("sample %q has a single paragraph, want several", name)
		}
	}
}

func TestFillUnknownSample(t *testing.T) {
	tree := doctree.New()
	if err := Fill(tree, "does-not-exist"); err == nil {
		t.Error("expected error for unknown sample name")
	}
}
