// Package sample provides the built-in sample documents that can be
// inserted into the writing surface. Samples ship as embedded Markdown
// and are lowered into the document tree block by block.
package sample

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"math/rand"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"

	"github.com/inkwell-editor/inkwell/internal/doctree"
)

//go:embed samples/*.md
var samplesFS embed.FS

// Names lists the available sample documents in sorted order.
func Names() []string {
	matches, err := fs.Glob(samplesFS, "samples/*.md")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSuffix(strings.TrimPrefix(m, "samples/"), ".md")
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fill replaces the content of tree with the named sample document.
func Fill(tree *doctree.Tree, name string) error {
	src, err := samplesFS.ReadFile("samples/" + name + ".md")
	if err != nil {
		return fmt.Errorf("unknown sample %q: %w", name, err)
	}
	return FromMarkdown(tree, src)
}

// Random fills the tree with a randomly chosen sample and returns its name.
func Random(tree *doctree.Tree) (string, error) {
	names := Names()
	if len(names) == 0 {
		return "", fmt.Errorf("no sample documents embedded")
	}
	name := names[rand.Intn(len(names))]
	return name, Fill(tree, name)
}

// FromMarkdown clears the tree and lowers the Markdown source into it.
// Each top-level block (heading or paragraph) becomes an element node
// wrapping one text leaf; blocks are joined by explicit "\n\n" separator
// leaves so the flattened text reproduces the paragraph structure the
// boundary scan expects.
func FromMarkdown(tree *doctree.Tree, src []byte) error {
	root := tree.Root()
	if root == doctree.None {
		return fmt.Errorf("lower markdown: %w", doctree.ErrInvalidHandle)
	}
	tree.Clear()

	md := goldmark.New()
	doc := md.Parser().Parse(gtext.NewReader(src))

	first := true
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		text := blockText(n, src)
		if text == "" {
			continue
		}
		if !first {
			if _, err := tree.AppendText(root, "\n\n"); err != nil {
				return err
			}
		}
		first = false

		el, err := tree.AppendElement(root)
		if err != nil {
			return err
		}
		if _, err := tree.AppendText(el, text); err != nil {
			return err
		}
	}
	return nil
}

// blockText extracts the plain text of a top-level block node.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if _, ok := n.(*ast.Heading); ok {
		collectInlineText(n, src, &buf)
		return strings.TrimSpace(buf.String())
	}
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	if buf.Len() == 0 {
		collectInlineText(n, src, &buf)
	}
	return strings.TrimSpace(buf.String())
}

func collectInlineText(n ast.Node, src []byte, buf *bytes.Buffer) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			continue
		}
		collectInlineText(c, src, buf)
	}
}
