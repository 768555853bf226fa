package suggest

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// PlainText strips markdown from a model response so it reads cleanly in a
// terminal or a notification: emphasis markers go, list items keep a bullet
// or their number, and blank lines collapse.
func PlainText(markdown string) string {
	source := []byte(markdown)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var sb strings.Builder
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				sb.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					sb.WriteByte('\n')
				}
			}
		case *ast.String:
			if entering {
				sb.Write(node.Value)
			}
		case *ast.ListItem:
			if entering {
				sb.WriteString(listMarker(node))
			}
		case *ast.FencedCodeBlock:
			if entering {
				writeLines(&sb, node.Lines(), source)
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			if entering {
				writeLines(&sb, node.Lines(), source)
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock, *ast.ThematicBreak:
			if !entering {
				sb.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})

	var lines []string
	for _, line := range strings.Split(sb.String(), "\n") {
		line = strings.TrimRight(line, " \t")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func listMarker(item *ast.ListItem) string {
	list, ok := item.Parent().(*ast.List)
	if !ok || !list.IsOrdered() {
		return "- "
	}
	n := list.Start
	for sib := item.PreviousSibling(); sib != nil; sib = sib.PreviousSibling() {
		n++
	}
	return strconv.Itoa(n) + ". "
}

func writeLines(sb *strings.Builder, lines *text.Segments, source []byte) {
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	sb.WriteByte('\n')
}
