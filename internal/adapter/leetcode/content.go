package leetcode

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// htmlToText flattens question HTML into plain text, one line per block
// element, with runs of blank lines collapsed.
func htmlToText(input string) string {
	if input == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	writeText(node, &builder)

	lines := strings.Split(builder.String(), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" && (len(out) == 0 || out[len(out)-1] == "") {
			continue
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func writeText(node *html.Node, builder *strings.Builder) {
	block := node.Type == html.ElementNode && isBlock(node.DataAtom)

	switch {
	case node.Type == html.TextNode:
		builder.WriteString(node.Data)
	case node.Type == html.ElementNode && node.DataAtom == atom.Br:
		builder.WriteRune('\n')
	case block:
		builder.WriteRune('\n')
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		writeText(child, builder)
	}

	if block {
		builder.WriteRune('\n')
	}
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Li, atom.Pre, atom.Div, atom.Ul, atom.Ol:
		return true
	}
	return false
}
