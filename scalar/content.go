package scalar

import (
	"strings"

	"golang.org/x/net/html"
)

// TextAndTime returns the text of n with embedded time elements replaced
// by their datetime attribute. A cell reading "due <time datetime=
// "2024-01-31"/>" yields "due 2024-01-31".
func TextAndTime(n *html.Node) string {
	var sb strings.Builder
	AppendTextAndTime(&sb, n)
	return sb.String()
}

// AppendTextAndTime writes the TextAndTime form of n to sb.
func AppendTextAndTime(sb *strings.Builder, n *html.Node) {
	if n == nil {
		return
	}
	switch {
	case n.Type == html.ElementNode && n.Data == "time":
		for _, a := range n.Attr {
			if a.Key == "datetime" {
				sb.WriteString(a.Val)
				break
			}
		}
		return
	case n.Type == html.TextNode:
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		AppendTextAndTime(sb, c)
	}
}
