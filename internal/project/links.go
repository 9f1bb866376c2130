package project

import (
	"strings"

	"github.com/russross/blackfriday/v2"
)

// ExtractLinks returns the http(s) destinations of every link in a markdown
// text, autolinked bare URLs included, in document order.
func ExtractLinks(markdown string) []string {
	if strings.TrimSpace(markdown) == "" {
		return nil
	}

	parser := blackfriday.New(blackfriday.WithExtensions(blackfriday.CommonExtensions))
	root := parser.Parse([]byte(markdown))

	var links []string
	root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if entering && node.Type == blackfriday.Link {
			dest := string(node.LinkData.Destination)
			if strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://") {
				links = append(links, dest)
			}
		}
		return blackfriday.GoToNext
	})
	return links
}
