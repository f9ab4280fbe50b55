package siteprobe

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// countBlocks counts listing blocks in an ajax markup fragment
func countBlocks(fragment string) (blocks int, err error) {
	body := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	childNodes, errParse := html.ParseFragment(strings.NewReader(fragment), body)
	if errParse != nil {
		return 0, errParse
	}
	root := &html.Node{Type: html.DocumentNode}
	for _, n := range childNodes {
		root.AppendChild(n)
	}
	return goquery.NewDocumentFromNode(root).Find(SelectorContainer).Length(), nil
}
