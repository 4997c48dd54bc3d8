package htmltable

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// TagToDict parses fragment and returns the attributes of the first
// element inside <body>, plus a "text" entry with its full text content.
// An attribute named "text" is overwritten.
func TagToDict(fragment string) (map[string]string, error) {
	el, err := firstBodyElement(fragment)
	if err != nil {
		return nil, err
	}

	node := el.Get(0)
	result := make(map[string]string, len(node.Attr)+1)
	for _, attr := range node.Attr {
		result[attr.Key] = attr.Val
	}
	result["text"] = el.Text()
	return result, nil
}

// TagText returns the full text content of the first element inside the
// fragment's <body>.
func TagText(fragment string) (string, error) {
	el, err := firstBodyElement(fragment)
	if err != nil {
		return "", err
	}
	return el.Text(), nil
}

func firstBodyElement(fragment string) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	el := doc.Find("body").First().Children().First()
	if el.Length() == 0 {
		return nil, ErrNoElement
	}
	return el, nil
}
