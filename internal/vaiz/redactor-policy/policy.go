// Политики очистки HTML, который отправляется в документы и комментарии Vaiz.
//
// Основные возможности:
//   - UgcPolicy на основе bluemonday.UGCPolicy с атрибутами редактора Vaiz (списки задач, упоминания, выравнивание).
//   - StripTagsPolicy для получения чистого текста.
//   - ProcessMentions заменяет span-упоминания на читаемый текст вида @Task:id.
package policy

import (
	"container/list"
	"fmt"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var StripTagsPolicy *bluemonday.Policy = bluemonday.StrictPolicy()
var UgcPolicy *bluemonday.Policy = bluemonday.UGCPolicy()

func init() {
	kindRegexp := regexp.MustCompile(`^(User|Document|Task|Milestone|Project|Space|Member)$`)
	colorRegexp := regexp.MustCompile(`^(#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})|rgb\((\d+),\s*(\d+),\s*(\d+)\)|inherit)$`)
	idRegexp := regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

	UgcPolicy.AllowAttrs("data-type").Matching(regexp.MustCompile(`^mention$`)).OnElements("span")
	UgcPolicy.AllowAttrs("data-kind").Matching(kindRegexp).OnElements("span")
	UgcPolicy.AllowAttrs("data-id").Matching(idRegexp).OnElements("span")
	UgcPolicy.AllowAttrs("data-label").OnElements("span")

	UgcPolicy.AllowAttrs("data-type").Matching(regexp.MustCompile("^taskList$")).OnElements("ul")
	UgcPolicy.AllowAttrs("data-checked").Matching(regexp.MustCompile("^(true|false)$")).OnElements("li")
	UgcPolicy.AllowAttrs("data-type").Matching(regexp.MustCompile("^taskItem$")).OnElements("li")
	UgcPolicy.AllowAttrs("start").Matching(regexp.MustCompile(`^\d+$`)).OnElements("ol")
	UgcPolicy.AllowAttrs("colspan", "rowspan").Matching(regexp.MustCompile(`^\d+$`)).OnElements("td", "th")

	UgcPolicy.AllowStyles("color", "background-color").Matching(colorRegexp).Globally()
	UgcPolicy.AllowStyles("text-align").Matching(bluemonday.CellAlign).Globally()
	UgcPolicy.AllowAttrs("target").Matching(regexp.MustCompile(`^_(blank|self)$`)).OnElements("a")
}

// Sanitize очищает HTML тела документа или комментария.
// Текст без тегов (markdown) возвращается как есть.
func Sanitize(body string) string {
	if !strings.Contains(body, "<") {
		return body
	}
	return UgcPolicy.Sanitize(body)
}

func StripTags(body string) string {
	return StripTagsPolicy.Sanitize(body)
}

// ProcessMentions заменяет упоминания на текст @Kind:id.
// Если HTML не разбирается, он возвращается без изменений.
func ProcessMentions(htmlContent string) string {
	if htmlContent == "" || !strings.Contains(htmlContent, "mention") {
		return htmlContent
	}

	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return htmlContent
	}

	queue := list.New()
	queue.PushBack(doc)

	for queue.Len() > 0 {
		element := queue.Front()
		queue.Remove(element)
		node := element.Value.(*html.Node)

		var next *html.Node
		for child := node.FirstChild; child != nil; child = next {
			next = child.NextSibling
			if child.Type == html.ElementNode && child.Data == "span" && attr(child, "data-type") == "mention" {
				replaceMention(child)
			} else if child.FirstChild != nil {
				queue.PushBack(child)
			}
		}
	}

	body := findBody(doc)
	if body == nil {
		return htmlContent
	}
	var result strings.Builder
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&result, c); err != nil {
			return htmlContent
		}
	}
	return result.String()
}

func attr(node *html.Node, key string) string {
	for _, a := range node.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func replaceMention(node *html.Node) {
	kind, id := attr(node, "data-kind"), attr(node, "data-id")
	if kind == "" || id == "" {
		return
	}
	text := fmt.Sprintf("@%s:%s", kind, id)
	if label := attr(node, "data-label"); label != "" {
		text += " (" + label + ")"
	}
	node.Parent.InsertBefore(&html.Node{Type: html.TextNode, Data: text}, node)
	node.Parent.RemoveChild(node)
}

// html.Parse всегда достраивает html/head/body
func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
