package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockElements start and end on their own line in rendered text.
var blockElements = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Dd: true, atom.Details: true, atom.Div: true, atom.Dl: true, atom.Dt: true,
	atom.Figcaption: true, atom.Figure: true, atom.Form: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Hr: true, atom.Li: true, atom.Main: true, atom.Ol: true, atom.P: true,
	atom.Pre: true, atom.Section: true, atom.Summary: true, atom.Table: true,
	atom.Tr: true, atom.Ul: true,
}

// InnerText renders the visible text of sel roughly the way a browser's
// innerText does: block elements sit on their own lines, runs of
// whitespace collapse to one space outside <pre>, and table cells are
// separated by tabs.
func InnerText(sel *goquery.Selection) string {
	w := &textWriter{}
	for _, n := range sel.Nodes {
		w.walk(n, false)
	}
	return w.String()
}

type textWriter struct {
	lines []string
	cur   strings.Builder
}

func (w *textWriter) walk(n *html.Node, pre bool) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data, pre)
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Br:
			w.newline()
			return
		case atom.Script, atom.Style, atom.Noscript, atom.Template, atom.Head:
			return
		case atom.Pre:
			pre = true
		case atom.Td, atom.Th:
			if w.cur.Len() > 0 {
				w.cur.WriteString("\t")
			}
		}
	}

	block := n.Type == html.ElementNode && blockElements[n.DataAtom]
	if block {
		w.newline()
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, pre)
	}
	switch {
	case block && pre:
		w.flush(true)
	case block:
		w.newline()
	}
}

func (w *textWriter) text(s string, pre bool) {
	if pre {
		parts := strings.Split(s, "\n")
		for i, p := range parts {
			if i > 0 {
				w.flush(true)
			}
			w.cur.WriteString(p)
		}
		return
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s != "" && w.cur.Len() > 0 {
			w.space()
		}
		return
	}
	if startsWithSpace(s) {
		w.space()
	}
	for i, f := range fields {
		if i > 0 {
			w.cur.WriteByte(' ')
		}
		w.cur.WriteString(f)
	}
	if endsWithSpace(s) {
		w.space()
	}
}

func (w *textWriter) space() {
	line := w.cur.String()
	if line != "" && !strings.HasSuffix(line, " ") && !strings.HasSuffix(line, "\t") {
		w.cur.WriteByte(' ')
	}
}

func (w *textWriter) newline() {
	w.flush(false)
}

// flush ends the current line. Blank lines and indentation are kept only
// when keep is set.
func (w *textWriter) flush(keep bool) {
	line := w.cur.String()
	w.cur.Reset()
	if keep {
		w.lines = append(w.lines, strings.TrimRight(line, " "))
		return
	}
	if line = strings.Trim(line, " "); line != "" {
		w.lines = append(w.lines, line)
	}
}

func (w *textWriter) String() string {
	w.newline()
	return strings.TrimSpace(strings.Join(w.lines, "\n"))
}

func startsWithSpace(s string) bool {
	return s != "" && strings.ContainsRune(" \t\n\r\f", rune(s[0]))
}

func endsWithSpace(s string) bool {
	return s != "" && strings.ContainsRune(" \t\n\r\f", rune(s[len(s)-1]))
}
