package exports

import (
	"io"
	"strings"

	"github.com/reusee/minic/compiler"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const mermaidScript = "https://cdn.jsdelivr.net/npm/mermaid/dist/mermaid.min.js"

// attrs takes key, value pairs.
func attrs(kv ...string) []html.Attribute {
	ret := make([]html.Attribute, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		ret = append(ret, html.Attribute{
			Key: kv[i],
			Val: kv[i+1],
		})
	}
	return ret
}

func element(a atom.Atom, attr []html.Attribute, children ...*html.Node) *html.Node {
	node := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attr,
	}
	for _, child := range children {
		node.AppendChild(child)
	}
	return node
}

func text(s string) *html.Node {
	return &html.Node{
		Type: html.TextNode,
		Data: s,
	}
}

// HTML writes a standalone report page for result.
func HTML(w io.Writer, result *compiler.Result) error {
	body := element(atom.Body, nil,
		element(atom.H1, nil, text("Compiler Output")),
		element(atom.Pre, attrs("id", "compilerOutput"), text(result.Report())),
	)

	if errs := result.Errors(); len(errs) > 0 {
		body.AppendChild(element(atom.Pre, attrs("id", "errorOutput", "class", "error"),
			text(strings.Join(errs, "\n")+"\n")))
	}

	tbody := element(atom.Tbody, nil)
	for _, sym := range result.Symbols {
		tbody.AppendChild(element(atom.Tr, nil,
			element(atom.Td, nil, text(sym.Name)),
			element(atom.Td, nil, text(sym.Kind)),
			element(atom.Td, nil, text(sym.Scope)),
		))
	}
	body.AppendChild(element(atom.H2, nil, text("Symbol Table")))
	body.AppendChild(element(atom.Table, attrs("id", "symbolTable"),
		element(atom.Thead, nil,
			element(atom.Tr, nil,
				element(atom.Th, nil, text("Name")),
				element(atom.Th, nil, text("Kind")),
				element(atom.Th, nil, text("Scope")),
			),
		),
		tbody,
	))

	if result.Tree != nil {
		body.AppendChild(element(atom.H2, nil, text("Parse Tree")))
		body.AppendChild(element(atom.Div, attrs("class", "mermaid"),
			text(result.Tree.String())))
		body.AppendChild(element(atom.Script, attrs("src", mermaidScript)))
		body.AppendChild(element(atom.Script, nil,
			text("mermaid.initialize({ startOnLoad: true });")))
	}

	doc := &html.Node{
		Type: html.DocumentNode,
	}
	doc.AppendChild(&html.Node{
		Type: html.DoctypeNode,
		Data: "html",
	})
	doc.AppendChild(element(atom.Html, nil,
		element(atom.Head, nil,
			element(atom.Meta, attrs("charset", "utf-8")),
			element(atom.Title, nil, text("minic")),
		),
		body,
	))

	if err := html.Render(w, doc); err != nil {
		return wrap(err)
	}
	return nil
}
