package sink

import (
	"bytes"
	"html/template"

	"github.com/matzehuels/mosaic/pkg/render/layout"
)

// HTMLOption configures HTML rendering via [RenderHTML].
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	class    string
	document bool
	title    string
}

// WithHTMLClass sets the class attribute of the <table> element.
func WithHTMLClass(class string) HTMLOption { return func(r *htmlRenderer) { r.class = class } }

// WithHTMLDocument wraps the table in a minimal standalone page with the
// given title and a stylesheet that makes every cell square.
func WithHTMLDocument(title string) HTMLOption {
	return func(r *htmlRenderer) { r.document = true; r.title = title }
}

var htmlTemplate = template.Must(template.New("mosaic").Parse(
	`{{define "table"}}<table{{with .Class}} class="{{.}}"{{end}} data-rows="{{.RowCount}}" data-columns="{{.ColumnCount}}">
{{range .TableRows}}<tr>{{range .}}<td{{if gt .RowSpan 1}} rowspan="{{.RowSpan}}"{{end}}{{if gt .ColSpan 1}} colspan="{{.ColSpan}}"{{end}} data-shape="{{.Shape}}">{{.Index}}</td>{{end}}</tr>
{{end}}</table>
{{end}}{{if .Document}}<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
table { border-collapse: collapse; table-layout: fixed; }
td { border: 1px solid #999; width: 3em; height: 3em; text-align: center; }
td[data-shape="TALL"] { background: #dde9f7; }
td[data-shape="WIDE"] { background: #f7ecdd; }
</style>
</head>
<body>
{{template "table" .}}</body>
</html>
{{else}}{{template "table" .}}{{end}}`))

type htmlData struct {
	Class       string
	RowCount    int
	ColumnCount int
	TableRows   [][]layout.Block
	Document    bool
	Title       string
}

// RenderHTML renders l as a <table>. Tiles are numbered from 1 in row-major
// order; tall tiles use rowspan="2" and wide tiles colspan="2", so the cells
// covered by a tile's second half are omitted.
func RenderHTML(l layout.Layout, opts ...HTMLOption) ([]byte, error) {
	r := htmlRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	data := htmlData{
		Class:       r.class,
		RowCount:    l.Rows,
		ColumnCount: l.Columns,
		TableRows:   l.RowBlocks(),
		Document:    r.document,
		Title:       r.title,
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
