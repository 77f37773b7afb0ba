package mddoc

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"text/template"
)

// Generator is the content of the generator meta tag.
const Generator = "mddoc"

// pageTemplate is the fixed page layout. Slots other than Title hold trusted
// HTML and are substituted verbatim, so text/template is used rather than
// html/template (which would also strip the legacy-browser comment).
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="generator" content="{{.Generator}}">
    <title>{{.Title}}</title>

    {{.CSS}}
    {{.InHeader}}
</head>
<body>
    <!--[if lte IE 8]>
    <div class="warning">
        This old browser is unsupported and will most likely display funky
        things.
    </div>
    <![endif]-->

    {{.BeforeContent}}
    <h1 class="title">{{.Title}}</h1>
    {{.Body}}
    <script type="text/javascript">
        window.playgroundUrl = "{{.PlaygroundURL}}";
    </script>
    {{.AfterContent}}
</body>
</html>`))

// Page holds the slot values of an assembled document.
type Page struct {
	Title         string   // plain text, escaped on assembly
	Stylesheets   []string // one <link> per URL, in order
	Fragments     Fragments
	BodyHTML      string // pre-rendered, inserted verbatim
	PlaygroundURL string
}

type pageSlots struct {
	Generator     string
	Title         string
	CSS           string
	InHeader      string
	BeforeContent string
	Body          string
	PlaygroundURL string
	AfterContent  string
}

// Assemble instantiates the page template.
// Only the title is HTML-escaped; every other slot is inserted as given.
func Assemble(p Page) ([]byte, error) {
	slots := pageSlots{
		Generator:     Generator,
		Title:         html.EscapeString(p.Title),
		CSS:           stylesheetLinks(p.Stylesheets),
		InHeader:      p.Fragments.InHeader,
		BeforeContent: p.Fragments.BeforeContent,
		Body:          p.BodyHTML,
		PlaygroundURL: p.PlaygroundURL,
		AfterContent:  p.Fragments.AfterContent,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, slots); err != nil {
		return nil, fmt.Errorf("assembling page: %w", err)
	}
	return buf.Bytes(), nil
}

// stylesheetLinks renders one link tag per URL, preserving order.
func stylesheetLinks(urls []string) string {
	var b strings.Builder
	for _, u := range urls {
		fmt.Fprintf(&b, "<link rel=\"stylesheet\" type=\"text/css\" href=\"%s\">\n", u)
	}
	return b.String()
}
