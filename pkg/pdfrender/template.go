package pdfrender

import (
	"fmt"
	"html"
	"html/template"
	"sort"
	"strings"
	"time"
)

// SectionDoc is one rendered report section.
type SectionDoc struct {
	Title string
	Body  template.HTML
}

// ReportDoc feeds the report HTML template.
type ReportDoc struct {
	FullName    string
	CurrentRole string
	TargetRole  string
	Tier        string
	GeneratedAt time.Time
	Sections    []SectionDoc
	Disclaimer  string
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Georgia, serif; color: #1a1a1a; margin: 2em 2.5em; }
  h1 { font-size: 22px; border-bottom: 2px solid #1a1a1a; padding-bottom: 6px; }
  h2 { font-size: 16px; margin-top: 1.6em; text-transform: uppercase; letter-spacing: 0.05em; }
  .meta { color: #555; font-size: 12px; margin-bottom: 2em; }
  ul { margin: 0.3em 0 0.3em 1.2em; padding: 0; }
  li { margin: 0.2em 0; font-size: 13px; }
  .field { font-weight: bold; }
  .disclaimer { margin-top: 3em; font-size: 11px; color: #777; border-top: 1px solid #ccc; padding-top: 1em; }
  @page { size: A4; margin: 18mm 14mm; }
</style>
</head>
<body>
<h1>CareerIQ Analysis</h1>
<div class="meta">{{if .FullName}}{{.FullName}}{{if .CurrentRole}} ({{.CurrentRole}}){{end}} &middot; {{end}}Target role: {{.TargetRole}} &middot; Tier: {{.Tier}} &middot; Generated {{.GeneratedAt.Format "2 Jan 2006"}}</div>
{{range .Sections}}
<h2>{{.Title}}</h2>
{{.Body}}
{{end}}
<div class="disclaimer">{{.Disclaimer}}</div>
</body>
</html>`))

// BuildReportHTML turns the stored section maps into the printable report.
// Section content is schema-versioned JSON, so it is rendered generically
// as nested lists instead of per-field markup.
func BuildReportHTML(doc ReportDoc, sections map[string]interface{}, order []string) (string, error) {
	for _, name := range order {
		section, ok := sections[name].(map[string]interface{})
		if !ok {
			continue
		}
		doc.Sections = append(doc.Sections, SectionDoc{
			Title: titleize(name),
			Body:  template.HTML(renderValue(section)),
		})
	}

	var sb strings.Builder
	if err := reportTemplate.Execute(&sb, doc); err != nil {
		return "", fmt.Errorf("render report template: %w", err)
	}
	return sb.String(), nil
}

func renderValue(v interface{}) string {
	switch val := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var sb strings.Builder
		sb.WriteString("<ul>")
		for _, k := range keys {
			sb.WriteString(`<li><span class="field">`)
			sb.WriteString(html.EscapeString(titleize(k)))
			sb.WriteString(":</span> ")
			sb.WriteString(renderValue(val[k]))
			sb.WriteString("</li>")
		}
		sb.WriteString("</ul>")
		return sb.String()
	case []interface{}:
		var sb strings.Builder
		sb.WriteString("<ul>")
		for _, item := range val {
			sb.WriteString("<li>")
			sb.WriteString(renderValue(item))
			sb.WriteString("</li>")
		}
		sb.WriteString("</ul>")
		return sb.String()
	case string:
		return html.EscapeString(val)
	case nil:
		return ""
	default:
		return html.EscapeString(fmt.Sprintf("%v", val))
	}
}

func titleize(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool { return r == '_' || r == '-' })
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
