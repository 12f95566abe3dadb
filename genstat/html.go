// Copyright 2026 The Sudostat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genstat

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/google/safehtml/template"
)

// SummaryPath derives the output path for an input log path by
// replacing the input's extension with "-summary.html".
func SummaryPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "-summary.html"
}

// A Renderer writes report documents as HTML using one Formatter's
// locale for every number in the document.
type Renderer struct {
	solve    *template.Template
	generate *template.Template
	improper *template.Template
}

// NewRenderer returns a renderer whose numeric output is produced by f.
func NewRenderer(f *Formatter) *Renderer {
	funcs := template.FuncMap{
		"count": f.Count,
		"stat":  f.Stat,
	}
	parse := func(name string, src template.TrustedTemplate) *template.Template {
		return template.Must(template.New(name).Funcs(funcs).ParseFromTrustedTemplate(src))
	}
	return &Renderer{
		solve:    parse("solve", template.MakeTrustedTemplate(solveTemplate)),
		generate: parse("generate", template.MakeTrustedTemplate(generateTemplate)),
		improper: parse("improper", template.MakeTrustedTemplate(improperTemplate)),
	}
}

// RenderSolve writes rep to w as an HTML document.
func (r *Renderer) RenderSolve(w io.Writer, rep *SolveReport) error {
	return r.solve.Execute(w, rep)
}

// RenderGenerate writes rep to w as an HTML document.
func (r *Renderer) RenderGenerate(w io.Writer, rep *GenReport) error {
	return r.generate.Execute(w, rep)
}

// RenderImproper writes rep to w as an HTML document.
func (r *Renderer) RenderImproper(w io.Writer, rep *ImproperReport) error {
	return r.improper.Execute(w, rep)
}

const pageStyle = `<style>
body { font-family: sans-serif; }
table { border-collapse: collapse; margin-bottom: 1em; }
th, td { border: 1px solid #ccc; padding: 0.2em 0.6em; text-align: right; }
th:first-child, td:first-child { text-align: left; }
caption { text-align: left; font-weight: bold; padding: 0.2em 0; }
</style>`

const solveTemplate = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>Solver summary</title>` + pageStyle + `</head>
<body>
<h1>Solver summary</h1>
<p>{{count .Count}} puzzles &mdash; {{.When.Format "2006-01-02 15:04:05"}}</p>
{{range .Strategies}}
<h2>{{.Name}}</h2>
<table>
<caption>Overall</caption>
<tr><th></th><th>count</th><th>mean</th><th>std dev</th></tr>
<tr><td>Steps</td><td>{{count .Steps.Count}}</td><td>{{stat .Steps.Mean}}</td><td>{{stat .Steps.StdDev}}</td></tr>
<tr><td>&micro;s/step</td><td>{{count .PerStep.Count}}</td><td>{{stat .PerStep.Mean}}</td><td>{{stat .PerStep.StdDev}}</td></tr>
<tr><td>&micro;s</td><td>{{count .Total.Count}}</td><td>{{stat .Total.Mean}}</td><td>{{stat .Total.StdDev}}</td></tr>
</table>
{{range .BySolutions}}
<table>
<caption>{{.Solutions}} solution(s)</caption>
<tr><th></th><th>count</th><th>mean</th><th>std dev</th></tr>
<tr><td>Steps</td><td>{{count .Steps.Count}}</td><td>{{stat .Steps.Mean}}</td><td>{{stat .Steps.StdDev}}</td></tr>
<tr><td>&micro;s/step</td><td>{{count .PerStep.Count}}</td><td>{{stat .PerStep.Mean}}</td><td>{{stat .PerStep.StdDev}}</td></tr>
<tr><td>&micro;s</td><td>{{count .Overall.Count}}</td><td>{{stat .Overall.Mean}}</td><td>{{stat .Overall.StdDev}}</td></tr>
{{range .BySteps -}}
<tr><td>&micro;s at {{.Steps}} steps</td><td>{{count .Time.Count}}</td><td>{{stat .Time.Mean}}</td><td>{{stat .Time.StdDev}}</td></tr>
{{end -}}
</table>
{{end}}
{{end}}
</body>
</html>
`

const generateTemplate = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>Generator summary</title>` + pageStyle + `</head>
<body>
<h1>Generator summary</h1>
<p>{{count .Count}} puzzles &mdash; {{.When.Format "2006-01-02 15:04:05"}}</p>
<h2>Generators</h2>
{{range .Generators}}
<table>
<caption>{{.Name}}</caption>
<tr><th></th><th>mean</th><th>std dev</th></tr>
<tr><td>Time (ms)</td><td>{{stat .Time.Mean}}</td><td>{{stat .Time.StdDev}}</td></tr>
<tr><td>Clues</td><td>{{stat .Clues.Mean}}</td><td>{{stat .Clues.StdDev}}</td></tr>
{{range .ByGenerator -}}
<tr><td>vs {{.Name}}: time (ms)</td><td>{{stat .Time.Mean}}</td><td>{{stat .Time.StdDev}}</td></tr>
<tr><td>vs {{.Name}}: clues</td><td>{{stat .Clues.Mean}}</td><td>{{stat .Clues.StdDev}}</td></tr>
{{end -}}
</table>
{{end}}
<h2>Symmetries</h2>
{{range .Symmetries}}
<table>
<caption>{{.Name}}</caption>
<tr><th></th><th>mean</th><th>std dev</th></tr>
<tr><td>Time (ms)</td><td>{{stat .Time.Mean}}</td><td>{{stat .Time.StdDev}}</td></tr>
<tr><td>Clues</td><td>{{stat .Clues.Mean}}</td><td>{{stat .Clues.StdDev}}</td></tr>
{{range .ByGenerator -}}
<tr><td>{{.Name}}: time (ms)</td><td>{{stat .Time.Mean}}</td><td>{{stat .Time.StdDev}}</td></tr>
<tr><td>{{.Name}}: clues</td><td>{{stat .Clues.Mean}}</td><td>{{stat .Clues.StdDev}}</td></tr>
{{end -}}
</table>
{{end}}
</body>
</html>
`

const improperTemplate = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>Improper puzzle summary</title>` + pageStyle + `</head>
<body>
<h1>Improper puzzle summary</h1>
<p>{{.Marker}}</p>
<p>{{count .Count}} puzzles &mdash; {{.When.Format "2006-01-02 15:04:05"}}</p>
{{template "group" .All}}
{{range .Symmetries}}
{{template "group" .}}
{{end}}
{{define "group"}}
<table>
<caption>{{.Name}}</caption>
<tr><th></th><th>count</th><th>mean</th><th>std dev</th></tr>
<tr><td>Solutions</td><td>{{count .Solns.Count}}</td><td>{{stat .Solns.Mean}}</td><td>{{stat .Solns.StdDev}}</td></tr>
<tr><td>Holes</td><td>{{count .Holes.Count}}</td><td>{{stat .Holes.Mean}}</td><td>{{stat .Holes.StdDev}}</td></tr>
{{range .BySolutions -}}
<tr><td>Holes at {{.Solutions}} solution(s)</td><td>{{count .Holes.Count}}</td><td>{{stat .Holes.Mean}}</td><td>{{stat .Holes.StdDev}}</td></tr>
{{end -}}
</table>
{{end}}
</body>
</html>
`
