package render

import (
	"html/template"
	"io"

	"github.com/yumyai/protparam/logger"
	"github.com/yumyai/protparam/pkg/protparam"
	"go.uber.org/zap"
)

var (
	main_page_template     *template.Template
	analysis_page_template *template.Template
)

// MainPageData fills the submission form, including after a rejected input.
type MainPageData struct {
	Sequence     string
	Label        string
	ErrorMessage string
}

// AnalysisPageData describes one finished analysis.
type AnalysisPageData struct {
	ID     string
	Label  string
	Result *protparam.Result
}

// residue row for the composition table, in alphabet order
type compositionRow struct {
	Code    string
	Count   int
	Percent float64
}

func compositionRows(res *protparam.Result) []compositionRow {
	rows := make([]compositionRow, 0, len(protparam.Alphabet))
	for i := 0; i < len(protparam.Alphabet); i++ {
		code := protparam.Alphabet[i : i+1]
		rows = append(rows, compositionRow{
			Code:    code,
			Count:   res.Composition[code],
			Percent: res.Percent[code],
		})
	}
	return rows
}

var funcs = template.FuncMap{
	"f1":          func(v float64) string { return Fixed(v, 1) },
	"f2":          func(v float64) string { return Fixed(v, 2) },
	"f3":          func(v float64) string { return Fixed(v, 3) },
	"pct":         func(v float64) string { return Fixed(v*100, 1) },
	"composition": compositionRows,
}

// init initializes the templates used for rendering the HTML pages.
func init() {
	head := `
	<!DOCTYPE html>
	<html>
	<head>
	    <title>ProtParam</title>
	    <style>
        pre { white-space: pre-wrap; word-wrap: break-word; }
        table { border-collapse: collapse; }
        td, th { padding: 2px 8px; text-align: right; }
        .error { color: red; }
   		</style>
	</head>`

	mainTmpl := head + `
	<body>
		<h1>ProtParam</h1>
		{{ if .ErrorMessage }}<p class="error">{{ .ErrorMessage }}</p>{{ end }}
		<form method="POST" action="/analyze">
			<p><label>Label <input type="text" name="label" value="{{ .Label }}"></label></p>
			<p><textarea name="sequence" rows="12" cols="80" placeholder="Paste a protein sequence or FASTA">{{ .Sequence }}</textarea></p>
			<p><label><input type="checkbox" name="save" value="true"> Keep in history</label></p>
			<p><button type="submit">Compute parameters</button></p>
		</form>
	</body>
	</html>`

	analysisTmpl := head + `
	<body>
		<h1>ProtParam</h1>
		{{ if .Label }}<h2>{{ .Label }}</h2>{{ end }}
		{{ if .ID }}<p><strong>Analysis ID:</strong> {{ .ID }}</p>{{ end }}
		{{ with .Result }}
		<pre>{{ .Sequence }}</pre>
		<table>
			<tr><th>Number of amino acids</th><td>{{ .Length }}</td></tr>
			<tr><th>Molecular weight (Da)</th><td>{{ f2 .MolecularWeight }}</td></tr>
			<tr><th>Theoretical pI</th><td>{{ f2 .IsoelectricPoint }}</td></tr>
			<tr><th>Formula</th><td>{{ .Formula }}</td></tr>
			<tr><th>Total number of atoms</th><td>{{ .TotalAtoms }}</td></tr>
			<tr><th>Negatively charged residues (Asp + Glu)</th><td>{{ .NegativeResidues }}</td></tr>
			<tr><th>Positively charged residues (Arg + Lys)</th><td>{{ .PositiveResidues }}</td></tr>
			<tr><th>Ext. coefficient, all Cys reduced (M<sup>-1</sup> cm<sup>-1</sup>)</th><td>{{ .Extinction.Reduced }}</td></tr>
			<tr><th>Ext. coefficient, all pairs of Cys form cystines</th><td>{{ .Extinction.Oxidized }}</td></tr>
			<tr><th>Abs 0.1% (=1 g/l), reduced</th><td>{{ f3 .Absorbance.Reduced }}</td></tr>
			<tr><th>Abs 0.1% (=1 g/l), oxidized</th><td>{{ f3 .Absorbance.Oxidized }}</td></tr>
			<tr><th>Instability index</th><td>{{ f2 .InstabilityIndex }} ({{ .Stability }})</td></tr>
			<tr><th>Aliphatic index</th><td>{{ f2 .AliphaticIndex }}</td></tr>
			<tr><th>GRAVY</th><td>{{ f3 .Gravy }}</td></tr>
			<tr><th>Aromaticity</th><td>{{ pct .Aromaticity }}%</td></tr>
		</table>
		<h3>Amino acid composition</h3>
		<table>
			<tr><th>Residue</th><th>Count</th><th>%</th></tr>
			{{ range composition . }}
			<tr><td>{{ .Code }}</td><td>{{ .Count }}</td><td>{{ f1 .Percent }}</td></tr>
			{{ end }}
		</table>
		<h3>Atomic composition</h3>
		<table>
			<tr><th>C</th><th>H</th><th>N</th><th>O</th><th>S</th></tr>
			<tr><td>{{ .Atoms.C }}</td><td>{{ .Atoms.H }}</td><td>{{ .Atoms.N }}</td><td>{{ .Atoms.O }}</td><td>{{ .Atoms.S }}</td></tr>
		</table>
		{{ end }}
		<p><a href="/">New analysis</a></p>
	</body>
	</html>`

	main_page_template = template.Must(template.New("main_page").Funcs(funcs).Parse(mainTmpl))
	analysis_page_template = template.Must(template.New("analysis_page").Funcs(funcs).Parse(analysisTmpl))
}

// Render the sequence submission form
func RenderMainPage(w io.Writer, data MainPageData) error {
	return main_page_template.Execute(w, data)
}

// Render the parameter table of one analysis
func RenderAnalysisPage(w io.Writer, data AnalysisPageData) error {
	if data.Result != nil {
		logger.Info("Rendering analysis page", zap.String("id", data.ID), zap.Int("length", data.Result.Length))
	}
	return analysis_page_template.Execute(w, data)
}
