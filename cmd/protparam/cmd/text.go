package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yumyai/protparam/pkg/protparam"
	"github.com/yumyai/protparam/pkg/render"
)

// Color palette
var (
	colorTitle = lipgloss.Color("#4ecdc4")
	colorLabel = lipgloss.Color("#a8dadc")
	colorError = lipgloss.Color("#FF6B6B")
	colorMuted = lipgloss.Color("#666666")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTitle)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorLabel).
			Width(44)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	sequenceStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

const sequenceWrap = 60

func writeText(w io.Writer, reports []Report) error {
	var b strings.Builder
	for i, rep := range reports {
		if i > 0 {
			b.WriteString("\n")
		}
		writeTextReport(&b, i+1, rep)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTextReport(b *strings.Builder, n int, rep Report) {
	title := fmt.Sprintf("Record %d", n)
	if rep.Header != "" {
		title += ": " + rep.Header
	}
	b.WriteString(titleStyle.Render(title) + "\n")

	if rep.Result == nil {
		b.WriteString(errorStyle.Render("Error: "+rep.Error) + "\n")
		return
	}
	res := rep.Result

	b.WriteString(sequenceStyle.Render(wrap(res.Sequence, sequenceWrap)) + "\n\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + value + "\n")
	}

	row("Number of amino acids:", fmt.Sprint(res.Length))
	row("Molecular weight (Da):", render.Fixed(res.MolecularWeight, 2))
	row("Theoretical pI:", render.Fixed(res.IsoelectricPoint, 2))
	if rep.NetCharge != nil {
		row("Net charge:", render.Fixed(*rep.NetCharge, 2))
	}
	row("Formula:", res.Formula)
	row("Total number of atoms:", fmt.Sprint(res.TotalAtoms))
	row("Negatively charged residues (Asp + Glu):", fmt.Sprint(res.NegativeResidues))
	row("Positively charged residues (Arg + Lys):", fmt.Sprint(res.PositiveResidues))
	row("Ext. coefficient, Cys reduced:", fmt.Sprint(res.Extinction.Reduced))
	row("Ext. coefficient, cystines formed:", fmt.Sprint(res.Extinction.Oxidized))
	row("Abs 0.1% (=1 g/l), Cys reduced:", render.Fixed(res.Absorbance.Reduced, 3))
	row("Abs 0.1% (=1 g/l), cystines formed:", render.Fixed(res.Absorbance.Oxidized, 3))
	row("Instability index:", fmt.Sprintf("%s (%s)", render.Fixed(res.InstabilityIndex, 2), res.Stability))
	row("Aliphatic index:", render.Fixed(res.AliphaticIndex, 2))
	row("GRAVY:", render.Fixed(res.Gravy, 3))
	row("Aromaticity:", render.Fixed(res.Aromaticity*100, 1)+"%")

	b.WriteString("\n" + titleStyle.Render("Amino acid composition") + "\n")
	for i := 0; i < len(protparam.Alphabet); i++ {
		code := protparam.Alphabet[i : i+1]
		fmt.Fprintf(b, "  %s %5d %6s%%\n", code, res.Composition[code], render.Fixed(res.Percent[code], 1))
	}
}

func wrap(s string, width int) string {
	var lines []string
	for len(s) > width {
		lines = append(lines, s[:width])
		s = s[width:]
	}
	return strings.Join(append(lines, s), "\n")
}
