package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/dynvec/internal/dynarray"
	"github.com/san-kum/dynvec/internal/scenario"
)

// RenderArray styles the textual rendering of a.
func RenderArray[T any](a *dynarray.Array[T]) string {
	return Value.Render(a.String())
}

// RenderResult renders one line per step followed by the final arrays.
func RenderResult(res *scenario.Result) string {
	var b strings.Builder

	title := res.Name
	if title == "" {
		title = "scenario"
	}
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%s (%s)", title, res.Element)))
	b.WriteString("\n")

	for _, s := range res.Steps {
		status := StatusOK.Render("OK")
		detail := s.Output
		if s.Err != nil {
			status = StatusFail.Render("ERR")
			detail = s.Err.Error()
		}
		fmt.Fprintf(&b, "%s %s %s %s\n",
			Label.Render(fmt.Sprintf("%2d", s.Index)),
			status,
			Label.Render(fmt.Sprintf("%-13s %-6s", s.Op, s.Target)),
			detail,
		)
	}

	if len(res.Arrays) > 0 {
		var lines []string
		for _, a := range res.Arrays {
			line := fmt.Sprintf("%s = %s", Label.Render(a.Name), Value.Render(a.Rendered))
			if spark := Sparkline(a.Values); spark != "" {
				line += "  " + spark
			}
			lines = append(lines, line)
		}
		b.WriteString("\n")
		b.WriteString(Panel("arrays", strings.Join(lines, "\n")))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s %s\n", Label.Render("failed steps:"), Value.Render(fmt.Sprint(res.Failed())))
	return b.String()
}

// Plot draws a numeric array as a line chart, one point per element. Arrays
// holding NaN or an infinity have no finite scale and are not drawn.
func Plot[T dynarray.Number](a *dynarray.Array[T], caption string) string {
	if a.Len() == 0 {
		return Subtle.Render("(empty)")
	}

	data := make([]float64, 0, a.Len())
	for v := range a.Values() {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Subtle.Render("(not finite)")
		}
		data = append(data, f)
	}

	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(max(a.Len(), 40)),
		asciigraph.Caption(caption),
	)
}
