// Package viz renders arrays and scenario results for the terminal.
//
//   - [RenderResult]: step-by-step scenario report
//   - [Plot]: asciigraph line chart of a numeric array
//   - [Sparkline]: one-line chart of a value series
//
// Styles are plain lipgloss styles; they degrade to unstyled text when the
// output is not a terminal.
package viz
