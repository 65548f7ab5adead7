// Package formatter renders the namespace prefix that leads every
// logger line: "[name]:" styled with the color of the method that
// emitted it.
//
// Styling goes through lipgloss, which degrades automatically with
// the terminal's color profile — on a dumb terminal or a redirected
// stream the prefix comes out as plain text, so captured output stays
// grep-friendly.
package formatter
