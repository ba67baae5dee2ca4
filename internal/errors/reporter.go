package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"ssac/internal/ast"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError represents a structured error with suggestions and context
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0001
	Message     string       // Primary error message
	Position    ast.Position // Location in source
	Length      int          // Length of the problematic region
	Suggestions []Suggestion // Suggested fixes
	Notes       []string     // Additional context notes
	HelpText    string       // Help text for the error
}

// Error implements the error interface with a plain, uncolored summary
func (e CompilerError) Error() string {
	if e.Position.Line == 0 {
		return fmt.Sprintf("%s[%s]: %s", e.Level, e.Code, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s[%s]: %s",
		e.Position.Filename, e.Position.Line, e.Position.Column, e.Level, e.Code, e.Message)
}

// IsWarning reports whether the error is a warning
func (e CompilerError) IsWarning() bool {
	return e.Level == Warning || IsWarning(e.Code)
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message     string       // Description of the suggestion
	Replacement string       // Suggested replacement text (optional)
	Position    ast.Position // Position to apply the fix (optional)
	Length      int          // Length of text to replace (optional)
}

// ErrorReporter renders errors of one source file with an excerpt of the
// offending lines
type ErrorReporter struct {
	filename string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

var (
	levelStyles = map[ErrorLevel]*color.Color{
		Error:   color.New(color.FgRed, color.Bold),
		Warning: color.New(color.FgYellow, color.Bold),
		Note:    color.New(color.FgBlue, color.Bold),
		Help:    color.New(color.FgGreen, color.Bold),
	}
	gutterStyle     = color.New(color.Faint)
	lineStyle       = color.New(color.Bold)
	suggestionStyle = color.New(color.FgCyan)
	noteStyle       = color.New(color.FgBlue)
	helpStyle       = color.New(color.FgGreen)
)

// FormatErrors formats several errors in order
func (er *ErrorReporter) FormatErrors(errs []CompilerError) string {
	var out strings.Builder
	for _, err := range errs {
		out.WriteString(er.FormatError(err))
	}
	return out.String()
}

// FormatError renders a header, the source line with its neighbours, a marker
// under the span, then suggestions, notes and help. Every error ends with an
// empty line.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var out strings.Builder

	level := levelStyle(err.Level).Sprint(string(err.Level))
	if err.Code != "" {
		level += "[" + err.Code + "]"
	}
	fmt.Fprintf(&out, "%s: %s\n", level, err.Message)

	if err.Position.Line == 0 {
		out.WriteString("\n")
		return out.String()
	}

	g := gutter{width: max(3, len(strconv.Itoa(err.Position.Line)))}
	line := err.Position.Line

	fmt.Fprintf(&out, "%s %s %s:%d:%d\n", g.blank(), gutterStyle.Sprint("-->"), er.filename, line, err.Position.Column)
	out.WriteString(g.bar(""))

	if text, ok := er.line(line - 1); ok {
		out.WriteString(g.numbered(line-1, gutterStyle, text))
	}
	if text, ok := er.line(line); ok {
		out.WriteString(g.numbered(line, lineStyle, text))
		out.WriteString(g.bar(er.createMarker(err.Position.Column, err.Length, err.Level)))
	}
	if text, ok := er.line(line + 1); ok {
		out.WriteString(g.numbered(line+1, gutterStyle, text))
	}

	if len(err.Suggestions) > 0 {
		out.WriteString(g.bar(""))
	}
	for i, suggestion := range err.Suggestions {
		if i == 0 {
			fmt.Fprintf(&out, "%s %s %s: %s\n", g.blank(), suggestionStyle.Sprint("help"), suggestionStyle.Sprint("try"), suggestion.Message)
		} else {
			fmt.Fprintf(&out, "%s      %s\n", g.blank(), suggestion.Message)
		}
		if suggestion.Replacement != "" {
			out.WriteString(g.bar(""))
			for _, replacement := range strings.Split(suggestion.Replacement, "\n") {
				fmt.Fprintf(&out, "%s %s %s\n", g.blank(), suggestionStyle.Sprint("│"), suggestionStyle.Sprint(replacement))
			}
		}
	}

	for _, note := range err.Notes {
		out.WriteString(g.bar(noteStyle.Sprint("note:") + " " + note))
	}
	if err.HelpText != "" {
		out.WriteString(g.bar(helpStyle.Sprint("help:") + " " + err.HelpText))
	}

	out.WriteString("\n")
	return out.String()
}

// line returns the 1-based source line n
func (er *ErrorReporter) line(n int) (string, bool) {
	if n < 1 || n > len(er.lines) {
		return "", false
	}
	return er.lines[n-1], true
}

// createMarker underlines the offending span in the color of its level
func (er *ErrorReporter) createMarker(column, length int, level ErrorLevel) string {
	return strings.Repeat(" ", max(0, column-1)) + levelStyle(level).Sprint(strings.Repeat("^", max(1, length)))
}

func levelStyle(level ErrorLevel) *color.Color {
	if style, ok := levelStyles[level]; ok {
		return style
	}
	return levelStyles[Error]
}

// gutter is the line-number column left of a source excerpt
type gutter struct {
	width int
}

func (g gutter) blank() string {
	return strings.Repeat(" ", g.width)
}

func (g gutter) bar(text string) string {
	if text == "" {
		return fmt.Sprintf("%s %s\n", g.blank(), gutterStyle.Sprint("│"))
	}
	return fmt.Sprintf("%s %s %s\n", g.blank(), gutterStyle.Sprint("│"), text)
}

func (g gutter) numbered(n int, style *color.Color, text string) string {
	return fmt.Sprintf("%s %s %s\n", style.Sprintf("%*d", g.width, n), gutterStyle.Sprint("│"), text)
}
