package internal

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/macroforge/macrokit/diag"
)

const tabWidth = 8

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
)

// FormatSyntaxError renders a macro syntax error with the offending source
// line and a caret under the error column.
func FormatSyntaxError(err *diag.SyntaxError, sourceCode *SourceCode, filename string) string {
	var builder strings.Builder
	builder.WriteString(errorStyle.Sprint("error: ") + messageStyle.Sprint(err.Msg) + "\n")
	builder.WriteString(lineStyle.Sprint(" --> ") + fileStyle.Sprintf("%s:%s", filename, err.Pos) + "\n")

	if !err.Pos.IsValid() || err.Pos.Line > len(sourceCode.Lines) {
		return builder.String()
	}

	lineNumberStr := fmt.Sprintf("%d", err.Pos.Line)
	padding := strings.Repeat(" ", len(lineNumberStr))

	line := expandTabs(sourceCode.Lines[err.Pos.Line-1])
	builder.WriteString(lineStyle.Sprintf(" %s|\n", padding))
	builder.WriteString(lineStyle.Sprintf(" %s | ", lineNumberStr))
	builder.WriteString(line + "\n")

	visualColumn := calculateVisualColumn(sourceCode.Lines[err.Pos.Line-1], err.Pos.Column)
	builder.WriteString(lineStyle.Sprintf(" %s | ", padding))
	builder.WriteString(strings.Repeat(" ", visualColumn))
	builder.WriteString(messageStyle.Sprintf("^ %s\n", err.Msg))

	return builder.String()
}

func expandTabs(line string) string {
	var expanded strings.Builder
	for i, ch := range line {
		if ch == '\t' {
			spaceCount := tabWidth - (i % tabWidth)
			expanded.WriteString(strings.Repeat(" ", spaceCount))
		} else {
			expanded.WriteRune(ch)
		}
	}
	return expanded.String()
}

func calculateVisualColumn(line string, column int) int {
	visualColumn := 0
	for i, ch := range line {
		if i+1 == column {
			break
		}
		if ch == '\t' {
			visualColumn += tabWidth - (visualColumn % tabWidth)
		} else {
			visualColumn++
		}
	}
	return visualColumn
}
