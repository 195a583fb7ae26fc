package errors

import (
	"fmt"
	"strings"
)

// Format renders the error with the offending source line and a caret
// pointing at the error column. If color is true, ANSI color codes are used
// for terminal output. The core never calls this; it exists for drivers
// such as the CLI.
func (e *Error) Format(source, file string, color bool) string {
	var sb strings.Builder

	if file != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d:%d\n", file, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d:%d\n", e.Pos.Line, e.Pos.Column))
	}

	sourceLine := lineOf(source, e.Pos.Line)
	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		col := e.Pos.Column
		if col < 1 {
			col = 1
		}
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+col-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.message())
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// lineOf extracts a specific 1-indexed line from the source code.
func lineOf(source string, lineNum int) string {
	if source == "" {
		return ""
	}

	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}

	return lines[lineNum-1]
}
