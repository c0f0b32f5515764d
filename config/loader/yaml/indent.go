package yaml

import (
	"strings"

	"github.com/0xalexb/hjarta-yaml/config/node"
)

// GuessIndentation re-indents lines whose indentation does not match any open block.
//
// A line indented deeper than its predecessor is only accepted when the predecessor
// opens a block; otherwise it joins the current block. A line that dedents to a column
// between two open blocks joins the innermost block it left. Comments, blank lines and
// block scalar contents are kept as they are.
func GuessIndentation(text string) string {
	lines := strings.Split(text, node.LineSeparator)
	levels := []int{0}
	opens := true
	scalarOwner := -1

	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		indent := len(line) - len(trimmed)

		if scalarOwner >= 0 {
			if strings.TrimSpace(line) == "" || indent > scalarOwner {
				continue
			}

			scalarOwner = -1
		}

		if trimmed == "" || strings.HasPrefix(trimmed, commentPrefix) {
			continue
		}

		if indent == 0 && (strings.HasPrefix(trimmed, documentMarker) || strings.HasPrefix(trimmed, "...")) {
			levels, opens = []int{0}, true

			continue
		}

		indent, levels = placeLine(indent, levels, opens)
		lines[i] = strings.Repeat(" ", indent) + trimmed

		content, column := trimmed, indent
		for content == "-" || strings.HasPrefix(content, "- ") {
			if content == "-" {
				content = ""

				break
			}

			rest := strings.TrimLeft(content[1:], " ")
			column += len(content) - len(rest)
			content = rest

			if column > levels[len(levels)-1] {
				levels = append(levels, column)
			}
		}

		content = stripInlineComment(content)
		opens = content == "" || strings.HasSuffix(content, ":")

		if isBlockScalar(content) {
			scalarOwner = column
		}
	}

	return strings.Join(lines, node.LineSeparator)
}

func placeLine(indent int, levels []int, opens bool) (int, []int) {
	top := levels[len(levels)-1]

	switch {
	case indent > top:
		if !opens {
			return top, levels
		}

		return indent, append(levels, indent)
	case indent < top:
		popped := top
		for len(levels) > 1 && levels[len(levels)-1] > indent {
			popped = levels[len(levels)-1]
			levels = levels[:len(levels)-1]
		}

		if levels[len(levels)-1] != indent {
			return popped, append(levels, popped)
		}
	}

	return indent, levels
}

func stripInlineComment(content string) string {
	if idx := strings.Index(content, " "+commentPrefix); idx >= 0 {
		content = content[:idx]
	}

	return strings.TrimRight(content, " ")
}

// isBlockScalar reports whether content ends with a literal or folded block indicator.
func isBlockScalar(content string) bool {
	value := content
	if idx := strings.LastIndex(content, ": "); idx >= 0 {
		value = strings.TrimSpace(content[idx+2:])
	}

	if value == "" || (value[0] != '|' && value[0] != '>') {
		return false
	}

	return strings.Trim(value[1:], "+-0123456789") == ""
}
