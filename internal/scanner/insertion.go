package scanner

import (
	"fmt"
	"strings"

	"github.com/ludo-technologies/qmllink/domain"
)

// PlanImportInsertion computes where a new script import line should be
// spliced into markup text. Script imports always follow ordinary imports,
// separated from them by exactly one blank line, and no duplicate blank
// lines are introduced when one already exists at the target location.
func PlanImportInsertion(source string) domain.ImportInsertionPoint {
	lines := strings.Split(source, "\n")

	lastOrdinary := -1
	lastScript := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "import ") {
			continue
		}
		if importPattern.MatchString(trimmed) {
			lastScript = i
		} else {
			lastOrdinary = i
		}
	}

	switch {
	case lastScript >= 0:
		// Append to the existing script-import block.
		line := lastScript + 1
		return domain.ImportInsertionPoint{
			Line:                   line,
			NeedsTrailingBlankLine: !lineIsBlank(lines, line),
		}

	case lastOrdinary >= 0:
		// Start a script-import block below the ordinary imports. When a
		// blank line already follows them, insert after it instead of
		// requesting another.
		line := lastOrdinary + 1
		needsBlank := true
		if lineIsBlank(lines, line) {
			line++
			needsBlank = false
		}
		return domain.ImportInsertionPoint{
			Line:                   line,
			NeedsBlankLine:         needsBlank,
			NeedsTrailingBlankLine: true,
		}

	default:
		// No imports at all: insert at the top. A trailing blank line is
		// only needed when there is content to separate from.
		return domain.ImportInsertionPoint{
			Line:                   0,
			NeedsTrailingBlankLine: strings.TrimSpace(source) != "",
		}
	}
}

// ApplyImportInsertion splices statement into source at the planned point,
// honoring the plan's blank-line requests.
func ApplyImportInsertion(source, statement string, point domain.ImportInsertionPoint) string {
	lines := strings.Split(source, "\n")

	var insert []string
	if point.NeedsBlankLine {
		insert = append(insert, "")
	}
	insert = append(insert, statement)
	if point.NeedsTrailingBlankLine {
		insert = append(insert, "")
	}

	at := point.Line
	if at > len(lines) {
		at = len(lines)
	}

	out := make([]string, 0, len(lines)+len(insert))
	out = append(out, lines[:at]...)
	out = append(out, insert...)
	out = append(out, lines[at:]...)
	return strings.Join(out, "\n")
}

// FormatImportStatement renders a script import declaration for the given
// relative path and alias.
func FormatImportStatement(relativePath, alias string) string {
	return fmt.Sprintf("import %q as %s", relativePath, alias)
}

func lineIsBlank(lines []string, i int) bool {
	return i >= 0 && i < len(lines) && strings.TrimSpace(lines[i]) == ""
}
