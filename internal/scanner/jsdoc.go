package scanner

import (
	"regexp"
	"strings"

	"github.com/ludo-technologies/qmllink/domain"
)

// DefaultType is used wherever a documentation block omits a type
// annotation.
const DefaultType = "any"

// docBlock is the parsed form of one documentation comment.
type docBlock struct {
	Description string
	Params      []domain.ParamDoc
	ReturnType  string
}

func emptyDocBlock() docBlock {
	return docBlock{ReturnType: DefaultType}
}

// docScanState drives the backward scan over source lines. The scan starts
// looking for a block terminator and switches to collecting once one is
// seen.
type docScanState int

const (
	seekTerminator docScanState = iota
	collectBlock
)

var (
	paramPattern   = regexp.MustCompile(`@param\s+(?:\{([^}]*)\}\s*)?([A-Za-z_$][A-Za-z0-9_$]*)?\s*(?:-\s*(.*))?`)
	returnsPattern = regexp.MustCompile(`@returns?\b\s*(?:\{([^}]*)\})?`)
)

// extractDocumentation scans upward from the line preceding functionLine
// for an immediately adjacent documentation block. A blank line between the
// block and the declaration, or a missing terminator, yields the
// all-default result.
func extractDocumentation(lines []string, functionLine int) docBlock {
	state := seekTerminator
	var block []string

	for i := functionLine - 1; i >= 0 && i < len(lines); i-- {
		trimmed := strings.TrimSpace(lines[i])

		switch state {
		case seekTerminator:
			if trimmed == "" {
				return emptyDocBlock()
			}
			if strings.HasSuffix(trimmed, "*/") {
				block = append(block, lines[i])
				if strings.Contains(trimmed, "/**") {
					return parseDocBlock(reverseLines(block))
				}
				state = collectBlock
			}
			// Non-blank, non-terminator lines are skipped; the scan
			// keeps looking upward until a blank line or the file
			// start ends it.

		case collectBlock:
			block = append(block, lines[i])
			if strings.Contains(trimmed, "/**") {
				return parseDocBlock(reverseLines(block))
			}
		}
	}

	// File start reached without a complete block.
	return emptyDocBlock()
}

// parseDocBlock extracts description, @param and @returns data from the
// lines of one documentation comment, given in file order.
func parseDocBlock(lines []string) docBlock {
	doc := emptyDocBlock()
	returnSeen := false
	tagSeen := false
	var description []string

	for _, line := range lines {
		text := stripCommentDecoration(line)
		if text == "" {
			continue
		}

		switch {
		case strings.HasPrefix(text, "@param"):
			tagSeen = true
			doc.Params = append(doc.Params, parseParamTag(text))

		case strings.HasPrefix(text, "@return"):
			tagSeen = true
			if returnSeen {
				continue
			}
			returnSeen = true
			if m := returnsPattern.FindStringSubmatch(text); m != nil && m[1] != "" {
				doc.ReturnType = m[1]
			}
			// Description text after the annotation is discarded.

		case strings.HasPrefix(text, "@"):
			// Unknown tags end the description but are otherwise
			// ignored.
			tagSeen = true

		default:
			// Only the leading free text before the first tag forms
			// the description.
			if !tagSeen {
				description = append(description, text)
			}
		}
	}

	doc.Description = strings.Join(description, " ")
	return doc
}

// parseParamTag parses one "@param {Type} name - description" line. The
// type defaults to "any" and the description to empty.
func parseParamTag(text string) domain.ParamDoc {
	param := domain.ParamDoc{Type: DefaultType}
	m := paramPattern.FindStringSubmatch(text)
	if m == nil {
		return param
	}
	if m[1] != "" {
		param.Type = m[1]
	}
	param.Name = m[2]
	param.Description = strings.TrimSpace(m[3])
	return param
}

// stripCommentDecoration removes the comment markers and per-line asterisk
// prefix from one documentation line.
func stripCommentDecoration(line string) string {
	text := strings.TrimSpace(line)
	text = strings.TrimPrefix(text, "/**")
	text = strings.TrimSuffix(text, "*/")
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "*")
	return strings.TrimSpace(text)
}

func reverseLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[len(lines)-1-i] = line
	}
	return out
}
