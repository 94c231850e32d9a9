package naming

import (
	"fmt"
	"strconv"
	"strings"
)

// branchField is the placeholder resolved by collision resolution rather than
// by the attribute mapping.
const branchField = "bn"

type branchKind int

const (
	branchConcrete branchKind = iota
	branchGlob
	branchCapture
)

// BranchMode selects how the {bn} placeholder renders. Every other
// placeholder always resolves through the attribute mapping.
type BranchMode struct {
	kind   branchKind
	number int
}

// Branch renders {bn} as the concrete number n, producing a real
// destination path.
func Branch(n int) BranchMode {
	return BranchMode{kind: branchConcrete, number: n}
}

// BranchGlob renders {bn} as a filesystem glob wildcard, used to discover
// existing files sharing the rendered prefix.
var BranchGlob = BranchMode{kind: branchGlob}

// BranchCapture renders {bn} as a capturing numeric regexp group, used to
// extract branch numbers from discovered paths.
var BranchCapture = BranchMode{kind: branchCapture}

func (m BranchMode) token() string {
	switch m.kind {
	case branchGlob:
		return "[0-9]*"
	case branchCapture:
		return "([0-9]*)"
	default:
		return strconv.Itoa(m.number)
	}
}

// Render substitutes {name} placeholders in format against info, with {bn}
// rendered per the supplied mode. Doubled braces escape literal braces. A
// placeholder naming an absent attribute renders as Unknown; malformed
// placeholder syntax is an error.
func Render(format string, info Info, branch BranchMode) (string, error) {
	var out strings.Builder
	out.Grow(len(format))

	for i := 0; i < len(format); i++ {
		switch c := format[i]; c {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				out.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(format[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("template: unclosed placeholder at offset %d", i)
			}
			name := format[i+1 : i+1+end]
			if name == "" {
				return "", fmt.Errorf("template: empty placeholder at offset %d", i)
			}
			if name == branchField {
				out.WriteString(branch.token())
			} else {
				out.WriteString(info.Lookup(name))
			}
			i += end + 1
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				out.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("template: unmatched '}' at offset %d", i)
		default:
			out.WriteByte(c)
		}
	}
	return out.String(), nil
}
