package shapecheck

import (
	"strconv"
	"strings"
)

// pathRef builds JSON Pointer paths in a chain-safe way. Every extension
// copies the parts slice so sibling branches never alias each other.
type pathRef struct {
	parts []string
}

func rootPath() *pathRef { return &pathRef{parts: nil} }

func (p *pathRef) field(name string) *pathRef {
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return &pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p *pathRef) index(i int) *pathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}
