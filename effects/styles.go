package effects

import (
	_ "embed"
	"strings"
)

var (
	//go:embed styles/float.css
	floatCSS string

	//go:embed styles/ripple.css
	rippleCSS string
)

// Stylesheet returns the CSS injected by Styles.
func Stylesheet() string {
	return strings.Join([]string{floatCSS, rippleCSS}, "\n")
}

// Styles injects the float and ripple keyframes. Teardown removes them.
func Styles(h Host) (func(), error) {
	if err := h.require(needDocument); err != nil {
		return nil, err
	}

	var td teardown
	for _, css := range []string{floatCSS, rippleCSS} {
		el := h.Document.AppendStyle(css)
		td.add(el.Remove)
	}

	return td.done(), nil
}
