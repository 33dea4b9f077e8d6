// file: internals/features/home/message_templates/service/render.go
package service

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\}\}`)

// Render substitutes {{name}} placeholders from vars. Unknown placeholders
// stay in the output verbatim so a bad broadcast is visible, not silent.
func Render(body string, vars map[string]any) string {
	return placeholderRe.ReplaceAllStringFunc(body, func(m string) string {
		key := strings.Trim(m, "{} \t")
		v, ok := vars[key]
		if !ok {
			return m
		}
		return fmt.Sprintf("%v", v)
	})
}

// Placeholders lists the distinct placeholder names used in a body, in
// first-appearance order.
func Placeholders(body string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range placeholderRe.FindAllStringSubmatch(body, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	return out
}
