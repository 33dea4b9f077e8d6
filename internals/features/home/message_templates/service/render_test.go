// file: internals/features/home/message_templates/service/render_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	body := "{{ritual}} on {{date}} is delayed to {{new_time}}."
	vars := map[string]any{
		"ritual":   "Morning Aarti",
		"date":     "2024-01-09",
		"new_time": "07:00",
	}

	assert.Equal(t,
		"Morning Aarti on 2024-01-09 is delayed to 07:00.",
		Render(body, vars))
}

func TestRenderKeepsUnknownPlaceholders(t *testing.T) {
	got := Render("Hello {{name}}, see you at {{venue}}", map[string]any{"name": "Priya"})
	assert.Equal(t, "Hello Priya, see you at {{venue}}", got)
}

func TestRenderWhitespaceInsidePlaceholder(t *testing.T) {
	got := Render("{{ ritual }} at {{time}}", map[string]any{"ritual": "Abhishekam", "time": "05:30"})
	assert.Equal(t, "Abhishekam at 05:30", got)
}

func TestRenderNonStringValues(t *testing.T) {
	got := Render("Seats left: {{count}}", map[string]any{"count": 42})
	assert.Equal(t, "Seats left: 42", got)
}

func TestRenderNoPlaceholders(t *testing.T) {
	assert.Equal(t, "plain text", Render("plain text", nil))
}

func TestPlaceholders(t *testing.T) {
	got := Placeholders("{{ritual}} on {{date}}: {{ritual}} starts at {{time}}")
	assert.Equal(t, []string{"ritual", "date", "time"}, got)

	assert.Empty(t, Placeholders("no slots here"))
}
