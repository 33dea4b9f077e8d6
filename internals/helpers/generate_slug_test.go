// file: internals/helpers/generate_slug_test.go
package helper

import "testing"

func TestGenerateSlug(t *testing.T) {
	tests := map[string]string{
		"Morning Aarti":               "morning-aarti",
		"  Ganesh Chaturthi Special ": "ganesh-chaturthi-special",
		"Puja @ Riverside!!":          "puja-riverside",
		"already-a-slug":              "already-a-slug",
		"Multiple   Spaces":           "multiple-spaces",
		"---":                         "",
	}
	for in, want := range tests {
		if got := GenerateSlug(in); got != want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", in, got, want)
		}
	}
}
