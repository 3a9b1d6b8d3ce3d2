package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Atlas00000/sharevoices/internal/search"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "plain text unchanged", body: "Clean water for all", want: "Clean water for all"},
		{name: "inline markup stripped", body: "Access to <b>clean</b> <i>water</i>", want: "Access to clean water"},
		{name: "block elements separate words", body: "<p>First</p><p>Second</p>", want: "First Second"},
		{name: "scripts dropped", body: "<p>Safe</p><script>alert('x')</script><style>p{}</style>", want: "Safe"},
		{name: "whitespace collapsed", body: "  many \n\n spaces\there  ", want: "many spaces here"},
		{name: "empty", body: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, search.PlainText(tt.body))
		})
	}
}

func BenchmarkPlainText(b *testing.B) {
	body := "<h1>Clean Water Initiatives</h1><p>Access to <a href=\"/x\">clean water</a> changes lives.</p>"
	for i := 0; i < b.N; i++ {
		search.PlainText(body)
	}
}
