package validator

import (
	"testing"

	"github.com/Atlas00000/sharevoices/internal/domain"
)

func BenchmarkValidateCreateArticle(b *testing.B) {
	v := NewValidator()
	in := validInput()
	in.MediaURLs = []string{"https://cdn.example.com/a.png", "https://cdn.example.com/b.png"}
	for i := 0; i < b.N; i++ {
		_ = v.ValidateCreateArticle(&in)
	}
}

func BenchmarkDeriveSlug(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = domain.DeriveSlug("Café Culture in 2024: Clean Water Initiatives!")
	}
}
