package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptionPreview(t *testing.T) {
	tests := []struct {
		name   string
		html   string
		maxLen int
		want   string
	}{
		{
			name:   "empty",
			html:   "",
			maxLen: 120,
			want:   "",
		},
		{
			name:   "plain text passes through",
			html:   "Arroz branco tipo 1",
			maxLen: 120,
			want:   "Arroz branco tipo 1",
		},
		{
			name:   "only the part before the first br",
			html:   "Primeira linha<br>Segunda linha<br/>Terceira",
			maxLen: 120,
			want:   "Primeira linha",
		},
		{
			name:   "br matching is case-insensitive",
			html:   "Primeira linha<BR />Segunda",
			maxLen: 120,
			want:   "Primeira linha",
		},
		{
			name:   "tags stripped and entities decoded",
			html:   "<p><strong>Café</strong>&nbsp;torrado   e\n moído</p>",
			maxLen: 120,
			want:   "Café torrado e moído",
		},
		{
			name:   "long text truncated with ellipsis",
			html:   "Um produto com uma descrição consideravelmente longa",
			maxLen: 20,
			want:   "Um produto com uma d...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescriptionPreview(tt.html, tt.maxLen))
		})
	}
}
