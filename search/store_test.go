package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcileImageID(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]any
		want   string
	}{
		{name: "canonical key wins", fields: map[string]any{"image_id": "a", "img_id": "b"}, want: "a"},
		{name: "legacy key fallback", fields: map[string]any{"img_id": "b"}, want: "b"},
		{name: "empty canonical falls through", fields: map[string]any{"image_id": "", "img_id": "b"}, want: "b"},
		{name: "neither present", fields: map[string]any{}, want: ""},
		{name: "non-string ignored", fields: map[string]any{"image_id": 7}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReconcileImageID(tt.fields))
		})
	}
}
