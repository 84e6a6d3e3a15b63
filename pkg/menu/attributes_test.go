package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributesMerge(t *testing.T) {
	tests := []struct {
		name  string
		base  Attributes
		extra Attributes
		want  Attributes
	}{
		{
			name:  "nil_base",
			base:  nil,
			extra: Attributes{"class": "active"},
			want:  Attributes{"class": "active"},
		},
		{
			name:  "class_appended",
			base:  Attributes{"class": "nav"},
			extra: Attributes{"class": "active"},
			want:  Attributes{"class": "nav active"},
		},
		{
			name:  "empty_class_replaced",
			base:  Attributes{"class": ""},
			extra: Attributes{"class": "active"},
			want:  Attributes{"class": "active"},
		},
		{
			name:  "other_keys_overwrite",
			base:  Attributes{"id": "a", "title": "x"},
			extra: Attributes{"id": "b"},
			want:  Attributes{"id": "b", "title": "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.base.Merge(tt.extra))
		})
	}
}

func TestAttributesMergeDoesNotMutate(t *testing.T) {
	base := Attributes{"class": "nav"}
	_ = base.Merge(Attributes{"class": "active"})
	assert.Equal(t, Attributes{"class": "nav"}, base)
}

func TestAttributesKeysSorted(t *testing.T) {
	a := Attributes{"title": "t", "class": "c", "id": "i"}
	assert.Equal(t, []string{"class", "id", "title"}, a.Keys())
}
