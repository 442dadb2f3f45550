package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"String", "S3_BUCKET_VERSIONING_ENABLED", "S3_BUCKET_VERSIONING_ENABLED"},
		{"Bytes", []byte("AWS"), "AWS"},
		{"Nil", nil, ""},
		{"Int", 42, "42"},
		{"Uint64", uint64(7), "7"},
		{"Float", 1.5, "1.5"},
		{"Bool", true, "true"},
		{"Map", map[string]any{"Fn::Sub": "x"}, ""},
		{"Slice", []any{"a"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.in))
		})
	}
}

func TestLookup(t *testing.T) {
	doc := map[string]any{
		"Properties": map[string]any{
			"Source": map[string]any{"Owner": "AWS"},
		},
	}

	assert.Equal(t, "AWS", Lookup(doc, "Properties", "Source", "Owner"))
	assert.Nil(t, Lookup(doc, "Properties", "Missing", "Owner"))
	assert.Nil(t, Lookup("scalar", "Properties"))
	assert.Equal(t, doc, Lookup(doc))
}
