package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefRule_Matches(t *testing.T) {
	rule := DefaultRefRule()

	tests := []struct {
		ref  string
		want bool
	}{
		{"#/definitions/Foo", true},
		{"#/definitions/", true},
		{"#/properties/Foo", false},
		{"../automations.schema.json#/definitions/Foo", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Matches(tt.ref))
		})
	}
}

func TestRefRule_EmptyPrefixNeverMatches(t *testing.T) {
	rule := RefRule{Target: "x.json"}
	assert.False(t, rule.Matches("#/definitions/Foo"))
}

func TestRefRule_Apply(t *testing.T) {
	rule := DefaultRefRule()
	assert.Equal(t, "../automations.schema.json#/definitions/Foo", rule.Apply("#/definitions/Foo"))
}

func TestDefaultPathRewrite(t *testing.T) {
	rw := DefaultPathRewrite()
	assert.Equal(t, `"../common/`, rw.Old)
	assert.Equal(t, `"../../common/`, rw.New)
}
