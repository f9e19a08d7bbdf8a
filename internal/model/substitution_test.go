package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseVariants(t *testing.T) {
	got := CaseVariants("Standalone", "Foo")

	assert.Equal(t, Substitutions{
		{Target: "Standalone", Replacement: "Foo"},
		{Target: "standalone", Replacement: "foo"},
		{Target: "STANDALONE", Replacement: "FOO"},
	}, got)
}

func TestSubstitutions_Validate(t *testing.T) {
	require.NoError(t, Substitutions(nil).Validate())
	require.NoError(t, CaseVariants("a", "").Validate())

	err := Substitutions{{Target: "a"}, {Target: "", Replacement: "b"}}.Validate()
	require.ErrorIs(t, err, ErrEmptyTarget)
	assert.Contains(t, err.Error(), "substitution 1")
}

func TestSubstitutions_Apply(t *testing.T) {
	tests := []struct {
		name string
		subs Substitutions
		text string
		want string
	}{
		{
			name: "no substitutions",
			text: "Standalone",
			want: "Standalone",
		},
		{
			name: "every case variant",
			subs: CaseVariants("Standalone", "Foo"),
			text: "Standalone standalone STANDALONE StandAlone",
			want: "Foo foo FOO StandAlone",
		},
		{
			name: "later substitutions see earlier output",
			subs: Substitutions{{Target: "a", Replacement: "b"}, {Target: "b", Replacement: "c"}},
			text: "ab",
			want: "cc",
		},
		{
			name: "non-overlapping left to right",
			subs: Substitutions{{Target: "aa", Replacement: "b"}},
			text: "aaa",
			want: "ba",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.subs.Apply(tt.text))
		})
	}
}
