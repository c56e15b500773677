package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		id      string
		modules []string
		class   string
		member  string
		kind    Kind
		owner   string
	}{
		{"kerastuner.Tuner", nil, "Tuner", "", KindClass, "kerastuner.Tuner"},
		{"kerastuner.Tuner.search", nil, "Tuner", "search", KindMember, "kerastuner.Tuner"},
		{"kerastuner.HyperParameters.Boolean", nil, "HyperParameters", "Boolean", KindMember, "kerastuner.HyperParameters"},
		{"kerastuner.tuners.Sklearn", []string{"tuners"}, "Sklearn", "", KindClass, "kerastuner.tuners.Sklearn"},
		{"kerastuner.applications.HyperResNet", []string{"applications"}, "HyperResNet", "", KindClass, "kerastuner.applications.HyperResNet"},
		{"kerastuner.engine.load", []string{"engine"}, "", "load", KindModule, "kerastuner.engine.load"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			s, err := Parse(tt.id)
			require.NoError(t, err)
			assert.Equal(t, "kerastuner", s.Package)
			assert.Equal(t, tt.modules, s.Modules)
			assert.Equal(t, tt.class, s.Class)
			assert.Equal(t, tt.member, s.Member)
			assert.Equal(t, tt.kind, s.Kind())
			assert.Equal(t, tt.owner, s.Owner())
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, id := range []string{
		"",
		"   ",
		"kerastuner",
		"kerastuner..Tuner",
		".Tuner",
		"kerastuner.Tuner.",
		"kerastuner.Tuner-x",
		"kerastuner.1Tuner",
		"kerastuner.Tuner search",
	} {
		t.Run(id, func(t *testing.T) {
			_, err := Parse(id)
			assert.Error(t, err)
		})
	}
}

func TestParse_EmptySentinel(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestAnchorAndShortName(t *testing.T) {
	s := MustParse("kerastuner.Tuner.get_best_models")
	assert.Equal(t, "kerastuner.tuner.get_best_models", s.Anchor())
	assert.Equal(t, "get_best_models", s.ShortName())
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("nope") })
}
