package carousel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestResolve_FixedIgnoresWidth(t *testing.T) {
	spv := Fixed(4)
	for _, w := range []int{0, 10, 500, 5000} {
		assert.Equal(t, 4, spv.Resolve(w), "width %d", w)
	}
}

func TestResolve_FixedZeroFallsBackToOne(t *testing.T) {
	assert.Equal(t, 1, Fixed(0).Resolve(300))
}

func TestResolve_Breakpoints(t *testing.T) {
	spv := Responsive(map[int]int{0: 1, 640: 2, 1024: 3})

	tests := []struct {
		width int
		want  int
	}{
		{0, 1},
		{639, 1},
		{640, 2},
		{1023, 2},
		{1024, 3},
		{4000, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, spv.Resolve(tt.width), "width %d", tt.width)
	}
}

func TestResolve_MissingZeroBreakpointFallsBackToOne(t *testing.T) {
	spv := Responsive(map[int]int{768: 3})
	assert.Equal(t, 1, spv.Resolve(500))
	assert.Equal(t, 3, spv.Resolve(768))
}

func TestResolve_Monotonic(t *testing.T) {
	spv := Responsive(map[int]int{0: 1, 40: 2, 80: 3, 120: 4, 200: 6})
	prev := spv.Resolve(0)
	for w := 1; w <= 400; w++ {
		got := spv.Resolve(w)
		require.GreaterOrEqual(t, got, prev, "width %d decreased the visible count", w)
		prev = got
	}
}

func TestResolve_DoesNotMutateSource(t *testing.T) {
	src := map[int]int{0: 1, 10: 2}
	spv := Responsive(src)
	src[0] = 9
	assert.Equal(t, 1, spv.Resolve(5))
}

func TestSlidesPerViewValidate(t *testing.T) {
	tests := []struct {
		name    string
		spv     SlidesPerView
		wantErr bool
	}{
		{"fixed", Fixed(3), false},
		{"fixed zero", Fixed(0), false},
		{"fixed negative", Fixed(-1), true},
		{"responsive", Responsive(map[int]int{0: 1, 80: 2}), false},
		{"empty responsive", Responsive(map[int]int{}), true},
		{"negative breakpoint", Responsive(map[int]int{-10: 1}), true},
		{"zero count", Responsive(map[int]int{0: 0}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spv.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidConfig))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSlidesPerViewYAML(t *testing.T) {
	var cfg struct {
		SPV SlidesPerView `yaml:"spv"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("spv: 2\n"), &cfg))
	assert.False(t, cfg.SPV.IsResponsive())
	assert.Equal(t, 2, cfg.SPV.Resolve(999))

	require.NoError(t, yaml.Unmarshal([]byte("spv:\n  0: 1\n  768: 3\n"), &cfg))
	assert.True(t, cfg.SPV.IsResponsive())
	assert.Equal(t, 3, cfg.SPV.Resolve(1024))
	assert.Equal(t, "{0: 1, 768: 3}", cfg.SPV.String())
}

func TestSlidesPerViewYAML_NonNumericKey(t *testing.T) {
	var cfg struct {
		SPV SlidesPerView `yaml:"spv"`
	}
	err := yaml.Unmarshal([]byte("spv:\n  small: 1\n"), &cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestSlidesPerViewYAML_RoundTripShape(t *testing.T) {
	out, err := yaml.Marshal(struct {
		SPV SlidesPerView `yaml:"spv"`
	}{Responsive(map[int]int{0: 1, 80: 2})})
	require.NoError(t, err)
	assert.Contains(t, string(out), "80: 2")
}
