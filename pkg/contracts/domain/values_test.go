package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMissing(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"whitespace string", "   \t", true},
		{"text", "Nitrate", false},
		{"zero number", float64(0), false},
		{"number", 7.2, false},
		{"false", false, false},
		{"true", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMissing(tt.value))
		})
	}
}

func TestCompareValuesOrdering(t *testing.T) {
	tests := []struct {
		name string
		a    any
		b    any
		want int
	}{
		{"nil equals nil", nil, nil, 0},
		{"nil before bool", nil, false, -1},
		{"nil before number", nil, -100.0, -1},
		{"nil before string", nil, "", -1},
		{"false before true", false, true, -1},
		{"bool before number", true, 0.0, -1},
		{"bool before string", true, "a", -1},
		{"numbers by magnitude", 1.5, 2.0, -1},
		{"equal numbers", 3.0, 3.0, 0},
		{"int equals float", 3, 3.0, 0},
		{"number before string", 99.0, "1", -1},
		{"strings bytewise", "Nitrate", "Nitrogen", -1},
		{"equal strings", "pH", "pH", 0},
		{"empty string is a string", "", "a", -1},
		{"empty string after number", "", 5.0, 1},
		{"nan before numbers", math.NaN(), -1e18, -1},
		{"nan equals nan", math.NaN(), math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareValues(tt.a, tt.b))
			assert.Equal(t, -tt.want, CompareValues(tt.b, tt.a), "comparison should be antisymmetric")
		})
	}
}

func TestCompareValuesDistinguishesNilFromEmptyString(t *testing.T) {
	// For flagging, an empty string counts as missing. For ordering and
	// duplicate grouping it stays a string value distinct from nil.
	assert.True(t, IsMissing(""))
	assert.NotEqual(t, 0, CompareValues(nil, ""))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "Dissolved oxygen (DO)", "Dissolved oxygen (DO)"},
		{"integral float", float64(42), "42"},
		{"fractional float", 0.125, "0.125"},
		{"negative float", -7.5, "-7.5"},
		{"int", 13, "13"},
		{"int64", int64(1 << 40), "1099511627776"},
		{"true", true, "true"},
		{"false", false, "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.value))
		})
	}
}

func BenchmarkCompareValues(b *testing.B) {
	values := []any{nil, true, 4.2, "Temperature, water", 17.0, "pH", false}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CompareValues(values[i%len(values)], values[(i+3)%len(values)])
	}
}
