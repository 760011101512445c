package cli

import (
	"bufio"
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)
}

func TestGetSimpleTextEmptyEOF(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetTons(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"integer", "100\n", 100},
		{"fraction", "12.5\n", 12.5},
		{"negative passes through", "-3\n", -3},
		{"padded", "  7 \n", 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetTons(rdr(tc.input), "Tons", &out)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("not a number → NaN", func(t *testing.T) {
		var out bytes.Buffer
		got, err := GetTons(rdr("lots\n"), "Tons", &out)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(got))
	})

	t.Run("EOF → error", func(t *testing.T) {
		var out bytes.Buffer
		_, err := GetTons(rdr(""), "Tons", &out)
		require.Error(t, err)
	})
}
