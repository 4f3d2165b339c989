package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lg/health-tracker/internal/bodycalc"
)

func runWith(t *testing.T, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(strings.NewReader(input), &out)
	return out.String(), err
}

func TestRun_PrintsBMIAndTargets(t *testing.T) {
	out, err := runWith(t, "70\n170\n30\nmale\nmoderate\n")
	require.NoError(t, err)

	assert.Contains(t, out, "24.2")
	assert.Contains(t, out, string(bodycalc.NormalWeight))
	assert.Contains(t, out, "1618 calories/day")
	assert.Contains(t, out, "2507 calories/day")
	assert.Contains(t, out, "2007 calories/day")
	assert.Contains(t, out, "3007 calories/day")
	assert.Contains(t, out, "Moderately active")
}

func TestRun_AcceptsTierLabel(t *testing.T) {
	out, err := runWith(t, "60\n165\n40\nFemale\nSedentary (little or no exercise)\n")
	require.NoError(t, err)
	assert.Contains(t, out, "calories/day")
}

func TestRun_NonPositiveShowsMessage(t *testing.T) {
	out, err := runWith(t, "0\n170\n30\nmale\nlight\n")
	require.NoError(t, err)
	assert.Contains(t, out, bodycalc.InvalidInputMessage)
	assert.NotContains(t, out, "calories/day")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"not a number", "abc\n", nil},
		{"unknown sex", "70\n170\n30\nother\n", bodycalc.ErrUnknownSex},
		{"unknown tier", "70\n170\n30\nmale\nlazy\n", bodycalc.ErrUnknownActivityTier},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runWith(t, tt.input)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
