package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	log, err := New("json", "debug")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = New("console", "")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))

	_, err = New("xml", "info")
	assert.Error(t, err)

	_, err = New("json", "loud")
	assert.Error(t, err)
}

func TestMaskCNIC(t *testing.T) {
	cases := map[string]string{
		"42101-1234567-1": "*****-****567-1",
		"4210112345671":   "*********5671",
		"12345":           "*2345",
		"1234":            "****",
		"123":             "***",
		"":                "",
		"n/a":             "n/a",
	}
	for in, want := range cases {
		assert.Equal(t, want, MaskCNIC(in), in)
	}
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "****4567", MaskPhone("0300-1234567"))
	assert.Equal(t, "****4567", MaskPhone(" +92 300 1234567 "))
	assert.Equal(t, "****", MaskPhone("12"))
	assert.Equal(t, "****", MaskPhone("1234"))
	assert.Equal(t, "****2345", MaskPhone("12345"))
	assert.Equal(t, "", MaskPhone(" "))
}
