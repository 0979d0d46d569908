package types

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want float64
		ok   bool
	}{
		{name: "int", in: 95000, want: 95000, ok: true},
		{name: "float", in: 1299.99, want: 1299.99, ok: true},
		{name: "int64", in: int64(7), want: 7, ok: true},
		{name: "string", in: "95000", ok: false},
		{name: "nil", in: nil, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(0))
	assert.False(t, Truthy(0.0))
	assert.False(t, Truthy(""))
	assert.True(t, Truthy(1))
	assert.True(t, Truthy("Engineering"))
}

func TestDatasetHasColumn(t *testing.T) {
	d := &Dataset{Columns: []string{"id", "name"}}
	assert.True(t, d.HasColumn("name"))
	assert.False(t, d.HasColumn("salary"))
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := InitLogger(LogLevelWarning, &buf)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	assert.Empty(t, buf.String())

	l.Warning("warn %d", 3)
	l.Error("error %d", 4)
	assert.Contains(t, buf.String(), "warn 3")
	assert.Contains(t, buf.String(), "error 4")

	l.SetLevel(LogLevelNone)
	buf.Reset()
	l.Error("hidden")
	assert.Empty(t, buf.String())
	assert.Equal(t, LogLevelNone, l.GetLevel())
}

func TestParseLogLevel(t *testing.T) {
	lvl, err := ParseLogLevel("DEBUG")
	assert.NoError(t, err)
	assert.Equal(t, LogLevelDebug, lvl)

	lvl, err = ParseLogLevel("")
	assert.NoError(t, err)
	assert.Equal(t, LogLevelInfo, lvl)

	_, err = ParseLogLevel("loud")
	assert.Error(t, err)
}
