package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSeverityOrder(t *testing.T) {
	levels := Severities()
	require.Len(t, levels, 6)
	for i := 1; i < len(levels); i++ {
		assert.Less(t, levels[i-1], levels[i])
	}
	assert.Equal(t, TraceLevel, levels[0])
	assert.Equal(t, CriticalLevel, levels[5])
}

func TestSeverityString(t *testing.T) {
	names := []string{"Trace", "Debug", "Info", "Warning", "Error", "Critical"}
	for i, level := range Severities() {
		assert.Equal(t, names[i], level.String())
		assert.Equal(t, "["+names[i]+"]", level.Label())
	}
	assert.Equal(t, "Unknown", Severity(42).String())
	assert.False(t, Severity(-1).Valid())
}

func TestParseSeverity(t *testing.T) {
	tests := map[string]Severity{
		"trace":    TraceLevel,
		"DEBUG":    DebugLevel,
		" Info ":   InfoLevel,
		"warn":     WarningLevel,
		"Warning":  WarningLevel,
		"error":    ErrorLevel,
		"critical": CriticalLevel,
		"fatal":    CriticalLevel,
	}
	for in, want := range tests {
		got, err := ParseSeverity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSeverity("loud")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSeverity)
}

func TestSeverityYAML(t *testing.T) {
	var cfg struct {
		Level Severity `yaml:"level"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("level: warning\n"), &cfg))
	assert.Equal(t, WarningLevel, cfg.Level)

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Equal(t, "level: Warning\n", string(out))

	assert.Error(t, yaml.Unmarshal([]byte("level: loud\n"), &cfg))

	_, err = Severity(9).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownSeverity)
}
