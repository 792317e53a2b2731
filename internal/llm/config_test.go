package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_DisabledWithTaskDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 30000, cfg.TaskTimeout(TaskItinerary))
	assert.Equal(t, 8000, cfg.TaskTimeout(TaskTip))
	assert.Equal(t, 10000, cfg.TaskTimeout(TaskType("unknown")))
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("WAYPOINT_LLM_ENABLED", "true")
	t.Setenv("WAYPOINT_LLM_MODEL", "qwen2.5")
	t.Setenv("WAYPOINT_LLM_ENDPOINT", "http://ollama:11434")
	t.Setenv("WAYPOINT_LLM_MAX_RETRIES", "3")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "qwen2.5", cfg.Model)
	assert.Equal(t, "http://ollama:11434", cfg.Endpoint)
	assert.Equal(t, 3, cfg.MaxRetries)
}

func TestLoadConfig_TaskTimeoutOverrides(t *testing.T) {
	t.Setenv("WAYPOINT_LLM_TIMEOUT_MS", "9000")
	t.Setenv("WAYPOINT_LLM_ITINERARY_TIMEOUT_MS", "45000")

	cfg := LoadConfig()

	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 45000, cfg.TaskTimeout(TaskItinerary))
	assert.Equal(t, 8000, cfg.TaskTimeout(TaskTip))
}

func TestLoadConfig_InvalidOverridesIgnored(t *testing.T) {
	t.Setenv("WAYPOINT_LLM_TIP_TIMEOUT_MS", "not-a-number")
	t.Setenv("WAYPOINT_LLM_MAX_RETRIES", "-2")

	cfg := LoadConfig()

	assert.Equal(t, 8000, cfg.TaskTimeout(TaskTip))
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestApplyEnv_KeepsFileValuesWhenUnset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Model = "from-file"
	cfg.Tasks = nil

	ApplyEnv(&cfg)

	assert.Equal(t, "from-file", cfg.Model)
	assert.Equal(t, 8000, cfg.TaskTimeout(TaskTip))
}
