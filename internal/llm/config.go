package llm

import (
	"os"
	"strconv"
)

// TaskType names a kind of model call. Each task has its own sampling
// parameters and timeout.
type TaskType string

const (
	TaskItinerary TaskType = "itinerary"
	TaskTip       TaskType = "tip"
)

// TaskConfig holds per-task sampling parameters. A positive TimeoutMs
// replaces the global timeout for that task.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int
}

// LLMConfig configures the Ollama client.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

const envPrefix = "WAYPOINT_LLM_"

func defaultTasks() map[TaskType]TaskConfig {
	return map[TaskType]TaskConfig{
		TaskItinerary: {Temperature: 0.4, MaxTokens: 2048, TimeoutMs: 30000},
		TaskTip:       {Temperature: 0.7, MaxTokens: 128, TimeoutMs: 8000},
	}
}

// DefaultConfig targets a local Ollama with llama3.2. Assistance is off.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  10000,
		MaxRetries: 1,
		Tasks:      defaultTasks(),
	}
}

// LoadConfig returns the defaults with environment overrides applied.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	return cfg
}

// ApplyEnv overrides cfg with the WAYPOINT_LLM_* variables that are set.
// Unparseable and out-of-range values are ignored.
func ApplyEnv(cfg *LLMConfig) {
	envBool("ENABLED", &cfg.Enabled)
	envBool("LOG_CALLS", &cfg.LogCalls)
	envString("ENDPOINT", &cfg.Endpoint)
	envString("MODEL", &cfg.Model)
	envInt("TIMEOUT_MS", 1, &cfg.TimeoutMs)
	envInt("MAX_RETRIES", 0, &cfg.MaxRetries)

	if cfg.Tasks == nil {
		cfg.Tasks = defaultTasks()
	}
	for task, name := range map[TaskType]string{
		TaskItinerary: "ITINERARY_TIMEOUT_MS",
		TaskTip:       "TIP_TIMEOUT_MS",
	} {
		tc := cfg.Tasks[task]
		if envInt(name, 1, &tc.TimeoutMs) {
			cfg.Tasks[task] = tc
		}
	}
}

// TaskTimeout returns the timeout in milliseconds for one attempt of task.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func envString(name string, dst *string) {
	if v := os.Getenv(envPrefix + name); v != "" {
		*dst = v
	}
}

func envBool(name string, dst *bool) {
	if b, err := strconv.ParseBool(os.Getenv(envPrefix + name)); err == nil {
		*dst = b
	}
}

func envInt(name string, minimum int, dst *int) bool {
	n, err := strconv.Atoi(os.Getenv(envPrefix + name))
	if err != nil || n < minimum {
		return false
	}
	*dst = n
	return true
}
