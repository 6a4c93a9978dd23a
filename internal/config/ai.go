package config

import (
	"os"
	"strconv"
)

// AIConfig holds the Gemini settings used for question template generation
type AIConfig struct {
	APIKey        string `json:"-"` // Never serialize
	BaseURL       string `json:"baseUrl"`
	TemplateModel string `json:"templateModel"`
	TimeoutMS     int    `json:"timeoutMs"`
}

// DefaultAIConfig returns the AI configuration from the environment
func DefaultAIConfig() *AIConfig {
	timeout := 15000
	if v, err := strconv.Atoi(os.Getenv("GEMINI_TIMEOUT_MS")); err == nil && v > 0 {
		timeout = v
	}
	return &AIConfig{
		APIKey:        os.Getenv("GEMINI_API_KEY"),
		BaseURL:       getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/models"),
		TemplateModel: getEnv("GEMINI_MODEL_TEMPLATE", "gemini-2.0-flash"),
		TimeoutMS:     timeout,
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ModelEndpoint returns the full endpoint for a given model
func (c *AIConfig) ModelEndpoint(model string) string {
	return c.BaseURL + "/" + model + ":generateContent"
}
