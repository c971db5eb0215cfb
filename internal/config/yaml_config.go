package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"dsastreak/internal/models"
)

// YAMLConfig represents the structure of the config.yaml file.
// Holds the seed question bank, which is easier to maintain in YAML than env vars.
type YAMLConfig struct {
	Questions []QuestionConfig `yaml:"questions"`
}

// QuestionConfig defines one shared question of the seed bank.
type QuestionConfig struct {
	Title       string   `yaml:"title"`
	Platform    string   `yaml:"platform,omitempty"`
	PlatformRef string   `yaml:"platform_ref,omitempty"`
	Difficulty  string   `yaml:"difficulty,omitempty"` // Easy, Medium or Hard
	Topics      []string `yaml:"topics,omitempty"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLConfigFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLConfigFile loads and validates the YAML configuration at path.
func LoadYAMLConfigFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	for i, q := range cfg.Questions {
		if strings.TrimSpace(q.Title) == "" {
			return nil, fmt.Errorf("questions[%d]: title is required", i)
		}
		if q.Difficulty != "" && !models.Difficulty(q.Difficulty).IsValid() {
			return nil, fmt.Errorf("questions[%d] %q: unknown difficulty %q", i, q.Title, q.Difficulty)
		}
	}

	return &cfg, nil
}

// SeedQuestions converts the configured questions to shared question records.
// Empty optional fields become absent values.
func (c *YAMLConfig) SeedQuestions() []models.Question {
	if c == nil {
		return nil
	}
	questions := make([]models.Question, 0, len(c.Questions))
	for _, qc := range c.Questions {
		q := models.Question{Title: strings.TrimSpace(qc.Title)}
		if qc.Platform != "" {
			platform := qc.Platform
			q.Platform = &platform
		}
		if qc.PlatformRef != "" {
			ref := qc.PlatformRef
			q.PlatformRef = &ref
		}
		if qc.Difficulty != "" {
			d := models.Difficulty(qc.Difficulty)
			q.Difficulty = &d
		}
		if len(qc.Topics) > 0 {
			q.Topics = append([]string(nil), qc.Topics...)
		}
		questions = append(questions, q)
	}
	return questions
}
