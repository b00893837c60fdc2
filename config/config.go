package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Assistant struct {
	Name     string `yaml:"name"`
	LogLevel string `yaml:"log_level"`
	Role     string `yaml:"role"`
}

type Audio struct {
	SampleRate int `yaml:"sample_rate"`
	BufferSize int `yaml:"buffer_size"`
}

type Listen struct {
	TimeoutSeconds     int `yaml:"timeout_seconds"`
	PhraseLimitSeconds int `yaml:"phrase_limit_seconds"`
	RetryDelaySeconds  int `yaml:"retry_delay_seconds"`
}

type TTS struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

type Service struct {
	URL string `yaml:"url"`
}

type Services struct {
	QuestionGen Service `yaml:"question_gen"`
}

type Root struct {
	Assistant Assistant `yaml:"assistant"`
	Audio     Audio     `yaml:"audio"`
	Listen    Listen    `yaml:"listen"`
	TTS       TTS       `yaml:"tts"`
	Services  Services  `yaml:"services"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Root {
	return &Root{
		Assistant: Assistant{
			Name:     "interview-voice-assistant",
			LogLevel: "info",
			Role:     "software engineer",
		},
		Audio: Audio{
			SampleRate: 16000,
			BufferSize: 8196,
		},
		Listen: Listen{
			TimeoutSeconds:     2,
			PhraseLimitSeconds: 5,
			RetryDelaySeconds:  1,
		},
		TTS: TTS{
			Command: "espeak-ng",
		},
	}
}

// Load reads a yaml config file over the defaults.
func Load(path string) (*Root, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}

	defer f.Close()

	cfg := Default()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

func DurSeconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
