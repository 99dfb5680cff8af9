package config

import "time"

// Config is the pracexam configuration file schema.
type Config struct {
	Version int           `yaml:"version"`
	Bank    string        `yaml:"bank"`
	Exam    ExamConfig    `yaml:"exam"`
	Results ResultsConfig `yaml:"results"`
	UI      UIConfig      `yaml:"ui"`
}

// ExamConfig controls exam length, timing, and scoring.
type ExamConfig struct {
	Size             int `yaml:"size"`
	TimeLimitMinutes int `yaml:"time_limit_minutes"`
	PassingScore     int `yaml:"passing_score"`
}

// ResultsConfig locates the history logs.
type ResultsConfig struct {
	Dir         string `yaml:"dir"`
	SummaryFile string `yaml:"summary_file"`
	DetailFile  string `yaml:"detail_file"`
}

// UI modes accepted by ui.mode and --ui.
const (
	UIModeAuto  = "auto"
	UIModeLive  = "live"
	UIModePlain = "plain"
)

// UIConfig selects the presentation adapter.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// TimeLimit returns the exam time limit as a duration.
func (c ExamConfig) TimeLimit() time.Duration {
	return time.Duration(c.TimeLimitMinutes) * time.Minute
}
