// Command generate_fixture writes a sample question bank and a simulated
// exam history for trying out the stats and report commands.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pracexam/internal/exam"
	"pracexam/internal/history"
	"pracexam/internal/question"
)

// fixtureConfig defines the JSON config for generating a fixture.
type fixtureConfig struct {
	Name      string  `json:"name"`
	Questions int     `json:"questions"`
	ExamSize  int     `json:"exam_size"`
	Exams     int     `json:"exams"`
	Accuracy  float64 `json:"accuracy"`
	Seed      int64   `json:"seed"`
}

func main() {
	configPath := flag.String("config", "", "path to fixture config JSON")
	outDir := flag.String("out", "", "output directory")
	flag.Parse()
	if *configPath == "" || *outDir == "" {
		fmt.Fprintln(os.Stderr, "usage: generate_fixture --config <path> --out <dir>")
		os.Exit(2)
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir output dir: %v\n", err)
		os.Exit(1)
	}
	if err := generateFixture(*outDir, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "generate fixture: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (fixtureConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fixtureConfig{}, err
	}
	var cfg fixtureConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fixtureConfig{}, err
	}
	if cfg.ExamSize == 0 {
		cfg.ExamSize = question.DefaultExamSize
	}
	if cfg.Questions < cfg.ExamSize {
		return fixtureConfig{}, fmt.Errorf("questions (%d) must be at least exam_size (%d)", cfg.Questions, cfg.ExamSize)
	}
	if cfg.Accuracy < 0 || cfg.Accuracy > 1 {
		return fixtureConfig{}, fmt.Errorf("accuracy must be between 0 and 1")
	}
	return cfg, nil
}

func generateFixture(dir string, cfg fixtureConfig) error {
	bankPath := filepath.Join(dir, "questions.json")
	if err := writeBank(bankPath, cfg.Name, cfg.Questions); err != nil {
		return err
	}
	bank, err := question.LoadBank(bankPath)
	if err != nil {
		return err
	}

	rng := newRand(cfg.Seed)
	recorder := history.NewRecorder(filepath.Join(dir, "results"))
	start := time.Date(2026, 1, 5, 18, 0, 0, 0, time.Local)
	for i := 0; i < cfg.Exams; i++ {
		session, err := exam.New(bank, exam.Options{
			Size:      cfg.ExamSize,
			TimeLimit: exam.DefaultTimeLimit,
			Rand:      rng,
		})
		if err != nil {
			return err
		}
		began := start.Add(time.Duration(i) * 26 * time.Hour)
		session.Start(began)
		for idx, q := range session.Questions() {
			if _, err := session.Dispatch(exam.Jump{Index: idx}, began); err != nil {
				return err
			}
			choice := pickChoice(rng, q, cfg.Accuracy)
			if choice == "" {
				continue
			}
			if _, err := session.Dispatch(exam.Select{Choice: choice}, began); err != nil {
				return err
			}
		}
		outcome := session.Finalize(began.Add(time.Duration(40+rng.Intn(60)) * time.Minute))
		if err := recorder.Record(outcome); err != nil {
			return err
		}
	}
	fmt.Printf("Wrote %s and %d exams under %s\n", bankPath, cfg.Exams, filepath.Join(dir, "results"))
	return nil
}
