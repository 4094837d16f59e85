package config

import "fmt"

type Config struct {
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Notes       NotesConfig       `yaml:"notes"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	SampleRate int    `yaml:"sample_rate"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelDir   string `yaml:"model_dir"`
	Model      string `yaml:"model"`
	Language   string `yaml:"language"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

type NotesConfig struct {
	MaxChunkLen int  `yaml:"max_chunk_len"`
	ExportDocx  bool `yaml:"export_docx"`
}

type PathsConfig struct {
	Watch  string `yaml:"watch"`
	Output string `yaml:"output"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrentCalls int `yaml:"max_concurrent_calls"`
	MaxConcurrentFiles int `yaml:"max_concurrent_files"`
}

// Validate fills defaults and rejects values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.FFmpeg.SampleRate < 0 {
		return fmt.Errorf("ffmpeg.sample_rate must be positive")
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelDir == "" {
		c.Whisper.ModelDir = "models"
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "base"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Notes.MaxChunkLen == 0 {
		c.Notes.MaxChunkLen = 12000
	}
	if c.Notes.MaxChunkLen < 0 {
		return fmt.Errorf("notes.max_chunk_len must be positive")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrentCalls == 0 {
		c.Performance.MaxConcurrentCalls = 2
	}
	if c.Performance.MaxConcurrentCalls < 0 {
		return fmt.Errorf("performance.max_concurrent_calls must be positive")
	}
	// One recording at a time in watch mode unless explicitly raised.
	if c.Performance.MaxConcurrentFiles == 0 {
		c.Performance.MaxConcurrentFiles = 1
	}

	return nil
}
