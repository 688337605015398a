/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger.go
Description: Logging system for the Chomsky toolkit. Wraps logrus with validated configuration,
JSON/text/custom formats, optional timestamped log files and helpers for the pipeline stages
(regex compilation, determinization, synthesis, classification and sampling).
*/

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warn"
	LogLevelError   LogLevel = "error"
)

// LogFormat represents the logging format
type LogFormat string

const (
	LogFormatJSON   LogFormat = "json"
	LogFormatText   LogFormat = "text"
	LogFormatCustom LogFormat = "custom"
)

// Pipeline stages, used as the "stage" field and as the custom formatter prefix
const (
	StageRegex    = "regex"
	StageDFA      = "dfa"
	StageSynth    = "synth"
	StageParse    = "parse"
	StageClassify = "classify"
	StageSample   = "sample"
	StageCompare  = "compare"
	StageReport   = "report"
	StageBatch    = "batch"
)

// LoggerConfig holds the configuration for the logger
type LoggerConfig struct {
	Level     LogLevel  `json:"level" mapstructure:"level"`
	Format    LogFormat `json:"format" mapstructure:"format"`
	OutputDir string    `json:"output_dir" mapstructure:"output_dir"` // empty disables log files
	MaxFiles  int       `json:"max_files" mapstructure:"max_files"`
	Timestamp bool      `json:"timestamp" mapstructure:"timestamp"`
	Caller    bool      `json:"caller" mapstructure:"caller"`
	Colors    bool      `json:"colors" mapstructure:"colors"`
}

// DefaultLoggerConfig logs warnings and above to stderr only
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:     LogLevelWarning,
		Format:    LogFormatCustom,
		MaxFiles:  10,
		Timestamp: true,
		Colors:    false,
	}
}

// Validate checks the LoggerConfig for invalid values.
func (c *LoggerConfig) Validate() error {
	if c.OutputDir != "" && c.MaxFiles <= 0 {
		return fmt.Errorf("max_files must be positive when output_dir is set")
	}
	switch c.Format {
	case LogFormatJSON, LogFormatText, LogFormatCustom:
	default:
		return fmt.Errorf("unsupported log format: %s", c.Format)
	}
	switch c.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
	default:
		return fmt.Errorf("unsupported log level: %s", c.Level)
	}
	return nil
}

// Logger provides structured logging for toolkit runs
type Logger struct {
	config     *LoggerConfig
	logger     *logrus.Logger
	fileHandle *os.File
	startTime  time.Time
}

// NewLogger creates a new logger writing to stderr and, when configured, a log file
func NewLogger(config *LoggerConfig) (*Logger, error) {
	if config == nil {
		config = DefaultLoggerConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger config: %w", err)
	}

	l := &Logger{
		config:    config,
		logger:    logrus.New(),
		startTime: time.Now(),
	}
	l.logger.SetOutput(os.Stderr)
	l.logger.SetReportCaller(config.Caller)

	if err := l.setup(); err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return l, nil
}

// setup configures the logger with the given configuration
func (l *Logger) setup() error {
	level, err := logrus.ParseLevel(string(l.config.Level))
	if err != nil {
		level = logrus.WarnLevel
	}
	l.logger.SetLevel(level)

	if err := l.setFormatter(); err != nil {
		return err
	}
	return l.setupFileOutput()
}

// setFormatter configures the log formatter
func (l *Logger) setFormatter() error {
	callerPrettyfier := func(f *runtime.Frame) (string, string) {
		return "", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
	}

	switch l.config.Format {
	case LogFormatJSON:
		l.logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat:  time.RFC3339,
			DisableTimestamp: !l.config.Timestamp,
			CallerPrettyfier: callerPrettyfier,
		})

	case LogFormatText:
		l.logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    l.config.Timestamp,
			DisableTimestamp: !l.config.Timestamp,
			TimestampFormat:  time.RFC3339,
			ForceColors:      l.config.Colors,
			DisableColors:    !l.config.Colors,
			DisableSorting:   false,
			CallerPrettyfier: callerPrettyfier,
		})

	case LogFormatCustom:
		l.logger.SetFormatter(&StageFormatter{
			CustomFormatter: CustomFormatter{
				Timestamp: l.config.Timestamp,
				Caller:    l.config.Caller,
				Colors:    l.config.Colors,
			},
		})

	default:
		return fmt.Errorf("unsupported log format: %s", l.config.Format)
	}
	return nil
}

// setupFileOutput adds a timestamped log file next to stderr
func (l *Logger) setupFileOutput() error {
	if l.config.OutputDir == "" {
		return nil
	}
	if err := os.MkdirAll(l.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := l.startTime.Format("2006-01-02_15-04-05")
	path := filepath.Join(l.config.OutputDir, fmt.Sprintf("chomsky_%s.log", timestamp))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	l.fileHandle = file
	l.logger.SetOutput(io.MultiWriter(os.Stderr, file))

	l.logger.WithFields(logrus.Fields{
		"log_file":   path,
		"log_level":  l.config.Level,
		"log_format": l.config.Format,
	}).Debug("Logging system initialized")
	return nil
}

// cleanup removes the oldest log files beyond MaxFiles
func (l *Logger) cleanup() error {
	if l.config.OutputDir == "" {
		return nil
	}
	files, err := filepath.Glob(filepath.Join(l.config.OutputDir, "chomsky_*.log"))
	if err != nil {
		return err
	}
	if len(files) <= l.config.MaxFiles {
		return nil
	}
	// timestamped names sort chronologically
	sort.Strings(files)
	for _, f := range files[:len(files)-l.config.MaxFiles] {
		if err := os.Remove(f); err != nil {
			return err
		}
	}
	return nil
}

// SetOutput redirects console output, e.g. to a buffer in tests
func (l *Logger) SetOutput(w io.Writer) {
	if l.fileHandle != nil {
		l.logger.SetOutput(io.MultiWriter(w, l.fileHandle))
		return
	}
	l.logger.SetOutput(w)
}

// Toolkit-specific logging methods

// LogStage logs the completion of one pipeline stage
func (l *Logger) LogStage(stage string, duration time.Duration, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["stage"] = stage
	fields["duration"] = duration
	l.logger.WithFields(fields).Info("Stage completed")
}

// LogClassification logs a classification outcome
func (l *Logger) LogClassification(fingerprint string, level int, steps int, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["stage"] = StageClassify
	fields["grammar"] = fingerprint
	fields["hierarchy_level"] = level
	fields["steps"] = steps
	l.logger.WithFields(fields).Info("Grammar classified")
}

// LogSample logs the outcome of a bounded sampling run
func (l *Logger) LogSample(words int, steps int, truncated bool, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["stage"] = StageSample
	fields["words"] = words
	fields["steps"] = steps
	fields["truncated"] = truncated
	entry := l.logger.WithFields(fields)
	if truncated {
		entry.Warn("Sampling stopped at step limit")
		return
	}
	entry.Info("Sampling completed")
}

// LogFailure logs a stage that aborted the pipeline
func (l *Logger) LogFailure(stage string, err error, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["stage"] = stage
	l.logger.WithFields(fields).WithError(err).Error("Stage failed")
}

// Close closes the log file and prunes old ones
func (l *Logger) Close() error {
	if l.fileHandle != nil {
		err := l.fileHandle.Close()
		l.fileHandle = nil
		if err != nil {
			return fmt.Errorf("failed to close log file: %w", err)
		}
	}
	if err := l.cleanup(); err != nil {
		return fmt.Errorf("failed to cleanup log files: %w", err)
	}
	return nil
}

// GetLogger returns the underlying logrus logger
func (l *Logger) GetLogger() *logrus.Logger {
	return l.logger
}

// Uptime returns the time since the logger was created
func (l *Logger) Uptime() time.Duration {
	return time.Since(l.startTime)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Info(msg)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Error(msg)
}
