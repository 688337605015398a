/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: formatter.go
Description: Custom log formatters for the Chomsky toolkit. CustomFormatter renders compact
single-line entries with sorted fields; StageFormatter prefixes entries with the pipeline
stage that produced them.
*/

package logging

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CustomFormatter provides readable single-line logging output
type CustomFormatter struct {
	Timestamp bool
	Caller    bool
	Colors    bool
}

// Format formats a log entry
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return f.format(entry, ""), nil
}

func (f *CustomFormatter) format(entry *logrus.Entry, prefix string) []byte {
	var output strings.Builder

	if f.Timestamp {
		timestamp := entry.Time.Format("2006-01-02 15:04:05.000")
		output.WriteString(f.paint(36, timestamp)) // Cyan
		output.WriteString(" ")
	}

	level := strings.ToUpper(entry.Level.String())
	output.WriteString(f.paint(f.getLevelColor(entry.Level), level))
	output.WriteString(" ")

	if prefix != "" {
		output.WriteString(f.paint(35, "["+prefix+"]")) // Magenta
		output.WriteString(" ")
	}

	if f.Caller && entry.HasCaller() {
		caller := fmt.Sprintf("[%s:%d]", entry.Caller.File, entry.Caller.Line)
		output.WriteString(f.paint(33, caller)) // Yellow
		output.WriteString(" ")
	}

	output.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		output.WriteString(" ")
		output.WriteString(f.formatFields(entry.Data))
	}

	output.WriteString("\n")
	return []byte(output.String())
}

func (f *CustomFormatter) paint(color int, s string) string {
	if !f.Colors {
		return s
	}
	return fmt.Sprintf("\033[%dm%s\033[0m", color, s)
}

// getLevelColor returns the ANSI color code for a log level
func (f *CustomFormatter) getLevelColor(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel:
		return 37 // White
	case logrus.InfoLevel:
		return 32 // Green
	case logrus.WarnLevel:
		return 33 // Yellow
	case logrus.ErrorLevel:
		return 31 // Red
	case logrus.FatalLevel, logrus.PanicLevel:
		return 35 // Magenta
	default:
		return 37
	}
}

// formatFields renders fields as key=value pairs in key order
func (f *CustomFormatter) formatFields(fields logrus.Fields) string {
	keys := maps.Keys(fields)
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := f.formatValue(fields[key])
		if f.Colors {
			parts = append(parts, fmt.Sprintf("\033[34m%s\033[0m=\033[32m%s\033[0m", key, value))
		} else {
			parts = append(parts, fmt.Sprintf("%s=%s", key, value))
		}
	}
	return strings.Join(parts, " ")
}

// formatValue formats a field value appropriately
func (f *CustomFormatter) formatValue(value interface{}) string {
	switch v := value.(type) {
	case time.Duration:
		return v.String()
	case time.Time:
		return v.Format("15:04:05.000")
	case float64:
		return fmt.Sprintf("%.4f", v)
	case string:
		if len(v) > 60 {
			return fmt.Sprintf("%s...", v[:60])
		}
		return v
	case error:
		return v.Error()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// StageFormatter tags each entry with the pipeline stage that emitted it
type StageFormatter struct {
	CustomFormatter
}

// Format formats an entry, moving the stage field into a prefix
func (f *StageFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	prefix := ""
	if stage, ok := entry.Data["stage"].(string); ok {
		prefix = strings.ToUpper(stage)
		data := make(logrus.Fields, len(entry.Data))
		for k, v := range entry.Data {
			if k != "stage" {
				data[k] = v
			}
		}
		clone := *entry
		clone.Data = data
		entry = &clone
	}
	return f.format(entry, prefix), nil
}
