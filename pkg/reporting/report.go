/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: Classification reports for the Chomsky toolkit. Renders a grammar, its layered
classification trace and a bounded language sample as a standalone HTML page or as Markdown,
and writes reports under a per-run identifier in the configured output directory.
*/

package reporting

import (
	"fmt"
	htmltemplate "html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/chomsky-toolkit/pkg/classifier"
	"github.com/kleascm/chomsky-toolkit/pkg/grammar"
	"github.com/kleascm/chomsky-toolkit/pkg/logging"
	"github.com/kleascm/chomsky-toolkit/pkg/sampler"
	"github.com/sirupsen/logrus"
)

// Version is stamped into every report
const Version = "1.0.0"

// Format selects the report rendering
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "md"
)

// ParseFormat accepts html, md or markdown
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html", "htm":
		return FormatHTML, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported report format: %q", s)
	}
}

// Extension returns the file extension for f
func (f Format) Extension() string {
	if f == FormatMarkdown {
		return ".md"
	}
	return ".html"
}

// ReportData contains everything a report shows
type ReportData struct {
	Title        string            `json:"title"`
	ID           string            `json:"id"`
	GeneratedAt  time.Time         `json:"generated_at"`
	Version      string            `json:"version"`
	Source       string            `json:"source"`
	Grammar      string            `json:"grammar"`
	Fingerprint  string            `json:"fingerprint"`
	Start        string            `json:"start"`
	Nonterminals []string          `json:"nonterminals"`
	Terminals    []string          `json:"terminals"`
	Productions  int               `json:"productions"`
	Level        int               `json:"level"`
	LevelName    string            `json:"level_name"`
	Recognizer   string            `json:"recognizer"`
	Steps        []classifier.Step `json:"steps"`
	Summary      string            `json:"summary"`
	Sample       *SampleSection    `json:"sample,omitempty"`
}

// SampleSection summarises a bounded sample
type SampleSection struct {
	MaxLen    int      `json:"max_len"`
	MaxSteps  int      `json:"max_steps"`
	Steps     int      `json:"steps"`
	Truncated bool     `json:"truncated"`
	Words     []string `json:"words"`
}

// NewReportData assembles report data. sample may be nil.
func NewReportData(title, source string, g *grammar.Grammar, res *classifier.Result, sample *sampler.Result, b sampler.Bounds) *ReportData {
	data := &ReportData{
		Title:       title,
		ID:          uuid.New().String(),
		GeneratedAt: time.Now(),
		Version:     Version,
		Source:      source,
		Grammar:     g.String(),
		Fingerprint: g.FingerprintHex(),
		Start:       g.Start.String(),
		Productions: len(g.Productions),
		Level:       int(res.Level),
		LevelName:   res.Level.Name(),
		Recognizer:  res.Level.Recognizer(),
		Steps:       res.Steps,
		Summary:     res.Summary(),
	}
	for _, nt := range g.Nonterminals() {
		data.Nonterminals = append(data.Nonterminals, nt.String())
	}
	for _, t := range g.Terminals() {
		data.Terminals = append(data.Terminals, t.String())
	}
	if sample != nil {
		data.Sample = &SampleSection{
			MaxLen:    b.MaxLen,
			MaxSteps:  b.MaxSteps,
			Steps:     sample.Steps,
			Truncated: sample.Truncated,
			Words:     sample.Words,
		}
	}
	return data
}

var templateFuncs = map[string]interface{}{
	"word": displayWord,
	"join": strings.Join,
	"cell": func(s string) string {
		return strings.ReplaceAll(s, "|", `\|`)
	},
	"stamp": func(t time.Time) string {
		return t.Format(time.RFC3339)
	},
}

func displayWord(w string) string {
	if w == "" {
		return "ε"
	}
	return w
}

// ReportGenerator renders and writes classification reports
type ReportGenerator struct {
	outputDir string
	logger    *logrus.Logger
	html      *htmltemplate.Template
	markdown  *texttemplate.Template
}

// NewReportGenerator creates a report generator writing into outputDir
func NewReportGenerator(outputDir string, logger *logrus.Logger) *ReportGenerator {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ReportGenerator{
		outputDir: outputDir,
		logger:    logger,
		html:      htmltemplate.Must(htmltemplate.New("report").Funcs(templateFuncs).Parse(htmlTemplate)),
		markdown:  texttemplate.Must(texttemplate.New("report").Funcs(templateFuncs).Parse(markdownTemplate)),
	}
}

// Render writes the report for data to w
func (rg *ReportGenerator) Render(w io.Writer, data *ReportData, format Format) error {
	switch format {
	case FormatHTML:
		return rg.html.Execute(w, data)
	case FormatMarkdown:
		return rg.markdown.Execute(w, data)
	default:
		return fmt.Errorf("unsupported report format: %q", format)
	}
}

// Generate writes the report to <outputDir>/report_<id><ext> and returns the path
func (rg *ReportGenerator) Generate(data *ReportData, format Format) (string, error) {
	if err := os.MkdirAll(rg.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(rg.outputDir, "report_"+data.ID+format.Extension())
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := rg.Render(file, data, format); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	rg.logger.WithFields(logrus.Fields{
		"stage":           logging.StageReport,
		"path":            path,
		"format":          string(format),
		"hierarchy_level": data.Level,
	}).Info("Report generated")
	return path, nil
}
