/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_test.go
Description: Tests for HTML and Markdown classification reports.
*/

package reporting_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/kleascm/chomsky-toolkit/pkg/classifier"
	"github.com/kleascm/chomsky-toolkit/pkg/grammar"
	"github.com/kleascm/chomsky-toolkit/pkg/reporting"
	"github.com/kleascm/chomsky-toolkit/pkg/sampler"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportData(t *testing.T, text string, withSample bool) *reporting.ReportData {
	t.Helper()
	g := grammar.MustParse(text)
	res, err := classifier.Classify(g)
	require.NoError(t, err)

	b := sampler.Bounds{MaxLen: 4, MaxSteps: 500}
	var sample *sampler.Result
	if withSample {
		sample = sampler.Sample(g, b)
	}
	return reporting.NewReportData("Test Report", "inline.txt", g, res, sample, b)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(&bytes.Buffer{})
	return l
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]reporting.Format{
		"html":     reporting.FormatHTML,
		"HTM":      reporting.FormatHTML,
		"md":       reporting.FormatMarkdown,
		"Markdown": reporting.FormatMarkdown,
	} {
		got, err := reporting.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := reporting.ParseFormat("pdf")
	assert.Error(t, err)

	assert.Equal(t, ".html", reporting.FormatHTML.Extension())
	assert.Equal(t, ".md", reporting.FormatMarkdown.Extension())
}

func TestNewReportData(t *testing.T) {
	data := reportData(t, "S -> aSb | ab", true)

	assert.Len(t, data.ID, 36)
	assert.Equal(t, 2, data.Level)
	assert.Equal(t, "context-free", data.LevelName)
	assert.Equal(t, "S", data.Start)
	assert.Equal(t, []string{"S"}, data.Nonterminals)
	assert.Equal(t, []string{"a", "b"}, data.Terminals)
	assert.Equal(t, "Classification: Type 2 (context-free)", data.Summary)
	require.NotNil(t, data.Sample)
	assert.Equal(t, []string{"aabb", "ab"}, data.Sample.Words)

	other := reportData(t, "S -> aSb | ab", false)
	assert.NotEqual(t, data.ID, other.ID)
	assert.Nil(t, other.Sample)
}

func TestRenderMarkdown(t *testing.T) {
	data := reportData(t, "S -> aS | e", true)
	rg := reporting.NewReportGenerator(t.TempDir(), quietLogger())

	var buf bytes.Buffer
	require.NoError(t, rg.Render(&buf, data, reporting.FormatMarkdown))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Test Report\n"))
	assert.Contains(t, out, "**Classification: Type 3 (regular)**")
	assert.Contains(t, out, "S -> aS | ε")
	assert.Contains(t, out, "| PASS | Type 3 (regular) |")
	assert.Contains(t, out, "- `ε`")
	assert.Contains(t, out, "- `aaaa`")
}

func TestRenderMarkdownEscapesAlternatives(t *testing.T) {
	data := reportData(t, "AB -> BA | a\nS -> aA", false)
	rg := reporting.NewReportGenerator(t.TempDir(), quietLogger())

	var buf bytes.Buffer
	require.NoError(t, rg.Render(&buf, data, reporting.FormatMarkdown))
	assert.Contains(t, buf.String(), `AB -> BA \| a`)
	assert.NotContains(t, buf.String(), "## Sample")
}

func TestRenderHTML(t *testing.T) {
	data := reportData(t, "S -> aSb | ab", true)
	rg := reporting.NewReportGenerator(t.TempDir(), quietLogger())

	var buf bytes.Buffer
	require.NoError(t, rg.Render(&buf, data, reporting.FormatHTML))
	out := buf.String()

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "Classification: Type 2 (context-free)")
	assert.Contains(t, out, `<span class="fail">FAIL</span>`)
	assert.Contains(t, out, `<span class="pass">PASS</span>`)
	assert.Contains(t, out, "S -&gt; aSb")
	assert.Contains(t, out, "<span>aabb</span>")
}

func TestRenderHTMLStructure(t *testing.T) {
	data := reportData(t, "S -> aSb | ab", true)
	rg := reporting.NewReportGenerator(t.TempDir(), quietLogger())

	var buf bytes.Buffer
	require.NoError(t, rg.Render(&buf, data, reporting.FormatHTML))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	assert.Equal(t, "S -> aSb | ab", strings.TrimSpace(doc.Find("pre").Text()))

	facts := map[string]string{}
	doc.Find("table").First().Find("tr").Each(func(_ int, row *goquery.Selection) {
		facts[row.Find("th").Text()] = row.Find("td").Text()
	})
	assert.Equal(t, "S", facts["Start symbol"])
	assert.Equal(t, "a b", facts["Terminals"])
	assert.Equal(t, "pushdown automaton (PDA)", facts["Recognizer"])

	trace := doc.Find("table").Eq(1).Find("tr")
	require.Equal(t, 3, trace.Length())
	assert.Equal(t, "FAIL", trace.Eq(1).Find("td").First().Text())
	assert.Equal(t, "PASS", trace.Eq(2).Find("td").First().Text())
	assert.Contains(t, trace.Eq(1).Find("td").Last().Text(), "S -> aSb")

	words := doc.Find(".words span").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	assert.Equal(t, []string{"aabb", "ab"}, words)
}

func TestRenderUnknownFormat(t *testing.T) {
	rg := reporting.NewReportGenerator(t.TempDir(), quietLogger())
	assert.Error(t, rg.Render(&bytes.Buffer{}, reportData(t, "S -> a", false), reporting.Format("pdf")))
}

func TestGenerateWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	data := reportData(t, "S -> a", false)
	rg := reporting.NewReportGenerator(dir, quietLogger())

	path, err := rg.Generate(data, reporting.FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report_"+data.ID+".md"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), data.ID)
}
