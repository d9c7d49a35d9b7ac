package output

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/skilltrend/engine"
)

func unsetNoColor(t *testing.T) {
	t.Helper()
	if v, ok := os.LookupEnv("NO_COLOR"); ok {
		require.NoError(t, os.Unsetenv("NO_COLOR"))
		t.Cleanup(func() { os.Setenv("NO_COLOR", v) })
	}
}

func TestResolveColors(t *testing.T) {
	unsetNoColor(t)
	t.Setenv("TERM", "xterm")

	assert.False(t, ResolveColors(true, true), "--no-color wins")
	assert.True(t, ResolveColors(false, true))
	assert.False(t, ResolveColors(false, false))

	t.Setenv("NO_COLOR", "")
	assert.False(t, ResolveColors(false, true), "NO_COLOR is honoured even when empty")
}

func TestResolveColorsDumbTerminal(t *testing.T) {
	t.Setenv("TERM", "dumb")
	assert.False(t, ResolveColors(false, true))
}

func TestPrinterPlain(t *testing.T) {
	var out, errBuf bytes.Buffer
	p := NewPrinterWithWriters(&out, &errBuf, false)

	p.Success("wrote %d records", 740)
	p.Info("hello")
	p.Warning("careful")
	p.Header("Başlık")

	assert.Equal(t, "[OK] wrote 740 records\nhello\n\nBaşlık\n------\n", out.String())
	assert.Equal(t, "[WARN] careful\n", errBuf.String())
}

func TestPrinterCards(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinterWithWriters(&out, &out, false)

	p.Cards([]engine.StatCard{
		{Key: "a", Label: "Jobs", Value: "1,200"},
		{Key: "b", Label: "Yearly Growth", Value: "+12.0%"},
	})

	assert.Equal(t, "  Jobs           1,200\n  Yearly Growth  +12.0%\n", out.String())
}

func TestTableRendersHeadersAndRows(t *testing.T) {
	var out bytes.Buffer
	tbl := FromTableData(&out, &engine.TableData{
		Columns: []engine.Column{
			{Label: "Skill", Align: "left"},
			{Label: "Jobs", Align: "right"},
		},
		Rows: [][]string{{"Go", "120"}, {"Rust", "45"}},
	})
	require.NoError(t, tbl.Render())

	text := out.String()
	for _, want := range []string{"Skill", "Jobs", "Go", "120", "Rust", "45"} {
		assert.Contains(t, text, want)
	}
	assert.Less(t, strings.Index(text, "Go"), strings.Index(text, "Rust"))
}

func TestTableRendersSummaryFooter(t *testing.T) {
	var out bytes.Buffer
	tbl := FromTableData(&out, &engine.TableData{
		Columns: []engine.Column{
			{Key: "skill", Label: "Skill", Align: "left"},
			{Key: "count", Label: "Jobs", Align: "right"},
		},
		Rows: [][]string{{"Go", "120"}, {"Rust", "45"}},
		Summary: &engine.Summary{
			Label:  "Total (2 skills)",
			Values: map[string]string{"count": "165"},
		},
	})
	require.NoError(t, tbl.Render())

	text := out.String()
	assert.Contains(t, text, "Total (2 skills)")
	assert.Contains(t, text, "165")
	assert.Less(t, strings.Index(text, "Rust"), strings.Index(text, "Total (2 skills)"))
}

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCodeFor(nil))
	assert.Equal(t, ExitGeneral, ExitCodeFor(errors.New("boom")))

	cliErr := &CLIError{Summary: "no data", ExitCode: ExitDataUnavailable}
	assert.Equal(t, ExitDataUnavailable, ExitCodeFor(cliErr))
	assert.Equal(t, ExitDataUnavailable, ExitCodeFor(fmt.Errorf("wrapped: %w", cliErr)))
	assert.Equal(t, ExitGeneral, ExitCodeFor(&CLIError{Summary: "no code"}))
}

func TestCLIErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &CLIError{Summary: "write failed", Err: cause}
	assert.ErrorIs(t, err, cause)
}

func TestFormatError(t *testing.T) {
	var errBuf bytes.Buffer
	p := NewPrinterWithWriters(&bytes.Buffer{}, &errBuf, false)

	p.FormatError(&CLIError{
		Summary:    "snapshot not found",
		Detail:     "open data/trends.json: no such file",
		Suggestion: "run 'skilltrend generate' first",
	})
	assert.Equal(t,
		"[ERROR] snapshot not found\n  Cause: open data/trends.json: no such file\n  Suggestion: run 'skilltrend generate' first\n",
		errBuf.String())

	errBuf.Reset()
	p.FormatError(errors.New("plain"))
	assert.Equal(t, "[ERROR] plain\n", errBuf.String())
}
