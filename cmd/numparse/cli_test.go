package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/skdltmxn/numparse-go/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// setup installs quiet globals and returns the captured output.
func setup(t *testing.T) *bytes.Buffer {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.DefaultConfig()

	buf := &bytes.Buffer{}
	output = buf

	t.Cleanup(func() {
		parseBase, parseFormat, parseUnsigned, parseStart = "", "", false, 0
		scanBase, scanFormat, scanWorkers = "", "", 0
		output = os.Stdout
		stdin = os.Stdin
	})
	return buf
}

func TestParseCmdText(t *testing.T) {
	buf := setup(t)

	err := runParse(&cobra.Command{}, []string{"0x1F", "-42", "0rXIV", "99999999999999999999"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "31")
	assert.Contains(t, lines[0], "end=4")
	assert.Contains(t, lines[1], "-42")
	assert.Contains(t, lines[2], "14")
	assert.Contains(t, lines[3], "out of range")
}

func TestParseCmdJSON(t *testing.T) {
	buf := setup(t)
	parseFormat = "json"
	parseUnsigned = true
	parseBase = "0x10"

	err := runParse(&cobra.Command{}, []string{"ff", "-1"})
	require.NoError(t, err)

	var got []ParseDump
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "ff", got[0].Input)
	assert.Equal(t, float64(255), got[0].Value)
	assert.Equal(t, 2, got[0].End)
	assert.Equal(t, "ok", got[0].Status)
	assert.Equal(t, float64(0), got[1].Value)
	assert.Equal(t, 0, got[1].End)
}

func TestParseCmdUnsignedFromConfig(t *testing.T) {
	buf := setup(t)
	cfg.Signed = false
	parseFormat = "json"

	require.NoError(t, runParse(&cobra.Command{}, []string{"18446744073709551615", "-1"}))

	var got []ParseDump
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "ok", got[0].Status)
	assert.Equal(t, 20, got[0].End)
	assert.Equal(t, 0, got[1].End)
}

func TestParseCmdStart(t *testing.T) {
	buf := setup(t)
	parseStart = 3

	require.NoError(t, runParse(&cobra.Command{}, []string{"id=0b101"}))
	assert.Contains(t, buf.String(), "end=8")
}

func TestParseCmdRejectsBadFlags(t *testing.T) {
	setup(t)

	parseBase = "37"
	assert.Error(t, runParse(&cobra.Command{}, []string{"1"}))

	parseBase = "ten"
	assert.Error(t, runParse(&cobra.Command{}, []string{"1"}))

	parseBase = ""
	parseFormat = "xml"
	assert.Error(t, runParse(&cobra.Command{}, []string{"1"}))
}

func TestScanCmd(t *testing.T) {
	buf := setup(t)
	dir := t.TempDir()

	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("port=8080 retries=-3"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("mask 0xff, year 0rMMXXVI"), 0o644))

	scanFormat = "json"
	scanWorkers = 2
	require.NoError(t, runScan(&cobra.Command{}, []string{a, b}))

	var got []FileDump
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)

	assert.Equal(t, a, got[0].File)
	assert.Equal(t, []TokenDump{
		{Offset: 5, Text: "8080", Value: 8080, Status: "ok"},
		{Offset: 18, Text: "-3", Value: -3, Status: "ok"},
	}, got[0].Tokens)

	assert.Equal(t, b, got[1].File)
	assert.Equal(t, []TokenDump{
		{Offset: 5, Text: "0xff", Value: 255, Status: "ok"},
		{Offset: 16, Text: "0rMMXXVI", Value: 2026, Status: "ok"},
	}, got[1].Tokens)
}

func TestScanCmdStdinText(t *testing.T) {
	buf := setup(t)
	stdin = strings.NewReader("a 1 b 2")

	require.NoError(t, runScan(&cobra.Command{}, []string{"-"}))
	assert.Equal(t, "-:2\t1\t1\tok\n-:6\t2\t2\tok\n", buf.String())
}

func TestScanCmdMissingFiles(t *testing.T) {
	buf := setup(t)
	dir := t.TempDir()
	ok := filepath.Join(dir, "ok.txt")
	require.NoError(t, os.WriteFile(ok, []byte("7"), 0o644))

	err := runScan(&cobra.Command{}, []string{
		filepath.Join(dir, "missing1"),
		ok,
		filepath.Join(dir, "missing2"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing1")
	assert.Contains(t, err.Error(), "missing2")
	assert.Contains(t, buf.String(), "ok.txt:0\t7\t7\tok")
}

func TestScanFilesCancelled(t *testing.T) {
	setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dumps, err := scanFiles(ctx, []string{"-"}, 0, 1)
	assert.Empty(t, dumps)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScanFilesCancelledDropsFileErrors(t *testing.T) {
	setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	missing := filepath.Join(t.TempDir(), "absent.txt")
	dumps, err := scanFiles(ctx, []string{missing, "-"}, 0, 2)
	assert.Nil(t, dumps)
	require.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, err.Error(), "absent.txt")
}

func TestLimitsCmd(t *testing.T) {
	buf := setup(t)

	require.NoError(t, runLimits(&cobra.Command{}, nil))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2+35)
	assert.Equal(t, []string{"2", "64", "0x7FFFFFFFFFFFFFFF"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"10", "19", "0x1999999999999999"}, strings.Fields(lines[10]))
}
