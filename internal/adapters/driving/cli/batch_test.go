package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCmd_Use(t *testing.T) {
	assert.Equal(t, "batch [file]", batchCmd.Use)
}

func TestBatchCmd_Short(t *testing.T) {
	assert.Equal(t, "Convert Roman text line by line", batchCmd.Short)
}

func TestBatchCmd_HasWorkersFlag(t *testing.T) {
	flag := batchCmd.Flags().Lookup("workers")
	require.NotNil(t, flag, "workers flag should exist")
	assert.Equal(t, "w", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestBatchCmd_HasOutputFlag(t *testing.T) {
	flag := batchCmd.Flags().Lookup("output")
	require.NotNil(t, flag, "output flag should exist")
	assert.Equal(t, "o", flag.Shorthand)
}

func TestBatchCmd_HasWatchFlag(t *testing.T) {
	flag := batchCmd.Flags().Lookup("watch")
	require.NotNil(t, flag, "watch flag should exist")
	assert.Equal(t, "false", flag.DefValue)
}

func TestBatchCmd_ConvertsStdin(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetIn(strings.NewReader("ami\nmon\n"))
	rootCmd.SetArgs([]string{"batch"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "আমি\nমন\n", out.String())
	assert.Contains(t, errOut.String(), "Converted 2 lines")
}

func TestBatchCmd_ConvertsFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("mon bhalo\n"), 0o644))

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs([]string{"batch", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "মন ভালো\n", out.String())
	assert.Contains(t, errOut.String(), "Converted 1 lines")
}

func TestBatchCmd_WritesOutputFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "input.txt")
	outPath := filepath.Join(dir, "output.txt")
	require.NoError(t, os.WriteFile(inPath, []byte("ami\n"), 0o644))

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"batch", inPath, "--output", outPath})
	defer func() {
		rootCmd.SetArgs(nil)
		batchOutput = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "আমি\n", string(data))
}

func TestBatchCmd_FormatJSONPerLine(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetIn(strings.NewReader("ami\n"))
	rootCmd.SetArgs([]string{"batch", "--format", "json"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		batchFormat = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, `{"input":"ami","output":"আমি"}`+"\n", out.String())
}

func TestBatchCmd_StrictFailsOnInvalidLine(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetIn(strings.NewReader("ami\ncafé\n"))
	rootCmd.SetArgs([]string{"batch"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "batch failed")
}

func TestBatchCmd_LenientKeepsGoing(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetIn(strings.NewReader("ami\nbhaélo\n"))
	rootCmd.SetArgs([]string{"batch", "--lenient"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		batchLenient = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "আমি\nভালো\n", out.String())
	assert.Contains(t, errOut.String(), "Converted 2 lines")
}

func TestBatchCmd_WatchRequiresFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"batch", "--watch"})
	defer func() {
		rootCmd.SetArgs(nil)
		batchWatch = false
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "watch mode requires an input file")
}

func TestBatchCmd_ServiceNotConfigured(t *testing.T) {
	oldService := batchService
	batchService = nil
	defer func() {
		batchService = oldService
	}()

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"batch"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "batch service not configured")
}
