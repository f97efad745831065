// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/BeBeatrice/Parallel-Computing/hub"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// execute runs the command line args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	err := run(context.Background(), args, &out, &errOut)

	return out.String(), errOut.String(), err
}

func writeInputs(t *testing.T, a, b string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	pathA, pathB := filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(pathA, []byte(a+"\n"), 0o644))
	require.NoError(t, os.WriteFile(pathB, []byte(b+"\n"), 0o644))

	return pathA, pathB
}

func TestRun(t *testing.T) {
	pathA, pathB := writeInputs(t, "kitten", "sitting")

	out, _, err := execute(t, "run", pathA, pathB, "--workers", "3", "--threads", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Edit Distance: 3\n")
	assert.Contains(t, out, "Execution Time (3 processes): ")
}

func TestRun_MissingInput(t *testing.T) {
	pathA, _ := writeInputs(t, "a", "b")

	_, _, err := execute(t, "run", pathA, filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input B")
}

// TestRun_TraceFlushedOnFailure exports the command span even when the
// subcommand fails.
func TestRun_TraceFlushedOnFailure(t *testing.T) {
	pathA, _ := writeInputs(t, "a", "b")

	_, errOut, err := execute(t, "--trace", "run", pathA, filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.Contains(t, errOut, `"Name":"wavefront.run"`)
	assert.Contains(t, errOut, "input B")
}

func TestRun_Usage(t *testing.T) {
	_, _, err := execute(t, "run", "only-one")
	require.Error(t, err)

	pathA, pathB := writeInputs(t, "a", "b")
	_, _, err = execute(t, "run", pathA, pathB, "--workers", "0")
	require.Error(t, err)
}

func TestSeq(t *testing.T) {
	pathA, pathB := writeInputs(t, "intention", "execution")

	out, _, err := execute(t, "seq", pathA, pathB)
	require.NoError(t, err)
	assert.Contains(t, out, "Edit Distance: 5\n")
	assert.Contains(t, out, "Elapsed time: ")
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()

	out, _, err := execute(t, "generate", "30", "--dir", dir, "--seed", "11")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated two random sequences of length 30:")
	assert.Contains(t, out, "...")

	for _, name := range []string{"inputA_30.txt", "inputB_30.txt"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		seq := strings.TrimSpace(string(data))
		assert.Len(t, seq, 30)
		assert.Empty(t, strings.Trim(seq, "ACGT"), "only nucleotides")
	}

	again, _, err := execute(t, "generate", "30", "--dir", t.TempDir(), "--seed", "11")
	require.NoError(t, err)
	assert.Equal(t, strings.Split(out, "\n")[1], strings.Split(again, "\n")[1], "seeded output is reproducible")
}

func TestGenerate_BadLength(t *testing.T) {
	_, _, err := execute(t, "generate", "ten")
	require.Error(t, err)

	_, _, err = execute(t, "generate", "-1", "--dir", t.TempDir())
	require.Error(t, err)
}

func TestCoordinateAndWorkers(t *testing.T) {
	ts := httptest.NewServer(hub.NewServer(nil).Handler())
	defer ts.Close()

	pathA, pathB := writeInputs(t, "kitten", "sitting")
	const workers = 3

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for rank := 0; rank < workers; rank++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, errs[rank] = execute(t, "worker", "--hub", ts.URL, "--group", "g1",
				"--rank", strconv.Itoa(rank), "--workers", strconv.Itoa(workers), "--step-timeout", "5s")
		}()
	}

	out, errOut, err := execute(t, "coordinate", pathA, pathB, "--hub", ts.URL, "--group", "g1",
		"--workers", strconv.Itoa(workers))
	wg.Wait()

	require.NoError(t, err)
	for rank, err := range errs {
		require.NoError(t, err, "rank %d", rank)
	}
	assert.Contains(t, errOut, "group: g1")
	assert.Contains(t, out, "Edit Distance: 3\n")
	assert.Contains(t, out, "Execution Time (3 processes): ")
}

func TestCoordinate_AbortsOnBadInput(t *testing.T) {
	ts := httptest.NewServer(hub.NewServer(nil).Handler())
	defer ts.Close()

	workerErr := make(chan error, 1)
	go func() {
		_, _, err := execute(t, "worker", "--hub", ts.URL, "--group", "g2", "--rank", "1", "--workers", "2")
		workerErr <- err
	}()

	missing := filepath.Join(t.TempDir(), "absent.txt")
	_, _, err := execute(t, "coordinate", missing, missing, "--hub", ts.URL, "--group", "g2", "--workers", "2")
	require.Error(t, err)

	err = <-workerErr
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aborted")
}

func TestWorker_RequiresGroup(t *testing.T) {
	_, _, err := execute(t, "worker")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--group")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wavefront.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 2\nlog_format: text\n"), 0o644))
	pathA, pathB := writeInputs(t, "flaw", "lawn")

	out, _, err := execute(t, "--config", path, "run", pathA, pathB)
	require.NoError(t, err)
	assert.Contains(t, out, "Edit Distance: 2\n")
	assert.Contains(t, out, "(2 processes)")
}

func TestConfigFile_Missing(t *testing.T) {
	pathA, pathB := writeInputs(t, "flaw", "lawn")
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	out, _, err := execute(t, "--config", missing, "run", pathA, pathB)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "absent.yaml")
	assert.Empty(t, out)
}
