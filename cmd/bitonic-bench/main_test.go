package main

import (
	"bytes"
	"testing"

	"github.com/king54346/bitonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun(t *testing.T) {
	out, _, err := execute(t, "--threshold", "16", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "sorting 1024 integers (0.0 MB)")
	assert.Contains(t, out, "cpu info:")
	assert.Contains(t, out, "seq_sort: sorted 1024 integers in")
	assert.Contains(t, out, "par_sort: sorted 1024 integers in")
}

func TestRunDescendingVerbose(t *testing.T) {
	_, logs, err := execute(t, "-o", "descending", "-w", "2", "-t", "8", "-v", "8")
	require.NoError(t, err)
	assert.Contains(t, logs, "pool created")
	assert.Contains(t, logs, "sort finished")
}

func TestRunRejectsBadArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing", nil, "accepts 1 arg(s)"},
		{"not a number", []string{"abc"}, "error parsing argument"},
		{"negative", []string{"--", "-1"}, "bits must be between"},
		{"too large", []string{"33"}, "bits must be between"},
		{"bad order", []string{"-o", "sideways", "4"}, "unknown order"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestOptionsParse(t *testing.T) {
	opts := defaultOptions()
	require.NoError(t, opts.parse("12"))
	assert.Equal(t, 12, opts.bits)
	assert.Equal(t, bitonic.Ascending, opts.order)
	assert.Equal(t, bitonic.ParallelThreshold, opts.threshold)
}

func TestTimedSort(t *testing.T) {
	r, err := timedSort("par", 1<<12, bitonic.Descending, bitonic.Config{Threshold: 64})
	require.NoError(t, err)
	assert.Equal(t, "par", r.name)
	assert.True(t, r.sortedOK)
}
