// Package testutil provides shared test utilities for assetview packages.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// pipeCapture redirects one of the process streams into a pipe that is
// drained in the background, so large listings never block the writer.
type pipeCapture struct {
	target *(*os.File)
	old    *os.File
	w      *os.File
	done   chan string
}

func startCapture(t *testing.T, target **os.File) *pipeCapture {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("create pipe: %v", err)
	}

	c := &pipeCapture{target: target, old: *target, w: w, done: make(chan string, 1)}
	*target = w

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		c.done <- buf.String()
	}()
	return c
}

// stop restores the stream and returns everything written to it.
func (c *pipeCapture) stop() string {
	*c.target = c.old
	_ = c.w.Close()
	return <-c.done
}

// CaptureStdout runs fn with os.Stdout redirected and returns what it printed.
//
// Parameters:
//   - t: Testing instance for helper marking
//   - fn: Function to execute while capturing stdout
//
// Returns:
//   - string: All content written to stdout during fn execution
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()

	c := startCapture(t, &os.Stdout)
	defer func() {
		if c != nil {
			c.stop()
		}
	}()

	fn()

	out := c.stop()
	c = nil
	return out
}

// CaptureStderr runs fn with os.Stderr redirected and returns what it printed.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()

	c := startCapture(t, &os.Stderr)
	defer func() {
		if c != nil {
			c.stop()
		}
	}()

	fn()

	out := c.stop()
	c = nil
	return out
}

// CaptureOutput runs fn with both os.Stdout and os.Stderr redirected.
//
// Returns:
//   - stdout: All content written to stdout during fn execution
//   - stderr: All content written to stderr during fn execution
func CaptureOutput(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()

	out := startCapture(t, &os.Stdout)
	errs := startCapture(t, &os.Stderr)
	finished := false
	defer func() {
		if !finished {
			errs.stop()
			out.stop()
		}
	}()

	fn()

	finished = true
	stderr = errs.stop()
	stdout = out.stop()
	return stdout, stderr
}
