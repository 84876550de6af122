// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"
)

const (
	DefaultCmdTimeout = 30 * time.Second
	MaxOutputSize     = 16 * 1024 * 1024 // 16MB
)

var ErrOutputTruncated = errors.New("output exceeded size limit")

// CommandRunner handles external tool execution with timeouts and size limits
type CommandRunner struct {
	limit int64
}

// NewCommandRunner creates a new command runner
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{limit: MaxOutputSize}
}

// RunWithTimeout runs a command with input on stdin and returns its stdout.
// Output over the size limit is an error rather than a silently cut image.
func (cr *CommandRunner) RunWithTimeout(timeout time.Duration, stdin []byte, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = bytes.NewReader(stdin)

	var out, stderr bytes.Buffer
	limitedWriter := &LimitedWriter{w: &out, limit: cr.limit}
	cmd.Stdout = limitedWriter
	cmd.Stderr = &LimitedWriter{w: &stderr, limit: 64 * 1024}

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s timed out after %s", name, timeout)
		}
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%s failed: %v: %s", name, err, bytes.TrimSpace(stderr.Bytes()))
		}
		return nil, fmt.Errorf("%s failed: %v", name, err)
	}
	if limitedWriter.truncated {
		return nil, ErrOutputTruncated
	}
	return out.Bytes(), nil
}

// Run runs a command with default timeout
func (cr *CommandRunner) Run(stdin []byte, name string, args ...string) ([]byte, error) {
	return cr.RunWithTimeout(DefaultCmdTimeout, stdin, name, args...)
}

// CheckCommandExists checks if a command is available on PATH
func (cr *CommandRunner) CheckCommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// LimitedWriter implements io.Writer with size limiting
type LimitedWriter struct {
	w         io.Writer
	limit     int64
	written   int64
	truncated bool
}

func (lw *LimitedWriter) Write(p []byte) (n int, err error) {
	if lw.written >= lw.limit {
		lw.truncated = true
		return len(p), nil
	}

	remaining := lw.limit - lw.written
	if int64(len(p)) > remaining {
		lw.truncated = true
		n, err = lw.w.Write(p[:remaining])
		lw.written += int64(n)
		return len(p), err
	}

	n, err = lw.w.Write(p)
	lw.written += int64(n)
	return n, err
}
