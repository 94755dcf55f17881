// SPDX-License-Identifier: MIT

package autgroup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ExecRunner runs Command with Args once per request.
type ExecRunner struct {
	Command string
	Args    []string
	// Env is appended to the current process environment.
	Env []string
}

// NewExecRunner returns a runner for the given command line.
func NewExecRunner(command string, args ...string) *ExecRunner {
	return &ExecRunner{Command: command, Args: args}
}

// Run writes req as JSON to the process stdin and decodes its stdout.
// Stderr is folded into the ErrProcess error. A cancelled ctx kills the
// process and Run returns ctx.Err() wrapped.
func (r *ExecRunner) Run(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodRun, err)
	}
	if req.Edges == nil {
		req.Edges = [][2]int{}
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return Result{}, fmt.Errorf("%s: encode: %w", methodRun, err)
	}

	cmd := exec.CommandContext(ctx, r.Command, r.Args...)
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, fmt.Errorf("%s: %w", methodRun, ctxErr)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return Result{}, fmt.Errorf("%s: %s: %w", methodRun, msg, ErrProcess)
	}

	var res Result
	dec := json.NewDecoder(&stdout)
	if err := dec.Decode(&res); err != nil {
		return Result{}, fmt.Errorf("%s: %v: %w", methodRun, err, ErrDecode)
	}

	return res, nil
}
