package testsuite

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Command is one step of a test. The concrete types are Shell, Call and
// Checker.
type Command interface {
	CommandName() string
	command()
}

// Shell runs Cmd through sh and expects it to exit with Retval.
type Shell struct {
	Name   string
	Cmd    string
	Retval int
}

// Call invokes Callback.
type Call struct {
	Name     string
	Callback func() error
}

// CheckFunc inspects the output gathered so far. The message, when not
// empty, is appended to the output.
type CheckFunc func(output string, args ...any) (ok bool, message string)

// Checker validates the test output with Callback.
type Checker struct {
	Name     string
	Callback CheckFunc
	Args     []any
}

func (s Shell) CommandName() string   { return s.Name }
func (c Call) CommandName() string    { return c.Name }
func (c Checker) CommandName() string { return c.Name }

func (Shell) command()   {}
func (Call) command()    {}
func (Checker) command() {}

// ExecOptions carries what a command needs from the surrounding test.
type ExecOptions struct {
	// Dir is the working directory of shell commands.
	Dir string
	// Env is the environment of shell commands; nil inherits the process one.
	Env []string
	// Output is the output accumulated by previous commands, given to checkers.
	Output string
}

// Result is the outcome of one command.
type Result struct {
	Name   string
	Output string
	Passed bool
	Err    error
}

// Exec runs cmd.
func Exec(ctx context.Context, cmd Command, opts ExecOptions) *Result {
	switch c := cmd.(type) {
	case Shell:
		return c.Run(ctx, opts.Dir, opts.Env)
	case Call:
		return c.Run()
	case Checker:
		return c.Run(opts.Output)
	default:
		return &Result{Err: fmt.Errorf("unsupported command type %T", cmd)}
	}
}

// Run executes the shell command in dir.
func (s Shell) Run(ctx context.Context, dir string, env []string) *Result {
	result := &Result{
		Name:   s.Name,
		Output: fmt.Sprintf("--- Shell command: %s ---\n", s.Cmd),
	}

	cmdStr := strings.TrimSpace(s.Cmd)
	if cmdStr == "" {
		result.Passed = s.Retval == 0
		return result
	}

	execCmd := exec.CommandContext(ctx, "sh", "-c", cmdStr)
	execCmd.Dir = dir
	execCmd.Env = env

	output, err := execCmd.CombinedOutput()
	result.Output += string(output)

	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			result.Err = fmt.Errorf("shell command %q failed to start: %w", s.Cmd, err)
			return result
		}
		code = exitErr.ExitCode()
	}

	result.Passed = code == s.Retval
	if !result.Passed {
		result.Err = fmt.Errorf("shell command %q exited with %d, expected %d", s.Cmd, code, s.Retval)
	}
	return result
}

// Run invokes the callback.
func (c Call) Run() *Result {
	result := &Result{Name: c.Name, Output: "--- Call command ---\n"}
	if c.Callback == nil {
		result.Err = fmt.Errorf("call command %q has no callback", c.Name)
		return result
	}
	if err := c.Callback(); err != nil {
		result.Err = err
		return result
	}
	result.Passed = true
	return result
}

// Run checks output with the callback.
func (c Checker) Run(output string) *Result {
	result := &Result{Name: c.Name, Output: "--- Checker command ---\n"}
	if c.Callback == nil {
		result.Err = fmt.Errorf("checker command %q has no callback", c.Name)
		return result
	}

	ok, msg := c.Callback(output, c.Args...)
	result.Output += msg
	result.Passed = ok
	if !ok {
		result.Err = fmt.Errorf("checker %q failed", c.Name)
	}
	return result
}
