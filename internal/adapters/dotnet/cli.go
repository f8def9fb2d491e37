// Package dotnet implements the build-tool gateway on top of the dotnet CLI.
package dotnet

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// HostPathEnv names the variable the SDK sets to the running dotnet host.
	HostPathEnv = "DOTNET_HOST_PATH"

	defaultExecutable = "dotnet"

	// maxOutputLines bounds how much process output is attached to an error.
	maxOutputLines = 20
)

// CLI implements ports.BuildTool by invoking `dotnet msbuild` and `dotnet clean`.
type CLI struct {
	logger     ports.Logger
	executable string
	env        []string
}

// NewCLI creates a CLI using $DOTNET_HOST_PATH when set, otherwise dotnet from PATH.
func NewCLI(logger ports.Logger) *CLI {
	executable := defaultExecutable
	if host := os.Getenv(HostPathEnv); host != "" {
		executable = host
	}
	return NewCLIWithExecutable(logger, executable)
}

// NewCLIWithExecutable creates a CLI running the given executable.
func NewCLIWithExecutable(logger ports.Logger, executable string) *CLI {
	return &CLI{
		logger:     logger,
		executable: executable,
		env: append(os.Environ(),
			"DOTNET_NOLOGO=1",
			"DOTNET_CLI_TELEMETRY_OPTOUT=1",
			"MSBUILDTERMINALLOGGER=off",
		),
	}
}

// Evaluate resolves properties of projectPath, optionally under a configuration and framework.
func (c *CLI) Evaluate(
	ctx context.Context,
	projectPath string,
	overrides domain.ConfigurationKey,
	properties []string,
) (map[string]string, error) {
	args := EvaluateArgs(projectPath, overrides, properties)

	stdout, stderr, err := c.run(ctx, projectPath, args)
	if err != nil {
		return nil, c.classify(ctx, err, domain.ErrEvaluationFailed, projectPath, stdout, stderr)
	}

	values, err := ParseProperties(properties, stdout)
	if err != nil {
		return nil, zerr.With(err, "project", projectPath)
	}
	return values, nil
}

// Clean runs `dotnet clean` for projectPath with args.
func (c *CLI) Clean(ctx context.Context, projectPath string, args []string) error {
	cmdArgs := append([]string{"clean", projectPath}, args...)

	stdout, stderr, err := c.run(ctx, projectPath, cmdArgs)
	if err != nil {
		return c.classify(ctx, err, domain.ErrCleanFailed, projectPath, stdout, stderr)
	}

	if out := strings.TrimSpace(stdout); out != "" {
		c.logger.Debug(out)
	}
	return nil
}

// EvaluateArgs builds the `dotnet msbuild` arguments for a property query.
func EvaluateArgs(projectPath string, overrides domain.ConfigurationKey, properties []string) []string {
	args := make([]string, 0, len(properties)+4)
	args = append(args, "msbuild", projectPath)
	for _, p := range properties {
		args = append(args, "-getProperty:"+p)
	}
	if overrides.Configuration != "" {
		args = append(args, "-property:Configuration="+overrides.Configuration)
	}
	if overrides.TargetFramework != "" {
		args = append(args, "-property:TargetFramework="+overrides.TargetFramework)
	}
	return args
}

// run executes the tool in the project's directory. The working directory is set per
// invocation so concurrent calls never interfere.
func (c *CLI) run(ctx context.Context, projectPath string, args []string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, c.executable, args...) //nolint:gosec // arguments are built from discovered paths
	cmd.Dir = filepath.Dir(projectPath)
	cmd.Env = c.env
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.Debug(c.executable + " " + strings.Join(args, " "))

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func (c *CLI) classify(ctx context.Context, err, sentinel error, projectPath, stdout, stderr string) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return zerr.With(zerr.Wrap(ctxErr, "dotnet invocation interrupted"), "project", projectPath)
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		wrapped := zerr.Wrap(err, domain.ErrBuildToolStartFailed.Error())
		return zerr.With(wrapped, "executable", c.executable)
	}

	wrapped := zerr.Wrap(sentinel, "dotnet exited with code "+strconv.Itoa(exitErr.ExitCode()))
	wrapped = zerr.With(wrapped, "project", projectPath)
	wrapped = zerr.With(wrapped, "exit_code", exitErr.ExitCode())
	if out := tail(stdout, maxOutputLines); out != "" {
		wrapped = zerr.With(wrapped, "stdout", out)
	}
	if out := tail(stderr, maxOutputLines); out != "" {
		wrapped = zerr.With(wrapped, "stderr", out)
	}
	return wrapped
}

// tail keeps the last n lines of s.
func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\r\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
