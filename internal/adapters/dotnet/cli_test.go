package dotnet_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/purge/internal/adapters/dotnet"
	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// fakeDotnet writes a shell script standing in for the dotnet host. Every invocation
// appends its working directory and arguments to the returned log file.
func fakeDotnet(t *testing.T, body string) (string, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake dotnet host is a shell script")
	}

	dir := t.TempDir()
	logPath := filepath.Join(dir, "calls.log")
	script := "#!/bin/sh\n" +
		"printf '%s|%s\\n' \"$PWD\" \"$*\" >> '" + logPath + "'\n" +
		body + "\n"

	exe := filepath.Join(dir, "dotnet")
	require.NoError(t, os.WriteFile(exe, []byte(script), 0o755)) //nolint:gosec // must be executable
	return exe, logPath
}

func calls(t *testing.T, logPath string) []string {
	t.Helper()
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func newProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "App.csproj")
	require.NoError(t, os.WriteFile(path, []byte("<Project />"), domain.FilePerm))
	// Resolve symlinked temp dirs so the recorded $PWD compares equal.
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}

func TestCLI_Evaluate_SingleProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	exe, logPath := fakeDotnet(t, `printf '%s\n' 'Debug;Release'`)
	project := newProject(t)

	cli := dotnet.NewCLIWithExecutable(log, exe)
	values, err := cli.Evaluate(context.Background(), project, domain.ConfigurationKey{}, []string{domain.PropConfigurations})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{domain.PropConfigurations: "Debug;Release"}, values)

	assert.Equal(t, []string{
		filepath.Dir(project) + "|msbuild " + project + " -getProperty:Configurations",
	}, calls(t, logPath))
}

func TestCLI_Evaluate_WithOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	exe, logPath := fakeDotnet(t, `printf '%s\n' '{"Properties":{"BaseIntermediateOutputPath":"obj\\","BaseOutputPath":"bin\\","PackageOutputPath":"bin\\Release\\","PublishDir":""}}'`)
	project := newProject(t)

	cli := dotnet.NewCLIWithExecutable(log, exe)
	key := domain.ConfigurationKey{Configuration: "Release", TargetFramework: "net8.0"}
	values, err := cli.Evaluate(context.Background(), project, key, domain.OutputPropertyNames)
	require.NoError(t, err)

	assert.Equal(t, `obj\`, values[domain.PropBaseIntermediateOutputPath])
	assert.Equal(t, `bin\`, values[domain.PropBaseOutputPath])
	assert.Equal(t, `bin\Release\`, values[domain.PropPackageOutputPath])
	assert.Empty(t, values[domain.PropPublishDir])

	recorded := calls(t, logPath)
	require.Len(t, recorded, 1)
	assert.Contains(t, recorded[0], "-property:Configuration=Release -property:TargetFramework=net8.0")
}

func TestCLI_Evaluate_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	exe, _ := fakeDotnet(t, "echo 'partial output'\necho 'MSB1009: Project file does not exist.' >&2\nexit 1")
	project := newProject(t)

	cli := dotnet.NewCLIWithExecutable(log, exe)
	_, err := cli.Evaluate(context.Background(), project, domain.ConfigurationKey{}, []string{domain.PropTargetFrameworks})
	require.ErrorIs(t, err, domain.ErrEvaluationFailed)
}

func TestCLI_Clean(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	exe, logPath := fakeDotnet(t, "echo 'Build succeeded.'")
	project := newProject(t)

	cli := dotnet.NewCLIWithExecutable(log, exe)
	key := domain.ConfigurationKey{Configuration: "Debug", TargetFramework: "net9.0"}
	require.NoError(t, cli.Clean(context.Background(), project, key.CleanArgs()))

	assert.Equal(t, []string{
		filepath.Dir(project) + "|clean " + project +
			" --configuration Debug --framework net9.0 " + domain.BuildProjectReferencesOff,
	}, calls(t, logPath))
}

func TestCLI_Clean_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	exe, _ := fakeDotnet(t, "exit 3")
	project := newProject(t)

	err := dotnet.NewCLIWithExecutable(log, exe).Clean(context.Background(), project, nil)
	require.ErrorIs(t, err, domain.ErrCleanFailed)
	assert.ErrorContains(t, err, "code 3")
}

func TestCLI_MissingExecutable(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	exe := filepath.Join(t.TempDir(), "no-such-dotnet")
	err := dotnet.NewCLIWithExecutable(log, exe).Clean(context.Background(), newProject(t), nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrBuildToolStartFailed.Error())
}

func TestCLI_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	exe, _ := fakeDotnet(t, "sleep 5")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := dotnet.NewCLIWithExecutable(log, exe).Clean(ctx, newProject(t), nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewCLI_HostPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	exe, logPath := fakeDotnet(t, "true")
	t.Setenv(dotnet.HostPathEnv, exe)

	require.NoError(t, dotnet.NewCLI(log).Clean(context.Background(), newProject(t), nil))
	assert.Len(t, calls(t, logPath), 1)
}
