package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gvsoc/gvtest/packages/core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestPathsJSON(t *testing.T) {
	root, tests := project(t)

	stdout, _, err := execute(t, "paths", tests, "--output", "json", "--no-color")
	require.NoError(t, err)

	assert.Equal(t, tests, gjson.Get(stdout, "startDir").String())
	files := gjson.Get(stdout, "configFiles").Array()
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(root, "gvtest.yaml"), files[0].String())
	assert.Equal(t, filepath.Join(tests, "gvtest.yaml"), files[1].String())

	paths := gjson.Get(stdout, "pythonPaths.#.path").Array()
	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(root, "lib"), paths[0].String())
	assert.Equal(t, filepath.Join(root, "shared"), paths[1].String())
	assert.Equal(t, filepath.Join(tests, "tools"), paths[2].String())
	assert.False(t, gjson.Get(stdout, "pythonPaths.1.exists").Bool())
}

func TestPathsPlain(t *testing.T) {
	root, tests := project(t)

	stdout, _, err := execute(t, "paths", tests, "-o", "plain")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		filepath.Join(root, "lib"),
		filepath.Join(root, "shared"),
		filepath.Join(tests, "tools"),
	}, "\n")+"\n", stdout)
}

func TestPathsConsoleMarksMissing(t *testing.T) {
	root, tests := project(t)

	stdout, _, err := execute(t, "paths", tests, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(root, "shared")+" ⚠ missing")
}

func TestPathsWarnsOnMissingDirectory(t *testing.T) {
	_, tests := project(t)

	_, stderr, err := execute(t, "paths", tests, "-o", "plain", "--log-format", "json")
	require.NoError(t, err)

	var found bool
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		if gjson.Get(line, "msg").String() == "path does not exist" {
			found = true
			assert.Equal(t, "WARN", gjson.Get(line, "level").String())
		}
	}
	assert.True(t, found, "expected a missing-path warning, got %q", stderr)
}

func TestPathsDebugLogging(t *testing.T) {
	_, tests := project(t)
	t.Setenv("GVTEST_LOG_LEVEL", "debug")
	t.Setenv("GVTEST_LOG_FORMAT", "json")

	_, stderr, err := execute(t, "paths", tests, "-o", "plain")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"using config file"`)
}

func TestPathsErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode int
		wantIs   error
	}{
		{"invalid yaml", "python_paths: [a\n", ExitParseError, config.ErrParse},
		{"not a mapping", "- a\n- b\n", ExitConfigError, config.ErrFormat},
		{"not a list", "python_paths: lib\n", ExitConfigError, config.ErrValidation},
		{"date entry", "python_paths: [2024-01-15]\n", ExitConfigError, config.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := filepath.EvalSymlinks(t.TempDir())
			require.NoError(t, err)
			writeConfig(t, root, tt.content)

			stdout, stderr, err := execute(t, "paths", root, "-o", "plain")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantIs)
			assert.Equal(t, tt.wantCode, exitCode(err))
			assert.Empty(t, stdout)
			// The error is printed once, by the caller of Execute.
			assert.Empty(t, stderr)
		})
	}
}

func TestPathsUnknownOutput(t *testing.T) {
	_, _, err := execute(t, "paths", t.TempDir(), "-o", "yaml")
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, exitCode(err))
}

func TestDiscoverRootFirst(t *testing.T) {
	root, tests := project(t)

	stdout, _, err := execute(t, "discover", tests, "-o", "plain")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "gvtest.yaml")+"\n"+filepath.Join(tests, "gvtest.yaml")+"\n", stdout)
}

func TestDiscoverDoesNotLoad(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	writeConfig(t, root, "python_paths: [unterminated\n")

	stdout, _, err := execute(t, "discover", root, "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "gvtest.yaml"), gjson.Get(stdout, "configFiles.0").String())
}

func TestConfigNameFromEnvironment(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(root, "suite.yaml"), []byte("python_paths: [.]\n"), 0o644))
	t.Setenv("GVTEST_CONFIG_NAME", "suite.yaml")

	stdout, _, err := execute(t, "paths", root, "-o", "plain")
	require.NoError(t, err)
	assert.Equal(t, root+"\n", stdout)
}

func TestValidateReportsEveryFile(t *testing.T) {
	root, tests := project(t)
	writeConfig(t, root, "python_paths: lib\n")
	writeConfig(t, tests, "python_paths:\n  - tools\n  - 3\n")

	stdout, _, err := execute(t, "validate", tests, "-o", "json")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrValidation)
	assert.Equal(t, ExitConfigError, exitCode(err))
	assert.Contains(t, err.Error(), "2 of 2 config files invalid")

	assert.False(t, gjson.Get(stdout, "valid").Bool())
	assert.Equal(t, int64(2), gjson.Get(stdout, "files.#").Int())
	assert.Equal(t, "ValidationError", gjson.Get(stdout, "files.0.kind").String())
	assert.Contains(t, gjson.Get(stdout, "files.1.error").String(), "index 1")
}

func TestValidateAllValid(t *testing.T) {
	_, tests := project(t)

	stdout, _, err := execute(t, "validate", tests, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, stdout, "2 file(s), 0 invalid")
}

func TestValidateJUnit(t *testing.T) {
	_, tests := project(t)
	writeConfig(t, tests, "[not, a, mapping]\n")

	stdout, _, err := execute(t, "validate", tests, "-o", "junit")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrFormat)
	assert.Contains(t, stdout, `tests="2" failures="1" errors="0"`)
	assert.Contains(t, stdout, `type="FormatError"`)
}

func TestValidateTAP(t *testing.T) {
	_, tests := project(t)

	stdout, _, err := execute(t, "validate", tests, "-o", "tap")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "TAP version 13\n1..2\n"))
}

func TestEnvShell(t *testing.T) {
	root, tests := project(t)
	t.Setenv("PYTHONPATH", "/opt/site")
	sep := string(os.PathListSeparator)

	stdout, stderr, err := execute(t, "env", tests)
	require.NoError(t, err)

	want := "/opt/site" + sep + filepath.Join(root, "lib") + sep + filepath.Join(root, "shared") + sep + filepath.Join(tests, "tools")
	assert.Equal(t, "export PYTHONPATH='"+want+"'\n", stdout)
	assert.Contains(t, stderr, "added 3 path(s) to PYTHONPATH")
}

func TestEnvSkipsEntriesAlreadyPresent(t *testing.T) {
	root, _ := project(t)
	t.Setenv("PYTHONPATH", filepath.Join(root, "lib"))

	stdout, stderr, err := execute(t, "env", root, "--shell", "fish")
	require.NoError(t, err)
	assert.Equal(t, "set -gx PYTHONPATH '"+filepath.Join(root, "lib")+"'\n", stdout)
	assert.Contains(t, stderr, "added 0 path(s)")
}

func TestEnvUnknownShell(t *testing.T) {
	_, _, err := execute(t, "env", t.TempDir(), "--shell", "csh")
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, exitCode(err))
}

func TestShellQuoting(t *testing.T) {
	assert.Equal(t, `'a'\''b'`, shQuote("a'b"))
	assert.Equal(t, `'a\'b\\c'`, fishQuote(`a'b\c`))
}

func TestExecPassesPythonPath(t *testing.T) {
	root, _ := project(t)
	t.Setenv("PYTHONPATH", "")

	stdout, _, err := execute(t, "exec", "--dir", root, "--", "sh", "-c", `printf %s "$PYTHONPATH"`)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "lib"), stdout)
}

func TestExecPropagatesExitStatus(t *testing.T) {
	root, _ := project(t)

	_, stderr, err := execute(t, "exec", "-C", root, "sh", "-c", "exit 7")
	require.Error(t, err)
	assert.Equal(t, 7, exitCode(err))
	assert.Empty(t, stderr)

	var buf strings.Builder
	assert.Equal(t, 7, reportError(&buf, err))
	assert.Empty(t, buf.String())
}

func TestExecStopsOnInvalidConfig(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	writeConfig(t, root, "python_paths: {a: b}\n")
	marker := filepath.Join(root, "ran")

	_, _, err = execute(t, "exec", "--dir", root, "--", "touch", marker)
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, exitCode(err))
	assert.NoFileExists(t, marker)
}

func TestInit(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "lib"), 0o755))

	stdout, _, err := execute(t, "init", "--path", dir, "--python-path", "lib", "--python-path", "../common")
	require.NoError(t, err)
	target := filepath.Join(dir, "gvtest.yaml")
	assert.Equal(t, "Created "+target+"\n", stdout)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Directories added to the Python module search path")

	paths, err := config.GetPythonPathsForDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "lib"), filepath.Join(filepath.Dir(dir), "common")}, paths)
}

func TestInitRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "python_paths: [keep]\n")

	_, _, err := execute(t, "init", "--path", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use --force")

	_, _, err = execute(t, "init", "--path", dir, "--force")
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "gvtest.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "python_paths: []")
}

func TestInitFlagsDoNotLeakBetweenRuns(t *testing.T) {
	first := t.TempDir()
	_, _, err := execute(t, "init", "--path", first, "--python-path", "x")
	require.NoError(t, err)

	second := t.TempDir()
	_, _, err = execute(t, "init", "--path", second)
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(second, "gvtest.yaml"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "- x")
}

func TestStarterConfigIsValid(t *testing.T) {
	data, err := starterConfig([]string{"lib", "../shared"})
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "gvtest.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loader, err := config.NewLoader(dir)
	require.NoError(t, err)
	cfg, err := loader.Load(config.ConfigFile{Path: path})
	require.NoError(t, err)
	paths, err := cfg.PythonPaths()
	require.NoError(t, err)
	assert.Equal(t, []string{"lib", "../shared"}, paths)
}

func TestVersion(t *testing.T) {
	version, buildTime = "1.2.3", "2026-10-01"
	t.Cleanup(func() { version, buildTime = "dev", "unknown" })

	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gvtest version 1.2.3\nBuilt: 2026-10-01\n", stdout)
}

func TestCompletion(t *testing.T) {
	markers := map[string]string{
		"bash":       "__start_gvtest",
		"zsh":        "#compdef gvtest",
		"fish":       "complete -c gvtest",
		"powershell": "Register-ArgumentCompleter",
	}
	require.Equal(t, []string{"bash", "fish", "powershell", "zsh"}, completionShells())

	for shell, marker := range markers {
		t.Run(shell, func(t *testing.T) {
			stdout, _, err := execute(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, stdout, marker)
		})
	}
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	_, _, err := execute(t, "completion", "tcsh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid argument")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitFailure},
		{"load", &config.LoadError{File: "f", Err: os.ErrPermission}, ExitConfigError},
		{"parse", &config.ParseError{File: "f", Err: errors.New("bad")}, ExitParseError},
		{"format", &config.FormatError{File: "f", Got: "list"}, ExitConfigError},
		{"validation", &config.ValidationError{File: "f", Key: "python_paths", Index: -1}, ExitConfigError},
		{"wrapped validation", errors.Join(errors.New("ctx"), &config.ValidationError{File: "f", Index: 0}), ExitConfigError},
		{"usage", usageErrorf("bad flag"), ExitUsageError},
		{"child", &childExitError{code: 42}, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestReportErrorPrintsMessage(t *testing.T) {
	var buf strings.Builder
	code := reportError(&buf, usageErrorf("unknown shell %q", "csh"))
	assert.Equal(t, ExitUsageError, code)
	assert.Equal(t, "Error: unknown shell \"csh\"\n", buf.String())
}
