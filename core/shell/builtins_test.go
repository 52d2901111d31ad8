package shell

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/josephlewis42/lsh/core/logger"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves the test into a fresh directory and restores the original
// working directory when the test ends. It returns the fresh directory.
func chdirTemp(t *testing.T) string {
	t.Helper()

	// Created first so it's removed after the original directory is restored.
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	orig, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatal(err)
		}
	})

	require.NoError(t, os.Chdir(dir))
	return dir
}

func getwd(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	wd, err = filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	return wd
}

func TestCd(t *testing.T) {
	start := chdirTemp(t)
	sub := filepath.Join(start, "sub")
	require.NoError(t, os.Mkdir(sub, 0700))
	s := newTestShell("")

	assert.Equal(t, Continue, s.Dispatch([]string{"cd", sub}))
	assert.Equal(t, sub, getwd(t))
	assert.Empty(t, s.stderr.String())

	// Relative paths resolve against the new directory.
	assert.Equal(t, Continue, s.Dispatch([]string{"cd", ".."}))
	assert.Equal(t, start, getwd(t))
	assert.Empty(t, s.stderr.String())
	assert.Empty(t, s.spawner.spawned)
}

func TestCdErrors(t *testing.T) {
	cases := map[string]struct {
		args     func(t *testing.T, dir string) []string
		contains string
	}{
		"does not exist": {
			args: func(t *testing.T, dir string) []string {
				return []string{filepath.Join(dir, "missing")}
			},
			contains: "no such file or directory",
		},
		"not a directory": {
			args: func(t *testing.T, dir string) []string {
				file := filepath.Join(dir, "file")
				require.NoError(t, os.WriteFile(file, nil, 0600))
				return []string{file}
			},
			contains: "not a directory",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			dir := chdirTemp(t)
			s := newTestShell("")
			args := tc.args(t, dir)

			assert.Equal(t, Continue, s.Dispatch(append([]string{"cd"}, args...)))

			assert.Equal(t, dir, getwd(t))
			assert.Regexp(t, `^lsh: chdir .*\n$`, s.stderr.String())
			assert.Contains(t, s.stderr.String(), tc.contains)
			assert.Empty(t, s.stdout.String())
		})
	}
}

func TestCdTooManyArguments(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "a"), 0700))
	s := newTestShell("")

	assert.Equal(t, Continue, s.Dispatch([]string{"cd", "a", "b"}))

	assert.Equal(t, dir, getwd(t))
	assert.Equal(t, "lsh: expected argument to \"cd\"\n", s.stderr.String())
	assert.Equal(t, eventLog{
		&logger.RunCommand{Command: []string{"cd", "a", "b"}, Builtin: true},
		&logger.InvalidInvocation{Command: []string{"cd", "a", "b"}, Error: `expected argument to "cd"`},
	}, *s.events)
}

// With no arguments cd changes to the home directory rather than failing,
// like most shells.
func TestCdWithoutArgumentsChangesToHomeDirectory(t *testing.T) {
	t.Run("configured home", func(t *testing.T) {
		dir := chdirTemp(t)
		home := filepath.Join(dir, "home")
		require.NoError(t, os.Mkdir(home, 0700))
		s := newTestShell("")
		s.Home = home

		assert.Equal(t, Continue, s.Dispatch([]string{"cd"}))
		assert.Equal(t, home, getwd(t))
		assert.Empty(t, s.stderr.String())
	})

	t.Run("$HOME", func(t *testing.T) {
		if runtime.GOOS == "windows" || runtime.GOOS == "plan9" {
			t.Skip("home directory isn't read from $HOME")
		}
		dir := chdirTemp(t)
		home := filepath.Join(dir, "user")
		require.NoError(t, os.Mkdir(home, 0700))
		t.Setenv("HOME", home)
		s := newTestShell("")

		assert.Equal(t, Continue, s.Dispatch([]string{"cd"}))
		assert.Equal(t, home, getwd(t))
		assert.Empty(t, s.stderr.String())
	})

	t.Run("no home", func(t *testing.T) {
		if runtime.GOOS == "windows" || runtime.GOOS == "plan9" {
			t.Skip("home directory isn't read from $HOME")
		}
		dir := chdirTemp(t)
		t.Setenv("HOME", "")
		s := newTestShell("")

		assert.Equal(t, Continue, s.Dispatch([]string{"cd"}))
		assert.Equal(t, dir, getwd(t))
		assert.Regexp(t, `^lsh: .+\n$`, s.stderr.String())
	})
}

func TestHelp(t *testing.T) {
	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)

	for _, tokens := range [][]string{
		{"help"},
		{"help", "cd"},
		{"help", "-h", "--all", "exit"},
	} {
		s := newTestShell("")

		assert.Equal(t, Continue, s.Dispatch(tokens))
		assert.Empty(t, s.stderr.String())
		assert.Empty(t, s.spawner.spawned)
		g.Assert(t, "help", s.stdout.Bytes())
	}
}

func TestExit(t *testing.T) {
	for _, tokens := range [][]string{
		{"exit"},
		{"exit", "1"},
		{"exit", "cd", "help"},
	} {
		s := newTestShell("")

		assert.Equal(t, Stop, s.Dispatch(tokens))
		assert.Empty(t, s.stdout.String())
		assert.Empty(t, s.stderr.String())
		assert.Empty(t, s.spawner.spawned)
	}
}

func TestDefaultBuiltins(t *testing.T) {
	builtins := DefaultBuiltins()

	assert.Equal(t, []string{"cd", "exit", "help"}, builtins.Names())
	for name, builtin := range builtins {
		assert.NotNil(t, builtin, name)
	}
}
