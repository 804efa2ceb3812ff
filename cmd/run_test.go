package cmd

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-cdhit/pkg/cdhit"
)

// fakeCdHit is installed as every CD-HIT program. It records its argv one
// token per line next to itself and exits with $FAKE_CDHIT_EXIT.
const fakeCdHit = `#!/bin/sh
printf '%s\n' "$@" > "$(dirname "$0")/args.txt"
exit ${FAKE_CDHIT_EXIT:-0}
`

// setupFakeInstall writes fake CD-HIT programs and a static-install config.
func setupFakeInstall(t *testing.T, extraConfig string) (binDir, configPath string) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	dir := t.TempDir()
	binDir = filepath.Join(dir, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0755))
	for _, c := range cdhit.Commands() {
		require.NoError(t, os.WriteFile(filepath.Join(binDir, string(c)), []byte(fakeCdHit), 0755))
	}

	configPath = filepath.Join(dir, "cdhit.yml")
	content := "install:\n  method: static\n  path: " + filepath.Join(binDir, "cd-hit") + "\n" + extraConfig
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	return binDir, configPath
}

func executeRoot(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append(args, "--no-color"))
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func recordedArgs(t *testing.T, binDir string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(binDir, "args.txt"))
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestParseOptFlags(t *testing.T) {
	tests := []struct {
		name     string
		raw      []string
		expected []string
		wantErr  bool
	}{
		{"none", nil, nil, false},
		{"values in order", []string{"-c=0.9", "-n=5"}, []string{"-c", "0.9", "-n", "5"}, false},
		{"key only", []string{"-g"}, []string{"-g"}, false},
		{"empty value", []string{"-T="}, []string{"-T", ""}, false},
		{"value containing equals", []string{"--log=a=b"}, []string{"--log", "a=b"}, false},
		{"repeat keeps position", []string{"-c=0.9", "-n=5", "-c=0.8"}, []string{"-c", "0.8", "-n", "5"}, false},
		{"missing flag", []string{"=0.9"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseOptFlags(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, opts.Args())
		})
	}
}

func TestRunCmd_ExecutesProgram(t *testing.T) {
	binDir, configPath := setupFakeInstall(t, "defaults:\n  cd-hit-est:\n    -c: 0.95\n    -n: 10\n    -g: ~\n")

	_, stderr, err := executeRoot(t, "run", "cd-hit-est",
		"--config", configPath,
		"-i", "in.fa", "-o", "out.fa",
		"--opt=-n=8", "--opt=-d=0",
		"--option-string", `--log "run one"`)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"-i", "in.fa", "-o", "out.fa",
		"-c", "0.95", "-n", "8", "-g", "-d", "0",
		"--log", "run one",
	}, recordedArgs(t, binDir))
	assert.Contains(t, stderr, "cd-hit-est wrote out.fa")
}

func TestRunCmd_NonZeroExit(t *testing.T) {
	_, configPath := setupFakeInstall(t, "")
	t.Setenv("FAKE_CDHIT_EXIT", "1")

	_, _, err := executeRoot(t, "run", "cd-hit", "--config", configPath, "-i", "in.fa", "-o", "out.fa")
	require.Error(t, err)

	var runErr *cdhit.RunError
	require.True(t, errors.As(err, &runErr))
	assert.Equal(t, 1, runErr.ExitCode)
}

func TestRunCmd_DryRun(t *testing.T) {
	binDir, configPath := setupFakeInstall(t, "")

	stdout, _, err := executeRoot(t, "run", "cd-hit-2d", "--config", configPath,
		"-i", "db.fa", "-o", "out.fa", "--opt=-i2=query.fa", "--option-string", `--log "run one"`, "--dry-run")
	require.NoError(t, err)

	expected := filepath.Join(binDir, "cd-hit-2d") + " -i db.fa -o out.fa -i2 query.fa --log 'run one'\n"
	assert.Equal(t, expected, stdout)
	_, statErr := os.Stat(filepath.Join(binDir, "args.txt"))
	assert.True(t, os.IsNotExist(statErr), "dry run must not spawn the program")
}

func TestRunCmd_UnknownCommand(t *testing.T) {
	binDir, configPath := setupFakeInstall(t, "")

	_, _, err := executeRoot(t, "run", "cd-hit-para", "--config", configPath, "-i", "in.fa", "-o", "out.fa")
	require.Error(t, err)
	assert.ErrorIs(t, err, cdhit.ErrUnknownCommand)
	_, statErr := os.Stat(filepath.Join(binDir, "args.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestPathCmd(t *testing.T) {
	binDir, configPath := setupFakeInstall(t, "")

	stdout, _, err := executeRoot(t, "path", "cd-hit-est-2d", "--config", configPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(binDir, "cd-hit-est-2d")+"\n", stdout)

	stdout, _, err = executeRoot(t, "path", "--config", configPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, len(cdhit.Commands()))
	assert.Equal(t, "cd-hit\t"+filepath.Join(binDir, "cd-hit"), lines[0])
}

func TestInstallCmd(t *testing.T) {
	binDir, configPath := setupFakeInstall(t, "")

	stdout, _, err := executeRoot(t, "install", "--config", configPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(binDir, "cd-hit")+"\n", stdout)
}

func TestCommandsCmd(t *testing.T) {
	stdout, _, err := executeRoot(t, "commands")
	require.NoError(t, err)
	assert.Equal(t, "cd-hit\ncd-hit-est\ncd-hit-2d\ncd-hit-est-2d\ncd-hit-454\n", stdout)

	stdout, _, err = executeRoot(t, "commands", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"cd-hit-454"`)
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := executeRoot(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"version": "dev"`)
}
