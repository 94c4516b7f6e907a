package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/renumber/pkg/buildinfo"
	"github.com/matzehuels/renumber/pkg/errors"
)

const testDoc = `{"sections":[{"questions":[{"id":0.1},{"id":1,"showIf":{"questionId":0.1}}]}]}`

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer

	c := New(&errBuf, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)

	err = root.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestRootRenumbers(t *testing.T) {
	path := writeFile(t, "survey_data.json", testDoc)

	stdout, stderr, err := execute(t, "-f", path)
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}

	if stdout != CompletionMessage+"\n" {
		t.Errorf("stdout = %q, want %q", stdout, CompletionMessage+"\n")
	}
	if !strings.Contains(stderr, "renumbered document") {
		t.Errorf("stderr = %q, want completion log", stderr)
	}

	want := `{
  "sections": [
    {
      "questions": [
        {
          "id": 1
        },
        {
          "id": 2,
          "showIf": {
            "questionId": 1
          }
        }
      ]
    }
  ]
}
`
	if got := readFile(t, path); got != want {
		t.Errorf("document =\n%s\nwant\n%s", got, want)
	}
}

func TestRootDryRun(t *testing.T) {
	path := writeFile(t, "survey_data.json", testDoc)

	stdout, _, err := execute(t, "-f", path, "--dry-run")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}

	if got := readFile(t, path); got != testDoc {
		t.Errorf("dry run wrote the document:\n%s", got)
	}
	if strings.Contains(stdout, CompletionMessage) {
		t.Errorf("dry run printed completion message: %q", stdout)
	}
	for _, want := range []string{"Dry run", "0.1", "→", "2 question ids and 1 references would change"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout = %q, missing %q", stdout, want)
		}
	}
}

func TestRootDryRunNoChanges(t *testing.T) {
	path := writeFile(t, "survey_data.json", `{"sections":[{"questions":[{"id":0}]}]}`)

	stdout, _, err := execute(t, "-f", path, "--dry-run")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(stdout, "No identifiers would change") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRootErrors(t *testing.T) {
	dir := t.TempDir()
	malformed := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(malformed, []byte(`{"sections": [`), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing file", []string{"-f", filepath.Join(dir, "missing.json")}, errors.ErrCodeFileNotFound},
		{"malformed file", []string{"-f", malformed}, errors.ErrCodeInvalidDocument},
		{"not a json path", []string{"-f", filepath.Join(dir, "survey.txt")}, errors.ErrCodeInvalidPath},
		{"missing config", []string{"--config", filepath.Join(dir, "missing.toml")}, errors.ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v (%v)", got, tt.code, err)
			}
			if strings.Contains(stdout, CompletionMessage) {
				t.Errorf("failed run printed completion message")
			}
		})
	}
}

func TestRootRejectsArguments(t *testing.T) {
	if _, _, err := execute(t, "survey.json"); err == nil {
		t.Error("expected error for positional argument")
	}
}

func TestRootConfigFile(t *testing.T) {
	doc := writeFile(t, "survey_data.json", testDoc)
	cfg := writeFile(t, "renumber.toml", "file = \""+filepath.ToSlash(doc)+"\"\ndry_run = true\n")

	stdout, _, err := execute(t, "--config", cfg)
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(stdout, "Dry run") {
		t.Errorf("config dry_run not applied: %q", stdout)
	}
	if got := readFile(t, doc); got != testDoc {
		t.Error("dry run from config wrote the document")
	}

	// Flags override the config file.
	stdout, _, err = execute(t, "--config", cfg, "--dry-run=false")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if stdout != CompletionMessage+"\n" {
		t.Errorf("stdout = %q, want completion message", stdout)
	}
	if got := readFile(t, doc); got == testDoc {
		t.Error("document was not rewritten")
	}
}

func TestMapCommand(t *testing.T) {
	stdout, _, err := execute(t, "map", "2", "2.3", "0", "0.1", `"intro"`)
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}

	want := [][2]string{{"2", "3"}, {"2.3", "3.3"}, {"0", "0"}, {"0.1", "1"}, {`"intro"`, `"intro"`}}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), stdout)
	}
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 || fields[0] != want[i][0] || fields[1] != want[i][1] {
			t.Errorf("line %d = %q, want %s -> %s", i, line, want[i][0], want[i][1])
		}
	}
}

func TestMapCommandInvalid(t *testing.T) {
	_, _, err := execute(t, "map", "abc")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want %v", err, errors.ErrCodeInvalidInput)
	}

	if _, _, err := execute(t, "map"); err == nil {
		t.Error("expected error without arguments")
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		stdout, _, err := execute(t, "completion", shell)
		if err != nil {
			t.Errorf("completion %s error: %v", shell, err)
		}
		if !strings.Contains(stdout, "renumber") {
			t.Errorf("completion %s output does not mention renumber", shell)
		}
	}

	if _, _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("expected error for unsupported shell")
	}
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(stdout, buildinfo.Version) {
		t.Errorf("stdout = %q, want version %q", stdout, buildinfo.Version)
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug logged at info level: %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug not logged after SetLogLevel: %q", buf.String())
	}
}
