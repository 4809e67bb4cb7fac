package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/vk-validation/scenario"
)

const passingScript = `name: passing
steps:
  - op: createDevice
    as: device
    args: {queues: [{family: 0, count: 1}]}
  - op: getDeviceQueue
    args: {device: $device, family: 0, index: 1}
    expect: blocked
    reports: [INVALID_USAGE]
`

const failingScript = `name: failing
steps:
  - op: createDevice
    args: {queues: [{family: 0, count: 1}]}
    expect: blocked
`

func writeScript(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootHasSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"run", "enums", "format", "codes"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not found: %v", name, err)
		}
	}
}

func TestRunPasses(t *testing.T) {
	path := writeScript(t, "passing.yaml", passingScript)
	out, err := execute(t, "run", "--log-level", "error", path)
	if err != nil {
		t.Fatalf("run: %v\n%s", err, out)
	}
	if !strings.Contains(out, "PASS passing (2 steps)") {
		t.Errorf("output = %q", out)
	}
}

func TestRunVerbosePrintsReports(t *testing.T) {
	path := writeScript(t, "passing.yaml", passingScript)
	out, err := execute(t, "run", "-v", "--log-level", "error", path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "INVALID_USAGE") {
		t.Errorf("verbose output lacks the report: %q", out)
	}
}

func TestRunFails(t *testing.T) {
	path := writeScript(t, "failing.yaml", failingScript)
	out, err := execute(t, "run", "--log-level", "error", path)
	if err == nil {
		t.Fatal("expected an error for a failing script")
	}
	if !strings.Contains(err.Error(), "1 step(s) failed") {
		t.Errorf("error = %v", err)
	}
	if !strings.Contains(out, "FAIL failing (1 of 1 steps failed)") {
		t.Errorf("output = %q", out)
	}
}

func TestRunRejectsBadLogLevel(t *testing.T) {
	path := writeScript(t, "passing.yaml", passingScript)
	if _, err := execute(t, "run", "--log-level", "shouting", path); err == nil {
		t.Fatal("expected a settings error")
	}
}

func TestRunInteractiveNeedsOneScript(t *testing.T) {
	a := writeScript(t, "a.yaml", passingScript)
	b := writeScript(t, "b.yaml", passingScript)
	_, err := execute(t, "run", "-i", "--log-level", "error", a, b)
	if err == nil || !strings.Contains(err.Error(), "exactly one script") {
		t.Fatalf("err = %v", err)
	}
}

func TestEnums(t *testing.T) {
	out, err := execute(t, "enums")
	if err != nil {
		t.Fatalf("enums: %v", err)
	}
	if !strings.Contains(out, "VkSharingMode") {
		t.Errorf("type list lacks VkSharingMode: %q", out)
	}

	out, err = execute(t, "enums", "SharingMode")
	if err != nil {
		t.Fatalf("enums SharingMode: %v", err)
	}
	if !strings.Contains(out, "VK_SHARING_MODE_CONCURRENT") {
		t.Errorf("members = %q", out)
	}

	if _, err := execute(t, "enums", "VkTeleportMode"); err == nil {
		t.Error("expected an unknown type error")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		typ, value, want string
	}{
		{"VkQueueFlags", "3", "3 VK_QUEUE_GRAPHICS_BIT|VK_QUEUE_COMPUTE_BIT (valid)"},
		{"VkSharingMode", "CONCURRENT", "1 VK_SHARING_MODE_CONCURRENT (valid)"},
		{"VkSharingMode", "7", "(invalid)"},
	}
	for _, tt := range tests {
		out, err := execute(t, "format", tt.typ, tt.value)
		if err != nil {
			t.Errorf("format %s %s: %v", tt.typ, tt.value, err)
			continue
		}
		if !strings.Contains(out, tt.want) {
			t.Errorf("format %s %s = %q, want %q", tt.typ, tt.value, out, tt.want)
		}
	}
}

func TestCodes(t *testing.T) {
	out, err := execute(t, "codes")
	if err != nil {
		t.Fatalf("codes: %v", err)
	}
	for _, want := range []string{"INVALID_USAGE", "REQUIRED_PARAMETER", "UNRECOGNIZED_VALUE"} {
		if !strings.Contains(out, want) {
			t.Errorf("codes lacks %s", want)
		}
	}
}

func TestStepModel(t *testing.T) {
	s, err := scenario.Parse([]byte(passingScript))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	r := scenario.NewRunner(s)
	defer r.Close()

	m := newStepModel(r)
	m.p.color = false
	key := func(k rune) {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{k}})
	}

	key('n')
	if len(m.results) != 1 || !m.results[0].Passed() {
		t.Fatalf("after one step: %+v", m.results)
	}
	if !strings.Contains(m.View(), "ok  ") {
		t.Errorf("view lacks a pass mark:\n%s", m.View())
	}

	key('r')
	if !r.Done() || len(m.results) != 2 {
		t.Fatalf("run all left %d results, done=%v", len(m.results), r.Done())
	}
	if m.selected != 1 {
		t.Errorf("selected = %d, want the last step", m.selected)
	}
	if !strings.Contains(m.reports.View(), "INVALID_USAGE") {
		t.Errorf("report pane lacks the selected step's report:\n%s", m.reports.View())
	}

	key('k')
	if m.selected != 0 {
		t.Errorf("selected = %d after moving up", m.selected)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not produce a quit message")
	}
}
