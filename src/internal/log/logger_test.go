package log

import (
	"bytes"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, f func()) (string, string) {
	t.Helper()

	var out, errOut bytes.Buffer
	oldStdout, oldStderr := stdout, stderr
	oldColored, oldForce, oldVerbose := colored, forceStdErr, verbose
	t.Cleanup(func() {
		stdout, stderr = oldStdout, oldStderr
		colored, forceStdErr, verbose = oldColored, oldForce, oldVerbose
	})

	SetOutput(&out, &errOut)
	SetColored(false)
	f()
	return out.String(), errOut.String()
}

func TestSetVerbose(t *testing.T) {
	originalVerbose := verbose
	defer func() { verbose = originalVerbose }()

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("Expected verbose to be true")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("Expected verbose to be false")
	}
}

func TestDebugf_OnlyWhenVerbose(t *testing.T) {
	out, _ := captureOutput(t, func() {
		SetVerbose(false)
		Debugf("hidden %d", 1)
		SetVerbose(true)
		Debugf("shown %d", 2)
	})

	if strings.Contains(out, "hidden") {
		t.Errorf("Debug message printed without verbose: %q", out)
	}
	if out != "[DBG] shown 2\n" {
		t.Errorf("Unexpected debug output: %q", out)
	}
}

func TestLevelsAndStreams(t *testing.T) {
	out, errOut := captureOutput(t, func() {
		Infof("info")
		Warnf("warn")
		Errorf("error")
	})

	if out != "[INF] info\n[WRN] warn\n" {
		t.Errorf("Unexpected stdout: %q", out)
	}
	if errOut != "[ERR] error\n" {
		t.Errorf("Unexpected stderr: %q", errOut)
	}
}

func TestSetForceStdErr(t *testing.T) {
	out, errOut := captureOutput(t, func() {
		SetForceStdErr(true)
		Infof("written %s", "units")
	})

	if out != "" {
		t.Errorf("Expected empty stdout, got %q", out)
	}
	if errOut != "[INF] written units\n" {
		t.Errorf("Unexpected stderr: %q", errOut)
	}
}

func TestColoredPrefix(t *testing.T) {
	out, _ := captureOutput(t, func() {
		SetColored(true)
		Infof("hello")
	})

	if !strings.HasPrefix(out, logPrefixes[levelInfo]) {
		t.Errorf("Expected colored prefix, got %q", out)
	}
}

func TestFatalf_Exits(t *testing.T) {
	code := -1
	oldExit := exit
	exit = func(c int) { code = c }
	defer func() { exit = oldExit }()

	_, errOut := captureOutput(t, func() {
		Fatalf("fatal %s", "error")
	})

	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if errOut != "[ERR] fatal error\n" {
		t.Errorf("Unexpected stderr: %q", errOut)
	}
}
