// SPDX-License-Identifier: MIT
package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	prevLevel := GetLevel()
	SetOutput(buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(prevLevel)
	})
	return buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		ok       bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{"Warning", LevelWarn, true},
		{" error ", LevelError, true},
		{"fatal", LevelFatal, true},
		{"verbose", LevelInfo, false},
		{"", LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, ok := ParseLevel(tt.input)
			if level != tt.expected || ok != tt.ok {
				t.Errorf("ParseLevel(%q) = (%s, %v), expected (%s, %v)", tt.input, level, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := captureOutput(t)
	SetLevel(LevelWarn)

	Debugf("debug %d", 1)
	Infof("info %d", 2)
	Warnf("warn %d", 3)
	Error("error ", 4)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Errorf("messages below WARN were logged: %q", out)
	}
	if !strings.Contains(out, "[WARN ] warn 3") {
		t.Errorf("expected warn message in output, got %q", out)
	}
	if !strings.Contains(out, "[ERROR] error 4") {
		t.Errorf("expected error message in output, got %q", out)
	}
}

func TestConfigure(t *testing.T) {
	captureOutput(t)
	SetLevel(LevelInfo)

	if err := Configure("debug"); err != nil {
		t.Fatalf("Configure(debug) unexpected error: %v", err)
	}
	if GetLevel() != LevelDebug {
		t.Errorf("GetLevel() = %s, expected DEBUG", GetLevel())
	}

	if err := Configure("loud"); err == nil {
		t.Error("Configure(loud) expected error, got nil")
	}
	if GetLevel() != LevelDebug {
		t.Errorf("unknown level changed the level to %s", GetLevel())
	}
}
