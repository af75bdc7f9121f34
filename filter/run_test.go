package filter

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/magiconair/properties/assert"
	"github.com/sirupsen/logrus"
)

func silenceStandardLogger(t *testing.T) {
	orig := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	t.Cleanup(func() { logrus.SetOutput(orig) })
}

func captureStandardLogger(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	orig := logrus.StandardLogger().Out
	logrus.SetOutput(buf)
	t.Cleanup(func() { logrus.SetOutput(orig) })
	return buf
}

func TestRunEvenBlock(t *testing.T) {
	out := bytes.Buffer{}
	err := Run(strings.NewReader(`{"monitor_match":{"EVM":{"transaction":{"blockNumber":"0x64"}}}}`), &out)
	if err != nil {
		t.Fatalf("run is err: %v", err)
	}
	assert.Equal(t, out.String(), "true\n")
}

func TestRunOddBlock(t *testing.T) {
	out := bytes.Buffer{}
	err := Run(strings.NewReader(`{"monitor_match":{"EVM":{"transaction":{"blockNumber":"0x65"}}}}`), &out)
	if err != nil {
		t.Fatalf("run is err: %v", err)
	}
	assert.Equal(t, out.String(), "false\n")
}

func TestRunFailuresStillPrintFalse(t *testing.T) {
	silenceStandardLogger(t)
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty input", in: ""},
		{name: "broken json", in: "{"},
		{name: "missing monitor match", in: `{"args":[]}`},
		{name: "missing block number", in: `{"monitor_match":{"EVM":{"transaction":{}}}}`},
		{name: "non hex block number", in: `{"monitor_match":{"EVM":{"transaction":{"blockNumber":"zzzz"}}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := bytes.Buffer{}
			err := Run(strings.NewReader(tt.in), &out)
			if err == nil {
				t.Fatal("expected an error")
			}
			assert.Equal(t, out.String(), "false\n")
		})
	}
}

func TestRunReportsTaxonomy(t *testing.T) {
	silenceStandardLogger(t)
	out := bytes.Buffer{}
	err := Run(strings.NewReader(`{"monitor_match":{"EVM":{"transaction":{"blockNumber":"zzzz"}}}}`), &out)
	target := &ConversionError{}
	if !errors.As(err, &target) {
		t.Fatalf("expected a conversion error, got %v", err)
	}
}

func TestRunDecisionIsSingleLine(t *testing.T) {
	silenceStandardLogger(t)
	out := bytes.Buffer{}
	err := Run(strings.NewReader(`{"monitor_match":{"EVM":{"transaction":{"blockNumber":"0x64"}}},"args":["--verbose"]}`), &out)
	if err != nil {
		t.Fatalf("run is err: %v", err)
	}
	assert.Equal(t, out.String(), "true\n")
	assert.Equal(t, strings.Count(out.String(), "\n"), 1)
}

func TestRunVerboseDiagnosticsOnLogStream(t *testing.T) {
	buf := captureStandardLogger(t)

	out := bytes.Buffer{}
	err := Run(strings.NewReader(`{"monitor_match":{"EVM":{"transaction":{"blockNumber":"0x64"}}},"args":["--verbose"]}`), &out)
	if err != nil {
		t.Fatalf("run is err: %v", err)
	}
	assert.Equal(t, out.String(), "true\n")
	if !strings.Contains(buf.String(), "decimal value: 100") {
		t.Fatalf("expected verbose diagnostics in the log stream, got %q", buf.String())
	}
}

func TestRunIdempotent(t *testing.T) {
	doc := `{"monitor_match":{"EVM":{"transaction":{"blockNumber":"0x1e240"}}}}`
	first := bytes.Buffer{}
	second := bytes.Buffer{}
	if err := Run(strings.NewReader(doc), &first); err != nil {
		t.Fatalf("first run is err: %v", err)
	}
	if err := Run(strings.NewReader(doc), &second); err != nil {
		t.Fatalf("second run is err: %v", err)
	}
	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, first.String(), "true\n")
}
