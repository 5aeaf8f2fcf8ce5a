package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestInitWriter(t *testing.T) {
	defer zap.ReplaceGlobals(zap.NewNop())

	var buf bytes.Buffer
	if err := InitWriter("info", &buf); err != nil {
		t.Fatal(err)
	}

	Logger().Debug("hidden")
	Logger().Infow("extracted", "files", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message logged at info level:\n%s", out)
	}
	if !strings.Contains(out, "extracted") || !strings.Contains(out, `"files": 3`) {
		t.Errorf("info message missing:\n%s", out)
	}
}

func TestInitWriter_InvalidLevel(t *testing.T) {
	if err := InitWriter("loud", &bytes.Buffer{}); err == nil {
		t.Error("InitWriter() with an unknown level should fail")
	}
}
