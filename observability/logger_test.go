package observability

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in     string
		expect zapcore.Level
	}{
		{"", zap.WarnLevel},
		{"WARN", zap.WarnLevel},
		{"INFO", zap.InfoLevel},
		{"debug", zap.DebugLevel},
		{"  error ", zap.ErrorLevel},
		{"loud", zap.WarnLevel},
	}
	for _, tt := range tests {
		if got := parseLogLevel(tt.in).Level(); got != tt.expect {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.expect)
		}
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("info")
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	if logger == nil {
		t.Fatal("NewLogger() returned nil logger")
	}

	logger.Info("test message")
	_ = logger.Sync()
}
