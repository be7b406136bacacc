package barchart

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLinearMapper(t *testing.T) {
	tests := []struct {
		name string
		m    LinearMapper
		in   float64
		want float64
	}{
		{"start", LinearMapper{0, 10, 0, 100}, 0, 0},
		{"end", LinearMapper{0, 10, 0, 100}, 10, 100},
		{"midpoint", LinearMapper{0, 10, 0, 100}, 5, 50},
		{"extrapolates", LinearMapper{0, 10, 0, 100}, 12, 120},
		{"inverted pixels", LinearMapper{0, 10, 100, 0}, 2, 80},
		{"offset ranges", LinearMapper{-5, 5, 10, 30}, 0, 20},
		{"zero data span", LinearMapper{3, 3, 10, 90}, 3, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Map(tt.in); got != tt.want {
				t.Errorf("Map(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMapperFunc(t *testing.T) {
	m := MapperFunc(func(v float64) float64 { return v + 1 })
	if got := m.Map(2); got != 3 {
		t.Errorf("Map(2) = %v, want 3", got)
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	// An out-of-range attribute warns through the configured logger.
	NumberIn(Fixed(5.0), 0, 0, 1, 0.5)
	if !strings.Contains(buf.String(), "out of range") {
		t.Errorf("log output = %q, want an out-of-range warning", buf.String())
	}

	// Resetting to nil silences it again.
	SetLogger(nil)
	buf.Reset()
	NumberIn(Fixed(5.0), 0, 0, 1, 0.5)
	if buf.Len() != 0 {
		t.Errorf("log output after reset = %q, want none", buf.String())
	}
}
