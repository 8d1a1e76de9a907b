package ui

import (
	"testing"

	"github.com/ndri/hallbook/internal/config"
)

func TestCommandsRegistered(t *testing.T) {
	app := NewApp(nil, config.Default())

	want := map[string]bool{
		"version": false,
		"config":  false,
		"book":    false,
		"cancel":  false,
		"list":    false,
		"slots":   false,
		"report":  false,
	}
	for _, cmd := range app.root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{30, "30m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h30m"},
		{120, "2h"},
		{150, "2h30m"},
		{0, "0m"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
