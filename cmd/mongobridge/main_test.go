package main

import (
	"testing"

	"github.com/erauner12/mongobridge/internal/config"
)

func TestApplyFlagOverrides(t *testing.T) {
	tests := []struct {
		name      string
		cfgLevel  string
		cfgDebug  bool
		flagLevel string
		flagDebug bool
		setFlags  map[string]bool
		wantLevel string
		wantDebug bool
	}{
		{
			name:      "no flags keep config values",
			cfgLevel:  "warn",
			flagLevel: "info",
			setFlags:  map[string]bool{},
			wantLevel: "warn",
		},
		{
			name:      "explicit -log-level info overrides config debug",
			cfgLevel:  "debug",
			flagLevel: "info",
			setFlags:  map[string]bool{"log-level": true},
			wantLevel: "info",
		},
		{
			name:      "-debug raises level when log-level not set",
			cfgLevel:  "info",
			flagLevel: "info",
			flagDebug: true,
			setFlags:  map[string]bool{"debug": true},
			wantLevel: "debug",
			wantDebug: true,
		},
		{
			name:      "-debug with explicit -log-level keeps the explicit level",
			cfgLevel:  "info",
			flagLevel: "warn",
			flagDebug: true,
			setFlags:  map[string]bool{"debug": true, "log-level": true},
			wantLevel: "warn",
			wantDebug: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			*logLevel = tt.flagLevel
			*debug = tt.flagDebug
			*httpAddr = ""
			defer func() {
				*logLevel = "info"
				*debug = false
			}()

			cfg := config.DefaultConfig()
			cfg.LogLevel = tt.cfgLevel
			cfg.Debug = tt.cfgDebug

			applyFlagOverrides(cfg, tt.setFlags)

			if cfg.LogLevel != tt.wantLevel {
				t.Errorf("expected log level %q, got %q", tt.wantLevel, cfg.LogLevel)
			}
			if cfg.Debug != tt.wantDebug {
				t.Errorf("expected debug %v, got %v", tt.wantDebug, cfg.Debug)
			}
		})
	}
}
