package appconfig_test

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/agbru/rsa4096/internal/appconfig"
	"github.com/agbru/rsa4096/internal/apperrors"
)

func TestParseConfigSubcommandAndFlags(t *testing.T) {
	cfg, err := appconfig.ParseConfig("rsa4096",
		[]string{"manual", "-n", "143", "-exp", "7", "-m", "42", "-algo", "montgomery", "-v"},
		io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Subcommand != "manual" {
		t.Errorf("Subcommand = %q", cfg.Subcommand)
	}
	if cfg.ModulusDecimal != "143" || cfg.ExponentDecimal != "7" || cfg.MessageDecimal != "42" {
		t.Errorf("operands = %q %q %q", cfg.ModulusDecimal, cfg.ExponentDecimal, cfg.MessageDecimal)
	}
	if cfg.Algo != "montgomery" || !cfg.Verbose {
		t.Errorf("Algo=%q Verbose=%v", cfg.Algo, cfg.Verbose)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := appconfig.ParseConfig("rsa4096", []string{"verify"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Algo != "auto" || cfg.LogFormat != "console" {
		t.Errorf("defaults: Algo=%q LogFormat=%q", cfg.Algo, cfg.LogFormat)
	}
}

func TestParseConfigRejectsUnknownSubcommand(t *testing.T) {
	_, err := appconfig.ParseConfig("rsa4096", []string{"frobnicate"}, io.Discard)
	if !errors.Is(err, apperrors.ConfigErrorKind) {
		t.Errorf("unknown subcommand error = %v, want ConfigError", err)
	}
	_, err = appconfig.ParseConfig("rsa4096", nil, io.Discard)
	if !errors.Is(err, apperrors.ConfigErrorKind) {
		t.Errorf("missing subcommand error = %v, want ConfigError", err)
	}
}

func TestParseConfigValidation(t *testing.T) {
	_, err := appconfig.ParseConfig("rsa4096", []string{"test", "-algo", "quantum"}, io.Discard)
	if !errors.Is(err, apperrors.ConfigErrorKind) {
		t.Errorf("bad algo error = %v, want ConfigError", err)
	}
	_, err = appconfig.ParseConfig("rsa4096", []string{"test", "-log-format", "xml"}, io.Discard)
	if !errors.Is(err, apperrors.ConfigErrorKind) {
		t.Errorf("bad log format error = %v, want ConfigError", err)
	}
	_, err = appconfig.ParseConfig("rsa4096", []string{"test", "-v", "-q"}, io.Discard)
	if !errors.Is(err, apperrors.ConfigErrorKind) {
		t.Errorf("verbose+quiet error = %v, want ConfigError", err)
	}
}

func TestParseConfigHelp(t *testing.T) {
	_, err := appconfig.ParseConfig("rsa4096", []string{"test", "-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h error = %v, want flag.ErrHelp", err)
	}
}

func TestEnvOverlayAndFlagPriority(t *testing.T) {
	t.Setenv("RSA4096_ALGO", "schoolbook")
	t.Setenv("RSA4096_QUIET", "true")

	cfg, err := appconfig.ParseConfig("rsa4096", []string{"benchmark"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Algo != "schoolbook" || !cfg.Quiet {
		t.Errorf("env overlay not applied: Algo=%q Quiet=%v", cfg.Algo, cfg.Quiet)
	}

	// A flag overrides the environment.
	cfg, err = appconfig.ParseConfig("rsa4096", []string{"benchmark", "-algo", "montgomery"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Algo != "montgomery" {
		t.Errorf("flag did not override env: Algo=%q", cfg.Algo)
	}
}
