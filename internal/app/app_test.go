package app_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/agbru/rsa4096/internal/app"
	"github.com/agbru/rsa4096/internal/apperrors"
)

func run(t *testing.T, args ...string) (int, string) {
	t.Helper()
	application, err := app.New(append([]string{"rsa4096"}, args...), io.Discard)
	if err != nil {
		t.Fatalf("New(%v): %v", args, err)
	}
	var out bytes.Buffer
	code := application.Run(context.Background(), &out)
	return code, out.String()
}

func TestNewRejectsUnknownSubcommand(t *testing.T) {
	if _, err := app.New([]string{"rsa4096", "frobnicate"}, io.Discard); err == nil {
		t.Fatal("expected a config error")
	}
}

func TestVersionFlag(t *testing.T) {
	if !app.HasVersionFlag([]string{"--version"}) || app.HasVersionFlag([]string{"verify"}) {
		t.Error("HasVersionFlag misclassified its input")
	}
	var buf bytes.Buffer
	app.PrintVersion(&buf)
	if !strings.Contains(buf.String(), app.Version) {
		t.Errorf("version banner = %q", buf.String())
	}
}

func TestVerifySubcommand(t *testing.T) {
	code, out := run(t, "verify")
	if code != apperrors.ExitSuccess {
		t.Fatalf("verify exit = %d\n%s", code, out)
	}
	if !strings.Contains(out, "checks passed") {
		t.Errorf("verify output:\n%s", out)
	}
}

func TestTestSubcommand(t *testing.T) {
	code, out := run(t, "test")
	if code != apperrors.ExitSuccess {
		t.Fatalf("test exit = %d\n%s", code, out)
	}
}

func TestBinarySubcommand(t *testing.T) {
	code, out := run(t, "binary")
	if code != apperrors.ExitSuccess {
		t.Fatalf("binary exit = %d\n%s", code, out)
	}
}

func TestRoundtripSubcommand(t *testing.T) {
	code, out := run(t, "roundtrip")
	if code != apperrors.ExitSuccess {
		t.Fatalf("roundtrip exit = %d\n%s", code, out)
	}
}

func TestBoundarySubcommand(t *testing.T) {
	code, out := run(t, "boundary")
	if code != apperrors.ExitSuccess {
		t.Fatalf("boundary exit = %d\n%s", code, out)
	}
}

func TestMontgomerySubcommand(t *testing.T) {
	code, out := run(t, "montgomery")
	if code != apperrors.ExitSuccess {
		t.Fatalf("montgomery exit = %d\n%s", code, out)
	}
	if !strings.Contains(out, "r_squared") {
		t.Errorf("montgomery output should show context internals:\n%s", out)
	}
}

func TestHybridSubcommand(t *testing.T) {
	code, out := run(t, "hybrid")
	if code != apperrors.ExitSuccess {
		t.Fatalf("hybrid exit = %d\n%s", code, out)
	}
	// Every selector branch shows up in the decision listing.
	for _, want := range []string{"tiny-odd", "wide-odd", "even"} {
		if !strings.Contains(out, want) {
			t.Errorf("hybrid output missing %q:\n%s", want, out)
		}
	}
}

func TestManualSubcommandWithFlags(t *testing.T) {
	code, out := run(t, "manual", "-n", "35", "-exp", "5", "-m", "2", "-q")
	if code != apperrors.ExitSuccess {
		t.Fatalf("manual exit = %d\n%s", code, out)
	}
	if strings.TrimSpace(out) != "20" { // 32 in hex
		t.Errorf("manual quiet output = %q, want ciphertext hex 20", strings.TrimSpace(out))
	}
}

func TestManualSubcommandDomainError(t *testing.T) {
	application, err := app.New([]string{"rsa4096", "manual", "-n", "35", "-exp", "5", "-m", "99"}, io.Discard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var out bytes.Buffer
	if code := application.Run(context.Background(), &out); code == apperrors.ExitSuccess {
		t.Error("m > n must fail")
	}
}

func TestManualForcedAlgorithmsAgree(t *testing.T) {
	_, auto := run(t, "manual", "-n", "143", "-exp", "103", "-m", "81", "-q")
	_, mont := run(t, "manual", "-n", "143", "-exp", "103", "-m", "81", "-q", "-algo", "montgomery")
	_, school := run(t, "manual", "-n", "143", "-exp", "103", "-m", "81", "-q", "-algo", "schoolbook")
	if auto != mont || mont != school {
		t.Errorf("forced algorithms disagree: auto=%q montgomery=%q schoolbook=%q", auto, mont, school)
	}
	if strings.TrimSpace(auto) != "2a" { // 42
		t.Errorf("decrypt(81) = %q, want 2a", strings.TrimSpace(auto))
	}
}
