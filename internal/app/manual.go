package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/clipresent"
	"github.com/agbru/rsa4096/internal/codec"
	"github.com/agbru/rsa4096/internal/orchestration"
	"github.com/agbru/rsa4096/internal/rsa4096"
)

// runManual performs one RSA operation on operands supplied by flags, or
// prompts for any that are missing. The -private flag decides whether the
// exponent is treated as d (decrypt) or e (encrypt); -algo can force a
// single engine instead of the selector.
func (a *Application) runManual(ctx context.Context, out io.Writer) int {
	reader := bufio.NewReader(os.Stdin)

	n, err := a.operand(reader, out, "modulus n", a.Config.ModulusHex, a.Config.ModulusDecimal)
	if err != nil {
		return a.fail(err)
	}
	exp, err := a.operand(reader, out, "exponent", a.Config.ExponentHex, a.Config.ExponentDecimal)
	if err != nil {
		return a.fail(err)
	}
	msg, err := a.operand(reader, out, "message", a.Config.MessageHex, a.Config.MessageDecimal)
	if err != nil {
		return a.fail(err)
	}

	result, err := a.runOneOp(ctx, n, exp, msg)
	if err != nil {
		return a.fail(err)
	}

	opName := "encrypt"
	if a.Config.IsPrivate {
		opName = "decrypt"
	}
	if a.Config.Quiet {
		fmt.Fprintln(out, codec.EncodeHex(result))
		return apperrors.ExitSuccess
	}
	fmt.Fprintf(out, "%s(%s) mod %s:\n", opName,
		clipresent.TruncateDecimal(codec.EncodeDecimal(msg)),
		clipresent.TruncateDecimal(codec.EncodeDecimal(n)))
	fmt.Fprintf(out, "  dec %s\n", clipresent.TruncateDecimal(codec.EncodeDecimal(result)))
	fmt.Fprintf(out, "  hex %s\n", clipresent.TruncateHex(codec.EncodeHex(result)))
	if a.Config.Verbose {
		fmt.Fprintf(out, "  full hex %s\n", codec.EncodeHex(result))
	}
	return apperrors.ExitSuccess
}

// runOneOp routes a single operation through the configured algorithm:
// the production key path for "auto", a forced engine otherwise. The
// domain checks match in either case.
func (a *Application) runOneOp(ctx context.Context, n, exp, msg bigint.BigUint) (bigint.BigUint, error) {
	if a.Config.Algo == "auto" {
		key, err := rsa4096.NewKey(n, exp, a.Config.IsPrivate)
		if err != nil {
			return bigint.Zero(), err
		}
		if a.Config.IsPrivate {
			return rsa4096.Decrypt(ctx, key, msg, a.observer())
		}
		return rsa4096.Encrypt(ctx, key, msg, a.observer())
	}

	if msg.IsZero() {
		return bigint.Zero(), nil
	}
	if n.IsZero() || bigint.Compare(msg, n) != bigint.Less {
		return bigint.Zero(), apperrors.DomainErrorDetail{Operation: "manual", Detail: "message must be strictly less than the modulus"}
	}
	var engine orchestration.Engine
	if a.Config.Algo == "montgomery" {
		engine = orchestration.MontgomeryEngine{}
	} else {
		engine = orchestration.SchoolbookEngine{}
	}
	return engine.ModExp(msg, exp, n)
}

// operand resolves one operand: hex flag wins over decimal flag; with
// neither set, the user is prompted. A prompted value starting with "0x"
// is read as hex, decimal otherwise.
func (a *Application) operand(reader *bufio.Reader, out io.Writer, name, hexVal, decVal string) (bigint.BigUint, error) {
	if hexVal != "" {
		return codec.DecodeHex(hexVal)
	}
	if decVal != "" {
		return codec.DecodeDecimal(decVal)
	}

	fmt.Fprintf(out, "%s (decimal, or 0x-prefixed hex): ", name)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return bigint.Zero(), apperrors.NewConfigError("reading %s: %v", name, err)
	}
	line = strings.TrimSpace(line)
	if rest, ok := strings.CutPrefix(line, "0x"); ok {
		return codec.DecodeHex(rest)
	}
	return codec.DecodeDecimal(line)
}
