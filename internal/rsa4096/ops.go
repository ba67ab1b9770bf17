package rsa4096

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/modexp"
)

var tracer = otel.Tracer("github.com/agbru/rsa4096/internal/rsa4096")

// Encrypt computes m^e mod n for the public key. Precondition m < n;
// violating it fails with a DomainErrorDetail rather than silently
// truncating. The zero-input short-circuit (0 -> 0) is applied before the
// domain check.
func Encrypt(ctx context.Context, pub Key, m bigint.BigUint, obs modexp.Observer) (bigint.BigUint, error) {
	return rsaOp(ctx, "encrypt", pub, m, obs)
}

// Decrypt computes c^d mod n for the private key, symmetric to Encrypt.
func Decrypt(ctx context.Context, priv Key, c bigint.BigUint, obs modexp.Observer) (bigint.BigUint, error) {
	return rsaOp(ctx, "decrypt", priv, c, obs)
}

func rsaOp(ctx context.Context, spanName string, key Key, in bigint.BigUint, obs modexp.Observer) (bigint.BigUint, error) {
	_, span := tracer.Start(ctx, "rsa4096."+spanName,
		trace.WithAttributes(
			attribute.Int("rsa4096.modulus_bits", key.N.BitLen()),
			attribute.Bool("rsa4096.is_private", key.IsPrivate),
		))
	defer span.End()

	if in.IsZero() {
		return bigint.Zero(), nil
	}
	if bigint.Compare(in, key.N) != bigint.Less {
		err := apperrors.DomainErrorDetail{Operation: spanName, Detail: "input must be strictly less than the modulus"}
		span.RecordError(err)
		return bigint.Zero(), err
	}

	result, err := modExp(in, key, obs)
	if err != nil {
		span.RecordError(err)
		return bigint.Zero(), err
	}
	span.SetAttributes(attribute.String("rsa4096.algorithm", selectedAlgorithm(key)))
	return result, nil
}

func selectedAlgorithm(key Key) string {
	alg, _ := modexp.Select(key.N, key.Mont)
	return alg
}
