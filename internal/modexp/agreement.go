package modexp

import (
	"fmt"
	"math/big"

	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/codec"
	"github.com/agbru/rsa4096/internal/montgomery"
)

// AgreementResult carries the outcome of running base^exp mod n through
// Montgomery, Schoolbook, and the standard library's math/big as a
// reference, so a disagreement can be reported with the value each
// algorithm produced.
type AgreementResult struct {
	Montgomery    bigint.BigUint
	Schoolbook    bigint.BigUint
	Reference     bigint.BigUint
	MontgomeryErr error
	Mismatch      bool
	Detail        string
}

// AgreementCheck cross-checks one (base, exp, n) triple: Montgomery's
// expmod, Schoolbook's expmod, and math/big's Exp must all agree whenever
// Montgomery is applicable (n odd and nonzero). If n is even, only
// Schoolbook and the reference are compared.
func AgreementCheck(base, exp, n bigint.BigUint) AgreementResult {
	var res AgreementResult

	ref := new(big.Int).Exp(toMathBig(base), toMathBig(exp), toMathBig(n))
	res.Reference = fromMathBig(ref)

	sb, err := Schoolbook(base, exp, n)
	if err != nil {
		res.Mismatch = true
		res.Detail = fmt.Sprintf("schoolbook error: %v", err)
		return res
	}
	res.Schoolbook = sb
	if bigint.Compare(sb, res.Reference) != bigint.Equal {
		res.Mismatch = true
		res.Detail = "schoolbook disagrees with reference"
	}

	if !n.IsZero() && n.Limbs[0]&1 == 1 {
		ctx, err := montgomery.Build(n)
		if err != nil {
			res.MontgomeryErr = err
		} else {
			mg, err := montgomery.Expmod(base, exp, ctx)
			if err != nil {
				res.MontgomeryErr = err
			} else {
				res.Montgomery = mg
				if bigint.Compare(mg, res.Reference) != bigint.Equal {
					res.Mismatch = true
					res.Detail = "montgomery disagrees with reference"
				}
			}
		}
	}

	return res
}

func toMathBig(b bigint.BigUint) *big.Int {
	return new(big.Int).SetBytes(codec.ToBytes(b))
}

func fromMathBig(v *big.Int) bigint.BigUint {
	b, _ := codec.DecodeBytes(v.Bytes())
	return b
}
