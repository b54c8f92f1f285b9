package hebfv

import (
	"github.com/tuneinsight/lattigo/v4/bfv"
	"github.com/tuneinsight/lattigo/v4/rlwe"
)

// KeySet bundles the key material one detector deployment needs. The
// secret key stays with the party allowed to decrypt verdicts; the
// public and relinearization keys are all the evaluator ever sees.
type KeySet struct {
	Secret *rlwe.SecretKey
	Public *rlwe.PublicKey
	Relin  *rlwe.RelinearizationKey
}

// GenKeySet draws a fresh key set for the given parameters.
func GenKeySet(p Parameters) *KeySet {
	kgen := bfv.NewKeyGenerator(p.bfv)
	sk, pk := kgen.GenKeyPair()
	return &KeySet{
		Secret: sk,
		Public: pk,
		Relin:  kgen.GenRelinearizationKey(sk, 1),
	}
}
