package hebfv

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo/v4/rlwe"
)

type testEnv struct {
	params  Parameters
	keys    *KeySet
	backend *Backend
	enc     *Encryptor
	dec     *Decryptor
}

func newTestEnv(t *testing.T, lit ParametersLiteral) *testEnv {
	t.Helper()
	params, err := NewParametersFromLiteral(lit)
	require.NoError(t, err)
	keys := GenKeySet(params)
	return &testEnv{
		params:  params,
		keys:    keys,
		backend: NewBackend(params, keys.Public, keys.Relin),
		enc:     NewEncryptor(params, keys.Public),
		dec:     NewDecryptor(params, keys.Secret),
	}
}

// deepEnv returns an environment on the large parameter set at the
// given narrow width. Deep word circuits only fit the PN15 budget, and
// its key generation is slow, so callers skip under -short.
func deepEnv(t *testing.T, wordBits int) *testEnv {
	t.Helper()
	if testing.Short() {
		t.Skip("deep circuit on PN15 parameters, skipped in short mode")
	}
	return newTestEnv(t, ParametersLiteral{BFV: DepthPN15.BFV, WordBits: wordBits})
}

func (env *testEnv) decrypt(t *testing.T, w *Word) uint64 {
	t.Helper()
	v, err := env.dec.DecryptWord(w)
	require.NoError(t, err)
	return v
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	env := newTestEnv(t, TestPN13)
	for _, v := range []uint64{0, 1, 2, 0x55, 0xaa, 0xff, 0x123456789abcdef0} {
		w := env.enc.EncryptWord(v)
		require.Equal(t, v&0xff, env.decrypt(t, w), "value %#x", v)
	}
}

func TestLiftIsPublicEncryption(t *testing.T) {
	env := newTestEnv(t, TestPN13)
	for _, v := range []uint64{0, 1, 0x80, 0xfe} {
		require.Equal(t, v, env.decrypt(t, env.backend.Lift(v)))
	}
}

func (env *testEnv) decryptBit(t *testing.T, ct *rlwe.Ciphertext) uint64 {
	t.Helper()
	b, err := env.dec.decryptBit(ct)
	require.NoError(t, err)
	return b
}

func TestGateTruthTables(t *testing.T) {
	env := newTestEnv(t, TestPN13)
	be := env.backend
	for _, a := range []uint64{0, 1} {
		for _, b := range []uint64{0, 1} {
			ca, cb := env.enc.encryptBit(a), env.enc.encryptBit(b)
			require.Equal(t, a&b, env.decryptBit(t, be.and(ca, cb)), "and(%d,%d)", a, b)
			require.Equal(t, a^b, env.decryptBit(t, be.xor(ca, cb)), "xor(%d,%d)", a, b)
			require.Equal(t, a|b, env.decryptBit(t, be.or(ca, cb)), "or(%d,%d)", a, b)
		}
		ca := env.enc.encryptBit(a)
		require.Equal(t, 1-a, env.decryptBit(t, be.not(ca)), "not(%d)", a)
	}
}

func TestShiftRightAndLsb(t *testing.T) {
	env := newTestEnv(t, TestPN13)
	be := env.backend
	w := env.enc.EncryptWord(0b10110100)
	require.Equal(t, uint64(0b00101101), env.decrypt(t, be.ShiftRight(w, 2)))
	require.Equal(t, uint64(0), env.decrypt(t, be.ShiftRight(w, 8)))
	require.Equal(t, uint64(0), env.decrypt(t, be.Lsb(w)))
	require.Equal(t, uint64(1), env.decrypt(t, be.Lsb(env.enc.EncryptWord(0b101))))
	// Shift by zero is the identity.
	require.Equal(t, uint64(0b10110100), env.decrypt(t, be.ShiftRight(w, 0)))
}

func TestWordAnd(t *testing.T) {
	env := newTestEnv(t, TestPN13)
	a := env.enc.EncryptWord(0b11001010)
	b := env.enc.EncryptWord(0b10101100)
	require.Equal(t, uint64(0b10001000), env.decrypt(t, env.backend.And(a, b)))
}

func TestWordMarshalRoundTrip(t *testing.T) {
	env := newTestEnv(t, TestPN13)
	w := env.enc.EncryptWord(0x5a)
	data, err := w.MarshalBinary()
	require.NoError(t, err)
	var back Word
	require.NoError(t, back.UnmarshalBinary(data))
	require.Equal(t, uint64(0x5a), env.decrypt(t, &back))
}

func TestAddWrapsWidth4(t *testing.T) {
	env := deepEnv(t, 4)
	be := env.backend
	cases := [][2]uint64{{0, 0}, {1, 1}, {7, 9}, {15, 1}, {15, 15}, {8, 8}}
	for _, c := range cases {
		a := env.enc.EncryptWord(c[0])
		b := env.enc.EncryptWord(c[1])
		require.Equal(t, (c[0]+c[1])&0xf, env.decrypt(t, be.Add(a, b)),
			"add(%d,%d) mod 16", c[0], c[1])
	}
}

func TestGtWidth4(t *testing.T) {
	env := deepEnv(t, 4)
	be := env.backend
	cases := [][2]uint64{{0, 0}, {1, 0}, {0, 1}, {9, 9}, {15, 14}, {7, 8}}
	for _, c := range cases {
		a := env.enc.EncryptWord(c[0])
		b := env.enc.EncryptWord(c[1])
		want := uint64(0)
		if c[0] > c[1] {
			want = 1
		}
		require.Equal(t, want, env.decrypt(t, be.Gt(a, b)), "gt(%d,%d)", c[0], c[1])
	}
}

func TestMulWrapsWidth2(t *testing.T) {
	env := deepEnv(t, 2)
	be := env.backend
	for a := uint64(0); a < 4; a++ {
		for b := uint64(0); b < 4; b++ {
			ca := env.enc.EncryptWord(a)
			cb := env.enc.EncryptWord(b)
			require.Equal(t, (a*b)&0x3, env.decrypt(t, be.Mul(ca, cb)),
				"mul(%d,%d) mod 4", a, b)
		}
	}
}

func TestCheckWordProbe(t *testing.T) {
	env := newTestEnv(t, TestPN13)
	w := env.enc.EncryptWord(42)
	ok, err := CheckWord(env.dec, w, 42)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = CheckWord(env.dec, w, 41)
	require.NoError(t, err)
	require.False(t, ok)
}
