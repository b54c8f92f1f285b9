package hebfv

// Budget probing. BFV noise grows with every gate and the decryption
// fails loudly once a bit leaves {0,1}; walking a circuit with
// CheckWord after each stage locates the depth at which a parameter
// set gives out.

// CheckWord decrypts w and reports whether it equals want. An error
// from the decryptor (a bit outside {0,1}) also counts as a failed
// check; the error is returned for diagnostics.
func CheckWord(d *Decryptor, w *Word, want uint64) (bool, error) {
	got, err := d.DecryptWord(w)
	if err != nil {
		return false, err
	}
	return got == want, nil
}
