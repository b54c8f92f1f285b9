package main

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/sha3"

	"fhe-watermark/detector"
)

// keyFile is the on-disk form of the watermark parameters.
type keyFile struct {
	Keys []uint64 `json:"keys"`
}

func loadKeyFile(path string) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open key file: %w", err)
	}
	defer f.Close()
	var kf keyFile
	if err := json.NewDecoder(f).Decode(&kf); err != nil {
		return nil, fmt.Errorf("decode key file: %w", err)
	}
	if len(kf.Keys) != detector.NumKeys {
		return nil, fmt.Errorf("key file has %d keys, want %d", len(kf.Keys), detector.NumKeys)
	}
	return kf.Keys, nil
}

// fingerprint is a short SHAKE-256 digest of the key material, for
// log lines and operator checks; it does not protect the keys.
func fingerprint(keys []uint64) string {
	sh := sha3.NewShake256()
	var buf [8]byte
	for _, k := range keys {
		binary.BigEndian.PutUint64(buf[:], k)
		sh.Write(buf[:])
	}
	var sum [8]byte
	sh.Read(sum[:])
	return hex.EncodeToString(sum[:])
}

var keygenOut string

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate fresh watermark keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := make([]uint64, detector.NumKeys)
		var buf [8]byte
		for i := range keys {
			if _, err := rand.Read(buf[:]); err != nil {
				return fmt.Errorf("draw key %d: %w", i, err)
			}
			keys[i] = binary.BigEndian.Uint64(buf[:])
		}
		data, err := json.MarshalIndent(keyFile{Keys: keys}, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(keygenOut, append(data, '\n'), 0o600); err != nil {
			return fmt.Errorf("write key file: %w", err)
		}
		fmt.Printf("wrote %d keys to %s (fingerprint %s)\n", len(keys), keygenOut, fingerprint(keys))
		return nil
	},
}

func init() {
	keygenCmd.Flags().StringVar(&keygenOut, "out", "wm_keys.json", "output key file")
}
