package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"fhe-watermark/arith"
	"fhe-watermark/detector"
	"fhe-watermark/session"
)

var (
	detectKeys   string
	detectTokens string
)

// loadTokens reads whitespace-separated unsigned token ids.
func loadTokens(path string) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open token file: %w", err)
	}
	defer f.Close()
	var tokens []uint64
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseUint(sc.Text(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", sc.Text(), err)
		}
		tokens = append(tokens, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Run the plaintext mirror of the detector over a token file",
	Long: `detect scores a token stream with the plaintext reference backend and
prints the outcome as JSON. This is the offline oracle; it is bit-for-bit
equivalent to the encrypted path but sees token values in the clear.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := loadKeyFile(detectKeys)
		if err != nil {
			return err
		}
		tokens, err := loadTokens(detectTokens)
		if err != nil {
			return err
		}

		reg := session.NewRegistry[uint64]()
		det := session.New(session.Config[uint64]{
			Backend:  arith.Plain{},
			Verifier: reg,
			Registry: reg,
		})
		if err := det.SetParams("wmdetect", keys); err != nil {
			return err
		}
		handles := make([]session.Handle, len(tokens))
		for i, tok := range tokens {
			handles[i] = reg.Put(tok, nil)
		}
		res, err := det.Detect("wmdetect", handles, []byte("local"))
		if err != nil {
			return err
		}

		out := struct {
			Tokens     int     `json:"tokens"`
			Windows    uint64  `json:"windows"`
			TotalG     uint64  `json:"totalG"`
			Denom      uint64  `json:"denom"`
			Flag       bool    `json:"watermarked"`
			GreenRatio float64 `json:"greenRatio"`
		}{
			Tokens:  len(tokens),
			Windows: res.Denom / detector.NumKeys,
			TotalG:  res.TotalG,
			Denom:   res.Denom,
			Flag:    res.Flag == 1,
		}
		if res.Denom > 0 {
			out.GreenRatio = float64(res.TotalG) / float64(res.Denom)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	detectCmd.Flags().StringVar(&detectKeys, "keys", "wm_keys.json", "watermark key file")
	detectCmd.Flags().StringVar(&detectTokens, "tokens", "", "token id file (whitespace separated)")
	detectCmd.MarkFlagRequired("tokens")
}
