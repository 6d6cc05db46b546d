// Command cbordoc inspects CBOR payloads: it prints items in
// diagnostic notation, checks well-formedness, and reports decoded vs
// re-encoded sizes. Input is a file path, "-" for stdin, or a bare hex
// string.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/harborlabs/cbordoc/cbor"
)

type DiagCmd struct {
	Input string `arg:"" help:"File path, '-' for stdin, or a hex string"`
}

type ValidateCmd struct {
	Input string `arg:"" help:"File path, '-' for stdin, or a hex string"`
}

type SizeCmd struct {
	Input string `arg:"" help:"File path, '-' for stdin, or a hex string"`
}

// CLI defines the cbordoc command-line interface.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose diagnostics"`

	Diag     DiagCmd     `cmd:"" help:"Print each CBOR item in diagnostic notation"`
	Validate ValidateCmd `cmd:"" help:"Check that the input is well-formed CBOR"`
	Size     SizeCmd     `cmd:"" help:"Report item count and re-encoded size"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cbordoc"),
		kong.Description("Inspect CBOR documents."),
	)

	log := zap.NewNop()
	if cli.Verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			ctx.FatalIfErrorf(err)
		}
		log = l
	}
	defer log.Sync()

	ctx.FatalIfErrorf(ctx.Run(log))
}

// readInput resolves the input argument: stdin, file, or hex literal.
func readInput(arg string, log *zap.Logger) ([]byte, error) {
	if arg == "-" {
		log.Debug("reading stdin")
		return io.ReadAll(os.Stdin)
	}
	if st, err := os.Stat(arg); err == nil && !st.IsDir() {
		log.Debug("reading file", zap.String("path", arg), zap.Int64("bytes", st.Size()))
		return os.ReadFile(arg)
	}
	b, err := hex.DecodeString(strings.TrimSpace(arg))
	if err != nil {
		return nil, fmt.Errorf("input is neither a readable file nor hex: %w", err)
	}
	log.Debug("parsed hex argument", zap.Int("bytes", len(b)))
	return b, nil
}

func (c *DiagCmd) Run(log *zap.Logger) error {
	b, err := readInput(c.Input, log)
	if err != nil {
		return err
	}
	dec := cbor.NewDecoder(b)
	for len(dec.Remaining()) > 0 {
		doc, err := dec.Decode()
		if err != nil {
			return err
		}
		fmt.Println(doc.String())
	}
	return nil
}

func (c *ValidateCmd) Run(log *zap.Logger) error {
	b, err := readInput(c.Input, log)
	if err != nil {
		return err
	}
	if err := cbor.Valid(b); err != nil {
		if off := cbor.Offset(err); off >= 0 {
			log.Debug("validation failed", zap.Int("offset", off))
		}
		return err
	}
	fmt.Printf("ok: %d bytes well-formed\n", len(b))
	return nil
}

func (c *SizeCmd) Run(log *zap.Logger) error {
	b, err := readInput(c.Input, log)
	if err != nil {
		return err
	}
	dec := cbor.NewDecoder(b)
	items := 0
	total := 0
	for len(dec.Remaining()) > 0 {
		doc, err := dec.Decode()
		if err != nil {
			return err
		}
		n := cbor.CalcSize(doc)
		log.Debug("item", zap.Int("index", items), zap.Int("encoded_size", n))
		items++
		total += n
	}
	fmt.Printf("items: %d, input: %d bytes, re-encoded: %d bytes\n", items, len(b), total)
	return nil
}
