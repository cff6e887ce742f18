package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/teleprint-me/precision-go/fpcast/core"
)

// CLI defines the fpcast command-line interface.
//
// fpcast converts scalar values between binary32 and the reduced-width
// formats handled by the precision package, and inspects the resulting
// bit patterns. It is a debugging aid for the codec, not a bulk
// conversion pipeline.
type CLI struct {
	Encode EncodeCmd `cmd:"" help:"Encode decimal values into a reduced format and print the bit patterns."`
	Decode DecodeCmd `cmd:"" help:"Decode hex bit patterns back into decimal values."`
	Table  TableCmd  `cmd:"" help:"Print every representable value of a format (8-bit formats) or its layout summary."`
	Verify VerifyCmd `cmd:"" help:"Round-trip values through a format and report tolerance failures."`
	Gen    GenCmd    `cmd:"" help:"Generate a Go source file holding the e4m3 decode lookup table."`
}

// EncodeCmd implements "fpcast encode".
type EncodeCmd struct {
	Format  string   `short:"f" default:"f16" help:"Target format: f16, bf16, f8, or f32."`
	Verbose bool     `short:"v" help:"Print full field notation instead of bare hex."`
	Values  []string `arg:"" help:"Decimal values to encode."`
}

func (c *EncodeCmd) Run() error {
	f, err := core.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	return core.Encode(os.Stdout, f, c.Values, c.Verbose)
}

// DecodeCmd implements "fpcast decode".
type DecodeCmd struct {
	Format  string   `short:"f" default:"f16" help:"Source format: f16, bf16, f8, or f32."`
	Verbose bool     `short:"v" help:"Print full field notation instead of bare values."`
	Bits    []string `arg:"" help:"Hex bit patterns to decode (with or without 0x)."`
}

func (c *DecodeCmd) Run() error {
	f, err := core.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	return core.Decode(os.Stdout, f, c.Bits, c.Verbose)
}

// TableCmd implements "fpcast table".
type TableCmd struct {
	Format string `short:"f" default:"f8" help:"Format to enumerate."`
}

func (c *TableCmd) Run() error {
	f, err := core.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	return core.Table(os.Stdout, f)
}

// VerifyCmd implements "fpcast verify".
type VerifyCmd struct {
	Format   string   `short:"f" default:"f16" help:"Format to round-trip through."`
	Relative float64  `default:"1e-3" help:"Relative tolerance."`
	Absolute float64  `default:"0" help:"Absolute tolerance."`
	Values   []string `arg:"" help:"Decimal values to verify."`
}

func (c *VerifyCmd) Run() error {
	f, err := core.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	return core.Verify(os.Stdout, f, c.Values, c.Relative, c.Absolute)
}

// GenCmd implements "fpcast gen".
type GenCmd struct {
	Output  string `short:"o" default:"float8_table.go" help:"Output file for the generated table."`
	Package string `short:"p" default:"precision" help:"Package name for the generated file."`
}

func (c *GenCmd) Run() error {
	return core.Generate(c.Output, c.Package)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("fpcast"),
		kong.Description("Inspect and convert reduced-precision floating-point bit patterns."),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
