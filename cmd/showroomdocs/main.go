// Command showroomdocs renders showroom documents from JSON records.
//
// Usage:
//
//	showroomdocs render [-token] [-o out.pdf] record.json
//	showroomdocs serve
//
// render reads a delivery/purchase order (or, with -token, a token
// receipt) from the named file, or from stdin when the name is "-" or
// missing, and writes the PDF to -o or stdout. serve runs an MCP server on
// stdio exposing the same operations as tools.
//
// Settings come from SHOWROOMDOCS_* environment variables; see
// internal/config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/lvillar/showroomdocs"
	"github.com/lvillar/showroomdocs/assets"
	"github.com/lvillar/showroomdocs/internal/config"
	"github.com/lvillar/showroomdocs/internal/logging"
	"github.com/lvillar/showroomdocs/mcp"
	"github.com/lvillar/showroomdocs/record"
	"github.com/lvillar/showroomdocs/verify"
)

const version = "1.0.0"

var errUsage = errors.New("usage: showroomdocs render [-token] [-o out.pdf] [record.json] | showroomdocs serve")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "showroomdocs: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	eng, gen := build(cfg, log)

	switch args[0] {
	case "render":
		return render(ctx, eng, args[1:], stdin, stdout, stderr)
	case "serve":
		srv := mcp.NewServer("showroomdocs", version, log)
		mcp.RegisterTools(srv, eng, gen)
		return srv.Serve(ctx, stdin, stdout)
	default:
		return errUsage
	}
}

// build turns the configuration into an engine and its code generator.
func build(cfg *config.Config, log *zap.Logger) (*showroomdocs.Engine, *verify.Generator) {
	cache := assets.NewCache(
		assets.WithRoot(cfg.AssetRoot),
		assets.WithLogoDir(cfg.LogoDir),
		assets.WithIconDir(cfg.IconDir),
		assets.WithLogger(log),
	)
	gen := verify.NewGenerator(cfg.PublicOrigins,
		verify.WithSymbology(cfg.Symbology()),
		verify.WithSize(cfg.CodeSize),
		verify.WithLogger(log),
	)

	letterheads := cfg.LetterheadDir
	if letterheads != "" && !filepath.IsAbs(letterheads) {
		letterheads = filepath.Join(cfg.AssetRoot, letterheads)
	}
	eng := showroomdocs.New(
		showroomdocs.WithAssetCache(cache),
		showroomdocs.WithVerifier(gen),
		showroomdocs.WithLogger(log),
		showroomdocs.WithLetterheadDir(letterheads),
		showroomdocs.WithCompression(cfg.Compress),
	)
	return eng, gen
}

func render(ctx context.Context, eng *showroomdocs.Engine, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	token := fs.Bool("token", false, "input is a token receipt")
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return errUsage
	}

	in := stdin
	if name := fs.Arg(0); name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var (
		pdf []byte
		err error
	)
	if *token {
		var t *record.TokenReceipt
		if t, err = record.DecodeTokenReceipt(in); err != nil {
			return err
		}
		pdf, err = eng.RenderTokenReceipt(ctx, t)
	} else {
		var d *record.Document
		if d, err = record.Decode(in); err != nil {
			return err
		}
		pdf, err = eng.Render(ctx, d)
	}
	if err != nil {
		return err
	}

	if *out == "" {
		_, err = stdout.Write(pdf)
		return err
	}
	return os.WriteFile(*out, pdf, 0o644)
}
