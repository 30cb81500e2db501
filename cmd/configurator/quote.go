package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trhacknon/custom-devices/internal/document"
	"github.com/trhacknon/custom-devices/internal/models"
	"github.com/trhacknon/custom-devices/internal/preview"
	"github.com/trhacknon/custom-devices/internal/service"
)

// streamDestination as --out writes the document to stdout instead of a file
const streamDestination = "-"

type quoteOptions struct {
	selection models.Selection
	format    string
	out       string
	priceOnly bool
}

func newQuoteCmd(root *rootOptions) *cobra.Command {
	opts := &quoteOptions{}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a build and generate its quote",
		Example: `  configurator quote --board "ESP32 DevKit" --module "GPS NEO-6M" --module NRF24L01 \
      --firmware Bruce --name "Jean Dupont" --email jean@example.com
  configurator quote --board "ESP32-S3" --price-only
  configurator quote --board "ESP32-S3" --firmware GhostESP --name A --email a@b.c --format xlsx --out - > devis.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.selection.Board, "board", "", "board name (required)")
	f.StringArrayVar(&opts.selection.Modules, "module", nil, "add-on module, repeatable")
	f.StringVar(&opts.selection.Firmware, "firmware", "", "firmware name (required unless --price-only)")
	f.StringArrayVar(&opts.selection.Options, "option", nil, "service option, repeatable")
	f.StringVar(&opts.selection.BuyerName, "name", "", "buyer name")
	f.StringVar(&opts.selection.BuyerEmail, "email", "", "buyer email")
	f.StringVar(&opts.selection.Notes, "notes", "", "free-form notes printed on the quote")
	f.StringVar(&opts.format, "format", string(document.FormatPDF), "document format: pdf or xlsx")
	f.StringVar(&opts.out, "out", "", `output directory, or "-" for stdout (default QUOTE_OUTPUT_DIR)`)
	f.BoolVar(&opts.priceOnly, "price-only", false, "print the total without generating a document")
	_ = cmd.MarkFlagRequired("board")

	return cmd
}

func runQuote(cmd *cobra.Command, root *rootOptions, opts *quoteOptions) error {
	ctx := cmd.Context()

	env, err := loadEnvironment(ctx, root, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	cfg := env.cfg

	if opts.priceOnly {
		svc := service.NewQuoteService(env.catalog, nil, nil, cfg.Quote.LinesPerPage)
		sel := opts.selection
		total, err := svc.ComputeTotal(ctx, sel.Board, sel.Firmware, sel.Modules, sel.Options)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), document.FormatTotal(total))
		return nil
	}

	format, err := document.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	resolver := preview.NewResolver(env.catalog, cfg.Preview.ImageDir, cfg.Preview.MaxSize, env.log)

	var store service.DocumentStore
	if opts.out != streamDestination {
		dir := cfg.Quote.OutputDir
		if opts.out != "" {
			dir = opts.out
		}
		store = document.NewFileStore(dir, document.NewNamer(document.FilenamePolicy(cfg.Quote.FilenamePolicy)))
	}

	svc := service.NewQuoteService(env.catalog, resolver, store, cfg.Quote.LinesPerPage)
	generated, err := svc.GenerateQuote(ctx, opts.selection, format)
	if err != nil {
		return err
	}

	if store == nil {
		return document.Stream(cmd.OutOrStdout(), generated.Data)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", generated.Path, document.FormatTotal(generated.Quote.Total))
	env.log.Debug("quote generated", "quote_id", generated.Quote.ID, "format", format, "path", generated.Path)
	return nil
}
