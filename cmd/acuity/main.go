package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"acuity/internal/config"
	"acuity/internal/connectors"
	gmailconnector "acuity/internal/connectors/gmail"
	imapconnector "acuity/internal/connectors/imap"
	"acuity/internal/export"
	"acuity/internal/listener"
	"acuity/internal/logging"
	"acuity/internal/parser"
	"acuity/internal/server"
	"acuity/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "parse":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "invoice file (.xls, .xlsx, .html)")
		aggregate := fs.Bool("aggregate", false, "aggregate line items by SKU")
		outCSV := fs.String("out-csv", "", "write Invoice Tab CSV here")
		outXLSX := fs.String("out-xlsx", "", "write Invoice Tab workbook here")
		maxItems := fs.Int("max-items", cfg.ParseMaxItems, "cap on extracted line items, 0 = unlimited")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}

		p := parser.New(parser.Options{MaxItems: *maxItems})
		result := p.ParseFile(*input, *aggregate)
		if !result.Success {
			must(fmt.Errorf("parse failed: %s", result.Error))
		}

		if *outCSV != "" {
			f, err := os.Create(*outCSV)
			must(err)
			must(export.WriteCSV(f, result.Items))
			must(f.Close())
		}
		if *outXLSX != "" {
			must(export.WriteXLSXFile(result, *outXLSX))
		}

		blob, err := json.MarshalIndent(result, "", "  ")
		must(err)
		fmt.Println(string(blob))
		suffix := ""
		if result.Aggregated {
			suffix = " (aggregated by SKU)"
		}
		fmt.Fprintf(os.Stderr, "parsed %d line items%s\n", len(result.Items), suffix)

	case "serve":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		addr := fs.String("addr", cfg.ServerAddr, "listen address")
		_ = fs.Parse(os.Args[2:])

		logging.Setup(cfg.LogLevel, cfg.LogFormat)
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		must(server.New(cfg).Run(ctx, *addr))

	case "mail:fetch":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		provider := fs.String("provider", cfg.MailListenerProvider, "gmail|imap")
		label := fs.String("label", cfg.MailListenerLabel, "mailbox/label")
		max := fs.Int("max", cfg.MailListenerFetchMax, "max messages")
		_ = fs.Parse(os.Args[2:])

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()
		conn, err := makeConnector(cfg, *provider)
		must(err)
		intake := connectors.NewIntakeService(db, cfg.RawMailDir, conn)
		result, err := intake.FetchAndStore(*label, *max)
		must(err)
		fmt.Printf("mail fetch done provider=%s fetched=%d stored=%d\n", *provider, result.Fetched, result.Stored)

	case "mail:process":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		provider := fs.String("provider", cfg.MailListenerProvider, "gmail|imap")
		messageID := fs.String("messageId", "", "specific message-id")
		batch := fs.Int("batch", cfg.MailListenerBatch, "batch size")
		_ = fs.Parse(os.Args[2:])

		logging.Setup(cfg.LogLevel, cfg.LogFormat)
		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()
		svc := listener.NewService(db, cfg)
		if strings.TrimSpace(*messageID) != "" {
			email, err := db.MustEmailByProviderMessageID(*provider, *messageID)
			must(err)
			must(svc.ProcessEmail(email))
			fmt.Printf("processed email id=%d\n", email.ID)
			return
		}
		processed, err := svc.ProcessPending(*batch, *provider)
		must(err)
		fmt.Printf("processed pending emails=%d\n", processed)

	case "mail:listen":
		logging.Setup(cfg.LogLevel, cfg.LogFormat)
		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		must(listener.NewService(db, cfg).Run(ctx))

	default:
		usage()
		os.Exit(1)
	}
}

func makeConnector(cfg config.Config, provider string) (connectors.MailConnector, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "gmail":
		return gmailconnector.NewConnector(cfg)
	case "imap":
		return imapconnector.NewConnector(cfg)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

func usage() {
	fmt.Println("usage: acuity <command>")
	fmt.Println("commands:")
	fmt.Println("  parse --input=invoice.xlsx [--aggregate] [--out-csv=...] [--out-xlsx=...]")
	fmt.Println("  serve [--addr=:4000]")
	fmt.Println("  mail:fetch --provider=gmail|imap --label=INBOX --max=20")
	fmt.Println("  mail:process --provider=gmail|imap [--messageId=...] [--batch=20]")
	fmt.Println("  mail:listen")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
