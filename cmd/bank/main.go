package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gicbank/internal/domain/bank"
	"gicbank/internal/domain/ledger"
	"gicbank/internal/domain/ratetable"
	"gicbank/internal/interfaces/cli"
	"gicbank/internal/shared/config"
	"gicbank/internal/shared/logger"
	"gicbank/internal/shared/messages"
)

const usage = `GIC Bank console

Usage:
  bank [options]

Options:
  -script <file>     Replay menu input from a file instead of stdin
  -messages <file>   JSON file overriding the console texts

Examples:
  # Interactive session
  bank

  # Replay a recorded session
  bank -script=session.txt
`

func main() {
	fs := flag.NewFlagSet("bank", flag.ExitOnError)
	script := fs.String("script", "", "File with menu input to replay instead of stdin")
	messagesPath := fs.String("messages", "", "JSON file overriding the console texts")
	fs.Usage = func() {
		fmt.Print(usage)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync()

	msgs, err := messages.Load(*messagesPath)
	if err != nil {
		log.Fatalf("Failed to load messages: %v", err)
	}

	var in io.Reader = os.Stdin
	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			log.Fatalf("Failed to open script: %v", err)
		}
		defer f.Close()
		in = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := bank.NewService(ledger.New(), ratetable.New(), zl)
	console := cli.NewConsole(svc, in, os.Stdout, msgs, zl)

	if err := console.Run(ctx); err != nil && ctx.Err() == nil {
		log.Printf("Console stopped: %v", err)
	}
}
