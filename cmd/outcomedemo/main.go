package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ib-77/outcome/internal/cmd/outcomedemo"
)

func main() {
	cfg, err := outcomedemo.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[OUTCOME-DEMO] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := outcomedemo.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("run demo: %v", err)
	}
}
