// Command server runs the signing HTTP API.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/docsign-backend/internal/app"
	"github.com/heartmarshall/docsign-backend/internal/config"
)

func main() {
	envHelp := flag.Bool("env-help", false, "print the supported environment variables and exit")
	flag.Parse()
	if *envHelp {
		config.WriteUsage(os.Stdout)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
