package main

import (
	"context"
	"flag"
	"log"

	"github.com/born-ml/mlp/internal/server"
	"github.com/gin-gonic/gin"
)

func runServe(ctx context.Context, args []string) error {
	cfg := server.DefaultConfig()
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	debug := fs.Bool("debug", false, "Run gin in debug mode")
	quiet := fs.Bool("quiet", false, "Disable request logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *debug {
		cfg.Mode = gin.DebugMode
	}
	cfg.Logger = !*quiet

	log.Printf("mlp %s listening on %s", version, cfg.Addr)
	return server.New(cfg).Run(ctx)
}
