// Package main provides the mlp CLI.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("mlp %s\n", version)
	case "inspect":
		err = runInspect(os.Args[2:], os.Stdout)
	case "serve":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = runServe(ctx, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("mlp %s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Println("mlp - manual multilayer perceptron")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  inspect    Run one forward/backward pass and print the graph")
	fmt.Println("  serve      Serve networks over HTTP")
}
