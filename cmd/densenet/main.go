// Package main provides the densenet CLI.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("densenet %s\n", version)
	case "sweep":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runSweep(ctx, os.Args[2:]); err != nil {
			log.Fatal(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("densenet - feed-forward networks trained by gradient descent")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  sweep      Train XOR networks across seeds and report final loss")
}
