package main

import (
	"flag"
	"fmt"
	"os"

	"heartfall/internal/card"
)

func main() {
	cfgPath := flag.String("config", "heartfall.yaml", "path to an optional YAML config file")
	flag.Parse()

	cfg, err := card.LoadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "heartfall: %v\n", err)
		os.Exit(1)
	}
	card.RunDesktop(cfg)
}
