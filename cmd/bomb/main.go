package main

import (
	"flag"
	"log"
	"os"

	"bomb-abm/internal/app"
)

func main() {
	cfg, err := app.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := app.RunBatch(cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}
