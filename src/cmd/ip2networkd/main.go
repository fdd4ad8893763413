package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/ip2networkd/src/internal/commands"
	"github.com/maksimkurb/ip2networkd/src/internal/errors"
	"github.com/maksimkurb/ip2networkd/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", "", "Path to optional TOML configuration file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&ctx.Live, "live", false, "Read interfaces and routes from the running kernel instead of JSON files")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "iproute2 JSON to systemd-networkd converter\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "USAGE: %s [options] addresses routes-v4 routes-v6 networkd-directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s [options] -live networkd-directory\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Inputs are the outputs of `ip -j addr`, `ip -j -4 route` and `ip -j -6 route`.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	// Logs go to stderr, stdout stays empty
	log.SetForceStdErr(true)
	if ctx.Verbose {
		log.SetVerbose(true)
	}

	var cmd commands.Runner = commands.CreateGenerateCommand()
	if ctx.Live {
		cmd = commands.CreateLiveCommand()
	}

	if err := cmd.Init(flag.Args(), ctx); err != nil {
		if errors.HasCode(err, errors.ErrCodeUsage) {
			flag.Usage()
			os.Exit(1)
		}
		log.Fatalf("Failed to initialize %s: %v", cmd.Name(), err)
	}

	if err := cmd.Run(); err != nil {
		log.Fatalf("Failed to run %s: %v", cmd.Name(), err)
	}
}
