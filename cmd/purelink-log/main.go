// Command purelink-log is a tool for viewing and analyzing purelink
// protocol log files.
//
// Log files are created by running purelink with the -protocol-log flag,
// or by passing a FileLogger to session.Options.ProtocolLogger.
//
// Usage:
//
//	purelink-log <command> [flags] <file.plog>
//
// Commands:
//
//	dump     View log file in human-readable format
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events
//	purelink-log dump session.plog
//
//	# View only inbound messages
//	purelink-log dump -direction in session.plog
//
//	# View sensor readings from one device
//	purelink-log dump -serial NN2-EU-ABC1234A -kind sensor session.plog
//
//	# Show statistics
//	purelink-log stats session.plog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/purelink-protocol/purelink-go/cmd/purelink-log/commands"
)

const usage = `purelink-log - Protocol Log Analyzer

Usage:
  purelink-log <command> [flags] <file.plog>

Commands:
  dump     View log file in human-readable format
  stats    Show statistics about the log file

Use "purelink-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "dump":
		runDump(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runDump(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `purelink-log dump - View log file in human-readable format

Usage:
  purelink-log dump [flags] <file.plog>

Flags:
`)
		fs.PrintDefaults()
	}

	sessionID := fs.String("session", "", "Filter by session ID")
	serial := fs.String("serial", "", "Filter by device serial")
	direction := fs.String("direction", "", "Filter by direction (in, out)")
	kind := fs.String("kind", "", "Filter by message kind (state, sensor, map-global, map-grid, map-data, telemetry, goodbye)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	filter := commands.DumpFilter{
		SessionID: *sessionID,
		Serial:    *serial,
	}

	if *direction != "" {
		d, err := commands.ParseDirectionFlag(*direction)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		filter.Direction = &d
	}

	if *kind != "" {
		k, err := commands.ParseKindFlag(*kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		filter.Kind = &k
	}

	if err := commands.RunDump(path, filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `purelink-log stats - Show statistics about the log file

Usage:
  purelink-log stats <file.plog>
`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
