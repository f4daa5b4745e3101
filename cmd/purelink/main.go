// Command purelink is a CLI for Dyson smart appliances on the local
// network.
//
// Non-interactive mode authenticates against the vendor cloud, prints the
// account's device manifest and exits. Interactive mode is a command
// shell that can discover appliances via mDNS, open device sessions and
// send control commands.
//
// Usage:
//
//	purelink [flags]
//
// Flags:
//
//	-config string        Configuration file path (YAML)
//	-log-level string     Log level: debug, info, warn, error
//	-protocol-log string  File path for protocol event logging (CBOR format)
//	-interactive          Enable interactive command mode
//
// Examples:
//
//	# Print the cloud device manifest and exit
//	purelink -config purelink.yaml
//
//	# Interactive shell with protocol capture
//	purelink -config purelink.yaml -interactive -protocol-log session.plog
//
// Interactive Commands:
//
//	login                - Authenticate and fetch the device manifest
//	devices              - List known devices (manifest + config entries)
//	discover             - Browse the local network for appliances
//	connect <serial>     - Open a session to a device
//	state                - Show the device's operating state
//	sensors              - Show environmental sensor readings
//	set <field> <value>  - Change a fan setting (speed, heat, ...)
//	resetfilter          - Reset the filter life counter
//	vacuum <verb>        - Control a cleaning run (start, pause, ...)
//	disconnect           - Close the current session
//	quit                 - Exit
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/purelink-protocol/purelink-go/cmd/purelink/interactive"
	"github.com/purelink-protocol/purelink-go/pkg/account"
	"github.com/purelink-protocol/purelink-go/pkg/config"
	purelinklog "github.com/purelink-protocol/purelink-go/pkg/log"
)

var (
	configPath      = flag.String("config", "", "Configuration file path (YAML)")
	logLevel        = flag.String("log-level", "", "Log level: debug, info, warn, error")
	protocolLog     = flag.String("protocol-log", "", "File path for protocol event logging (CBOR format)")
	interactiveMode = flag.Bool("interactive", false, "Enable interactive command mode")
)

func main() {
	flag.Parse()

	cfg := &config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	// Flag beats config file, config file beats the default.
	level := cfg.Log.Level
	if *logLevel != "" {
		level = *logLevel
	}
	if level == "" {
		level = "info"
	}
	slogLevel, err := config.ParseLevel(level)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	setupLogging(level)

	logFile := cfg.Log.File
	if *protocolLog != "" {
		logFile = *protocolLog
	}
	var protocolLogger *purelinklog.FileLogger
	if logFile != "" {
		protocolLogger, err = purelinklog.NewFileLogger(logFile)
		if err != nil {
			log.Fatalf("Failed to create protocol logger: %v", err)
		}
		log.Printf("Protocol logging to: %s", logFile)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if !*interactiveMode {
		if err := printManifest(ctx, cfg); err != nil {
			log.Fatalf("%v", err)
		}
		if protocolLogger != nil {
			_ = protocolLogger.Close()
		}
		return
	}

	var protocolSink purelinklog.Logger
	if protocolLogger != nil {
		protocolSink = protocolLogger
	}
	ic, err := interactive.New(cfg, slogLevel, protocolSink)
	if err != nil {
		log.Fatalf("Failed to create interactive shell: %v", err)
	}
	// Redirect log output through readline to avoid interfering with input
	log.SetOutput(ic.Stdout())
	go ic.Run(ctx, cancel)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Received signal: %v", sig)
	case <-ctx.Done():
		// Cancelled by the quit command
	}

	log.Println("Shutting down...")
	ic.Close()
	if protocolLogger != nil {
		_ = protocolLogger.Close()
	}
	log.Println("Goodbye!")
}

// printManifest logs in with the configured account and lists its devices.
func printManifest(ctx context.Context, cfg *config.Config) error {
	if !cfg.Account.Configured() {
		return fmt.Errorf("no account credentials configured (use -config, or -interactive for the shell)")
	}

	client := account.New(account.Config{
		Email:    cfg.Account.Email,
		Password: cfg.Account.Password,
		Country:  cfg.Account.Country,
	})

	loginCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := client.Login(loginCtx); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	log.Printf("Logged in as %s", cfg.Account.Email)

	devices, err := client.Devices(loginCtx)
	if err != nil {
		return fmt.Errorf("failed to fetch device manifest: %w", err)
	}

	log.Printf("Account has %d device(s):", len(devices))
	for _, d := range devices {
		active := ""
		if !d.Active {
			active = " (inactive)"
		}
		log.Printf("  %s  %-12s %s  firmware %s%s", d.Serial, d.ProductType, d.Name, d.Version, active)
	}
	return nil
}

func setupLogging(level string) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	switch level {
	case "debug":
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	case "warn", "error":
		log.SetFlags(log.Ltime)
	}
}
