// Package interactive provides the interactive command shell for the
// purelink CLI.
package interactive

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"

	"github.com/purelink-protocol/purelink-go/pkg/account"
	"github.com/purelink-protocol/purelink-go/pkg/config"
	"github.com/purelink-protocol/purelink-go/pkg/device"
	purelinklog "github.com/purelink-protocol/purelink-go/pkg/log"
	"github.com/purelink-protocol/purelink-go/pkg/session"
)

// Controller handles interactive mode for purelink.
type Controller struct {
	config   *config.Config
	protocol purelinklog.Logger
	rl       *readline.Instance
	logger   *slog.Logger

	account  *account.Client
	manifest []account.Device

	sess *session.Session
	info device.Info
}

// New creates a new interactive shell.
func New(cfg *config.Config, level slog.Level, protocolLogger purelinklog.Logger) (*Controller, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "purelink> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Controller{
		config:   cfg,
		protocol: protocolLogger,
		rl:       rl,
		logger: slog.New(slog.NewTextHandler(rl.Stdout(), &slog.HandlerOptions{
			Level: level,
		})),
	}, nil
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (c *Controller) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Close tears down the active session and the terminal.
func (c *Controller) Close() {
	if c.sess != nil {
		c.sess.Disconnect()
		c.sess = nil
	}
	c.rl.Close()
}

// Run starts the interactive command loop.
func (c *Controller) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			c.printHelp()

		case "login":
			c.cmdLogin(ctx, args)

		case "devices", "list", "ls":
			c.cmdDevices()

		case "discover":
			c.cmdDiscover(ctx)

		case "connect":
			c.cmdConnect(ctx, args)

		case "state", "st":
			c.cmdState()

		case "sensors", "env":
			c.cmdSensors()

		case "set":
			c.cmdSet(args)

		case "resetfilter":
			c.cmdResetFilter()

		case "vacuum", "vac":
			c.cmdVacuum(args)

		case "disconnect":
			c.cmdDisconnect()

		case "quit", "exit", "q":
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(c.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (c *Controller) printHelp() {
	fmt.Fprintln(c.rl.Stdout(), `
Purelink Commands:
  Account & Discovery:
    login [email password [country]] - Authenticate and fetch the manifest
    devices                          - List known devices
    discover                         - Browse the local network (mDNS)

  Session:
    connect <serial>                 - Open a session to a device
    state                            - Show the device's operating state
    sensors                          - Show environmental sensor readings
    disconnect                       - Close the current session

  Fan Control:
    set fan off|on|auto              - Fan mode
    set speed 1-10|auto              - Fan speed
    set oscillation on|off           - Oscillation
    set night on|off                 - Night mode
    set quality better|high|normal   - Air quality target (AUTO mode)
    set standby on|off               - Standby monitoring
    set sleep <minutes>|off          - Sleep timer
    set heat on|off                  - Heat mode (Hot+Cool only)
    set focus on|off                 - Focused airflow (Hot+Cool only)
    set target <celsius>             - Heat target (Hot+Cool only)
    resetfilter                      - Reset the filter life counter

  Vacuum Control:
    vacuum start|pause|resume|abort  - Cleaning cycle
    vacuum power quiet|max           - Suction power

  General:
    help                             - Show this help
    quit                             - Exit`)
}

// current returns the active session, printing a hint when there is none.
func (c *Controller) current() *session.Session {
	if c.sess == nil {
		fmt.Fprintln(c.rl.Stdout(), "Not connected (use: connect <serial>)")
		return nil
	}
	return c.sess
}
