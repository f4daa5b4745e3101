package interactive

import (
	"context"
	"fmt"
	"time"

	"github.com/purelink-protocol/purelink-go/pkg/account"
	"github.com/purelink-protocol/purelink-go/pkg/discovery"
)

// cmdLogin handles the login command.
// Usage:
//   - login                          - Use credentials from the config file
//   - login <email> <password>       - Explicit credentials
//   - login <email> <password> <cc>  - Explicit credentials and country
func (c *Controller) cmdLogin(ctx context.Context, args []string) {
	cfg := account.Config{
		Email:    c.config.Account.Email,
		Password: c.config.Account.Password,
		Country:  c.config.Account.Country,
	}
	switch {
	case len(args) >= 3:
		cfg.Email, cfg.Password, cfg.Country = args[0], args[1], args[2]
	case len(args) == 2:
		cfg.Email, cfg.Password = args[0], args[1]
	case len(args) == 1:
		fmt.Fprintln(c.rl.Stdout(), "Usage: login [email password [country]]")
		return
	}
	if cfg.Email == "" || cfg.Password == "" {
		fmt.Fprintln(c.rl.Stdout(), "No credentials (pass them to login or set account in the config file)")
		return
	}

	client := account.New(cfg)

	loginCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	fmt.Fprintf(c.rl.Stdout(), "Logging in as %s...\n", cfg.Email)
	if err := client.Login(loginCtx); err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Login failed: %v\n", err)
		return
	}

	devices, err := client.Devices(loginCtx)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Failed to fetch device manifest: %v\n", err)
		return
	}

	c.account = client
	c.manifest = devices
	fmt.Fprintf(c.rl.Stdout(), "Logged in, account has %d device(s)\n", len(devices))
}

// cmdDevices lists manifest devices and static config entries.
func (c *Controller) cmdDevices() {
	if len(c.manifest) == 0 && len(c.config.Devices) == 0 {
		fmt.Fprintln(c.rl.Stdout(), "No known devices (use 'login' or add devices to the config file)")
		return
	}

	if len(c.manifest) > 0 {
		fmt.Fprintln(c.rl.Stdout(), "Cloud manifest:")
		for _, d := range c.manifest {
			active := ""
			if !d.Active {
				active = " (inactive)"
			}
			fmt.Fprintf(c.rl.Stdout(), "  %s  %-6s %s  firmware %s%s\n",
				d.Serial, d.ProductType, d.Name, d.Version, active)
		}
	}

	if len(c.config.Devices) > 0 {
		fmt.Fprintln(c.rl.Stdout(), "Config entries:")
		for _, d := range c.config.Devices {
			host := ""
			if d.Host != "" {
				host = "  @" + d.Endpoint()
			}
			fmt.Fprintf(c.rl.Stdout(), "  %s  %-6s %s%s\n", d.Serial, d.ProductType, d.Name, host)
		}
	}
}

// cmdDiscover browses the local network for appliance brokers.
func (c *Controller) cmdDiscover(ctx context.Context) {
	resolver, err := discovery.NewMDNSResolver(discovery.Config{})
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Discovery error: %v\n", err)
		return
	}

	fmt.Fprintln(c.rl.Stdout(), "Browsing for appliances (5s)...")
	browseCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	found, err := resolver.Browse(browseCtx)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Discovery error: %v\n", err)
		return
	}

	count := 0
	for endpoint := range found {
		count++
		fmt.Fprintf(c.rl.Stdout(), "  %d. %s (serial: %s, addr: %s)\n",
			count, endpoint.InstanceName, endpoint.Serial, endpoint.Addr())
	}
	if count == 0 {
		fmt.Fprintln(c.rl.Stdout(), "No appliances found")
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "Found %d appliance(s)\n", count)
}
