package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/purelink-protocol/purelink-go/pkg/device"
	"github.com/purelink-protocol/purelink-go/pkg/session"
	"github.com/purelink-protocol/purelink-go/pkg/wire"
)

// cmdConnect opens a session to a device from the config file or the
// cloud manifest.
func (c *Controller) cmdConnect(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: connect <serial>")
		return
	}
	if c.sess != nil {
		fmt.Fprintf(c.rl.Stdout(), "Already connected to %s (use 'disconnect' first)\n", c.info.Serial)
		return
	}

	serial := args[0]
	info, endpoint, err := c.resolveDevice(serial)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "%v\n", err)
		return
	}

	opts := session.Options{
		Endpoint:       endpoint,
		ProtocolLogger: c.protocol,
		Logger:         c.logger,
	}
	sess := session.New(info, opts)

	where := endpoint
	if where == "" {
		where = "via mDNS discovery"
	}
	fmt.Fprintf(c.rl.Stdout(), "Connecting to %s (%s)...\n", info.Serial, where)

	connectCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	if err := sess.Connect(connectCtx); err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Connect failed: %v\n", err)
		return
	}

	c.sess = sess
	c.info = info
	fmt.Fprintf(c.rl.Stdout(), "Connected to %s (%s) at %s\n",
		info.Serial, sess.Capability().Kind, sess.Endpoint())
}

// resolveDevice finds the connection details for a serial: a static config
// entry wins (it may pin a host), then the cloud manifest.
func (c *Controller) resolveDevice(serial string) (device.Info, string, error) {
	if entry, ok := c.config.Device(serial); ok && entry.Credential != "" {
		return entry.Info(), entry.Endpoint(), nil
	}
	for _, d := range c.manifest {
		if d.Serial != serial {
			continue
		}
		info, err := d.Info()
		if err != nil {
			return device.Info{}, "", err
		}
		// A config entry without a credential can still pin the host.
		if entry, ok := c.config.Device(serial); ok {
			return info, entry.Endpoint(), nil
		}
		return info, "", nil
	}
	return device.Info{}, "", fmt.Errorf("unknown device: %s (try 'login' or 'devices')", serial)
}

// cmdState prints the device's last reported operating state.
func (c *Controller) cmdState() {
	sess := c.current()
	if sess == nil {
		return
	}
	out := c.rl.Stdout()

	switch sess.Capability().Kind {
	case device.KindVacuum:
		state := sess.CleaningState()
		if state == nil {
			fmt.Fprintln(out, "No state received yet")
			return
		}
		fmt.Fprintf(out, "Mode:       %s\n", state.Mode)
		fmt.Fprintf(out, "Power mode: %s\n", state.PowerMode)
		fmt.Fprintf(out, "Battery:    %d%%\n", state.BatteryLevel)
		if state.Position != nil {
			fmt.Fprintf(out, "Position:   (%d, %d)\n", state.Position.X, state.Position.Y)
		}
		if state.FullCleanType != "" {
			fmt.Fprintf(out, "Clean type: %s\n", state.FullCleanType)
		}

	case device.KindHeatingFan:
		state := sess.HeatingState()
		if state == nil {
			fmt.Fprintln(out, "No state received yet")
			return
		}
		printFanState(out, &state.OperatingState)
		fmt.Fprintf(out, "Heat mode:   %s (heater %s)\n", state.HeatMode, state.HeatState)
		fmt.Fprintf(out, "Heat target: %s\n", formatHeatTarget(state.HeatTarget))
		fmt.Fprintf(out, "Focus:       %s\n", state.FocusMode)
		fmt.Fprintf(out, "Tilt:        %s\n", state.Tilt)

	default:
		state := sess.CurrentState()
		if state == nil {
			fmt.Fprintln(out, "No state received yet")
			return
		}
		printFanState(out, state)
	}
}

// cmdSensors prints the cached environmental readings.
func (c *Controller) cmdSensors() {
	sess := c.current()
	if sess == nil {
		return
	}
	out := c.rl.Stdout()

	if sess.Capability().Kind == device.KindVacuum {
		fmt.Fprintln(out, "Vacuums have no environmental sensors")
		return
	}

	sensors := sess.EnvironmentalState()
	if sensors == nil {
		fmt.Fprintln(out, "No sensor data received yet")
		return
	}
	if sensors.Temperature > 0 {
		fmt.Fprintf(out, "Temperature: %.1fC\n", sensors.Temperature-273.15)
	} else {
		fmt.Fprintln(out, "Temperature: sensor off")
	}
	fmt.Fprintf(out, "Humidity:    %d%%\n", sensors.Humidity)
	fmt.Fprintf(out, "Dust:        %d\n", sensors.Dust)
	fmt.Fprintf(out, "VOC:         %d\n", sensors.VOC)
	if sensors.SleepTimer > 0 {
		fmt.Fprintf(out, "Sleep timer: %d min remaining\n", sensors.SleepTimer)
	}
}

// cmdDisconnect closes the active session.
func (c *Controller) cmdDisconnect() {
	sess := c.current()
	if sess == nil {
		return
	}
	sess.Disconnect()
	c.sess = nil
	fmt.Fprintf(c.rl.Stdout(), "Disconnected from %s\n", c.info.Serial)
}

func printFanState(out io.Writer, state *wire.OperatingState) {
	fmt.Fprintf(out, "Fan mode:    %s (motor %s)\n", state.FanMode, state.FanState)
	fmt.Fprintf(out, "Speed:       %s\n", state.Speed)
	fmt.Fprintf(out, "Oscillation: %s\n", state.Oscillation)
	fmt.Fprintf(out, "Night mode:  %s\n", state.NightMode)
	fmt.Fprintf(out, "Quality:     %s\n", state.QualityTarget)
	fmt.Fprintf(out, "Standby:     %s\n", state.StandbyMonitoring)
	fmt.Fprintf(out, "Filter life: %s h\n", state.FilterLife)
}

// formatHeatTarget renders a tenths-of-Kelvin token as Celsius.
func formatHeatTarget(token string) string {
	v, err := strconv.Atoi(token)
	if err != nil {
		return token
	}
	return fmt.Sprintf("%dC", v/10-273)
}
