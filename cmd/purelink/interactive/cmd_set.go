package interactive

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/purelink-protocol/purelink-go/pkg/wire"
)

// cmdSet changes one fan setting. The remaining state fields are merged
// from the device's current state by the session.
func (c *Controller) cmdSet(args []string) {
	sess := c.current()
	if sess == nil {
		return
	}

	change, err := buildStateSet(args)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "%v\n", err)
		return
	}

	if err := sess.SetConfiguration(change); err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Command failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "Sent: set %s\n", strings.Join(args, " "))
}

// cmdResetFilter resets the filter life counter after a filter change.
func (c *Controller) cmdResetFilter() {
	sess := c.current()
	if sess == nil {
		return
	}
	if err := sess.SetConfiguration(wire.StateSet{ResetFilter: wire.ResetFilterReset}); err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Command failed: %v\n", err)
		return
	}
	fmt.Fprintln(c.rl.Stdout(), "Filter life counter reset")
}

// cmdVacuum controls a cleaning run.
func (c *Controller) cmdVacuum(args []string) {
	sess := c.current()
	if sess == nil {
		return
	}
	if len(args) < 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: vacuum start|pause|resume|abort|power quiet|max")
		return
	}

	var err error
	switch strings.ToLower(args[0]) {
	case "start":
		err = sess.StartCleaning()
	case "pause":
		err = sess.PauseCleaning()
	case "resume":
		err = sess.ResumeCleaning()
	case "abort":
		err = sess.AbortCleaning()
	case "power":
		if len(args) < 2 {
			fmt.Fprintln(c.rl.Stdout(), "Usage: vacuum power quiet|max")
			return
		}
		var mode wire.PowerMode
		mode, err = parsePowerMode(args[1])
		if err == nil {
			err = sess.SetPowerMode(mode)
		}
	default:
		fmt.Fprintf(c.rl.Stdout(), "Unknown vacuum command: %s\n", args[0])
		return
	}

	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Command failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "Sent: vacuum %s\n", strings.Join(args, " "))
}

// buildStateSet parses a "set <field> <value>" invocation into the fan
// state change it describes.
func buildStateSet(args []string) (wire.StateSet, error) {
	if len(args) < 2 {
		return wire.StateSet{}, fmt.Errorf("usage: set <field> <value> (type 'help' for fields)")
	}

	field := strings.ToLower(args[0])
	value := strings.ToLower(args[1])

	var change wire.StateSet
	switch field {
	case "fan":
		switch value {
		case "off":
			change.FanMode = wire.FanModeOff
		case "on":
			change.FanMode = wire.FanModeFan
		case "auto":
			change.FanMode = wire.FanModeAuto
		default:
			return change, fmt.Errorf("invalid fan mode: %s (use: off, on, auto)", value)
		}

	case "speed":
		if value == "auto" {
			change.Speed = wire.FanSpeedAuto
			break
		}
		step, err := strconv.Atoi(value)
		if err != nil || step < 1 || step > 10 {
			return change, fmt.Errorf("invalid speed: %s (use: 1-10 or auto)", value)
		}
		change.Speed = wire.SpeedValue(step)

	case "oscillation", "osc":
		on, err := parseToggle(value)
		if err != nil {
			return change, err
		}
		change.Oscillation = wire.OscillationOff
		if on {
			change.Oscillation = wire.OscillationOn
		}

	case "night":
		on, err := parseToggle(value)
		if err != nil {
			return change, err
		}
		change.NightMode = wire.NightModeOff
		if on {
			change.NightMode = wire.NightModeOn
		}

	case "quality":
		switch value {
		case "better":
			change.QualityTarget = wire.QualityTargetBetter
		case "high":
			change.QualityTarget = wire.QualityTargetHigh
		case "normal":
			change.QualityTarget = wire.QualityTargetNormal
		default:
			return change, fmt.Errorf("invalid quality target: %s (use: better, high, normal)", value)
		}

	case "standby":
		on, err := parseToggle(value)
		if err != nil {
			return change, err
		}
		change.StandbyMonitoring = wire.StandbyMonitoringOff
		if on {
			change.StandbyMonitoring = wire.StandbyMonitoringOn
		}

	case "sleep":
		if value == "off" {
			change.SleepTimer = wire.SleepTimerMinutes(0)
			break
		}
		minutes, err := strconv.Atoi(value)
		if err != nil || minutes < 0 {
			return change, fmt.Errorf("invalid sleep timer: %s (use: minutes or off)", value)
		}
		change.SleepTimer = wire.SleepTimerMinutes(minutes)

	case "heat":
		on, err := parseToggle(value)
		if err != nil {
			return change, err
		}
		change.HeatMode = wire.HeatModeOff
		if on {
			change.HeatMode = wire.HeatModeOn
		}

	case "focus":
		on, err := parseToggle(value)
		if err != nil {
			return change, err
		}
		change.FocusMode = wire.FocusModeOff
		if on {
			change.FocusMode = wire.FocusModeOn
		}

	case "target":
		celsius, err := strconv.Atoi(value)
		if err != nil {
			return change, fmt.Errorf("invalid heat target: %s (use: degrees Celsius)", value)
		}
		token, err := wire.HeatTargetCelsius(celsius)
		if err != nil {
			return change, err
		}
		change.HeatTarget = token

	default:
		return change, fmt.Errorf("unknown field: %s (type 'help' for fields)", field)
	}

	return change, nil
}

func parseToggle(value string) (bool, error) {
	switch value {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid value: %s (use: on, off)", value)
	}
}

func parsePowerMode(value string) (wire.PowerMode, error) {
	switch strings.ToLower(value) {
	case "quiet", "half":
		return wire.PowerModeQuiet, nil
	case "max", "full":
		return wire.PowerModeMax, nil
	default:
		return "", fmt.Errorf("invalid power mode: %s (use: quiet, max)", value)
	}
}
