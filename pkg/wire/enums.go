package wire

import "fmt"

// Enumerated field values are typed strings holding the exact token sent on
// the wire. Decoders never reject an unlisted token; it is kept as-is so new
// firmware values survive a decode/compare round trip.

// FanMode selects how the fan motor is driven.
type FanMode string

const (
	FanModeOff  FanMode = "OFF"
	FanModeFan  FanMode = "FAN"
	FanModeAuto FanMode = "AUTO"
)

// FanState reports whether the motor is currently running. AUTO mode can
// idle the motor while the mode stays AUTO.
type FanState string

const (
	FanStateOff     FanState = "OFF"
	FanStateRunning FanState = "FAN"
)

// FanSpeed is a zero-padded speed step or AUTO.
type FanSpeed string

const (
	FanSpeed1    FanSpeed = "0001"
	FanSpeed2    FanSpeed = "0002"
	FanSpeed3    FanSpeed = "0003"
	FanSpeed4    FanSpeed = "0004"
	FanSpeed5    FanSpeed = "0005"
	FanSpeed6    FanSpeed = "0006"
	FanSpeed7    FanSpeed = "0007"
	FanSpeed8    FanSpeed = "0008"
	FanSpeed9    FanSpeed = "0009"
	FanSpeed10   FanSpeed = "0010"
	FanSpeedAuto FanSpeed = "AUTO"
)

// SpeedValue converts a 1-10 step into its wire token.
func SpeedValue(step int) FanSpeed {
	return FanSpeed(fmt.Sprintf("%04d", step))
}

// Oscillation toggles side-to-side sweep.
type Oscillation string

const (
	OscillationOn  Oscillation = "ON"
	OscillationOff Oscillation = "OFF"
)

// NightMode dims the display and caps the speed.
type NightMode string

const (
	NightModeOn  NightMode = "ON"
	NightModeOff NightMode = "OFF"
)

// QualityTarget is the air quality level AUTO mode maintains.
type QualityTarget string

const (
	QualityTargetBetter QualityTarget = "0001"
	QualityTargetHigh   QualityTarget = "0003"
	QualityTargetNormal QualityTarget = "0004"
)

// StandbyMonitoring keeps the sensors sampling while the fan is off.
type StandbyMonitoring string

const (
	StandbyMonitoringOn  StandbyMonitoring = "ON"
	StandbyMonitoringOff StandbyMonitoring = "OFF"
)

// ResetFilter resets the filter life counter after a filter change.
// DoNothing is the token a command carries when no reset is requested.
type ResetFilter string

const (
	ResetFilterReset     ResetFilter = "RSTF"
	ResetFilterDoNothing ResetFilter = "STET"
)

// FocusMode narrows the heater airflow to a single stream.
type FocusMode string

const (
	FocusModeOn  FocusMode = "ON"
	FocusModeOff FocusMode = "OFF"
)

// HeatMode enables heating on Hot+Cool devices.
type HeatMode string

const (
	HeatModeOn  HeatMode = "HEAT"
	HeatModeOff HeatMode = "OFF"
)

// HeatState reports whether the heater element is currently active.
type HeatState string

const (
	HeatStateOn  HeatState = "HEAT"
	HeatStateOff HeatState = "OFF"
)

// TiltState reports whether the device detected being tipped over.
type TiltState string

const (
	TiltStateTilted TiltState = "TILT"
	TiltStateOK     TiltState = "OK"
)

// PowerMode is the vacuum suction level.
type PowerMode string

const (
	PowerModeQuiet PowerMode = "halfPower"
	PowerModeMax   PowerMode = "fullPower"
)

// Known reports whether the value is one of the documented power modes.
func (m PowerMode) Known() bool {
	return m == PowerModeQuiet || m == PowerModeMax
}

// CleaningMode is the vacuum's cleaning cycle state.
type CleaningMode string

const (
	CleaningModeInactiveCharging     CleaningMode = "INACTIVE_CHARGING"
	CleaningModeInactiveCharged      CleaningMode = "INACTIVE_CHARGED"
	CleaningModeFullCleanInitiated   CleaningMode = "FULL_CLEAN_INITIATED"
	CleaningModeFullCleanRunning     CleaningMode = "FULL_CLEAN_RUNNING"
	CleaningModeFullCleanPaused      CleaningMode = "FULL_CLEAN_PAUSED"
	CleaningModeFullCleanAborted     CleaningMode = "FULL_CLEAN_ABORTED"
	CleaningModeFullCleanFinished    CleaningMode = "FULL_CLEAN_FINISHED"
	CleaningModeFaultUserRecoverable CleaningMode = "FAULT_USER_RECOVERABLE"
	CleaningModeFaultReplaceOnDock   CleaningMode = "FAULT_REPLACE_ON_DOCK"
)

// Known reports whether the value is one of the documented cleaning modes.
func (m CleaningMode) Known() bool {
	switch m {
	case CleaningModeInactiveCharging, CleaningModeInactiveCharged,
		CleaningModeFullCleanInitiated, CleaningModeFullCleanRunning,
		CleaningModeFullCleanPaused, CleaningModeFullCleanAborted,
		CleaningModeFullCleanFinished, CleaningModeFaultUserRecoverable,
		CleaningModeFaultReplaceOnDock:
		return true
	}
	return false
}

// Cleaning reports whether the mode is part of an active clean cycle
// (running or paused).
func (m CleaningMode) Cleaning() bool {
	return m == CleaningModeFullCleanInitiated ||
		m == CleaningModeFullCleanRunning ||
		m == CleaningModeFullCleanPaused
}
