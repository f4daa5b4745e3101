package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrStateUnavailable is returned when a command merge is attempted before
// the first operating state has arrived. There is nothing to merge against,
// so the command cannot be built.
var ErrStateUnavailable = errors.New("no operating state available to merge against")

// modeReasonApp marks a command as originating from a local app rather
// than the device's own scheduler.
const modeReasonApp = "LAPP"

// Timestamp renders t the way device payloads expect: UTC, whole seconds,
// trailing Z.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// StateSet is a partial configuration change for a fan. Zero-valued fields
// are carried over from the last known operating state when the command is
// built; only the fields the caller sets are changed.
//
// Two fields do not fall back to the previous state: SleepTimer and
// ResetFilter default to the STET (leave unchanged) token instead. A
// SleepTimer of 0 is an explicit "cancel the timer" request, which is why
// the field is a pointer rather than a bare int.
type StateSet struct {
	FanMode           FanMode
	Speed             FanSpeed
	Oscillation       Oscillation
	NightMode         NightMode
	QualityTarget     QualityTarget
	StandbyMonitoring StandbyMonitoring
	SleepTimer        *int // minutes; 0 cancels a running timer
	ResetFilter       ResetFilter

	// Hot+Cool only; ignored when building commands for other fans.
	HeatMode   HeatMode
	HeatTarget string // tenths of Kelvin, see HeatTargetCelsius
	FocusMode  FocusMode
}

// SleepTimerMinutes is a convenience for filling StateSet.SleepTimer.
func SleepTimerMinutes(minutes int) *int {
	return &minutes
}

type commandEnvelope struct {
	Msg        string `json:"msg"`
	Time       string `json:"time"`
	ModeReason string `json:"mode-reason,omitempty"`
	Data       any    `json:"data,omitempty"`
}

// stateSetData is the data object of a STATE-SET command. SleepTimer is a
// JSON number when set and the string STET otherwise.
type stateSetData struct {
	FanMode           FanMode           `json:"fmod"`
	Speed             FanSpeed          `json:"fnsp"`
	Oscillation       Oscillation       `json:"oson"`
	SleepTimer        any               `json:"sltm"`
	StandbyMonitoring StandbyMonitoring `json:"rhtm"`
	ResetFilter       ResetFilter       `json:"rstf"`
	QualityTarget     QualityTarget     `json:"qtar"`
	NightMode         NightMode         `json:"nmod"`

	HeatMode   HeatMode  `json:"hmod,omitempty"`
	FocusMode  FocusMode `json:"ffoc,omitempty"`
	HeatTarget string    `json:"hmax,omitempty"`
}

func mergeStateSet(current *OperatingState, change StateSet) stateSetData {
	data := stateSetData{
		FanMode:           current.FanMode,
		Speed:             current.Speed,
		Oscillation:       current.Oscillation,
		SleepTimer:        "STET",
		StandbyMonitoring: current.StandbyMonitoring,
		ResetFilter:       ResetFilterDoNothing,
		QualityTarget:     current.QualityTarget,
		NightMode:         current.NightMode,
	}
	if change.FanMode != "" {
		data.FanMode = change.FanMode
	}
	if change.Speed != "" {
		data.Speed = change.Speed
	}
	if change.Oscillation != "" {
		data.Oscillation = change.Oscillation
	}
	if change.SleepTimer != nil {
		data.SleepTimer = *change.SleepTimer
	}
	if change.StandbyMonitoring != "" {
		data.StandbyMonitoring = change.StandbyMonitoring
	}
	if change.ResetFilter != "" {
		data.ResetFilter = change.ResetFilter
	}
	if change.QualityTarget != "" {
		data.QualityTarget = change.QualityTarget
	}
	if change.NightMode != "" {
		data.NightMode = change.NightMode
	}
	return data
}

// BuildStateSet builds a STATE-SET command for a fan without heating
// support by merging change over the last known operating state.
func BuildStateSet(current *OperatingState, change StateSet, now time.Time) ([]byte, error) {
	if current == nil {
		return nil, ErrStateUnavailable
	}
	return marshalStateSet(mergeStateSet(current, change), now)
}

// BuildHeatingStateSet builds a STATE-SET command for a Hot+Cool device.
// The heating fields merge the same way as the fan fields: carried over
// from current unless change sets them.
func BuildHeatingStateSet(current *HeatingOperatingState, change StateSet, now time.Time) ([]byte, error) {
	if current == nil {
		return nil, ErrStateUnavailable
	}

	data := mergeStateSet(&current.OperatingState, change)
	data.HeatMode = current.HeatMode
	data.FocusMode = current.FocusMode
	data.HeatTarget = current.HeatTarget
	if change.HeatMode != "" {
		data.HeatMode = change.HeatMode
	}
	if change.FocusMode != "" {
		data.FocusMode = change.FocusMode
	}
	if change.HeatTarget != "" {
		data.HeatTarget = change.HeatTarget
	}
	return marshalStateSet(data, now)
}

func marshalStateSet(data stateSetData, now time.Time) ([]byte, error) {
	payload, err := json.Marshal(commandEnvelope{
		Msg:        MsgStateSet,
		Time:       Timestamp(now),
		ModeReason: modeReasonApp,
		Data:       data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode STATE-SET command: %w", err)
	}
	return payload, nil
}

// BuildStateRequest builds a REQUEST-CURRENT-STATE command.
func BuildStateRequest(now time.Time) []byte {
	return mustMarshal(commandEnvelope{Msg: MsgRequestCurrentState, Time: Timestamp(now)})
}

// BuildSensorRequest builds the command that asks a fan to publish a fresh
// environmental sensor reading.
func BuildSensorRequest(now time.Time) []byte {
	return mustMarshal(commandEnvelope{Msg: MsgRequestSensorData, Time: Timestamp(now)})
}

// VacuumCommand is a cleaning cycle control verb.
type VacuumCommand string

const (
	VacuumCommandStart  VacuumCommand = "START"
	VacuumCommandPause  VacuumCommand = "PAUSE"
	VacuumCommandResume VacuumCommand = "RESUME"
	VacuumCommandAbort  VacuumCommand = "ABORT"
)

// BuildVacuumCommand builds a cleaning cycle command. START additionally
// requests an immediate full clean; the other verbs carry no body.
func BuildVacuumCommand(cmd VacuumCommand, now time.Time) []byte {
	env := struct {
		Msg           string `json:"msg"`
		Time          string `json:"time"`
		FullCleanType string `json:"fullCleanType,omitempty"`
	}{
		Msg:  string(cmd),
		Time: Timestamp(now),
	}
	if cmd == VacuumCommandStart {
		env.FullCleanType = "immediate"
	}
	return mustMarshal(env)
}

// BuildPowerModeCommand builds the STATE-SET command that changes the
// vacuum's default suction level. Vacuum commands carry no mode-reason.
func BuildPowerModeCommand(mode PowerMode, now time.Time) []byte {
	return mustMarshal(commandEnvelope{
		Msg:  MsgStateSet,
		Time: Timestamp(now),
		Data: struct {
			PowerMode PowerMode `json:"defaultVacuumPowerMode"`
		}{PowerMode: mode},
	})
}

// mustMarshal is for payloads built purely from strings, which cannot fail
// to encode.
func mustMarshal(v any) []byte {
	payload, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return payload
}
