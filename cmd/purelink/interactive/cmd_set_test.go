package interactive

import (
	"reflect"
	"testing"

	"github.com/purelink-protocol/purelink-go/pkg/wire"
)

func TestBuildStateSet(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want wire.StateSet
	}{
		{
			name: "FanOff",
			args: []string{"fan", "off"},
			want: wire.StateSet{FanMode: wire.FanModeOff},
		},
		{
			name: "FanOnMapsToFAN",
			args: []string{"fan", "on"},
			want: wire.StateSet{FanMode: wire.FanModeFan},
		},
		{
			name: "SpeedStep",
			args: []string{"speed", "7"},
			want: wire.StateSet{Speed: wire.FanSpeed7},
		},
		{
			name: "SpeedAuto",
			args: []string{"speed", "auto"},
			want: wire.StateSet{Speed: wire.FanSpeedAuto},
		},
		{
			name: "OscillationAlias",
			args: []string{"osc", "on"},
			want: wire.StateSet{Oscillation: wire.OscillationOn},
		},
		{
			name: "NightOff",
			args: []string{"night", "off"},
			want: wire.StateSet{NightMode: wire.NightModeOff},
		},
		{
			name: "QualityNormal",
			args: []string{"quality", "normal"},
			want: wire.StateSet{QualityTarget: wire.QualityTargetNormal},
		},
		{
			name: "StandbyOn",
			args: []string{"standby", "on"},
			want: wire.StateSet{StandbyMonitoring: wire.StandbyMonitoringOn},
		},
		{
			name: "SleepMinutes",
			args: []string{"sleep", "90"},
			want: wire.StateSet{SleepTimer: wire.SleepTimerMinutes(90)},
		},
		{
			name: "SleepOffCancels",
			args: []string{"sleep", "off"},
			want: wire.StateSet{SleepTimer: wire.SleepTimerMinutes(0)},
		},
		{
			name: "HeatOn",
			args: []string{"heat", "on"},
			want: wire.StateSet{HeatMode: wire.HeatModeOn},
		},
		{
			name: "FocusOff",
			args: []string{"focus", "off"},
			want: wire.StateSet{FocusMode: wire.FocusModeOff},
		},
		{
			name: "TargetCelsius",
			args: []string{"target", "25"},
			want: wire.StateSet{HeatTarget: "2980"},
		},
		{
			name: "MixedCaseInput",
			args: []string{"Fan", "AUTO"},
			want: wire.StateSet{FanMode: wire.FanModeAuto},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildStateSet(tt.args)
			if err != nil {
				t.Fatalf("buildStateSet(%v) error = %v", tt.args, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildStateSet(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestBuildStateSetRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"NoArgs", nil},
		{"MissingValue", []string{"speed"}},
		{"UnknownField", []string{"turbo", "on"}},
		{"SpeedZero", []string{"speed", "0"}},
		{"SpeedEleven", []string{"speed", "11"}},
		{"SpeedGarbage", []string{"speed", "fast"}},
		{"BadToggle", []string{"night", "dim"}},
		{"BadQuality", []string{"quality", "best"}},
		{"NegativeSleep", []string{"sleep", "-5"}},
		{"TargetTooHot", []string{"target", "40"}},
		{"TargetGarbage", []string{"target", "warm"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := buildStateSet(tt.args); err == nil {
				t.Errorf("buildStateSet(%v) error = nil, want error", tt.args)
			}
		})
	}
}

func TestParsePowerMode(t *testing.T) {
	tests := []struct {
		value   string
		want    wire.PowerMode
		wantErr bool
	}{
		{value: "quiet", want: wire.PowerModeQuiet},
		{value: "half", want: wire.PowerModeQuiet},
		{value: "MAX", want: wire.PowerModeMax},
		{value: "full", want: wire.PowerModeMax},
		{value: "turbo", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parsePowerMode(tt.value)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parsePowerMode(%q) error = nil, want error", tt.value)
			}
			continue
		}
		if err != nil {
			t.Errorf("parsePowerMode(%q) error = %v", tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePowerMode(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
