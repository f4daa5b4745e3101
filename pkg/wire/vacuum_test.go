package wire

import (
	"testing"
	"time"
)

func TestDecodeCleaningState(t *testing.T) {
	payload := `{
		"msg": "CURRENT-STATE",
		"time": "2017-07-16T07:31:35Z",
		"state": "FULL_CLEAN_INITIATED",
		"fullCleanType": "immediate",
		"cleanId": "0e000000-4a47-3845-5548-454131323334",
		"currentVacuumPowerMode": "halfPower",
		"defaultVacuumPowerMode": "halfPower",
		"globalPosition": [6, 37],
		"batteryChargeLevel": 95
	}`

	state, err := DecodeCleaningState([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeCleaningState() error = %v", err)
	}

	if state.Mode != CleaningModeFullCleanInitiated {
		t.Errorf("Mode = %q, want %q", state.Mode, CleaningModeFullCleanInitiated)
	}
	if !state.Mode.Known() {
		t.Error("Mode should be a known cleaning mode")
	}
	if !state.Mode.Cleaning() {
		t.Error("FULL_CLEAN_INITIATED should count as cleaning")
	}
	if state.FullCleanType != "immediate" {
		t.Errorf("FullCleanType = %q, want %q", state.FullCleanType, "immediate")
	}
	if state.Position == nil || state.Position.X != 6 || state.Position.Y != 37 {
		t.Errorf("Position = %+v, want (6, 37)", state.Position)
	}
	if state.PowerMode != PowerModeQuiet {
		t.Errorf("PowerMode = %q, want %q", state.PowerMode, PowerModeQuiet)
	}
	if state.CleanID != "0e000000-4a47-3845-5548-454131323334" {
		t.Errorf("CleanID = %q", state.CleanID)
	}
	if state.BatteryLevel != 95 {
		t.Errorf("BatteryLevel = %d, want 95", state.BatteryLevel)
	}
}

func TestDecodeCleaningStateChange(t *testing.T) {
	payload := `{
		"msg": "STATE-CHANGE",
		"time": "2017-07-16T07:33:35Z",
		"oldstate": "FULL_CLEAN_RUNNING",
		"newstate": "FULL_CLEAN_PAUSED",
		"fullCleanType": "immediate",
		"cleanId": "0e000000-4a47-3845-5548-454131323334",
		"currentVacuumPowerMode": "fullPower",
		"batteryChargeLevel": 40
	}`

	state, err := DecodeCleaningState([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeCleaningState() error = %v", err)
	}

	// STATE-CHANGE carries the mode under newstate.
	if state.Mode != CleaningModeFullCleanPaused {
		t.Errorf("Mode = %q, want %q", state.Mode, CleaningModeFullCleanPaused)
	}
	if state.PowerMode != PowerModeMax {
		t.Errorf("PowerMode = %q, want %q", state.PowerMode, PowerModeMax)
	}
	if state.Position != nil {
		t.Errorf("Position = %+v, want nil when absent", state.Position)
	}
}

func TestDecodeCleaningStateUnknownTokens(t *testing.T) {
	payload := `{
		"msg": "CURRENT-STATE",
		"state": "MYSTERY_MODE",
		"fullCleanType": "",
		"cleanId": "",
		"currentVacuumPowerMode": "turboPower",
		"batteryChargeLevel": 100
	}`

	state, err := DecodeCleaningState([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeCleaningState() error = %v", err)
	}

	if state.Mode != CleaningMode("MYSTERY_MODE") {
		t.Errorf("Mode = %q, want raw token kept", state.Mode)
	}
	if state.Mode.Known() {
		t.Error("unknown mode should not report Known()")
	}
	if state.PowerMode != PowerMode("turboPower") {
		t.Errorf("PowerMode = %q, want raw token kept", state.PowerMode)
	}
	if state.PowerMode.Known() {
		t.Error("unknown power mode should not report Known()")
	}
}

func TestDecodeMapGlobal(t *testing.T) {
	payload := `{
		"msg": "MAP-GLOBAL",
		"time": "2017-07-16T07:31:35Z",
		"gridID": "1",
		"cleanId": "0e000000-4a47-3845-5548-454131323334",
		"x": 0,
		"y": 0,
		"angle": -180
	}`

	m, err := DecodeMapGlobal([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeMapGlobal() error = %v", err)
	}

	if m.GridID != "1" {
		t.Errorf("GridID = %q, want %q", m.GridID, "1")
	}
	if m.X != 0 || m.Y != 0 {
		t.Errorf("position = (%d, %d), want (0, 0)", m.X, m.Y)
	}
	if m.Angle != -180 {
		t.Errorf("Angle = %d, want -180", m.Angle)
	}
	want := time.Date(2017, 7, 16, 7, 31, 35, 0, time.UTC)
	if !m.Time.Equal(want) {
		t.Errorf("Time = %v, want %v", m.Time, want)
	}
}

func TestDecodeMapGrid(t *testing.T) {
	payload := `{
		"msg": "MAP-GRID",
		"time": "2017-07-16T07:34:31Z",
		"gridID": "1",
		"cleanId": "0e000000-4a47-3845-5548-454131323334",
		"resolution": 43,
		"width": 144,
		"height": 144,
		"anchor": [16, 72]
	}`

	m, err := DecodeMapGrid([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeMapGrid() error = %v", err)
	}

	if m.Resolution != 43 {
		t.Errorf("Resolution = %d, want 43", m.Resolution)
	}
	if m.Width != 144 || m.Height != 144 {
		t.Errorf("size = %dx%d, want 144x144", m.Width, m.Height)
	}
	if m.Anchor == nil || m.Anchor.X != 16 || m.Anchor.Y != 72 {
		t.Errorf("Anchor = %+v, want (16, 72)", m.Anchor)
	}
}

func TestDecodeMapData(t *testing.T) {
	payload := `{
		"msg": "MAP-DATA",
		"time": "2017-07-16T07:34:00Z",
		"gridID": "1",
		"cleanId": "0e000000-4a47-3845-5548-454131323334",
		"data": {
			"content-type": "application/json",
			"content-encoding": "gzip",
			"content": "xxx"
		}
	}`

	m, err := DecodeMapData([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeMapData() error = %v", err)
	}

	if m.Data.Type != "application/json" {
		t.Errorf("content type = %q", m.Data.Type)
	}
	if m.Data.Encoding != "gzip" {
		t.Errorf("content encoding = %q", m.Data.Encoding)
	}
	if m.Data.Content != "xxx" {
		t.Errorf("content = %q", m.Data.Content)
	}
}

func TestDecodeTelemetryData(t *testing.T) {
	payload := `{
		"msg": "TELEMETRY-DATA",
		"time": "2017-07-16T07:34:34Z",
		"id": "40010000",
		"field1": "1.0.0",
		"field2": "2.000000",
		"field3": "",
		"field4": "0e000000-4a47-3845-5548-454131323334"
	}`

	d, err := DecodeTelemetryData([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeTelemetryData() error = %v", err)
	}

	if d.ID != "40010000" {
		t.Errorf("ID = %q, want %q", d.ID, "40010000")
	}
	if d.Field1 != "1.0.0" || d.Field2 != "2.000000" || d.Field3 != "" {
		t.Errorf("fields = %q, %q, %q", d.Field1, d.Field2, d.Field3)
	}
}

func TestDecodeGoodbye(t *testing.T) {
	payload := `{
		"msg": "GOODBYE",
		"time": "2017-07-30T16:00:13Z",
		"reason": "UNKNOWN"
	}`

	g, err := DecodeGoodbye([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeGoodbye() error = %v", err)
	}

	if g.Reason != "UNKNOWN" {
		t.Errorf("Reason = %q, want %q", g.Reason, "UNKNOWN")
	}
	want := time.Date(2017, 7, 30, 16, 0, 13, 0, time.UTC)
	if !g.Time.Equal(want) {
		t.Errorf("Time = %v, want %v", g.Time, want)
	}
}
