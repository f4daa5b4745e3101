package wire

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Decode errors shared by the state decoders.
var (
	ErrNoProductState = errors.New("payload has no product-state object")
)

// OperatingState is a snapshot of a fan's control settings decoded from one
// CURRENT-STATE or STATE-CHANGE message.
//
// JSON shape:
//
//	{
//	  "msg": "CURRENT-STATE",
//	  "time": "2023-05-01T10:00:00Z",
//	  "product-state": {
//	    "fmod": "AUTO",            // or ["OFF", "AUTO"] in STATE-CHANGE
//	    "fnst": "FAN",
//	    ...
//	  }
//	}
type OperatingState struct {
	FanMode           FanMode
	FanState          FanState
	NightMode         NightMode
	Speed             FanSpeed
	Oscillation       Oscillation
	FilterLife        string // remaining filter hours, as reported
	QualityTarget     QualityTarget
	StandbyMonitoring StandbyMonitoring
}

// HeatingOperatingState extends OperatingState with the Hot+Cool fields.
type HeatingOperatingState struct {
	OperatingState

	Tilt       TiltState
	FocusMode  FocusMode
	HeatTarget string // tenths of Kelvin, see HeatTargetCelsius
	HeatMode   HeatMode
	HeatState  HeatState
}

// productState is the raw product-state map. Values are bare strings in
// CURRENT-STATE and [previous, current] pairs in STATE-CHANGE.
type productState map[string]json.RawMessage

func decodeProductState(payload []byte) (productState, error) {
	var doc struct {
		ProductState productState `json:"product-state"`
	}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode state message: %w", err)
	}
	if doc.ProductState == nil {
		return nil, ErrNoProductState
	}
	return doc.ProductState, nil
}

// current extracts the current value of a field: the second element of a
// [previous, current] pair, or the bare value itself. Missing fields
// decode to the empty string.
func (s productState) current(field string) string {
	raw, ok := s[field]
	if !ok {
		return ""
	}

	var value string
	if err := json.Unmarshal(raw, &value); err == nil {
		return value
	}

	var pair []string
	if err := json.Unmarshal(raw, &pair); err != nil || len(pair) == 0 {
		return ""
	}
	if len(pair) == 1 {
		return pair[0]
	}
	return pair[1]
}

func operatingState(state productState) OperatingState {
	return OperatingState{
		FanMode:           FanMode(state.current("fmod")),
		FanState:          FanState(state.current("fnst")),
		NightMode:         NightMode(state.current("nmod")),
		Speed:             FanSpeed(state.current("fnsp")),
		Oscillation:       Oscillation(state.current("oson")),
		FilterLife:        state.current("filf"),
		QualityTarget:     QualityTarget(state.current("qtar")),
		StandbyMonitoring: StandbyMonitoring(state.current("rhtm")),
	}
}

// DecodeOperatingState decodes a CURRENT-STATE or STATE-CHANGE payload from
// a fan without heating support.
func DecodeOperatingState(payload []byte) (*OperatingState, error) {
	state, err := decodeProductState(payload)
	if err != nil {
		return nil, err
	}
	decoded := operatingState(state)
	return &decoded, nil
}

// DecodeHeatingOperatingState decodes a CURRENT-STATE or STATE-CHANGE
// payload from a Hot+Cool device.
func DecodeHeatingOperatingState(payload []byte) (*HeatingOperatingState, error) {
	state, err := decodeProductState(payload)
	if err != nil {
		return nil, err
	}
	return &HeatingOperatingState{
		OperatingState: operatingState(state),
		Tilt:           TiltState(state.current("tilt")),
		FocusMode:      FocusMode(state.current("ffoc")),
		HeatTarget:     state.current("hmax"),
		HeatMode:       HeatMode(state.current("hmod")),
		HeatState:      HeatState(state.current("hsta")),
	}, nil
}
