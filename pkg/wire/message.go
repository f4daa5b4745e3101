package wire

import (
	"encoding/json"
	"fmt"
)

// Message discriminators carried in the msg field of every payload.
const (
	// Inbound
	MsgCurrentState      = "CURRENT-STATE"
	MsgStateChange       = "STATE-CHANGE"
	MsgEnvironmentalData = "ENVIRONMENTAL-CURRENT-SENSOR-DATA"
	MsgMapGlobal         = "MAP-GLOBAL"
	MsgMapGrid           = "MAP-GRID"
	MsgMapData           = "MAP-DATA"
	MsgTelemetryData     = "TELEMETRY-DATA"
	MsgGoodbye           = "GOODBYE"

	// Outbound
	MsgRequestCurrentState = "REQUEST-CURRENT-STATE"
	MsgRequestSensorData   = "REQUEST-PRODUCT-ENVIRONMENT-CURRENT-SENSOR-DATA"
	MsgStateSet            = "STATE-SET"
)

// MessageKind identifies what a decoded inbound payload contains.
type MessageKind uint8

const (
	// KindUnknown is an unrecognized discriminator. Unknown messages are
	// logged and dropped, never decoded or delivered to listeners.
	KindUnknown MessageKind = iota

	// KindOperatingState covers CURRENT-STATE and STATE-CHANGE. Fans decode
	// it into OperatingState (or HeatingOperatingState), vacuums into
	// CleaningState.
	KindOperatingState

	// KindSensorState is an environmental sensor reading.
	KindSensorState

	KindMapGlobal
	KindMapGrid
	KindMapData
	KindTelemetryData
	KindGoodbye
)

// String returns the message kind name.
func (k MessageKind) String() string {
	switch k {
	case KindOperatingState:
		return "OPERATING_STATE"
	case KindSensorState:
		return "SENSOR_STATE"
	case KindMapGlobal:
		return "MAP_GLOBAL"
	case KindMapGrid:
		return "MAP_GRID"
	case KindMapData:
		return "MAP_DATA"
	case KindTelemetryData:
		return "TELEMETRY_DATA"
	case KindGoodbye:
		return "GOODBYE"
	default:
		return "UNKNOWN"
	}
}

// Classify examines a payload's msg discriminator to determine its kind
// without fully decoding it. An unrecognized discriminator classifies as
// KindUnknown with a nil error; only malformed JSON is an error.
func Classify(payload []byte) (MessageKind, error) {
	var peek struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload, &peek); err != nil {
		return KindUnknown, fmt.Errorf("failed to classify message: %w", err)
	}

	switch peek.Msg {
	case MsgCurrentState, MsgStateChange:
		return KindOperatingState, nil
	case MsgEnvironmentalData:
		return KindSensorState, nil
	case MsgMapGlobal:
		return KindMapGlobal, nil
	case MsgMapGrid:
		return KindMapGrid, nil
	case MsgMapData:
		return KindMapData, nil
	case MsgTelemetryData:
		return KindTelemetryData, nil
	case MsgGoodbye:
		return KindGoodbye, nil
	default:
		return KindUnknown, nil
	}
}
