package wire

import (
	"encoding/json"
	"fmt"
	"time"
)

// GridPosition is a 2D coordinate on the vacuum's cleaning map.
type GridPosition struct {
	X int
	Y int
}

// CleaningState is a snapshot of a robot vacuum's cleaning cycle decoded
// from one CURRENT-STATE or STATE-CHANGE message. Unlike fans the fields
// sit at the top level of the payload, with the mode under state
// (CURRENT-STATE) or newstate (STATE-CHANGE).
type CleaningState struct {
	Mode          CleaningMode
	FullCleanType string
	Position      *GridPosition // nil when the payload has no position
	PowerMode     PowerMode
	CleanID       string
	BatteryLevel  int // percent
}

// DecodeCleaningState decodes a vacuum CURRENT-STATE or STATE-CHANGE
// payload. Unrecognized mode and power mode tokens are kept as raw strings;
// callers can detect them with CleaningMode.Known and PowerMode.Known.
func DecodeCleaningState(payload []byte) (*CleaningState, error) {
	var doc struct {
		State          string `json:"state"`
		NewState       string `json:"newstate"`
		FullCleanType  string `json:"fullCleanType"`
		GlobalPosition []int  `json:"globalPosition"`
		PowerMode      string `json:"currentVacuumPowerMode"`
		CleanID        string `json:"cleanId"`
		BatteryLevel   int    `json:"batteryChargeLevel"`
	}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode cleaning state: %w", err)
	}

	mode := doc.State
	if mode == "" {
		mode = doc.NewState
	}

	decoded := &CleaningState{
		Mode:          CleaningMode(mode),
		FullCleanType: doc.FullCleanType,
		PowerMode:     PowerMode(doc.PowerMode),
		CleanID:       doc.CleanID,
		BatteryLevel:  doc.BatteryLevel,
	}
	if len(doc.GlobalPosition) == 2 {
		decoded.Position = &GridPosition{X: doc.GlobalPosition[0], Y: doc.GlobalPosition[1]}
	}
	return decoded, nil
}

// MapGlobal reports the vacuum's position and heading on the global map.
type MapGlobal struct {
	GridID  string    `json:"gridID"`
	CleanID string    `json:"cleanId"`
	X       int       `json:"x"`
	Y       int       `json:"y"`
	Angle   int       `json:"angle"`
	Time    time.Time `json:"time"`
}

// DecodeMapGlobal decodes a MAP-GLOBAL payload.
func DecodeMapGlobal(payload []byte) (*MapGlobal, error) {
	var m MapGlobal
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, fmt.Errorf("failed to decode map global: %w", err)
	}
	return &m, nil
}

// MapGrid describes the dimensions of a cleaning map grid.
type MapGrid struct {
	GridID     string    `json:"gridID"`
	CleanID    string    `json:"cleanId"`
	Resolution int       `json:"resolution"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Time       time.Time `json:"time"`

	Anchor *GridPosition `json:"-"` // nil when the payload has no anchor
}

// DecodeMapGrid decodes a MAP-GRID payload.
func DecodeMapGrid(payload []byte) (*MapGrid, error) {
	var doc struct {
		MapGrid
		Anchor []int `json:"anchor"`
	}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode map grid: %w", err)
	}

	m := doc.MapGrid
	if len(doc.Anchor) == 2 {
		m.Anchor = &GridPosition{X: doc.Anchor[0], Y: doc.Anchor[1]}
	}
	return &m, nil
}

// MapContent is the payload body of a MAP-DATA message, typically
// gzip-compressed JSON.
type MapContent struct {
	Type     string `json:"content-type"`
	Encoding string `json:"content-encoding"`
	Content  string `json:"content"`
}

// MapData carries a chunk of cleaning map content.
type MapData struct {
	GridID  string     `json:"gridID"`
	CleanID string     `json:"cleanId"`
	Data    MapContent `json:"data"`
	Time    time.Time  `json:"time"`
}

// DecodeMapData decodes a MAP-DATA payload.
func DecodeMapData(payload []byte) (*MapData, error) {
	var m MapData
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, fmt.Errorf("failed to decode map data: %w", err)
	}
	return &m, nil
}

// TelemetryData is an opaque diagnostic record published by the vacuum.
// The field meanings depend on the record ID and are not documented.
type TelemetryData struct {
	ID     string    `json:"id"`
	Field1 string    `json:"field1"`
	Field2 string    `json:"field2"`
	Field3 string    `json:"field3"`
	Field4 string    `json:"field4"`
	Time   time.Time `json:"time"`
}

// DecodeTelemetryData decodes a TELEMETRY-DATA payload.
func DecodeTelemetryData(payload []byte) (*TelemetryData, error) {
	var t TelemetryData
	if err := json.Unmarshal(payload, &t); err != nil {
		return nil, fmt.Errorf("failed to decode telemetry data: %w", err)
	}
	return &t, nil
}

// Goodbye announces that the vacuum is about to drop the connection.
type Goodbye struct {
	Reason string    `json:"reason"`
	Time   time.Time `json:"time"`
}

// DecodeGoodbye decodes a GOODBYE payload.
func DecodeGoodbye(payload []byte) (*Goodbye, error) {
	var g Goodbye
	if err := json.Unmarshal(payload, &g); err != nil {
		return nil, fmt.Errorf("failed to decode goodbye: %w", err)
	}
	return &g, nil
}
