package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrNoSensorData is returned when an ENVIRONMENTAL-CURRENT-SENSOR-DATA
// payload carries no data object.
var ErrNoSensorData = errors.New("payload has no sensor data object")

// SensorState is a snapshot of a fan's environmental readings.
//
// JSON shape:
//
//	{
//	  "msg": "ENVIRONMENTAL-CURRENT-SENSOR-DATA",
//	  "time": "2023-05-01T10:00:00Z",
//	  "data": {
//	    "tact": "2967",  // tenths of Kelvin, or OFF
//	    "hact": "0054",  // percent, or OFF
//	    "pact": "0004",
//	    "vact": "0005",  // or INIT while sensors warm up
//	    "sltm": "0028"   // minutes, or OFF
//	  }
//	}
type SensorState struct {
	Humidity    int     // percent, 0 while the sensor reports OFF
	VOC         int     // volatile organic compounds level, 0 while INIT
	Temperature float64 // Kelvin, 0 while the sensor reports OFF
	Dust        int
	SleepTimer  int // remaining minutes, 0 when no timer is set
}

// DecodeSensorState decodes an ENVIRONMENTAL-CURRENT-SENSOR-DATA payload.
// The OFF and INIT placeholder readings decode to zero values; any other
// non-numeric reading is a decode failure.
func DecodeSensorState(payload []byte) (*SensorState, error) {
	var doc struct {
		Data productState `json:"data"`
	}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode sensor message: %w", err)
	}
	if doc.Data == nil {
		return nil, ErrNoSensorData
	}

	humidity, err := sensorInt(doc.Data.current("hact"), "OFF")
	if err != nil {
		return nil, fmt.Errorf("invalid humidity reading: %w", err)
	}
	voc, err := sensorInt(doc.Data.current("vact"), "INIT")
	if err != nil {
		return nil, fmt.Errorf("invalid VOC reading: %w", err)
	}
	dust, err := sensorInt(doc.Data.current("pact"), "")
	if err != nil {
		return nil, fmt.Errorf("invalid dust reading: %w", err)
	}
	sleepTimer, err := sensorInt(doc.Data.current("sltm"), "OFF")
	if err != nil {
		return nil, fmt.Errorf("invalid sleep timer reading: %w", err)
	}

	temperature := 0.0
	if raw := doc.Data.current("tact"); raw != "OFF" {
		tenths, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid temperature reading: %w", err)
		}
		temperature = tenths / 10
	}

	return &SensorState{
		Humidity:    humidity,
		VOC:         voc,
		Temperature: temperature,
		Dust:        dust,
		SleepTimer:  sleepTimer,
	}, nil
}

// sensorInt parses a numeric reading, mapping the given placeholder token
// to zero.
func sensorInt(raw, placeholder string) (int, error) {
	if placeholder != "" && raw == placeholder {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
