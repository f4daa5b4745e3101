package wire

import (
	"fmt"
	"strconv"
)

// TemperatureUnit identifies the unit of a caller-supplied heat target.
type TemperatureUnit uint8

const (
	Celsius TemperatureUnit = iota
	Fahrenheit
)

// String returns the unit name.
func (u TemperatureUnit) String() string {
	switch u {
	case Celsius:
		return "celsius"
	case Fahrenheit:
		return "fahrenheit"
	default:
		return "unknown"
	}
}

// Accepted heat target ranges, inclusive.
const (
	MinCelsius    = 1
	MaxCelsius    = 37
	MinFahrenheit = 34
	MaxFahrenheit = 98
)

// InvalidTemperatureError reports a heat target outside the accepted range.
type InvalidTemperatureError struct {
	Unit  TemperatureUnit
	Value int
}

func (e *InvalidTemperatureError) Error() string {
	lo, hi := MinCelsius, MaxCelsius
	if e.Unit == Fahrenheit {
		lo, hi = MinFahrenheit, MaxFahrenheit
	}
	return fmt.Sprintf("%d is not a valid %s heat target: must be between %d and %d inclusive",
		e.Value, e.Unit, lo, hi)
}

// HeatTargetCelsius converts a Celsius temperature into the device's native
// tenths-of-Kelvin token. HeatTargetCelsius(25) returns "2980".
func HeatTargetCelsius(temperature int) (string, error) {
	if temperature < MinCelsius || temperature > MaxCelsius {
		return "", &InvalidTemperatureError{Unit: Celsius, Value: temperature}
	}
	return strconv.Itoa((temperature + 273) * 10), nil
}

// HeatTargetFahrenheit converts a Fahrenheit temperature into the device's
// native tenths-of-Kelvin token, truncating the Celsius conversion toward
// zero. HeatTargetFahrenheit(77) returns "2980".
func HeatTargetFahrenheit(temperature int) (string, error) {
	if temperature < MinFahrenheit || temperature > MaxFahrenheit {
		return "", &InvalidTemperatureError{Unit: Fahrenheit, Value: temperature}
	}
	return HeatTargetCelsius((temperature - 32) * 5 / 9)
}
