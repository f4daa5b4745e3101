package device

// Kind groups product types by the command vocabulary they understand.
type Kind uint8

const (
	// KindFan covers the plain cooling fans.
	KindFan Kind = iota
	// KindHeatingFan covers fans with a heating element.
	KindHeatingFan
	// KindVacuum covers the robot vacuums.
	KindVacuum
)

func (k Kind) String() string {
	switch k {
	case KindFan:
		return "FAN"
	case KindHeatingFan:
		return "HEATING_FAN"
	case KindVacuum:
		return "VACUUM"
	}
	return "UNKNOWN"
}

// Capability describes how a session has to treat one model family.
type Capability struct {
	// Kind selects the command vocabulary.
	Kind Kind

	// StatusSuffix is the topic path below <productType>/<serial> that the
	// device publishes state on.
	StatusSuffix string

	// SensorPolling is set for models that answer environmental sensor
	// requests and should be polled in the background.
	SensorPolling bool

	// MQTTVersion is the protocol level the device firmware speaks:
	// 3 for MQTT 3.1, 4 for MQTT 3.1.1.
	MQTTVersion uint
}

var (
	fanCapability = Capability{
		Kind:          KindFan,
		StatusSuffix:  "status/current",
		SensorPolling: true,
		MQTTVersion:   4,
	}

	heatingFanCapability = Capability{
		Kind:          KindHeatingFan,
		StatusSuffix:  "status/current",
		SensorPolling: true,
		MQTTVersion:   4,
	}

	// The vacuum firmware only speaks MQTT 3.1 and publishes state on a
	// shorter topic. It has no pollable environmental sensors.
	vacuumCapability = Capability{
		Kind:         KindVacuum,
		StatusSuffix: "status",
		MQTTVersion:  3,
	}
)

// CapabilityFor returns the capability table for a product type. Unknown
// models are treated as plain fans so that new firmware keeps working at
// the lowest common level.
func CapabilityFor(p ProductType) Capability {
	switch p {
	case ProductHotCool:
		return heatingFanCapability
	case ProductVacuum:
		return vacuumCapability
	}
	return fanCapability
}
