// Package device describes the supported appliance models and the
// per-model capabilities a session needs: status topic layout, command
// vocabulary, sensor polling and MQTT protocol level.
package device

// ProductType is the model identifier reported by the cloud manifest and
// embedded in every MQTT topic.
type ProductType string

const (
	// ProductCoolTower is the tower cooling fan (475).
	ProductCoolTower ProductType = "475"

	// ProductCoolDesk is the desk cooling fan (469).
	ProductCoolDesk ProductType = "469"

	// ProductHotCool is the fan/heater combo (455).
	ProductHotCool ProductType = "455"

	// ProductVacuum is the 360-camera robot vacuum (N223).
	ProductVacuum ProductType = "N223"
)

// Known reports whether the product type is one this library has a
// capability table for. Unknown models fall back to plain fan handling.
func (p ProductType) Known() bool {
	switch p {
	case ProductCoolTower, ProductCoolDesk, ProductHotCool, ProductVacuum:
		return true
	}
	return false
}

// SupportsHeating reports whether the model accepts heating commands.
func (p ProductType) SupportsHeating() bool {
	return p == ProductHotCool
}

// IsVacuum reports whether the model is a robot vacuum.
func (p ProductType) IsVacuum() bool {
	return p == ProductVacuum
}

// Info identifies one appliance and carries everything a session needs to
// reach it: the MQTT username is the serial and the password is the
// decrypted local credential.
type Info struct {
	Serial      string
	Name        string
	ProductType ProductType
	Version     string
	Credential  string
}

// CommandTopic is the topic commands are published to. It is the same for
// every model.
func (i Info) CommandTopic() string {
	return string(i.ProductType) + "/" + i.Serial + "/command"
}

// StatusTopic is the topic the device publishes state messages on.
func (i Info) StatusTopic() string {
	return string(i.ProductType) + "/" + i.Serial + "/" + CapabilityFor(i.ProductType).StatusSuffix
}
