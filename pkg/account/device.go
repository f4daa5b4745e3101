package account

import (
	"fmt"

	"github.com/purelink-protocol/purelink-go/pkg/credential"
	"github.com/purelink-protocol/purelink-go/pkg/device"
)

// Device is one manifest entry as the cloud API reports it.
// LocalCredentials is encrypted; Decrypt or Info unwrap it.
type Device struct {
	Active              bool   `json:"Active"`
	Serial              string `json:"Serial"`
	Name                string `json:"Name"`
	ScaleUnit           string `json:"ScaleUnit"`
	Version             string `json:"Version"`
	LocalCredentials    string `json:"LocalCredentials"`
	AutoUpdate          bool   `json:"AutoUpdate"`
	NewVersionAvailable bool   `json:"NewVersionAvailable"`
	ProductType         string `json:"ProductType"`
}

// Decrypt returns the appliance's local broker password.
func (d Device) Decrypt() (string, error) {
	return credential.Decrypt(d.LocalCredentials)
}

// Info converts the manifest entry into the identity a session is
// constructed from, decrypting the local credential.
func (d Device) Info() (device.Info, error) {
	password, err := d.Decrypt()
	if err != nil {
		return device.Info{}, fmt.Errorf("failed to decrypt credentials for %s: %w", d.Serial, err)
	}
	return device.Info{
		Serial:      d.Serial,
		Name:        d.Name,
		ProductType: device.ProductType(d.ProductType),
		Version:     d.Version,
		Credential:  password,
	}, nil
}
