// Package discovery locates appliances on the local network via mDNS/DNS-SD.
//
// Every appliance runs an MQTT broker and announces it as a _dyson_mqtt._tcp
// service. The instance name encodes the model and serial:
//
//	<productType>_<serial>    e.g. "475_NN2-EU-ABC1234A"
//
// No TXT records are needed; the serial in the instance name is the only
// identity the library matches on.
//
// # Resolution strategy
//
// Appliances answer multicast queries unreliably, especially right after
// waking from standby. Resolve therefore runs a fresh browse per attempt
// instead of one long browse, up to Config.Attempts times, and returns the
// first entry whose serial matches.
package discovery
