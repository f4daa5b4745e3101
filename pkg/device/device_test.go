package device

import "testing"

func TestProductTypeKnown(t *testing.T) {
	tests := []struct {
		name        string
		productType ProductType
		want        bool
	}{
		{"CoolTower", ProductCoolTower, true},
		{"CoolDesk", ProductCoolDesk, true},
		{"HotCool", ProductHotCool, true},
		{"Vacuum", ProductVacuum, true},
		{"Unknown", ProductType("527"), false},
		{"Empty", ProductType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.productType.Known(); got != tt.want {
				t.Errorf("Known() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProductTypePredicates(t *testing.T) {
	if !ProductHotCool.SupportsHeating() {
		t.Error("SupportsHeating() = false for ProductHotCool")
	}
	if ProductCoolTower.SupportsHeating() {
		t.Error("SupportsHeating() = true for ProductCoolTower")
	}
	if !ProductVacuum.IsVacuum() {
		t.Error("IsVacuum() = false for ProductVacuum")
	}
	if ProductHotCool.IsVacuum() {
		t.Error("IsVacuum() = true for ProductHotCool")
	}
}

func TestInfoTopics(t *testing.T) {
	tests := []struct {
		name        string
		info        Info
		wantStatus  string
		wantCommand string
	}{
		{
			name:        "Fan",
			info:        Info{Serial: "AB1-EU-ABC1234A", ProductType: ProductCoolTower},
			wantStatus:  "475/AB1-EU-ABC1234A/status/current",
			wantCommand: "475/AB1-EU-ABC1234A/command",
		},
		{
			name:        "HeatingFan",
			info:        Info{Serial: "CD2-EU-DEF5678B", ProductType: ProductHotCool},
			wantStatus:  "455/CD2-EU-DEF5678B/status/current",
			wantCommand: "455/CD2-EU-DEF5678B/command",
		},
		{
			name:        "Vacuum",
			info:        Info{Serial: "EF3-EU-GHI9012C", ProductType: ProductVacuum},
			wantStatus:  "N223/EF3-EU-GHI9012C/status",
			wantCommand: "N223/EF3-EU-GHI9012C/command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.StatusTopic(); got != tt.wantStatus {
				t.Errorf("StatusTopic() = %q, want %q", got, tt.wantStatus)
			}
			if got := tt.info.CommandTopic(); got != tt.wantCommand {
				t.Errorf("CommandTopic() = %q, want %q", got, tt.wantCommand)
			}
		})
	}
}

func TestCapabilityFor(t *testing.T) {
	tests := []struct {
		name        string
		productType ProductType
		wantKind    Kind
		wantPolling bool
		wantVersion uint
	}{
		{"CoolTower", ProductCoolTower, KindFan, true, 4},
		{"CoolDesk", ProductCoolDesk, KindFan, true, 4},
		{"HotCool", ProductHotCool, KindHeatingFan, true, 4},
		{"Vacuum", ProductVacuum, KindVacuum, false, 3},
		{"UnknownFallsBackToFan", ProductType("999"), KindFan, true, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cap := CapabilityFor(tt.productType)
			if cap.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", cap.Kind, tt.wantKind)
			}
			if cap.SensorPolling != tt.wantPolling {
				t.Errorf("SensorPolling = %v, want %v", cap.SensorPolling, tt.wantPolling)
			}
			if cap.MQTTVersion != tt.wantVersion {
				t.Errorf("MQTTVersion = %d, want %d", cap.MQTTVersion, tt.wantVersion)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindFan, "FAN"},
		{KindHeatingFan, "HEATING_FAN"},
		{KindVacuum, "VACUUM"},
		{Kind(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint8(tt.kind), got, tt.want)
		}
	}
}
