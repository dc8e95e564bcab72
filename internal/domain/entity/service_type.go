package entity

// ServiceType is a kind of repair or maintenance work a provider offers.
type ServiceType string

const (
	ServiceOilChange          ServiceType = "oil_change"
	ServiceBrakeRepair        ServiceType = "brake_repair"
	ServiceEngineDiagnostics  ServiceType = "engine_diagnostics"
	ServiceTireService        ServiceType = "tire_service"
	ServiceBatteryReplacement ServiceType = "battery_replacement"
	ServiceTransmission       ServiceType = "transmission"
	ServiceGeneralMaintenance ServiceType = "general_maintenance"
	ServiceBodyWork           ServiceType = "body_work"
	ServiceOther              ServiceType = "other"
)

var knownServiceTypes = map[ServiceType]struct{}{
	ServiceOilChange:          {},
	ServiceBrakeRepair:        {},
	ServiceEngineDiagnostics:  {},
	ServiceTireService:        {},
	ServiceBatteryReplacement: {},
	ServiceTransmission:       {},
	ServiceGeneralMaintenance: {},
	ServiceBodyWork:           {},
	ServiceOther:              {},
}

// IsValid reports whether s is one of the known service types.
func (s ServiceType) IsValid() bool {
	_, ok := knownServiceTypes[s]

	return ok
}

func (s ServiceType) String() string {
	return string(s)
}
