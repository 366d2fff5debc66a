package types

const (
	// ModuleName defines the module name
	ModuleName = "ratesync"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store key prefixes
var (
	// ConfigKey holds the registry-wide Config singleton ("config")
	ConfigKey = []byte{0x01}

	// RateHistoryKeyPrefix prefixes the per-denom rate history ("liquid_stake_rate")
	RateHistoryKeyPrefix = []byte{0x02}

	// AnomalyConfigKeyPrefix prefixes the per-denom anomaly config ("anomaly_config_by_denom")
	AnomalyConfigKeyPrefix = []byte{0x03}
)

// GetRateHistoryKey returns the store key for the rate history of a denom
func GetRateHistoryKey(denom string) []byte {
	return prefixedKey(RateHistoryKeyPrefix, denom)
}

// GetAnomalyConfigKey returns the store key for the anomaly config of a denom
func GetAnomalyConfigKey(denom string) []byte {
	return prefixedKey(AnomalyConfigKeyPrefix, denom)
}

func prefixedKey(prefix []byte, denom string) []byte {
	key := make([]byte, 0, len(prefix)+len(denom))
	key = append(key, prefix...)
	return append(key, denom...)
}
