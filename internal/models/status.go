package models

// StatusDetail pairs a machine-readable status code with its stable reason
// string. The taxonomy itself lives in status_map.go, generated from
// storages/status-map.csv by cmd/errorgen.
type StatusDetail struct {
	Code   string
	Reason string
}

func GetStatus(key string) StatusDetail {
	v, ok := MapStatuses[key]
	if !ok {
		return StatusDetail{
			Code:   "UNKNOWN",
			Reason: "unknown status mapping",
		}
	}
	return v
}
