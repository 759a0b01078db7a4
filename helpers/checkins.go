package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/wrapstats-org/wrapstats/stats"
)

// ============================================================================
// CHECK-IN HELPER - Parses raw payload bytes into []stats.CheckIn
// ============================================================================
// Consumer fetches the payload from wherever it lives (API export, file,
// cache dump). This helper converts the raw bytes into typed check-in
// records for the engine. Two shapes are accepted:
//
//   [ {...}, {...} ]                                   bare array
//   {"response": {"checkins": {"items": [ ... ]}}}     API envelope
//
// Absent keys simply leave zero values - no field is mandatory.
// ============================================================================

type envelope struct {
	Response struct {
		Checkins struct {
			Count int             `json:"count"`
			Items []stats.CheckIn `json:"items"`
		} `json:"checkins"`
	} `json:"response"`
}

// ParseCheckins decodes a raw check-in payload into engine records.
// Record order is preserved - ranking tie-breaks depend on it.
func ParseCheckins(data []byte) ([]stats.CheckIn, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var checkins []stats.CheckIn
		if err := json.Unmarshal(trimmed, &checkins); err != nil {
			return nil, fmt.Errorf("parse check-in array: %w", err)
		}
		return checkins, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("parse check-in envelope: %w", err)
	}
	return env.Response.Checkins.Items, nil
}
