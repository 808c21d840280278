package model

import "strings"

// GreenStatus classifies a merchant category code.
type GreenStatus string

const (
	StatusGreen    GreenStatus = "green"
	StatusNotGreen GreenStatus = "not-green"
)

// ParseGreenStatus normalizes a raw status cell to a GreenStatus.
// Source tables spell it as "green"/"not green" or as a boolean flag.
func ParseGreenStatus(raw string) (GreenStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "green", "true", "t", "1", "yes", "y":
		return StatusGreen, true
	case "not green", "not-green", "not_green", "notgreen", "false", "f", "0", "no", "n", "":
		return StatusNotGreen, true
	}
	return StatusNotGreen, false
}

// MCCEntry represents a row in the MCC reference table.
type MCCEntry struct {
	Code        int         `json:"code"`
	Status      GreenStatus `json:"status"`
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
}
