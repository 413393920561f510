package credentials

import (
	"slices"
	"strings"

	"gorm.io/datatypes"
)

// Capability is a named permission gating which reconciler a credential may invoke.
type Capability string

const (
	CapabilityEventData         Capability = "EVENT_DATA"
	CapabilityMatchVideo        Capability = "MATCH_VIDEO"
	CapabilityAllianceSelection Capability = "ALLIANCE_SELECTION"
	CapabilityAwards            Capability = "AWARDS"
)

// implied lists capabilities that a broader capability also satisfies.
var implied = map[Capability][]Capability{
	CapabilityEventData: {CapabilityAllianceSelection, CapabilityAwards},
}

// Credential is a pre-provisioned signing credential.
type Credential struct {
	ID           string                          `gorm:"primaryKey;size:64" json:"id"`
	Secret       string                          `gorm:"size:128;not null" json:"-"`
	Description  string                          `gorm:"size:255" json:"description"`
	EventIDs     datatypes.JSONSlice[string]     `json:"event_ids"`
	Capabilities datatypes.JSONSlice[Capability] `json:"capabilities"`
}

// TableName overrides the table name used by Credential.
func (Credential) TableName() string {
	return "api_credentials"
}

// AllowsEvent reports whether eventID is within scope. An empty scope allows every event.
func (c *Credential) AllowsEvent(eventID string) bool {
	if len(c.EventIDs) == 0 {
		return true
	}
	for _, id := range c.EventIDs {
		if strings.EqualFold(id, eventID) {
			return true
		}
	}
	return false
}

// Grants reports whether the credential satisfies required, directly or by implication.
func (c *Credential) Grants(required Capability) bool {
	for _, have := range c.Capabilities {
		if have == required || slices.Contains(implied[have], required) {
			return true
		}
	}
	return false
}
