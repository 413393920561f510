package models

import (
	"time"

	"gorm.io/datatypes"
)

// Alliance is one side of a match. Score -1 means not yet played.
type Alliance struct {
	Teams []string `json:"teams"`
	Score int      `json:"score"`
}

// Alliances holds both sides of a match.
type Alliances struct {
	Red  Alliance `json:"red"`
	Blue Alliance `json:"blue"`
}

// Breakdown is a free-form map of score fields per side.
type Breakdown map[string]map[string]any

// AllianceSelection is one alliance captain and picks, in submission order.
type AllianceSelection struct {
	Picks []string `json:"picks"`
}

// Event is created outside this service and mutated in place by reconcilers.
type Event struct {
	ID                 string                                 `gorm:"primaryKey;size:16" json:"key"`
	Year               int                                    `gorm:"not null" json:"year"`
	EventShort         string                                 `gorm:"size:16;not null" json:"event_short"`
	Name               string                                 `gorm:"size:255" json:"name"`
	Rankings           datatypes.JSONSlice[[]any]             `json:"rankings"`
	AllianceSelections datatypes.JSONSlice[AllianceSelection] `json:"alliance_selections"`
	TeamKeys           datatypes.JSONSlice[string]            `json:"team_keys"`
	UpdatedAt          time.Time                              `json:"updated_at"`
}

// TableName overrides the table name used by Event.
func (Event) TableName() string {
	return "events"
}

// Match is owned by exactly one Event.
type Match struct {
	ID             string                        `gorm:"primaryKey;size:64" json:"key"`
	EventID        string                        `gorm:"size:16;not null;index" json:"event_key"`
	CompLevel      string                        `gorm:"size:2;not null" json:"comp_level"`
	SetNumber      int                           `gorm:"not null" json:"set_number"`
	MatchNumber    int                           `gorm:"not null" json:"match_number"`
	Alliances      datatypes.JSONType[Alliances] `json:"alliances"`
	ScoreBreakdown datatypes.JSONType[Breakdown] `json:"score_breakdown"`
	Time           *time.Time                    `json:"time"`
	TimeString     string                        `gorm:"size:32" json:"time_string"`
	Videos         datatypes.JSONSlice[string]   `json:"videos"`
	TeamKeys       datatypes.JSONSlice[string]   `json:"team_keys"`
	UpdatedAt      time.Time                     `json:"updated_at"`
}

// TableName overrides the table name used by Match.
func (Match) TableName() string {
	return "matches"
}

// Recipient is one (team, person) entry of an award.
type Recipient struct {
	TeamKey string `json:"team_key,omitempty"`
	Awardee string `json:"awardee,omitempty"`
}

// Award groups every recipient of one award type at an event.
type Award struct {
	ID         string                         `gorm:"primaryKey;size:96" json:"key"`
	EventID    string                         `gorm:"size:16;not null;index" json:"event_key"`
	AwardType  int                            `gorm:"not null" json:"award_type"`
	Name       string                         `gorm:"size:255" json:"name"`
	Recipients datatypes.JSONSlice[Recipient] `json:"recipients"`
	TeamKeys   datatypes.JSONSlice[string]    `json:"team_keys"`
	UpdatedAt  time.Time                      `json:"updated_at"`
}

// TableName overrides the table name used by Award.
func (Award) TableName() string {
	return "awards"
}

// EventTeam records that a team attends an event.
type EventTeam struct {
	ID        string    `gorm:"primaryKey;size:48" json:"key"`
	EventID   string    `gorm:"size:16;not null;index" json:"event_key"`
	TeamKey   string    `gorm:"size:16;not null" json:"team_key"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name used by EventTeam.
func (EventTeam) TableName() string {
	return "event_teams"
}

// All returns every model this service persists, for migrations and schema checks.
func All() []any {
	return []any{&Event{}, &Match{}, &Award{}, &EventTeam{}}
}
