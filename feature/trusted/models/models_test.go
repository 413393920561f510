package models

import (
	"testing"
	"time"

	"trusted-api/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestModels_PersistJSONColumns(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(All()...))

	when := time.Date(2014, 8, 31, 18, 0, 0, 0, time.UTC)
	match := Match{
		ID:          "2014casj_f1m2",
		EventID:     "2014casj",
		CompLevel:   "f",
		SetNumber:   1,
		MatchNumber: 2,
		Alliances: datatypes.NewJSONType(Alliances{
			Red:  Alliance{Teams: []string{"frc1", "frc2", "frc3"}, Score: 250},
			Blue: Alliance{Teams: []string{"frc4", "frc5", "frc6"}, Score: 260},
		}),
		ScoreBreakdown: datatypes.NewJSONType(Breakdown{"red": {"truss+catch": 20}}),
		Time:           &when,
		TimeString:     "11:00 AM",
		Videos:         []string{"abcdef"},
		TeamKeys:       []string{"frc1", "frc2", "frc3", "frc4", "frc5", "frc6"},
	}
	require.NoError(t, db.Create(&match).Error)

	var got Match
	require.NoError(t, db.Take(&got, "id = ?", "2014casj_f1m2").Error)
	assert.Equal(t, 250, got.Alliances.Data().Red.Score)
	assert.EqualValues(t, 20, got.ScoreBreakdown.Data()["red"]["truss+catch"])
	assert.Equal(t, []string{"abcdef"}, []string(got.Videos))
	require.NotNil(t, got.Time)
	assert.True(t, when.Equal(*got.Time))

	event := Event{
		ID:                 "2014casj",
		Year:               2014,
		EventShort:         "casj",
		Rankings:           [][]any{{"Rank", "Team"}, {1, "254"}},
		AllianceSelections: []AllianceSelection{{Picks: []string{"frc971", "frc254"}}},
	}
	require.NoError(t, db.Create(&event).Error)

	var gotEvent Event
	require.NoError(t, db.Take(&gotEvent, "id = ?", "2014casj").Error)
	assert.Equal(t, []any{"Rank", "Team"}, gotEvent.Rankings[0])
	assert.Equal(t, []any{float64(1), "254"}, gotEvent.Rankings[1])
	assert.Equal(t, []string{"frc971", "frc254"}, gotEvent.AllianceSelections[0].Picks)
}

func TestAll(t *testing.T) {
	assert.Len(t, All(), 4)
}
