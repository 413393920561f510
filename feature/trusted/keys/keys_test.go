package keys

import (
	"encoding/json"
	"testing"

	"trusted-api/core/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchKey(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		set     int
		match   int
		want    string
		wantErr bool
	}{
		{"Qual", "qm", 1, 1, "2014casj_qm1", false},
		{"QualIgnoresSet", "qm", 7, 42, "2014casj_qm42", false},
		{"Final", "f", 1, 2, "2014casj_f1m2", false},
		{"Semi", "SF", 2, 1, "2014casj_sf2m1", false},
		{"Eighth", "ef", 8, 3, "2014casj_ef8m3", false},
		{"UnknownLevel", "xx", 1, 1, "", true},
		{"ZeroMatch", "qm", 1, 0, "", true},
		{"ZeroSet", "qf", 0, 1, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchKey("2014casj", tt.level, tt.set, tt.match)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFullMatchKey(t *testing.T) {
	tests := []struct {
		short   string
		want    string
		wantErr bool
	}{
		{"qm1", "2014casj_qm1", false},
		{"f1m1", "2014casj_f1m1", false},
		{" SF2M3 ", "2014casj_sf2m3", false},
		{"qm0", "", true},
		{"qm", "", true},
		{"2014casj_qm1", "", true},
		{"sf1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.short, func(t *testing.T) {
			got, err := FullMatchKey("2014casj", tt.short)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, "2014casj_"+TrimEvent("2014casj", got))
		})
	}
}

func TestTeamKey(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"frc254", "frc254", false},
		{"FRC254", "frc254", false},
		{"254", "frc254", false},
		{" FRC971 ", "frc971", false},
		{"frc-971", "", true},
		{"25-4", "", true},
		{"254.5", "", true},
		{"frc1678b", "frc1678b", false},
		{"", "", true},
		{"frc", "", true},
		{"team", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := TeamKey(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTeamKeyFromValue(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    string
		wantErr bool
	}{
		{"String", "frc254", "frc254", false},
		{"Whole float", float64(254), "frc254", false},
		{"Int", 971, "frc971", false},
		{"JSON number", json.Number("604"), "frc604", false},
		{"Fractional float", 254.5, "", true},
		{"Zero", float64(0), "", true},
		{"Negative", float64(-254), "", true},
		{"Fractional JSON number", json.Number("254.5"), "", true},
		{"Bool", true, "", true},
		{"Nil", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TeamKeyFromValue(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTeamNumber(t *testing.T) {
	assert.Equal(t, "254", TeamNumber("frc254"))
	assert.Equal(t, "1678b", TeamNumber("frc1678b"))
	assert.Equal(t, "971", TeamNumber("971"))
}

func TestEventTeamKey(t *testing.T) {
	key, err := EventTeamKey("2014casj", "254")
	require.NoError(t, err)
	assert.Equal(t, "2014casj_frc254", key)

	_, err = EventTeamKey("2014casj", "!!")
	assert.Error(t, err)
}

func TestValidEventKey(t *testing.T) {
	assert.True(t, ValidEventKey("2014casj"))
	assert.True(t, ValidEventKey("2019cmptx"))
	assert.False(t, ValidEventKey("casj"))
	assert.False(t, ValidEventKey("2014CASJ"))
	assert.False(t, ValidEventKey("2014"))
}

func TestNormalizeAwardName(t *testing.T) {
	assert.Equal(t, "regional chairmans award", NormalizeAwardName("Regional Chairman's Award"))
	assert.Equal(t, "rookie all star award", NormalizeAwardName("  Rookie   All-Star  Award!"))
	assert.Equal(t, "deans list finalist", NormalizeAwardName("Dean’s List Finalist"))
}

func TestResolveAwardType(t *testing.T) {
	tests := []struct {
		name string
		want AwardType
	}{
		{"Winner", AwardWinner},
		{"Regional Winners", AwardWinner},
		{"Regional Finalists", AwardFinalist},
		{"Regional Chairman's Award", AwardChairmans},
		{"Chairman's Award Finalist", AwardFinalist},
		{"Volunteer Blahblah", AwardVolunteer},
		{"FIRST Dean's List Finalist Award", AwardDeansList},
		{"Woodie Flowers Finalist Award", AwardWoodieFlowers},
		{"Rookie All Star Award", AwardRookieAllStar},
		{"Highest Rookie Seed", AwardHighestRookieSeed},
		{"Rookie Inspiration Award", AwardRookieInspiration},
		{"Excellence in Design Award sponsored by Autodesk (3D CAD)", AwardExcellenceInDesignCAD},
		{"Excellence in Design Award sponsored by Autodesk (Animation)", AwardExcellenceInDesignAnimation},
		{"Excellence in Engineering Award sponsored by Delphi", AwardEngineeringExcellence},
		{"Judges' Award", AwardJudges},
		{"Industrial Safety Award sponsored by Underwriters Laboratories", AwardSafety},
		{"Innovation in Control Award sponsored by Rockwell Automation", AwardInnovationInControl},
		{"Best Hat", AwardOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAwardType(tt.name))
		})
	}
}

func TestAwardKey(t *testing.T) {
	key, award := AwardKey("2014casj", "Winner")
	assert.Equal(t, "2014casj_1", key)
	assert.Equal(t, AwardWinner, award)

	key, _ = AwardKey("2014casj", "Volunteer Blahblah")
	assert.Equal(t, "2014casj_5", key)

	other1, award := AwardKey("2014casj", "Best Hat!")
	other2, _ := AwardKey("2014casj", "best  hat")
	assert.Equal(t, AwardOther, award)
	assert.Equal(t, other1, other2)
	assert.Contains(t, other1, "2014casj_other_")

	other3, _ := AwardKey("2014casj", "Best Shoes")
	assert.NotEqual(t, other1, other3)
}
