package keys

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// AwardType is the numeric award taxonomy code.
type AwardType int

// AwardOther collects names that match no rule.
const AwardOther AwardType = -1

const (
	AwardChairmans AwardType = iota
	AwardWinner
	AwardFinalist
	AwardWoodieFlowers
	AwardDeansList
	AwardVolunteer
	AwardFounders
	AwardBartKamenMemorial
	AwardMakeItLoud
	AwardEngineeringInspiration
	AwardRookieAllStar
	AwardGraciousProfessionalism
	AwardCoopertition
	AwardJudges
	AwardHighestRookieSeed
	AwardRookieInspiration
	AwardIndustrialDesign
	AwardQuality
	AwardSafety
	AwardSportsmanship
	AwardCreativity
	AwardEngineeringExcellence
	AwardEntrepreneurship
	AwardExcellenceInDesign
	AwardExcellenceInDesignCAD
	AwardExcellenceInDesignAnimation
	AwardDrivingTomorrowsTechnology
	AwardImagery
	AwardMediaAndTechnology
	AwardInnovationInControl
	AwardSpirit
	AwardWebsite
	AwardVisualization
	AwardAutodeskInventor
	AwardFutureInnovator
	AwardExtraordinaryService
	AwardOutstandingCart
	AwardWSUAimHigher
	AwardLeadershipInControl
	AwardNumberOneSeed
	AwardIncrediblePlay
	AwardPeoplesChoiceAnimation
	AwardVisualizationRisingStar
)

// awardRule matches when every phrase in all occurs in the normalized name and
// no phrase in none does.
type awardRule struct {
	award AwardType
	all   []string
	none  []string
}

// Order matters: specific rules precede the general rules they overlap with.
var awardRules = []awardRule{
	{AwardChairmans, []string{"chairman"}, []string{"honorable", "finalist"}},
	{AwardEngineeringInspiration, []string{"engineering inspiration"}, nil},
	{AwardWoodieFlowers, []string{"woodie flowers"}, nil},
	{AwardDeansList, []string{"dean"}, nil},
	{AwardVolunteer, []string{"volunteer"}, nil},
	{AwardFounders, []string{"founder"}, nil},
	{AwardBartKamenMemorial, []string{"bart kamen"}, nil},
	{AwardMakeItLoud, []string{"make it loud"}, nil},
	{AwardRookieAllStar, []string{"rookie", "all star"}, nil},
	{AwardHighestRookieSeed, []string{"highest rookie seed"}, nil},
	{AwardRookieInspiration, []string{"rookie inspiration"}, nil},
	{AwardGraciousProfessionalism, []string{"gracious professionalism"}, nil},
	{AwardCoopertition, []string{"coopertition"}, nil},
	{AwardJudges, []string{"judge"}, nil},
	{AwardIndustrialDesign, []string{"industrial design"}, nil},
	{AwardQuality, []string{"quality"}, nil},
	{AwardSafety, []string{"safety"}, nil},
	{AwardSportsmanship, []string{"sportsmanship"}, nil},
	{AwardCreativity, []string{"creativity"}, nil},
	{AwardEngineeringExcellence, []string{"engineering excellence"}, nil},
	{AwardEngineeringExcellence, []string{"excellence in engineering"}, nil},
	{AwardEntrepreneurship, []string{"entrepreneurship"}, nil},
	{AwardExcellenceInDesignCAD, []string{"excellence in design", "cad"}, nil},
	{AwardExcellenceInDesignAnimation, []string{"excellence in design", "animation"}, nil},
	{AwardExcellenceInDesign, []string{"excellence in design"}, nil},
	{AwardDrivingTomorrowsTechnology, []string{"driving tomorrows technology"}, nil},
	{AwardImagery, []string{"imagery"}, nil},
	{AwardMediaAndTechnology, []string{"media", "technology"}, nil},
	{AwardInnovationInControl, []string{"innovation in control"}, nil},
	{AwardLeadershipInControl, []string{"leadership in control"}, nil},
	{AwardSpirit, []string{"spirit"}, nil},
	{AwardWebsite, []string{"website"}, nil},
	{AwardVisualizationRisingStar, []string{"visualization", "rising star"}, nil},
	{AwardVisualization, []string{"visualization"}, nil},
	{AwardAutodeskInventor, []string{"autodesk inventor"}, nil},
	{AwardFutureInnovator, []string{"future innovator"}, nil},
	{AwardExtraordinaryService, []string{"extraordinary service"}, nil},
	{AwardOutstandingCart, []string{"outstanding cart"}, nil},
	{AwardWSUAimHigher, []string{"aim higher"}, nil},
	{AwardNumberOneSeed, []string{"1 seed"}, []string{"rookie"}},
	{AwardIncrediblePlay, []string{"incredible play"}, nil},
	{AwardPeoplesChoiceAnimation, []string{"peoples choice", "animation"}, nil},
	{AwardWinner, []string{"winner"}, nil},
	{AwardFinalist, []string{"finalist"}, nil},
}

// NormalizeAwardName lowercases name, drops apostrophes, turns other punctuation
// into spaces and collapses whitespace.
func NormalizeAwardName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r == '\'' || r == '’':
			continue
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ResolveAwardType maps a free-text award name to its type, or AwardOther.
func ResolveAwardType(name string) AwardType {
	normalized := NormalizeAwardName(name)
	for _, rule := range awardRules {
		if rule.matches(normalized) {
			return rule.award
		}
	}
	return AwardOther
}

func (r awardRule) matches(normalized string) bool {
	for _, phrase := range r.all {
		if !strings.Contains(normalized, phrase) {
			return false
		}
	}
	for _, phrase := range r.none {
		if strings.Contains(normalized, phrase) {
			return false
		}
	}
	return true
}

// AwardKey returns the key and type for an award name.
// Unmatched names key on a hash of the normalized name so resubmission is stable.
func AwardKey(eventID, name string) (string, AwardType) {
	award := ResolveAwardType(name)
	if award != AwardOther {
		return eventID + "_" + strconv.Itoa(int(award)), award
	}
	return eventID + "_other_" + strconv.FormatUint(xxhash.Sum64String(NormalizeAwardName(name)), 16), AwardOther
}
