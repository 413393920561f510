package keys

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"trusted-api/core/apperr"
)

// CompLevel is a competition stage.
type CompLevel string

const (
	CompLevelQual        CompLevel = "qm"
	CompLevelEighthFinal CompLevel = "ef"
	CompLevelQuarter     CompLevel = "qf"
	CompLevelSemi        CompLevel = "sf"
	CompLevelFinal       CompLevel = "f"
)

// ParseCompLevel validates a submitted comp_level.
func ParseCompLevel(raw string) (CompLevel, error) {
	switch level := CompLevel(strings.ToLower(strings.TrimSpace(raw))); level {
	case CompLevelQual, CompLevelEighthFinal, CompLevelQuarter, CompLevelSemi, CompLevelFinal:
		return level, nil
	default:
		return "", apperr.Validation("invalid comp_level %q", raw)
	}
}

var (
	eventKeyPattern      = regexp.MustCompile(`^[0-9]{4}[a-z0-9]+$`)
	shortMatchKeyPattern = regexp.MustCompile(`^(?:qm([0-9]+)|(ef|qf|sf|f)([0-9]+)m([0-9]+))$`)
	teamKeyPattern       = regexp.MustCompile(`^[a-z]+[0-9]+[a-z]?$`)
)

// ValidEventKey reports whether key looks like <year><short-code>.
func ValidEventKey(key string) bool {
	return eventKeyPattern.MatchString(key)
}

// ShortMatchKey builds the match key without the event prefix.
func ShortMatchKey(level CompLevel, set, match int) (string, error) {
	if match < 1 {
		return "", apperr.Validation("match_number must be positive, got %d", match)
	}
	if level == CompLevelQual {
		return fmt.Sprintf("qm%d", match), nil
	}
	if set < 1 {
		return "", apperr.Validation("set_number must be positive, got %d", set)
	}
	return fmt.Sprintf("%s%dm%d", level, set, match), nil
}

// MatchKey builds <event>_qm<match> or <event>_<level><set>m<match>.
func MatchKey(eventID, compLevel string, set, match int) (string, error) {
	level, err := ParseCompLevel(compLevel)
	if err != nil {
		return "", err
	}
	short, err := ShortMatchKey(level, set, match)
	if err != nil {
		return "", err
	}
	return eventID + "_" + short, nil
}

// ParsedMatchKey is a short key split into its parts.
type ParsedMatchKey struct {
	Level CompLevel
	Set   int
	Match int
}

// ParseShortMatchKey validates a short key such as qm1 or sf2m3.
func ParseShortMatchKey(short string) (ParsedMatchKey, error) {
	m := shortMatchKeyPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(short)))
	if m == nil {
		return ParsedMatchKey{}, apperr.Validation("invalid match key %q", short)
	}
	if m[1] != "" {
		n, _ := strconv.Atoi(m[1])
		return ParsedMatchKey{Level: CompLevelQual, Set: 1, Match: n}, nil
	}
	set, _ := strconv.Atoi(m[3])
	n, _ := strconv.Atoi(m[4])
	return ParsedMatchKey{Level: CompLevel(m[2]), Set: set, Match: n}, nil
}

// FullMatchKey prefixes a validated short key with the event.
func FullMatchKey(eventID, short string) (string, error) {
	parsed, err := ParseShortMatchKey(short)
	if err != nil {
		return "", err
	}
	canonical, err := ShortMatchKey(parsed.Level, parsed.Set, parsed.Match)
	if err != nil {
		return "", err
	}
	return eventID + "_" + canonical, nil
}

// TrimEvent strips the "<event>_" prefix from a full key.
func TrimEvent(eventID, key string) string {
	return strings.TrimPrefix(key, eventID+"_")
}

// TeamKey lowercases a team identifier and adds the frc prefix to bare
// numbers. Surrounding whitespace is ignored; any other separator is rejected.
func TeamKey(raw string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key != "" && key[0] >= '0' && key[0] <= '9' {
		key = "frc" + key
	}
	if !teamKeyPattern.MatchString(key) {
		return "", apperr.Validation("invalid team key %q", raw)
	}
	return key, nil
}

// TeamKeyFromValue accepts a decoded JSON team: a string, or a positive
// whole number such as 254.
func TeamKeyFromValue(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return TeamKey(t)
	case float64:
		if t != math.Trunc(t) || t < 1 || t > math.MaxInt32 {
			return "", apperr.Validation("invalid team number %v", t)
		}
		return TeamKey(strconv.FormatInt(int64(t), 10))
	case int:
		if t < 1 {
			return "", apperr.Validation("invalid team number %d", t)
		}
		return TeamKey(strconv.Itoa(t))
	case json.Number:
		n, err := t.Int64()
		if err != nil || n < 1 {
			return "", apperr.Validation("invalid team number %s", t)
		}
		return TeamKey(t.String())
	default:
		return "", apperr.Validation("team must be a string or number, got %T", v)
	}
}

// TeamNumber strips the non-numeric prefix of a team key (frc254 -> 254).
func TeamNumber(teamKey string) string {
	return strings.TrimLeftFunc(teamKey, func(r rune) bool {
		return r < '0' || r > '9'
	})
}

// EventTeamKey builds <event>_<teamkey>.
func EventTeamKey(eventID, team string) (string, error) {
	teamKey, err := TeamKey(team)
	if err != nil {
		return "", err
	}
	return eventID + "_" + teamKey, nil
}
