// Package ingest stores the stats a post-game scraper extracts from a match
// report: teams, line-ups, goals, bookings and team stat sets.
package ingest

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// GameStatSet is the document the scraper writes for one game. Keys mirror
// the column headers of the match report.
type GameStatSet struct {
	StatLink           string            `json:"stat_link"`
	GameDate           *time.Time        `json:"game_date"`
	HomeTeam           TeamStats         `json:"home_team"`
	AwayTeam           TeamStats         `json:"away_team"`
	Goals              []Event           `json:"goals"`
	DisciplinaryEvents []Event           `json:"disciplinary_events"`
	Clubs              map[string]string `json:"clubs"`
}

type TeamStats struct {
	Name    string                  `json:"name"`
	Players []PlayerRow             `json:"players"`
	Keepers []PlayerRow             `json:"keepers"`
	Stats   map[string]jsoniter.Any `json:"stats"`
}

type PlayerRow struct {
	Player   string       `json:"Player"`
	Number   jsoniter.Any `json:"#"`
	Position string       `json:"POS"`
}

// Event is a goal or a disciplinary row. Time holds strings like "45+2'".
type Event struct {
	Club       string `json:"Club"`
	Player     string `json:"Player"`
	Time       string `json:"Time"`
	AssistedBy string `json:"(Assisted by)"`
	Reason     string `json:"Reason"`
	CardColor  string `json:"card_color"`
}

func Decode(raw []byte) (*GameStatSet, error) {
	stats := &GameStatSet{}
	if err := jsoniter.Unmarshal(raw, stats); err != nil {
		return nil, fmt.Errorf("failed to decode game stats: %w", err)
	}
	return stats, nil
}

func ReadFile(path string) (*GameStatSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

// Lineup lists outfield players then keepers.
func (t TeamStats) Lineup() []PlayerRow {
	rows := make([]PlayerRow, 0, len(t.Players)+len(t.Keepers))
	rows = append(rows, t.Players...)
	return append(rows, t.Keepers...)
}

// ClubName resolves a club abbreviation from an event row to a team name.
func (s *GameStatSet) ClubName(club string) (string, error) {
	if name, ok := s.Clubs[club]; ok {
		return name, nil
	}
	if club == s.HomeTeam.Name || club == s.AwayTeam.Name {
		return club, nil
	}
	return "", fmt.Errorf("unknown club %q", club)
}

var (
	minutePattern  = regexp.MustCompile(`\d+`)
	ownGoalPattern = regexp.MustCompile(`\(OG\)`)
)

// ParseName splits a report name into first and last name. A single word is
// used for both and anything past the second word is dropped.
func ParseName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], parts[0]
	default:
		return parts[0], parts[1]
	}
}

// ParseMinute returns the first number in a report time, so "90+3'" is 90.
func ParseMinute(t string) (int, error) {
	m := minutePattern.FindString(t)
	if m == "" {
		return 0, fmt.Errorf("no minute in %q", t)
	}
	return strconv.Atoi(m)
}

func IsOwnGoal(player string) bool {
	return ownGoalPattern.MatchString(player)
}

func scorerName(player string) string {
	return strings.TrimSpace(ownGoalPattern.ReplaceAllString(player, ""))
}

// ParseAssists splits "(Chris Rolfe, Dilly Duka)" into names.
func ParseAssists(assistedBy string) []string {
	trimmed := strings.TrimRight(strings.TrimLeft(assistedBy, "("), ")")
	names := []string{}
	for _, name := range strings.Split(trimmed, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func anyString(a jsoniter.Any) string {
	if a == nil {
		return ""
	}
	return strings.TrimSpace(a.ToString())
}

func number(a jsoniter.Any) (int, error) {
	s := anyString(a)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func stat(stats map[string]jsoniter.Any, key string) (string, error) {
	v, ok := stats[key]
	if !ok {
		return "", fmt.Errorf("missing stat %q", key)
	}
	return strings.TrimSpace(strings.TrimSuffix(anyString(v), "%")), nil
}

func intStat(stats map[string]jsoniter.Any, key string) (int, error) {
	s, err := stat(stats, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("stat %q: %w", key, err)
	}
	return n, nil
}

func floatStat(stats map[string]jsoniter.Any, key string) (float64, error) {
	s, err := stat(stats, key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("stat %q: %w", key, err)
	}
	return f, nil
}
