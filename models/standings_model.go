package models

import (
	"sort"

	"github.com/google/uuid"
)

// StandingsModel is one row of a competition table, derived from game scores.
type StandingsModel struct {
	Position      int       `db:"position" json:"position"`
	CompetitionId uuid.UUID `db:"competition_id" json:"competitionId"`
	TeamId        uuid.UUID `db:"team_id" json:"teamId"`
	TeamName      string    `db:"team_name" json:"teamName"`
	Gp            int       `db:"gp" json:"gp"`
	W             int       `db:"w" json:"w"`
	D             int       `db:"d" json:"d"`
	L             int       `db:"l" json:"l"`
	Gf            int       `db:"gf" json:"gf"`
	Ga            int       `db:"ga" json:"ga"`
	Gd            int       `db:"gd" json:"gd"`
	Pts           int       `db:"pts" json:"pts"`
}

func (s *StandingsModel) record(gf, ga int) {
	s.Gp++
	s.Gf += gf
	s.Ga += ga
	s.Gd = s.Gf - s.Ga
	switch {
	case gf > ga:
		s.W++
		s.Pts += 3
	case gf == ga:
		s.D++
		s.Pts++
	default:
		s.L++
	}
}

// BuildStandings tabulates scored games into a league table: three points for
// a win, one for a draw, ranked by points, goal difference and goals scored.
// Teams level on all three share a position.
func BuildStandings(competitionId uuid.UUID, games []GameWithScore) []StandingsModel {
	rows := map[uuid.UUID]*StandingsModel{}
	row := func(teamId uuid.UUID, name string) *StandingsModel {
		r, ok := rows[teamId]
		if !ok {
			r = &StandingsModel{CompetitionId: competitionId, TeamId: teamId, TeamName: name}
			rows[teamId] = r
		}
		return r
	}
	for _, g := range games {
		row(g.HomeTeamId, g.HomeTeamName).record(g.HomeScore, g.AwayScore)
		row(g.AwayTeamId, g.AwayTeamName).record(g.AwayScore, g.HomeScore)
	}

	table := make([]StandingsModel, 0, len(rows))
	for _, r := range rows {
		table = append(table, *r)
	}
	sort.Slice(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Pts != b.Pts {
			return a.Pts > b.Pts
		}
		if a.Gd != b.Gd {
			return a.Gd > b.Gd
		}
		if a.Gf != b.Gf {
			return a.Gf > b.Gf
		}
		return a.TeamName < b.TeamName
	})
	for i := range table {
		if i > 0 && sameRank(table[i-1], table[i]) {
			table[i].Position = table[i-1].Position
		} else {
			table[i].Position = i + 1
		}
	}
	return table
}

func sameRank(a, b StandingsModel) bool {
	return a.Pts == b.Pts && a.Gd == b.Gd && a.Gf == b.Gf
}
