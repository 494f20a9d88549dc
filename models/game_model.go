package models

import (
	"time"

	"github.com/google/uuid"
)

// Game is the glue for every stat. Scores are never stored; see Score.
type Game struct {
	Id            uuid.UUID  `db:"id" json:"id"`
	HomeTeamId    uuid.UUID  `db:"home_team_id" json:"homeTeamId" validate:"required"`
	AwayTeamId    uuid.UUID  `db:"away_team_id" json:"awayTeamId" validate:"required"`
	StartTime     *time.Time `db:"start_time" json:"startTime"`
	CompetitionId uuid.UUID  `db:"competition_id" json:"competitionId" validate:"required"`
	StatLink      string     `db:"stat_link" json:"statLink" validate:"max=512"`
	Timestamps
}

func (Game) TableName() string { return "games" }

type GameWithScore struct {
	Game
	HomeTeamName string `db:"home_team_name" json:"homeTeamName"`
	AwayTeamName string `db:"away_team_name" json:"awayTeamName"`
	HomeScore    int    `json:"homeScore"`
	AwayScore    int    `json:"awayScore"`
}

func (g GameWithScore) String() string {
	start := "unknown date"
	if g.StartTime != nil {
		start = g.StartTime.Format(time.RFC3339)
	}
	return g.HomeTeamName + " vs. " + g.AwayTeamName + " on " + start
}

// StatSet holds the basic team stats of a game such as possession and shots
// on goal. There is one per team per game.
type StatSet struct {
	Id                 uuid.UUID `db:"id" json:"id"`
	AttemptsOnGoal     int       `db:"attempts_on_goal" json:"attemptsOnGoal" validate:"gte=0"`
	ShotsOnTarget      int       `db:"shots_on_target" json:"shotsOnTarget" validate:"gte=0"`
	ShotsOffTarget     int       `db:"shots_off_target" json:"shotsOffTarget" validate:"gte=0"`
	BlockedShots       int       `db:"blocked_shots" json:"blockedShots" validate:"gte=0"`
	CornerKicks        int       `db:"corner_kicks" json:"cornerKicks" validate:"gte=0"`
	Fouls              int       `db:"fouls" json:"fouls" validate:"gte=0"`
	Crosses            int       `db:"crosses" json:"crosses" validate:"gte=0"`
	Offsides           int       `db:"offsides" json:"offsides" validate:"gte=0"`
	FirstYellows       int       `db:"first_yellows" json:"firstYellows" validate:"gte=0"`
	SecondYellows      int       `db:"second_yellows" json:"secondYellows" validate:"gte=0"`
	RedCards           int       `db:"red_cards" json:"redCards" validate:"gte=0"`
	DuelsWon           int       `db:"duels_won" json:"duelsWon" validate:"gte=0"`
	DuelsWonPercentage int       `db:"duels_won_percentage" json:"duelsWonPercentage" validate:"gte=0,lte=100"`
	TotalPasses        int       `db:"total_passes" json:"totalPasses" validate:"gte=0"`
	PassPercentage     int       `db:"pass_percentage" json:"passPercentage" validate:"gte=0,lte=100"`
	// NUMERIC(4,2)
	Possession float64   `db:"possession" json:"possession" validate:"gte=0,lt=100"`
	TeamId     uuid.UUID `db:"team_id" json:"teamId" validate:"required"`
	GameId     uuid.UUID `db:"game_id" json:"gameId" validate:"required"`
	Timestamps
}

func (StatSet) TableName() string { return "stat_sets" }
