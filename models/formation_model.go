package models

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Formation is a team's tactical shape for one game, made of ordered lines.
type Formation struct {
	Id     uuid.UUID `db:"id" json:"id"`
	TeamId uuid.UUID `db:"team_id" json:"teamId" validate:"required"`
	GameId uuid.UUID `db:"game_id" json:"gameId" validate:"required"`
	Timestamps
}

func (Formation) TableName() string { return "formations" }

type FormationLine struct {
	Id          uuid.UUID `db:"id" json:"id"`
	FormationId uuid.UUID `db:"formation_id" json:"formationId" validate:"required"`
	SortOrder   int       `db:"sort_order" json:"sortOrder"`
	Timestamps
}

func (FormationLine) TableName() string { return "formation_lines" }

// FormationPlayer places a game player at a position within a line.
type FormationPlayer struct {
	Id        uuid.UUID `db:"id" json:"id"`
	PlayerId  uuid.UUID `db:"player_id" json:"playerId" validate:"required"`
	LineId    uuid.UUID `db:"line_id" json:"lineId" validate:"required"`
	SortOrder int       `db:"sort_order" json:"sortOrder"`
	Timestamps
}

func (FormationPlayer) TableName() string { return "formation_players" }

// FormationString renders per-line player counts, ordered by line, as the
// familiar "4-4-2" notation. The first line is the goalkeeper and is left out.
func FormationString(lineSizes []int) string {
	if len(lineSizes) < 2 {
		return ""
	}
	parts := make([]string, 0, len(lineSizes)-1)
	for _, n := range lineSizes[1:] {
		parts = append(parts, strconv.Itoa(n))
	}
	return strings.Join(parts, "-")
}
