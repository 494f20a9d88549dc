package models

import (
	"fmt"

	"github.com/google/uuid"
)

type Goal struct {
	Id       uuid.UUID `db:"id" json:"id"`
	GameId   uuid.UUID `db:"game_id" json:"gameId" validate:"required"`
	Minute   int       `db:"minute" json:"minute" validate:"gte=0"`
	PlayerId uuid.UUID `db:"player_id" json:"playerId" validate:"required"`
	Penalty  bool      `db:"penalty" json:"penalty"`
	OwnGoal  bool      `db:"own_goal" json:"ownGoal"`
	Timestamps
}

func (Goal) TableName() string { return "goals" }

func (g Goal) Describe(scorer fmt.Stringer) string {
	return fmt.Sprintf("Goal by %s at %d'", scorer, g.Minute)
}

// GoalAssist is a row of the goal -> game player assist join table.
type GoalAssist struct {
	Id           uuid.UUID `db:"id" json:"id"`
	GoalId       uuid.UUID `db:"goal_id" json:"goalId" validate:"required"`
	GamePlayerId uuid.UUID `db:"game_player_id" json:"gamePlayerId" validate:"required"`
}

func (GoalAssist) TableName() string { return "goal_assisted_by" }

type Substitution struct {
	Id          uuid.UUID `db:"id" json:"id"`
	OutPlayerId uuid.UUID `db:"out_player_id" json:"outPlayerId" validate:"required"`
	InPlayerId  uuid.UUID `db:"in_player_id" json:"inPlayerId" validate:"required"`
	TeamId      uuid.UUID `db:"team_id" json:"teamId" validate:"required"`
	Minute      int       `db:"minute" json:"minute" validate:"gte=0"`
	Timestamps
}

func (Substitution) TableName() string { return "substitutions" }

func (s Substitution) Describe(in, out fmt.Stringer) string {
	return fmt.Sprintf("%s in for %s at %d", in, out, s.Minute)
}

type Booking struct {
	Id        uuid.UUID `db:"id" json:"id"`
	GameId    uuid.UUID `db:"game_id" json:"gameId" validate:"required"`
	Minute    int       `db:"minute" json:"minute" validate:"gte=0"`
	PlayerId  uuid.UUID `db:"player_id" json:"playerId" validate:"required"`
	CardColor CardColor `db:"card_color" json:"cardColor" validate:"required,max=8,oneof=yellow red"`
	Reason    string    `db:"reason" json:"reason" validate:"max=256"`
	Timestamps
}

func (Booking) TableName() string { return "bookings" }

func (b Booking) Describe(player fmt.Stringer) string {
	return fmt.Sprintf("%s card for %s at %d'", b.CardColor.Label(), player, b.Minute)
}
