package models

import "github.com/google/uuid"

type Player struct {
	Id        uuid.UUID `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"firstName" validate:"required,max=64"`
	LastName  string    `db:"last_name" json:"lastName" validate:"required,max=64"`
	Number    int       `db:"number" json:"number"`
	TeamId    uuid.UUID `db:"team_id" json:"teamId" validate:"required"`
	Position  Position  `db:"position" json:"position" validate:"required,max=32,oneof=G D M F S"`
	Timestamps
}

func (Player) TableName() string { return "players" }

func (p Player) String() string { return p.FirstName + " " + p.LastName }

// GamePlayer is one player's participation in one game: the position played,
// the team played for and whether they wore the armband.
type GamePlayer struct {
	Id       uuid.UUID `db:"id" json:"id"`
	PlayerId uuid.UUID `db:"player_id" json:"playerId" validate:"required"`
	Position Position  `db:"position" json:"position" validate:"required,max=32,oneof=G D M F S"`
	GameId   uuid.UUID `db:"game_id" json:"gameId" validate:"required"`
	Captain  bool      `db:"captain" json:"captain"`
	TeamId   uuid.UUID `db:"team_id" json:"teamId" validate:"required"`
	Timestamps
}

func (GamePlayer) TableName() string { return "game_players" }

// GamePlayerDetail is a GamePlayer joined with the player's name and number.
type GamePlayerDetail struct {
	GamePlayer
	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`
	Number    int    `db:"number" json:"number"`
}

func (g GamePlayerDetail) String() string { return g.FirstName + " " + g.LastName }

type PlayerStatLine struct {
	Id            uuid.UUID `db:"id" json:"id"`
	PlayerId      uuid.UUID `db:"player_id" json:"playerId" validate:"required"`
	Shots         int       `db:"shots" json:"shots" validate:"gte=0"`
	ShotsOnGoal   int       `db:"shots_on_goal" json:"shotsOnGoal" validate:"gte=0"`
	Minutes       int       `db:"minutes" json:"minutes" validate:"gte=0"`
	Goals         int       `db:"goals" json:"goals" validate:"gte=0"`
	Assists       int       `db:"assists" json:"assists" validate:"gte=0"`
	FoulsCommited int       `db:"fouls_commited" json:"foulsCommited" validate:"gte=0"`
	FoulsSuffered int       `db:"fouls_suffered" json:"foulsSuffered" validate:"gte=0"`
	Corners       int       `db:"corners" json:"corners" validate:"gte=0"`
	Offsides      int       `db:"offsides" json:"offsides" validate:"gte=0"`
	Saves         int       `db:"saves" json:"saves" validate:"gte=0"`
	GoalsAgainst  int       `db:"goals_against" json:"goalsAgainst" validate:"gte=0"`
	Timestamps
}

func (PlayerStatLine) TableName() string { return "player_stat_lines" }
