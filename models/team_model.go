package models

import "github.com/google/uuid"

type Team struct {
	Id   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name" validate:"required,max=128"`
	Slug string    `db:"slug" json:"slug" validate:"required,max=50"`
	Timestamps
}

func (Team) TableName() string { return "teams" }

func (t Team) String() string { return t.Name }

type Competition struct {
	Id   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name" validate:"required,max=128"`
	Slug string    `db:"slug" json:"slug" validate:"required,max=50"`
	Year string    `db:"year" json:"year" validate:"required,max=4"`
	Timestamps
}

func (Competition) TableName() string { return "competitions" }

func (c Competition) String() string { return c.Name + " - " + c.Year }
