package models

// Tables returns one zero value of every persisted record type, in the order
// their tables are created.
func Tables() []any {
	return []any{
		&Team{},
		&Competition{},
		&Player{},
		&Game{},
		&GamePlayer{},
		&PlayerStatLine{},
		&StatSet{},
		&Formation{},
		&FormationLine{},
		&FormationPlayer{},
		&Goal{},
		&GoalAssist{},
		&Substitution{},
		&Booking{},
	}
}
