package models

import "github.com/google/uuid"

// ScoredGoal is the part of a goal that decides who it counts for: the team
// of the game player credited with it and whether it went in off them.
type ScoredGoal struct {
	GoalId       uuid.UUID `db:"goal_id"`
	GameId       uuid.UUID `db:"game_id"`
	ScorerTeamId uuid.UUID `db:"scorer_team_id"`
	OwnGoal      bool      `db:"own_goal"`
}

// Score counts the goals of one game that belong to teamId: regular goals by
// its own players plus own goals by anyone else.
func Score(goals []ScoredGoal, teamId uuid.UUID) int {
	score := 0
	for _, g := range goals {
		if g.OwnGoal {
			if g.ScorerTeamId != teamId {
				score++
			}
			continue
		}
		if g.ScorerTeamId == teamId {
			score++
		}
	}
	return score
}
