package queries

import (
	"context"
	"log"

	"AmHughesAbsalom/MLS_API.git/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type FormationsDBConnection struct {
	*sqlx.DB
}

type Formations interface {
	CreateFormation(ctx context.Context, formation *models.Formation) error
	GetFormation(ctx context.Context, formationId uuid.UUID) (models.Formation, error)
	ListFormations(ctx context.Context, gameId uuid.UUID) ([]models.Formation, error)
	DeleteFormation(ctx context.Context, formationId uuid.UUID) error
	CreateFormationLine(ctx context.Context, line *models.FormationLine) error
	ListFormationLines(ctx context.Context, formationId uuid.UUID) ([]models.FormationLine, error)
	UpdateFormationLine(ctx context.Context, line *models.FormationLine) error
	DeleteFormationLine(ctx context.Context, lineId uuid.UUID) error
	AddFormationPlayer(ctx context.Context, player *models.FormationPlayer) error
	ListFormationPlayers(ctx context.Context, lineId uuid.UUID) ([]models.FormationPlayer, error)
	DeleteFormationPlayer(ctx context.Context, formationPlayerId uuid.UUID) error
	FormationString(ctx context.Context, formationId uuid.UUID) (string, error)
}

func (f *FormationsDBConnection) CreateFormation(ctx context.Context, formation *models.Formation) error {
	if err := prepare(&formation.Id, formation); err != nil {
		return err
	}
	query :=
		`
		INSERT INTO formations (id, team_id, game_id)
		VALUES ($1, $2, $3)
		RETURNING created, modified
		`
	return f.DB.GetContext(ctx, &formation.Timestamps, query, formation.Id, formation.TeamId, formation.GameId)
}

func (f *FormationsDBConnection) GetFormation(ctx context.Context, formationId uuid.UUID) (models.Formation, error) {
	formation := models.Formation{}
	err := f.DB.GetContext(ctx, &formation, `SELECT * FROM formations WHERE id = $1`, formationId)
	if err != nil {
		return models.Formation{}, notFound(err, "formation", formationId)
	}
	return formation, nil
}

func (f *FormationsDBConnection) ListFormations(ctx context.Context, gameId uuid.UUID) ([]models.Formation, error) {
	formations := []models.Formation{}
	err := f.DB.SelectContext(ctx, &formations, `SELECT * FROM formations WHERE game_id = $1 ORDER BY created`, gameId)
	if err != nil {
		return nil, err
	}
	return formations, nil
}

func (f *FormationsDBConnection) DeleteFormation(ctx context.Context, formationId uuid.UUID) error {
	res, err := f.DB.ExecContext(ctx, `DELETE FROM formations WHERE id = $1`, formationId)
	if err != nil {
		return err
	}
	return affected(res, "formation", formationId)
}

func (f *FormationsDBConnection) CreateFormationLine(ctx context.Context, line *models.FormationLine) error {
	if err := prepare(&line.Id, line); err != nil {
		return err
	}
	query :=
		`
		INSERT INTO formation_lines (id, formation_id, sort_order)
		VALUES ($1, $2, $3)
		RETURNING created, modified
		`
	return f.DB.GetContext(ctx, &line.Timestamps, query, line.Id, line.FormationId, line.SortOrder)
}

func (f *FormationsDBConnection) ListFormationLines(ctx context.Context, formationId uuid.UUID) ([]models.FormationLine, error) {
	lines := []models.FormationLine{}
	query :=
		`
		SELECT * FROM formation_lines
		WHERE formation_id = $1
		ORDER BY sort_order, created
		`
	err := f.DB.SelectContext(ctx, &lines, query, formationId)
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (f *FormationsDBConnection) UpdateFormationLine(ctx context.Context, line *models.FormationLine) error {
	if err := models.Validate(line); err != nil {
		return err
	}
	query :=
		`
		UPDATE formation_lines
		SET formation_id = $1, sort_order = $2, modified = now()
		WHERE id = $3
		RETURNING created, modified
		`
	err := f.DB.GetContext(ctx, &line.Timestamps, query, line.FormationId, line.SortOrder, line.Id)
	if err != nil {
		return notFound(err, "formation line", line.Id)
	}
	return nil
}

func (f *FormationsDBConnection) DeleteFormationLine(ctx context.Context, lineId uuid.UUID) error {
	res, err := f.DB.ExecContext(ctx, `DELETE FROM formation_lines WHERE id = $1`, lineId)
	if err != nil {
		return err
	}
	return affected(res, "formation line", lineId)
}

func (f *FormationsDBConnection) AddFormationPlayer(ctx context.Context, player *models.FormationPlayer) error {
	if err := prepare(&player.Id, player); err != nil {
		return err
	}
	query :=
		`
		INSERT INTO formation_players (id, player_id, line_id, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING created, modified
		`
	return f.DB.GetContext(ctx, &player.Timestamps, query, player.Id, player.PlayerId, player.LineId, player.SortOrder)
}

func (f *FormationsDBConnection) ListFormationPlayers(ctx context.Context, lineId uuid.UUID) ([]models.FormationPlayer, error) {
	players := []models.FormationPlayer{}
	query :=
		`
		SELECT * FROM formation_players
		WHERE line_id = $1
		ORDER BY sort_order, created
		`
	err := f.DB.SelectContext(ctx, &players, query, lineId)
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (f *FormationsDBConnection) DeleteFormationPlayer(ctx context.Context, formationPlayerId uuid.UUID) error {
	res, err := f.DB.ExecContext(ctx, `DELETE FROM formation_players WHERE id = $1`, formationPlayerId)
	if err != nil {
		return err
	}
	return affected(res, "formation player", formationPlayerId)
}

type lineSize struct {
	Players int `db:"players"`
}

// FormationString counts the players of every line of a formation and renders
// them as "4-3-3", leaving out the goalkeeper line.
func (f *FormationsDBConnection) FormationString(ctx context.Context, formationId uuid.UUID) (string, error) {
	sizes := []lineSize{}
	query :=
		`
		SELECT COUNT(fp.id) AS players
		FROM formation_lines fl
		LEFT JOIN formation_players fp ON fp.line_id = fl.id
		WHERE fl.formation_id = $1
		GROUP BY fl.id
		ORDER BY fl.sort_order, fl.created
		`
	err := f.DB.SelectContext(ctx, &sizes, query, formationId)
	if err != nil {
		log.Println("error counting formation lines: ", err.Error())
		return "", err
	}
	counts := make([]int, len(sizes))
	for i, s := range sizes {
		counts[i] = s.Players
	}
	return models.FormationString(counts), nil
}
