package queries

import (
	"context"

	"AmHughesAbsalom/MLS_API.git/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type DisciplineDBConnection struct {
	*sqlx.DB
}

// Discipline covers the in-game events besides goals: substitutions and
// bookings.
type Discipline interface {
	CreateSubstitution(ctx context.Context, sub *models.Substitution) error
	GetSubstitution(ctx context.Context, substitutionId uuid.UUID) (models.Substitution, error)
	ListSubstitutions(ctx context.Context, gameId uuid.UUID) ([]models.Substitution, error)
	UpdateSubstitution(ctx context.Context, sub *models.Substitution) error
	DeleteSubstitution(ctx context.Context, substitutionId uuid.UUID) error
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, bookingId uuid.UUID) (models.Booking, error)
	ListBookings(ctx context.Context, gameId uuid.UUID) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, booking *models.Booking) error
	DeleteBooking(ctx context.Context, bookingId uuid.UUID) error
}

func (d *DisciplineDBConnection) CreateSubstitution(ctx context.Context, sub *models.Substitution) error {
	if err := prepare(&sub.Id, sub); err != nil {
		return err
	}
	query :=
		`
		INSERT INTO substitutions (id, out_player_id, in_player_id, team_id, minute)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created, modified
		`
	return d.DB.GetContext(ctx, &sub.Timestamps, query, sub.Id, sub.OutPlayerId, sub.InPlayerId, sub.TeamId, sub.Minute)
}

func (d *DisciplineDBConnection) GetSubstitution(ctx context.Context, substitutionId uuid.UUID) (models.Substitution, error) {
	sub := models.Substitution{}
	err := d.DB.GetContext(ctx, &sub, `SELECT * FROM substitutions WHERE id = $1`, substitutionId)
	if err != nil {
		return models.Substitution{}, notFound(err, "substitution", substitutionId)
	}
	return sub, nil
}

// ListSubstitutions finds a game's substitutions through the game players
// they swap out.
func (d *DisciplineDBConnection) ListSubstitutions(ctx context.Context, gameId uuid.UUID) ([]models.Substitution, error) {
	subs := []models.Substitution{}
	query :=
		`
		SELECT s.*
		FROM substitutions s
		JOIN game_players gp ON gp.id = s.out_player_id
		WHERE gp.game_id = $1
		ORDER BY s.minute, s.created
		`
	err := d.DB.SelectContext(ctx, &subs, query, gameId)
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (d *DisciplineDBConnection) UpdateSubstitution(ctx context.Context, sub *models.Substitution) error {
	if err := models.Validate(sub); err != nil {
		return err
	}
	query :=
		`
		UPDATE substitutions
		SET out_player_id = $1, in_player_id = $2, team_id = $3, minute = $4, modified = now()
		WHERE id = $5
		RETURNING created, modified
		`
	err := d.DB.GetContext(ctx, &sub.Timestamps, query, sub.OutPlayerId, sub.InPlayerId, sub.TeamId, sub.Minute, sub.Id)
	if err != nil {
		return notFound(err, "substitution", sub.Id)
	}
	return nil
}

func (d *DisciplineDBConnection) DeleteSubstitution(ctx context.Context, substitutionId uuid.UUID) error {
	res, err := d.DB.ExecContext(ctx, `DELETE FROM substitutions WHERE id = $1`, substitutionId)
	if err != nil {
		return err
	}
	return affected(res, "substitution", substitutionId)
}

func (d *DisciplineDBConnection) CreateBooking(ctx context.Context, booking *models.Booking) error {
	if err := prepare(&booking.Id, booking); err != nil {
		return err
	}
	query :=
		`
		INSERT INTO bookings (id, game_id, minute, player_id, card_color, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created, modified
		`
	return d.DB.GetContext(ctx, &booking.Timestamps, query,
		booking.Id, booking.GameId, booking.Minute, booking.PlayerId, booking.CardColor, booking.Reason)
}

func (d *DisciplineDBConnection) GetBooking(ctx context.Context, bookingId uuid.UUID) (models.Booking, error) {
	booking := models.Booking{}
	err := d.DB.GetContext(ctx, &booking, `SELECT * FROM bookings WHERE id = $1`, bookingId)
	if err != nil {
		return models.Booking{}, notFound(err, "booking", bookingId)
	}
	return booking, nil
}

func (d *DisciplineDBConnection) ListBookings(ctx context.Context, gameId uuid.UUID) ([]models.Booking, error) {
	bookings := []models.Booking{}
	err := d.DB.SelectContext(ctx, &bookings, `SELECT * FROM bookings WHERE game_id = $1 ORDER BY minute, created`, gameId)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (d *DisciplineDBConnection) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	if err := models.Validate(booking); err != nil {
		return err
	}
	query :=
		`
		UPDATE bookings
		SET game_id = $1, minute = $2, player_id = $3, card_color = $4, reason = $5, modified = now()
		WHERE id = $6
		RETURNING created, modified
		`
	err := d.DB.GetContext(ctx, &booking.Timestamps, query,
		booking.GameId, booking.Minute, booking.PlayerId, booking.CardColor, booking.Reason, booking.Id)
	if err != nil {
		return notFound(err, "booking", booking.Id)
	}
	return nil
}

func (d *DisciplineDBConnection) DeleteBooking(ctx context.Context, bookingId uuid.UUID) error {
	res, err := d.DB.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, bookingId)
	if err != nil {
		return err
	}
	return affected(res, "booking", bookingId)
}
