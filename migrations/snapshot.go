package migrations

import (
	"fmt"
	"maps"
	"slices"
)

// Column is the expected shape of one column. Type is the postgres udt name
// (uuid, varchar, int4, bool, timestamptz, numeric).
type Column struct {
	Name       string
	Type       string
	Length     int
	Nullable   bool
	References string
}

type Table struct {
	Name    string
	Columns []Column
}

func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Schema is the full shape of the database once Version has been applied.
type Schema struct {
	Version uint
	Tables  map[string]Table
}

func (s Schema) TableNames() []string {
	return slices.Sorted(maps.Keys(s.Tables))
}

func (s Schema) clone(version uint) Schema {
	out := Schema{Version: version, Tables: make(map[string]Table, len(s.Tables))}
	for name, t := range s.Tables {
		out.Tables[name] = Table{Name: t.Name, Columns: slices.Clone(t.Columns)}
	}
	return out
}

func (s Schema) add(name string, columns ...Column) {
	s.Tables[name] = Table{Name: name, Columns: columns}
}

func (s Schema) retarget(table, column, target string) {
	t := s.Tables[table]
	for i := range t.Columns {
		if t.Columns[i].Name == column {
			t.Columns[i].References = target
		}
	}
	s.Tables[table] = t
}

var snapshots = buildSnapshots()

// Latest is the version of the newest step.
func Latest() uint {
	return uint(len(snapshots))
}

// Snapshot returns the expected schema after the given version was applied.
func Snapshot(version uint) (Schema, error) {
	if version == 0 || int(version) > len(snapshots) {
		return Schema{}, fmt.Errorf("no schema snapshot for version %d", version)
	}
	return snapshots[version-1].clone(version), nil
}

func id() Column                    { return Column{Name: "id", Type: "uuid"} }
func ref(name, table string) Column { return Column{Name: name, Type: "uuid", References: table} }
func varchar(name string, n int) Column {
	return Column{Name: name, Type: "varchar", Length: n}
}
func integer(name string) Column { return Column{Name: name, Type: "int4"} }
func boolean(name string) Column { return Column{Name: name, Type: "bool"} }

func stamped(columns ...Column) []Column {
	return append(columns,
		Column{Name: "created", Type: "timestamptz"},
		Column{Name: "modified", Type: "timestamptz"},
	)
}

func buildSnapshots() []Schema {
	initial := Schema{Version: 1, Tables: map[string]Table{}}
	initial.add("teams", stamped(id(), varchar("name", 128), varchar("slug", 50))...)
	initial.add("competitions", stamped(id(), varchar("name", 128), varchar("slug", 50), varchar("year", 4))...)
	initial.add("players", stamped(
		id(),
		varchar("first_name", 64),
		varchar("last_name", 64),
		integer("number"),
		ref("team_id", "teams"),
		varchar("position", 32),
	)...)
	initial.add("games", stamped(
		id(),
		ref("home_team_id", "teams"),
		ref("away_team_id", "teams"),
		Column{Name: "start_time", Type: "timestamptz", Nullable: true},
		ref("competition_id", "competitions"),
		varchar("stat_link", 512),
	)...)
	initial.add("game_players", stamped(
		id(),
		ref("player_id", "players"),
		varchar("position", 32),
		ref("game_id", "games"),
		boolean("captain"),
		ref("team_id", "teams"),
	)...)
	initial.add("stat_sets", stamped(
		id(),
		integer("attempts_on_goal"),
		integer("shots_on_target"),
		integer("shots_off_target"),
		integer("blocked_shots"),
		integer("corner_kicks"),
		integer("fouls"),
		integer("crosses"),
		integer("offsides"),
		integer("first_yellows"),
		integer("second_yellows"),
		integer("red_cards"),
		integer("duels_won"),
		integer("duels_won_percentage"),
		integer("total_passes"),
		integer("pass_percentage"),
		Column{Name: "possession", Type: "numeric"},
		ref("team_id", "teams"),
		ref("game_id", "games"),
	)...)
	initial.add("formations", stamped(id(), ref("team_id", "teams"), ref("game_id", "games"))...)
	initial.add("formation_lines", stamped(id(), ref("formation_id", "formations"), integer("sort_order"))...)
	initial.add("formation_players", stamped(
		id(),
		ref("player_id", "game_players"),
		ref("line_id", "formation_lines"),
		integer("sort_order"),
	)...)
	initial.add("goals", stamped(
		id(),
		ref("game_id", "games"),
		integer("minute"),
		ref("player_id", "game_players"),
		boolean("penalty"),
		boolean("own_goal"),
	)...)
	initial.add("goal_assisted_by", id(), ref("goal_id", "goals"), ref("game_player_id", "game_players"))
	initial.add("substitutions", stamped(
		id(),
		ref("out_player_id", "players"),
		ref("in_player_id", "players"),
		ref("team_id", "teams"),
		integer("minute"),
	)...)
	initial.add("bookings", stamped(
		id(),
		ref("game_id", "games"),
		integer("minute"),
		ref("player_id", "game_players"),
		varchar("card_color", 8),
		varchar("reason", 256),
	)...)

	retargeted := initial.clone(2)
	retargeted.retarget("substitutions", "out_player_id", "game_players")
	retargeted.retarget("substitutions", "in_player_id", "game_players")

	statLines := retargeted.clone(3)
	statLines.add("player_stat_lines", stamped(
		id(),
		ref("player_id", "game_players"),
		integer("shots"),
		integer("shots_on_goal"),
		integer("minutes"),
		integer("goals"),
		integer("assists"),
		integer("fouls_commited"),
		integer("fouls_suffered"),
		integer("corners"),
		integer("offsides"),
		integer("saves"),
		integer("goals_against"),
	)...)

	return []Schema{initial, retargeted, statLines}
}
