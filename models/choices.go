package models

type Position string

const (
	PositionGoalkeeper Position = "G"
	PositionDefender   Position = "D"
	PositionMidfielder Position = "M"
	PositionForward    Position = "F"
	PositionSub        Position = "S"
)

var positionLabels = map[Position]string{
	PositionGoalkeeper: "Goalkeeper",
	PositionDefender:   "Defender",
	PositionMidfielder: "Midfielder",
	PositionForward:    "Forward",
	PositionSub:        "Sub",
}

func (p Position) Valid() bool {
	_, ok := positionLabels[p]
	return ok
}

func (p Position) Label() string {
	return positionLabels[p]
}

// ParsePosition maps a scraped position code to a Position, falling back to
// PositionSub for anything blank or unknown.
func ParsePosition(code string) Position {
	p := Position(code)
	if !p.Valid() {
		return PositionSub
	}
	return p
}

type CardColor string

const (
	CardYellow CardColor = "yellow"
	CardRed    CardColor = "red"
)

func (c CardColor) Valid() bool {
	return c == CardYellow || c == CardRed
}

func (c CardColor) Label() string {
	switch c {
	case CardYellow:
		return "Yellow"
	case CardRed:
		return "Red"
	}
	return ""
}
