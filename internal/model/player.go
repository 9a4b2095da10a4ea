package model

import "fmt"

// Player labels a participant with a display name and the color they
// drive. Informational only: the board enforces no turn order and no
// ownership, so Player never gates a move.
type Player struct {
	Name  string `json:"name"`
	Color Color  `json:"color"`
}

func (p Player) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Color)
}
