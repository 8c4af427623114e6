package league

import "fmt"

// League fixes the minimum roster size for one sport at one level of play.
type League struct {
	Sport      string
	Level      string
	MinPlayers int
}

func (l League) Validate() error {
	if l.Sport == "" {
		return fmt.Errorf("league sport is required")
	}
	if l.Level == "" {
		return fmt.Errorf("league level is required")
	}
	if l.MinPlayers < 0 {
		return fmt.Errorf("league min players must be >= 0")
	}

	return nil
}
