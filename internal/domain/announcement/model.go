package announcement

import (
	"fmt"
	"time"

	"github.com/riskibarqy/jam-league/internal/domain/game"
	"github.com/riskibarqy/jam-league/internal/platform/civil"
)

// Message ids live strictly between MinID and MaxID.
const (
	MinID = 1000000
	MaxID = 2000000
)

type Announcement struct {
	ID       int
	Message  string
	SentDate time.Time
}

func CancelledMessage(g game.Game) string {
	return fmt.Sprintf("Captains, your upcoming game for %s between %s and %s was cancelled.",
		civil.FormatDate(g.Date), g.Home.Name, g.Away.Name)
}

func MovedMessage(g game.Game, to game.Slot) string {
	return fmt.Sprintf("Captains, your upcoming game for %s between %s and %s was moved to %s at %s.",
		civil.FormatDate(g.Date), g.Home.Name, g.Away.Name, civil.FormatDate(to.Date), to.Clock)
}
