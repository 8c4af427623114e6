package console

import (
	"context"
	"io"
	"strconv"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/jam-league/internal/platform/logging"
)

const (
	menuRule       = "==================================="
	msgBadMenuItem = "That was an incorrect selection. Please try again."
)

// Item is one numbered menu entry. Help lines are printed indented under
// the label.
type Item struct {
	Key   int
	Label string
	Help  []string
	Name  string
	Run   func(ctx context.Context) error
}

// Menu is a numbered menu read in a loop until ExitKey is entered or input
// ends.
type Menu struct {
	Name     string
	Banner   []string
	Items    []Item
	ExitKey  int
	ExitText string
	Farewell string
}

// Run loops until the exit item, EOF on input, or ctx cancellation. Handler
// errors are reported and the menu is shown again.
func (m Menu) Run(ctx context.Context, p *Prompter, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Default()
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.render(p)
		choice, err := p.Int("Make your selection: ")
		if crerr.Is(err, io.EOF) {
			p.Println()
			p.Println(m.Farewell)
			return nil
		}
		if err != nil {
			return err
		}
		if choice == m.ExitKey {
			p.Println(m.Farewell)
			return nil
		}

		item, ok := m.find(choice)
		if !ok {
			p.Println(msgBadMenuItem)
			continue
		}

		if err := m.dispatch(ctx, item); err != nil {
			if crerr.Is(err, io.EOF) {
				p.Println()
				p.Println(m.Farewell)
				return nil
			}
			if crerr.Is(err, context.Canceled) || crerr.Is(err, context.DeadlineExceeded) {
				return err
			}
			logger.WarnContext(ctx, "menu action failed", "menu", m.Name, "item", item.Name, "error", err)
			p.Println(describeError(err))
		}
	}
}

func (m Menu) dispatch(ctx context.Context, item Item) error {
	ctx, span := startSpan(ctx, "console."+m.Name+"."+item.Name)
	defer span.End()

	err := item.Run(ctx)
	if err != nil && !crerr.Is(err, io.EOF) {
		span.RecordError(err)
	}
	return err
}

func (m Menu) find(key int) (Item, bool) {
	for _, item := range m.Items {
		if item.Key == key {
			return item, true
		}
	}
	return Item{}, false
}

func (m Menu) render(p *Prompter) {
	p.Println()
	for _, line := range m.Banner {
		p.Println(line)
	}
	p.Println(menuRule)
	for _, item := range m.Items {
		p.Println(strconv.Itoa(item.Key) + " - " + item.Label)
		for _, help := range item.Help {
			p.Println("\t" + help)
		}
	}
	p.Println(strconv.Itoa(m.ExitKey) + " - " + m.ExitText)
	p.Println(menuRule)
}
