package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/jam-league/internal/domain/game"
	"github.com/riskibarqy/jam-league/internal/domain/player"
	"github.com/riskibarqy/jam-league/internal/domain/pruning"
	"github.com/riskibarqy/jam-league/internal/domain/staff"
	"github.com/riskibarqy/jam-league/internal/platform/civil"
)

const recordRule = "-----"

// render builds a block in a pooled buffer and writes it with one call.
func render(w io.Writer, fill func(buf *bytebufferpool.ByteBuffer)) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	fill(buf)
	_, err := w.Write(buf.B)
	return err
}

func renderPlayers(w io.Writer, players []player.Player) error {
	return render(w, func(buf *bytebufferpool.ByteBuffer) {
		fmt.Fprintf(buf, "%d record(s) found:\n", len(players))
		buf.WriteString(recordRule + "\n")
		for _, p := range players {
			fmt.Fprintf(buf, "PID: %d\n", p.ID)
			fmt.Fprintf(buf, "Gender: %s\n", p.Gender)
			fmt.Fprintf(buf, "Last Name: %s\n", p.LastName)
			fmt.Fprintf(buf, "First Name: %s\n", p.FirstName)
			fmt.Fprintf(buf, "Address: %s\n", p.Address)
			fmt.Fprintf(buf, "Phone Number: %s\n", p.Phone)
			fmt.Fprintf(buf, "Email: %s\n", p.Email)
			fmt.Fprintf(buf, "Birthday: %s\n", civil.FormatDate(p.Birthday))
			fmt.Fprintf(buf, "Created: %s\n", civil.FormatDate(p.DateCreated))
			buf.WriteString(recordRule + "\n")
		}
	})
}

func renderLookupFields(w io.Writer) error {
	return render(w, func(buf *bytebufferpool.ByteBuffer) {
		buf.WriteString("By what field would you like to look up a player?\n")
		for _, f := range player.AllFields {
			fmt.Fprintf(buf, "%d - %s\n", f, f.Label())
		}
		buf.WriteString("**For a combination write a sequence of the above (ex. 34 for Last Name and First Name)\n")
	})
}

func renderEligiblePlayers(w io.Writer, players []player.Player) error {
	return render(w, func(buf *bytebufferpool.ByteBuffer) {
		buf.WriteString("Players available to be promoted to captain:\n")
		buf.WriteString("ID        NAME\n")
		for _, p := range players {
			fmt.Fprintf(buf, "%d %s\n", p.ID, p.FullName())
		}
		buf.WriteString("------------------------------------------------\n")
	})
}

func renderGames(w io.Writer, games []game.Game) error {
	return render(w, func(buf *bytebufferpool.ByteBuffer) {
		buf.WriteString("Here are the upcoming games:\n")
		buf.WriteString(recordRule + "\n")
		for _, g := range games {
			fmt.Fprintf(buf, "Game Date: %s\n", civil.FormatDate(g.Date))
			fmt.Fprintf(buf, "Game Time: %s\n", g.Clock)
			fmt.Fprintf(buf, "Sport: %s\n", g.Sport)
			fmt.Fprintf(buf, "League Level: %s\n", g.Level)
			fmt.Fprintf(buf, "Team 1: %s\n", teamName(g.Home.Name))
			fmt.Fprintf(buf, "Team 2: %s\n", teamName(g.Away.Name))
			buf.WriteString(recordRule + "\n")
		}
	})
}

func teamName(name string) string {
	if name == "" {
		return "TBD"
	}
	return name
}

func renderStaff(w io.Writer, members []staff.Member) error {
	return render(w, func(buf *bytebufferpool.ByteBuffer) {
		writeStaffSection(buf, members, staff.KindCoordinator, "Coordinators:", "ID      YEARLY SALARY   NAME")
		writeStaffSection(buf, members, staff.KindOfficial, "Officials:", "ID      HOURLY SALARY   NAME")
		buf.WriteString("------------------------------------------------\n")
	})
}

func writeStaffSection(buf *bytebufferpool.ByteBuffer, members []staff.Member, kind staff.Kind, title, header string) {
	rows := 0
	for _, m := range members {
		if m.Kind != kind {
			continue
		}
		if rows == 0 {
			buf.WriteString(title + "\n")
			buf.WriteString(header + "\n")
		}
		fmt.Fprintf(buf, "%-7d %-15d %s\n", m.ID, m.Salary, m.Name)
		rows++
	}
	if rows == 0 {
		fmt.Fprintf(buf, "There are no %ss in the database.\n", kind)
	}
}

// RenderReport writes a prune report as plain text.
func RenderReport(w io.Writer, report pruning.Report) error {
	return render(w, func(buf *bytebufferpool.ByteBuffer) {
		verb := "deleted"
		if report.DryRun {
			verb = "would be deleted"
		}
		fmt.Fprintf(buf, "Cleaning routine called on %s: %d evaluated, %d %s.\n",
			strings.ToUpper(string(report.Target)), report.Evaluated, len(report.Pruned), verb)
		for _, key := range report.Pruned {
			fmt.Fprintf(buf, "  pruned: %s\n", key)
		}
		for _, key := range report.Skipped {
			fmt.Fprintf(buf, "  skipped (no league minimum): %s\n", key)
		}
		if !report.DryRun && report.Deleted != int64(len(report.Pruned)) {
			fmt.Fprintf(buf, "  rows removed: %d\n", report.Deleted)
		}
	})
}
