package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/jam-league/internal/domain/player"
	"github.com/riskibarqy/jam-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/jam-league/internal/platform/civil"
	"github.com/riskibarqy/jam-league/internal/platform/logging"
	"github.com/riskibarqy/jam-league/internal/usecase"
)

type consoleFixture struct {
	db    *memory.Database
	today time.Time
	out   *bytes.Buffer
}

func newFixture() consoleFixture {
	today := civil.Date(time.Now(), time.UTC)
	return consoleFixture{
		db:    memory.NewSeededDatabase(today),
		today: today,
		out:   &bytes.Buffer{},
	}
}

func (f consoleFixture) records(input string) *Records {
	logger := logging.NewNop()
	playerRepo := memory.NewPlayerRepository(f.db)
	staffRepo := memory.NewStaffRepository(f.db)

	return NewRecords(
		usecase.NewPlayerService(playerRepo),
		usecase.NewRegistrationService(playerRepo, staffRepo, time.UTC, logger),
		usecase.NewCaptainService(playerRepo, memory.NewCaptainRepository(f.db), logger),
		usecase.NewGameService(memory.NewGameRepository(f.db), memory.NewAnnouncementRepository(f.db), time.UTC, logger),
		usecase.NewSalaryService(staffRepo, logger),
		NewPrompter(strings.NewReader(input), f.out),
		logger,
	)
}

func (f consoleFixture) cleaner(input string) *Cleaner {
	logger := logging.NewNop()
	prune := usecase.NewPruneService(
		memory.NewRoutineRepository(f.db),
		memory.NewSeasonRepository(f.db),
		memory.NewTeamRepository(f.db),
		usecase.PruneConfig{BatchSize: 2, Location: time.UTC},
		logger,
	)
	return NewCleaner(prune, NewPrompter(strings.NewReader(input), f.out), logger)
}

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPrompter_IntReprompts(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n 4 \n"), &out)

	n, err := p.Int("Make your selection: ")
	if err != nil {
		t.Fatalf("read int: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4, got %d", n)
	}
	if strings.Count(out.String(), "Make your selection: ") != 2 {
		t.Fatalf("expected the prompt twice, got %q", out.String())
	}
	assertContains(t, out.String(), msgNotInteger)
}

func TestPrompter_OverlongLineReprompts(t *testing.T) {
	var out bytes.Buffer
	long := strings.Repeat("9x", 64*1024)
	p := NewPrompter(strings.NewReader(long+"\n2\n"), &out)

	n, err := p.Int("Make your selection: ")
	if err != nil {
		t.Fatalf("read int: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
	assertContains(t, out.String(), msgNotInteger)
}

func TestPrompter_LastLineWithoutNewline(t *testing.T) {
	p := NewPrompter(strings.NewReader("first\r\nlast"), io.Discard)
	for _, want := range []string{"first", "last"} {
		got, err := p.Line("")
		if err != nil || got != want {
			t.Fatalf("got %q %v, want %q", got, err, want)
		}
	}
	if _, err := p.Line(""); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestPrompter_EOF(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), io.Discard)
	if _, err := p.Line("x: "); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestMenu_ExitAndUnknownItem(t *testing.T) {
	f := newFixture()
	if err := f.cleaner(script("9", "five", "5")).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, f.out.String(), msgBadMenuItem, msgNotInteger, "Thank you for using JAM cleaner.")
}

func TestMenu_EOFExits(t *testing.T) {
	f := newFixture()
	if err := f.records("").Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, f.out.String(), "Thank you for using JAM.")
}

func TestMenu_CancelledContext(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := f.records(script("6")).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCleaner_Lifecycle(t *testing.T) {
	f := newFixture()
	input := script("3", "1", "1", "3", "2", "4", "4", "5")
	if err := f.cleaner(input).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	year := f.today.Year()
	out := f.out.String()
	assertContains(t, out,
		"You need to install the routine before running it.",
		"Cleaning routine installed successfully.",
		"The routine is already installed.",
		"Cleaning routine called on SEASON: 4 evaluated, 1 deleted.",
		"pruned: "+strconv.Itoa(year)+" soccer/rec",
		"Cleaning routine called on TEAM: 9 evaluated, 2 deleted.",
		"skipped (no league minimum): Dunkers",
		"Cleaning routine was removed.",
		"The routine was not installed. Nothing to remove.",
	)
}

func TestRecords_LookupByName(t *testing.T) {
	f := newFixture()
	if err := f.records(script("1", "34", "Jones", "Ben", "6")).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, f.out.String(), "1 record(s) found:", "PID: "+strconv.Itoa(player.MinID+2), "First Name: Ben")
}

func TestRecords_LookupRepeatedFieldKeepsFirst(t *testing.T) {
	f := newFixture()
	if err := f.records(script("1", "33", "Smith", "6")).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := f.out.String()
	if strings.Count(out, "Enter a Last name to search: ") != 1 {
		t.Fatalf("expected a single last name prompt, got:\n%s", out)
	}
	assertContains(t, out, "You can't search for two values for the same attribute, using Smith", "Last Name: Smith")
}

func TestRecords_LookupNoMatch(t *testing.T) {
	f := newFixture()
	if err := f.records(script("1", "3", "Nobody", "6")).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, f.out.String(), "No records exist for your specifications")
}

func TestRecords_LookupBadSelection(t *testing.T) {
	f := newFixture()
	if err := f.records(script("1", "3x", "6")).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, f.out.String(), "Not executing the lookup.")
}

func TestRecords_RegisterPlayer(t *testing.T) {
	f := newFixture()
	input := script("2", "1", "260400100", "m", "Doe", "John", "1 Road", "5551234567", "john@doe.com", "1999-05-05", "6")
	if err := f.records(input).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, f.out.String(), "Entered a new Player successfully.")

	found, err := memory.NewPlayerRepository(f.db).Search(context.Background(), []player.Criterion{{Field: player.FieldID, Value: 260400100}})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 1 || !found[0].DateCreated.Equal(f.today) {
		t.Fatalf("expected new player created today, got %+v", found)
	}
}

func TestRecords_RegisterAbandonsAtInvalidField(t *testing.T) {
	f := newFixture()
	input := script("2", "1", "260400100", "m", "doe", "6")
	if err := f.records(input).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := f.out.String()
	assertContains(t, out, "last name must start with an uppercase letter", msgBackToMenu, "Thank you for using JAM.")
	if strings.Contains(out, "Enter a first name") {
		t.Fatalf("registration should stop at the invalid last name")
	}
}

func TestRecords_RegisterRejectsOutOfRangeID(t *testing.T) {
	f := newFixture()
	if err := f.records(script("2", "2", "12", "6")).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, f.out.String(), "ID 12 is out of range", msgBackToMenu)
}

func TestRecords_RegisterDuplicate(t *testing.T) {
	f := newFixture()
	input := script("2", "3", "540001", "f", "Grant", "Tess", "1 Way", "5550200000", "tess@jam.example", "1980-03-03", "50000", "6")
	if err := f.records(input).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, f.out.String(), "A record already exists with this ID...")
}

func TestRecords_PromoteCaptainReprompts(t *testing.T) {
	f := newFixture()
	input := script(
		"3",
		strconv.Itoa(player.MinID+1), // already a captain
		strconv.Itoa(player.MinID+2),
		"11 Main Street",
		"0123456789012345",
		"4111111111111111",
		"Ben Jones",
		"2030-13",
		"2030-06",
		"Visa",
		"6",
	)
	if err := f.records(input).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	out := f.out.String()
	assertContains(t, out, "Please select a valid ID", "Player successfully promoted.")
	if strings.Count(out, "Please try again.") != 2 {
		t.Fatalf("expected card number and expiry to be reprompted, got:\n%s", out)
	}
	if got := len(f.db.Captains()); got != 2 {
		t.Fatalf("expected 2 captains, got %d", got)
	}
}

func TestRecords_PromoteCancel(t *testing.T) {
	f := newFixture()
	if err := f.records(script("3", "0", "6")).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := len(f.db.Captains()); got != 1 {
		t.Fatalf("expected captains unchanged, got %d", got)
	}
}

func TestRecords_CancelGameWithAnnouncement(t *testing.T) {
	f := newFixture()
	date := civil.FormatDate(f.today.AddDate(0, 0, 14))
	if err := f.records(script("4", "1", date, "y", "1000001", "6")).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := "Captains, your upcoming game for " + date + " between Pucks and Flyers was cancelled."
	assertContains(t, f.out.String(), "Deleted game successfully.", want, "Message sent successfully.")

	sent := f.db.Announcements()
	if len(sent) != 1 || sent[0].Message != want || !sent[0].SentDate.Equal(f.today) {
		t.Fatalf("unexpected announcements: %+v", sent)
	}
}

func TestRecords_MoveGameSharingDate(t *testing.T) {
	f := newFixture()
	from := civil.FormatDate(f.today.AddDate(0, 0, 7))
	to := civil.FormatDate(f.today.AddDate(0, 0, 21))
	if err := f.records(script("4", "2", from, "20:00", to, "19:30", "n", "6")).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, f.out.String(), "Time of Game (HH:MM)", "Moved game to "+to+" at 19:30.")
	if len(f.db.Announcements()) != 0 {
		t.Fatalf("no announcement expected")
	}
}

func TestRecords_MoveGameInvalidTime(t *testing.T) {
	f := newFixture()
	from := civil.FormatDate(f.today.AddDate(0, 0, 14))
	if err := f.records(script("4", "2", from, "2030-01-01", "25:00", "6")).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, f.out.String(), "The time is not valid. Returning to main.")
}

func TestRecords_PastGameIsNotSelectable(t *testing.T) {
	f := newFixture()
	past := civil.FormatDate(f.today.AddDate(0, 0, -3))
	if err := f.records(script("4", "1", past, "6")).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, f.out.String(), msgNotUpcoming)
}

func TestRecords_AlterSalaryPercentDecrease(t *testing.T) {
	f := newFixture()
	if err := f.records(script("5", "540001", "x", "d", "p", "-5", "10", "6")).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, f.out.String(),
		"Coordinators:",
		"Officials:",
		"Please input 'i' or 'd'",
		"Please enter a positive value.",
		"Salary successfully updated. New salary = $45000/year",
	)
}

func TestRecords_AlterSalaryBelowZero(t *testing.T) {
	f := newFixture()
	if err := f.records(script("5", "300001", "d", "f", "100", "6")).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, f.out.String(), "Update failed.", "salary cannot drop below zero")
}
