package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/jam-league/internal/domain/player"
	"github.com/riskibarqy/jam-league/internal/platform/civil"
)

// LookupFilter is one raw value typed at the lookup prompt.
type LookupFilter struct {
	Field player.Field
	Value string
}

// LookupSelection is the parsed digit sequence of a lookup. Repeated lists
// fields chosen more than once; only the first occurrence is kept.
type LookupSelection struct {
	Fields   []player.Field
	Repeated []player.Field
}

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

// ParseLookupSelection reads a digit sequence such as "34" into lookup
// fields. Any character that is not a field digit rejects the sequence.
func ParseLookupSelection(raw string) (LookupSelection, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return LookupSelection{}, fmt.Errorf("%w: choose at least one field", ErrInvalidInput)
	}

	var out LookupSelection
	seen := make(map[player.Field]struct{}, len(raw))
	for _, r := range raw {
		f, ok := player.ParseField(r)
		if !ok {
			return LookupSelection{}, fmt.Errorf("%w: %q is not a lookup field", ErrInvalidInput, r)
		}
		if _, dup := seen[f]; dup {
			out.Repeated = append(out.Repeated, f)
			continue
		}
		seen[f] = struct{}{}
		out.Fields = append(out.Fields, f)
	}

	return out, nil
}

// Lookup returns players matching every filter.
func (s *PlayerService) Lookup(ctx context.Context, filters []LookupFilter) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Lookup")
	defer span.End()

	if len(filters) == 0 {
		return nil, fmt.Errorf("%w: lookup needs at least one criterion", ErrInvalidInput)
	}

	criteria := make([]player.Criterion, 0, len(filters))
	seen := make(map[player.Field]struct{}, len(filters))
	for _, f := range filters {
		if _, dup := seen[f.Field]; dup {
			continue
		}
		seen[f.Field] = struct{}{}

		c, err := parseCriterion(f)
		if err != nil {
			return nil, err
		}
		criteria = append(criteria, c)
	}

	players, err := s.playerRepo.Search(ctx, criteria)
	if err != nil {
		return nil, storeError(err, "search players")
	}

	return players, nil
}

func parseCriterion(f LookupFilter) (player.Criterion, error) {
	raw := strings.TrimSpace(f.Value)
	switch f.Field {
	case player.FieldID:
		id, err := strconv.Atoi(raw)
		if err != nil {
			return player.Criterion{}, fmt.Errorf("%w: player id must be an integer", ErrInvalidInput)
		}
		return player.Criterion{Field: f.Field, Value: id}, nil
	case player.FieldBirthday, player.FieldDateCreated:
		date, err := civil.ParseDate(raw)
		if err != nil {
			return player.Criterion{}, fmt.Errorf("%w: %s: %v", ErrInvalidInput, f.Field.Label(), err)
		}
		return player.Criterion{Field: f.Field, Value: date}, nil
	case player.FieldGender:
		return player.Criterion{Field: f.Field, Value: strings.ToLower(raw)}, nil
	case player.FieldLastName, player.FieldFirstName, player.FieldAddress, player.FieldPhone, player.FieldEmail:
		return player.Criterion{Field: f.Field, Value: raw}, nil
	default:
		return player.Criterion{}, fmt.Errorf("%w: unknown lookup field %d", ErrInvalidInput, f.Field)
	}
}
