package service

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"rpg-api/backend/internal/models"
	"rpg-api/backend/internal/repository"
	apperrors "rpg-api/backend/pkg/errors"
	"rpg-api/backend/pkg/middleware"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "rpg-api/backend/internal/service"

// Validation thresholds
const (
	MinDefense          = 10
	MaxIntelligence     = 30
	MinMageIntelligence = 35
)

type CharacterService struct {
	repo     repository.CharacterRepository
	tracer   trace.Tracer
	appended metric.Int64Counter
	rejected metric.Int64Counter
}

// NewCharacterService uses the global otel providers, so observability must be
// set up before the service is created for spans and counters to be exported.
func NewCharacterService(repo repository.CharacterRepository) *CharacterService {
	meter := otel.Meter(instrumentationName)
	appended, err := meter.Int64Counter("catalog.characters.appended",
		metric.WithDescription("Characters added to the catalog"))
	if err != nil {
		appended = noop.Int64Counter{}
	}
	rejected, err := meter.Int64Counter("catalog.validation.rejected",
		metric.WithDescription("Candidates rejected by a validation rule"))
	if err != nil {
		rejected = noop.Int64Counter{}
	}

	return &CharacterService{
		repo:     repo,
		tracer:   otel.Tracer(instrumentationName),
		appended: appended,
		rejected: rejected,
	}
}

// FindByName returns the first character whose name matches case-insensitively
func (s *CharacterService) FindByName(ctx context.Context, name string) (*models.Character, error) {
	_, span := s.tracer.Start(ctx, "CharacterService.FindByName",
		trace.WithAttributes(attribute.String("character.name", name)))
	defer span.End()

	for _, c := range s.repo.All() {
		if strings.EqualFold(c.Name, name) {
			found := c
			return &found, nil
		}
	}

	return nil, apperrors.NewNotFoundError(apperrors.CodeCharacterNotFound, "character not found").
		WithParams(name)
}

// FilterClericOrMage returns clerics and mages ordered by hit points, ties in catalog order
func (s *CharacterService) FilterClericOrMage(ctx context.Context) []models.Character {
	_, span := s.tracer.Start(ctx, "CharacterService.FilterClericOrMage")
	defer span.End()

	result := []models.Character{}
	for _, c := range s.repo.All() {
		if c.Class == models.ClassCleric || c.Class == models.ClassMage {
			result = append(result, c)
		}
	}
	slices.SortStableFunc(result, func(a, b models.Character) int {
		return cmp.Compare(a.HitPoints, b.HitPoints)
	})
	return result
}

func (s *CharacterService) ComputeStatistics(ctx context.Context) models.Statistics {
	_, span := s.tracer.Start(ctx, "CharacterService.ComputeStatistics")
	defer span.End()

	var stats models.Statistics
	for _, c := range s.repo.All() {
		stats.Count++
		stats.IntelligenceTotal += c.Intelligence
	}
	return stats
}

// AppendWithBasicValidation enforces the defense floor and the intelligence
// ceiling, in that order, before appending.
func (s *CharacterService) AppendWithBasicValidation(ctx context.Context, candidate models.Character) ([]models.Character, error) {
	ctx, span := s.tracer.Start(ctx, "CharacterService.AppendWithBasicValidation")
	defer span.End()

	if candidate.Defense < MinDefense {
		return nil, s.reject(ctx, apperrors.CodeDefenseTooLow, "defense below minimum")
	}
	if candidate.Intelligence > MaxIntelligence {
		return nil, s.reject(ctx, apperrors.CodeIntelligenceTooHigh, "intelligence above maximum")
	}

	return s.append(ctx, candidate), nil
}

// AppendWithMageValidation only constrains mages; other classes are appended as-is.
func (s *CharacterService) AppendWithMageValidation(ctx context.Context, candidate models.Character) ([]models.Character, error) {
	ctx, span := s.tracer.Start(ctx, "CharacterService.AppendWithMageValidation")
	defer span.End()

	if candidate.Class == models.ClassMage && candidate.Intelligence < MinMageIntelligence {
		return nil, s.reject(ctx, apperrors.CodeMageIntelligenceTooLow, "mage intelligence below minimum")
	}

	return s.append(ctx, candidate), nil
}

// FilterByClassOrdinal returns characters of the given class in catalog order.
// sortByStrength orders them by strength descending instead.
func (s *CharacterService) FilterByClassOrdinal(ctx context.Context, ordinal int, sortByStrength bool) []models.Character {
	_, span := s.tracer.Start(ctx, "CharacterService.FilterByClassOrdinal",
		trace.WithAttributes(
			attribute.Int("character.class", ordinal),
			attribute.Bool("sort.strength", sortByStrength),
		))
	defer span.End()

	result := []models.Character{}
	for _, c := range s.repo.All() {
		if c.Class.Ordinal() == ordinal {
			result = append(result, c)
		}
	}
	if sortByStrength {
		slices.SortStableFunc(result, func(a, b models.Character) int {
			return cmp.Compare(b.Strength, a.Strength)
		})
	}
	return result
}

// Count returns the catalog size
func (s *CharacterService) Count() int {
	return s.repo.Count()
}

func (s *CharacterService) append(ctx context.Context, candidate models.Character) []models.Character {
	updated := s.repo.Append(candidate)
	s.appended.Add(ctx, 1, metric.WithAttributes(attribute.String("class", candidate.Class.String())))
	return updated
}

func (s *CharacterService) reject(ctx context.Context, code, message string) *apperrors.AppError {
	s.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("rule", code)))
	trace.SpanFromContext(ctx).AddEvent("validation rejected",
		trace.WithAttributes(
			attribute.String("rule", code),
			attribute.String("request.id", middleware.GetRequestID(ctx)),
		))
	return apperrors.NewBadRequestError(code, message)
}
