package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/octobees/vendor-matching/internal/dto"
	"github.com/octobees/vendor-matching/internal/metrics"
	"github.com/octobees/vendor-matching/internal/repository"
	"github.com/octobees/vendor-matching/internal/service/intent"
	"github.com/octobees/vendor-matching/internal/service/scoring"
)

// DefaultMatchLimit caps how many ranked vendors a results turn returns.
const DefaultMatchLimit = 8

const (
	askCategoryMessage = "Quel type de prestataire recherchez-vous ? Par exemple un photographe, un traiteur, un lieu de réception, un DJ ou un fleuriste."
	askRegionMessage   = "Très bien, je recherche un prestataire « %s ». Dans quelle ville ou quelle région aura lieu votre mariage ?"
	resultsMessage     = "Voici %d prestataire(s) « %s » en %s qui correspondent à votre demande."
	noResultsMessage   = "Je n'ai trouvé aucun prestataire « %s » en %s pour le moment. Essayez une autre région ou un budget plus large."
	failureMessage     = "Désolé, la recherche de prestataires a rencontré un problème. Merci de réessayer dans quelques instants."
)

// MatchingService turns a chat message into a ranked vendor selection.
type MatchingService struct {
	repo    repository.VendorsRepository
	limit   int
	metrics *metrics.Metrics
}

// NewMatchingService creates a matching service. A non-positive limit falls
// back to DefaultMatchLimit; m may be nil.
func NewMatchingService(repo repository.VendorsRepository, limit int, m *metrics.Metrics) *MatchingService {
	if limit <= 0 {
		limit = DefaultMatchLimit
	}
	return &MatchingService{repo: repo, limit: limit, metrics: m}
}

// Match resolves one chat turn. It asks for a category, then a region, and
// only then reads the vendor store. A store failure yields the apologetic
// response together with the error; the response is always usable.
func (s *MatchingService) Match(ctx context.Context, query dto.MatchQuery) (dto.MatchResponse, error) {
	start := time.Now()
	resp, err := s.match(ctx, query)
	s.metrics.ObserveMatch(string(resp.Mode), time.Since(start))
	return resp, err
}

func (s *MatchingService) match(ctx context.Context, query dto.MatchQuery) (dto.MatchResponse, error) {
	normalized := intent.Normalize(query.RawMessage)

	category, ok := resolveCategory(query.ProvidedCategory, normalized)
	if !ok {
		return dto.MatchResponse{
			Mode:    dto.ModeNeedsCategory,
			Message: askCategoryMessage,
			Vendors: []scoring.ScoredVendor{},
		}, nil
	}

	region, ok := resolveRegion(query.ProvidedRegion, normalized)
	if !ok {
		return dto.MatchResponse{
			Mode:     dto.ModeNeedsRegion,
			Message:  fmt.Sprintf(askRegionMessage, category),
			Category: &category,
			Vendors:  []scoring.ScoredVendor{},
		}, nil
	}

	budget := intent.ExtractBudget(query.RawMessage)
	var ceiling *int
	if budget != nil {
		ceiling = &budget.Max
	}

	candidates, err := s.repo.FindVendors(ctx, string(category), string(region), ceiling)
	if err != nil {
		s.metrics.StoreError()
		log.Printf("vendor match failed category=%q region=%q err=%v", category, region, err)
		return dto.MatchResponse{
			Message: failureMessage,
			Vendors: []scoring.ScoredVendor{},
		}, fmt.Errorf("find vendors: %w", err)
	}

	ranked := scoring.Rank(candidates, query.RawMessage, budget, s.limit)

	message := fmt.Sprintf(resultsMessage, len(ranked), category, region)
	if len(ranked) == 0 {
		message = fmt.Sprintf(noResultsMessage, category, region)
	}

	return dto.MatchResponse{
		Mode:     dto.ModeResults,
		Message:  message,
		Category: &category,
		Region:   &region,
		Budget:   budget,
		Vendors:  ranked,
	}, nil
}

func resolveCategory(provided *intent.Category, normalized string) (intent.Category, bool) {
	if provided != nil && *provided != "" {
		return *provided, true
	}
	return intent.DetectCategory(normalized)
}

func resolveRegion(provided *intent.Region, normalized string) (intent.Region, bool) {
	if provided != nil && *provided != "" {
		return *provided, true
	}
	return intent.ExtractRegion(normalized)
}
