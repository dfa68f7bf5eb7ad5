package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"hoteladmin/dto"
	"hoteladmin/models"
)

// ScoredGuest es un huésped con su puntaje de afinidad contra la búsqueda.
type ScoredGuest struct {
	Guest models.Guest `json:"guest"`
	Score int          `json:"score"`
}

const fuzzyPageLimit = 200

// SearchFuzzy busca huéspedes tolerando acentos y errores de tecleo: "Jose"
// encuentra a "José". Trae la primera página grande del backend, puntúa
// localmente y regresa solo coincidencias con puntaje positivo, de mayor a
// menor.
func (s *GuestService) SearchFuzzy(ctx context.Context, query string) ([]ScoredGuest, error) {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		return []ScoredGuest{}, nil
	}

	list, err := s.List(ctx, dto.GuestListFilters{Page: 1, Limit: fuzzyPageLimit})
	if err != nil {
		return nil, err
	}

	matcher := createMatcher(guestNameIndex(list.Guests))
	return scoreGuests(normalizedQuery, list.Guests, matcher), nil
}

// normalizeInput baja a minúsculas y transcribe a ascii para que el match
// ignore acentos.
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

// createMatcher arma el índice de n-gramas sobre los nombres normalizados.
func createMatcher(names []string) *closestmatch.ClosestMatch {
	return closestmatch.New(names, []int{2, 3})
}

// calculateSimilarity regresa la similitud entre dos cadenas en [0, 1].
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len([]rune(a)))
	if l := float64(len([]rune(b))); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

func guestNameIndex(guests []models.Guest) []string {
	unique := make(map[string]bool, len(guests))
	for _, guest := range guests {
		name := normalizeInput(guest.FullName())
		if name != "" {
			unique[name] = true
		}
	}

	names := make([]string, 0, len(unique))
	for name := range unique {
		names = append(names, name)
	}
	return names
}

func scoreGuests(query string, guests []models.Guest, matcher *closestmatch.ClosestMatch) []ScoredGuest {
	closestName := matcher.Closest(query)

	scoreCh := make(chan ScoredGuest, len(guests))
	var wg sync.WaitGroup

	for _, guest := range guests {
		wg.Add(1)
		go func(guest models.Guest) {
			defer wg.Done()
			score := scoreGuest(query, guest, closestName)
			if score > 0 {
				scoreCh <- ScoredGuest{Guest: guest, Score: score}
			}
		}(guest)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	scored := make([]ScoredGuest, 0, len(guests))
	for sg := range scoreCh {
		scored = append(scored, sg)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Guest.ID < scored[j].Guest.ID
	})
	return scored
}

// scoreGuest pondera nombre, correo y documento. El nombre pesa más; el
// documento solo cuenta con coincidencia exacta.
func scoreGuest(query string, guest models.Guest, closestName string) int {
	name := normalizeInput(guest.FullName())
	score := 0

	// El ganador del matcher solo cuenta si de verdad se parece a lo tecleado
	if closestName != "" && name == closestName &&
		(strings.Contains(name, query) || calculateSimilarity(query, name) > 0.5) {
		score += 20
	}
	if similarity := calculateSimilarity(query, name); similarity > 0.7 {
		score += 15
	} else if strings.Contains(name, query) {
		score += 10
	}

	email := normalizeInput(guest.Email)
	if strings.Contains(email, query) {
		score += 8
	}

	document := normalizeInput(guest.DocumentNumber)
	if document != "" && document == query {
		score += 12
	}

	phone := strings.TrimSpace(guest.Phone)
	if phone != "" && strings.Contains(phone, strings.TrimSpace(query)) {
		score += 5
	}

	return score
}
