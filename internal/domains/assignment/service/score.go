package service

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"pawsit/internal/domains/assignment/model"
	sitterModel "pawsit/internal/domains/sitter/model"
	"pawsit/shared/geo"
)

// Filtering and scoring constants. The score is an additive heuristic, not a
// probability: terms are tuned so the preferred-sitter bonus dominates every
// other factor combined.
const (
	minRating     = 3.0
	maxDistanceKm = 50.0

	ratingWeight         = 8.0
	experienceDivisor    = 10.0
	experienceCap        = 20.0
	distanceBase         = 30.0
	unknownDistanceScore = 15.0
	petMatchWeight       = 2.5
	preferredBonus       = 50.0
	workloadPerDay       = 2.0
	workloadCap          = 20.0
	neverAssignedScore   = 25.0

	confidenceBase           = 0.5
	nearbyDistanceKm         = 10.0
	highRating               = 4.5
	goodRating               = 4.0
	highExperienceBookings   = 20
	mediumExperienceBookings = 10
)

const ReasonNoCandidates = "No suitable sitters available"

// RankedCandidate pairs a candidate with its computed score.
type RankedCandidate struct {
	Candidate sitterModel.Candidate
	Score     float64
}

// FilterCandidates applies the eligibility predicates and computes distance
// where both locations are known. Candidates with unknown distance are kept:
// missing location data must not block assignment.
func FilterCandidates(candidates []sitterModel.Candidate, criteria model.Criteria) []sitterModel.Candidate {
	eligible := make([]sitterModel.Candidate, 0, len(candidates))

	for _, c := range candidates {
		if !c.Active || !c.Available || !c.Availability.IsAvailable {
			continue
		}

		if len(criteria.PetTypes) > 0 && countPetMatches(c.PetTypes, criteria.PetTypes) == 0 {
			continue
		}

		if c.Rating < minRating {
			continue
		}

		if c.Location != nil && criteria.BookingLocation != nil {
			distance := geo.DistanceKm(*c.Location, *criteria.BookingLocation)
			c.DistanceKm = &distance
		}

		if c.DistanceKm != nil && *c.DistanceKm > maxDistanceKm {
			continue
		}

		eligible = append(eligible, c)
	}

	return eligible
}

// countPetMatches counts the criteria pet types present in the candidate's
// tags, case-insensitively.
func countPetMatches(tags, required []string) int {
	matches := 0

	for _, want := range required {
		for _, tag := range tags {
			if strings.EqualFold(tag, want) {
				matches++

				break
			}
		}
	}

	return matches
}

// ScoreCandidate computes the additive score for one candidate. Pure: the
// same candidate, criteria and reference time always yield the same score.
func ScoreCandidate(c sitterModel.Candidate, criteria model.Criteria, now time.Time) float64 {
	score := c.Rating * ratingWeight

	score += math.Min(float64(c.TotalBookings)/experienceDivisor, experienceCap)

	if c.DistanceKm != nil {
		score += math.Max(distanceBase-*c.DistanceKm, 0.0)
	} else {
		score += unknownDistanceScore
	}

	score += petMatchWeight * float64(countPetMatches(c.PetTypes, criteria.PetTypes))

	if criteria.PreferredSitterID != nil && *criteria.PreferredSitterID == c.ID {
		score += preferredBonus
	}

	if c.LastAssignedAt != nil {
		days := now.Sub(*c.LastAssignedAt).Hours() / 24.0
		score += math.Min(days*workloadPerDay, workloadCap)
	} else {
		score += neverAssignedScore
	}

	return score
}

// RankCandidates scores and orders candidates best-first. Ties break on
// ascending candidate id so repeated runs over the same roster produce the
// same ranking regardless of fetch order.
func RankCandidates(candidates []sitterModel.Candidate, criteria model.Criteria, now time.Time) []RankedCandidate {
	ranked := make([]RankedCandidate, 0, len(candidates))

	for _, c := range candidates {
		ranked = append(ranked, RankedCandidate{Candidate: c, Score: ScoreCandidate(c, criteria, now)})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}

		return ranked[i].Candidate.ID < ranked[j].Candidate.ID
	})

	return ranked
}

// Confidence rates the strength of the pick on [0,1]. It is a heuristic
// ladder over the same signals the score uses, not a calibrated probability.
func Confidence(c sitterModel.Candidate, criteria model.Criteria) float64 {
	value := confidenceBase

	switch {
	case c.Rating >= highRating:
		value += 0.2
	case c.Rating >= goodRating:
		value += 0.1
	}

	switch {
	case c.TotalBookings >= highExperienceBookings:
		value += 0.2
	case c.TotalBookings >= mediumExperienceBookings:
		value += 0.1
	}

	if c.DistanceKm != nil && *c.DistanceKm <= nearbyDistanceKm {
		value += 0.1
	}

	if len(criteria.PetTypes) > 0 && countPetMatches(c.PetTypes, criteria.PetTypes) == len(criteria.PetTypes) {
		value += 0.1
	}

	return math.Min(value, 1.0)
}

// BuildReasons assembles the human-readable justification for a pick. The
// strings mirror the confidence thresholds but feed no downstream logic.
func BuildReasons(c sitterModel.Candidate, criteria model.Criteria) []string {
	reasons := []string{}

	if criteria.PreferredSitterID != nil && *criteria.PreferredSitterID == c.ID {
		reasons = append(reasons, "Preferred sitter requested by the client")
	}

	switch {
	case c.Rating >= highRating:
		reasons = append(reasons, fmt.Sprintf("Excellent rating of %.1f out of 5", c.Rating))
	case c.Rating >= goodRating:
		reasons = append(reasons, fmt.Sprintf("Strong rating of %.1f out of 5", c.Rating))
	default:
		reasons = append(reasons, fmt.Sprintf("Rated %.1f out of 5", c.Rating))
	}

	switch {
	case c.TotalBookings >= highExperienceBookings:
		reasons = append(reasons, fmt.Sprintf("Highly experienced with %d completed bookings", c.TotalBookings))
	case c.TotalBookings >= mediumExperienceBookings:
		reasons = append(reasons, fmt.Sprintf("Experienced with %d completed bookings", c.TotalBookings))
	default:
		reasons = append(reasons, fmt.Sprintf("Has completed %d bookings", c.TotalBookings))
	}

	if c.DistanceKm != nil {
		reasons = append(reasons, fmt.Sprintf("%.1f km from the booking location", *c.DistanceKm))
	}

	if len(criteria.PetTypes) > 0 {
		matches := countPetMatches(c.PetTypes, criteria.PetTypes)
		if matches == len(criteria.PetTypes) {
			reasons = append(reasons, "Supports all requested pet types")
		} else {
			reasons = append(reasons, fmt.Sprintf("Supports %d of %d requested pet types", matches, len(criteria.PetTypes)))
		}
	}

	if c.LastAssignedAt == nil {
		reasons = append(reasons, "New sitter with open availability")
	}

	return reasons
}
