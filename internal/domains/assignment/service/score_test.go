package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pawsit/internal/domains/assignment/model"
	"pawsit/internal/domains/assignment/service"
	sitterModel "pawsit/internal/domains/sitter/model"
	"pawsit/shared/geo"
)

func eligibleCandidate(id string) sitterModel.Candidate {
	return sitterModel.Candidate{
		ID:           id,
		FullName:     "Sitter " + id,
		Active:       true,
		Available:    true,
		Availability: sitterModel.DefaultAvailability(id),
		PetTypes:     []string{"dog"},
		Rating:       4.0,
	}
}

func TestFilterCandidates(t *testing.T) {
	origin := &geo.Point{Latitude: 0, Longitude: 0}

	tests := []struct {
		name     string
		mutate   func(*sitterModel.Candidate)
		criteria model.Criteria
		kept     bool
	}{
		{
			name:   "eligible candidate passes",
			mutate: func(c *sitterModel.Candidate) {},
			kept:   true,
		},
		{
			name:   "inactive profile is excluded",
			mutate: func(c *sitterModel.Candidate) { c.Active = false },
			kept:   false,
		},
		{
			name:   "unavailable profile is excluded",
			mutate: func(c *sitterModel.Candidate) { c.Available = false },
			kept:   false,
		},
		{
			name:   "availability descriptor off is excluded",
			mutate: func(c *sitterModel.Candidate) { c.Availability.IsAvailable = false },
			kept:   false,
		},
		{
			name:   "rating below minimum is excluded",
			mutate: func(c *sitterModel.Candidate) { c.Rating = 2.9 },
			kept:   false,
		},
		{
			name:   "rating at minimum passes",
			mutate: func(c *sitterModel.Candidate) { c.Rating = 3.0 },
			kept:   true,
		},
		{
			name:     "no pet type overlap is excluded",
			mutate:   func(c *sitterModel.Candidate) { c.PetTypes = []string{"cat"} },
			criteria: model.Criteria{PetTypes: []string{"dog"}},
			kept:     false,
		},
		{
			name:     "pet types match case-insensitively",
			mutate:   func(c *sitterModel.Candidate) { c.PetTypes = []string{"Dog"} },
			criteria: model.Criteria{PetTypes: []string{"dog"}},
			kept:     true,
		},
		{
			name:     "no required pet types accepts any tags",
			mutate:   func(c *sitterModel.Candidate) { c.PetTypes = nil },
			criteria: model.Criteria{},
			kept:     true,
		},
		{
			name: "candidate beyond the distance limit is excluded",
			mutate: func(c *sitterModel.Candidate) {
				c.Location = &geo.Point{Latitude: 1.0, Longitude: 0}
			},
			criteria: model.Criteria{BookingLocation: origin},
			kept:     false,
		},
		{
			name: "nearby candidate passes",
			mutate: func(c *sitterModel.Candidate) {
				c.Location = &geo.Point{Latitude: 0.1, Longitude: 0}
			},
			criteria: model.Criteria{BookingLocation: origin},
			kept:     true,
		},
		{
			name:     "unknown location is kept",
			mutate:   func(c *sitterModel.Candidate) { c.Location = nil },
			criteria: model.Criteria{BookingLocation: origin},
			kept:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := eligibleCandidate("sitter-1")
			tt.mutate(&candidate)

			eligible := service.FilterCandidates([]sitterModel.Candidate{candidate}, tt.criteria)

			if tt.kept {
				assert.Len(t, eligible, 1)
			} else {
				assert.Empty(t, eligible)
			}
		})
	}
}

func TestFilterCandidates_ComputesDistance(t *testing.T) {
	candidate := eligibleCandidate("sitter-1")
	candidate.Location = &geo.Point{Latitude: 0.1, Longitude: 0}

	eligible := service.FilterCandidates([]sitterModel.Candidate{candidate}, model.Criteria{
		BookingLocation: &geo.Point{Latitude: 0, Longitude: 0},
	})

	assert.Len(t, eligible, 1)
	assert.NotNil(t, eligible[0].DistanceKm)
	assert.InDelta(t, 11.12, *eligible[0].DistanceKm, 0.05)
}

func TestScoreCandidate(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	fiveDaysAgo := now.AddDate(0, 0, -5)
	distance := 10.0

	tests := []struct {
		name      string
		candidate sitterModel.Candidate
		criteria  model.Criteria
		want      float64
	}{
		{
			name: "all signals known",
			candidate: sitterModel.Candidate{
				ID:             "sitter-1",
				Rating:         4.0,
				TotalBookings:  30,
				DistanceKm:     &distance,
				PetTypes:       []string{"Dog", "cat"},
				LastAssignedAt: &fiveDaysAgo,
			},
			criteria: model.Criteria{PetTypes: []string{"dog"}},
			// 32 rating + 3 experience + 20 distance + 2.5 pets + 10 workload
			want: 67.5,
		},
		{
			name: "unknown distance and never assigned use neutral scores",
			candidate: sitterModel.Candidate{
				ID:     "sitter-2",
				Rating: 3.0,
			},
			// 24 rating + 0 experience + 15 distance + 25 never assigned
			want: 64.0,
		},
		{
			name: "experience contribution is capped",
			candidate: sitterModel.Candidate{
				ID:             "sitter-3",
				Rating:         3.0,
				TotalBookings:  1000,
				LastAssignedAt: &now,
			},
			// 24 rating + 20 experience cap + 15 distance + 0 workload
			want: 59.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, service.ScoreCandidate(tt.candidate, tt.criteria, now), 0.0001)
		})
	}
}

func TestScoreCandidate_IsDeterministic(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	candidate := eligibleCandidate("sitter-1")
	candidate.TotalBookings = 17
	criteria := model.Criteria{PetTypes: []string{"dog"}}

	first := service.ScoreCandidate(candidate, criteria, now)
	for range 10 {
		assert.Equal(t, first, service.ScoreCandidate(candidate, criteria, now))
	}
}

func TestRankCandidates_TieBreaksOnID(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	a := eligibleCandidate("sitter-a")
	b := eligibleCandidate("sitter-b")

	forward := service.RankCandidates([]sitterModel.Candidate{a, b}, model.Criteria{}, now)
	reversed := service.RankCandidates([]sitterModel.Candidate{b, a}, model.Criteria{}, now)

	assert.Equal(t, "sitter-a", forward[0].Candidate.ID)
	assert.Equal(t, "sitter-a", reversed[0].Candidate.ID)
}

func TestRankCandidates_PreferredSitterWins(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	zero := 0.0

	preferred := sitterModel.Candidate{
		ID:           "sitter-preferred",
		Active:       true,
		Available:    true,
		Availability: sitterModel.DefaultAvailability("sitter-preferred"),
		Rating:       3.0,
	}
	strong := sitterModel.Candidate{
		ID:            "sitter-strong",
		Active:        true,
		Available:     true,
		Availability:  sitterModel.DefaultAvailability("sitter-strong"),
		Rating:        5.0,
		TotalBookings: 50,
		DistanceKm:    &zero,
	}

	criteria := model.Criteria{PreferredSitterID: &preferred.ID}

	ranked := service.RankCandidates([]sitterModel.Candidate{strong, preferred}, criteria, now)

	assert.Equal(t, "sitter-preferred", ranked[0].Candidate.ID)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestConfidence(t *testing.T) {
	near := 5.0
	far := 25.0

	tests := []struct {
		name      string
		candidate sitterModel.Candidate
		criteria  model.Criteria
		want      float64
	}{
		{
			name:      "baseline",
			candidate: sitterModel.Candidate{Rating: 3.5, TotalBookings: 5},
			want:      0.5,
		},
		{
			name:      "good rating and medium experience",
			candidate: sitterModel.Candidate{Rating: 4.2, TotalBookings: 12, DistanceKm: &far},
			want:      0.7,
		},
		{
			name: "every signal maxed clamps to one",
			candidate: sitterModel.Candidate{
				Rating:        4.8,
				TotalBookings: 25,
				DistanceKm:    &near,
				PetTypes:      []string{"dog"},
			},
			criteria: model.Criteria{PetTypes: []string{"dog"}},
			want:     1.0,
		},
		{
			name:      "pet bonus requires required pet types",
			candidate: sitterModel.Candidate{Rating: 3.5, PetTypes: []string{"dog"}},
			criteria:  model.Criteria{},
			want:      0.5,
		},
		{
			name:      "partial pet match earns no bonus",
			candidate: sitterModel.Candidate{Rating: 3.5, PetTypes: []string{"dog"}},
			criteria:  model.Criteria{PetTypes: []string{"dog", "cat"}},
			want:      0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.Confidence(tt.candidate, tt.criteria)

			assert.InDelta(t, tt.want, got, 0.0001)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestBuildReasons(t *testing.T) {
	t.Run("preferred sitter leads the explanation", func(t *testing.T) {
		candidate := eligibleCandidate("sitter-1")
		now := time.Now()
		candidate.LastAssignedAt = &now

		reasons := service.BuildReasons(candidate, model.Criteria{PreferredSitterID: &candidate.ID})

		assert.Equal(t, "Preferred sitter requested by the client", reasons[0])
	})

	t.Run("never assigned is called out", func(t *testing.T) {
		candidate := eligibleCandidate("sitter-1")
		candidate.LastAssignedAt = nil

		reasons := service.BuildReasons(candidate, model.Criteria{})

		assert.Contains(t, reasons, "New sitter with open availability")
	})

	t.Run("pet coverage is reported", func(t *testing.T) {
		candidate := eligibleCandidate("sitter-1")
		candidate.PetTypes = []string{"dog"}

		full := service.BuildReasons(candidate, model.Criteria{PetTypes: []string{"dog"}})
		partial := service.BuildReasons(candidate, model.Criteria{PetTypes: []string{"dog", "cat"}})

		assert.Contains(t, full, "Supports all requested pet types")
		assert.Contains(t, partial, "Supports 1 of 2 requested pet types")
	})
}
