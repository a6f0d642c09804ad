package service

import (
	"math"

	"guard-ops-backend/internal/database/models"
)

// Scoring weights and caps. The base score is adjusted by a capped distance
// penalty, a capped experience bonus, an availability bonus and a capped
// workload penalty, then clamped at zero.
const (
	baseScore          = 100.0
	distancePenaltyPer = 2.0
	distancePenaltyCap = 50.0
	experienceBonusPer = 5.0
	experienceBonusCap = 20.0
	availabilityBonus  = 10.0
	workloadPenaltyPer = 5.0
	workloadPenaltyCap = 30.0

	earthRadiusKm = 6371.0
)

// HaversineKm computes the great-circle distance in kilometers between two
// coordinate pairs.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	rLat1 := lat1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// CandidateInput is everything the scorer looks at. Same inputs always
// produce the same score.
type CandidateInput struct {
	DistanceKm       float64
	ExperienceYears  *int
	AvailableNow     bool
	PriorAssignments int
}

// Score computes the fitness of a candidate guard for a coverage gap.
// Never negative.
func Score(in CandidateInput) float64 {
	score := baseScore

	score -= math.Min(in.DistanceKm*distancePenaltyPer, distancePenaltyCap)

	if in.ExperienceYears != nil {
		score += math.Min(float64(*in.ExperienceYears)*experienceBonusPer, experienceBonusCap)
	}

	if in.AvailableNow {
		score += availabilityBonus
	}

	score -= math.Min(float64(in.PriorAssignments)*workloadPenaltyPer, workloadPenaltyCap)

	if score < 0 {
		return 0
	}
	return score
}

// ScoreGuard scores a guard against an installation. Both must have known
// coordinates; callers filter the roster before scoring.
func ScoreGuard(guard *models.Guard, installation *models.Installation) (score, distanceKm float64) {
	distanceKm = HaversineKm(*installation.Latitude, *installation.Longitude, *guard.Latitude, *guard.Longitude)
	score = Score(CandidateInput{
		DistanceKm:       distanceKm,
		ExperienceYears:  guard.ExperienceYears,
		AvailableNow:     guard.AvailableNow,
		PriorAssignments: guard.PriorAssignments,
	})
	return score, distanceKm
}
