package riskscore

import "strings"

const (
	MaxScore = 100

	conditionPoints     = 5
	conditionCap        = 30
	hospitalizationPts  = 10
	hospitalizationCap  = 30
	defaultSleepHours   = 7
	minHealthySleep     = 6
	maxHealthySleep     = 9
	abnormalSleepPoints = 5
)

// Intake is the medical and lifestyle data collected during onboarding.
type Intake struct {
	Conditions         []string
	Hospitalizations   int
	SmokingStatus      string
	AlcoholConsumption string
	ExerciseFrequency  string
	// SleepHours is nil when the patient did not answer.
	SleepHours *float64
}

// Calculate maps intake data to a score in [0, 100]. Absent fields contribute nothing.
func Calculate(in Intake) int {
	score := 0

	score += min(distinctCount(in.Conditions)*conditionPoints, conditionCap)

	switch in.SmokingStatus {
	case "current":
		score += 15
	case "former":
		score += 5
	}

	switch in.AlcoholConsumption {
	case "heavy":
		score += 10
	case "moderate":
		score += 5
	}

	switch in.ExerciseFrequency {
	case "none":
		score += 10
	case "1-2_per_week":
		score += 5
	}

	sleep := sleepHours(in.SleepHours)
	if sleep < minHealthySleep || sleep > maxHealthySleep {
		score += abnormalSleepPoints
	}

	if in.Hospitalizations > 0 {
		score += min(in.Hospitalizations*hospitalizationPts, hospitalizationCap)
	}

	return min(score, MaxScore)
}

// sleepHours truncates to whole hours; an unset answer or one that truncates to zero counts as the default.
func sleepHours(h *float64) int {
	if h == nil {
		return defaultSleepHours
	}
	whole := int(*h)
	if whole == 0 {
		return defaultSleepHours
	}
	return whole
}

func distinctCount(conditions []string) int {
	seen := make(map[string]struct{}, len(conditions))
	for _, c := range conditions {
		key := strings.ToLower(strings.TrimSpace(c))
		if key == "" {
			continue
		}
		seen[key] = struct{}{}
	}
	return len(seen)
}
