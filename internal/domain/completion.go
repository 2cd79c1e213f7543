package domain

import (
	"fmt"
	"strings"
)

// ProfileCompletion reports how complete a job seeker profile is. Every group
// percentage is either 0 or 100.
type ProfileCompletion struct {
	OverallPercentage    int `json:"overall_percentage"`
	BioPercentage        int `json:"bio_percentage"`
	ExperiencePercentage int `json:"experience_percentage"`
	SkillsPercentage     int `json:"skills_percentage"`
}

const (
	bioWeight        = 50
	experienceWeight = 30
	skillsWeight     = 20
)

func bioFields(s *JobSeeker) []any {
	return []any{s.FirstName, s.LastName, s.DesiredJobTitle, s.PhoneNumber, s.CurrentSalary, s.Location}
}

func experienceFields(s *JobSeeker) []any {
	return []any{s.PastExperience}
}

func skillsFields(s *JobSeeker) []any {
	return []any{s.SkillSet}
}

// ScoreCompletion computes the weighted completion of a profile. A group only
// counts when all of its fields are filled; there is no partial credit.
func ScoreCompletion(s *JobSeeker) ProfileCompletion {
	if s == nil {
		return ProfileCompletion{}
	}

	var out ProfileCompletion
	if groupComplete(bioFields(s)) {
		out.BioPercentage = 100
		out.OverallPercentage += bioWeight
	}
	if groupComplete(experienceFields(s)) {
		out.ExperiencePercentage = 100
		out.OverallPercentage += experienceWeight
	}
	if groupComplete(skillsFields(s)) {
		out.SkillsPercentage = 100
		out.OverallPercentage += skillsWeight
	}
	return out
}

func groupComplete(fields []any) bool {
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if !filled(f) {
			return false
		}
	}
	return true
}

func filled(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	case *string:
		return val != nil && strings.TrimSpace(*val) != ""
	case *int64:
		return val != nil
	default:
		return strings.TrimSpace(fmt.Sprint(val)) != ""
	}
}
