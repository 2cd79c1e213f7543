package domain_test

import (
	"testing"

	"jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func fullBio() *domain.JobSeeker {
	return &domain.JobSeeker{
		FirstName:       "Asha",
		LastName:        "Rao",
		DesiredJobTitle: "Backend Engineer",
		PhoneNumber:     "+919876543210",
		CurrentSalary:   900000,
		Location:        "Pune",
	}
}

func TestScoreCompletion(t *testing.T) {
	t.Run("bio only scores 50", func(t *testing.T) {
		got := domain.ScoreCompletion(fullBio())
		assert.Equal(t, domain.ProfileCompletion{
			OverallPercentage:    50,
			BioPercentage:        100,
			ExperiencePercentage: 0,
			SkillsPercentage:     0,
		}, got)
	})

	t.Run("empty profile scores 0", func(t *testing.T) {
		got := domain.ScoreCompletion(&domain.JobSeeker{})
		assert.Equal(t, domain.ProfileCompletion{}, got)
	})

	t.Run("nil profile scores 0", func(t *testing.T) {
		assert.Equal(t, domain.ProfileCompletion{}, domain.ScoreCompletion(nil))
	})

	t.Run("fully populated scores 100", func(t *testing.T) {
		s := fullBio()
		s.PastExperience = strPtr("4 years at a logistics startup")
		s.SkillSet = strPtr("Go, Postgres")

		got := domain.ScoreCompletion(s)
		assert.Equal(t, domain.ProfileCompletion{
			OverallPercentage:    100,
			BioPercentage:        100,
			ExperiencePercentage: 100,
			SkillsPercentage:     100,
		}, got)
	})

	t.Run("one blank bio field drops the whole group", func(t *testing.T) {
		s := fullBio()
		s.PastExperience = strPtr("intern")
		s.SkillSet = strPtr("sql")
		s.Location = ""

		got := domain.ScoreCompletion(s)
		assert.Equal(t, 0, got.BioPercentage)
		assert.Equal(t, 50, got.OverallPercentage)
	})

	t.Run("whitespace counts as empty", func(t *testing.T) {
		s := fullBio()
		s.FirstName = "   "
		s.PastExperience = strPtr(" \t ")

		got := domain.ScoreCompletion(s)
		assert.Equal(t, 0, got.BioPercentage)
		assert.Equal(t, 0, got.ExperiencePercentage)
		assert.Equal(t, 0, got.OverallPercentage)
	})

	t.Run("zero salary is still a value", func(t *testing.T) {
		s := fullBio()
		s.CurrentSalary = 0

		assert.Equal(t, 100, domain.ScoreCompletion(s).BioPercentage)
	})

	t.Run("experience and skills weigh 30 and 20", func(t *testing.T) {
		s := &domain.JobSeeker{PastExperience: strPtr("tutor"), SkillSet: strPtr("Excel")}
		got := domain.ScoreCompletion(s)
		assert.Equal(t, 50, got.OverallPercentage)
		assert.Equal(t, 100, got.ExperiencePercentage)
		assert.Equal(t, 100, got.SkillsPercentage)

		s.SkillSet = nil
		assert.Equal(t, 30, domain.ScoreCompletion(s).OverallPercentage)
	})
}

func TestScoreCompletionEveryBioFieldIsRequired(t *testing.T) {
	blankers := map[string]func(*domain.JobSeeker){
		"first_name":        func(s *domain.JobSeeker) { s.FirstName = "" },
		"last_name":         func(s *domain.JobSeeker) { s.LastName = "" },
		"desired_job_title": func(s *domain.JobSeeker) { s.DesiredJobTitle = "" },
		"phone_number":      func(s *domain.JobSeeker) { s.PhoneNumber = "" },
		"location":          func(s *domain.JobSeeker) { s.Location = " " },
	}

	for field, blank := range blankers {
		t.Run(field, func(t *testing.T) {
			s := fullBio()
			blank(s)
			assert.Equal(t, 0, domain.ScoreCompletion(s).BioPercentage)
		})
	}
}
