package matching

import (
	"strings"

	"laborlink/internal/domain/job"
)

// Matches reports whether j is selected by c. Every facet is independent and
// the result is their conjunction. It never fails: malformed salaries
// degrade to a zero magnitude.
func Matches(j job.Job, c Criteria) bool {
	return j.Scope == c.Scope &&
		matchCategory(j, c.Category) &&
		matchType(j, c.Type) &&
		matchExperience(j, c.Experience) &&
		matchCountry(j, c) &&
		matchSalary(j, c.Salary) &&
		matchSearch(j, c.Search)
}

// Filter returns the active jobs selected by c in input order.
func Filter(jobs []job.Job, c Criteria) []job.Job {
	out := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if !j.IsActive {
			continue
		}
		if Matches(j, c) {
			out = append(out, j)
		}
	}
	return out
}

func matchCategory(j job.Job, category *string) bool {
	return category == nil || j.Category == *category
}

func matchType(j job.Job, t *job.Type) bool {
	return t == nil || j.Type == *t
}

func matchExperience(j job.Job, exp *string) bool {
	if exp == nil {
		return true
	}
	if j.ExperienceLevel == nil {
		return false
	}
	return containsFold(*j.ExperienceLevel, *exp)
}

// Country is only a facet of the international board.
func matchCountry(j job.Job, c Criteria) bool {
	if c.Scope != job.ScopeInternational || c.Country == nil {
		return true
	}
	return strings.Contains(j.Location, *c.Country)
}

func matchSalary(j job.Job, b *Bucket) bool {
	if b == nil {
		return true
	}
	return b.Matches(j.Type, salaryMagnitude(j.Salary))
}

func matchSearch(j job.Job, term string) bool {
	if term == "" {
		return true
	}
	return containsFold(j.Title, term) || containsFold(j.Location, term)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
