package matching

import (
	"strings"

	"laborlink/internal/domain/job"
)

// AllSentinel is the wire value that clients send for "no constraint".
const AllSentinel = "All"

// Criteria is the set of filter facets applied to the board. A nil facet
// places no constraint on the job. Scope is always constrained: domestic and
// international listings are separate browsing modes.
type Criteria struct {
	Scope      job.Scope
	Category   *string
	Type       *job.Type
	Experience *string
	Salary     *Bucket
	Country    *string
	Search     string
}

// ParseFacet turns a raw facet value into an optional constraint. Only the
// empty string and the exact "All" sentinel mean absent; any other value,
// "all" included, is compared literally.
func ParseFacet(raw string) *string {
	if raw == "" || raw == AllSentinel {
		return nil
	}
	return &raw
}

// NewCriteria builds criteria from raw wire values, as sent by the board's
// query string. Unknown enum values are reported through ok=false.
func NewCriteria(scope, category, typ, experience, salary, country, search string) (Criteria, bool) {
	c := Criteria{Scope: job.ScopeDomestic}

	if s := strings.TrimSpace(scope); s != "" {
		c.Scope = job.Scope(s)
		if !c.Scope.Valid() {
			return Criteria{}, false
		}
	}

	c.Category = ParseFacet(category)
	c.Experience = ParseFacet(experience)
	c.Country = ParseFacet(country)
	c.Search = search

	if t := ParseFacet(typ); t != nil {
		jt := job.Type(*t)
		if !jt.Valid() {
			return Criteria{}, false
		}
		c.Type = &jt
	}

	if b := ParseFacet(salary); b != nil {
		bucket, ok := ParseBucket(*b)
		if !ok {
			return Criteria{}, false
		}
		c.Salary = &bucket
	}

	return c, true
}
