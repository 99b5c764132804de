package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"laborlink/internal/matching"
)

const (
	jobsSearchPrefix       = "jobs:search:"
	jobsSearchPattern      = jobsSearchPrefix + "*"
	jobsBoardGenerationKey = "jobs:generation"
)

type jobSearchCacheKeyInput struct {
	Scope      string `json:"scope"`
	Category   string `json:"category,omitempty"`
	Type       string `json:"type,omitempty"`
	Experience string `json:"experience,omitempty"`
	Salary     string `json:"salary,omitempty"`
	Country    string `json:"country,omitempty"`
	Search     string `json:"search,omitempty"`
	Locale     string `json:"locale"`
	Generation int64  `json:"generation"`
}

func deref[T ~string](p *T) string {
	if p == nil {
		return ""
	}
	return string(*p)
}

// JobsSearchCacheKey hashes already-parsed criteria, so "All" and blank
// facets share a key. Only the case-insensitive facets are folded.
// generation is the board generation read before loading jobs; every
// create or delete bumps it, so a result computed from an older board is
// never served afterwards.
func JobsSearchCacheKey(c matching.Criteria, locale string, generation int64) string {
	in := jobSearchCacheKeyInput{
		Scope:      string(c.Scope),
		Category:   deref(c.Category),
		Type:       deref(c.Type),
		Experience: strings.ToLower(deref(c.Experience)),
		Salary:     deref(c.Salary),
		Country:    deref(c.Country),
		Search:     strings.ToLower(c.Search),
		Locale:     strings.ToLower(strings.TrimSpace(locale)),
		Generation: generation,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return jobsSearchPrefix + hex.EncodeToString(sum[:])
}

func JobsSearchLockKey(searchKey string) string {
	searchKey = strings.TrimSpace(searchKey)
	if strings.HasPrefix(searchKey, jobsSearchPrefix) {
		return "jobs:lock:" + strings.TrimPrefix(searchKey, jobsSearchPrefix)
	}
	return "jobs:lock:" + searchKey
}
