package matching

import (
	"math"

	"laborlink/internal/domain/job"
)

type Bucket string

const (
	BucketDailyUnder500   Bucket = "daily_under_500"
	BucketDaily500To1000  Bucket = "daily_500_1000"
	BucketDailyAbove1000  Bucket = "daily_above_1000"
	BucketMonthlyUnder15k Bucket = "monthly_under_15k"
	BucketMonthly15kTo30k Bucket = "monthly_15k_30k"
	BucketMonthlyAbove30k Bucket = "monthly_above_30k"
)

var buckets = map[Bucket]struct{}{
	BucketDailyUnder500:   {},
	BucketDaily500To1000:  {},
	BucketDailyAbove1000:  {},
	BucketMonthlyUnder15k: {},
	BucketMonthly15kTo30k: {},
	BucketMonthlyAbove30k: {},
}

func ParseBucket(s string) (Bucket, bool) {
	b := Bucket(s)
	_, ok := buckets[b]
	return b, ok
}

// ParseSalary extracts the magnitude of a free-text salary by concatenating
// every ASCII digit it contains, so "₹12,000 / Month" yields 12000. ok is
// false when the text has no digits. Values too large for an int saturate.
func ParseSalary(text string) (int, bool) {
	n := 0
	found := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch < '0' || ch > '9' {
			continue
		}
		found = true
		d := int(ch - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
			continue
		}
		n = n*10 + d
	}
	return n, found
}

// salaryMagnitude applies the board's policy for salaries without digits:
// they are treated as zero and therefore fall into the "under" buckets.
func salaryMagnitude(text string) int {
	n, ok := ParseSalary(text)
	if !ok {
		return 0
	}
	return n
}

// Matches reports whether a job of type t paying magnitude falls into the
// bucket. Buckets are scoped to a type family: daily buckets only accept
// Daily jobs, monthly buckets accept Monthly and Contract jobs.
func (b Bucket) Matches(t job.Type, magnitude int) bool {
	isDaily := t == job.TypeDaily
	isMonthly := t == job.TypeMonthly || t == job.TypeContract

	switch b {
	case BucketDailyUnder500:
		return isDaily && magnitude < 500
	case BucketDaily500To1000:
		return isDaily && magnitude >= 500 && magnitude <= 1000
	case BucketDailyAbove1000:
		return isDaily && magnitude > 1000
	case BucketMonthlyUnder15k:
		return isMonthly && magnitude < 15000
	case BucketMonthly15kTo30k:
		return isMonthly && magnitude >= 15000 && magnitude <= 30000
	case BucketMonthlyAbove30k:
		return isMonthly && magnitude > 30000
	default:
		return false
	}
}
