package domain_test

import (
	"testing"
	"time"

	"github.com/homefolio/expense_tracker_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestPeriodValid(t *testing.T) {
	assert.True(t, domain.PeriodDay.Valid())
	assert.True(t, domain.PeriodWeek.Valid())
	assert.True(t, domain.PeriodMonth.Valid())
	assert.False(t, domain.Period("year").Valid())
	assert.False(t, domain.Period("").Valid())
}

func TestBucketLabel_Day(t *testing.T) {
	ts := time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2024-03-07", domain.PeriodDay.BucketLabel(ts))
}

func TestBucketLabel_Month(t *testing.T) {
	ts := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03", domain.PeriodMonth.BucketLabel(ts))
}

func TestBucketLabel_Week(t *testing.T) {
	// 2024-03-07 is a Thursday in ISO week 10.
	ts := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-W10", domain.PeriodWeek.BucketLabel(ts))
}

func TestBucketLabel_WeekYearBoundary(t *testing.T) {
	// 2021-01-01 belongs to ISO week 53 of 2020; the label must carry the
	// ISO week-year, not the calendar year.
	ts := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2020-W53", domain.PeriodWeek.BucketLabel(ts))
}

func TestBucketLabel_UsesUTC(t *testing.T) {
	// 23:30 on March 7 in UTC+5 is March 7 18:30 UTC; the bucket follows
	// the UTC date.
	loc := time.FixedZone("UTC+5", 5*60*60)
	ts := time.Date(2024, 3, 8, 2, 30, 0, 0, loc)
	assert.Equal(t, "2024-03-07", domain.PeriodDay.BucketLabel(ts))
}

func TestCredentialValid(t *testing.T) {
	now := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)

	neverExpires := domain.Credential{Token: "tok", User: "aaditya"}
	assert.True(t, neverExpires.Valid(now))

	expired := domain.Credential{Token: "tok", ExpiresAt: now.Add(-time.Hour)}
	assert.False(t, expired.Valid(now))

	future := domain.Credential{Token: "tok", ExpiresAt: now.Add(time.Hour)}
	assert.True(t, future.Valid(now))

	noToken := domain.Credential{}
	assert.False(t, noToken.Valid(now))
}
