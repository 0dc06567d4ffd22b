// Package streak holds the pure week derivation shared by the backend claim
// authority and the client SDK: Monday-anchored weeks, per-day claim states
// and the reward schedule.
package streak

import "time"

const (
	DaysInWeek     = 7
	PointsPerDay   = 10
	WeekBonusCoins = 50
)

// Day statuses as rendered to consumers.
const (
	StatusClaimed   = "claimed"
	StatusAvailable = "available"
	StatusLocked    = "locked"
	StatusMissed    = "missed"
)

// Days in Monday-first order. A week always begins Monday regardless of locale.
var Days = [DaysInWeek]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

type DayState struct {
	Day     string `json:"day"`
	Claimed bool   `json:"claimed"`
	IsToday bool   `json:"is_today"`
	Points  int    `json:"points"`
	Status  string `json:"status"`
}

// DayIndex returns the Monday-first index of day, or -1 for an unknown name.
func DayIndex(day string) int {
	for i, d := range Days {
		if d == day {
			return i
		}
	}
	return -1
}

// CurrentDay resolves now to a day name under Monday-first ordering, in UTC.
func CurrentDay(now time.Time) string {
	return Days[(int(now.UTC().Weekday())+6)%DaysInWeek]
}

// WeekStart returns the UTC Monday midnight anchoring the week containing now.
func WeekStart(now time.Time) time.Time {
	now = now.UTC()
	offset := (int(now.Weekday()) + 6) % DaysInWeek
	monday := now.AddDate(0, 0, -offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekEnd returns the UTC Sunday midnight of the week containing now.
func WeekEnd(now time.Time) time.Time {
	return WeekStart(now).AddDate(0, 0, DaysInWeek-1)
}

// ConsecutiveDays counts the unbroken run of claimed days ending at the most
// recent claimed day: scan backward from Sunday, skip unclaimed days until the
// first claimed one, then count until the run breaks.
func ConsecutiveDays(claims map[string]bool) int {
	count := 0
	for i := DaysInWeek - 1; i >= 0; i-- {
		if claims[Days[i]] {
			count++
		} else if count > 0 {
			break
		}
	}
	return count
}

// ClaimReward is the reward for claiming the next day of a streak:
// day 1 of a fresh streak pays 10, day 2 pays 20, up to 70 on day 7.
func ClaimReward(consecutiveDays int) int {
	return (consecutiveDays + 1) * PointsPerDay
}

// DayStates derives the display state of all 7 days from a claims record
// (nil means no record this week) and now.
//
// Points on a claimed day reconstruct the historical reward as the count of
// claimed days from Monday through that day times 10. That undercounts weeks
// with gaps, since the real award resets with the consecutive count; it is a
// display approximation only and TotalPoints on the record stays authoritative.
func DayStates(claims map[string]bool, now time.Time) []DayState {
	currentIdx := DayIndex(CurrentDay(now))
	reward := ClaimReward(ConsecutiveDays(claims))
	states := make([]DayState, 0, DaysInWeek)
	claimedSoFar := 0
	for i, day := range Days {
		st := DayState{
			Day:     day,
			Claimed: claims[day],
			IsToday: i == currentIdx,
		}
		switch {
		case claims[day]:
			claimedSoFar++
			st.Status = StatusClaimed
			st.Points = claimedSoFar * PointsPerDay
		case i == currentIdx:
			st.Status = StatusAvailable
			st.Points = reward
		case i < currentIdx:
			st.Status = StatusMissed
		default:
			st.Status = StatusLocked
		}
		states = append(states, st)
	}
	return states
}

// CanClaim reports whether day is claimable right now: it must be the current
// day and not yet claimed.
func CanClaim(claims map[string]bool, now time.Time, day string) bool {
	return day == CurrentDay(now) && !claims[day]
}
