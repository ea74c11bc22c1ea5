package behavior

import (
	"math"
	"sort"
	"time"

	"chestAnalyzer/domain"
)

// Each sub-analysis defaults to a neutral result on an empty input, so no
// record sequence can cause a divide by zero.

func analyzeDeposits(deposits []domain.DepositRecord) domain.DepositAnalysis {
	if len(deposits) == 0 {
		return domain.DepositAnalysis{Trend: domain.TrendStable}
	}

	total := 0.0
	for _, d := range deposits {
		total += d.Amount
	}
	avg := total / float64(len(deposits))

	return domain.DepositAnalysis{
		AverageAmount: avg,
		Frequency:     frequencyPerDay(len(deposits), deposits[0].Date, deposits[len(deposits)-1].Date),
		Trend:         depositTrend(deposits),
		Volatility:    volatility(deposits, avg),
	}
}

// depositTrend compares the mean of the first half of the amount sequence
// against the second half: increasing above 1.1x, decreasing below 0.9x.
func depositTrend(deposits []domain.DepositRecord) domain.DepositTrend {
	if len(deposits) < 2 {
		return domain.TrendStable
	}

	mid := len(deposits) / 2
	firstMean := meanAmount(deposits[:mid])
	secondMean := meanAmount(deposits[mid:])

	switch {
	case secondMean > firstMean*1.1:
		return domain.TrendIncreasing
	case secondMean < firstMean*0.9:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}

func meanAmount(deposits []domain.DepositRecord) float64 {
	if len(deposits) == 0 {
		return 0
	}
	total := 0.0
	for _, d := range deposits {
		total += d.Amount
	}
	return total / float64(len(deposits))
}

// volatility is the population standard deviation over the mean.
func volatility(deposits []domain.DepositRecord, mean float64) float64 {
	if mean == 0 {
		return 0
	}
	sumSq := 0.0
	for _, d := range deposits {
		diff := d.Amount - mean
		sumSq += diff * diff
	}
	stdDev := math.Sqrt(sumSq / float64(len(deposits)))
	return stdDev / mean
}

func analyzeBets(bets []domain.BetRecord) domain.BettingAnalysis {
	if len(bets) == 0 {
		return domain.BettingAnalysis{RiskProfile: domain.BettingModerate}
	}

	total := 0.0
	maxAmount := 0.0
	wins := 0
	for _, b := range bets {
		total += b.Amount
		if b.Amount > maxAmount {
			maxAmount = b.Amount
		}
		if b.Result == domain.BetWin {
			wins++
		}
	}
	avg := total / float64(len(bets))

	return domain.BettingAnalysis{
		AverageAmount: avg,
		WinRate:       float64(wins) / float64(len(bets)),
		Frequency:     frequencyPerDay(len(bets), bets[0].Date, bets[len(bets)-1].Date),
		RiskProfile:   bettingRiskProfile(avg, maxAmount),
	}
}

func bettingRiskProfile(avg, maxAmount float64) domain.BettingRiskProfile {
	switch {
	case maxAmount > avg*5:
		return domain.BettingAggressive
	case avg < 10:
		return domain.BettingConservative
	default:
		return domain.BettingModerate
	}
}

func analyzeSessions(sessions []domain.SessionRecord) domain.SessionAnalysis {
	if len(sessions) == 0 {
		return domain.SessionAnalysis{PeakHours: []int{}}
	}

	totalDuration := 0.0
	for _, s := range sessions {
		totalDuration += s.DurationMinutes
	}

	return domain.SessionAnalysis{
		AverageDuration: totalDuration / float64(len(sessions)),
		Frequency:       frequencyPerDay(len(sessions), sessions[0].StartTime, sessions[len(sessions)-1].StartTime),
		PeakHours:       peakHours(sessions),
	}
}

// peakHours returns the three most frequent session start hours. Ties
// break on the lower hour so the result is independent of input order.
func peakHours(sessions []domain.SessionRecord) []int {
	counts := make(map[int]int)
	for _, s := range sessions {
		counts[s.StartTime.Hour()]++
	}

	hours := make([]int, 0, len(counts))
	for h := range counts {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool {
		if counts[hours[i]] != counts[hours[j]] {
			return counts[hours[i]] > counts[hours[j]]
		}
		return hours[i] < hours[j]
	})

	if len(hours) > 3 {
		hours = hours[:3]
	}
	return hours
}

func analyzeTemporal(now, registration, lastActivity time.Time) domain.TemporalAnalysis {
	t := domain.TemporalAnalysis{ActivityLevel: domain.ActivityLow}

	if !registration.IsZero() {
		t.AccountAgeDays = daysBetween(registration, now)
	}
	if !lastActivity.IsZero() {
		t.DaysSinceActivity = daysBetween(lastActivity, now)
		t.ActivityLevel = activityLevel(t.DaysSinceActivity)
	}

	return t
}

func activityLevel(daysSince int) domain.ActivityLevel {
	switch {
	case daysSince < 1:
		return domain.ActivityVeryHigh
	case daysSince < 7:
		return domain.ActivityHigh
	case daysSince < 30:
		return domain.ActivityMedium
	default:
		return domain.ActivityLow
	}
}

// frequencyPerDay is count over the day span between the first and last
// record, with the span floored at one day.
func frequencyPerDay(count int, first, last time.Time) float64 {
	days := daysBetween(first, last)
	if days < 1 {
		days = 1
	}
	return float64(count) / float64(days)
}

func daysBetween(from, to time.Time) int {
	d := int(to.Sub(from).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
