package behavior

import "chestAnalyzer/domain"

const baseScore = 50.0

// facts is the rule-evaluation view of a history: the computed
// sub-analyses plus which record sequences were present at all, so that
// neutral defaults on empty inputs cannot satisfy a predicate.
type facts struct {
	sub             domain.SubAnalyses
	hasDeposits     bool
	hasBets         bool
	hasSessions     bool
	hasActivityDate bool
}

type scoreRule struct {
	points float64
	reason string
	match  func(f facts) bool
}

// scoreRules is the ordered increment table behind the composite score.
// Every rule is an independently inspectable contribution.
var scoreRules = []scoreRule{
	{10, "deposits more than every 10 days", func(f facts) bool { return f.sub.Deposit.Frequency > 0.1 }},
	{10, "high average deposit", func(f facts) bool { return f.sub.Deposit.AverageAmount > 100 }},
	{5, "stable deposit amounts", func(f facts) bool { return f.hasDeposits && f.sub.Deposit.Volatility < 0.5 }},
	{10, "healthy win rate", func(f facts) bool { return f.sub.Betting.WinRate > 0.4 }},
	{5, "bets more than daily", func(f facts) bool { return f.sub.Betting.Frequency > 1 }},
	{10, "conservative betting profile", func(f facts) bool { return f.hasBets && f.sub.Betting.RiskProfile == domain.BettingConservative }},
	{5, "frequent sessions", func(f facts) bool { return f.sub.Session.Frequency > 0.5 }},
	{5, "long sessions", func(f facts) bool { return f.sub.Session.AverageDuration > 30 }},
	{10, "high activity level", func(f facts) bool { return f.sub.Temporal.ActivityLevel == domain.ActivityHigh }},
	{5, "active within the last week", func(f facts) bool { return f.hasActivityDate && f.sub.Temporal.DaysSinceActivity < 7 }},
}

// scoreProfile evaluates the rule table and returns the clamped composite
// score plus the reasons of the rules that fired.
func scoreProfile(f facts) (float64, []string) {
	score := baseScore
	fired := make([]string, 0, len(scoreRules))

	for _, rule := range scoreRules {
		if rule.match(f) {
			score += rule.points
			fired = append(fired, rule.reason)
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score, fired
}

// riskLevelFor maps the score onto the four risk buckets; score and risk
// move inversely.
func riskLevelFor(score float64) domain.RiskLevel {
	switch {
	case score >= 80:
		return domain.RiskLow
	case score >= 60:
		return domain.RiskMedium
	case score >= 40:
		return domain.RiskHigh
	default:
		return domain.RiskVeryHigh
	}
}

type patternRule struct {
	tag   domain.PatternTag
	match func(f facts) bool
}

var patternRules = []patternRule{
	{domain.PatternFrequentDepositor, func(f facts) bool { return f.sub.Deposit.Frequency > 1 }},
	{domain.PatternVolatileDeposits, func(f facts) bool { return f.sub.Deposit.Volatility > 1 }},
	{domain.PatternHighRiskBettor, func(f facts) bool { return f.sub.Betting.RiskProfile == domain.BettingAggressive }},
	{domain.PatternFrequentLoser, func(f facts) bool { return f.hasBets && f.sub.Betting.WinRate < 0.3 }},
	{domain.PatternInactiveUser, func(f facts) bool { return f.hasActivityDate && f.sub.Temporal.DaysSinceActivity > 30 }},
}

func detectPatterns(f facts) []domain.PatternTag {
	patterns := make([]domain.PatternTag, 0, len(patternRules))
	for _, rule := range patternRules {
		if rule.match(f) {
			patterns = append(patterns, rule.tag)
		}
	}
	return patterns
}

var baseRecommendations = map[domain.RiskLevel][]string{
	domain.RiskLow: {
		"offer premium chest tiers",
		"invite to the VIP rewards program",
	},
	domain.RiskMedium: {
		"offer standard chest tiers",
		"run moderate promotional campaigns",
	},
}

var defaultRecommendations = []string{
	"offer basic chest tiers",
	"monitor account activity closely",
}

var patternRecommendations = map[domain.PatternTag]string{
	domain.PatternInactiveUser:      "start a reactivation campaign",
	domain.PatternFrequentDepositor: "enroll in the loyalty program",
}

// buildRecommendations lists the risk-level base recommendations first,
// then pattern-triggered additions in pattern order.
func buildRecommendations(risk domain.RiskLevel, patterns []domain.PatternTag) []string {
	base, ok := baseRecommendations[risk]
	if !ok {
		base = defaultRecommendations
	}

	recs := make([]string, 0, len(base)+len(patterns))
	recs = append(recs, base...)
	for _, p := range patterns {
		if extra, ok := patternRecommendations[p]; ok {
			recs = append(recs, extra)
		}
	}
	return recs
}
