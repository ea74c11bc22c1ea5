package domain

import "time"

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"
)

type PatternTag string

const (
	PatternFrequentDepositor PatternTag = "frequent_depositor"
	PatternVolatileDeposits  PatternTag = "volatile_deposits"
	PatternHighRiskBettor    PatternTag = "high_risk_bettor"
	PatternFrequentLoser     PatternTag = "frequent_loser"
	PatternInactiveUser      PatternTag = "inactive_user"
)

type DepositTrend string

const (
	TrendIncreasing DepositTrend = "increasing"
	TrendDecreasing DepositTrend = "decreasing"
	TrendStable     DepositTrend = "stable"
)

type BettingRiskProfile string

const (
	BettingAggressive   BettingRiskProfile = "aggressive"
	BettingConservative BettingRiskProfile = "conservative"
	BettingModerate     BettingRiskProfile = "moderate"
)

type ActivityLevel string

const (
	ActivityVeryHigh ActivityLevel = "very_high"
	ActivityHigh     ActivityLevel = "high"
	ActivityMedium   ActivityLevel = "medium"
	ActivityLow      ActivityLevel = "low"
)

type DepositAnalysis struct {
	AverageAmount float64      `json:"average_amount"`
	Frequency     float64      `json:"frequency"`
	Trend         DepositTrend `json:"trend"`
	Volatility    float64      `json:"volatility"`
}

type BettingAnalysis struct {
	AverageAmount float64            `json:"average_amount"`
	WinRate       float64            `json:"win_rate"`
	Frequency     float64            `json:"frequency"`
	RiskProfile   BettingRiskProfile `json:"risk_profile"`
}

type SessionAnalysis struct {
	AverageDuration float64 `json:"average_duration"`
	Frequency       float64 `json:"frequency"`
	PeakHours       []int   `json:"peak_hours"`
}

type TemporalAnalysis struct {
	AccountAgeDays    int           `json:"account_age_days"`
	DaysSinceActivity int           `json:"days_since_activity"`
	ActivityLevel     ActivityLevel `json:"activity_level"`
}

type SubAnalyses struct {
	Deposit  DepositAnalysis  `json:"deposit_analysis"`
	Betting  BettingAnalysis  `json:"betting_analysis"`
	Session  SessionAnalysis  `json:"session_analysis"`
	Temporal TemporalAnalysis `json:"temporal_analysis"`
}

// BehaviorAnalysis is the outcome of one analyze call. Created fresh per
// call and never mutated after return.
type BehaviorAnalysis struct {
	Score           float64      `json:"score"`
	RiskLevel       RiskLevel    `json:"risk_level"`
	Patterns        []PatternTag `json:"patterns"`
	Recommendations []string     `json:"recommendations"`
	SubAnalyses     SubAnalyses  `json:"sub_analyses"`
}

// HasPattern reports whether tag was detected.
func (a BehaviorAnalysis) HasPattern(tag PatternTag) bool {
	for _, p := range a.Patterns {
		if p == tag {
			return true
		}
	}
	return false
}

// UserAnalysis is the full transport-facing result: the behavior analysis
// plus the chest distribution derived from it.
type UserAnalysis struct {
	AnalysisID   string            `json:"analysis_id"`
	UserID       string            `json:"user_id"`
	Behavior     BehaviorAnalysis  `json:"behavior"`
	Distribution ChestDistribution `json:"distribution"`
	Timestamp    time.Time         `json:"timestamp"`
}

// PerformanceMetrics is the analyzer's own counter snapshot, served on the
// metrics endpoint alongside Prometheus.
type PerformanceMetrics struct {
	TotalAnalyses     int64   `json:"total_analyses"`
	CacheHits         int64   `json:"cache_hits"`
	CacheMisses       int64   `json:"cache_misses"`
	CacheHitRate      float64 `json:"cache_hit_rate"`
	AvgAnalysisTimeMs float64 `json:"avg_analysis_time_ms"`
}
