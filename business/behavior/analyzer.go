package behavior

import (
	"time"

	"chestAnalyzer/domain"
	"chestAnalyzer/pkg/logger"
)

// Analyzer derives a 0-100 behavioral score, a risk level and a set of
// qualitative patterns from a user's raw activity history. Analyze has no
// side effects; the wall clock is only read for temporal and recency
// metrics, so output is deterministic for a fixed evaluation instant.
type Analyzer struct {
	now func() time.Time
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{now: time.Now}
}

// WithClock overrides the wall clock used for temporal metrics.
func (a *Analyzer) WithClock(now func() time.Time) *Analyzer {
	a.now = now
	return a
}

func (a *Analyzer) Analyze(history domain.ActivityHistory) domain.BehaviorAnalysis {
	now := a.now()

	sub := domain.SubAnalyses{
		Deposit:  analyzeDeposits(history.Deposits),
		Betting:  analyzeBets(history.Bets),
		Session:  analyzeSessions(history.Sessions),
		Temporal: analyzeTemporal(now, history.RegistrationDate, history.LastActivityDate),
	}

	f := facts{
		sub:             sub,
		hasDeposits:     len(history.Deposits) > 0,
		hasBets:         len(history.Bets) > 0,
		hasSessions:     len(history.Sessions) > 0,
		hasActivityDate: !history.LastActivityDate.IsZero(),
	}

	score, fired := scoreProfile(f)
	risk := riskLevelFor(score)
	patterns := detectPatterns(f)

	logger.Debug("behavior_analyze",
		"user_id", history.UserID,
		"score", score,
		"risk_level", risk,
		"fired_rules", fired,
		"patterns", patterns,
	)

	AnalysesTotal.WithLabelValues(string(risk)).Inc()

	return domain.BehaviorAnalysis{
		Score:           score,
		RiskLevel:       risk,
		Patterns:        patterns,
		Recommendations: buildRecommendations(risk, patterns),
		SubAnalyses:     sub,
	}
}
