package domain

import "time"

type BetResult string

const (
	BetWin  BetResult = "win"
	BetLoss BetResult = "loss"
)

type DepositRecord struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

type BetRecord struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
	Result BetResult `json:"result"`
}

type SessionRecord struct {
	StartTime       time.Time `json:"start_time"`
	DurationMinutes float64   `json:"duration_minutes"`
}

// ActivityHistory is the raw input of an analysis. It is owned by the
// caller and read-only to the analyzer.
type ActivityHistory struct {
	UserID           string          `json:"user_id"`
	Deposits         []DepositRecord `json:"deposits"`
	Bets             []BetRecord     `json:"bets"`
	Sessions         []SessionRecord `json:"sessions"`
	RegistrationDate time.Time       `json:"registration_date"`
	LastActivityDate time.Time       `json:"last_activity_date"`
}

// RecordCount is the total number of activity records, used as the
// history length for optimizer confidence.
func (h ActivityHistory) RecordCount() int {
	return len(h.Deposits) + len(h.Bets) + len(h.Sessions)
}
