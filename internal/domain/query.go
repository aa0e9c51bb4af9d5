package domain

import "time"

// QueryRecord — запись истории запросов (только журнал, результаты не хранятся)
type QueryRecord struct {
	ID         string     `json:"id"`
	SearchTerm string     `json:"search_term"`
	CoinSymbol string     `json:"coin_symbol"`
	Outcome    ResultKind `json:"outcome"`
	Reason     string     `json:"reason,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
