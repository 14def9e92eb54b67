package models

import "time"

// Overview is the dashboard analytics summary for a date range
type Overview struct {
	From         time.Time            `json:"from"`
	To           time.Time            `json:"to"`
	NewsTotal    int64                `json:"news_total"`
	NewsByStatus map[NewsStatus]int64 `json:"news_by_status"`
	Categories   int64                `json:"categories"`
	Media        int64                `json:"media"`
	MediaByType  map[MediaType]int64  `json:"media_by_type"`
}
