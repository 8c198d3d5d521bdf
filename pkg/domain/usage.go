package domain

import "time"

// UsageRecord counts provider calls for one provider on one day (UTC).
type UsageRecord struct {
	Provider string    `json:"provider"`
	Day      time.Time `json:"day"`
	Total    int64     `json:"total"`
	Success  int64     `json:"success"`
	Failed   int64     `json:"failed"`
}
