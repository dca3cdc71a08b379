package service

import "time"

// bangkok is the business time zone for document dates and numbering
var bangkok = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		return time.FixedZone("ICT", 7*60*60)
	}
	return loc
}()

// startOfDay returns midnight of t's calendar day in Bangkok
func startOfDay(t time.Time) time.Time {
	local := t.In(bangkok)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, bangkok)
}

// endOfDay returns the last second of t's calendar day in Bangkok
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Second)
}
