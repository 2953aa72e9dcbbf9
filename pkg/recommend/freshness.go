package recommend

import "time"

// freshnessWindowDays is the horizon of the linear freshness decay
const freshnessWindowDays = 7.0

// Freshness scores how recent a publication timestamp is relative to now:
// 1.0 at publication, decaying linearly to 0 at exactly 7 days, 0 beyond.
// Future-dated or clock-skewed timestamps clamp to 1, never exceed it.
func Freshness(publishedAt, now time.Time) float64 {
	days := now.Sub(publishedAt).Hours() / 24

	switch {
	case days > freshnessWindowDays:
		return 0
	case days < 0:
		return 1
	}
	return 1 - days/freshnessWindowDays
}
