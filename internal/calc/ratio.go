// Package calc holds the numeric calculators.
package calc

import "math"

// Engagement levels returned by Ratio, from least to most engaged.
const (
	LevelInsufficient = "insufficient_data"
	LevelVeryLow      = "very_low"
	LevelNormal       = "normal"
	LevelHigh         = "high"
	LevelViral        = "viral"
)

// MinSubscribers is the channel size below which ratios are too noisy to classify.
const MinSubscribers = 50

// ChannelStats are the inputs of the YouTube views/subscribers calculator.
type ChannelStats struct {
	Subscribers float64 `json:"subscribers"`
	Views       float64 `json:"views"`
	Videos      float64 `json:"videos"`
}

// RatioResult holds the derived metrics, each rounded to two decimals.
type RatioResult struct {
	ViewsPerSub      float64 `json:"views_per_sub"`
	AvgViewsPerVideo float64 `json:"avg_views_per_video"`
	VideoSubsRatio   float64 `json:"video_subs_ratio"`
	Level            string  `json:"level"`
	Label            string  `json:"label"`
	Description      string  `json:"description"`
}

// Ratio computes views per subscriber, average views per video and the
// per-video/subscriber ratio. A metric whose divisor is not positive is 0.
func Ratio(s ChannelStats) RatioResult {
	var r RatioResult
	if s.Subscribers > 0 {
		r.ViewsPerSub = round2(s.Views / s.Subscribers)
	}
	if s.Videos > 0 {
		r.AvgViewsPerVideo = round2(s.Views / s.Videos)
	}
	if s.Subscribers > 0 && s.Videos > 0 {
		r.VideoSubsRatio = round2(r.AvgViewsPerVideo / s.Subscribers)
	}
	r.Level = classify(r.ViewsPerSub, s.Subscribers)
	r.Label, r.Description = levelText[r.Level][0], levelText[r.Level][1]
	return r
}

func classify(viewsPerSub, subs float64) string {
	switch {
	case subs < MinSubscribers:
		return LevelInsufficient
	case viewsPerSub < 1:
		return LevelVeryLow
	case viewsPerSub < 10:
		return LevelNormal
	case viewsPerSub < 50:
		return LevelHigh
	default:
		return LevelViral
	}
}

var levelText = map[string][2]string{
	LevelInsufficient: {"Very limited data", "The channel is very small. Ratios can swing widely with few videos or subscribers."},
	LevelVeryLow:      {"Very low engagement", "Views are low relative to subscribers. There may be inactive subscribers or little organic reach."},
	LevelNormal:       {"Normal engagement", "The views/subscriber ratio is reasonable. Keep publishing consistently and review titles, thumbnails and retention."},
	LevelHigh:         {"High engagement", "Good performance. Videos are likely reaching viewers beyond subscribers through recommendations and search."},
	LevelViral:        {"Very high engagement / viral", "Views are very high relative to subscribers. Possibly viral content, strongly recommended or with high SEO potential."},
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
