package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
)

// CountdownFor renders a prediction as seen at now. A prediction without a
// next feed time has no countdown.
func CountdownFor(p domain.PredictionResult, now time.Time) domain.Countdown {
	if p.NextFeedTime == nil {
		return domain.Countdown{Label: "No feeds logged yet"}
	}
	if !now.Before(*p.NextFeedTime) {
		zero := 0
		return domain.Countdown{Label: "Due now", Due: true, MinutesRemaining: &zero}
	}

	mins := int(math.Ceil(p.NextFeedTime.Sub(now).Minutes()))
	h, m := mins/60, mins%60
	label := fmt.Sprintf("in %dm", m)
	if h > 0 {
		label = fmt.Sprintf("in %dh %dm", h, m)
	}
	return domain.Countdown{Label: label, MinutesRemaining: &mins}
}
