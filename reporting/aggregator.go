// ABOUTME: Reporting aggregator maintaining derived communication counters
// ABOUTME: Frequency per method, effectiveness scores and overdue/completed/total trends
package reporting

import (
	"time"

	"github.com/harperreed/commtrack/models"
)

// Aggregator owns the derived counters. Counters only ever move forward:
// deleting or editing a communication later does not adjust them.
type Aggregator struct {
	metrics models.ReportingMetrics
}

func New() *Aggregator {
	return &Aggregator{metrics: models.DefaultReportingMetrics()}
}

// Reset restores every counter to its default.
func (a *Aggregator) Reset() {
	a.metrics = models.DefaultReportingMetrics()
}

// UpdateCommunicationMethodFrequency bumps the count for one method.
func (a *Aggregator) UpdateCommunicationMethodFrequency(methodID models.MethodID) {
	a.metrics.CommunicationMethodFrequency[methodID]++
}

// UpdateEngagementEffectiveness moves a method's score by +10 on success
// or -5 otherwise, clamped to [0,100].
func (a *Aggregator) UpdateEngagementEffectiveness(methodID models.MethodID, isSuccessful bool) int {
	score, ok := a.metrics.EngagementEffectiveness[methodID]
	if !ok {
		score = models.EffectivenessDefault
	}

	if isSuccessful {
		score += models.EffectivenessGain
	} else {
		score -= models.EffectivenessLoss
	}
	score = clamp(score, models.EffectivenessMin, models.EffectivenessMax)

	a.metrics.EngagementEffectiveness[methodID] = score
	return score
}

// UpdateCommunicationTrends counts a newly recorded communication against
// the reference time.
func (a *Aggregator) UpdateCommunicationTrends(c models.Communication, ref time.Time) {
	a.metrics.CommunicationTrends.Total++

	if !c.Completed {
		if d, err := models.ParseDate(c.Date, ref.Location()); err == nil && d.Before(ref) {
			a.metrics.CommunicationTrends.Overdue++
		}
	}
	if c.Completed {
		a.metrics.CommunicationTrends.Completed++
	}
}

// RecordCommunication applies the creation policy: frequency and trends.
func (a *Aggregator) RecordCommunication(c models.Communication, ref time.Time) {
	a.UpdateCommunicationMethodFrequency(c.MethodID)
	a.UpdateCommunicationTrends(c, ref)
}

// Metrics returns a copy of the current counters.
func (a *Aggregator) Metrics() models.ReportingMetrics {
	return a.metrics.Clone()
}

// Restore merges persisted counters over the defaults key by key.
func (a *Aggregator) Restore(m models.ReportingMetrics) {
	next := models.DefaultReportingMetrics()
	for k, v := range m.CommunicationMethodFrequency {
		if v < 0 {
			v = 0
		}
		next.CommunicationMethodFrequency[k] = v
	}
	for k, v := range m.EngagementEffectiveness {
		next.EngagementEffectiveness[k] = clamp(v, models.EffectivenessMin, models.EffectivenessMax)
	}
	next.CommunicationTrends = models.CommunicationTrends{
		Total:     max(m.CommunicationTrends.Total, 0),
		Overdue:   max(m.CommunicationTrends.Overdue, 0),
		Completed: max(m.CommunicationTrends.Completed, 0),
	}
	a.metrics = next
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
