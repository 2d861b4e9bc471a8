// Package metrics provides Prometheus-based counters for the feedback bot.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

// Recorder records bot activity into Prometheus collectors registered on a
// caller-supplied registry.
type Recorder struct {
	updatesTotal   *prometheus.CounterVec
	updateDuration *prometheus.HistogramVec
	deniedTotal    *prometheus.CounterVec
	feedbackSaved  prometheus.Counter
	submissions    *prometheus.CounterVec
	submittedTotal prometheus.Counter
	notifyFailures prometheus.Counter
	activeSessions prometheus.Gauge
}

// NewRecorder registers the bot collectors on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		updatesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "feedbackbot_updates_total",
				Help: "Inbound chat updates by kind and outcome",
			},
			[]string{"kind", "status"},
		),
		updateDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "feedbackbot_update_duration_seconds",
				Help:    "Time spent handling one inbound update",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		deniedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "feedbackbot_access_denied_total",
				Help: "Messages rejected by the access guard",
			},
			[]string{"reason"},
		),
		feedbackSaved: f.NewCounter(prometheus.CounterOpts{
			Name: "feedbackbot_feedback_saved_total",
			Help: "Draft feedback entries created",
		}),
		submissions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "feedbackbot_batch_submissions_total",
				Help: "Batch submissions to the sink by status",
			},
			[]string{"status"},
		),
		submittedTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "feedbackbot_entries_submitted_total",
			Help: "Feedback entries successfully written to the sink",
		}),
		notifyFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "feedbackbot_admin_notify_failures_total",
			Help: "Admin notifications that could not be delivered",
		}),
		activeSessions: f.NewGauge(prometheus.GaugeOpts{
			Name: "feedbackbot_sessions",
			Help: "Conversation sessions held in memory",
		}),
	}
}

// ObserveUpdate records one handled update.
func (r *Recorder) ObserveUpdate(kind domain.UpdateKind, err error, d time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.updatesTotal.WithLabelValues(kind.String(), status).Inc()
	r.updateDuration.WithLabelValues(kind.String()).Observe(d.Seconds())
}

// AccessDenied counts a guard rejection.
func (r *Recorder) AccessDenied(reason domain.DenyReason) {
	r.deniedTotal.WithLabelValues(reason.String()).Inc()
}

// FeedbackSaved counts a new draft entry.
func (r *Recorder) FeedbackSaved() {
	r.feedbackSaved.Inc()
}

// BatchSubmitted records the outcome of one sink submission of n entries.
func (r *Recorder) BatchSubmitted(n int, err error) {
	if err != nil {
		r.submissions.WithLabelValues("error").Inc()
		return
	}
	r.submissions.WithLabelValues("ok").Inc()
	r.submittedTotal.Add(float64(n))
}

// NotifyFailed counts an undelivered admin notification.
func (r *Recorder) NotifyFailed() {
	r.notifyFailures.Inc()
}

// SetSessions reports the number of sessions held in memory.
func (r *Recorder) SetSessions(n int) {
	r.activeSessions.Set(float64(n))
}
