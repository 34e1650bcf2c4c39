package metrics

import (
	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

// Recorder counts lifecycle events before handing them to the next recorder.
type Recorder struct {
	next ports.EventRecorder
}

// NewRecorder wraps next; a nil next only counts.
func NewRecorder(next ports.EventRecorder) *Recorder {
	return &Recorder{next: next}
}

func (r *Recorder) Record(event domain.ServiceEvent) {
	observe(event)
	if r.next != nil {
		r.next.Record(event)
	}
}

func observe(event domain.ServiceEvent) {
	switch event.Type {
	case domain.EventServiceCreated:
		ServicesCreatedTotal.WithLabelValues(string(event.ToStatus)).Inc()
	case domain.EventStatusChanged:
		StatusTransitionsTotal.WithLabelValues(string(event.FromStatus), string(event.ToStatus)).Inc()
	case domain.EventMechanicAssigned:
		MechanicAssignmentsTotal.Inc()
	case domain.EventQuoteCreated:
		QuotesCreatedTotal.WithLabelValues(string(event.ActorRole)).Inc()
	case domain.EventQuoteApproved:
		QuotesApprovedTotal.Inc()
		if event.Amount != nil {
			QuoteAmount.Observe(*event.Amount)
		}
	}
}

// QueueObserver reports the audit dispatcher's backlog and losses.
type QueueObserver struct{}

func (QueueObserver) QueueDepth(n int) { AuditQueueDepth.Set(float64(n)) }

func (QueueObserver) WriteFailed() { AuditWriteFailuresTotal.Inc() }
