package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

// Observer is notified about the dispatcher's backlog and failed writes.
type Observer interface {
	QueueDepth(n int)
	WriteFailed()
}

type noopObserver struct{}

func (noopObserver) QueueDepth(int) {}
func (noopObserver) WriteFailed()   {}

// Dispatcher routes service events to a fixed set of workers using consistent
// hashing on the service id, which keeps each service's history in order.
// It implements ports.EventRecorder: Record never blocks the request and
// never fails it.
type Dispatcher struct {
	workers  []chan domain.ServiceEvent
	repo     ports.EventRepository
	observer Observer
	log      zerolog.Logger

	mu      sync.RWMutex
	started bool
	stopped bool
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.EventRepository, observer Observer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if observer == nil {
		observer = noopObserver{}
	}
	d := &Dispatcher{
		workers:  make([]chan domain.ServiceEvent, numWorkers),
		repo:     repo,
		observer: observer,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ServiceEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers drain their queues and exit
// once Stop is called.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started {
		return
	}
	d.started = true
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Stop closes the queues and waits for pending events to be written.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	for _, ch := range d.workers {
		close(ch)
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// Record enqueues an event on the worker responsible for its service. A full
// queue drops the event with a warning.
func (d *Dispatcher) Record(event domain.ServiceEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		d.log.Warn().Uint("service_id", event.ServiceID).Msg("audit event after shutdown dropped")
		return
	}

	select {
	case d.workers[d.shardIndex(event.ServiceID)] <- event:
		d.observer.QueueDepth(d.depth())
	default:
		d.observer.WriteFailed()
		d.log.Warn().
			Uint("service_id", event.ServiceID).
			Str("type", string(event.Type)).
			Msg("audit queue full, event dropped")
	}
}

// shardIndex maps a service id deterministically to a worker index.
func (d *Dispatcher) shardIndex(serviceID uint) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatUint(uint64(serviceID), 10)))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) depth() int {
	n := 0
	for _, ch := range d.workers {
		n += len(ch)
	}
	return n
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ServiceEvent) {
	defer d.wg.Done()
	for event := range ch {
		d.write(ctx, id, event)
		d.observer.QueueDepth(d.depth())
	}
}

func (d *Dispatcher) write(ctx context.Context, id int, event domain.ServiceEvent) {
	// Writes outlive request contexts; only the root context's values are kept.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	if err := d.repo.Insert(writeCtx, &event); err != nil {
		d.observer.WriteFailed()
		d.log.Error().Err(err).
			Uint("service_id", event.ServiceID).
			Str("type", string(event.Type)).
			Int("worker_id", id).
			Msg("audit event write failed")
	}
}
