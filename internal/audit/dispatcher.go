package audit

import "go.uber.org/zap"

type Event struct {
	Action    string
	BookingID string
	BarberID  string
	Email     string
	Metadata  map[string]any
}

// Dispatcher writes audit events off the request path through a buffered
// channel. A full queue drops the event rather than blocking the API.
type Dispatcher struct {
	log   *zap.Logger
	queue chan Event
}

func NewDispatcher(log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		log:   log,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		fields := []zap.Field{
			zap.String("action", ev.Action),
		}
		if ev.BookingID != "" {
			fields = append(fields, zap.String("booking_id", ev.BookingID))
		}
		if ev.BarberID != "" {
			fields = append(fields, zap.String("barber_id", ev.BarberID))
		}
		if ev.Email != "" {
			fields = append(fields, zap.String("email", ev.Email))
		}
		if ev.Metadata != nil {
			fields = append(fields, zap.Any("metadata", ev.Metadata))
		}

		d.log.Info("audit", fields...)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}
