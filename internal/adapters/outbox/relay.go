package outbox

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"github.com/lib/pq"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/clynicx/portal-service/internal/config"
	"github.com/clynicx/portal-service/internal/core/ports"
)

const (
	listenerMinReconnectInterval = 10 * time.Second
	listenerMaxReconnectInterval = time.Minute
	outboxChannelName            = "outbox_channel"

	eventProcessTimeout     = 30 * time.Second
	batchProcessTimeout     = 60 * time.Second
	periodicProcessInterval = 90 * time.Second

	healthCheckStaleThreshold = 5 * time.Minute

	maxEventsPerBatch = 100
)

const markProcessedQuery = `UPDATE outbox_events SET processed_at = NOW() WHERE id = $1`

// Relay listens for PostgreSQL NOTIFY signals on outbox_channel and
// publishes profile events to the message broker.
type Relay struct {
	db            *sql.DB
	publisher     ports.ProfileEventPublisher
	listener      *pq.Listener
	dbURL         string
	dbCB          *gobreaker.CircuitBreaker
	logger        *zap.Logger
	lastProcessed atomic.Int64
	healthy       atomic.Bool
	now           func() time.Time
}

func NewRelay(db *sql.DB, dbURL string, publisher ports.ProfileEventPublisher, logger *zap.Logger) *Relay {
	r := &Relay{
		db:        db,
		dbURL:     dbURL,
		publisher: publisher,
		dbCB:      config.NewCircuitBreaker(config.BreakerRelayPostgreSQL, logger),
		logger:    logger,
		now:       time.Now,
	}
	r.markProcessed()
	r.healthy.Store(true)
	return r
}

// IsHealthy is the liveness check. An open breaker is degraded but
// recoverable, so it does not count here.
func (r *Relay) IsHealthy() bool {
	return r.healthy.Load()
}

// IsReady additionally requires a closed database breaker and recent
// progress.
func (r *Relay) IsReady() bool {
	if r.dbCB.State() == gobreaker.StateOpen {
		return false
	}
	last := time.Unix(0, r.lastProcessed.Load())
	if r.now().Sub(last) > healthCheckStaleThreshold {
		return false
	}
	return r.healthy.Load()
}

// Start blocks until ctx is cancelled.
func (r *Relay) Start(ctx context.Context) error {
	reportProblem := func(ev pq.ListenerEventType, err error) {
		if err != nil {
			r.logger.Error("outbox listener error", zap.Error(err))
		}
	}

	r.listener = pq.NewListener(r.dbURL, listenerMinReconnectInterval, listenerMaxReconnectInterval, reportProblem)
	defer r.listener.Close()

	if err := r.listener.Listen(outboxChannelName); err != nil {
		return err
	}

	r.logger.Info("outbox relay listening", zap.String("channel", outboxChannelName))

	// Catch up on rows written while the relay was down.
	if err := r.processUnprocessedEvents(ctx); err != nil {
		r.logger.Error("processing startup backlog failed", zap.Error(err))
	}

	ticker := time.NewTicker(periodicProcessInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay shutting down")
			return ctx.Err()

		case notification := <-r.listener.Notify:
			if notification == nil {
				// pq sends nil after a reconnect.
				r.logger.Warn("outbox listener reconnected")
				r.healthy.Store(false)
				continue
			}

			if err := r.processEventByID(ctx, notification.Extra); err != nil {
				r.logger.Error("processing outbox event failed",
					zap.String("event_id", notification.Extra),
					zap.Error(err),
				)
				continue
			}
			r.markProcessed()
			r.healthy.Store(true)

		case <-ticker.C:
			go r.listener.Ping()

			if err := r.processUnprocessedEvents(ctx); err != nil {
				r.logger.Error("periodic outbox processing failed", zap.Error(err))
				continue
			}
			r.markProcessed()
		}
	}
}

func (r *Relay) markProcessed() {
	r.lastProcessed.Store(r.now().UnixNano())
}

// dispatch publishes one outbox row. Unknown event types and unreadable
// payloads are acknowledged without publishing so they are not retried.
func (r *Relay) dispatch(ctx context.Context, id, eventType string, payload []byte) error {
	if eventType != ports.ProfileCreatedEventType {
		r.logger.Warn("skipping outbox event with unknown type",
			zap.String("event_id", id),
			zap.String("event_type", eventType),
		)
		return nil
	}

	var evt ports.ProfileCreatedEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		r.logger.Error("invalid outbox payload", zap.String("event_id", id), zap.Error(err))
		return nil
	}

	return r.publisher.PublishProfileCreated(ctx, evt)
}

func (r *Relay) processEventByID(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, eventProcessTimeout)
	defer cancel()

	_, err := r.dbCB.Execute(func() (interface{}, error) {
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			return nil, err
		}
		defer tx.Rollback()

		var id, eventType string
		var payload []byte
		err = tx.QueryRowContext(ctx, `
			SELECT id, event_type, payload
			FROM outbox_events
			WHERE id = $1 AND processed_at IS NULL
			FOR UPDATE SKIP LOCKED`, eventID).Scan(&id, &eventType, &payload)
		if errors.Is(err, sql.ErrNoRows) {
			// Already handled by a catch-up pass or another relay.
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		if err := r.dispatch(ctx, id, eventType, payload); err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx, markProcessedQuery, id); err != nil {
			return nil, err
		}
		return nil, tx.Commit()
	})
	return err
}

func (r *Relay) processUnprocessedEvents(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, batchProcessTimeout)
	defer cancel()

	_, err := r.dbCB.Execute(func() (interface{}, error) {
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			return nil, err
		}
		defer tx.Rollback()

		rows, err := tx.QueryContext(ctx, `
			SELECT id, event_type, payload
			FROM outbox_events
			WHERE processed_at IS NULL
			ORDER BY created_at
			LIMIT $1
			FOR UPDATE SKIP LOCKED`, maxEventsPerBatch)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		type record struct {
			ID        string
			EventType string
			Payload   []byte
		}

		var records []record
		for rows.Next() {
			var rec record
			if err := rows.Scan(&rec.ID, &rec.EventType, &rec.Payload); err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		if err := rows.Err(); err != nil {
			return nil, err
		}

		for _, rec := range records {
			if err := r.dispatch(ctx, rec.ID, rec.EventType, rec.Payload); err != nil {
				r.logger.Error("publishing outbox event failed", zap.String("event_id", rec.ID), zap.Error(err))
				continue
			}
			if _, err := tx.ExecContext(ctx, markProcessedQuery, rec.ID); err != nil {
				return nil, err
			}
			r.logger.Debug("outbox event processed", zap.String("event_id", rec.ID))
		}

		return nil, tx.Commit()
	})
	return err
}
