package audit

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Record is one admin approval action applied to an employer record
type Record struct {
	ID         int64     `json:"id"`
	EmployerID int64     `json:"employer_id"`
	ActorID    string    `json:"actor_id"`
	Action     string    `json:"action"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Trail logs approval transitions and persists them off the request path.
// Records are buffered on a channel and written by a single background
// goroutine; a full buffer drops the DB write but never the log line, and a
// failed write never affects the transition that triggered it.
type Trail struct {
	logger  *zap.Logger
	repo    *Repository
	records chan Record
	done    chan struct{}
}

const recordBuffer = 256

// NewTrail creates the audit trail. repo may be nil, in which case records
// are only logged.
func NewTrail(repo *Repository) *Trail {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	t := &Trail{
		logger:  logger,
		repo:    repo,
		records: make(chan Record, recordBuffer),
		done:    make(chan struct{}),
	}
	go t.drain()
	return t
}

// Log records an approval transition
func (t *Trail) Log(rec Record) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	t.logger.Info("approval transition",
		zap.Int64("employer_id", rec.EmployerID),
		zap.String("actor_id", rec.ActorID),
		zap.String("action", rec.Action),
		zap.String("from_status", rec.FromStatus),
		zap.String("to_status", rec.ToStatus),
		zap.String("reason", rec.Reason),
	)

	if t.repo == nil {
		return
	}

	select {
	case t.records <- rec:
	default:
		t.logger.Warn("audit buffer full, dropping persisted record",
			zap.Int64("employer_id", rec.EmployerID))
	}
}

func (t *Trail) drain() {
	for rec := range t.records {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := t.repo.Persist(ctx, rec); err != nil {
			t.logger.Error("failed to persist audit record", zap.Error(err))
		}
		cancel()
	}
	close(t.done)
}

// Close flushes buffered records and stops the background writer
func (t *Trail) Close() {
	close(t.records)
	<-t.done
	_ = t.logger.Sync()
}
