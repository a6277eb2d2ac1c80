// Package events publishes parsing lifecycle events to the message
// broker. Publishing is best effort: a failed publish is logged and the
// batch goes on.
package events

import (
	"context"

	"github.com/devwork/cv-pipeline/internal/parser"
	"github.com/devwork/cv-pipeline/pkg/logger"
	"github.com/devwork/cv-pipeline/pkg/messaging"
)

// Publisher emits parsing events on the cv.events exchange
type Publisher struct {
	pub *messaging.Publisher
	log *logger.Logger
}

// NewPublisher creates a parsing event publisher
func NewPublisher(rmq *messaging.RabbitMQ, source string, log *logger.Logger) (*Publisher, error) {
	pub, err := messaging.NewPublisher(rmq, messaging.ExchangeCVEvents, source, log)
	if err != nil {
		return nil, err
	}
	return &Publisher{pub: pub, log: log.WithComponent("events")}, nil
}

// RecordParsed publishes a cv.record.parsed event
func (p *Publisher) RecordParsed(ctx context.Context, locale string, rec *parser.Record) {
	event := messaging.RecordParsedEvent{
		SourceFile: rec.SourceFile,
		Language:   locale,
		HasName:    rec.HoTen != nil,
		HasEmail:   rec.Email != nil,
		HasPhone:   rec.SoDienThoai != nil,
		SkillCount: len(rec.KyNangChinh),
	}
	if err := p.pub.Publish(ctx, messaging.EventRecordParsed, event); err != nil {
		p.log.Warn().Err(err).Str("file", rec.SourceFile).Msg("failed to publish record event")
	}
}

// BatchCompleted publishes a cv.batch.completed event
func (p *Publisher) BatchCompleted(ctx context.Context, summary *parser.BatchSummary) {
	event := messaging.BatchCompletedEvent{
		BatchID:    summary.BatchID,
		Language:   summary.Locale,
		Processed:  summary.Parsed,
		Skipped:    summary.Skipped,
		Failed:     summary.Failed,
		OutputFile: summary.OutputFile,
		DurationMs: summary.Duration.Milliseconds(),
	}
	if err := p.pub.Publish(ctx, messaging.EventBatchCompleted, event); err != nil {
		p.log.Warn().Err(err).Str("batch_id", summary.BatchID).Msg("failed to publish batch event")
	}
}
