package messaging

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types
const (
	// Routing events
	EventFileRouted     = "cv.file.routed"
	EventRoutingSkipped = "cv.file.skipped"

	// Parsing events
	EventRecordParsed   = "cv.record.parsed"
	EventBatchCompleted = "cv.batch.completed"
)

// Exchange names
const (
	ExchangeCVEvents = "cv.events"
)

// Event is the base event structure
type Event struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlation_id"`
	Data          json.RawMessage `json:"data"`
}

// NewEvent creates a new event with the given type and data
func NewEvent(eventType, source, correlationID string, data interface{}) (*Event, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:            uuid.New().String(),
		Type:          eventType,
		Source:        source,
		Timestamp:     time.Now().UTC(),
		CorrelationID: correlationID,
		Data:          dataBytes,
	}, nil
}

// UnmarshalData unmarshals the event data into the provided struct
func (e *Event) UnmarshalData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// FileRoutedEvent is published when the router partitions a file
type FileRoutedEvent struct {
	SourceFile string `json:"source_file"`
	Language   string `json:"language"`
	OutputPath string `json:"output_path"`
}

// RecordParsedEvent is published for each successfully parsed CV
type RecordParsedEvent struct {
	SourceFile string `json:"source_file"`
	Language   string `json:"language"`
	HasName    bool   `json:"has_name"`
	HasEmail   bool   `json:"has_email"`
	HasPhone   bool   `json:"has_phone"`
	SkillCount int    `json:"skill_count"`
}

// BatchCompletedEvent is published once per parser run
type BatchCompletedEvent struct {
	BatchID    string `json:"batch_id"`
	Language   string `json:"language"`
	Processed  int    `json:"processed"`
	Skipped    int    `json:"skipped"`
	Failed     int    `json:"failed"`
	OutputFile string `json:"output_file"`
	DurationMs int64  `json:"duration_ms"`
}
