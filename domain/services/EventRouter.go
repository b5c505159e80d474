/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package services

import (
	"context"
	"encoding/json"
	"net/http"
	"receipt-reader/domain/entities"
	"receipt-reader/logging"
	"receipt-reader/pkg/envelope"

	"github.com/uber-go/tally/v4"
)

const (
	eventsReceived = "events_received"
	eventFailures  = "event_failures"

	genericEventMessage = "Event processed successfully"
	uploadEventMessage  = "S3 upload processed successfully"
)

type GenericEventResponse struct {
	Message string `json:"message"`
}

type UploadEventResponse struct {
	Message string `json:"message"`
	Bucket  string `json:"bucket"`
	Key     string `json:"key"`
	Size    int64  `json:"size"`
}

// EventRouter is the single failure boundary of an invocation: every outcome
// is an envelope with status 200 or 500.
type EventRouter struct {
	classifier *EventClassifier
	processor  ReceiptProcessor

	bucketName string
	tableName  string

	metricsScope tally.Scope
	logger       logging.Logger
}

func NewEventRouter(processor ReceiptProcessor, bucketName, tableName string, metricsScope tally.Scope, logger logging.Logger) *EventRouter {
	return &EventRouter{
		classifier:   NewEventClassifier(),
		processor:    processor,
		bucketName:   bucketName,
		tableName:    tableName,
		metricsScope: metricsScope,
		logger:       logger,
	}
}

// Handle matches envelope.Handler and never returns an error.
func (e *EventRouter) Handle(ctx context.Context, event json.RawMessage) (envelope.Envelope, error) {
	response, err := e.route(ctx, event)
	if err != nil {
		e.logger.Errorw("Error handling event", "error", err)
		e.metricsScope.Counter(eventFailures).Inc(1)

		return envelope.Error(http.StatusInternalServerError, err.Error()), nil
	}

	return response, nil
}

func (e *EventRouter) route(ctx context.Context, event json.RawMessage) (envelope.Envelope, error) {
	classified, err := e.classifier.Classify(event)
	if err != nil {
		return envelope.Envelope{}, err
	}

	e.metricsScope.Tagged(map[string]string{"kind": string(classified.Kind())}).Counter(eventsReceived).Inc(1)

	switch ev := classified.(type) {
	case entities.UploadTriggerEvent:
		return e.handleUpload(ctx, ev)
	default:
		return envelope.Build(http.StatusOK, GenericEventResponse{Message: genericEventMessage}), nil
	}
}

func (e *EventRouter) handleUpload(ctx context.Context, event entities.UploadTriggerEvent) (envelope.Envelope, error) {
	record := event.Record

	e.logger.Infow("S3 upload event", "bucket", record.BucketName, "key", record.ObjectKey, "size", record.ObjectSize)
	e.logger.Infow("Configured resources", "S3_BUCKET_NAME", e.bucketName, "DYNAMODB_TABLE_NAME", e.tableName)

	if event.IgnoredRecords > 0 {
		e.logger.Warnw("Only the first record of the event is processed", "ignored_records", event.IgnoredRecords)
	}

	// The analysis result is not part of the response.
	if _, err := e.processor.ProcessReceipt(ctx, record.BucketName, record.ObjectKey); err != nil {
		return envelope.Envelope{}, err
	}

	return envelope.Build(http.StatusOK, UploadEventResponse{
		Message: uploadEventMessage,
		Bucket:  record.BucketName,
		Key:     record.ObjectKey,
		Size:    record.ObjectSize,
	}), nil
}
