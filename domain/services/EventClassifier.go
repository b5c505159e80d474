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
	"encoding/json"
	"net/url"
	"receipt-reader/domain/entities"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-playground/validator/v10"
)

// S3EventSource tags records emitted by storage upload triggers.
const S3EventSource = "aws:s3"

type EventClassifier struct {
	validate *validator.Validate
}

func NewEventClassifier() *EventClassifier {
	return &EventClassifier{validate: validator.New()}
}

// Classify only ever looks at the first record: an event is an upload when
// that record comes from S3, whatever the records after it are. Payloads
// that are valid JSON but not objects have no Records and are generic.
func (c *EventClassifier) Classify(event json.RawMessage) (entities.ClassifiedEvent, error) {
	if !json.Valid(event) {
		return nil, &entities.MalformedEventError{Reason: "event is not valid JSON"}
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(event, &payload); err != nil {
		return entities.GenericEvent{}, nil
	}

	rawRecords, ok := payload["Records"]
	if !ok || isEmptyValue(rawRecords) {
		return entities.GenericEvent{}, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(rawRecords, &records); err != nil {
		return nil, &entities.MalformedEventError{Reason: "Records is not a list", Err: err}
	}

	var first map[string]json.RawMessage
	if err := json.Unmarshal(records[0], &first); err != nil || first == nil {
		return nil, &entities.MalformedEventError{Reason: "first record is not an object", Err: err}
	}

	if !isS3Source(first["eventSource"]) {
		return entities.GenericEvent{}, nil
	}

	record, err := c.uploadRecord(records[0])
	if err != nil {
		return nil, err
	}

	return entities.UploadTriggerEvent{Record: record, IgnoredRecords: len(records) - 1}, nil
}

func (c *EventClassifier) uploadRecord(raw json.RawMessage) (entities.UploadRecord, error) {
	var s3Record events.S3EventRecord
	if err := json.Unmarshal(raw, &s3Record); err != nil {
		return entities.UploadRecord{}, &entities.MalformedEventError{Reason: "invalid S3 record", Err: err}
	}

	// Keys arrive URL encoded in S3 notifications
	key, err := url.QueryUnescape(s3Record.S3.Object.Key)
	if err != nil {
		return entities.UploadRecord{}, &entities.MalformedEventError{Reason: "invalid object key encoding", Err: err}
	}

	record := entities.UploadRecord{
		SourceKind: s3Record.EventSource,
		BucketName: s3Record.S3.Bucket.Name,
		ObjectKey:  key,
		ObjectSize: s3Record.S3.Object.Size,
	}

	if err := c.validate.Struct(record); err != nil {
		return entities.UploadRecord{}, &entities.MalformedEventError{Reason: "S3 record without bucket name or object key", Err: err}
	}

	return record, nil
}

// isS3Source tolerates eventSource values of any JSON type.
func isS3Source(raw json.RawMessage) bool {
	var source string
	if err := json.Unmarshal(raw, &source); err != nil {
		return false
	}

	return source == S3EventSource
}

// isEmptyValue reports JSON values that carry nothing: null, false, 0, "",
// [] and {}.
func isEmptyValue(raw json.RawMessage) bool {
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return false
	}

	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == ""
	case []interface{}:
		return len(v) == 0
	case map[string]interface{}:
		return len(v) == 0
	default:
		return false
	}
}
