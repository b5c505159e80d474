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

package in

import (
	"context"
	"encoding/json"
	"net/http"
	adapterentities "receipt-reader/adapters/entities"
	"receipt-reader/logging"
	"receipt-reader/pkg/awsutils"
	"receipt-reader/pkg/envelope"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/uber-go/tally/v4"
)

const (
	consumeCount     = "consume_count"
	deleteCount      = "delete_count"
	redriveCount     = "redrive_count"
	singleMessageInc = 1

	receiveErrorBackoff = 5 * time.Second
)

// QueueController feeds S3 notifications delivered through SQS to the event
// handler. Messages whose envelope is not a 200 stay in the queue so the
// redrive policy moves them to the DLQ.
type QueueController struct {
	handler envelope.Handler

	sqsService awsutils.SQS
	queue      string

	logger       logging.Logger
	metricsScope tally.Scope
}

func NewQueueController(queue string, handler envelope.Handler, sqsService awsutils.SQS, metricsScope tally.Scope, logger logging.Logger) QueueController {
	return QueueController{queue: queue, handler: handler, sqsService: sqsService, logger: logger, metricsScope: metricsScope}
}

func (q *QueueController) AsyncConsume(ctx context.Context) {
	if q.queue == "" {
		q.logger.Infow("Won't attempt to read SQS queue, because none was configured")
		return
	}

	q.logger.Infow("Start of async queue processing")

	for {
		select {
		case <-ctx.Done():
			q.logger.Infow("End of async queue processing")
			return

		default:
			if err := q.ConsumeOnce(ctx); err != nil {
				q.logger.Errorw("failed to receive messages", "error", err)

				select {
				case <-ctx.Done():
				case <-time.After(receiveErrorBackoff):
				}
			}
		}
	}
}

// ConsumeOnce runs a single long poll and handles every message it returns.
func (q *QueueController) ConsumeOnce(ctx context.Context) error {
	messages, err := q.sqsService.ReceiveMessageFromSQS(ctx, q.queue)
	if err != nil {
		return err
	}

	for _, m := range messages {
		q.consume(ctx, m)
	}

	return nil
}

func (q *QueueController) consume(ctx context.Context, m types.Message) {
	q.metricsScope.Counter(consumeCount).Inc(singleMessageInc)

	response, err := q.handler(ctx, extractEvent(m))
	if err != nil || response.StatusCode != http.StatusOK {
		q.logger.Errorw("Message not processed, leaving it for redrive", "error", err, "message_id", aws.ToString(m.MessageId), "response", response.Body)
		q.metricsScope.Counter(redriveCount).Inc(singleMessageInc)

		return
	}

	if err := q.sqsService.DeleteMessageFromSQS(ctx, q.queue, m); err != nil {
		q.logger.Errorw("deleting message from sqs service failed", "error", err, "message_id", aws.ToString(m.MessageId))
		return
	}

	q.metricsScope.Counter(deleteCount).Inc(singleMessageInc)
}

// extractEvent returns the S3 notification carried by the message, unwrapping
// the SNS envelope when there is one. Anything else is passed through as is.
func extractEvent(m types.Message) json.RawMessage {
	body := []byte(aws.ToString(m.Body))

	var notification adapterentities.SQSNotification
	if err := json.Unmarshal(body, &notification); err != nil || notification.Message == "" {
		return body
	}

	if !json.Valid([]byte(notification.Message)) {
		return body
	}

	return json.RawMessage(notification.Message)
}
