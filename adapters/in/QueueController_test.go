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
	"errors"
	"net/http"
	"receipt-reader/common"
	"receipt-reader/domain/entities"
	"receipt-reader/domain/services"
	"receipt-reader/logging"
	"receipt-reader/metrics"
	"receipt-reader/mocks"
	"receipt-reader/pkg/awsutils"
	"receipt-reader/pkg/envelope"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testQueue = "https://sqs.us-east-1.amazonaws.com/000000000100/receipts-queue"

func newTestQueueController(handler envelope.Handler, sqsAPI awsutils.SQSAPI) QueueController {
	scope, _, _ := metrics.NewNoopScope()
	return NewQueueController(testQueue, handler, awsutils.NewSQS(sqsAPI), scope, logging.NewDiscardLog())
}

func sqsMessage(id, body string) types.Message {
	return types.Message{MessageId: aws.String(id), ReceiptHandle: aws.String("handle-" + id), Body: aws.String(body)}
}

func TestExtractEvent(t *testing.T) {
	direct := string(common.LoadFile(t, "sqs_s3_message.json"))
	wrapped := string(common.LoadFile(t, "sns_wrapped_message.json"))
	wrappedNotification := common.GetObjectFromJSON[map[string]any](t, []byte(wrapped))

	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "raw s3 notification", body: direct, expected: direct},
		{name: "sns envelope", body: wrapped, expected: wrappedNotification["Message"].(string)},
		{name: "not json", body: "hello", expected: "hello"},
		{name: "sns envelope with invalid message", body: `{"Type":"Notification","Message":"not json"}`, expected: `{"Type":"Notification","Message":"not json"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			event := extractEvent(sqsMessage("1", tt.body))
			assert.Equal(t, tt.expected, string(event))
		})
	}
}

func TestConsumeDeletesProcessedMessages(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	wrapped := string(common.LoadFile(t, "sns_wrapped_message.json"))
	message := sqsMessage("1", wrapped)

	sqsAPI := mocks.NewMockSQSAPI(mockCtrl)
	sqsAPI.EXPECT().ReceiveMessage(gomock.Any(), gomock.Any()).
		Return(&sqs.ReceiveMessageOutput{Messages: []types.Message{message}}, nil)
	sqsAPI.EXPECT().DeleteMessage(gomock.Any(), gomock.Eq(&sqs.DeleteMessageInput{
		QueueUrl:      aws.String(testQueue),
		ReceiptHandle: aws.String("handle-1"),
	})).Return(&sqs.DeleteMessageOutput{}, nil)

	processor := mocks.NewMockReceiptProcessor(mockCtrl)
	processor.EXPECT().ProcessReceipt(gomock.Any(), "personal-finance-receipts", "uploads/receipt.png").
		Return(&entities.AnalysisResult{}, nil)

	scope, _, _ := metrics.NewNoopScope()
	router := services.NewEventRouter(processor, "", "", scope, logging.NewDiscardLog())
	controller := newTestQueueController(envelope.WithErrorHandling(router.Handle, logging.NewDiscardLog()), sqsAPI)

	require.NoError(t, controller.ConsumeOnce(context.Background()))
}

func TestConsumeLeavesFailedMessages(t *testing.T) {
	tests := []struct {
		name    string
		handler envelope.Handler
	}{
		{
			name: "error envelope",
			handler: func(ctx context.Context, event json.RawMessage) (envelope.Envelope, error) {
				return envelope.Error(http.StatusInternalServerError, "boom"), nil
			},
		},
		{
			name: "handler error",
			handler: func(ctx context.Context, event json.RawMessage) (envelope.Envelope, error) {
				return envelope.Envelope{}, errors.New("boom")
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			sqsAPI := mocks.NewMockSQSAPI(mockCtrl)
			sqsAPI.EXPECT().ReceiveMessage(gomock.Any(), gomock.Any()).
				Return(&sqs.ReceiveMessageOutput{Messages: []types.Message{sqsMessage("1", `{"Records":[]}`)}}, nil)
			sqsAPI.EXPECT().DeleteMessage(gomock.Any(), gomock.Any()).Times(0)

			controller := newTestQueueController(tt.handler, sqsAPI)

			require.NoError(t, controller.ConsumeOnce(context.Background()))
		})
	}
}

func TestConsumeHandlesEveryMessage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	messages := []types.Message{sqsMessage("1", `{}`), sqsMessage("2", `{}`), sqsMessage("3", `{}`)}

	sqsAPI := mocks.NewMockSQSAPI(mockCtrl)
	sqsAPI.EXPECT().ReceiveMessage(gomock.Any(), gomock.Any()).
		Return(&sqs.ReceiveMessageOutput{Messages: messages}, nil)
	sqsAPI.EXPECT().DeleteMessage(gomock.Any(), gomock.Any()).Return(&sqs.DeleteMessageOutput{}, nil).Times(len(messages))

	handled := 0
	controller := newTestQueueController(func(ctx context.Context, event json.RawMessage) (envelope.Envelope, error) {
		handled++
		return envelope.Success(nil), nil
	}, sqsAPI)

	require.NoError(t, controller.ConsumeOnce(context.Background()))
	assert.Equal(t, len(messages), handled)
}

func TestConsumeReceiveError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	sqsAPI := mocks.NewMockSQSAPI(mockCtrl)
	sqsAPI.EXPECT().ReceiveMessage(gomock.Any(), gomock.Any()).Return(nil, errors.New("access denied"))

	controller := newTestQueueController(nil, sqsAPI)

	assert.Error(t, controller.ConsumeOnce(context.Background()))
}

func TestAsyncConsumeStopsOnCancel(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())

	sqsAPI := mocks.NewMockSQSAPI(mockCtrl)
	sqsAPI.EXPECT().ReceiveMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *sqs.ReceiveMessageInput, ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
			cancel()
			return nil, context.Canceled
		})

	controller := newTestQueueController(nil, sqsAPI)

	controller.AsyncConsume(ctx)
}

func TestAsyncConsumeWithoutQueue(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	scope, _, _ := metrics.NewNoopScope()
	controller := NewQueueController("", nil, awsutils.NewSQS(mocks.NewMockSQSAPI(mockCtrl)), scope, logging.NewDiscardLog())

	controller.AsyncConsume(context.Background())
}
