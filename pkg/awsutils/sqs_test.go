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

package awsutils

import (
	"context"
	"errors"
	"receipt-reader/mocks"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const queueURL = "https://sqs.us-east-1.amazonaws.com/000000000100/receipts"

func TestReceiveMessageFromSQS(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	api := mocks.NewMockSQSAPI(mockCtrl)
	api.EXPECT().ReceiveMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
			assert.Equal(t, queueURL, aws.ToString(params.QueueUrl))
			assert.EqualValues(t, maxMessagesToFetch, params.MaxNumberOfMessages)
			assert.EqualValues(t, poolWaitTime, params.WaitTimeSeconds)

			return &sqs.ReceiveMessageOutput{Messages: []types.Message{{Body: aws.String("{}")}}}, nil
		})

	messages, err := NewSQS(api).ReceiveMessageFromSQS(context.Background(), queueURL)

	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestReceiveEmptyQueue(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	api := mocks.NewMockSQSAPI(mockCtrl)
	api.EXPECT().ReceiveMessage(gomock.Any(), gomock.Any()).Return(&sqs.ReceiveMessageOutput{}, nil)

	messages, err := NewSQS(api).ReceiveMessageFromSQS(context.Background(), queueURL)

	assert.NoError(t, err)
	assert.Nil(t, messages)
}

func TestDeleteMessageFromSQS(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	api := mocks.NewMockSQSAPI(mockCtrl)
	api.EXPECT().DeleteMessage(gomock.Any(), &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: aws.String("handle-1"),
	}).Return(&sqs.DeleteMessageOutput{}, nil)

	err := NewSQS(api).DeleteMessageFromSQS(context.Background(), queueURL, types.Message{ReceiptHandle: aws.String("handle-1")})

	assert.NoError(t, err)
}

func TestPing(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	api := mocks.NewMockSQSAPI(mockCtrl)
	api.EXPECT().GetQueueAttributes(gomock.Any(), gomock.Any()).Return(nil, errors.New("AWS.SimpleQueueService.NonExistentQueue"))

	err := NewSQS(api).Ping(context.Background(), queueURL)

	assert.Error(t, err)
}
