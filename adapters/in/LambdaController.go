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
	"os"
	"receipt-reader/common"
	"receipt-reader/logging"
	"receipt-reader/pkg/envelope"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

const traceIDEnv = "_X_AMZN_TRACE_ID"

type LambdaController struct {
	handler envelope.Handler
	logger  logging.Logger
}

// NewLambdaController expects handler to be already wrapped by
// envelope.WithErrorHandling.
func NewLambdaController(handler envelope.Handler, logger logging.Logger) LambdaController {
	return LambdaController{handler: handler, logger: logger}
}

func (l LambdaController) Invoke(ctx context.Context, event json.RawMessage) (envelope.Envelope, error) {
	requestID := invocationID(ctx)
	l.logger.Infow("Received invocation", "request_id", requestID, "function", lambdacontext.FunctionName, "size", len(event))

	response, err := l.handler(ctx, event)
	if err != nil {
		return response, err
	}

	l.logger.Infow("Invocation finished", "request_id", requestID, "status_code", response.StatusCode)

	return response, nil
}

// Start hands control to the Lambda runtime and only returns on failure.
func (l LambdaController) Start() {
	lambda.Start(l.Invoke)
}

// invocationID prefers the Lambda request id, then the X-Ray trace id the
// runtime exports for the current invocation, then a random id.
func invocationID(ctx context.Context) string {
	var requestID string
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		requestID = lc.AwsRequestID
	}

	return common.GetFirstNonEmpty(requestID, os.Getenv(traceIDEnv), common.NewInvocationID())
}
