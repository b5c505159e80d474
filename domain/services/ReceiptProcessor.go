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
	"receipt-reader/domain/entities"
	"receipt-reader/domain/ports/out"
	"receipt-reader/logging"

	"github.com/uber-go/tally/v4"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

const (
	receiptsProcessed = "receipts_processed"
	receiptFailures   = "receipt_failures"
	blocksExtracted   = "blocks_extracted"
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../mocks/mock_receipt_processor.go -package=mocks -source=ReceiptProcessor.go
type ReceiptProcessor interface {
	ProcessReceipt(ctx context.Context, bucketName, objectKey string) (*entities.AnalysisResult, error)
}

type ReceiptService struct {
	analyzers    out.DocumentAnalyzerProvider
	metricsScope tally.Scope
	logger       logging.Logger
}

func NewReceiptService(analyzers out.DocumentAnalyzerProvider, metricsScope tally.Scope, logger logging.Logger) *ReceiptService {
	return &ReceiptService{analyzers: analyzers, metricsScope: metricsScope, logger: logger}
}

// ProcessReceipt runs a single synchronous analysis of the stored document and
// returns the service output as is. Failures are not retried.
func (r *ReceiptService) ProcessReceipt(ctx context.Context, bucketName, objectKey string) (result *entities.AnalysisResult, err error) {
	if bucketName == "" || objectKey == "" {
		return nil, &entities.MalformedEventError{Reason: "bucket name and object key are required"}
	}

	span, ctx := tracer.StartSpanFromContext(ctx, "receipt.process", tracer.ResourceName(bucketName))
	defer func() { span.Finish(tracer.WithError(err)) }()

	analyzer, err := r.analyzers.NewDocumentAnalyzer(ctx)
	if err != nil {
		r.metricsScope.Counter(receiptFailures).Inc(1)
		return nil, err
	}

	location := entities.DocumentLocation{Bucket: bucketName, Key: objectKey}

	result, err = analyzer.AnalyzeDocument(ctx, location, entities.ReceiptFeatures)
	if err != nil {
		r.logger.Errorw("Error processing receipt with document analysis", "bucket", bucketName, "key", objectKey, "error", err)
		r.metricsScope.Counter(receiptFailures).Inc(1)

		return nil, &entities.ReceiptProcessingError{Bucket: bucketName, Key: objectKey, Err: err}
	}

	blocks := result.BlockCount()
	r.logger.Infow("Document analysis completed", "bucket", bucketName, "key", objectKey, "blocks", blocks)
	r.metricsScope.Counter(receiptsProcessed).Inc(1)
	r.metricsScope.Counter(blocksExtracted).Inc(int64(blocks))

	return result, nil
}
