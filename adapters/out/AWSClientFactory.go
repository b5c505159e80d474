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

package out

import (
	"context"
	"fmt"
	"receipt-reader/config"
	"receipt-reader/domain/entities"
	portsout "receipt-reader/domain/ports/out"
	"receipt-reader/logging"
	"receipt-reader/pkg/awsutils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/textract"
)

type ServiceName string

const (
	StorageService          ServiceName = "s3"
	StructuredStoreService  ServiceName = "dynamodb"
	DocumentAnalysisService ServiceName = "textract"
	GenerativeAIService     ServiceName = "bedrock-runtime"
	NotificationService     ServiceName = "ses"
	QueueService            ServiceName = "sqs"
)

// AWSClientFactory builds a new client on every call. Nothing is cached, an
// invocation only lives as long as the event it handles.
type AWSClientFactory struct {
	awsConfig config.AWS
	loader    awsutils.ConfigLoader
	logger    logging.Logger
}

func NewAWSClientFactory(awsConfig config.AWS, logger logging.Logger) *AWSClientFactory {
	return NewAWSClientFactoryWithLoader(awsConfig, awsconfig.LoadDefaultConfig, logger)
}

func NewAWSClientFactoryWithLoader(awsConfig config.AWS, loader awsutils.ConfigLoader, logger logging.Logger) *AWSClientFactory {
	return &AWSClientFactory{awsConfig: awsConfig, loader: loader, logger: logger}
}

// Client returns the client registered under service.
func (f *AWSClientFactory) Client(ctx context.Context, service ServiceName) (any, error) {
	switch service {
	case StorageService:
		return f.Storage(ctx)
	case StructuredStoreService:
		return f.StructuredStore(ctx)
	case DocumentAnalysisService:
		return f.DocumentAnalysis(ctx)
	case GenerativeAIService:
		return f.GenerativeAI(ctx)
	case NotificationService:
		return f.Notification(ctx)
	case QueueService:
		return f.Queue(ctx)
	default:
		err := &entities.ClientConstructionError{Service: string(service), Err: fmt.Errorf("there is no such service %s", service)}
		f.logger.Errorw("Error creating AWS client", "service", service, "error", err)

		return nil, err
	}
}

func (f *AWSClientFactory) Storage(ctx context.Context) (*s3.Client, error) {
	cfg, err := f.load(ctx, StorageService)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = f.awsConfig.Resolver != ""
	}), nil
}

func (f *AWSClientFactory) StructuredStore(ctx context.Context) (*dynamodb.Client, error) {
	cfg, err := f.load(ctx, StructuredStoreService)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(cfg), nil
}

func (f *AWSClientFactory) DocumentAnalysis(ctx context.Context) (*textract.Client, error) {
	cfg, err := f.load(ctx, DocumentAnalysisService)
	if err != nil {
		return nil, err
	}

	return textract.NewFromConfig(cfg), nil
}

func (f *AWSClientFactory) GenerativeAI(ctx context.Context) (*bedrockruntime.Client, error) {
	cfg, err := f.load(ctx, GenerativeAIService)
	if err != nil {
		return nil, err
	}

	return bedrockruntime.NewFromConfig(cfg), nil
}

func (f *AWSClientFactory) Notification(ctx context.Context) (*ses.Client, error) {
	cfg, err := f.load(ctx, NotificationService)
	if err != nil {
		return nil, err
	}

	return ses.NewFromConfig(cfg), nil
}

func (f *AWSClientFactory) Queue(ctx context.Context) (*sqs.Client, error) {
	cfg, err := f.load(ctx, QueueService)
	if err != nil {
		return nil, err
	}

	return sqs.NewFromConfig(cfg), nil
}

// NewDocumentAnalyzer implements out.DocumentAnalyzerProvider with Textract.
func (f *AWSClientFactory) NewDocumentAnalyzer(ctx context.Context) (portsout.DocumentAnalyzer, error) {
	client, err := f.DocumentAnalysis(ctx)
	if err != nil {
		return nil, err
	}

	return NewTextractAnalyzer(client), nil
}

func (f *AWSClientFactory) load(ctx context.Context, service ServiceName) (aws.Config, error) {
	cfg, err := awsutils.LoadConfig(ctx, f.loader, awsutils.Options{
		Region:          f.awsConfig.Region,
		Endpoint:        f.awsConfig.Resolver,
		AccessKeyID:     f.awsConfig.AccessKeyID,
		SecretAccessKey: f.awsConfig.SecretAccessKey,
	})
	if err != nil {
		f.logger.Errorw("Error creating AWS client", "service", service, "error", err)
		return aws.Config{}, &entities.ClientConstructionError{Service: string(service), Err: err}
	}

	return cfg, nil
}
