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
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

const (
	maxIdleConnections     = 100
	idleConnectionsTimeout = 90
	maxIdleConnsPerHost    = 50
	maxConnsPerHost        = 100
)

// ConfigLoader has the signature of config.LoadDefaultConfig.
type ConfigLoader func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error)

type Options struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// LoadConfig resolves an aws.Config from the host environment. Credentials come
// from the default chain unless static keys are given. Retries are disabled,
// callers decide what to do with a failed request.
func LoadConfig(ctx context.Context, loader ConfigLoader, options Options) (aws.Config, error) {
	httpClient := awshttp.NewBuildableClient().WithTransportOptions(func(transport *http.Transport) {
		transport.MaxIdleConns = maxIdleConnections
		transport.IdleConnTimeout = idleConnectionsTimeout * time.Second
		transport.MaxIdleConnsPerHost = maxIdleConnsPerHost
		transport.MaxConnsPerHost = maxConnsPerHost
	})

	optFns := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithHTTPClient(httpClient),
		awsconfig.WithRetryer(func() aws.Retryer {
			return aws.NopRetryer{}
		}),
	}

	if options.Region != "" {
		optFns = append(optFns, awsconfig.WithRegion(options.Region))
	}

	if options.AccessKeyID != "" {
		optFns = append(optFns, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(options.AccessKeyID, options.SecretAccessKey, "")))
	}

	cfg, err := loader(ctx, optFns...)
	if err != nil {
		return aws.Config{}, err
	}

	if cfg.Region == "" {
		return aws.Config{}, fmt.Errorf("no AWS region resolved")
	}

	if options.Endpoint != "" {
		cfg.BaseEndpoint = aws.String(options.Endpoint)
	}

	return cfg, nil
}
