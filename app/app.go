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

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	adaptersin "receipt-reader/adapters/in"
	adaptersout "receipt-reader/adapters/out"
	"receipt-reader/config"
	portsout "receipt-reader/domain/ports/out"
	"receipt-reader/domain/services"
	rrhttp "receipt-reader/http"
	"receipt-reader/logging"
	"receipt-reader/metrics"
	"receipt-reader/pkg/awsutils"
	"receipt-reader/pkg/envelope"
	"strings"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/uber-go/tally/v4"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
	"gopkg.in/DataDog/dd-trace-go.v1/profiler"
)

// NewHandler wires the receipt pipeline behind a single event handler.
func NewHandler(appConfig config.AppConfig, analyzers portsout.DocumentAnalyzerProvider, metricsScope tally.Scope, logger logging.Logger) envelope.Handler {
	receiptService := services.NewReceiptService(analyzers, metricsScope, logger)
	router := services.NewEventRouter(receiptService, appConfig.S3.BucketName, appConfig.DynamoDB.TableName, metricsScope, logger)

	return envelope.WithErrorHandling(router.Handle, logger)
}

func setup(fs afero.Fs) (config.AppConfig, logging.Logger, error) {
	appConfig, err := config.LoadConfig(fs)
	if err != nil {
		return config.AppConfig{}, nil, err
	}

	logger, err := logging.NewZapLogger(appConfig.Log.Debug)
	if err != nil {
		return config.AppConfig{}, nil, err
	}

	return appConfig, logger, nil
}

// StartLambda hands the event handler to the Lambda runtime. It only returns
// if the function could not be set up.
func StartLambda(fs afero.Fs) error {
	appConfig, logger, err := setup(fs)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	metricsScope, _, _ := metrics.NewNoopScope()
	factory := adaptersout.NewAWSClientFactory(appConfig.Aws, logger)

	controller := adaptersin.NewLambdaController(NewHandler(appConfig, factory, metricsScope, logger), logger)
	controller.Start()

	return nil
}

// Invoke runs the event handler once on event and writes the envelope to w.
func Invoke(ctx context.Context, fs afero.Fs, event []byte, w io.Writer) error {
	appConfig, logger, err := setup(fs)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	metricsScope, _, _ := metrics.NewNoopScope()
	factory := adaptersout.NewAWSClientFactory(appConfig.Aws, logger)

	response, err := NewHandler(appConfig, factory, metricsScope, logger)(ctx, event)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(response)
}

// StartWorker consumes S3 notifications from the configured queue and serves
// the HTTP harness until ctx is done.
//
//nolint:cyclop
func StartWorker(ctx context.Context, fs afero.Fs) error {
	appConfig, logger, err := setup(fs)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	// Enable Datadog tracer
	tracer.Start()
	defer tracer.Stop()

	if appConfig.Datadog.Profiler {
		if err = profiler.Start(); err != nil {
			return err
		}
		defer profiler.Stop()
	}

	var metricsHandler http.Handler
	var metricsScope tally.Scope
	var metricsClose io.Closer

	if appConfig.HTTPServer.Metrics {
		metricsScope, metricsHandler, metricsClose = metrics.NewPrometheusScope(map[string]string{"mode": "worker"})
	} else {
		metricsScope, metricsHandler, metricsClose = metrics.NewNoopScope()
	}
	defer metricsClose.Close()

	factory := adaptersout.NewAWSClientFactory(appConfig.Aws, logger)

	sqsClient, err := factory.Queue(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize aws client. Error: %s, Region: %s, Resolver: %s", err, appConfig.Aws.Region, appConfig.Aws.Resolver)
	}

	sqsService := awsutils.NewSQS(sqsClient)
	handler := NewHandler(appConfig, factory, metricsScope, logger)

	// Controllers
	queueController := adaptersin.NewQueueController(appConfig.Aws.Queue, handler, sqsService, metricsScope, logger)
	go queueController.AsyncConsume(ctx)

	eventController := adaptersin.NewEventController(handler, logger)

	fiberConfig := rrhttp.FiberConfig{
		MaxRequestSize:    appConfig.HTTPServer.MaxRequestSize,
		AuthorizationKeys: appConfig.HTTPServer.AuthorizationKeys,
		Profiler:          appConfig.HTTPServer.Profiler,
		Metrics:           adaptor.HTTPHandler(metricsHandler),
		RequestLogger: func(c *fiber.Ctx) error {
			err := c.Next()
			// Prevent generating lots of logs because of healthcheck
			if !strings.HasPrefix(c.Path(), "/healthcheck/") && !strings.HasPrefix(c.Path(), "/metrics") {
				logger.Infow("Received webapi request", "caller", c.Locals(rrhttp.CallerLocal), "ip", c.IP(),
					"method", c.Method(), "path", c.Path(), "response_status", c.Response().StatusCode())
			}
			return err
		},
		Readiness: func(c *fiber.Ctx) error {
			if appConfig.Aws.Queue == "" {
				return c.SendStatus(fiber.StatusOK)
			}

			if err := sqsService.Ping(c.UserContext(), appConfig.Aws.Queue); err != nil {
				logger.Errorw("Failed to connect to the SQS in readiness.", "error", err)
				return c.Status(fiber.StatusServiceUnavailable).SendString(fmt.Sprintf("SQS not connectable. %s", err))
			}

			return c.SendStatus(fiber.StatusOK)
		},
		Liveness: func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
		Handlers: []rrhttp.Handler{
			{HTTPMethod: fiber.MethodPost, Path: "/events", HandlerFunc: eventController.PostEvent},
		},
	}

	app, err := rrhttp.CreateFiberApp(fiberConfig, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize fiber framework. Error: %s", err)
	}

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			logger.Errorw("Failed to shutdown http server", "error", err)
		}
	}()

	return app.Listen(fmt.Sprintf(":%d", appConfig.HTTPServer.Port))
}
