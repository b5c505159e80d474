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

package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "receipt-reader"

// NewZapLogger builds the JSON logger used by every entry point. Inside Lambda
// each entry also carries the function name and version.
func NewZapLogger(debug bool) (Logger, error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if debug {
		level.SetLevel(zap.DebugLevel)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "message"
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLog, err := zap.Config{
		Level:            level,
		Encoding:         "json",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields:    baseFields(),
	}.Build()
	if err != nil {
		return nil, err
	}

	return zapLog.Sugar(), nil
}

func baseFields() map[string]interface{} {
	fields := map[string]interface{}{"service": serviceName}

	if name := os.Getenv("AWS_LAMBDA_FUNCTION_NAME"); name != "" {
		fields["function_name"] = name
		fields["function_version"] = os.Getenv("AWS_LAMBDA_FUNCTION_VERSION")
	}

	return fields
}

// NewDiscardLog drops every entry. Meant for tests.
func NewDiscardLog() Logger {
	return zap.NewNop().Sugar()
}
