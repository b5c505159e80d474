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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"receipt-reader/config"
	"receipt-reader/domain/entities"
	"receipt-reader/logging"
	"receipt-reader/metrics"
	"receipt-reader/mocks"
	"receipt-reader/pkg/envelope"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const uploadEvent = `{"Records":[{"eventSource":"aws:s3","s3":{"bucket":{"name":"receipts"},"object":{"key":"uploads/receipt.png","size":2048}}}]}`

func TestNewHandlerUpload(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	analyzer := mocks.NewMockDocumentAnalyzer(mockCtrl)
	analyzer.EXPECT().AnalyzeDocument(gomock.Any(), entities.DocumentLocation{Bucket: "receipts", Key: "uploads/receipt.png"}, entities.ReceiptFeatures).
		Return(&entities.AnalysisResult{}, nil)
	provider := mocks.NewMockDocumentAnalyzerProvider(mockCtrl)
	provider.EXPECT().NewDocumentAnalyzer(gomock.Any()).Return(analyzer, nil)

	scope, _, _ := metrics.NewNoopScope()
	handler := NewHandler(config.AppConfig{}, provider, scope, logging.NewDiscardLog())

	response, err := handler(context.Background(), json.RawMessage(uploadEvent))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.JSONEq(t, `{"message":"S3 upload processed successfully","bucket":"receipts","key":"uploads/receipt.png","size":2048}`, response.Body)
}

func TestNewHandlerClientFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	provider := mocks.NewMockDocumentAnalyzerProvider(mockCtrl)
	provider.EXPECT().NewDocumentAnalyzer(gomock.Any()).
		Return(nil, &entities.ClientConstructionError{Service: "textract", Err: errors.New("no AWS region resolved")})

	scope, _, _ := metrics.NewNoopScope()
	handler := NewHandler(config.AppConfig{}, provider, scope, logging.NewDiscardLog())

	response, err := handler(context.Background(), json.RawMessage(uploadEvent))

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, response.StatusCode)
	assert.Contains(t, response.Body, "failed to create textract client")
}

func TestInvokeCommandGenericEvent(t *testing.T) {
	t.Setenv("CONFIG_DIR", "/etc/receipt-reader")
	t.Setenv("AWS_REGION", "us-east-1")

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/events/scheduled.json", []byte(`{"source":"aws.events"}`), 0o644))

	var out bytes.Buffer
	cmd := newRootCommand(fs)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"invoke", "--event", "/events/scheduled.json"})

	require.NoError(t, cmd.Execute())

	var response envelope.Envelope
	require.NoError(t, json.Unmarshal(out.Bytes(), &response))
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.JSONEq(t, `{"message":"Event processed successfully"}`, response.Body)
	assert.Equal(t, "*", response.Headers["Access-Control-Allow-Origin"])
}

func TestInvokeCommandFromStdin(t *testing.T) {
	t.Setenv("CONFIG_DIR", "/etc/receipt-reader")
	t.Setenv("AWS_REGION", "us-east-1")

	var out bytes.Buffer
	cmd := newRootCommand(afero.NewMemMapFs())
	cmd.SetIn(strings.NewReader(`{"Records":"not-a-list"}`))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"invoke"})

	require.NoError(t, cmd.Execute())

	var response envelope.Envelope
	require.NoError(t, json.Unmarshal(out.Bytes(), &response))
	assert.Equal(t, http.StatusInternalServerError, response.StatusCode)
	assert.Contains(t, response.Body, `"error":true`)
}

func TestInvokeCommandMissingEventFile(t *testing.T) {
	t.Setenv("AWS_REGION", "us-east-1")

	cmd := newRootCommand(afero.NewMemMapFs())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"invoke", "--event", "/missing.json"})

	assert.Error(t, cmd.Execute())
}

func TestEnvFileMissing(t *testing.T) {
	cmd := newRootCommand(afero.NewMemMapFs())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--env-file", "/does/not/exist.env", "invoke", "--event", "/missing.json"})

	assert.Error(t, cmd.Execute())
}
