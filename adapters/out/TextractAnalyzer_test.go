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
	"encoding/json"
	"io"
	"net/http"
	"receipt-reader/domain/entities"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const textractEndpoint = "https://textract.us-east-1.localhost"

type textractRequest struct {
	Document struct {
		S3Object struct {
			Bucket string
			Name   string
		}
	}
	FeatureTypes []string
}

func newTestTextractClient(t *testing.T) *textract.Client {
	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)

	return textract.New(textract.Options{
		Region:       "us-east-1",
		BaseEndpoint: aws.String(textractEndpoint),
		Credentials:  credentials.NewStaticCredentialsProvider("AKIDEXAMPLE", "secret", ""),
		HTTPClient:   httpClient,
		Retryer:      aws.NopRetryer{},
	})
}

func TestAnalyzeDocumentRequest(t *testing.T) {
	client := newTestTextractClient(t)

	var received textractRequest
	var target string
	httpmock.RegisterResponder(http.MethodPost, "=~^"+textractEndpoint,
		func(req *http.Request) (*http.Response, error) {
			target = req.Header.Get("X-Amz-Target")
			body, err := io.ReadAll(req.Body)
			if err != nil {
				return nil, err
			}
			if err := json.Unmarshal(body, &received); err != nil {
				return nil, err
			}

			return httpmock.NewStringResponse(http.StatusOK,
				`{"DocumentMetadata":{"Pages":1},"Blocks":[{"BlockType":"PAGE","Id":"p1"},{"BlockType":"LINE","Id":"l1","Text":"TOTAL 12.50"}]}`), nil
		})

	analyzer := NewTextractAnalyzer(client)
	result, err := analyzer.AnalyzeDocument(context.Background(),
		entities.DocumentLocation{Bucket: "receipts", Key: "uploads/receipt.png"}, entities.ReceiptFeatures)

	require.NoError(t, err)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
	assert.Equal(t, "Textract.AnalyzeDocument", target)
	assert.Equal(t, "receipts", received.Document.S3Object.Bucket)
	assert.Equal(t, "uploads/receipt.png", received.Document.S3Object.Name)
	assert.Equal(t, []string{"FORMS", "TABLES"}, received.FeatureTypes)
	assert.Equal(t, 2, result.BlockCount())
	assert.Equal(t, "TOTAL 12.50", aws.ToString(result.Output.Blocks[1].Text))
}

func TestAnalyzeDocumentServiceError(t *testing.T) {
	client := newTestTextractClient(t)

	httpmock.RegisterResponder(http.MethodPost, "=~^"+textractEndpoint,
		httpmock.NewStringResponder(http.StatusBadRequest,
			`{"__type":"InvalidS3ObjectException","Message":"Unable to get object metadata from S3"}`))

	analyzer := NewTextractAnalyzer(client)
	result, err := analyzer.AnalyzeDocument(context.Background(),
		entities.DocumentLocation{Bucket: "receipts", Key: "missing.png"}, entities.ReceiptFeatures)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InvalidS3ObjectException")
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

type stubTextract struct {
	input  *textract.AnalyzeDocumentInput
	output *textract.AnalyzeDocumentOutput
}

func (s *stubTextract) AnalyzeDocument(_ context.Context, params *textract.AnalyzeDocumentInput, _ ...func(*textract.Options)) (*textract.AnalyzeDocumentOutput, error) {
	s.input = params
	return s.output, nil
}

func TestFeatureTypes(t *testing.T) {
	tests := []struct {
		name     string
		features []entities.Feature
		expected []types.FeatureType
	}{
		{
			name:     "receipt features",
			features: entities.ReceiptFeatures,
			expected: []types.FeatureType{types.FeatureTypeForms, types.FeatureTypeTables},
		},
		{
			name:     "lines only",
			features: []entities.Feature{entities.Lines},
			expected: nil,
		},
		{
			name:     "passthrough",
			features: []entities.Feature{"SIGNATURES"},
			expected: []types.FeatureType{types.FeatureTypeSignatures},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubTextract{output: &textract.AnalyzeDocumentOutput{}}

			_, err := NewTextractAnalyzer(stub).AnalyzeDocument(context.Background(),
				entities.DocumentLocation{Bucket: "b", Key: "k"}, tt.features)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, stub.input.FeatureTypes)
			assert.Equal(t, "b", aws.ToString(stub.input.Document.S3Object.Bucket))
			assert.Equal(t, "k", aws.ToString(stub.input.Document.S3Object.Name))
		})
	}
}
