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
	"receipt-reader/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
)

type TextractAPI interface {
	AnalyzeDocument(ctx context.Context, params *textract.AnalyzeDocumentInput, optFns ...func(*textract.Options)) (*textract.AnalyzeDocumentOutput, error)
}

type TextractAnalyzer struct {
	client TextractAPI
}

func NewTextractAnalyzer(client TextractAPI) *TextractAnalyzer {
	return &TextractAnalyzer{client: client}
}

func (t *TextractAnalyzer) AnalyzeDocument(ctx context.Context, location entities.DocumentLocation, features []entities.Feature) (*entities.AnalysisResult, error) {
	output, err := t.client.AnalyzeDocument(ctx, &textract.AnalyzeDocumentInput{
		Document: &types.Document{
			S3Object: &types.S3Object{
				Bucket: aws.String(location.Bucket),
				Name:   aws.String(location.Key),
			},
		},
		FeatureTypes: featureTypes(features),
	})
	if err != nil {
		return nil, fmt.Errorf("textract analyze document failed. %w", err)
	}

	return &entities.AnalysisResult{Output: output}, nil
}

// featureTypes maps requested features to Textract feature types. Lines have
// no feature type of their own: LINE blocks are part of every response.
func featureTypes(features []entities.Feature) []types.FeatureType {
	var featureTypes []types.FeatureType

	for _, feature := range features {
		switch feature {
		case entities.Forms:
			featureTypes = append(featureTypes, types.FeatureTypeForms)
		case entities.Tables:
			featureTypes = append(featureTypes, types.FeatureTypeTables)
		case entities.Lines:
		default:
			featureTypes = append(featureTypes, types.FeatureType(feature))
		}
	}

	return featureTypes
}
