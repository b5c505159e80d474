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

package entities

import "github.com/aws/aws-sdk-go-v2/service/textract"

// AnalysisResult is the raw document analysis output, handed over untouched.
type AnalysisResult struct {
	Output *textract.AnalyzeDocumentOutput
}

func (a *AnalysisResult) BlockCount() int {
	if a == nil || a.Output == nil {
		return 0
	}

	return len(a.Output.Blocks)
}
