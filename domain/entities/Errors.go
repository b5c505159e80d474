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

import "fmt"

// MalformedEventError is returned when an inbound event does not have the
// shape its classification requires.
type MalformedEventError struct {
	Reason string
	Err    error
}

func (e *MalformedEventError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed event: %s", e.Reason)
	}

	return fmt.Sprintf("malformed event: %s. %s", e.Reason, e.Err)
}

func (e *MalformedEventError) Unwrap() error {
	return e.Err
}

type ClientConstructionError struct {
	Service string
	Err     error
}

func (e *ClientConstructionError) Error() string {
	return fmt.Sprintf("failed to create %s client. %s", e.Service, e.Err)
}

func (e *ClientConstructionError) Unwrap() error {
	return e.Err
}

// ReceiptProcessingError wraps any failure of the document analysis call.
type ReceiptProcessingError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *ReceiptProcessingError) Error() string {
	return fmt.Sprintf("error processing receipt s3://%s/%s. %s", e.Bucket, e.Key, e.Err)
}

func (e *ReceiptProcessingError) Unwrap() error {
	return e.Err
}
