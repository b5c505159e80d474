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

// UploadRecord identifies the object a storage upload trigger refers to.
type UploadRecord struct {
	SourceKind string `json:"sourceKind"`
	BucketName string `json:"bucketName" validate:"required"`
	ObjectKey  string `json:"objectKey" validate:"required"`
	ObjectSize int64  `json:"objectSize"`
}

// DocumentLocation points at a document stored in a bucket. Documents are
// always referenced by location, their bytes never travel through the service.
type DocumentLocation struct {
	Bucket string
	Key    string
}
