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

type EventKind string

const (
	GenericEventKind EventKind = "generic"
	UploadEventKind  EventKind = "s3_upload"
)

// ClassifiedEvent is either a GenericEvent or an UploadTriggerEvent.
type ClassifiedEvent interface {
	Kind() EventKind
}

type GenericEvent struct{}

func (GenericEvent) Kind() EventKind {
	return GenericEventKind
}

// UploadTriggerEvent carries the first upload record of the event. Only that
// record is processed, IgnoredRecords counts the ones after it.
type UploadTriggerEvent struct {
	Record         UploadRecord
	IgnoredRecords int
}

func (UploadTriggerEvent) Kind() EventKind {
	return UploadEventKind
}
