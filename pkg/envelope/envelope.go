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

package envelope

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	allowedHeaders = "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token"
	allowedMethods = "GET,POST,PUT,DELETE,OPTIONS"
)

// Envelope is the response shape handed back to the invoking environment.
type Envelope struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

type ErrorBody struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type SuccessBody struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// Build serializes body and attaches the CORS headers. It never fails: values
// JSON cannot represent are written in their string form.
func Build(statusCode int, body any) Envelope {
	return Envelope{
		StatusCode: statusCode,
		Headers:    Headers(),
		Body:       marshal(body),
	}
}

func Error(statusCode int, message string) Envelope {
	return Build(statusCode, ErrorBody{Error: true, Message: message})
}

func Success(data any) Envelope {
	return Build(http.StatusOK, SuccessBody{Success: true, Data: data})
}

// Headers returns a new copy of the headers attached to every envelope.
func Headers() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": allowedHeaders,
		"Access-Control-Allow-Methods": allowedMethods,
	}
}

func AllowedHeaders() string {
	return allowedHeaders
}

func AllowedMethods() string {
	return allowedMethods
}

func marshal(body any) string {
	data, err := json.Marshal(body)
	if err == nil {
		return string(data)
	}

	data, err = json.Marshal(sanitize(body))
	if err == nil {
		return string(data)
	}

	data, _ = json.Marshal(fmt.Sprint(body))
	return string(data)
}
