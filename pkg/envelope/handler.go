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
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"receipt-reader/logging"
	"reflect"
	"runtime"
)

const internalServerError = "Internal server error"

// Handler is the signature every event entry point implements.
type Handler func(ctx context.Context, event json.RawMessage) (Envelope, error)

type InternalErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WithErrorHandling returns a handler with the same contract as handler whose
// returned errors and panics are turned into a 500 envelope. The returned
// handler never fails.
func WithErrorHandling(handler Handler, logger logging.Logger) Handler {
	name := handlerName(handler)

	return func(ctx context.Context, event json.RawMessage) (response Envelope, err error) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Errorw(fmt.Sprintf("Error in %s", name), "handler", name, "error", recovered)
				response, err = internalError(fmt.Sprint(recovered)), nil
			}
		}()

		response, err = handler(ctx, event)
		if err != nil {
			logger.Errorw(fmt.Sprintf("Error in %s", name), "handler", name, "error", err)
			return internalError(err.Error()), nil
		}

		return response, nil
	}
}

func internalError(message string) Envelope {
	return Build(http.StatusInternalServerError, InternalErrorBody{Error: internalServerError, Message: message})
}

func handlerName(handler Handler) string {
	if handler == nil {
		return "<nil>"
	}

	fn := runtime.FuncForPC(reflect.ValueOf(handler).Pointer())
	if fn == nil {
		return "<unknown>"
	}

	return fn.Name()
}
