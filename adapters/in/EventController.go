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

package in

import (
	"bytes"
	"encoding/json"
	rrhttp "receipt-reader/http"
	"receipt-reader/logging"
	"receipt-reader/pkg/envelope"

	"github.com/gofiber/fiber/v2"
)

type EventController struct {
	handler envelope.Handler
	logger  logging.Logger
}

func NewEventController(handler envelope.Handler, logger logging.Logger) EventController {
	return EventController{handler: handler, logger: logger}
}

// PostEvent runs the posted payload through the event handler and replies
// with the resulting envelope.
func (e EventController) PostEvent(ctx *fiber.Ctx) error {
	// fiber reuses the request buffer once the handler returns
	event := json.RawMessage(bytes.Clone(ctx.Body()))

	response, err := e.handler(ctx.UserContext(), event)
	if err != nil {
		e.logger.Errorw("Event handler failed", "error", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(envelope.ErrorBody{Error: true, Message: err.Error()})
	}

	return rrhttp.SendEnvelope(ctx, response)
}
