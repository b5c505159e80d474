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

package common

import (
	"encoding/json"
	"os"
	"path"
	rrhttp "receipt-reader/http"
	"receipt-reader/logging"
	"runtime"
	"testing"

	"github.com/gofiber/fiber/v2"
)

const testRequestSizeLimit = 1024 * 1024

func ChangePathForTesting(t *testing.T) {
	t.Helper()

	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		panic("could not get caller")
	}

	dir := path.Join(path.Dir(filename), "..")
	err := os.Chdir(dir)

	if err != nil {
		panic(err)
	}
}

func LoadFile(t *testing.T, filename string) []byte {
	ChangePathForTesting(t)
	baseDir := "resources/testfiles/"

	src, err := os.ReadFile(baseDir + filename)
	if err != nil {
		panic(err)
	}

	return src
}

func GetObjectFromJSON[T any](t *testing.T, data []byte) T {
	t.Helper()

	var objects T
	err := json.Unmarshal(data, &objects)

	if err != nil {
		panic(err)
	}

	return objects
}

func CreateFiberAppForTest(handlers []rrhttp.Handler, authorizationKeys []string) *fiber.App {
	fiberConfig := rrhttp.FiberConfig{
		MaxRequestSize:    testRequestSizeLimit,
		AuthorizationKeys: authorizationKeys,
		RequestLogger: func(c *fiber.Ctx) error {
			return c.Next()
		},
		Readiness: func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
		Liveness: func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
		Metrics: func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
		Handlers: handlers,
	}
	app, err := rrhttp.CreateFiberApp(fiberConfig, logging.NewDiscardLog())

	if err != nil {
		panic(err)
	}

	return app
}
