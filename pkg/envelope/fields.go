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

// FieldsPresent reports whether every field exists in data with a value that
// is neither nil nor an empty string.
func FieldsPresent(data map[string]any, requiredFields []string) bool {
	for _, field := range requiredFields {
		value, ok := data[field]
		if !ok || value == nil {
			return false
		}

		if s, isString := value.(string); isString && s == "" {
			return false
		}
	}

	return true
}
