// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ordering

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/taibuivan/linkdeck/internal/platform/validate"
)

/*
ParseItems decodes and validates a reorder payload.

Description: The body must be a non-empty JSON array of objects, each with an
integer id and an integer order_num. Ids must be unique. Every violation is
reported as its own field detail, e.g. "items[2].order_num".

Parameters:
  - raw: []byte (Request body)

Returns:
  - []Item: Items in request order
  - error: apperr VALIDATION_ERROR describing every failed element
*/
func ParseItems(raw []byte) ([]Item, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, validate.Field(FieldItems, "Body must be a JSON array")
	}
	if len(elements) == 0 {
		return nil, validate.Field(FieldItems, "At least one item is required")
	}

	validator := &validate.Validator{}
	items := make([]Item, 0, len(elements))
	seen := make(map[int64]int, len(elements))

	for index, element := range elements {
		prefix := fmt.Sprintf("%s[%d]", FieldItems, index)

		var fields map[string]any
		decoder := json.NewDecoder(bytes.NewReader(element))
		decoder.UseNumber()
		if err := decoder.Decode(&fields); err != nil || fields == nil {
			validator.Custom(prefix, true, "Must be an object")
			continue
		}

		id, idOK := integerField(fields, FieldID, math.MinInt64, math.MaxInt64)
		validator.Custom(prefix+"."+FieldID, !idOK, "Must be an integer")

		orderNum, orderOK := integerField(fields, FieldOrderNum, math.MinInt32, math.MaxInt32)
		validator.Custom(prefix+"."+FieldOrderNum, !orderOK, "Must be an integer")

		if !idOK || !orderOK {
			continue
		}

		if first, duplicate := seen[id]; duplicate {
			validator.Custom(prefix+"."+FieldID, true, fmt.Sprintf("Duplicates %s[%d].%s", FieldItems, first, FieldID))
			continue
		}
		seen[id] = index

		items = append(items, Item{ID: id, OrderNum: int(orderNum)})
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// integerField reads a JSON number without a fractional part within [min, max].
func integerField(fields map[string]any, name string, min, max int64) (int64, bool) {
	number, ok := fields[name].(json.Number)
	if !ok {
		return 0, false
	}
	value, err := number.Int64()
	if err != nil || value < min || value > max {
		return 0, false
	}
	return value, true
}
