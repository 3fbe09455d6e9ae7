package dotmap

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/itchyny/gojq"
	"github.com/tidwall/gjson"
)

// Query runs a jq expression against the nested form of the data and returns
// every value it emits. Numbers come back as float64.
//
//	c.Query(".food.bacon | keys") // [[smell taste]]
func (c *Container) Query(expr string) ([]any, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidQuery, expr, err)
	}

	input, err := c.jsonTree()
	if err != nil {
		return nil, err
	}

	results := []any{}
	iter := query.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			var halt *gojq.HaltError
			if errors.As(err, &halt) && halt.Value() == nil {
				break
			}
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}

// jsonTree returns the nested data reduced to the JSON value types gojq
// understands.
func (c *Container) jsonTree() (any, error) {
	nested, err := c.Expand()
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(nested)
	if err != nil {
		return nil, err
	}
	return gjson.ParseBytes(b).Value(), nil
}
