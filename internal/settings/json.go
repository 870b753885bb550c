package settings

import (
	"encoding/json"
	"fmt"

	"github.com/valyala/fastjson"
)

// ParseRawJSON decodes a submission document such as
//
//	{"cron_status": true, "cron_limit": "50", "billing_profile_custom_address": {"country_code": "US"}}
//
// into raw input. Nulls are absent values. Nothing is validated here.
func ParseRawJSON(data []byte) (RawInput, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse submission: %w", err)
	}
	obj, err := v.Object()
	if err != nil {
		return nil, fmt.Errorf("submission must be a json object: %w", err)
	}
	raw := RawInput{}
	obj.Visit(func(key []byte, v *fastjson.Value) {
		if v.Type() == fastjson.TypeNull {
			return
		}
		raw[string(key)] = fromJSON(v)
	})
	return raw, nil
}

func fromJSON(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		// unsigned integers stay integers, anything else keeps its literal
		// so that -0 is judged like the string "-0"
		lit := v.MarshalTo(nil)
		if lit[0] != '-' {
			if n, err := v.Int(); err == nil {
				return n
			}
		}
		return json.Number(lit)
	case fastjson.TypeObject:
		m := map[string]any{}
		v.GetObject().Visit(func(key []byte, inner *fastjson.Value) {
			if inner.Type() == fastjson.TypeNull {
				return
			}
			m[string(key)] = fromJSON(inner)
		})
		return m
	case fastjson.TypeArray:
		items := v.GetArray()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = fromJSON(item)
		}
		return out
	default:
		return nil
	}
}
