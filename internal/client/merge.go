package client

import (
	"encoding/json"
	"strconv"
	"time"
)

// toAttrs converts a typed entity into the raw JSON object sent to the API,
// dropping the fields the server (or the offline fallback) assigns itself.
func toAttrs(entity any, omit ...string) map[string]any {
	data, err := json.Marshal(entity)
	if err != nil {
		return map[string]any{}
	}
	var attrs map[string]any
	if err := json.Unmarshal(data, &attrs); err != nil {
		return map[string]any{}
	}
	for _, key := range omit {
		delete(attrs, key)
	}
	return attrs
}

// mergeEntity shallow-merges a raw patch into a typed entity, the local-side
// twin of the server's PUT semantics.
func mergeEntity[T any](entity *T, patch map[string]any) {
	base := toAttrs(*entity)
	for k, v := range patch {
		base[k] = v
	}
	data, err := json.Marshal(base)
	if err != nil {
		return
	}
	var merged T
	if err := json.Unmarshal(data, &merged); err != nil {
		return
	}
	*entity = merged
}

// localID generates the client-side fallback id used when a create cannot
// reach the API: a time-based decimal string, same shape as server ids.
func localID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func patchHasAny(patch map[string]any, keys ...string) bool {
	for _, key := range keys {
		if _, ok := patch[key]; ok {
			return true
		}
	}
	return false
}
