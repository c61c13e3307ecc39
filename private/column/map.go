package column

import (
	"reflect"
	"sync"
)

type typeKey struct {
	rowType reflect.Type
	tagKey  string
}

type listResult struct {
	list []*Info
	err  error
}

var typeMap = struct {
	mu sync.RWMutex
	m  map[typeKey]listResult
}{
	m: make(map[typeKey]listResult),
}

// ListForType returns the bound fields of rowType, which must be a
// struct, reading struct tags with tagKey. Results are cached, and the
// returned list must not be modified.
func ListForType(rowType reflect.Type, tagKey string) ([]*Info, error) {
	key := typeKey{rowType: rowType, tagKey: tagKey}
	typeMap.mu.RLock()
	result, ok := typeMap.m[key]
	typeMap.mu.RUnlock()
	if ok {
		return result.list, result.err
	}

	typeMap.mu.Lock()
	defer typeMap.mu.Unlock()
	if result, ok := typeMap.m[key]; ok {
		return result.list, result.err
	}
	list, err := newList(rowType, tagKey)
	typeMap.m[key] = listResult{list: list, err: err}
	return list, err
}
