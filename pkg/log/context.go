package log

import (
	"context"
	"maps"
	"sync"
)

type (
	key    int
	fields struct {
		lck  *sync.RWMutex
		data map[string]any
	}
	contextFields struct {
		localFields  fields
		globalFields fields
	}
)

const contextFieldsKey key = 0

type ContextFieldsResolverFunction func(ctx context.Context) map[string]any

func newContext(ctx context.Context, localFields fields, globalFields fields) context.Context {
	return context.WithValue(ctx, contextFieldsKey, contextFields{
		localFields:  localFields,
		globalFields: globalFields,
	})
}

// InitContext returns a new context capable of carrying (mutable) local and global logger fields.
//
// A local field stays with the current application. A global field is meant to be forwarded to other services, e.g.
// as part of a webhook or remote aggregator event. Global fields overwrite local fields if they share the same name.
//
// The returned context is mutable: MutateContextFields and MutateGlobalContextFields change the fields of it in place,
// so fields added by a callee are visible to the caller when it logs afterward.
func InitContext(ctx context.Context) context.Context {
	return appendContextFields(ctx, nil, true, true)
}

// AppendContextFields appends the fields to the existing local context, creating a new context containing the
// merged fields. Any existing fields with the same key are overwritten.
//
// This breaks mutation links for the local fields only. Global fields mutated on the returned context are still
// visible on the original one.
func AppendContextFields(ctx context.Context, newFields map[string]any) context.Context {
	return appendContextFields(ctx, newFields, true, false)
}

// MutateContextFields is similar to AppendContextFields, but it mutates the fields from the context
// if the context already contains fields which can be mutated. Otherwise, it initializes a new context able to carry
// fields in the future.
func MutateContextFields(ctx context.Context, newFields map[string]any) context.Context {
	return appendContextFields(ctx, newFields, true, true)
}

// AppendGlobalContextFields is similar to AppendContextFields, but appends to global fields instead.
func AppendGlobalContextFields(ctx context.Context, newFields map[string]any) context.Context {
	return appendContextFields(ctx, newFields, false, false)
}

// MutateGlobalContextFields is similar to MutateContextFields, but mutates to global fields instead.
func MutateGlobalContextFields(ctx context.Context, newFields map[string]any) context.Context {
	return appendContextFields(ctx, newFields, false, true)
}

func appendContextFields(ctx context.Context, newFields map[string]any, local bool, mutate bool) context.Context {
	value, ok := ctx.Value(contextFieldsKey).(contextFields)
	if !ok {
		localFields := fields{
			lck:  &sync.RWMutex{},
			data: make(map[string]any),
		}
		globalFields := fields{
			lck:  &sync.RWMutex{},
			data: make(map[string]any),
		}

		updateFields := &globalFields
		if local {
			updateFields = &localFields
		}

		// make a copy of the input data as we don't know if it will be mutated later on
		updateFields.data = mergeMaps(newFields)

		return newContext(ctx, localFields, globalFields)
	}

	updateFields := value.globalFields
	if local {
		updateFields = value.localFields
	}

	if mutate {
		updateFields.lck.Lock()
		defer updateFields.lck.Unlock()

		for k, v := range newFields {
			updateFields.data[k] = v
		}

		return ctx
	}

	updateFields.lck.RLock()
	defer updateFields.lck.RUnlock()

	updatedFields := fields{
		lck:  &sync.RWMutex{},
		data: mergeMaps(updateFields.data, newFields),
	}

	if local {
		value.localFields = updatedFields
	} else {
		value.globalFields = updatedFields
	}

	return newContext(ctx, value.localFields, value.globalFields)
}

// ContextFieldsResolver extracts the local and global fields from a context and, if not present, it returns an empty map.
//
// Global fields overwrite local fields of the same name.
func ContextFieldsResolver(ctx context.Context) map[string]any {
	return contextFieldsResolver(ctx, true, true)
}

func contextFieldsResolver(ctx context.Context, local bool, global bool) map[string]any {
	value, ok := ctx.Value(contextFieldsKey).(contextFields)

	if !ok {
		return map[string]any{}
	}

	var fields []map[string]any

	if local {
		// be careful about the locking in this method. We always have to lock the local fields first before locking the
		// global fields (if we lock both in a method). Otherwise, we have an opportunity for a deadlock.
		value.localFields.lck.RLock()
		defer value.localFields.lck.RUnlock()

		fields = append(fields, value.localFields.data)
	}

	// need to append the global data second to ensure we honor our comment about
	// global fields taking precedence over local fields
	if global {
		value.globalFields.lck.RLock()
		defer value.globalFields.lck.RUnlock()

		fields = append(fields, value.globalFields.data)
	}

	// make a copy of the data to ensure we can mutate the maps in another goroutine
	return mergeMaps(fields...)
}

func mergeMaps(sources ...map[string]any) map[string]any {
	result := make(map[string]any)

	for _, source := range sources {
		maps.Copy(result, source)
	}

	return result
}
