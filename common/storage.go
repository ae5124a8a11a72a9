package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// GetString returns a string stored by the key or an empty
// string if nothing is stored.
func GetString(ctx storage.Context, key interface{}) string {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(string)
	}

	return ""
}

// GetInt returns an integer stored by the key or zero if nothing
// is stored.
func GetInt(ctx storage.Context, key interface{}) int {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(int)
	}

	return 0
}

// GetHash160 returns an account script hash stored by the key or
// nil if nothing is stored.
func GetHash160(ctx storage.Context, key interface{}) interop.Hash160 {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(interop.Hash160)
	}

	return nil
}

// BytesEqual compares two slices of bytes by wrapping them into strings.
func BytesEqual(a []byte, b []byte) bool {
	return string(a) == string(b)
}
