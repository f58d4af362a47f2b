package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 of data. It names calendars for artifact keys
// and spreads file cache entries across directories.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds "kind:<sha256 of the JSON encoding of parts>". Struct
// options encode with fixed field order, so equal options give equal keys.
func hashKey(kind string, parts ...any) string {
	data, err := json.Marshal(parts)
	if err != nil {
		// Only unsupported values such as channels fail; keys never carry them.
		panic("cache: unencodable key part: " + err.Error())
	}
	return kind + ":" + Hash(data)
}
