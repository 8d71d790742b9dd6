package utils

import (
	"reflect"
	"strings"
)

func GetFields(t any) []reflect.StructField {
	typeOf := reflect.TypeOf(t)
	var result []reflect.StructField
	for i := 0; i < typeOf.NumField(); i++ {
		result = append(result, typeOf.Field(i))
	}
	return result
}

// ParquetTagToKeyValue splits a tag like "name=id, type=INT32". Entries without '=' are skipped.
func ParquetTagToKeyValue(tag string) map[string]string {
	result := make(map[string]string)
	for _, entry := range strings.Split(tag, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(entry), "=")
		if !found {
			continue
		}
		result[strings.ToLower(key)] = value
	}
	return result
}
