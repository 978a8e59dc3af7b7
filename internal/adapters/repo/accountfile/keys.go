package accountfile

import (
	"reflect"
	"sort"
	"strings"
)

var schemaType = reflect.TypeOf(fileSchema{})

// unknownKeys lists the dotted paths in raw that fileSchema does not model.
// They are lost the next time the file is written.
func unknownKeys(raw map[string]any) []string {
	var keys []string
	collectUnknownKeys(raw, schemaType, "", &keys)
	sort.Strings(keys)
	return keys
}

func collectUnknownKeys(raw map[string]any, t reflect.Type, prefix string, keys *[]string) {
	fields := make(map[string]reflect.Type, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name != "" && name != "-" {
			fields[name] = field.Type
		}
	}

	for key, value := range raw {
		fieldType, ok := fields[key]
		if !ok {
			*keys = append(*keys, prefix+key)
			continue
		}
		nested, isMap := value.(map[string]any)
		if isMap && fieldType.Kind() == reflect.Struct {
			collectUnknownKeys(nested, fieldType, prefix+key+".", keys)
		}
	}
}
