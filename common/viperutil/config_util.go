/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package viperutil

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/flogging"
)

var logger = flogging.MustGetLogger("viperutil")

// CfgPathEnvVar names the environment variable that points at the directory
// holding the configuration file.
const CfgPathEnvVar = "RSAGEN_CFG_PATH"

// ConfigPaths returns the paths from environment and
// defaults which are CWD and /etc/rsagen.
func ConfigPaths() []string {
	var paths []string
	if p := os.Getenv(CfgPathEnvVar); p != "" {
		paths = append(paths, p)
	}
	return append(paths, ".", "/etc/rsagen")
}

// InitViper points v at configName in every directory returned by
// ConfigPaths and enables environment overrides with the upper-cased
// configName as prefix. Dots in keys become underscores in variable names.
func InitViper(v *viper.Viper, configName string) {
	for _, p := range ConfigPaths() {
		v.AddConfigPath(p)
	}
	v.SetConfigName(configName)
	v.SetEnvPrefix(strings.ToUpper(configName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// BindEnvKeys registers an environment variable for every leaf of the
// struct output points to, so that variables override keys the
// configuration file does not mention. Range structs and durations are
// leaves.
func BindEnvKeys(v *viper.Viper, output interface{}) error {
	oType := reflect.TypeOf(output)
	if oType == nil || oType.Kind() != reflect.Ptr || oType.Elem().Kind() != reflect.Struct {
		return errors.Errorf("supplied output argument must be a pointer to a struct")
	}

	for _, key := range leafKeys("", oType.Elem()) {
		if err := v.BindEnv(key); err != nil {
			return errors.Wrapf(err, "failed binding environment for %s", key)
		}
	}
	return nil
}

func leafKeys(base string, t reflect.Type) []string {
	var keys []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		key := base + strings.ToLower(f.Name)
		if f.Type.Kind() == reflect.Struct && !isRangeType(f.Type) {
			keys = append(keys, leafKeys(key+".", f.Type)...)
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

type viperGetter func(key string) interface{}

// getKeysRecursively walks the merged settings tree so that keys known only
// through bound environment variables are kept. Leaves are resolved with
// getKey, which applies environment overrides.
func getKeysRecursively(base string, getKey viperGetter, nodeKeys map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{})
	for key, node := range nodeKeys {
		fqKey := base + key

		switch node := node.(type) {
		case map[string]interface{}:
			logger.Debugf("Found map[string]interface{} value for %s", fqKey)
			result[key] = getKeysRecursively(fqKey+".", getKey, node)

		case map[interface{}]interface{}:
			logger.Debugf("Found map[interface{}]interface{} value for %s", fqKey)
			result[key] = getKeysRecursively(fqKey+".", getKey, toMapStringInterface(node))

		default:
			result[key] = getKey(fqKey)
		}
	}
	return result
}

func toMapStringInterface(m map[interface{}]interface{}) map[string]interface{} {
	result := map[string]interface{}{}
	for k, v := range m {
		k, ok := k.(string)
		if !ok {
			panic(fmt.Sprintf("Non string %v, %v: key-entry: %v", k, v, k))
		}
		result[k] = v
	}
	return result
}

// customDecodeHook parses strings of the format "[thing1, thing2, thing3]"
// into string slices. Note that whitespace around slice elements is removed.
func customDecodeHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String {
		return data, nil
	}

	raw := data.(string)
	l := len(raw)
	if l > 1 && raw[0] == '[' && raw[l-1] == ']' {
		slice := strings.Split(raw[1:l-1], ",")
		for i, v := range slice {
			slice[i] = strings.TrimSpace(v)
		}
		return slice, nil
	}

	return data, nil
}

// rangeDecodeHook turns a two element list into a struct with integer Min
// and Max fields, so ranges can be written as [2, 25] in YAML or the
// environment.
func rangeDecodeHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.Slice || !isRangeType(t) {
		return data, nil
	}

	v := reflect.ValueOf(data)
	if v.Len() != 2 {
		return data, errors.Errorf("range must have exactly two elements, got %d", v.Len())
	}

	bounds := make([]int64, 2)
	for i := range bounds {
		n, err := strconv.ParseInt(strings.TrimSpace(fmt.Sprint(v.Index(i).Interface())), 10, 64)
		if err != nil {
			return data, errors.Wrapf(err, "invalid range bound %v", v.Index(i).Interface())
		}
		bounds[i] = n
	}
	if bounds[0] > bounds[1] {
		return data, errors.Errorf("invalid range [%d, %d]: min is greater than max", bounds[0], bounds[1])
	}

	return map[string]interface{}{"Min": bounds[0], "Max": bounds[1]}, nil
}

func isRangeType(t reflect.Type) bool {
	if t.Kind() != reflect.Struct || t.NumField() != 2 {
		return false
	}
	for _, name := range []string{"Min", "Max"} {
		f, ok := t.FieldByName(name)
		if !ok {
			return false
		}
		switch f.Type.Kind() {
		case reflect.Int, reflect.Int32, reflect.Int64:
		default:
			return false
		}
	}
	return true
}

// EnhancedExactUnmarshal is intended to unmarshal a config file into a structure
// producing error when extraneous variables are introduced and supporting
// the time.Duration type
func EnhancedExactUnmarshal(v *viper.Viper, output interface{}) error {
	oType := reflect.TypeOf(output)
	if oType == nil || oType.Kind() != reflect.Ptr {
		return errors.Errorf("supplied output argument must be a pointer to a struct but is not pointer")
	}
	if oType.Elem().Kind() != reflect.Struct {
		return errors.Errorf("supplied output argument must be a pointer to a struct, but it is pointer to something else")
	}

	baseKeys := v.AllSettings()
	leafKeys := getKeysRecursively("", v.Get, baseKeys)

	logger.Debugf("%+v", leafKeys)
	config := &mapstructure.DecoderConfig{
		ErrorUnused:      true,
		Metadata:         nil,
		Result:           output,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			customDecodeHook,
			rangeDecodeHook,
		),
	}

	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return err
	}
	return decoder.Decode(leafKeys)
}
