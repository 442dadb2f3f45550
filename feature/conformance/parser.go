package conformance

import (
	"sort"

	"ams-coverage/core/reconcile"
	"ams-coverage/core/utils"

	"github.com/goccy/go-yaml"
)

// ConfigRuleType is the resource type tag of AWS Config rule declarations.
const ConfigRuleType = "AWS::Config::ConfigRule"

// Parse extracts the config rules declared under the top-level Resources mapping
// of a conformance pack template, in declaration order.
//
// Declarations of any other type are ignored. Missing or non-scalar name, owner
// and identifier fields default to "" rather than failing the whole pack.
// A key repeated within a mapping keeps its first position and its last value.
func Parse(source string, data []byte) ([]reconcile.FrameworkRule, error) {
	var doc yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap(), yaml.AllowDuplicateMapKey()); err != nil {
		return nil, &reconcile.MalformedSourceError{Source: source, Reason: "content is not a YAML mapping", Err: err}
	}

	resources, ok := lookupOrdered(doc, "Resources")
	if !ok {
		return nil, &reconcile.MalformedSourceError{Source: source, Reason: "missing top-level Resources mapping"}
	}

	resources = collapse(resources)
	rules := make([]reconcile.FrameworkRule, 0, len(resources))
	for _, item := range resources {
		decl, ok := plain(item.Value).(map[string]any)
		if !ok {
			continue
		}
		if utils.ToString(decl["Type"]) != ConfigRuleType {
			continue
		}

		rules = append(rules, reconcile.FrameworkRule{
			Name:             utils.ToString(utils.Lookup(decl, "Properties", "ConfigRuleName")),
			Owner:            utils.ToString(utils.Lookup(decl, "Properties", "Source", "Owner")),
			SourceIdentifier: utils.ToString(utils.Lookup(decl, "Properties", "Source", "SourceIdentifier")),
		})
	}

	return rules, nil
}

// collapse merges repeated keys: first position, last value.
func collapse(items yaml.MapSlice) yaml.MapSlice {
	index := make(map[string]int, len(items))
	out := make(yaml.MapSlice, 0, len(items))
	for _, item := range items {
		key := utils.ToString(item.Key)
		if i, seen := index[key]; seen {
			out[i].Value = item.Value
			continue
		}
		index[key] = len(out)
		out = append(out, item)
	}
	return out
}

// lookupOrdered returns the mapping stored under key in an ordered document.
// When the key is repeated the last occurrence wins.
func lookupOrdered(doc yaml.MapSlice, key string) (yaml.MapSlice, bool) {
	var found any
	present := false
	for _, item := range doc {
		if utils.ToString(item.Key) == key {
			found = item.Value
			present = true
		}
	}
	if !present {
		return nil, false
	}

	switch value := found.(type) {
	case yaml.MapSlice:
		return value, true
	case map[string]any:
		// Unordered decode; fall back to key order so output stays deterministic
		keys := make([]string, 0, len(value))
		for k := range value {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		ordered := make(yaml.MapSlice, 0, len(keys))
		for _, k := range keys {
			ordered = append(ordered, yaml.MapItem{Key: k, Value: value[k]})
		}
		return ordered, true
	default:
		return nil, false
	}
}

// plain converts ordered mappings into map[string]any so nested fields can be
// read with utils.Lookup.
func plain(v any) any {
	switch t := v.(type) {
	case yaml.MapSlice:
		m := make(map[string]any, len(t))
		for _, item := range t {
			m[utils.ToString(item.Key)] = plain(item.Value)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = plain(val)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[utils.ToString(k)] = plain(val)
		}
		return m
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = plain(t[i])
		}
		return out
	default:
		return v
	}
}
