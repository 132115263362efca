package conv

import (
	"reflect"
	"testing"
)

func TestConfigGetters(t *testing.T) {
	m := map[string]any{
		"name":      "diversity",
		"yaml_int":  3,
		"json_int":  float64(4),
		"ratio":     0.5,
		"int_ratio": 1,
		"ids":       []any{"a", 12, 1.5, nil},
		"plain":     []string{"x"},
	}
	if got := ConfigGet(m, "name", ""); got != "diversity" {
		t.Errorf("ConfigGet(name) = %q", got)
	}
	if got := ConfigGet(m, "yaml_int", "fallback"); got != "fallback" {
		t.Errorf("ConfigGet type mismatch = %q", got)
	}
	if got := ConfigGetInt(m, "yaml_int", 0); got != 3 {
		t.Errorf("ConfigGetInt(yaml_int) = %d", got)
	}
	if got := ConfigGetInt(m, "json_int", 0); got != 4 {
		t.Errorf("ConfigGetInt(json_int) = %d", got)
	}
	if got := ConfigGetInt(m, "missing", 9); got != 9 {
		t.Errorf("ConfigGetInt(missing) = %d", got)
	}
	if got := ConfigGetFloat64(m, "int_ratio", 0); got != 1 {
		t.Errorf("ConfigGetFloat64(int_ratio) = %v", got)
	}
	if got := ConfigGetFloat64(m, "ratio", 0); got != 0.5 {
		t.Errorf("ConfigGetFloat64(ratio) = %v", got)
	}
	if got := ConfigGetStrings(m, "ids"); !reflect.DeepEqual(got, []string{"a", "12", "1.5"}) {
		t.Errorf("ConfigGetStrings(ids) = %v", got)
	}
	if got := ConfigGetStrings(m, "plain"); !reflect.DeepEqual(got, []string{"x"}) {
		t.Errorf("ConfigGetStrings(plain) = %v", got)
	}
	if got := ConfigGetStrings(nil, "ids"); got != nil {
		t.Errorf("ConfigGetStrings(nil) = %v", got)
	}
}
