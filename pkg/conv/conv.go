// Package conv 把 YAML/JSON 解析得到的 map[string]any 配置转换为具体类型。
package conv

import (
	"fmt"
	"strconv"
)

// ToFloat64 将数字类型或数字字符串转为 float64。
func ToFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// ToInt 将数字类型转为 int，浮点数截断。
func ToInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case int32:
		return int(val), true
	case uint64:
		return int(val), true
	case float64:
		return int(val), true
	case float32:
		return int(val), true
	case string:
		n, err := strconv.Atoi(val)
		return n, err == nil
	default:
		return 0, false
	}
}

// ToStrings 将 []any 或 []string 转为 []string，数字按最短形式格式化。
func ToStrings(v any) []string {
	switch val := v.(type) {
	case []string:
		return append([]string(nil), val...)
	case []any:
		out := make([]string, 0, len(val))
		for _, e := range val {
			switch x := e.(type) {
			case string:
				out = append(out, x)
			case nil:
			default:
				if f, ok := ToFloat64(x); ok {
					out = append(out, strconv.FormatFloat(f, 'f', -1, 64))
				} else {
					out = append(out, fmt.Sprint(x))
				}
			}
		}
		return out
	default:
		return nil
	}
}

// ConfigGet 按 key 取 T，取不到或类型不符时返回 defaultVal。
func ConfigGet[T any](m map[string]any, key string, defaultVal T) T {
	v, ok := m[key]
	if !ok {
		return defaultVal
	}
	t, ok := v.(T)
	if !ok {
		return defaultVal
	}
	return t
}

// ConfigGetInt 取整数；YAML 得到 int，JSON 得到 float64，两者都接受。
func ConfigGetInt(m map[string]any, key string, defaultVal int) int {
	if n, ok := ToInt(m[key]); ok {
		return n
	}
	return defaultVal
}

// ConfigGetFloat64 取浮点数，整数字面量也接受。
func ConfigGetFloat64(m map[string]any, key string, defaultVal float64) float64 {
	if f, ok := ToFloat64(m[key]); ok {
		return f
	}
	return defaultVal
}

// ConfigGetStrings 取字符串列表，缺失时返回 nil。
func ConfigGetStrings(m map[string]any, key string) []string {
	return ToStrings(m[key])
}
