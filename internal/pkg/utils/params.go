package utils

import (
	"strconv"
	"strings"
)

// SplitParam разбивает multi-select параметр: клиент шлет "1_2_3", допускаем и "1,2,3"
func SplitParam(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == ','
	})
	result := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// SplitIntParam - то же для числовых кодов; нечисловое значение возвращает ошибку
func SplitIntParam(s string) ([]int, error) {
	parts := SplitParam(s)
	if parts == nil {
		return nil, nil
	}
	result := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}
