package utils

import (
	"regexp"
	"strings"
)

// tokenPattern 在包初始化时编译一次
var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// Tokenize 将文本切分为小写词元，丢弃单字符噪声
func Tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if len(t) < 2 {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// DeduplicateSlice 去重字符串切片，保持出现顺序
func DeduplicateSlice(input []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)

	for _, val := range input {
		val = strings.TrimSpace(val)
		if val != "" && !seen[val] {
			result = append(result, val)
			seen[val] = true
		}
	}

	return result
}

// Min 返回两个整数中的较小值
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
