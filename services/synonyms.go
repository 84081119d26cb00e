package services

import (
	"strings"

	"influencer_match/utils"
)

// categorySynonyms 类目到相关词的静态映射。只用于在Jaccard重叠计算前
// 扩大词集，不做类目合并或规范化。
var categorySynonyms = map[string][]string{
	"fashion":       {"clothing", "apparel", "style", "outfits", "wear", "dress"},
	"fitness":       {"gym", "workout", "exercise", "training", "health", "wellness"},
	"beauty":        {"makeup", "cosmetics", "skincare", "hair", "glam"},
	"food":          {"cooking", "cuisine", "recipes", "chef", "kitchen", "restaurant"},
	"travel":        {"tourism", "adventure", "destinations", "vacation", "wanderlust"},
	"tech":          {"technology", "gadgets", "computers", "software", "electronics"},
	"gaming":        {"games", "esports", "streaming", "videogames"},
	"music":         {"musician", "singer", "songwriter", "band", "concert"},
	"sports":        {"athlete", "football", "soccer", "basketball", "ball", "racing"},
	"lifestyle":     {"daily", "vlog", "living", "routine"},
	"finance":       {"money", "investing", "economics", "business", "trading", "careers"},
	"education":     {"learning", "science", "teaching", "school", "literature"},
	"entertainment": {"comedy", "humor", "fun", "shows", "cinema", "movies", "actors"},
	"photography":   {"photo", "camera", "landscapes", "nature"},
	"family":        {"kids", "parenting", "toys", "children"},
	"luxury":        {"jewellery", "jewelry", "accessories", "premium", "shopping"},
	"modeling":      {"model", "runway", "fashionweek"},
	"cars":          {"motorbikes", "automotive", "racing", "machinery"},
}

// ExpandCategoryTerms 返回类目字符串的扩展词集：
// 自身的小写词元，加上键或任一同义词作为子串出现在类目中的全部同义词组。
func ExpandCategoryTerms(category string) map[string]struct{} {
	terms := make(map[string]struct{})
	lower := strings.ToLower(strings.TrimSpace(category))
	if lower == "" {
		return terms
	}

	for _, tok := range utils.Tokenize(lower) {
		terms[tok] = struct{}{}
	}

	for key, synonyms := range categorySynonyms {
		matched := strings.Contains(lower, key)
		if !matched {
			for _, syn := range synonyms {
				if strings.Contains(lower, syn) {
					matched = true
					break
				}
			}
		}
		if !matched {
			continue
		}
		terms[key] = struct{}{}
		for _, syn := range synonyms {
			terms[syn] = struct{}{}
		}
	}
	return terms
}
