package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"influencer_match/logger"
	"influencer_match/models"
	"influencer_match/utils"
)

// NeutralSimilarity 商家文本为空或影响者不在向量索引中时的中性相似度
const NeutralSimilarity = 0.5

// englishStopWords 向量化前剔除的英文停用词
var englishStopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "about", "above", "after", "again", "all", "also", "am", "an", "and",
		"any", "are", "as", "at", "be", "because", "been", "before", "being",
		"below", "between", "both", "but", "by", "can", "could", "did", "do",
		"does", "doing", "down", "during", "each", "few", "for", "from",
		"further", "had", "has", "have", "having", "he", "her", "here", "hers",
		"him", "his", "how", "if", "in", "into", "is", "it", "its", "itself",
		"just", "me", "more", "most", "my", "no", "nor", "not", "now", "of",
		"off", "on", "once", "only", "or", "other", "our", "ours", "out",
		"over", "own", "same", "she", "should", "so", "some", "such", "than",
		"that", "the", "their", "theirs", "them", "then", "there", "these",
		"they", "this", "those", "through", "to", "too", "under", "until",
		"up", "very", "was", "we", "were", "what", "when", "where", "which",
		"while", "who", "whom", "why", "will", "with", "you", "your", "yours",
	} {
		englishStopWords[w] = struct{}{}
	}
}

// Vectorizer 在整个目录上拟合一次的TF-IDF模型。
// 拟合完成后词表冻结：查询只做transform，绝不改写词表或向量矩阵。
// 重建必须构造新实例并整体替换，禁止原地修改。
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
	vectors    []map[int]float64 // 每条目录记录一个L2归一化稀疏向量
	rows       map[string]int    // 小写用户名 -> 向量行号
}

// docField 参与向量化的字段及其显式权重。
// 类目权重最高，自由文本次之，这取代了用文本重复次数充当权重的做法。
type docField struct {
	text   string
	weight float64
	dedupe bool
}

func profileFields(p *models.InfluencerProfile) []docField {
	return []docField{
		{text: p.Description, weight: 2},
		{text: p.Category, weight: 3},
		{text: p.Keywords, weight: 2, dedupe: true},
		{text: p.Country, weight: 1},
		{text: p.ContentTopics, weight: 1},
		{text: p.Username, weight: 1},
	}
}

// weightedTermCounts 按字段权重累计一条记录的词频，包含一元词和二元词。
// 所有字段都切不出词元时退回通用占位文档，保证没有记录产生空向量。
func weightedTermCounts(p *models.InfluencerProfile) map[string]float64 {
	counts := make(map[string]float64)
	for _, f := range profileFields(p) {
		addFieldTerms(counts, f.text, f.weight, f.dedupe)
	}
	if len(counts) == 0 {
		placeholder := "influencer content creator social media " + p.Category
		addFieldTerms(counts, placeholder, 1, false)
	}
	return counts
}

func addFieldTerms(counts map[string]float64, text string, weight float64, dedupe bool) {
	tokens := make([]string, 0)
	for _, tok := range utils.Tokenize(text) {
		if _, stop := englishStopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	if dedupe {
		tokens = utils.DeduplicateSlice(tokens)
	}
	for _, tok := range tokens {
		counts[tok] += weight
	}
	for i := 0; i+1 < len(tokens); i++ {
		counts[tokens[i]+" "+tokens[i+1]] += weight
	}
}

// BuildVectorizer 在整个目录上拟合词表和向量矩阵。
// 词表按文档频率截断到maxFeatures，平局按字典序，保证拟合结果确定。
func BuildVectorizer(profiles []models.InfluencerProfile, maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = 5000
	}

	docs := make([]map[string]float64, len(profiles))
	df := make(map[string]int)
	for i := range profiles {
		docs[i] = weightedTermCounts(&profiles[i])
		for term := range docs[i] {
			df[term]++
		}
	}

	// 整个语料都是停用词时退化为每条记录唯一词元的语料，系统降级而不崩溃
	if len(df) == 0 {
		logger.Warn("向量化语料为空，退化为唯一词元语料", "profiles", len(profiles))
		for i := range docs {
			docs[i] = map[string]float64{
				fmt.Sprintf("influencer%d", i): 1,
				"content":                      1,
			}
			for term := range docs[i] {
				df[term]++
			}
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if df[terms[i]] != df[terms[j]] {
			return df[terms[i]] > df[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)

	v := &Vectorizer{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
		vectors:    make([]map[int]float64, len(profiles)),
		rows:       make(map[string]int, len(profiles)),
	}
	n := float64(len(profiles))
	for i, term := range terms {
		v.vocabulary[term] = i
		// 平滑IDF，保证语料中每个词的权重有限且为正
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	for i := range profiles {
		v.vectors[i] = v.vectorize(docs[i])
		v.rows[strings.ToLower(profiles[i].Username)] = i
	}
	return v
}

// vectorize 把加权词频转成L2归一化的稀疏TF-IDF向量，TF取次线性缩放
func (v *Vectorizer) vectorize(counts map[string]float64) map[int]float64 {
	vec := make(map[int]float64)
	var norm float64
	for term, count := range counts {
		idx, ok := v.vocabulary[term]
		if !ok || count <= 0 {
			continue
		}
		w := (1 + math.Log(count)) * v.idf[idx]
		vec[idx] = w
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}

// TransformQuery 把查询文本变换到已冻结的词表空间，从不重新拟合
func (v *Vectorizer) TransformQuery(text string) map[int]float64 {
	counts := make(map[string]float64)
	addFieldTerms(counts, text, 1, false)
	return v.vectorize(counts)
}

// Similarity 计算商家文本与目标影响者向量的余弦相似度，结果落在[0,1]。
// 文本为空或影响者不在拟合时的目录中时返回中性的0.5。
func (v *Vectorizer) Similarity(businessText, username string) float64 {
	if strings.TrimSpace(businessText) == "" {
		return NeutralSimilarity
	}
	row, ok := v.rows[strings.ToLower(strings.TrimPrefix(username, "@"))]
	if !ok {
		return NeutralSimilarity
	}
	query := v.TransformQuery(businessText)
	if len(query) == 0 {
		return 0
	}
	return dot(query, v.vectors[row])
}

// dot 两个已归一化稀疏向量的点积，即余弦相似度
func dot(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for idx, w := range a {
		sum += w * b[idx]
	}
	if sum < 0 {
		return 0
	}
	if sum > 1 {
		return 1
	}
	return sum
}

// VocabularySize 冻结词表的大小
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocabulary)
}
