package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"influencer_match/models"
)

// forecastHorizon 在输入序列之后外推的周期数
const forecastHorizon = 9

// 请求形态错误，必须显式报告给调用方，不允许静默兜底
var (
	ErrUnsupportedMetric = errors.New("unsupported metric")
	ErrSeriesTooShort    = errors.New("series must contain at least 2 points")
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// metricValue 从采样点中取出指定指标的值
func metricValue(metric string, p models.TrendPoint) (float64, bool) {
	switch metric {
	case "engagement":
		return p.Engagement, true
	case "quality_score":
		return p.QualityScore, true
	case "followers":
		return p.Followers, true
	case "likes":
		return p.Likes, true
	default:
		return 0, false
	}
}

// SupportedMetrics 趋势分析支持的指标名称
func SupportedMetrics() []string {
	return []string{"engagement", "quality_score", "followers", "likes"}
}

// FitTrend 对有序的月度指标序列做最小二乘拟合，并外推9个周期。
// 采样下标作为自变量；不支持的指标和少于2个点的序列是客户端错误。
func FitTrend(metric string, series []models.TrendPoint) (*models.RegressionResult, error) {
	metric = strings.ToLower(strings.TrimSpace(metric))
	if _, ok := metricValue(metric, models.TrendPoint{}); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMetric, metric)
	}
	if len(series) < 2 {
		return nil, ErrSeriesTooShort
	}

	n := float64(len(series))
	var sumX, sumY, sumXY, sumXX float64
	for i, p := range series {
		x := float64(i)
		y, _ := metricValue(metric, p)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n

	// R²：零方差序列视为完美拟合
	mean := sumY / n
	var ssRes, ssTot float64
	for i, p := range series {
		y, _ := metricValue(metric, p)
		predicted := intercept + slope*float64(i)
		ssRes += (y - predicted) * (y - predicted)
		ssTot += (y - mean) * (y - mean)
	}
	rSquared := 1.0
	if ssTot > 0 {
		rSquared = 1 - ssRes/ssTot
	}

	predictions := make([]models.PredictionPoint, 0, len(series)+forecastHorizon)
	for i, p := range series {
		period := p.Period
		if period == 0 {
			period = i + 1
		}
		predictions = append(predictions, models.PredictionPoint{
			Month:     p.Month,
			Period:    period,
			Predicted: intercept + slope*float64(i),
			IsFuture:  false,
		})
	}

	last := series[len(series)-1]
	lastPeriod := last.Period
	if lastPeriod == 0 {
		lastPeriod = len(series)
	}
	for step := 1; step <= forecastHorizon; step++ {
		i := len(series) - 1 + step
		predictions = append(predictions, models.PredictionPoint{
			Month:     advanceMonthLabel(last.Month, step, lastPeriod+step),
			Period:    lastPeriod + step,
			Predicted: intercept + slope*float64(i),
			IsFuture:  true,
		})
	}

	return &models.RegressionResult{
		Metric:      metric,
		Slope:       slope,
		Intercept:   intercept,
		RSquared:    rSquared,
		Predictions: predictions,
	}, nil
}

// parseMonthLabel 解析 "January"、"Jan 2025" 这类标签
func parseMonthLabel(label string) (month, year int, short, ok bool) {
	fields := strings.Fields(strings.TrimSpace(label))
	if len(fields) == 0 {
		return 0, 0, false, false
	}
	name := strings.ToLower(fields[0])
	for i, m := range monthNames {
		full := strings.ToLower(m)
		if name == full || (len(name) == 3 && strings.HasPrefix(full, name)) {
			month = i
			ok = true
			short = len(fields[0]) == 3
			break
		}
	}
	if !ok {
		return 0, 0, false, false
	}
	if len(fields) > 1 {
		if y, err := strconv.Atoi(fields[1]); err == nil {
			year = y
		}
	}
	return month, year, short, true
}

// advanceMonthLabel 从最后一个已知月份标签循环推进，十二月绕回一月并进位年份。
// 标签无法解析时降级为周期编号，而不是让整个请求失败。
func advanceMonthLabel(label string, steps, period int) string {
	month, year, short, ok := parseMonthLabel(label)
	if !ok {
		return fmt.Sprintf("Period %d", period)
	}

	next := month + steps
	name := monthNames[next%12]
	if short {
		name = name[:3]
	}
	if year > 0 {
		return fmt.Sprintf("%s %d", name, year+next/12)
	}
	return name
}
