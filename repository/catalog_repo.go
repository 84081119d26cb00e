package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"influencer_match/db"
	"influencer_match/logger"
	"influencer_match/models"
)

// nullToFlex 将可空字符串列转换为FlexNumber，NULL变为空串走缺省值
func nullToFlex(v sql.NullString) models.FlexNumber {
	if !v.Valid {
		return ""
	}
	return models.FlexNumber(strings.TrimSpace(v.String))
}

func nullToString(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return strings.TrimSpace(v.String)
}

// ListInfluencers 从MySQL快照表读取完整目录。
// 表是ETL导入的只读快照，与JSON文件数据源字段一一对应。
func ListInfluencers(table string) ([]models.InfluencerProfile, error) {
	if table == "" {
		table = "influencers"
	}

	query := fmt.Sprintf("SELECT channel_info, `rank`, influence_score, posts, followers, avg_likes, "+
		"eng_rate, country, category, description, keywords, content_topics, "+
		"credibility_score, engagement_quality, longevity_score FROM %s", table)

	rows, err := db.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]models.InfluencerProfile, 0)
	for rows.Next() {
		var (
			channelInfo                             sql.NullString
			rank, influence, posts, followers       sql.NullString
			avgLikes, engRate                       sql.NullString
			country, category, description          sql.NullString
			keywords, contentTopics                 sql.NullString
			credibility, engQuality, longevityScore sql.NullString
		)
		if err := rows.Scan(&channelInfo, &rank, &influence, &posts, &followers,
			&avgLikes, &engRate, &country, &category, &description,
			&keywords, &contentTopics, &credibility, &engQuality, &longevityScore); err != nil {
			logger.Warn("跳过无法扫描的目录行", "error", err)
			continue
		}

		p := models.InfluencerProfile{
			ChannelInfo:       nullToString(channelInfo),
			Rank:              nullToFlex(rank),
			InfluenceScore:    nullToFlex(influence),
			Posts:             nullToFlex(posts),
			Followers:         nullToFlex(followers),
			AvgLikes:          nullToFlex(avgLikes),
			EngRate:           nullToFlex(engRate),
			Country:           nullToString(country),
			Category:          nullToString(category),
			Description:       nullToString(description),
			Keywords:          nullToString(keywords),
			ContentTopics:     nullToString(contentTopics),
			CredibilityScore:  nullToFlex(credibility),
			EngagementQuality: nullToFlex(engQuality),
			LongevityScore:    nullToFlex(longevityScore),
		}
		if p.ChannelInfo == "" {
			continue
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return profiles, nil
}
