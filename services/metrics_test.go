package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencer_match/models"
)

func TestParseCompactNumber(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  float64
		valid bool
	}{
		{"millions suffix", "1.2M", 1_200_000, true},
		{"thousands suffix", "500K", 500_000, true},
		{"billions suffix", "1.5b", 1_500_000_000, true},
		{"lowercase suffix", "3.4m", 3_400_000, true},
		{"plain number", "4900", 4900, true},
		{"thousands separator", "3,400", 3400, true},
		{"percent keeps points", "2.3%", 2.3, true},
		{"decimal", "87.5", 87.5, true},
		{"empty", "", 0, false},
		{"garbage", "n/a", 0, false},
		{"suffix only", "M", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCompactNumber(tt.raw)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestNormalizeProfileDefaults(t *testing.T) {
	p := &models.InfluencerProfile{Username: "emptyone"}
	m := NormalizeProfile(p)

	assert.Equal(t, DefaultFollowers, m.Followers)
	assert.Equal(t, DefaultEngagementRate, m.EngagementRate)
	assert.Equal(t, DefaultQualityScore, m.Credibility)
	assert.True(t, m.IsDefaulted("followers"))
	assert.True(t, m.IsDefaulted("engagement_rate"))
	assert.True(t, m.IsDefaulted("credibility"))
}

func TestNormalizeProfileParsesRawFields(t *testing.T) {
	p := &models.InfluencerProfile{
		Username:          "fitguru",
		Followers:         "1.2M",
		EngRate:           "2.3%",
		AvgLikes:          "45.6K",
		CredibilityScore:  "7.5",
		InfluenceScore:    "82",
		EngagementQuality: "6",
		LongevityScore:    "8",
		Posts:             "1,204",
	}
	m := NormalizeProfile(p)

	require.False(t, m.IsDefaulted("followers"))
	assert.InDelta(t, 1_200_000, m.Followers, 1e-6)
	assert.InDelta(t, 2.3, m.EngagementRate, 1e-9)
	assert.InDelta(t, 45_600, m.AvgLikes, 1e-6)
	assert.InDelta(t, 7.5, m.Credibility, 1e-9)
	assert.InDelta(t, 82, m.Influence, 1e-9)
	assert.InDelta(t, 1204, m.Posts, 1e-9)
	assert.Empty(t, m.Defaulted)
}

func TestNormalizeProfileRejectsNegatives(t *testing.T) {
	p := &models.InfluencerProfile{Username: "weird", Followers: "-5", EngRate: "-1"}
	m := NormalizeProfile(p)

	assert.Equal(t, DefaultFollowers, m.Followers)
	assert.Equal(t, DefaultEngagementRate, m.EngagementRate)
	assert.True(t, m.IsDefaulted("followers"))
}

func TestUnitScore(t *testing.T) {
	// 0-100量纲、0-10量纲和已归一化的值都必须落在[0,1]
	assert.InDelta(t, 0.5, unitScore(0.5), 1e-9)
	assert.InDelta(t, 1.0, unitScore(5), 1e-9)
	assert.InDelta(t, 0.4, unitScore(2), 1e-9)
	assert.InDelta(t, 1.0, unitScore(50), 1e-9)
	assert.InDelta(t, 1.0, unitScore(100), 1e-9)
	assert.Equal(t, 0.0, unitScore(-3))

	for v := 0.0; v <= 100; v += 0.5 {
		s := unitScore(v)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}
