package pool

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CommunityOracle/internal/domain/schema"
)

func TestGenericPoolStable(t *testing.T) {
	first := Generic()
	require.Len(t, first, 20)
	for _, phrase := range first {
		assert.NotEmpty(t, strings.TrimSpace(phrase))
	}

	second := Generic()
	assert.Equal(t, first, second)

	// callers must not be able to corrupt the canonical pool
	second[0] = "mutated"
	assert.Equal(t, first, Generic())
}

func TestBuildWithoutMetadata(t *testing.T) {
	assert.Equal(t, Generic(), Build(nil, nil))
}

func TestBuildBlankNameFallsBack(t *testing.T) {
	info := &schema.SubredditInfo{ID: "t5_abc", Name: "   "}
	assert.Equal(t, Generic(), Build(info, nil))
}

func TestBuildCommunityPool(t *testing.T) {
	info := &schema.SubredditInfo{ID: "t5_abc", Name: "golang"}
	got := Build(info, nil)

	require.Len(t, got, len(communityTemplates)+5)
	assert.Contains(t, got, "As r/golang sees it, yes.")
	assert.Equal(t, Generic()[:5], got[len(got)-5:])
	for _, phrase := range got {
		assert.NotEmpty(t, strings.TrimSpace(phrase))
	}
}

func TestBuildDeterministic(t *testing.T) {
	info := &schema.SubredditInfo{
		Name:        "golang",
		Subscribers: 250_000,
		Rules:       []schema.SubredditRule{{ShortName: "Be kind"}, {ShortName: "No spam"}},
	}
	pick := func(n int) int { return 1 }

	assert.Equal(t, Build(info, pick), Build(info, pick))
}

func TestSubscriberThresholds(t *testing.T) {
	base := len(communityTemplates) + 5

	cases := []struct {
		name        string
		subscribers int
		bonus       int
	}{
		{"zero", 0, 0},
		{"at low threshold", 1_000, 0},
		{"just above low threshold", 1_001, 1},
		{"at high threshold", 100_000, 1},
		{"just above high threshold", 100_001, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := &schema.SubredditInfo{Name: "golang", Subscribers: tc.subscribers}
			assert.Len(t, Build(info, nil), base+tc.bonus)
		})
	}
}

func TestSubscriberBonusReferencesThousands(t *testing.T) {
	info := &schema.SubredditInfo{Name: "golang", Subscribers: 123_456}
	got := Build(info, nil)

	assert.Contains(t, got, "All 123k members of r/golang agree: yes.")
	assert.Contains(t, got, "123k strong, r/golang cannot be wrong.")
}

func TestRuleBonus(t *testing.T) {
	info := &schema.SubredditInfo{
		Name: "golang",
		Rules: []schema.SubredditRule{
			{ShortName: "Be kind"},
			{ShortName: "No spam"},
			{ShortName: "Stay on topic"},
		},
	}
	got := Build(info, func(n int) int {
		require.Equal(t, 3, n)
		return 2
	})

	require.Len(t, got, len(communityTemplates)+2+5)
	assert.Contains(t, got, "Consult rule 3 of r/golang for the answer.")
	assert.Contains(t, got, "Nothing in the rules of r/golang forbids it.")
}
