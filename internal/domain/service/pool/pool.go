package pool

import (
	"CommunityOracle/internal/domain/schema"
	"fmt"
	"strings"
)

// Subscriber thresholds for the bonus phrases. The literal values are a
// behavioral contract, not tuned tiers.
const (
	bigSubredditMin = 100_000
	midSubredditMin = 1_000
)

// generic is the canonical answer pool, order-stable and used verbatim
// when no subreddit metadata is available.
var generic = []string{
	"It is certain.",
	"It is decidedly so.",
	"Without a doubt.",
	"Yes, definitely.",
	"You may rely on it.",
	"As I see it, yes.",
	"Most likely.",
	"Outlook good.",
	"Yes.",
	"Signs point to yes.",
	"Reply hazy, try again.",
	"Ask again later.",
	"Better not tell you now.",
	"Cannot predict now.",
	"Concentrate and ask again.",
	"Don't count on it.",
	"My reply is no.",
	"My sources say no.",
	"Outlook not so good.",
	"Very doubtful.",
}

// communityTemplates each take the subreddit name once. Order is stable.
var communityTemplates = []string{
	"The good people of r/%s say yes.",
	"r/%s has reached consensus: absolutely.",
	"The mods of r/%s have approved this outcome.",
	"A highly upvoted comment in r/%s says yes.",
	"The front page of r/%s points to yes.",
	"r/%s's collective wisdom says it is certain.",
	"The elders of r/%s whisper: without a doubt.",
	"An ancient r/%s thread foretold this: yes.",
	"The r/%s hive mind hums in agreement.",
	"Signs from r/%s point to yes.",
	"Legends of r/%s say it is decidedly so.",
	"The r/%s faithful may rely on it.",
	"As r/%s sees it, yes.",
	"The spirits of r/%s are undecided. Ask again.",
	"r/%s is still arguing about it. Try again later.",
	"The r/%s oracle is buffering. Ask again later.",
	"A deleted r/%s post held the answer. Cannot predict now.",
	"r/%s's crystal ball is cloudy. Concentrate and ask again.",
	"The mods of r/%s removed that answer. Better not tell you now.",
	"A downvoted comment in r/%s says no.",
	"r/%s has spoken: don't count on it.",
	"The r/%s consensus is a firm no.",
	"My sources deep in r/%s say no.",
	"The r/%s prophecy says: outlook not so good.",
	"The bottom of an r/%s thread says: very doubtful.",
	"r/%s's automod rejects this outcome.",
}

// Generic returns a copy of the canonical pool.
func Generic() []string {
	out := make([]string, len(generic))
	copy(out, generic)
	return out
}

// Build maps a subreddit metadata snapshot to the ordered answer pool.
// A nil snapshot (or one without a usable name) yields the generic pool.
// pick supplies the pseudo-random rule index, pick(n) in [0, n); it is
// flavor only and may be nil, in which case rule 1 is referenced.
func Build(info *schema.SubredditInfo, pick func(n int) int) []string {
	if info == nil || strings.TrimSpace(info.Name) == "" {
		return Generic()
	}
	name := info.Name

	out := make([]string, 0, len(communityTemplates)+9)
	for _, tpl := range communityTemplates {
		out = append(out, fmt.Sprintf(tpl, name))
	}

	switch {
	case info.Subscribers > bigSubredditMin:
		k := info.Subscribers / 1000
		out = append(out,
			fmt.Sprintf("All %dk members of r/%s agree: yes.", k, name),
			fmt.Sprintf("%dk strong, r/%s cannot be wrong.", k, name),
		)
	case info.Subscribers > midSubredditMin:
		out = append(out, fmt.Sprintf("Over %dk members of r/%s lean toward yes.", info.Subscribers/1000, name))
	}

	if n := len(info.Rules); n > 0 {
		idx := 1
		if pick != nil {
			idx = 1 + pick(n)
		}
		out = append(out,
			fmt.Sprintf("Consult rule %d of r/%s for the answer.", idx, name),
			fmt.Sprintf("Nothing in the rules of r/%s forbids it.", name),
		)
	}

	return append(out, generic[:5]...)
}
