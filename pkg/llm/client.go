package llm

const promptVersion = "v1"

const systemPrompt = `You are a research analyst screening news articles for a research operations team.
Given an article headline and summary, score how relevant the article is to ongoing research monitoring.

Rules:
1. Score 0-100, where 100 means directly relevant primary research news and 0 means unrelated noise.
2. Judge only from the provided text; do not guess at content behind the link.
3. Press releases restating known results score low. New findings, datasets, trials and regulatory decisions score high.

Output as JSON only, no other text:
{
  "relevance_score": 0-100,
  "rationale": "one sentence"
}`

type ScoreInput struct {
	Title   string
	Summary string
}

type ScoreResult struct {
	RelevanceScore int
	Rationale      string
	PromptVersion  string
	ModelUsed      string
}

type Scorer interface {
	Score(input ScoreInput) (*ScoreResult, error)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
