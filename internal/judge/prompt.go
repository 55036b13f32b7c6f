package judge

import (
	"strings"
	"text/template"
)

// gradingPrompt is the fixed grading instruction sent to the judge.
// The output contract (score first, then a one-sentence justification)
// is what the normalizer in the scoring package expects.
const gradingPrompt = `You are grading a short bank supervision answer against the provided
canonical answer and info. Score the response's factual correctness,
coverage of key points, and avoidance of unsupported claims. Grounding
sources: SR 11-7 and the OCC Model Risk Management Comptroller's Handbook.

Question:
{{.Question}}

Canonical answer:
{{.Answer}}

Model answer:
{{.Response}}

Output format:
<score in [0.0, 1.0]>
<one-sentence justification>

Deduct for statements not supported by SR 11-7/OCC MRM, missing required
structure (tags), or irrelevant citations.`

var gradingTemplate = template.Must(template.New("grading").Parse(gradingPrompt))

// promptVars feeds the grading template.
type promptVars struct {
	Question string
	Answer   string
	Response string
}

// RenderPrompt produces the grading prompt for one request. The model
// answer is the completion's final message content, markup included, so
// the judge can deduct for missing structure.
func RenderPrompt(req Request) (string, error) {
	var sb strings.Builder
	err := gradingTemplate.Execute(&sb, promptVars{
		Question: req.Question,
		Answer:   req.Answer,
		Response: req.Completion.LastContent(),
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
