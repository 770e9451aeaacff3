package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Generator turns domain requests into prompts and the model's JSON replies
// back into typed records. Replies are untrusted: any parse or shape failure
// is returned as-is, no repair pass.
type Generator struct {
	client CompletionClient
}

func NewGenerator(client CompletionClient) *Generator {
	return &Generator{client: client}
}

// GeneratedConcept mirrors one concept object in the module reply.
// OrderIndex is a pointer so a missing field can fall back to array position.
type GeneratedConcept struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Difficulty string `json:"difficulty"`
	OrderIndex *int   `json:"order_index"`
}

// GeneratedModule is the reply shape for a topic's learning module.
type GeneratedModule struct {
	TopicName   string             `json:"topicName"`
	Category    string             `json:"category"`
	Description string             `json:"description"`
	Concepts    []GeneratedConcept `json:"concepts"`
}

const conceptPromptTemplate = `You are an expert educator. Generate a comprehensive learning module for the topic: "%s".

Create exactly 5 concept sections that progressively teach this topic from basics to advanced.

Return a JSON object with this exact structure:
{
  "topicName": "the topic name",
  "category": "one of: Computer Science, Mathematics, AI/ML, Software Engineering, Data Science, Other",
  "description": "brief description of the topic",
  "concepts": [
    {
      "title": "concept title",
      "content": "detailed explanation (2-3 paragraphs with examples, use markdown formatting)",
      "difficulty": "beginner|intermediate|advanced",
      "order_index": 0
    }
  ]
}

Make the content engaging, practical, and include real-world examples. Use code examples where relevant (in markdown code blocks).`

// GenerateConceptModule asks the model for a full learning module on a topic.
func (g *Generator) GenerateConceptModule(ctx context.Context, topic string) (*GeneratedModule, error) {
	prompt := fmt.Sprintf(conceptPromptTemplate, topic)

	response, err := g.client.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var module GeneratedModule
	if err := json.Unmarshal([]byte(response), &module); err != nil {
		return nil, fmt.Errorf("failed to parse concept module reply: %w", err)
	}
	if module.TopicName == "" || len(module.Concepts) == 0 {
		return nil, fmt.Errorf("concept module reply is missing topic or concepts")
	}
	return &module, nil
}

// GeneratedProblem mirrors one problem object in the problems reply.
type GeneratedProblem struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Hint          string   `json:"hint"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
}

const problemPromptTemplate = `You are an expert educator creating practice problems for the topic: "%s".

Generate exactly %d multiple-choice questions at %s difficulty level.

Return a JSON object with this exact structure:
{
  "problems": [
    {
      "question": "the question text",
      "options": ["option A", "option B", "option C", "option D"],
      "correct_answer": 0,
      "hint": "a helpful hint without giving away the answer",
      "explanation": "detailed explanation of why the correct answer is correct",
      "difficulty": "%s"
    }
  ]
}

Rules:
- Each question should have exactly 4 options
- correct_answer is the 0-indexed position of the correct option
- Questions should test understanding, not just memorization
- Include a mix of conceptual and practical questions
- Hints should guide thinking without revealing the answer`

// GenerateProblems asks the model for count multiple-choice problems and
// rejects any reply that delivers a different number of problems or breaks
// the 4-option / 0..3 answer contract.
func (g *Generator) GenerateProblems(ctx context.Context, topic, difficulty string, count int) ([]GeneratedProblem, error) {
	prompt := fmt.Sprintf(problemPromptTemplate, topic, count, difficulty, difficulty)

	response, err := g.client.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Problems []GeneratedProblem `json:"problems"`
	}
	if err := json.Unmarshal([]byte(response), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse problems reply: %w", err)
	}
	if len(parsed.Problems) != count {
		return nil, fmt.Errorf("problems reply contains %d problems, want %d", len(parsed.Problems), count)
	}

	for i, p := range parsed.Problems {
		if len(p.Options) != 4 {
			return nil, fmt.Errorf("problem %d has %d options, want 4", i, len(p.Options))
		}
		if p.CorrectAnswer < 0 || p.CorrectAnswer > 3 {
			return nil, fmt.Errorf("problem %d has correct_answer %d out of range", i, p.CorrectAnswer)
		}
	}
	return parsed.Problems, nil
}

// SessionStats summarizes one finished learning session for the reflection prompt.
type SessionStats struct {
	Topic             string
	ConceptsCompleted int
	ProblemsSolved    int
	ProblemsCorrect   int
	TimeSpent         string
}

// Reflection is the coach's reply for a finished session. Not persisted.
type Reflection struct {
	Summary       string   `json:"summary"`
	Strengths     []string `json:"strengths"`
	Improvements  []string `json:"improvements"`
	NextSteps     []string `json:"nextSteps"`
	Encouragement string   `json:"encouragement"`
	XPEarned      int      `json:"xpEarned"`
	Badges        []string `json:"badges"`
}

const reflectionPromptTemplate = `You are an encouraging learning coach. Generate a personalized reflection for a student who just completed a learning session.

Session details:
- Topic: %s
- Concepts completed: %d
- Problems solved: %d
- Problems correct: %d
- Accuracy: %d%%
- Time spent: %s

Generate a JSON response with this structure:
{
  "summary": "A 2-3 sentence summary of their performance",
  "strengths": ["strength 1", "strength 2"],
  "improvements": ["area to improve 1", "area to improve 2"],
  "nextSteps": ["recommended next step 1", "recommended next step 2"],
  "encouragement": "An encouraging message (1-2 sentences)",
  "xpEarned": number (calculate based on: 10 per concept, 20 per correct problem, bonus for high accuracy),
  "badges": ["badge name if earned"]
}

Be encouraging but honest. If accuracy is low, focus on growth mindset.`

// GenerateReflection asks the coach persona for a session reflection.
func (g *Generator) GenerateReflection(ctx context.Context, stats SessionStats) (*Reflection, error) {
	accuracy := 0
	if stats.ProblemsSolved > 0 {
		accuracy = int(float64(stats.ProblemsCorrect)/float64(stats.ProblemsSolved)*100 + 0.5)
	}

	timeSpent := stats.TimeSpent
	if timeSpent == "" {
		timeSpent = "unknown"
	}

	prompt := fmt.Sprintf(reflectionPromptTemplate,
		stats.Topic, stats.ConceptsCompleted, stats.ProblemsSolved, stats.ProblemsCorrect, accuracy, timeSpent)

	response, err := g.client.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var reflection Reflection
	if err := json.Unmarshal([]byte(response), &reflection); err != nil {
		return nil, fmt.Errorf("failed to parse reflection reply: %w", err)
	}
	return &reflection, nil
}
