package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSample() Sample {
	return Sample{
		Prompt: []Message{
			{Role: RoleSystem, Content: "Answer as a bank supervision analyst."},
			{Role: RoleUser, Content: "What is effective challenge?"},
		},
		Answer: "Critical analysis by objective, informed parties.",
		Info: SampleInfo{
			RequiredCitations: []string{"[SR11-7]"},
			Difficulty:        DifficultyEasy,
		},
	}
}

func TestCompletionLastContent(t *testing.T) {
	t.Run("empty completion yields empty string", func(t *testing.T) {
		assert.Empty(t, Completion{}.LastContent())
		assert.Empty(t, Completion(nil).LastContent())
	})

	t.Run("final message content wins", func(t *testing.T) {
		c := Completion{
			{Role: RoleAssistant, Content: "draft"},
			{Role: RoleAssistant, Content: "final"},
		}
		assert.Equal(t, "final", c.LastContent())
	})
}

func TestSampleValidate(t *testing.T) {
	t.Run("valid sample passes", func(t *testing.T) {
		s := validSample()
		assert.NoError(t, s.Validate())
	})

	t.Run("empty prompt fails", func(t *testing.T) {
		s := validSample()
		s.Prompt = nil
		assert.Error(t, s.Validate())
	})

	t.Run("missing answer fails", func(t *testing.T) {
		s := validSample()
		s.Answer = ""
		assert.Error(t, s.Validate())
	})

	t.Run("unknown role fails", func(t *testing.T) {
		s := validSample()
		s.Prompt[0].Role = "narrator"
		assert.Error(t, s.Validate())
	})

	t.Run("unknown difficulty fails", func(t *testing.T) {
		s := validSample()
		s.Info.Difficulty = "brutal"
		assert.Error(t, s.Validate())
	})

	t.Run("empty difficulty is allowed", func(t *testing.T) {
		s := validSample()
		s.Info.Difficulty = ""
		assert.NoError(t, s.Validate())
	})
}

func TestSampleQuestion(t *testing.T) {
	t.Run("last user message wins", func(t *testing.T) {
		s := validSample()
		s.Prompt = append(s.Prompt, Message{Role: RoleUser, Content: "follow-up"})
		assert.Equal(t, "follow-up", s.Question())
	})

	t.Run("no user message yields empty string", func(t *testing.T) {
		s := Sample{Prompt: []Message{{Role: RoleSystem, Content: "instructions"}}}
		assert.Empty(t, s.Question())
	})
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"medium", DifficultyMedium, false},
		{" Easy ", DifficultyEasy, false},
		{"hard", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownDifficulty, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}
