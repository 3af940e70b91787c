package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	defaults := Options{Temperature: 0.7, Model: "base"}

	got := Apply(defaults, WithTopP(0.9), WithModel("override"), WithSystemInstruction("persona"))

	assert.Equal(t, Options{Temperature: 0.7, TopP: 0.9, Model: "override", SystemInstruction: "persona"}, got)
	assert.Equal(t, "base", defaults.Model)
}

func TestUnavailable(t *testing.T) {
	cause := errors.New("no api key")
	p := Unavailable(cause)

	_, err := p.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
	assert.ErrorIs(t, err, cause)

	_, err = p.Generate(context.Background(), "hi")
	assert.ErrorIs(t, err, cause)
}
