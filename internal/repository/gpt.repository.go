package repository

import (
	"context"
	"fmt"
	"strings"

	"roboadvisor/internal/db/models/postgres/public/model"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	ExplainRecommendations(ctx context.Context, recs []model.OptimizationRecommendation) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const explainPrompt = `
You are helping a retail investor understand a proposed portfolio re-optimization. You will receive a list of recommended position changes, one per line, in the form:

SYMBOL action currentQuantity -> targetQuantity

Write a short plain-English summary (3-5 sentences) of what the optimization does: which positions grow, which shrink, and what the overall shift looks like (e.g. concentrating, diversifying, de-risking). Do not give financial advice, do not invent reasons that are not implied by the changes, and do not mention that you are a language model.
`

func (h gptRepositoryHandler) ExplainRecommendations(ctx context.Context, recs []model.OptimizationRecommendation) (string, error) {
	lines := []string{}
	for _, r := range recs {
		lines = append(lines, fmt.Sprintf("%s %s %s -> %s",
			r.Symbol,
			strings.ToLower(r.Action.String()),
			r.CurrentQuantity.String(),
			r.TargetQuantity.String(),
		))
	}

	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: explainPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: strings.Join(lines, "\n"),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate recommendation summary: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("gpt returned no choices")
	}

	return res.Choices[0].Message.Content, nil
}
