package api

import (
	"context"
	"fmt"

	"github.com/Joaofg09/nextlevel-cli/internal/models"
)

// ReviewSummary returns the rating average plus the reviews for one game. A
// game with no reviews comes back with a zero average and an empty list.
func (c *Client) ReviewSummary(ctx context.Context, gameID int) (*models.ReviewSummary, error) {
	var summary models.ReviewSummary
	if err := c.get(ctx, fmt.Sprintf("/avaliacoes/media/%d", gameID), &summary); err != nil {
		return nil, fmt.Errorf("failed to fetch reviews for game %d: %w", gameID, err)
	}
	return &summary, nil
}

type reviewSubmission struct {
	GameID  int    `json:"jogoId"`
	Rating  int    `json:"nota"`
	Comment string `json:"comentario"`
}

func (c *Client) SubmitReview(ctx context.Context, gameID, rating int, comment string) error {
	return c.post(ctx, "/avaliacoes", reviewSubmission{
		GameID:  gameID,
		Rating:  rating,
		Comment: comment,
	}, nil)
}
