package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Joaofg09/nextlevel-cli/internal/forms"
)

var (
	reviewRating  int
	reviewComment string
)

var reviewCmd = &cobra.Command{
	Use:   "review <game-id>",
	Short: "Rate and review a game",
	Args:  cobra.ExactArgs(1),
	RunE:  runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	reviewCmd.Flags().IntVar(&reviewRating, "rating", 0, "Rating from 1 to 5 stars")
	reviewCmd.Flags().StringVar(&reviewComment, "comment", "", "Review text")
	_ = reviewCmd.MarkFlagRequired("rating")
	_ = reviewCmd.MarkFlagRequired("comment")
}

func runReview(cmd *cobra.Command, args []string) error {
	id, err := gameIDArg(args[0])
	if err != nil {
		return err
	}

	form := forms.ReviewForm{GameID: id, Rating: reviewRating, Comment: reviewComment}
	if err := forms.Check(form); err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	if _, err := e.session.RequireUser(); err != nil {
		return err
	}

	if err := e.client.SubmitReview(cmd.Context(), id, reviewRating, reviewComment); err != nil {
		return e.notice(err)
	}
	fmt.Printf("⭐ Review for game #%d submitted\n", id)
	return nil
}
