package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validGame() GameForm {
	return GameForm{
		Name:        "The Witcher 3",
		Price:       39.90,
		Year:        2015,
		Description: "Open-world RPG",
		CategoryID:  3,
		CompanyID:   1,
	}
}

func TestGameFormValid(t *testing.T) {
	assert.NoError(t, Check(validGame()))
}

func TestGameFormRejectsFutureYear(t *testing.T) {
	form := validGame()
	form.Year = time.Now().Year() + 1

	err := Check(form)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Year")
}

func TestGameFormCurrentYearIsFine(t *testing.T) {
	form := validGame()
	form.Year = time.Now().Year()
	assert.NoError(t, Check(form))
}

func TestGameFormRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameForm)
	}{
		{"empty name", func(f *GameForm) { f.Name = "" }},
		{"empty description", func(f *GameForm) { f.Description = "" }},
		{"missing category", func(f *GameForm) { f.CategoryID = 0 }},
		{"missing company", func(f *GameForm) { f.CompanyID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validGame()
			tt.mutate(&form)
			assert.Error(t, Check(form))
		})
	}
}

func TestReviewFormRatingRange(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		form := ReviewForm{GameID: 1, Rating: rating, Comment: "fine"}
		assert.NoError(t, Check(form), "rating %d", rating)
	}

	for _, rating := range []int{0, 6, -1} {
		form := ReviewForm{GameID: 1, Rating: rating, Comment: "fine"}
		assert.Error(t, Check(form), "rating %d", rating)
	}
}

func TestCredentialsFormEmail(t *testing.T) {
	assert.NoError(t, Check(CredentialsForm{Email: "a@b.dev", Password: "secret"}))

	err := Check(CredentialsForm{Email: "not-an-email", Password: "secret"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "e-mail")
}

func TestRegistrationFormPasswordLength(t *testing.T) {
	form := RegistrationForm{Name: "Joana", Email: "j@b.dev", Password: "short", BirthDate: "01/01/1990"}
	assert.Error(t, Check(form))

	form.Password = "longenough"
	assert.NoError(t, Check(form))
}
