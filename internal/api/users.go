package api

import (
	"context"
	"fmt"

	"github.com/Joaofg09/nextlevel-cli/internal/models"
)

// Login exchanges credentials for a bearer token. The identity itself is
// decoded from the token client-side, not returned separately.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var payload struct {
		Token string `json:"token"`
	}
	body := map[string]string{"email": email, "senha": password}
	if err := c.post(ctx, "/auth/login", body, &payload); err != nil {
		return "", err
	}
	return payload.Token, nil
}

type registration struct {
	Name      string `json:"nome"`
	Email     string `json:"email"`
	Password  string `json:"senha"`
	BirthDate string `json:"dataNascimento"`
}

func (c *Client) Register(ctx context.Context, name, email, password, birthDate string) (string, error) {
	var payload struct {
		Message string `json:"message"`
	}
	reg := registration{Name: name, Email: email, Password: password, BirthDate: birthDate}
	if err := c.post(ctx, "/auth/register", reg, &payload); err != nil {
		return "", err
	}
	return payload.Message, nil
}

func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{"currentPassword": current, "newPassword": next}
	return c.post(ctx, "/auth/change-password", body, nil)
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.get(ctx, "/usuarios", &users); err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, fmt.Sprintf("/usuarios/%d", id), &user); err != nil {
		return nil, fmt.Errorf("failed to fetch user %d: %w", id, err)
	}
	return &user, nil
}

type userUpdate struct {
	Name      string `json:"nome"`
	BirthDate string `json:"dataNascimento,omitempty"`
	ProfileID int    `json:"fkPerfil"`
}

func (c *Client) UpdateUser(ctx context.Context, id int, name, birthDate string, profileID int) error {
	upd := userUpdate{Name: name, BirthDate: birthDate, ProfileID: profileID}
	return c.put(ctx, fmt.Sprintf("/usuarios/%d", id), upd, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/usuarios/%d", id), nil, nil)
}

func (c *Client) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := c.get(ctx, "/profiles", &profiles); err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}
	return profiles, nil
}

func (c *Client) CreateProfile(ctx context.Context, name string) error {
	return c.post(ctx, "/profiles", map[string]string{"nome": name}, nil)
}

// TopSellers returns the best-sellers report. A 204 means no sales yet and
// yields an empty slice.
func (c *Client) TopSellers(ctx context.Context) ([]models.TopSeller, error) {
	var rows []models.TopSeller
	if err := c.get(ctx, "/relatorios/jogos-mais-vendidos", &rows); err != nil {
		return nil, fmt.Errorf("failed to fetch report: %w", err)
	}
	return rows, nil
}
