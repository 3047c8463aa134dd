package models

import "time"

// Game is a purchasable catalog item. The API is pt-BR, so wire names keep
// the server's field naming.
type Game struct {
	ID          int     `json:"id"`
	Name        string  `json:"nome"`
	Price       float64 `json:"preco"`
	Year        int     `json:"ano"`
	Description string  `json:"descricao"`
	CategoryID  int     `json:"fkCategoria"`
	CompanyID   int     `json:"fkEmpresa"`
}

// PublicGame is the unauthenticated catalog shape: the category comes
// pre-resolved as a display name instead of a foreign key.
type PublicGame struct {
	ID       int     `json:"id"`
	Name     string  `json:"nome"`
	Price    float64 `json:"preco"`
	Year     int     `json:"ano"`
	Category string  `json:"categoria"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"nome"`
}

type Company struct {
	ID   int    `json:"id"`
	Name string `json:"nome"`
}

type Profile struct {
	ID   int    `json:"id"`
	Name string `json:"nome"`
}

type User struct {
	ID        int    `json:"id"`
	Name      string `json:"nome"`
	Email     string `json:"email"`
	BirthDate string `json:"dataNascimento,omitempty"`
	ProfileID int    `json:"fkPerfil"`
}

// Cart is the active cart. Lines carry only the game reference; name and
// price are resolved by joining against the catalog at render time.
type Cart struct {
	ID    int        `json:"id"`
	Items []CartItem `json:"itens"`
}

type CartItem struct {
	ID     int `json:"id"`
	GameID int `json:"fkJogo"`
}

// WishlistItem mirrors a cart line: a bare game reference.
type WishlistItem struct {
	ID     int `json:"id"`
	GameID int `json:"fkJogo"`
}

// LibraryEntry is an owned game plus the activation key issued at checkout.
type LibraryEntry struct {
	Game          Game   `json:"jogo"`
	ActivationKey string `json:"chaveAtivacao"`
}

// Sale is a read-only order record produced server-side at checkout.
type Sale struct {
	ID        int       `json:"id"`
	Date      time.Time `json:"data"`
	ItemCount int       `json:"quantidade_itens"`
	Total     float64   `json:"valor_total"`
}

type Review struct {
	ID      int    `json:"id"`
	GameID  int    `json:"fkJogo"`
	Rating  int    `json:"nota"`
	Comment string `json:"comentario"`
	Author  string `json:"autor,omitempty"`
}

// ReviewSummary is the aggregate returned by the review-average endpoint.
type ReviewSummary struct {
	Average float64  `json:"media"`
	Count   int      `json:"totalAvaliacoes"`
	Reviews []Review `json:"avaliacoes"`
}

// TopSeller is one row of the best-sellers report.
type TopSeller struct {
	Name    string `json:"nome"`
	Company string `json:"empresa"`
	Sold    int    `json:"total"`
}

// Profile names the server uses for the role flag.
const (
	ProfileAdmin = "Administrador"
	ProfileUser  = "Cliente"
)

// Key returns the lookup identifier. Category, Company and Profile all act
// as reference entities for id->name translation.
func (c Category) Key() int { return c.ID }

func (c Category) Label() string { return c.Name }

func (c Company) Key() int { return c.ID }

func (c Company) Label() string { return c.Name }

func (p Profile) Key() int { return p.ID }

func (p Profile) Label() string { return p.Name }
