// Package apitest is an in-memory stand-in for the NextLevel marketplace API,
// used to exercise the client. It reproduces the wire shapes and status codes
// of the production server with canned data; none of the real pricing,
// inventory or key-issuance logic lives here.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Joaofg09/nextlevel-cli/internal/models"
)

const signingSecret = "apitest-secret"

// Server wraps an httptest.Server speaking the marketplace API.
type Server struct {
	*httptest.Server

	Games      []models.Game
	Categories []models.Category
	Companies  []models.Company
	Users      []models.User
	Profiles   []models.Profile
	Cart       *models.Cart
	Wishlist   []models.WishlistItem
	Sales      []models.Sale
	Reviews    map[int][]models.Review
	TopSellers []models.TopSeller
}

// NewServer starts a fixture API seeded with a small catalog that includes
// the duplicate " RPG"/"RPG" categories the derived views must collapse.
func NewServer() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		Games: []models.Game{
			{ID: 1, Name: "The Witcher 3", Price: 39.90, Year: 2015, Description: "Open-world RPG", CategoryID: 3, CompanyID: 1},
			{ID: 2, Name: "Dark Souls", Price: 29.90, Year: 2011, Description: "Action RPG", CategoryID: 14, CompanyID: 2},
			{ID: 3, Name: "Stardew Valley", Price: 14.99, Year: 2016, Description: "Farming sim", CategoryID: 5, CompanyID: 3},
		},
		Categories: []models.Category{
			{ID: 3, Name: " RPG"},
			{ID: 14, Name: "RPG"},
			{ID: 5, Name: "Simulação"},
		},
		Companies: []models.Company{
			{ID: 1, Name: "CD Projekt"},
			{ID: 2, Name: "FromSoftware"},
			{ID: 3, Name: "ConcernedApe"},
		},
		Users: []models.User{
			{ID: 1, Name: "Admin", Email: "admin@nextlevel.dev", ProfileID: 1},
			{ID: 2, Name: "Player", Email: "player@nextlevel.dev", ProfileID: 2},
		},
		Profiles: []models.Profile{
			{ID: 1, Name: models.ProfileAdmin},
			{ID: 2, Name: models.ProfileUser},
		},
		Reviews:  map[int][]models.Review{},
		Wishlist: []models.WishlistItem{},
	}

	router := gin.New()
	s.routes(router)
	s.Server = httptest.NewServer(router)
	return s
}

// BaseURL is the API root the client should be pointed at.
func (s *Server) BaseURL() string {
	return s.URL + "/api/v1"
}

// IssueToken mints a token carrying the given identity, signed the way the
// production server signs.
func (s *Server) IssueToken(id int, name, profile string) string {
	claims := jwt.MapClaims{
		"id":     id,
		"nome":   name,
		"perfil": profile,
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signingSecret))
	return token
}

func (s *Server) routes(router *gin.Engine) {
	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", s.login)
	v1.POST("/auth/register", s.register)
	v1.GET("/public/jogos", s.publicGames)

	private := v1.Group("")
	private.Use(s.requireToken)
	{
		private.POST("/auth/change-password", s.changePassword)

		private.GET("/jogos", func(c *gin.Context) { c.JSON(http.StatusOK, s.Games) })
		private.GET("/jogos/:id", s.getGame)
		private.POST("/jogos", s.createGame)
		private.PUT("/jogos/:id", s.updateGame)
		private.DELETE("/jogos/:id", s.deleteGame)

		private.GET("/categorias", func(c *gin.Context) { c.JSON(http.StatusOK, s.Categories) })
		private.GET("/empresas", func(c *gin.Context) { c.JSON(http.StatusOK, s.Companies) })
		private.POST("/empresas", s.createCompany)
		private.PUT("/empresas/:id", s.updateCompany)
		private.DELETE("/empresas/:id", s.deleteCompany)

		private.GET("/usuarios", func(c *gin.Context) { c.JSON(http.StatusOK, s.Users) })
		private.GET("/usuarios/my/games", s.library)
		private.GET("/usuarios/:id", s.getUser)
		private.PUT("/usuarios/:id", s.updateUser)
		private.DELETE("/usuarios/:id", s.deleteUser)
		private.GET("/profiles", func(c *gin.Context) { c.JSON(http.StatusOK, s.Profiles) })
		private.POST("/profiles", s.createProfile)

		private.GET("/carrinho/ativo", s.activeCart)
		private.POST("/carrinho/add", s.addToCart)
		private.DELETE("/carrinho/:gameID", s.removeFromCart)

		private.GET("/lista-desejo", func(c *gin.Context) { c.JSON(http.StatusOK, s.Wishlist) })
		private.POST("/lista-desejo", s.addToWishlist)
		private.DELETE("/lista-desejo", s.removeFromWishlist)

		private.POST("/avaliacoes", s.submitReview)
		private.GET("/avaliacoes/media/:id", s.reviewSummary)

		private.GET("/vendas", func(c *gin.Context) { c.JSON(http.StatusOK, s.Sales) })
		private.POST("/vendas/checkout", s.checkout)
		private.GET("/relatorios/jogos-mais-vendidos", s.topSellers)
	}
}

func (s *Server) requireToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
		return
	}

	token, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
		return []byte(signingSecret), nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}
	c.Next()
}

func (s *Server) login(c *gin.Context) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"senha"`
	}
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed credentials"})
		return
	}

	for _, u := range s.Users {
		if u.Email == creds.Email {
			profile := models.ProfileUser
			if u.ProfileID == 1 {
				profile = models.ProfileAdmin
			}
			c.JSON(http.StatusOK, gin.H{"token": s.IssueToken(u.ID, u.Name, profile)})
			return
		}
	}
	c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
}

func (s *Server) register(c *gin.Context) {
	var reg struct {
		Name  string `json:"nome"`
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&reg); err != nil || reg.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed registration"})
		return
	}
	for _, u := range s.Users {
		if u.Email == reg.Email {
			c.JSON(http.StatusConflict, gin.H{"message": "e-mail already registered"})
			return
		}
	}
	s.Users = append(s.Users, models.User{ID: len(s.Users) + 1, Name: reg.Name, Email: reg.Email, ProfileID: 2})
	c.JSON(http.StatusCreated, gin.H{"message": "user registered"})
}

func (s *Server) changePassword(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}

func (s *Server) publicGames(c *gin.Context) {
	categories := map[int]string{}
	for _, cat := range s.Categories {
		categories[cat.ID] = cat.Name
	}

	public := make([]models.PublicGame, 0, len(s.Games))
	for _, g := range s.Games {
		public = append(public, models.PublicGame{
			ID: g.ID, Name: g.Name, Price: g.Price, Year: g.Year,
			Category: categories[g.CategoryID],
		})
	}
	c.JSON(http.StatusOK, public)
}

func (s *Server) getGame(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	for _, g := range s.Games {
		if g.ID == id {
			c.JSON(http.StatusOK, g)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "game not found"})
}

func (s *Server) createGame(c *gin.Context) {
	var game models.Game
	if err := c.ShouldBindJSON(&game); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed game"})
		return
	}
	game.ID = len(s.Games) + 1
	s.Games = append(s.Games, game)
	c.JSON(http.StatusCreated, gin.H{"message": "game created"})
}

func (s *Server) updateGame(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var game models.Game
	if err := c.ShouldBindJSON(&game); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed game"})
		return
	}
	for i := range s.Games {
		if s.Games[i].ID == id {
			game.ID = id
			s.Games[i] = game
			c.JSON(http.StatusOK, gin.H{"message": "game updated"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "game not found"})
}

func (s *Server) deleteGame(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	for i := range s.Games {
		if s.Games[i].ID == id {
			s.Games = append(s.Games[:i], s.Games[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "game deleted"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "game not found"})
}

func (s *Server) createCompany(c *gin.Context) {
	var company models.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed company"})
		return
	}
	company.ID = len(s.Companies) + 1
	s.Companies = append(s.Companies, company)
	c.JSON(http.StatusCreated, gin.H{"message": "company created"})
}

func (s *Server) updateCompany(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var company models.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed company"})
		return
	}
	for i := range s.Companies {
		if s.Companies[i].ID == id {
			company.ID = id
			s.Companies[i] = company
			c.JSON(http.StatusOK, gin.H{"message": "company updated"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "company not found"})
}

func (s *Server) deleteCompany(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	for i := range s.Companies {
		if s.Companies[i].ID == id {
			s.Companies = append(s.Companies[:i], s.Companies[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "company deleted"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "company not found"})
}

func (s *Server) getUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	for _, u := range s.Users {
		if u.ID == id {
			c.JSON(http.StatusOK, u)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
}

func (s *Server) updateUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var upd struct {
		Name      string `json:"nome"`
		BirthDate string `json:"dataNascimento"`
		ProfileID int    `json:"fkPerfil"`
	}
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed user"})
		return
	}
	for i := range s.Users {
		if s.Users[i].ID == id {
			s.Users[i].Name = upd.Name
			s.Users[i].BirthDate = upd.BirthDate
			s.Users[i].ProfileID = upd.ProfileID
			c.JSON(http.StatusOK, gin.H{"message": "user updated"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
}

func (s *Server) deleteUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	for i := range s.Users {
		if s.Users[i].ID == id {
			s.Users = append(s.Users[:i], s.Users[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
}

func (s *Server) createProfile(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil || profile.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "profile name is required"})
		return
	}
	profile.ID = len(s.Profiles) + 1
	s.Profiles = append(s.Profiles, profile)
	c.JSON(http.StatusCreated, gin.H{"message": "profile created"})
}

func (s *Server) activeCart(c *gin.Context) {
	if s.Cart == nil || len(s.Cart.Items) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, gin.H{"carrinho": s.Cart})
}

func (s *Server) addToCart(c *gin.Context) {
	var ref struct {
		GameID int `json:"jogoId"`
	}
	if err := c.ShouldBindJSON(&ref); err != nil || ref.GameID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "game reference is required"})
		return
	}
	if s.Cart == nil {
		s.Cart = &models.Cart{ID: 1}
	}
	s.Cart.Items = append(s.Cart.Items, models.CartItem{ID: len(s.Cart.Items) + 1, GameID: ref.GameID})
	c.JSON(http.StatusCreated, gin.H{"message": "game added to cart"})
}

func (s *Server) removeFromCart(c *gin.Context) {
	gameID, _ := strconv.Atoi(c.Param("gameID"))
	if s.Cart != nil {
		for i := range s.Cart.Items {
			if s.Cart.Items[i].GameID == gameID {
				s.Cart.Items = append(s.Cart.Items[:i], s.Cart.Items[i+1:]...)
				c.JSON(http.StatusOK, gin.H{"message": "item removed"})
				return
			}
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "item not in cart"})
}

func (s *Server) addToWishlist(c *gin.Context) {
	var ref struct {
		GameID int `json:"jogoId"`
	}
	if err := c.ShouldBindJSON(&ref); err != nil || ref.GameID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "game reference is required"})
		return
	}
	s.Wishlist = append(s.Wishlist, models.WishlistItem{ID: len(s.Wishlist) + 1, GameID: ref.GameID})
	c.JSON(http.StatusCreated, gin.H{"message": "game added to wishlist"})
}

func (s *Server) removeFromWishlist(c *gin.Context) {
	var ref struct {
		GameID int `json:"jogoId"`
	}
	if err := c.ShouldBindJSON(&ref); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "game reference is required"})
		return
	}
	for i := range s.Wishlist {
		if s.Wishlist[i].GameID == ref.GameID {
			s.Wishlist = append(s.Wishlist[:i], s.Wishlist[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "item removed"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "item not in wishlist"})
}

func (s *Server) submitReview(c *gin.Context) {
	var sub struct {
		GameID  int    `json:"jogoId"`
		Rating  int    `json:"nota"`
		Comment string `json:"comentario"`
	}
	if err := c.ShouldBindJSON(&sub); err != nil || sub.Rating < 1 || sub.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "rating must be between 1 and 5"})
		return
	}
	s.Reviews[sub.GameID] = append(s.Reviews[sub.GameID], models.Review{
		ID: len(s.Reviews[sub.GameID]) + 1, GameID: sub.GameID,
		Rating: sub.Rating, Comment: sub.Comment,
	})
	c.JSON(http.StatusCreated, gin.H{"message": "review submitted"})
}

func (s *Server) reviewSummary(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	reviews := s.Reviews[id]

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	summary := models.ReviewSummary{Count: len(reviews), Reviews: reviews}
	if len(reviews) > 0 {
		summary.Average = float64(sum) / float64(len(reviews))
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) checkout(c *gin.Context) {
	if s.Cart == nil || len(s.Cart.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "cart is empty"})
		return
	}

	games := map[int]models.Game{}
	for _, g := range s.Games {
		games[g.ID] = g
	}
	var total float64
	for _, item := range s.Cart.Items {
		total += games[item.GameID].Price
	}

	s.Sales = append(s.Sales, models.Sale{
		ID: len(s.Sales) + 1, Date: time.Now().UTC(),
		ItemCount: len(s.Cart.Items), Total: total,
	})
	s.Cart = nil
	c.JSON(http.StatusOK, gin.H{"message": "purchase completed, keys delivered to your library"})
}

func (s *Server) library(c *gin.Context) {
	// Every game becomes owned once any checkout happened; good enough for
	// exercising the client.
	entries := []models.LibraryEntry{}
	if len(s.Sales) > 0 {
		for _, g := range s.Games {
			entries = append(entries, models.LibraryEntry{Game: g, ActivationKey: "KEY-" + strconv.Itoa(g.ID)})
		}
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) topSellers(c *gin.Context) {
	if len(s.TopSellers) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, s.TopSellers)
}
