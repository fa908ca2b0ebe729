// Package newsapitest is an in-memory stand-in for the backend
// interactions and comments API, used to test anything that talks to the
// real one.
package newsapitest

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/newshub-app/interactions/internal/domain"
)

type user struct {
	id       string
	username string
}

type Server struct {
	mu sync.Mutex

	tokens map[string]user

	// likes and favorites are keyed by user ID, then article ID;
	// comments by article ID.
	likes     map[string]map[string]bool
	favorites map[string]map[string]domain.Favorite
	comments  map[string][]domain.Comment

	failures int
	requests []string
}

func NewServer() *Server {
	return &Server{
		tokens:    make(map[string]user),
		likes:     make(map[string]map[string]bool),
		favorites: make(map[string]map[string]domain.Favorite),
		comments:  make(map[string][]domain.Comment),
	}
}

// AddUser registers a token the server will accept as a bearer credential.
func (s *Server) AddUser(token, userID, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = user{id: userID, username: username}
}

// FailNext makes the next n requests fail with a 500 before any handling.
func (s *Server) FailNext(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = n
}

// Requests returns "METHOD path" for every request seen so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *Server) SeedLike(userID, articleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.likes[userID] == nil {
		s.likes[userID] = make(map[string]bool)
	}
	s.likes[userID][articleID] = true
}

func (s *Server) SeedFavorite(userID, articleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.favorites[userID] == nil {
		s.favorites[userID] = make(map[string]domain.Favorite)
	}
	s.favorites[userID][articleID] = domain.Favorite{
		ID:         uuid.NewString(),
		ArticleID:  articleID,
		FolderName: "default",
		CreatedAt:  time.Now().UTC(),
	}
}

func (s *Server) SeedComment(c domain.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments[c.ArticleID] = append(s.comments[c.ArticleID], c)
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.bookkeeping)

	r.HandleFunc("/api/v1/interactions/interactions", s.createInteraction).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/interactions/users/interactions", s.listUserInteractions).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/interactions/favorites", s.addFavorite).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/interactions/favorites", s.listFavorites).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/interactions/favorites/{article_id}", s.removeFavorite).Methods(http.MethodDelete)
	r.HandleFunc("/api/v1/interactions/articles/{article_id}/interactions", s.articleStats).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/comments", s.createComment).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/comments/{comment_id}", s.deleteComment).Methods(http.MethodDelete)
	r.HandleFunc("/api/v1/comments/article/{article_id}", s.listComments).Methods(http.MethodGet)

	return r
}

func (s *Server) bookkeeping(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Method+" "+r.URL.Path)
		fail := s.failures > 0
		if fail {
			s.failures--
		}
		s.mu.Unlock()

		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) caller(r *http.Request) (user, bool) {
	header := r.Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return user{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.tokens[token]
	return u, ok
}

func (s *Server) requireCaller(w http.ResponseWriter, r *http.Request) (user, bool) {
	u, ok := s.caller(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
	}
	return u, ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) createInteraction(w http.ResponseWriter, r *http.Request) {
	u, ok := s.requireCaller(w, r)
	if !ok {
		return
	}

	var body struct {
		ArticleID       string `json:"article_id"`
		InteractionType string `json:"interaction_type"`
		IsActive        bool   `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ArticleID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if s.likes[u.id] == nil {
		s.likes[u.id] = make(map[string]bool)
	}
	s.likes[u.id][body.ArticleID] = body.IsActive
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "interaction recorded"})
}

func (s *Server) listUserInteractions(w http.ResponseWriter, r *http.Request) {
	u, ok := s.requireCaller(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	var out []domain.UserInteraction
	for articleID, active := range s.likes[u.id] {
		out = append(out, domain.UserInteraction{
			ID:              uuid.NewString(),
			ArticleID:       articleID,
			InteractionType: string(domain.InteractionKindLike),
			IsActive:        active,
			UpdatedAt:       time.Now().UTC(),
		})
	}
	s.mu.Unlock()

	if out == nil {
		out = []domain.UserInteraction{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) addFavorite(w http.ResponseWriter, r *http.Request) {
	u, ok := s.requireCaller(w, r)
	if !ok {
		return
	}

	var body struct {
		ArticleID  string `json:"article_id"`
		FolderName string `json:"folder_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ArticleID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if body.FolderName == "" {
		body.FolderName = "default"
	}

	s.mu.Lock()
	if s.favorites[u.id] == nil {
		s.favorites[u.id] = make(map[string]domain.Favorite)
	}
	fav, exists := s.favorites[u.id][body.ArticleID]
	if !exists {
		fav = domain.Favorite{
			ID:         uuid.NewString(),
			ArticleID:  body.ArticleID,
			FolderName: body.FolderName,
			CreatedAt:  time.Now().UTC(),
		}
		s.favorites[u.id][body.ArticleID] = fav
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, fav)
}

func (s *Server) removeFavorite(w http.ResponseWriter, r *http.Request) {
	u, ok := s.requireCaller(w, r)
	if !ok {
		return
	}

	articleID := mux.Vars(r)["article_id"]

	s.mu.Lock()
	_, exists := s.favorites[u.id][articleID]
	if exists {
		delete(s.favorites[u.id], articleID)
	}
	s.mu.Unlock()

	if !exists {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) listFavorites(w http.ResponseWriter, r *http.Request) {
	u, ok := s.requireCaller(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	out := make([]domain.Favorite, 0, len(s.favorites[u.id]))
	for _, fav := range s.favorites[u.id] {
		out = append(out, fav)
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) articleStats(w http.ResponseWriter, r *http.Request) {
	articleID := mux.Vars(r)["article_id"]

	s.mu.Lock()
	stats := domain.ArticleStats{ArticleID: articleID}
	for _, articles := range s.likes {
		if articles[articleID] {
			stats.LikeCount++
		}
	}
	for _, articles := range s.favorites {
		if _, ok := articles[articleID]; ok {
			stats.FavoriteCount++
		}
	}
	stats.CommentCount = len(s.comments[articleID])
	s.mu.Unlock()

	// Personalized flags only when the caller presented a valid token.
	if u, ok := s.caller(r); ok {
		s.mu.Lock()
		summary := domain.InteractionSummary{
			Liked: s.likes[u.id][articleID],
		}
		_, summary.Favorited = s.favorites[u.id][articleID]
		for _, c := range s.comments[articleID] {
			if c.UserID == u.id {
				summary.Commented = true
				break
			}
		}
		s.mu.Unlock()
		stats.UserInteraction = &summary
	}

	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) createComment(w http.ResponseWriter, r *http.Request) {
	u, ok := s.requireCaller(w, r)
	if !ok {
		return
	}

	var body struct {
		ArticleID string `json:"article_id"`
		Content   string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ArticleID == "" || body.Content == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	comment := domain.Comment{
		ID:        uuid.NewString(),
		ArticleID: body.ArticleID,
		UserID:    u.id,
		Username:  u.username,
		Content:   body.Content,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.comments[body.ArticleID] = append(s.comments[body.ArticleID], comment)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, comment)
}

func (s *Server) deleteComment(w http.ResponseWriter, r *http.Request) {
	u, ok := s.requireCaller(w, r)
	if !ok {
		return
	}

	commentID := mux.Vars(r)["comment_id"]

	s.mu.Lock()
	defer s.mu.Unlock()
	for articleID, comments := range s.comments {
		for i, c := range comments {
			if c.ID != commentID {
				continue
			}
			if c.UserID != u.id {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			s.comments[articleID] = append(comments[:i:i], comments[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (s *Server) listComments(w http.ResponseWriter, r *http.Request) {
	articleID := mux.Vars(r)["article_id"]

	s.mu.Lock()
	out := append([]domain.Comment(nil), s.comments[articleID]...)
	s.mu.Unlock()

	if out == nil {
		out = []domain.Comment{}
	}
	writeJSON(w, http.StatusOK, out)
}
