package web

import (
	"errors"
	"math/rand"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sanamulla68/Sentiment-Enhanced-Movie-Recommendation-System/internal/sentiment"
	"github.com/sanamulla68/Sentiment-Enhanced-Movie-Recommendation-System/recommender"
)

// movieCard is the view model for one recommended movie.
type movieCard struct {
	Title     string   `json:"title"`
	Overview  string   `json:"overview"`
	Genres    []string `json:"genres"`
	PosterURL string   `json:"posterUrl,omitempty"`
}

// recommendRequest is the JSON API request body.
type recommendRequest struct {
	Text          string   `json:"text" binding:"required"`
	IncludeGenres []string `json:"includeGenres"`
	ExcludeGenres []string `json:"excludeGenres"`
	Shuffle       bool     `json:"shuffle"`
}

// recommendResponse is the JSON API response body.
type recommendResponse struct {
	Sentiment sentiment.Result `json:"sentiment"`
	Movies    []movieCard      `json:"movies"`
}

// pageData feeds the HTML template.
type pageData struct {
	Mood          string
	Genres        []string
	IncludeGenres map[string]bool
	ExcludeGenres map[string]bool
	SampleMood    string
	Sentiment     string
	Searched      bool
	Movies        []movieCard
	Error         string
}

func (s *Server) recommendJSON(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mood text is required"})
		return
	}

	detected := s.classify(c.Request.Context(), req.Text)
	movies, err := s.engine.Recommend(recommender.Request{
		Text:          req.Text,
		Sentiment:     recommender.ParseSentiment(string(detected.Label)),
		IncludeGenres: req.IncludeGenres,
		ExcludeGenres: req.ExcludeGenres,
		Shuffle:       req.Shuffle,
	})
	if err != nil {
		if errors.Is(err, recommender.ErrEmptyMood) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "mood text is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recommendResponse{
		Sentiment: detected,
		Movies:    s.cards(movies),
	})
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html.tmpl", s.newPageData())
}

func (s *Server) recommendPage(c *gin.Context) {
	data := s.newPageData()
	data.Mood = strings.TrimSpace(c.PostForm("mood"))
	include := c.PostFormArray("include")
	exclude := c.PostFormArray("exclude")
	for _, g := range include {
		data.IncludeGenres[g] = true
	}
	for _, g := range exclude {
		data.ExcludeGenres[g] = true
	}

	if data.Mood == "" {
		data.Error = "Please describe how you're feeling first."
		c.HTML(http.StatusBadRequest, "index.html.tmpl", data)
		return
	}

	detected := s.classify(c.Request.Context(), data.Mood)
	movies, err := s.engine.Recommend(recommender.Request{
		Text:          data.Mood,
		Sentiment:     recommender.ParseSentiment(string(detected.Label)),
		IncludeGenres: include,
		ExcludeGenres: exclude,
		Shuffle:       c.PostForm("shuffle") == "1",
	})
	if err != nil {
		data.Error = "Something went wrong while finding matches."
		s.logger.Error().Err(err).Msg("recommendation failed")
		c.HTML(http.StatusInternalServerError, "index.html.tmpl", data)
		return
	}

	data.Searched = true
	data.Sentiment = string(detected.Label)
	data.Movies = s.cards(movies)
	c.HTML(http.StatusOK, "index.html.tmpl", data)
}

func (s *Server) newPageData() pageData {
	return pageData{
		Genres:        s.engine.Genres(),
		IncludeGenres: make(map[string]bool),
		ExcludeGenres: make(map[string]bool),
		SampleMood:    sampleMoods[rand.Intn(len(sampleMoods))],
	}
}

func (s *Server) cards(movies []recommender.Movie) []movieCard {
	cards := make([]movieCard, len(movies))
	for i, m := range movies {
		cards[i] = movieCard{
			Title:     m.Title,
			Overview:  m.Overview,
			Genres:    m.Genres,
			PosterURL: s.posterURL(m.PosterPath),
		}
	}
	return cards
}
