// Package web is the presentation layer: a gin server exposing the
// recommendation engine as a JSON API and a single HTML page.
package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sanamulla68/Sentiment-Enhanced-Movie-Recommendation-System/internal/sentiment"
	"github.com/sanamulla68/Sentiment-Enhanced-Movie-Recommendation-System/recommender"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// sampleMoods feed the "surprise me" button on the page.
var sampleMoods = []string{
	"I'm feeling really happy and want something adventurous!",
	"Feeling a bit down and need something uplifting.",
	"I'm anxious and want a cozy comfort movie.",
	"Feeling nostalgic, maybe something heartwarming?",
	"I'm sad and need a cheerful comedy.",
	"Feeling angry and want something calming or fun.",
	"I want a thriller with twists.",
}

// Server wires the engine, the sentiment classifier and the templates.
type Server struct {
	engine     *recommender.Service
	analyzer   sentiment.Analyzer
	posterBase string
	logger     zerolog.Logger
}

// New constructs the server.
func New(engine *recommender.Service, analyzer sentiment.Analyzer, posterBase string, logger zerolog.Logger) *Server {
	return &Server{
		engine:     engine,
		analyzer:   analyzer,
		posterBase: posterBase,
		logger:     logger,
	}
}

// Router assembles the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())
	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.tmpl")))

	router.GET("/", s.index)
	router.POST("/", s.recommendPage)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", s.health)
		v1.GET("/genres", s.genres)
		v1.POST("/recommend", s.recommendJSON)
	}
	return router
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Msg("request")
	}
}

// classify runs the sentiment analyzer; any failure degrades to neutral so
// the recommendation itself never fails on classifier trouble.
func (s *Server) classify(ctx context.Context, text string) sentiment.Result {
	res, err := s.analyzer.Classify(ctx, text)
	if err != nil {
		s.logger.Warn().Err(err).Msg("sentiment classification failed, falling back to neutral")
		return sentiment.Neutral
	}
	return res
}

// posterURL renders a poster identifier as a full image URL; an empty
// identifier yields an empty URL, which the views present as an explicit
// "no poster" state rather than a broken link.
func (s *Server) posterURL(posterPath string) string {
	if posterPath == "" {
		return ""
	}
	return s.posterBase + posterPath
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "catalogSize": s.engine.CatalogSize()})
}

func (s *Server) genres(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"genres": s.engine.Genres()})
}
