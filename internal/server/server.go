package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"estimator/internal"
	"estimator/internal/config"
	"estimator/internal/pipeline"
)

type Server struct {
	cfg     config.Config
	svc     *pipeline.EstimateService
	catalog []internal.PriceEntry
	log     *zap.Logger
}

func New(cfg config.Config, catalog []internal.PriceEntry, log *zap.Logger) *Server {
	return &Server{
		cfg:     cfg,
		svc:     pipeline.NewEstimateService(catalog),
		catalog: catalog,
		log:     log,
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = int64(s.cfg.MaxUploadMB) << 20

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/pricing", s.handlePricing)
		api.POST("/parse", s.handleParse)
	}

	return r
}

func (s *Server) handlePricing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entries": s.catalog})
}

// handleParse accepts one multipart report file, decodes it, and returns
// the priced estimate. Undecodable files come back as an empty estimate,
// not an error; only a missing or oversize upload is rejected.
func (s *Server) handleParse(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	if max := int64(s.cfg.MaxUploadMB) << 20; header.Size > max {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		s.log.Error("read upload failed", zap.String("filename", header.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read upload"})
		return
	}

	est := s.svc.EstimateFile(header.Filename, content)
	s.log.Info("parsed report",
		zap.String("filename", header.Filename),
		zap.Int("items", len(est.Items)),
		zap.Float64("overall", est.Overall),
	)
	c.JSON(http.StatusOK, est)
}
