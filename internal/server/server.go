package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Shivagad/SDLC-Automation/internal/config"
	"github.com/Shivagad/SDLC-Automation/internal/core"
	"github.com/Shivagad/SDLC-Automation/internal/core/model"
	"github.com/Shivagad/SDLC-Automation/internal/llm"
)

type Server struct {
	Workflow *core.Workflow
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	cfg.ApplyEnv()

	llmClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	return &Server{
		Workflow: core.NewWorkflow(llmClient, cfg),
	}
}

func NewServerWithWorkflow(w *core.Workflow) *Server {
	return &Server{Workflow: w}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(requestID())

	r.POST("/requirements/analyze", s.AnalyzeRequirements)
	r.POST("/user-stories", s.GenerateUserStories)
	r.POST("/architecture", s.GenerateArchitecture)
	r.POST("/uml", s.GenerateUML)
	r.POST("/verify", s.VerifyDesign)
	r.GET("/diagrams/architecture", s.ArchitectureDiagram)
	r.GET("/diagrams/uml", s.UMLDiagram)
	r.GET("/export", s.Export)

	return r
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// failureStatus maps failure kinds to HTTP statuses. Model nonsense and
// missing preconditions are the caller's 4xx, not our 500.
func failureStatus(f *model.Failure) int {
	if f.Kind == model.FailureTransport {
		return http.StatusBadGateway
	}
	return http.StatusUnprocessableEntity
}

type AnalyzeRequest struct {
	RawInput string `json:"raw_input" binding:"required"`
}

func (s *Server) AnalyzeRequirements(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	requirements, fail := s.Workflow.AnalyzeRequirements(c.Request.Context(), req.RawInput)
	if fail != nil {
		c.JSON(failureStatus(fail), fail)
		return
	}
	c.JSON(http.StatusOK, requirements)
}

type StoriesRequest struct {
	Requirements *model.RequirementSet `json:"requirements"`
}

func (s *Server) GenerateUserStories(c *gin.Context) {
	var req StoriesRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
	}

	batch, fail := s.Workflow.GenerateUserStories(c.Request.Context(), req.Requirements)
	if fail != nil {
		c.JSON(failureStatus(fail), fail)
		return
	}
	c.JSON(http.StatusOK, batch)
}

type ArchitectureRequest struct {
	Requirements *model.RequirementSet `json:"requirements"`
}

func (s *Server) GenerateArchitecture(c *gin.Context) {
	var req ArchitectureRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
	}

	architecture, fail := s.Workflow.GenerateArchitectureDesign(c.Request.Context(), req.Requirements)
	if fail != nil {
		c.JSON(failureStatus(fail), fail)
		return
	}
	c.JSON(http.StatusOK, architecture)
}

type UMLRequest struct {
	Architecture *model.Architecture `json:"architecture"`
}

func (s *Server) GenerateUML(c *gin.Context) {
	var req UMLRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
	}

	uml, fail := s.Workflow.GenerateUMLClassDiagram(c.Request.Context(), req.Architecture)
	if fail != nil {
		c.JSON(failureStatus(fail), fail)
		return
	}
	c.JSON(http.StatusOK, uml)
}

type VerifyRequest struct {
	Requirements *model.RequirementSet `json:"requirements"`
}

func (s *Server) VerifyDesign(c *gin.Context) {
	var req VerifyRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
	}

	report, fail := s.Workflow.VerifyDesign(c.Request.Context(), req.Requirements)
	if fail != nil {
		c.JSON(failureStatus(fail), fail)
		return
	}
	c.JSON(http.StatusOK, report)
}

// serveDiagram returns the textual diagram, or proxies the rendered
// image when ?render=1. A render transport failure falls back to the
// text so the caller can still present something.
func (s *Server) serveDiagram(c *gin.Context, text string) {
	if c.Query("render") != "1" {
		c.String(http.StatusOK, text)
		return
	}

	image, fail := s.Workflow.RenderDiagram(c.Request.Context(), text)
	if fail != nil {
		log.Printf("Diagram render failed, falling back to text: %s", fail.Reason)
		c.JSON(http.StatusOK, gin.H{"diagram": text, "render_error": fail})
		return
	}
	c.Data(http.StatusOK, "image/png", image)
}

func (s *Server) ArchitectureDiagram(c *gin.Context) {
	text, fail := s.Workflow.ArchitectureDiagram()
	if fail != nil {
		c.JSON(failureStatus(fail), fail)
		return
	}
	s.serveDiagram(c, text)
}

func (s *Server) UMLDiagram(c *gin.Context) {
	text, fail := s.Workflow.UMLClassDiagram()
	if fail != nil {
		c.JSON(failureStatus(fail), fail)
		return
	}
	s.serveDiagram(c, text)
}

func (s *Server) Export(c *gin.Context) {
	pageStr := c.Query("page")
	if pageStr == "" {
		c.String(http.StatusOK, s.Workflow.Export())
		return
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
		return
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	c.JSON(http.StatusOK, s.Workflow.ExportPage(page, pageSize))
}
