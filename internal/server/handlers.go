package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/optim"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateRequest describes a network to build.
type CreateRequest struct {
	Shape            []int    `json:"shape" binding:"required"`
	Activation       string   `json:"activation"`
	OutputActivation string   `json:"outputActivation"`
	Regularization   string   `json:"regularization"`
	Seed             *uint64  `json:"seed"`
	Bias             *float64 `json:"bias"`
	LegacyDerivative bool     `json:"legacyDerivative"`
}

// Config converts the request into a network configuration. Empty names
// keep the defaults of nn.DefaultConfig.
func (r CreateRequest) Config() (nn.Config, error) {
	cfg := nn.DefaultConfig(r.Shape...)
	cfg.LegacyDerivative = r.LegacyDerivative

	var err error
	if r.Activation != "" {
		if cfg.Activation, err = nn.ParseActivation(r.Activation); err != nil {
			return cfg, err
		}
	}
	if r.OutputActivation != "" {
		if cfg.OutputActivation, err = nn.ParseActivation(r.OutputActivation); err != nil {
			return cfg, err
		}
	}
	if cfg.Regularization, err = nn.ParseRegularization(r.Regularization); err != nil {
		return cfg, err
	}
	if r.Seed != nil {
		cfg.Init = nn.NewUniformInit(*r.Seed)
	}
	if r.Bias != nil {
		cfg.Bias = *r.Bias
		cfg.ZeroBias = *r.Bias == 0
	}
	return cfg, nil
}

// ForwardRequest carries one input vector.
type ForwardRequest struct {
	Inputs []float64 `json:"inputs" binding:"required"`
}

// BackwardRequest carries the target of the last forward pass.
type BackwardRequest struct {
	Target        float64 `json:"target"`
	ErrorFunction string  `json:"errorFunction"`
}

// StepRequest configures one SGD update.
type StepRequest struct {
	LearningRate       float64 `json:"learningRate"`
	RegularizationRate float64 `json:"regularizationRate"`
}

func abort(c *gin.Context, code int, err error) {
	c.AbortWithStatusJSON(code, gin.H{"error": err.Error()})
}

// withNetwork resolves the :id parameter and runs fn on that network.
func (s *Server) withNetwork(c *gin.Context, fn func(*nn.Network) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	if err := s.registry.With(id, fn); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			abort(c, http.StatusNotFound, err)
		default:
			abort(c, http.StatusBadRequest, err)
		}
	}
}

func (s *Server) createNetwork(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	cfg, err := req.Config()
	if err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	if err := s.checkSize(cfg.Shape); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	net, err := nn.New(cfg)
	if err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}

	id := s.registry.Add(net)
	c.JSON(http.StatusCreated, gin.H{
		"id":    id.String(),
		"nodes": net.NumNodes(),
		"links": net.NumLinks(),
	})
}

// checkSize rejects shapes beyond the configured limits. Each layer is
// checked before it is multiplied, so the running totals cannot overflow.
func (s *Server) checkSize(shape []int) error {
	nodes, links := 0, 0
	for i, size := range shape {
		if size > s.config.MaxNodes {
			return fmt.Errorf("%w: layer %d has %d nodes, limit %d", ErrTooLarge, i, size, s.config.MaxNodes)
		}
		nodes += size
		if i > 0 {
			links += shape[i-1] * size
		}
		if nodes > s.config.MaxNodes {
			return fmt.Errorf("%w: more than %d nodes", ErrTooLarge, s.config.MaxNodes)
		}
		if links > s.config.MaxLinks {
			return fmt.Errorf("%w: more than %d links", ErrTooLarge, s.config.MaxLinks)
		}
	}
	return nil
}

func (s *Server) getNetwork(c *gin.Context) {
	s.withNetwork(c, func(net *nn.Network) error {
		c.JSON(http.StatusOK, net.Snapshot())
		return nil
	})
}

func (s *Server) deleteNetwork(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	if err := s.registry.Remove(id); err != nil {
		abort(c, http.StatusNotFound, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) forward(c *gin.Context) {
	var req ForwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	s.withNetwork(c, func(net *nn.Network) error {
		out, err := net.Forward(req.Inputs)
		if err != nil {
			return err
		}
		c.JSON(http.StatusOK, gin.H{"output": nn.Number(out)})
		return nil
	})
}

func (s *Server) backward(c *gin.Context) {
	var req BackwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	errFn := nn.MeanSquaredError
	if req.ErrorFunction != "" {
		var err error
		if errFn, err = nn.ParseErrorFunction(req.ErrorFunction); err != nil {
			abort(c, http.StatusBadRequest, err)
			return
		}
	}
	s.withNetwork(c, func(net *nn.Network) error {
		net.BackPropagation(req.Target, errFn)
		out := net.OutputNode()
		c.JSON(http.StatusOK, gin.H{
			"loss":             nn.Number(errFn.Error(out.Output, req.Target)),
			"outputDerivative": nn.Number(out.OutputDerivative),
			"gradientNorm":     nn.Number(net.GradientNorm()),
		})
		return nil
	})
}

func (s *Server) step(c *gin.Context) {
	var req StepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	sgd := optim.NewSGD(optim.SGDConfig{
		LearningRate:       req.LearningRate,
		RegularizationRate: req.RegularizationRate,
	})
	s.withNetwork(c, func(net *nn.Network) error {
		c.JSON(http.StatusOK, gin.H{
			"pruned":       sgd.Step(net),
			"learningRate": sgd.LearningRate(),
		})
		return nil
	})
}
