package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/amcmart-api/internal/httpx"
	"github.com/MikeMC777/amcmart-api/internal/order"
)

type healthResponse struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message"`
	Timestamp   string             `json:"timestamp"`
	Database    string             `json:"database"`
	Environment string             `json:"environment"`
	Error       string             `json:"error,omitempty"`
	IntakeMode  order.Mode         `json:"intake_mode"`
	QueueDepth  int                `json:"queue_depth"`
	Worker      *order.WorkerStats `json:"worker,omitempty"`
}

// healthHandler godoc
//
//	@Summary	Liveness and store reachability
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	healthResponse
//	@Failure	503	{object}	healthResponse
//	@Router		/health [get]
func healthHandler(checker HealthChecker, intake Intake, worker WorkerStats, env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		r := checker.Check(c.Request.Context())
		res := healthResponse{
			Success:     r.Healthy(),
			Message:     "AMCMart API is running!",
			Timestamp:   r.CheckedAt.Format("2006-01-02T15:04:05.000Z07:00"),
			Database:    r.Database,
			Environment: env,
			Error:       r.Error,
			IntakeMode:  intake.Mode(),
			QueueDepth:  intake.Depth(),
		}
		if worker != nil {
			s := worker.Stats()
			res.Worker = &s
		}
		status := http.StatusOK
		if !r.Healthy() {
			res.Message = "AMCMart API is degraded"
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, res)
	}
}

// listCustomersHandler godoc
//
//	@Summary	Customers aggregated from orders
//	@Tags		customers
//	@Produce	json
//	@Success	200	{object}	httpx.Envelope{data=[]order.Customer}
//	@Router		/customers [get]
func listCustomersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.Customers(c.Request.Context())
		if err != nil {
			storeError(c, err)
			return
		}
		httpx.List(c, http.StatusOK, items)
	}
}

// dashboardStatsHandler godoc
//
//	@Summary	Dashboard aggregates
//	@Tags		dashboard
//	@Produce	json
//	@Success	200	{object}	httpx.Envelope{data=order.Stats}
//	@Router		/dashboard/stats [get]
func dashboardStatsHandler(repo order.Repository, intake Intake) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := repo.Stats(c.Request.Context())
		if err != nil {
			storeError(c, err)
			return
		}
		s.QueueDepth = intake.Depth()
		httpx.OK(c, http.StatusOK, s)
	}
}
