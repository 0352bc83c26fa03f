package console

import (
	"context"
	"fmt"
	"time"

	"github.com/fasthttp/router"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"github.com/Artexxx/HR-Console/internal/dto"
)

type EmployeesAPI interface {
	List(ctx context.Context, skip, limit int) (dto.EmployeeList, error)
	ListByDepartment(ctx context.Context, department string, skip, limit int) (dto.EmployeeList, error)
	ListActive(ctx context.Context, skip, limit int) (dto.EmployeeList, error)
	Get(ctx context.Context, id int64) (dto.Employee, error)
	Create(ctx context.Context, in dto.EmployeeInput) (dto.Employee, error)
	Update(ctx context.Context, id int64, in dto.EmployeeInput) (dto.Employee, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (dto.Stats, error)
}

type ActivityRepository interface {
	ListEvents(ctx context.Context, limit int) ([]dto.ActivityEvent, error)
	ListDLQ(ctx context.Context, limit int) ([]dto.ActivityDLQ, error)
}

type Metrics interface {
	ObserveConsole(method string, status int)
	Handler() fasthttp.RequestHandler
}

type ServiceDeps struct {
	Port         int
	PageSize     int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	Employees EmployeesAPI
	// Activity и Metrics опциональны
	Activity ActivityRepository
	Metrics  Metrics
}

type Service struct {
	r        *router.Router
	server   *fasthttp.Server
	port     int
	pageSize int

	employees EmployeesAPI
	activity  ActivityRepository
	metrics   Metrics
	views     *renderer
}

func NewService(d ServiceDeps) *Service {
	s := &Service{
		r:         router.New(),
		port:      d.Port,
		pageSize:  d.PageSize,
		employees: d.Employees,
		activity:  d.Activity,
		metrics:   d.Metrics,
		views:     newRenderer(),
	}

	if s.pageSize <= 0 {
		s.pageSize = defaultPageSize
	}

	s.mountRoutes()

	s.server = &fasthttp.Server{
		Handler:            s.Handler(),
		Name:               "hr-console",
		ReadTimeout:        orDefault(d.ReadTimeout, 10*time.Second),
		WriteTimeout:       orDefault(d.WriteTimeout, 15*time.Second),
		MaxRequestBodySize: 1 << 20, // 1 MiB
	}

	return s
}

// Handler is the full middleware chain around the router.
func (s *Service) Handler() fasthttp.RequestHandler {
	var h fasthttp.RequestHandler = SecureHeaders(s.r.Handler)
	if s.metrics != nil {
		h = MetricsMiddleware(s.metrics)(h)
	}

	return RecoveryMiddleware(LoggingMiddleware(h))
}

func (s *Service) Start(ctx context.Context) error {
	log.Info().Int("port", s.port).Msg("Запуск веб-консоли")

	emergencyShutdown := make(chan error, 1)
	go func() {
		emergencyShutdown <- s.server.ListenAndServe(fmt.Sprintf(":%d", s.port))
	}()

	select {
	case <-ctx.Done():
		return s.server.Shutdown()
	case e := <-emergencyShutdown:
		return e
	}
}

func (s *Service) mountRoutes() {
	s.r.GET("/", s.index)

	// Employees
	s.r.GET("/employees", s.listEmployees)
	s.r.GET("/employees/new", s.newEmployee)
	s.r.POST("/employees", s.createEmployee)
	s.r.GET("/employees/{id}/edit", s.editEmployee)
	s.r.POST("/employees/{id}", s.updateEmployee)
	s.r.GET("/employees/{id}/delete", s.confirmDelete)
	s.r.POST("/employees/{id}/delete", s.deleteEmployee)

	// Dashboard & activity
	s.r.GET("/dashboard", s.dashboard)
	s.r.GET("/activity", s.activityJournal)

	// Health & metrics
	s.r.GET("/health", s.healthHandler)
	if s.metrics != nil {
		s.r.GET("/metrics", s.metrics.Handler())
	}
}

func orDefault(v, def time.Duration) time.Duration {
	if v <= 0 {
		return def
	}

	return v
}
