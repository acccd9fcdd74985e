package server

import (
	"context"
	"time"

	_ "github.com/go-kratos/kratos/v2/encoding/json"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/career_advisor/app/advisor/internal/conf"
	"github.com/iWorld-y/career_advisor/app/advisor/internal/service"
)

const (
	OperationFilterColleges = "/advisor.v1.Advisor/FilterColleges"
	OperationSuggestPath    = "/advisor.v1.Advisor/SuggestPath"
	OperationFilterSchemes  = "/advisor.v1.Advisor/FilterSchemes"
	OperationHealth         = "/advisor.v1.Advisor/Health"
)

func NewHTTPServer(c *conf.Server, s *service.AdvisorService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
		),
	}
	if c != nil && c.Http != nil {
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		if c.Http.Timeout != "" {
			if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
				opts = append(opts, http.Timeout(d))
			}
		}
	}

	srv := http.NewServer(opts...)
	RegisterAdvisorHTTPServer(srv, s)
	return srv
}

// RegisterAdvisorHTTPServer 注册全部路由
func RegisterAdvisorHTTPServer(s *http.Server, srv *service.AdvisorService) {
	r := s.Route("/")
	r.POST("/filter-colleges", _Advisor_FilterColleges0_HTTP_Handler(srv))
	r.POST("/suggest-path", _Advisor_SuggestPath0_HTTP_Handler(srv))
	r.POST("/filter-schemes", _Advisor_FilterSchemes0_HTTP_Handler(srv))
	r.GET("/healthz", _Advisor_Health0_HTTP_Handler(srv))
}

func _Advisor_FilterColleges0_HTTP_Handler(srv *service.AdvisorService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in service.FilterCollegesReq
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationFilterColleges)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.FilterColleges(ctx, req.(*service.FilterCollegesReq))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}

func _Advisor_SuggestPath0_HTTP_Handler(srv *service.AdvisorService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in service.SuggestPathReq
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationSuggestPath)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.SuggestPath(ctx, req.(*service.SuggestPathReq))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}

func _Advisor_FilterSchemes0_HTTP_Handler(srv *service.AdvisorService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in service.FilterSchemesReq
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationFilterSchemes)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.FilterSchemes(ctx, req.(*service.FilterSchemesReq))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}

func _Advisor_Health0_HTTP_Handler(srv *service.AdvisorService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		http.SetOperation(ctx, OperationHealth)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Health(ctx)
		})
		out, err := h(ctx, nil)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}
