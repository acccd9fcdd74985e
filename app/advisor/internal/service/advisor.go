package service

import (
	"context"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/career_advisor/app/advisor/internal/domain"
	"github.com/iWorld-y/career_advisor/app/advisor/internal/usecase"
)

// FilterCollegesReq 字段必须出现，空字符串按正常查询处理
type FilterCollegesReq struct {
	Location *string `json:"location"`
	Domain   *string `json:"domain"`
}

type SuggestPathReq struct {
	UserID string `json:"user_id"`
}

type FilterSchemesReq struct {
	Eligibility string   `json:"eligibility,omitempty"`
	Level       string   `json:"level,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type HealthReply struct {
	Status string `json:"status"`
}

// AdvisorService HTTP 接口与用例之间的适配层
type AdvisorService struct {
	ucCollege *usecase.CollegeUseCase
	ucSuggest *usecase.SuggestUseCase
	ucScheme  *usecase.SchemeUseCase
	log       *log.Helper
}

func NewAdvisorService(ucCollege *usecase.CollegeUseCase, ucSuggest *usecase.SuggestUseCase, ucScheme *usecase.SchemeUseCase, logger log.Logger) *AdvisorService {
	return &AdvisorService{
		ucCollege: ucCollege,
		ucSuggest: ucSuggest,
		ucScheme:  ucScheme,
		log:       log.NewHelper(logger),
	}
}

func (s *AdvisorService) FilterColleges(ctx context.Context, req *FilterCollegesReq) ([]*domain.CollegeMatch, error) {
	if req.Location == nil || req.Domain == nil {
		return nil, errors.BadRequest("INVALID_ARGUMENT", "location and domain are required")
	}
	return s.ucCollege.Match(ctx, *req.Location, *req.Domain)
}

func (s *AdvisorService) SuggestPath(ctx context.Context, req *SuggestPathReq) (string, error) {
	return s.ucSuggest.Suggest(ctx, req.UserID)
}

func (s *AdvisorService) FilterSchemes(ctx context.Context, req *FilterSchemesReq) ([]*domain.Scheme, error) {
	return s.ucScheme.Filter(ctx, &domain.SchemeFilter{
		Eligibility: req.Eligibility,
		Level:       req.Level,
		Category:    req.Category,
		Tags:        req.Tags,
	})
}

func (s *AdvisorService) Health(ctx context.Context) (*HealthReply, error) {
	return &HealthReply{Status: "ok"}, nil
}
