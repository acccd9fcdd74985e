package usecase

import (
	"context"
	"strings"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/iWorld-y/career_advisor/app/advisor/internal/domain"
	"github.com/iWorld-y/career_advisor/app/advisor/internal/repo"
)

// 数据集中参与过滤的列
const (
	colEligibility    = "eligibility"
	colSchemeCategory = "schemeCategory"
	colTags           = "tags"
)

// SchemeUseCase 资助项目过滤
type SchemeUseCase struct {
	repo repo.SchemeRepo
	log  *log.Helper
}

func NewSchemeUseCase(repo repo.SchemeRepo, logger log.Logger) *SchemeUseCase {
	return &SchemeUseCase{repo: repo, log: log.NewHelper(logger)}
}

// Filter 所有条件取交集，比较均为忽略大小写的子串匹配，空单元格不匹配任何条件
func (uc *SchemeUseCase) Filter(ctx context.Context, f *domain.SchemeFilter) ([]*domain.Scheme, error) {
	schemes, err := uc.repo.ListSchemes(ctx)
	if err != nil {
		return nil, upstream(err, "list schemes")
	}

	out := make([]*domain.Scheme, 0)
	for _, s := range schemes {
		if matchScheme(s, f) {
			out = append(out, s)
		}
	}
	return out, nil
}

func matchScheme(s *domain.Scheme, f *domain.SchemeFilter) bool {
	if f.Eligibility != "" && !columnContains(s, colEligibility, f.Eligibility) {
		return false
	}
	if f.Level != "" && !columnContains(s, colSchemeCategory, f.Level) {
		return false
	}
	if f.Category != "" &&
		!columnContains(s, colSchemeCategory, f.Category) &&
		!columnContains(s, colTags, f.Category) {
		return false
	}
	for _, tag := range f.Tags {
		if !columnContains(s, colTags, tag) {
			return false
		}
	}
	return true
}

func columnContains(s *domain.Scheme, column, needle string) bool {
	v, ok := s.Get(column)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(v), strings.ToLower(needle))
}
