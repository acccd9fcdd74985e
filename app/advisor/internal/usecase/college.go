package usecase

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/iWorld-y/career_advisor/app/advisor/internal/domain"
	"github.com/iWorld-y/career_advisor/app/advisor/internal/repo"
)

// CollegeUseCase 院校匹配业务逻辑
type CollegeUseCase struct {
	repo repo.CollegeRepo
	log  *log.Helper
}

// NewCollegeUseCase 创建院校匹配业务逻辑实例
func NewCollegeUseCase(repo repo.CollegeRepo, logger log.Logger) *CollegeUseCase {
	return &CollegeUseCase{repo: repo, log: log.NewHelper(logger)}
}

// Match 查找位于 location（城市或省份）且开设 domain 领域课程的院校，
// 每所院校输出一条记录，顺序与院校查询结果一致
func (uc *CollegeUseCase) Match(ctx context.Context, location, domainName string) ([]*domain.CollegeMatch, error) {
	results := make([]*domain.CollegeMatch, 0)

	// 1. 领域 -> 课程 ID 集合
	ids, err := uc.repo.CourseIDsByName(ctx, domainName)
	if err != nil {
		return nil, upstream(err, "resolve courses")
	}
	if len(ids) == 0 {
		return results, nil
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	// 2. 按地区获取院校
	colleges, err := uc.repo.CollegesByLocation(ctx, location)
	if err != nil {
		return nil, upstream(err, "fetch colleges")
	}
	if len(colleges) == 0 {
		return results, nil
	}

	// 3. 只保留课程列表与领域课程有交集的院校
	kept := make([]*domain.College, 0, len(colleges))
	for _, c := range colleges {
		for _, id := range c.CourseIDs {
			if _, ok := wanted[id]; ok {
				kept = append(kept, c)
				break
			}
		}
	}
	if len(kept) == 0 {
		return results, nil
	}

	// 4. 汇总保留院校的全部课程 ID，一次批量查询详情
	var batch []string
	seen := make(map[string]struct{})
	for _, c := range kept {
		for _, id := range c.CourseIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			batch = append(batch, id)
		}
	}

	// 5.
	details, err := uc.repo.CoursesByIDs(ctx, batch)
	if err != nil {
		return nil, upstream(err, "fetch course details")
	}

	// 6. 取院校自身顺序中第一个既属于领域又有详情的课程
	for _, c := range kept {
		course := firstMatchedCourse(c.CourseIDs, wanted, details)
		if course == nil {
			uc.log.WithContext(ctx).Warnf("college %s (%s) has no course details for domain %q, skipped", c.ID, c.Name, domainName)
			continue
		}
		results = append(results, &domain.CollegeMatch{
			Name:                c.Name,
			Type:                c.Type,
			City:                c.City,
			State:               c.State,
			Rank:                c.Rank,
			Fee:                 c.AverageFee,
			AvgPlacementPackage: c.AvgPlacementPackage,
			DurationYears:       course.DurationYears,
			RequiredStream:      course.RequiredStream,
		})
	}

	return results, nil
}

func firstMatchedCourse(ids []string, wanted map[string]struct{}, details map[string]*domain.Course) *domain.Course {
	for _, id := range ids {
		if _, ok := wanted[id]; !ok {
			continue
		}
		if course, ok := details[id]; ok && course != nil {
			return course
		}
	}
	return nil
}
