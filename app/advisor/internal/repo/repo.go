package repo

import (
	"context"

	"github.com/iWorld-y/career_advisor/app/advisor/internal/domain"
)

// CollegeRepo 院校与课程仓库接口
type CollegeRepo interface {
	// CourseIDsByName 根据课程名称（领域）获取课程 ID
	CourseIDsByName(ctx context.Context, name string) ([]string, error)
	// CollegesByLocation 获取城市或省份等于 location 的院校
	CollegesByLocation(ctx context.Context, location string) ([]*domain.College, error)
	// CoursesByIDs 批量获取课程详情，以 ID 为键
	CoursesByIDs(ctx context.Context, ids []string) (map[string]*domain.Course, error)
}

// ProfileRepo 学生测评数据仓库接口
type ProfileRepo interface {
	// LatestRiasec 获取最近一次 RIASEC 测评，没有记录时返回 nil
	LatestRiasec(ctx context.Context, userID string) (domain.RiasecScores, error)
	// LatestQuizResponse 获取指定类型最近一次答卷，没有记录时返回 NotFound
	LatestQuizResponse(ctx context.Context, userID, quizType string) (*domain.QuizResponse, error)
}

// SchemeRepo 资助项目数据集
type SchemeRepo interface {
	ListSchemes(ctx context.Context) ([]*domain.Scheme, error)
}

// Generator 文本生成模型
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
