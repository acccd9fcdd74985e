package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"

	"github.com/iWorld-y/career_advisor/app/advisor/internal/domain"
	"github.com/iWorld-y/career_advisor/app/advisor/internal/repo"
)

// quizResultsPath 答卷载荷中测评结果的位置
const quizResultsPath = "$.responseData.results"

// SuggestUseCase 分科建议业务逻辑
type SuggestUseCase struct {
	repo repo.ProfileRepo
	gen  repo.Generator
	log  *log.Helper
}

// NewSuggestUseCase 创建分科建议业务逻辑实例
func NewSuggestUseCase(repo repo.ProfileRepo, gen repo.Generator, logger log.Logger) *SuggestUseCase {
	return &SuggestUseCase{repo: repo, gen: gen, log: log.NewHelper(logger)}
}

// Suggest 合并学生最近的 RIASEC 测评与 9_10 答卷，交给模型生成建议，
// 返回模型的原始输出，不做解析
func (uc *SuggestUseCase) Suggest(ctx context.Context, userID string) (string, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return "", errors.BadRequest("INVALID_USER_ID", "user_id must be a UUID")
	}
	if uc.gen == nil {
		return "", errors.ServiceUnavailable("GENERATOR_DISABLED", "no llm provider configured")
	}

	scores, err := uc.repo.LatestRiasec(ctx, userID)
	if err != nil {
		return "", upstream(err, "fetch riasec record")
	}
	if scores == nil {
		scores = domain.RiasecScores{}
	}

	quiz, err := uc.repo.LatestQuizResponse(ctx, userID, domain.QuizType9To10)
	if err != nil {
		return "", upstream(err, "fetch quiz response")
	}

	results, err := extractQuizResults(quiz.ResponseData)
	if err != nil {
		uc.log.WithContext(ctx).Warnf("malformed quiz data for user %s: %v", userID, err)
		return "", errors.BadRequest("MALFORMED_QUIZ_DATA", "quiz results not found in response data")
	}

	prompt, err := buildPathPrompt(&domain.PathInput{RiasecScores: scores, QuizResults: results})
	if err != nil {
		return "", err
	}

	text, err := uc.gen.Generate(ctx, prompt)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("generate suggestion for user %s: %v", userID, err)
		return "", upstream(err, "generate suggestion")
	}
	return text, nil
}

func extractQuizResults(raw json.RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("response data is empty")
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	val, err := jsonpath.Get(quizResultsPath, doc)
	if err != nil {
		return nil, err
	}
	if isEmptyValue(val) {
		return nil, fmt.Errorf("%s is empty", quizResultsPath)
	}
	return val, nil
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	case bool:
		return !t
	case float64:
		return t == 0
	default:
		return false
	}
}
