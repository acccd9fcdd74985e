package domain

import "encoding/json"

// QuizType9To10 九、十年级分科测评
const QuizType9To10 = "9_10"

// RiasecScores 最近一次 RIASEC 测评，已去掉 id/user_id/created_at 等元数据列
type RiasecScores map[string]any

// QuizResponse 测评答卷原始载荷（response_data 列）
type QuizResponse struct {
	ResponseData json.RawMessage
}

// PathInput 提交给 LLM 的合并数据，字段顺序即输出顺序
type PathInput struct {
	RiasecScores RiasecScores `json:"riasec_scores"`
	QuizResults  any          `json:"quiz_results"`
}
