package data

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/go-kratos/kratos/v2/encoding/json"
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/transport"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/career_advisor/app/advisor/internal/domain"
)

const restPrefix = "/rest/v1/"

// newRESTClient 创建访问 PostgREST（Supabase）的客户端
func newRESTClient(ctx context.Context, endpoint, key string, timeout time.Duration) (*http.Client, error) {
	return http.NewClient(ctx,
		http.WithEndpoint(endpoint),
		http.WithTimeout(timeout),
		http.WithMiddleware(apiKey(key)),
	)
}

// apiKey 为每个请求注入 Supabase 访问密钥
func apiKey(key string) middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			if tr, ok := transport.FromClientContext(ctx); ok {
				tr.RequestHeader().Set("apikey", key)
				tr.RequestHeader().Set("Authorization", "Bearer "+key)
				tr.RequestHeader().Set("Accept", "application/json")
			}
			return handler(ctx, req)
		}
	}
}

// restGet 查询一张表，返回的行解码进 reply。
// 上游错误统一展开为普通 error，避免把存储的状态码透传给调用方
func restGet(ctx context.Context, cc *http.Client, table string, params url.Values, reply interface{}) error {
	path := restPrefix + table + "?" + strings.ReplaceAll(params.Encode(), "+", "%20")
	if err := cc.Invoke(ctx, "GET", path, nil, reply); err != nil {
		return fmt.Errorf("postgrest %s: %v", table, err)
	}
	return nil
}

// quote 将值包成 PostgREST 列表语法中的字符串字面量
func quote(v string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(v) + `"`
}

// textID 兼容字符串与数字两种主键
type textID string

func (id *textID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = textID(s)
		return nil
	}
	if string(b) == "null" {
		*id = ""
		return nil
	}
	*id = textID(b)
	return nil
}

type restCourse struct {
	ID             textID  `json:"id"`
	Name           string  `json:"name"`
	DurationYears  int     `json:"duration_years"`
	RequiredStream *string `json:"required_stream"`
}

type restCollege struct {
	ID                  textID  `json:"id"`
	Name                string  `json:"name"`
	Type                string  `json:"type"`
	City                string  `json:"city"`
	State               string  `json:"state"`
	NirfRank            *int    `json:"nirf_rank"`
	AverageFee          float64 `json:"average_fee"`
	AvgPlacementPackage float64 `json:"avg_placement_package"`
	Courses             string  `json:"courses"`
}

type restCollegeRepo struct {
	cc  *http.Client
	log *log.Helper
}

func (r *restCollegeRepo) CourseIDsByName(ctx context.Context, name string) ([]string, error) {
	params := url.Values{}
	params.Set("select", "id")
	params.Set("name", "eq."+name)

	var rows []restCourse
	if err := restGet(ctx, r.cc, "courses", params, &rows); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, string(row.ID))
	}
	return ids, nil
}

func (r *restCollegeRepo) CollegesByLocation(ctx context.Context, location string) ([]*domain.College, error) {
	params := url.Values{}
	params.Set("select", "id,name,type,city,state,nirf_rank,average_fee,avg_placement_package,courses")
	params.Set("or", fmt.Sprintf("(city.eq.%s,state.eq.%s)", quote(location), quote(location)))

	var rows []restCollege
	if err := restGet(ctx, r.cc, "colleges", params, &rows); err != nil {
		return nil, err
	}
	colleges := make([]*domain.College, 0, len(rows))
	for _, row := range rows {
		colleges = append(colleges, &domain.College{
			ID:                  string(row.ID),
			Name:                row.Name,
			Type:                row.Type,
			City:                row.City,
			State:               row.State,
			Rank:                row.NirfRank,
			AverageFee:          row.AverageFee,
			AvgPlacementPackage: row.AvgPlacementPackage,
			CourseIDs:           domain.ParseCourseIDs(row.Courses),
		})
	}
	return colleges, nil
}

func (r *restCollegeRepo) CoursesByIDs(ctx context.Context, ids []string) (map[string]*domain.Course, error) {
	out := make(map[string]*domain.Course, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	quoted := make([]string, 0, len(ids))
	for _, id := range ids {
		quoted = append(quoted, quote(id))
	}
	params := url.Values{}
	params.Set("select", "id,name,duration_years,required_stream")
	params.Set("id", "in.("+strings.Join(quoted, ",")+")")

	var rows []restCourse
	if err := restGet(ctx, r.cc, "courses", params, &rows); err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[string(row.ID)] = &domain.Course{
			ID:             string(row.ID),
			Name:           row.Name,
			DurationYears:  row.DurationYears,
			RequiredStream: row.RequiredStream,
		}
	}
	return out, nil
}

type restProfileRepo struct {
	cc  *http.Client
	log *log.Helper
}

func (r *restProfileRepo) LatestRiasec(ctx context.Context, userID string) (domain.RiasecScores, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("user_id", "eq."+userID)
	params.Set("order", "created_at.desc")
	params.Set("limit", "1")

	var rows []map[string]any
	if err := restGet(ctx, r.cc, "user_riasec_record", params, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	scores := make(domain.RiasecScores, len(rows[0]))
	for k, v := range rows[0] {
		if riasecMetaColumns[k] {
			continue
		}
		scores[k] = v
	}
	return scores, nil
}

func (r *restProfileRepo) LatestQuizResponse(ctx context.Context, userID, quizType string) (*domain.QuizResponse, error) {
	params := url.Values{}
	params.Set("select", "response_data")
	params.Set("user_id", "eq."+userID)
	params.Set("quiz_type", "eq."+quizType)
	params.Set("order", "created_at.desc")
	params.Set("limit", "1")

	var rows []struct {
		ResponseData json.RawMessage `json:"response_data"`
	}
	if err := restGet(ctx, r.cc, "quiz_responses", params, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.NotFound("QUIZ_RESPONSE_NOT_FOUND",
			fmt.Sprintf("no quiz responses of type '%s' found for user_id: %s", quizType, userID))
	}
	return &domain.QuizResponse{ResponseData: rows[0].ResponseData}, nil
}
