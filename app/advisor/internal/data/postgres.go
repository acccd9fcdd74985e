package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/lib/pq"

	"github.com/iWorld-y/career_advisor/app/advisor/internal/domain"
)

// id 统一转为 text，兼容整型主键
const (
	sqlCourseIDsByName = `SELECT id::text FROM courses WHERE name = $1`

	sqlCollegesByLocation = `SELECT id::text, COALESCE(name, ''), COALESCE(type, ''), COALESCE(city, ''), COALESCE(state, ''),
		nirf_rank, COALESCE(average_fee, 0), COALESCE(avg_placement_package, 0), COALESCE(courses, '')
		FROM colleges WHERE city = $1 OR state = $1`

	sqlCoursesByIDs = `SELECT id::text, COALESCE(name, ''), COALESCE(duration_years, 0), required_stream
		FROM courses WHERE id::text = ANY($1)`

	sqlLatestRiasec = `SELECT * FROM user_riasec_record WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`

	sqlLatestQuizResponse = `SELECT response_data FROM quiz_responses
		WHERE user_id = $1 AND quiz_type = $2 ORDER BY created_at DESC LIMIT 1`
)

// riasecMetaColumns 不属于测评分数的列
var riasecMetaColumns = map[string]bool{"id": true, "user_id": true, "created_at": true}

type pgCollegeRepo struct {
	db  *sql.DB
	log *log.Helper
}

func (r *pgCollegeRepo) CourseIDsByName(ctx context.Context, name string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, sqlCourseIDsByName, name)
	if err != nil {
		return nil, fmt.Errorf("query courses by name: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *pgCollegeRepo) CollegesByLocation(ctx context.Context, location string) ([]*domain.College, error) {
	rows, err := r.db.QueryContext(ctx, sqlCollegesByLocation, location)
	if err != nil {
		return nil, fmt.Errorf("query colleges by location: %w", err)
	}
	defer rows.Close()

	var colleges []*domain.College
	for rows.Next() {
		var (
			c       domain.College
			rank    sql.NullInt64
			courses string
		)
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Type,
			&c.City,
			&c.State,
			&rank,
			&c.AverageFee,
			&c.AvgPlacementPackage,
			&courses,
		); err != nil {
			return nil, err
		}
		if rank.Valid {
			v := int(rank.Int64)
			c.Rank = &v
		}
		c.CourseIDs = domain.ParseCourseIDs(courses)
		colleges = append(colleges, &c)
	}
	return colleges, rows.Err()
}

func (r *pgCollegeRepo) CoursesByIDs(ctx context.Context, ids []string) (map[string]*domain.Course, error) {
	out := make(map[string]*domain.Course, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.QueryContext(ctx, sqlCoursesByIDs, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("query courses by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			c      domain.Course
			stream sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.DurationYears, &stream); err != nil {
			return nil, err
		}
		if stream.Valid {
			c.RequiredStream = &stream.String
		}
		out[c.ID] = &c
	}
	return out, rows.Err()
}

type pgProfileRepo struct {
	db  *sql.DB
	log *log.Helper
}

func (r *pgProfileRepo) LatestRiasec(ctx context.Context, userID string) (domain.RiasecScores, error) {
	rows, err := r.db.QueryContext(ctx, sqlLatestRiasec, userID)
	if err != nil {
		return nil, fmt.Errorf("query riasec record: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}

	scores := make(domain.RiasecScores, len(cols))
	for i, col := range cols {
		if riasecMetaColumns[col] {
			continue
		}
		scores[col] = normalizeSQLValue(vals[i])
	}
	return scores, nil
}

func (r *pgProfileRepo) LatestQuizResponse(ctx context.Context, userID, quizType string) (*domain.QuizResponse, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, sqlLatestQuizResponse, userID, quizType).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("QUIZ_RESPONSE_NOT_FOUND",
				fmt.Sprintf("no quiz responses of type '%s' found for user_id: %s", quizType, userID))
		}
		return nil, fmt.Errorf("query quiz response: %w", err)
	}
	return &domain.QuizResponse{ResponseData: json.RawMessage(raw)}, nil
}

// normalizeSQLValue lib/pq 以 []byte 返回 numeric/text，尽量还原为数字
func normalizeSQLValue(v any) any {
	b, ok := v.([]byte)
	if !ok {
		return v
	}
	s := string(b)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
