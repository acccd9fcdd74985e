package usecase

import (
	"context"
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/iWorld-y/career_advisor/app/advisor/internal/domain"
)

// mockCollegeRepo 模拟院校仓库，按名称/地区精确匹配
type mockCollegeRepo struct {
	courses  []*domain.Course
	colleges []*domain.College

	// 记录调用，便于断言短路行为
	locationCalls int
	detailCalls   int
	detailIDs     []string

	courseErr error
}

func (m *mockCollegeRepo) CourseIDsByName(ctx context.Context, name string) ([]string, error) {
	if m.courseErr != nil {
		return nil, m.courseErr
	}
	var ids []string
	for _, c := range m.courses {
		if c.Name == name {
			ids = append(ids, c.ID)
		}
	}
	return ids, nil
}

func (m *mockCollegeRepo) CollegesByLocation(ctx context.Context, location string) ([]*domain.College, error) {
	m.locationCalls++
	var out []*domain.College
	for _, c := range m.colleges {
		if c.City == location || c.State == location {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCollegeRepo) CoursesByIDs(ctx context.Context, ids []string) (map[string]*domain.Course, error) {
	m.detailCalls++
	m.detailIDs = append([]string(nil), ids...)
	out := make(map[string]*domain.Course)
	for _, id := range ids {
		for _, c := range m.courses {
			if c.ID == id {
				out[id] = c
			}
		}
	}
	return out, nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

const engineering = "Engineering & Technology"

func fixtureRepo() *mockCollegeRepo {
	return &mockCollegeRepo{
		courses: []*domain.Course{
			{ID: "P1", Name: engineering, DurationYears: 4, RequiredStream: strPtr("Science (PCM)")},
			{ID: "P2", Name: engineering, DurationYears: 5, RequiredStream: strPtr("Science")},
			{ID: "P5", Name: "Law", DurationYears: 5},
			{ID: "P9", Name: "Design", DurationYears: 4},
		},
		colleges: []*domain.College{
			{ID: "1", Name: "IIT Delhi", Type: "Public", City: "Delhi", State: "Delhi", Rank: intPtr(2), AverageFee: 220000, AvgPlacementPackage: 2100000, CourseIDs: []string{"P1", "P9"}},
			{ID: "2", Name: "NLU Delhi", Type: "Public", City: "Delhi", State: "Delhi", AverageFee: 180000, AvgPlacementPackage: 1500000, CourseIDs: []string{"P5"}},
		},
	}
}

func TestCollegeUseCase_Match(t *testing.T) {
	repo := fixtureRepo()
	uc := NewCollegeUseCase(repo, log.DefaultLogger)

	got, err := uc.Match(context.Background(), "Delhi", engineering)
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	want := []*domain.CollegeMatch{{
		Name:                "IIT Delhi",
		Type:                "Public",
		City:                "Delhi",
		State:               "Delhi",
		Rank:                intPtr(2),
		Fee:                 220000,
		AvgPlacementPackage: 2100000,
		DurationYears:       4,
		RequiredStream:      strPtr("Science (PCM)"),
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %+v, want %+v", got, want)
	}
	// 批量查询包含保留院校的全部课程，而不只是命中的课程
	if !reflect.DeepEqual(repo.detailIDs, []string{"P1", "P9"}) {
		t.Errorf("detail batch = %v, want [P1 P9]", repo.detailIDs)
	}
}

func TestCollegeUseCase_Match_UnknownDomain(t *testing.T) {
	repo := fixtureRepo()
	uc := NewCollegeUseCase(repo, log.DefaultLogger)

	got, err := uc.Match(context.Background(), "Delhi", "Astrology")
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Match() = %v, want empty non-nil slice", got)
	}
	if repo.locationCalls != 0 {
		t.Errorf("CollegesByLocation called %d times, want 0", repo.locationCalls)
	}
}

func TestCollegeUseCase_Match_UnknownLocation(t *testing.T) {
	repo := fixtureRepo()
	uc := NewCollegeUseCase(repo, log.DefaultLogger)

	got, err := uc.Match(context.Background(), "Chennai", engineering)
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Match() = %v, want empty", got)
	}
	if repo.detailCalls != 0 {
		t.Errorf("CoursesByIDs called %d times, want 0", repo.detailCalls)
	}
}

func TestCollegeUseCase_Match_MatchesStateOrCity(t *testing.T) {
	repo := fixtureRepo()
	repo.colleges = append(repo.colleges,
		&domain.College{ID: "3", Name: "COEP", City: "Pune", State: "Maharashtra", CourseIDs: []string{"P2"}},
		&domain.College{ID: "4", Name: "VJTI", City: "Mumbai", State: "Maharashtra", CourseIDs: []string{"P1"}},
	)
	uc := NewCollegeUseCase(repo, log.DefaultLogger)

	got, err := uc.Match(context.Background(), "Maharashtra", engineering)
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if len(got) != 2 || got[0].Name != "COEP" || got[1].Name != "VJTI" {
		t.Fatalf("Match() = %+v", got)
	}
	if got[0].DurationYears != 5 || got[1].DurationYears != 4 {
		t.Errorf("durations = %d, %d", got[0].DurationYears, got[1].DurationYears)
	}
	if got[0].Rank != nil {
		t.Errorf("unranked college Rank = %v, want nil", *got[0].Rank)
	}
}

func TestCollegeUseCase_Match_EmptyCourseList(t *testing.T) {
	repo := fixtureRepo()
	repo.colleges = []*domain.College{
		{ID: "5", Name: "Empty", City: "Delhi", CourseIDs: domain.ParseCourseIDs("")},
	}
	uc := NewCollegeUseCase(repo, log.DefaultLogger)

	got, err := uc.Match(context.Background(), "Delhi", engineering)
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Match() = %v, want empty", got)
	}
}

func TestCollegeUseCase_Match_UsesCollegeOrder(t *testing.T) {
	repo := fixtureRepo()
	repo.colleges = []*domain.College{
		{ID: "6", Name: "DTU", City: "Delhi", CourseIDs: domain.ParseCourseIDs("P9, P2 ,P1")},
	}
	uc := NewCollegeUseCase(repo, log.DefaultLogger)

	got, err := uc.Match(context.Background(), "Delhi", engineering)
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if len(got) != 1 || got[0].DurationYears != 5 || *got[0].RequiredStream != "Science" {
		t.Errorf("Match() = %+v, want details of P2", got)
	}
}

func TestCollegeUseCase_Match_MissingDetailExcluded(t *testing.T) {
	repo := fixtureRepo()
	repo.colleges = []*domain.College{
		{ID: "7", Name: "Ghost", City: "Delhi", CourseIDs: []string{"P1"}},
		{ID: "8", Name: "NSUT", City: "Delhi", CourseIDs: []string{"P2"}},
	}
	// P1 仍能按领域解析出来，但在批量详情中缺失
	repo.courses = repo.courses[1:]
	uc := NewCollegeUseCase(&missingDetailRepo{mockCollegeRepo: repo, ids: []string{"P1", "P2"}}, log.DefaultLogger)

	got, err := uc.Match(context.Background(), "Delhi", engineering)
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "NSUT" {
		t.Errorf("Match() = %+v, want only NSUT", got)
	}
}

// missingDetailRepo 领域解析出的 ID 在详情表中已被删除
type missingDetailRepo struct {
	*mockCollegeRepo
	ids []string
}

func (m *missingDetailRepo) CourseIDsByName(ctx context.Context, name string) ([]string, error) {
	return m.ids, nil
}

func TestCollegeUseCase_Match_StoreError(t *testing.T) {
	repo := fixtureRepo()
	repo.courseErr = stderrors.New("dial tcp: connection refused")
	uc := NewCollegeUseCase(repo, log.DefaultLogger)

	_, err := uc.Match(context.Background(), "Delhi", engineering)
	if err == nil {
		t.Fatal("Match() expected error")
	}
	if se := errors.FromError(err); se.Code != 500 || se.Reason != reasonUpstream {
		t.Errorf("error = %v, want 500 %s", err, reasonUpstream)
	}
}
