package domain

import "strings"

// Course 课程（专业方向）
type Course struct {
	ID             string
	Name           string
	DurationYears  int
	RequiredStream *string
}

// College 院校，CourseIDs 保留存储中的原始顺序
type College struct {
	ID                  string
	Name                string
	Type                string
	City                string
	State               string
	Rank                *int // nil 表示未参与排名
	AverageFee          float64
	AvgPlacementPackage float64
	CourseIDs           []string
}

// CollegeMatch 院校与其命中课程的扁平化结果
type CollegeMatch struct {
	Name                string  `json:"name"`
	Type                string  `json:"type"`
	City                string  `json:"city"`
	State               string  `json:"state"`
	Rank                *int    `json:"rank"`
	Fee                 float64 `json:"fee"`
	AvgPlacementPackage float64 `json:"avg_placement_package"`
	DurationYears       int     `json:"duration_years"`
	RequiredStream      *string `json:"required_stream"`
}

// ParseCourseIDs 解析逗号分隔的课程 ID 字段
func ParseCourseIDs(raw string) []string {
	ids := make([]string, 0)
	if strings.TrimSpace(raw) == "" {
		return ids
	}
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
