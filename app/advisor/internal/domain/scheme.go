package domain

import (
	"bytes"
	"encoding/json"
)

// Field 数据集中的一个单元格
type Field struct {
	Column string
	Value  string
}

// Scheme 资助项目记录，按数据集列顺序保存
type Scheme struct {
	Fields []Field
}

// Get 返回列值，列不存在或为空时 ok 为 false
func (s *Scheme) Get(column string) (string, bool) {
	for _, f := range s.Fields {
		if f.Column == column {
			return f.Value, f.Value != ""
		}
	}
	return "", false
}

// MarshalJSON 按列顺序输出对象，空单元格输出 null
func (s Scheme) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Column)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if f.Value == "" {
			buf.WriteString("null")
			continue
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SchemeFilter 过滤条件，零值字段不参与过滤
type SchemeFilter struct {
	Eligibility string
	Level       string
	Category    string
	Tags        []string
}
