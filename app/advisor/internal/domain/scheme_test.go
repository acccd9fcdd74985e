package domain

import (
	"encoding/json"
	"testing"
)

func TestScheme_MarshalJSON(t *testing.T) {
	s := Scheme{Fields: []Field{
		{Column: "schemeName", Value: "Post Matric Scholarship"},
		{Column: "tags", Value: ""},
		{Column: "level", Value: "State"},
	}}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"schemeName":"Post Matric Scholarship","tags":null,"level":"State"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestScheme_Get(t *testing.T) {
	s := &Scheme{Fields: []Field{{Column: "tags", Value: "Student"}, {Column: "level", Value: ""}}}

	if v, ok := s.Get("tags"); !ok || v != "Student" {
		t.Errorf("Get(tags) = %q, %v", v, ok)
	}
	if _, ok := s.Get("level"); ok {
		t.Error("Get(level) on empty cell should report missing")
	}
	if _, ok := s.Get("nope"); ok {
		t.Error("Get(nope) on unknown column should report missing")
	}
}
