package models

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestParseTerms(t *testing.T) {
	spec := ParseTerms(" Python, SQL ,, docker ,python")
	want := []string{"python", "sql", "docker"}
	if !reflect.DeepEqual(spec.Terms, want) {
		t.Errorf("terms: got %v, want %v", spec.Terms, want)
	}
}

func TestParseTerms_empty(t *testing.T) {
	spec := ParseTerms("")
	if len(spec.Terms) != 0 {
		t.Errorf("terms: got %v, want none", spec.Terms)
	}
	spec = ParseTerms(" , ,")
	if len(spec.Terms) != 0 {
		t.Errorf("terms: got %v, want none", spec.Terms)
	}
}

func TestScoreRecord_NormalizeForJSON(t *testing.T) {
	r := ScoreRecord{Filename: "a.pdf", Score: 12.34}
	r.NormalizeForJSON()
	b, err := json.Marshal(&r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(b)
	if strings.Contains(s, "null") {
		t.Errorf("marshaled record contains null: %s", s)
	}
	if !strings.Contains(s, `"matched_keywords":[]`) {
		t.Errorf("matched_keywords not empty array: %s", s)
	}
}
