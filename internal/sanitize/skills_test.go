package sanitize

import (
	"reflect"
	"testing"
)

func TestExtractSkills(t *testing.T) {
	desc := "We run Python services on AWS with Docker and Kubernetes, fronted by PostgreSQL."
	got := ExtractSkills(desc)
	want := []string{"python", "sql", "postgresql", "aws", "docker", "kubernetes"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractSkills = %v, want %v", got, want)
	}
}

func TestExtractSkillsExtra(t *testing.T) {
	got := ExtractSkills("Experience with Snowflake and dbt required.", "snowflake", "dbt")
	want := []string{"snowflake", "dbt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractSkills = %v, want %v", got, want)
	}
}

func TestExtractSkillsDedup(t *testing.T) {
	// extras already in the vocabulary don't double up
	got := ExtractSkills("docker docker docker", "Docker")
	want := []string{"docker"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractSkills = %v, want %v", got, want)
	}
}

func TestExtractSkillsEmpty(t *testing.T) {
	if got := ExtractSkills("  "); got != nil {
		t.Errorf("ExtractSkills(blank) = %v, want nil", got)
	}
}
