package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "createproject" {
		t.Errorf("CLIName() = %q, want %q", got, "createproject")
	}
	if got := HomeDir(); got != ".createproject" {
		t.Errorf("HomeDir() = %q, want %q", got, ".createproject")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("base_path"); got != "CREATEPROJECT_BASE_PATH" {
		t.Errorf("EnvVar(base_path) = %q, want %q", got, "CREATEPROJECT_BASE_PATH")
	}
}
