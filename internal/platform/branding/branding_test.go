package branding

import "testing"

func TestAppName(t *testing.T) {
	if AppName == "" {
		t.Fatal("expected AppName to be non-empty")
	}
	if AppName != "Agent de recherche d'entreprise" {
		t.Fatalf("AppName = %q, want %q", AppName, "Agent de recherche d'entreprise")
	}
}
