package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTokenFile(t *testing.T) {
	t.Setenv(EnvToken, "")
	dir := t.TempDir()
	path := filepath.Join(dir, "auth_token")

	tf := TokenFile{Path: path}
	if tf.Authenticated() {
		t.Fatal("missing token file should be signed out")
	}

	if err := os.WriteFile(path, []byte("  \n"), 0600); err != nil {
		t.Fatal(err)
	}
	if tf.Authenticated() {
		t.Fatal("blank token should be signed out")
	}

	if err := os.WriteFile(path, []byte("abc123\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if !tf.Authenticated() || tf.Token() != "abc123" {
		t.Fatalf("expected token abc123, got %q", tf.Token())
	}
}

func TestTokenFileEnvOverride(t *testing.T) {
	t.Setenv(EnvToken, "from-env")
	tf := TokenFile{}
	if tf.Token() != "from-env" {
		t.Fatalf("expected env token, got %q", tf.Token())
	}
}

func TestStatic(t *testing.T) {
	var c Checker = Static(true)
	if !c.Authenticated() {
		t.Fatal("Static(true) should be authenticated")
	}
}
