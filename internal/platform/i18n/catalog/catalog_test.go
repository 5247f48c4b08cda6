package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("pt-BR") {
		t.Fatalf("expected locale pt-BR")
	}
	if got := bundle.Locales(); len(got) != 2 || got[0] != "en-US" || got[1] != "pt-BR" {
		t.Fatalf("Locales() = %v", got)
	}
	if got := len(bundle.LocaleMessages("en-US")); got == 0 {
		t.Fatalf("expected en-US messages")
	}
}

func TestTranslatedKeysExistInBaseLocale(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	base := bundle.LocaleMessages(BaseLocale)
	for _, locale := range bundle.Locales() {
		for key := range bundle.LocaleMessages(locale) {
			if _, ok := base[key]; !ok {
				t.Errorf("%s key %q missing from %s", locale, key, BaseLocale)
			}
		}
	}
}

func TestLoadFromFSRejectsKeyOutsideNamespace(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/web.yaml"), `locale: "en-US"
namespace: "web"
messages:
  "seo.bad": "nope"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil || !strings.Contains(err.Error(), `must start with "web."`) {
		t.Fatalf("err = %v, want namespace prefix error", err)
	}
}

func TestLoadFromFSRejectsMismatchedPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		want string
	}{
		{
			name: "locale",
			path: "locales/en-US/web.yaml",
			body: "locale: \"pt-BR\"\nnamespace: \"web\"\nmessages:\n  \"web.a\": \"a\"\n",
			want: "must match path locale",
		},
		{
			name: "namespace",
			path: "locales/en-US/web.yaml",
			body: "locale: \"en-US\"\nnamespace: \"seo\"\nmessages:\n  \"seo.a\": \"a\"\n",
			want: "must match filename namespace",
		},
		{
			name: "empty messages",
			path: "locales/en-US/web.yaml",
			body: "locale: \"en-US\"\nnamespace: \"web\"\n",
			want: "messages are required",
		},
		{
			name: "invalid yaml",
			path: "locales/en-US/web.yaml",
			body: "locale: [\n",
			want: "parse catalog",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tempDir := t.TempDir()
			mustWriteFile(t, filepath.Join(tempDir, tc.path), tc.body)
			_, err := LoadFromFS(os.DirFS(tempDir))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want %q", err, tc.want)
			}
		})
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/pt-BR/web.yaml"), `locale: "pt-BR"
namespace: "web"
messages:
  "web.a": "a"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestLoadFromFSRequiresFiles(t *testing.T) {
	if _, err := LoadFromFS(os.DirFS(t.TempDir())); err == nil {
		t.Fatal("expected error for empty catalog directory")
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}

	got, ok := bundle.Message("pt-BR", "web.nav.home")
	if !ok || got != "Início" {
		t.Fatalf("pt-BR web.nav.home = %q, %v", got, ok)
	}
	// Brand names are only defined for the base locale.
	got, ok = bundle.Message("pt-BR", "web.site_name")
	if !ok || got != "Beyond UI Blog" {
		t.Fatalf("pt-BR web.site_name = %q, %v", got, ok)
	}
	if _, ok := bundle.Message("fr-FR", "web.missing"); ok {
		t.Fatal("expected missing key")
	}
	if _, ok := bundle.Message("en-US", " "); ok {
		t.Fatal("expected blank key to miss")
	}
}

func TestDefaultRegistersPrinters(t *testing.T) {
	if Default() == nil {
		t.Fatal("expected default bundle")
	}
	en := message.NewPrinter(language.MustParse("en-US"))
	if got := en.Sprintf("web.posts.discover", 10); got != "Discover all 10 blog posts" {
		t.Fatalf("en-US discover = %q", got)
	}
	pt := message.NewPrinter(language.MustParse("pt-BR"))
	if got := pt.Sprintf("web.posts.range", 1, 6, 10); got != "Mostrando 1-6 de 10 posts" {
		t.Fatalf("pt-BR range = %q", got)
	}
	if got := pt.Sprintf("web.brand"); got != "Beyond UI" {
		t.Fatalf("pt-BR brand fallback = %q", got)
	}
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
