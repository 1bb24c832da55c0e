package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/aidanlsb/tourtag/internal/categories"
)

func TestNormalizeCategoryNames(t *testing.T) {
	got, err := normalizeCategoryNames([]string{" Merch ", "merch", "TRAVEL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"merch", "travel"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	for _, bad := range []string{"", "a.b", "two words", "#x", "tour", "Tour"} {
		if _, err := normalizeCategoryNames([]string{bad}); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestCategoryWarnings(t *testing.T) {
	if w := categoryWarnings(categories.Source{Origin: categories.OriginFile}); w != nil {
		t.Fatalf("file source produced warnings: %v", w)
	}
	if w := categoryWarnings(categories.Source{Origin: categories.OriginDefault, Reason: categories.ReasonMissing}); w != nil {
		t.Fatalf("missing file produced warnings: %v", w)
	}
	w := categoryWarnings(categories.Source{Origin: categories.OriginDefault, Path: "/x", Reason: categories.ReasonEmpty})
	if len(w) != 1 || w[0].Code != WarnCategoriesDefault || w[0].Path != "/x" {
		t.Fatalf("unexpected warnings: %+v", w)
	}
}

func TestCategoriesAddWritesDefaultsAndNewNames(t *testing.T) {
	home := isolateEnv(t)
	jsonOutput = true

	out := captureStdout(t, func() {
		if err := categoriesAddCmd.RunE(categoriesAddCmd, []string{"Merch"}); err != nil {
			t.Fatalf("RunE error: %v", err)
		}
	})
	data := responseData(t, decodeResponse(t, out))
	if data["path"] != filepath.Join(home, ".task", "tour-categories.txt") {
		t.Fatalf("path = %v", data["path"])
	}

	content, err := os.ReadFile(filepath.Join(home, ".task", "tour-categories.txt"))
	if err != nil {
		t.Fatalf("read categories: %v", err)
	}
	for _, name := range []string{"advance", "logistics", "merch"} {
		if !strings.Contains(string(content), name+"\n") {
			t.Errorf("expected %q in file:\n%s", name, content)
		}
	}
}

func TestCategoriesRemoveRefusesToEmptyTheList(t *testing.T) {
	home := isolateEnv(t)
	jsonOutput = true
	path := filepath.Join(home, "only.txt")
	if err := os.WriteFile(path, []byte("merch\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	categoriesFlag = path
	prevConfirm := categoriesRemoveConfirm
	t.Cleanup(func() { categoriesRemoveConfirm = prevConfirm })
	categoriesRemoveConfirm = true

	out := captureStdout(t, func() {
		_ = categoriesRemoveCmd.RunE(categoriesRemoveCmd, []string{"merch"})
	})
	resp := decodeResponse(t, out)
	if resp.OK || resp.Error == nil || resp.Error.Code != ErrInvalidInput {
		t.Fatalf("expected INVALID_INPUT, got %+v", resp)
	}
}

func TestCategoriesEditRefusesUnreadableFile(t *testing.T) {
	const broken = "categories:\n  - merch\n  - travel\n  - catering\n  bad: [\n"

	for _, cmd := range []string{"add", "remove"} {
		t.Run(cmd, func(t *testing.T) {
			home := isolateEnv(t)
			jsonOutput = true
			path := filepath.Join(home, "cats.yaml")
			if err := os.WriteFile(path, []byte(broken), 0o644); err != nil {
				t.Fatal(err)
			}
			categoriesFlag = path
			prevConfirm := categoriesRemoveConfirm
			t.Cleanup(func() { categoriesRemoveConfirm = prevConfirm })
			categoriesRemoveConfirm = true

			out := captureStdout(t, func() {
				if cmd == "add" {
					_ = categoriesAddCmd.RunE(categoriesAddCmd, []string{"press"})
				} else {
					_ = categoriesRemoveCmd.RunE(categoriesRemoveCmd, []string{"advance"})
				}
			})
			resp := decodeResponse(t, out)
			if resp.OK || resp.Error == nil || resp.Error.Code != ErrConfigInvalid {
				t.Fatalf("expected CONFIG_INVALID, got %+v", resp)
			}

			content, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(content) != broken {
				t.Fatalf("category file was rewritten:\n%s", content)
			}
		})
	}
}

func TestCategoriesAddExtendsEmptyFile(t *testing.T) {
	home := isolateEnv(t)
	jsonOutput = true
	path := filepath.Join(home, "cats.txt")
	if err := os.WriteFile(path, []byte("# nothing yet\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	categoriesFlag = path

	out := captureStdout(t, func() {
		if err := categoriesAddCmd.RunE(categoriesAddCmd, []string{"merch"}); err != nil {
			t.Fatalf("RunE error: %v", err)
		}
	})
	if resp := decodeResponse(t, out); !resp.OK {
		t.Fatalf("expected ok, got %+v", resp)
	}
	content, _ := os.ReadFile(path)
	if !strings.Contains(string(content), "merch\n") {
		t.Fatalf("expected merch in file:\n%s", content)
	}
}
