package cli

import (
	"testing"
)

func runProjectForTest(t *testing.T, category string, args ...string) string {
	t.Helper()
	prev := projectCategory
	t.Cleanup(func() { projectCategory = prev })
	projectCategory = category

	return captureStdout(t, func() {
		if err := projectCmd.RunE(projectCmd, args); err != nil {
			t.Fatalf("RunE error: %v", err)
		}
	})
}

func TestProjectCommandPrintsPlainPath(t *testing.T) {
	isolateEnv(t)

	got := runProjectForTest(t, "Advance", "TMCK", "The Pageant")
	if got != "tour.tmck.the_pageant.advance\n" {
		t.Fatalf("got %q", got)
	}
}

func TestProjectCommandWarnsOnUnknownCategory(t *testing.T) {
	isolateEnv(t)
	jsonOutput = true

	resp := decodeResponse(t, runProjectForTest(t, "merch", "tmck"))
	if !resp.OK {
		t.Fatalf("expected ok response, got %+v", resp)
	}
	if len(resp.Warnings) != 1 || resp.Warnings[0].Code != WarnCategoryMissing {
		t.Fatalf("expected CATEGORY_MISSING warning, got %+v", resp.Warnings)
	}
	data := responseData(t, resp)
	if data["project"] != "tour.tmck.merch" || data["category"] != nil {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestProjectCommandRequiresTourOrCategory(t *testing.T) {
	isolateEnv(t)
	jsonOutput = true

	resp := decodeResponse(t, runProjectForTest(t, ""))
	if resp.OK || resp.Error == nil || resp.Error.Code != ErrMissingArgument {
		t.Fatalf("expected MISSING_ARGUMENT, got %+v", resp)
	}
}

func TestProjectCommandWarnsWhenTourNameIsCategory(t *testing.T) {
	isolateEnv(t)
	jsonOutput = true

	resp := decodeResponse(t, runProjectForTest(t, "", "Logistics"))
	if len(resp.Warnings) != 1 || resp.Warnings[0].Code != WarnTourIsCategory {
		t.Fatalf("expected TOUR_IS_CATEGORY warning, got %+v", resp.Warnings)
	}
	if data := responseData(t, resp); data["project"] != "tour.logistics" {
		t.Fatalf("unexpected data: %v", data)
	}

	resp = decodeResponse(t, runProjectForTest(t, "", "Logistics", "The Pageant"))
	if len(resp.Warnings) != 0 {
		t.Fatalf("a venue makes it a tour name, got %+v", resp.Warnings)
	}

	resp = decodeResponse(t, runProjectForTest(t, "logistics"))
	if len(resp.Warnings) != 0 {
		t.Fatalf("--category alone is a standalone category, got %+v", resp.Warnings)
	}
}
