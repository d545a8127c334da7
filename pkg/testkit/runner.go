package testkit

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// RunFile runs every scenario in the file, in order, as t.Run subtests.
func RunFile(t *testing.T, handler http.Handler, path string) {
	t.Helper()

	scenarios, err := LoadScenarios(path)
	if err != nil {
		t.Fatalf("testkit: load %q: %v", path, err)
	}
	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			runScenario(t, handler, s)
		})
	}
}

// RunDir runs every *.json file in dir, in file name order.
func RunDir(t *testing.T, handler http.Handler, dir string) {
	t.Helper()

	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(entries) == 0 {
		t.Fatalf("testkit: no scenario files found in %q", dir)
	}
	sort.Strings(entries)

	for _, path := range entries {
		RunFile(t, handler, path)
	}
}

func runScenario(t *testing.T, handler http.Handler, s *Scenario) {
	t.Helper()

	var reqBody io.Reader
	switch {
	case len(s.RequestBody) > 0:
		reqBody = bytes.NewReader(s.RequestBody)
	case s.RequestBodyPath() != "":
		data, err := os.ReadFile(s.RequestBodyPath())
		if err != nil {
			t.Fatalf("[%s] read request file: %v", s.Name, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req := httptest.NewRequest(strings.ToUpper(s.RequestMethod), s.RequestURL, reqBody)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range s.Headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	AssertStatusCode(t, s, rec.Code)

	switch {
	case len(s.ResponseBody) > 0:
		AssertJSONBody(t, s, s.ResponseBody, rec.Body.Bytes())
	case s.ResponseBodyPath() != "":
		expected, err := os.ReadFile(s.ResponseBodyPath())
		if err != nil {
			t.Errorf("[%s] read response file: %v", s.Name, err)
			return
		}
		AssertJSONBody(t, s, expected, rec.Body.Bytes())
	case s.ResponseText != "":
		assert.Equal(t, s.ResponseText, rec.Body.String(), "[%s] response body mismatch", s.Name)
	}
}
