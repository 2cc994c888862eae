package httpapi

import (
	"net/http/httptest"
	"testing"
)

func TestRoutePatternOrPathFallsBackToURLPath(t *testing.T) {
	req := httptest.NewRequest("GET", "/suites/sdxl", nil)
	if got := routePatternOrPath(req); got != "/suites/sdxl" {
		t.Fatalf("got %q", got)
	}
}

func TestItoa(t *testing.T) {
	cases := map[int]string{0: "0", 200: "200", 404: "404", 507: "507"}
	for n, want := range cases {
		if got := itoa(n); got != want {
			t.Errorf("itoa(%d) = %q, want %q", n, got, want)
		}
	}
}
