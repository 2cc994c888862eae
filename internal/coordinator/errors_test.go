package coordinator

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"suited/pkg/types"
)

func TestErrorPredicatesAreDisjoint(t *testing.T) {
	errs := map[string]error{
		"validation":   ErrConfigValidation("s", []string{"p"}),
		"memory":       ErrInsufficientMemory("s", 10, 1),
		"capacity":     ErrCapacityExhausted("s"),
		"load":         ErrComponentLoad("c", errors.New("boom")),
		"integrity":    ErrSuiteIntegrity("s", []types.Role{types.RoleBase}),
		"not found":    ErrSuiteNotFound("s"),
		"busy":         ErrSuiteBusy("s"),
	}
	preds := map[string]func(error) bool{
		"validation": IsConfigValidation,
		"memory":     IsInsufficientMemory,
		"load":       IsComponentLoad,
		"integrity":  IsSuiteIntegrity,
		"not found":  IsSuiteNotFound,
		"busy":       IsSuiteBusy,
	}
	match := map[string]string{
		"validation": "validation",
		"memory":     "memory",
		"capacity":   "memory", // capacity shortfall counts as insufficient memory
		"load":       "load",
		"integrity":  "integrity",
		"not found":  "not found",
		"busy":       "busy",
	}
	for errName, err := range errs {
		for predName, pred := range preds {
			want := match[errName] == predName
			if got := pred(err); got != want {
				t.Errorf("%s predicate on %s error = %v, want %v", predName, errName, got, want)
			}
		}
	}
	for predName, pred := range preds {
		if pred(nil) || pred(errors.New("other")) {
			t.Errorf("%s predicate matched a foreign error", predName)
		}
	}
}

func TestValidationProblems(t *testing.T) {
	err := ErrConfigValidation("s", []string{"missing base", "duplicate name"})
	if got := ValidationProblems(err); len(got) != 2 || got[0] != "missing base" {
		t.Fatalf("problems=%v", got)
	}
	if ValidationProblems(errors.New("other")) != nil {
		t.Fatalf("expected nil for foreign error")
	}
	if !strings.Contains(err.Error(), "missing base; duplicate name") {
		t.Fatalf("message=%q", err.Error())
	}
}

func TestComponentLoadUnwrap(t *testing.T) {
	cause := errors.New("disk gone")
	err := ErrComponentLoad("unet", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to unwrap")
	}
	if FailedComponent(err) != "unet" {
		t.Fatalf("component=%q", FailedComponent(err))
	}
	if FailedComponent(fmt.Errorf("wrapped: %w", err)) != "" {
		t.Fatalf("expected empty component for wrapped error")
	}
}
