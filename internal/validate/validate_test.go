package validate

import (
	"strings"
	"testing"
)

func TestCondition(t *testing.T) {
	for _, good := range []string{"Good", "Like New", "Excellent"} {
		if _, ok := Condition(good); !ok {
			t.Errorf("expected %q to validate", good)
		}
	}
	for _, bad := range []string{"", "good", "NEW", "Like  New", "Mint"} {
		if _, ok := Condition(bad); ok {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestNameBounds(t *testing.T) {
	if _, ok := Name(""); ok {
		t.Error("empty name accepted")
	}
	if _, ok := Name("   "); ok {
		t.Error("whitespace-only name accepted")
	}
	if _, ok := Name(strings.Repeat("a", 200)); !ok {
		t.Error("200-char name rejected")
	}
	if _, ok := Name(strings.Repeat("a", 201)); ok {
		t.Error("201-char name accepted")
	}
}

func TestDescription(t *testing.T) {
	if _, ok := Description("too short"); ok {
		t.Error("9-char description accepted")
	}
	if _, ok := Description("0123456789"); !ok {
		t.Error("10-char description rejected")
	}
}

func TestImages(t *testing.T) {
	if Images(nil) {
		t.Error("empty image list accepted")
	}
	if Images([]string{"a", "b", "c", "d", "e", "f", "g"}) {
		t.Error("7 images accepted")
	}
	if Images([]string{"  "}) {
		t.Error("blank URL accepted")
	}
	if !Images([]string{"phones/x/main.jpg"}) {
		t.Error("single image rejected")
	}
}

func TestPrice(t *testing.T) {
	if Price(0) || Price(-5) {
		t.Error("non-positive price accepted")
	}
	if !Price(1) {
		t.Error("positive price rejected")
	}
}

func TestBattery(t *testing.T) {
	if !Battery("") || !Battery(strings.Repeat("a", 50)) {
		t.Error("valid battery rejected")
	}
	if Battery(strings.Repeat("a", 51)) {
		t.Error("51-char battery accepted")
	}
}
