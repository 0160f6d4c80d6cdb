package model

import "testing"

func TestNewRegistryDefaultsToBase(t *testing.T) {
	r := NewRegistry("no-such-model")
	if r.Active().Name != "base" {
		t.Errorf("Expected base, got %s", r.Active().Name)
	}
}

func TestMultilingualSupport(t *testing.T) {
	r := NewRegistry("medium")
	for _, code := range []string{"en", "de", "zh", "yue", "no"} {
		if !r.IsSupported(code) {
			t.Errorf("medium should support %s", code)
		}
	}
	if r.IsSupported("tlh") {
		t.Error("medium should not support unknown codes")
	}
}

func TestEnglishOnlyModel(t *testing.T) {
	r := NewRegistry("base.en")
	if !r.IsSupported("en") {
		t.Error("base.en should support en")
	}
	for _, code := range []string{"de", "zh", "fr"} {
		if r.IsSupported(code) {
			t.Errorf("base.en should not support %s", code)
		}
	}
}

func TestSetActiveChangesSupport(t *testing.T) {
	r := NewRegistry("base")
	if !r.IsSupported("de") {
		t.Fatal("base should support de")
	}
	if err := r.SetActive("tiny.en"); err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}
	if r.IsSupported("de") {
		t.Error("tiny.en should not support de")
	}
	if err := r.SetActive("nope"); err == nil {
		t.Error("SetActive with unknown model should fail")
	}
}

func TestAllLanguagesIsACopy(t *testing.T) {
	r := NewRegistry("base")
	langs := r.AllLanguages()
	if len(langs) == 0 {
		t.Fatal("Expected languages")
	}
	langs[0] = "mutated"
	if r.AllLanguages()[0] == "mutated" {
		t.Error("AllLanguages must return a copy")
	}
}
