package compose

import (
	"reflect"
	"testing"
)

func TestComposeZipsArtAndStats(t *testing.T) {
	art := []string{"AAAA", "BBBB"}
	lines := []string{"one", "two", "three"}
	got := Compose(art, lines)
	want := []string{
		"",
		" AAAA   one",
		" BBBB   two",
		"        three",
		"",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compose = %q, want %q", got, want)
	}
}

func TestComposeArtTallerThanStats(t *testing.T) {
	art := []string{"AA", "BB", "CC"}
	lines := []string{"x"}
	got := Compose(art, lines)
	want := []string{
		"",
		" AA   x",
		" BB   ",
		" CC   ",
		"",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compose = %q, want %q", got, want)
	}
}

func TestComposeNoArt(t *testing.T) {
	got := Compose(nil, []string{"a", "b"})
	want := []string{"", "a", "b", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compose = %q, want %q", got, want)
	}
}

func TestComposeEmptyBoth(t *testing.T) {
	got := Compose(nil, nil)
	want := []string{"", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compose = %q, want %q", got, want)
	}
}
