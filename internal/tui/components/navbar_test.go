package components

import (
	"testing"

	"github.com/busedmrly/vitrin/internal/domain"
)

func TestNavbarCycling(t *testing.T) {
	n := NewNavbar()

	if n.Active() != domain.PageHome {
		t.Fatalf("expected home as initial page, got %s", n.Active())
	}

	if next := n.Next(); next != domain.PageMovies {
		t.Errorf("expected movies after home, got %s", next)
	}

	if prev := n.Prev(); prev != domain.PageFavorites {
		t.Errorf("expected wrap to favorites before home, got %s", prev)
	}

	n.SetActive(domain.PageFavorites)
	if next := n.Next(); next != domain.PageHome {
		t.Errorf("expected wrap to home after favorites, got %s", next)
	}
}

func TestPageAt(t *testing.T) {
	cases := []struct {
		num  int
		page domain.Page
		ok   bool
	}{
		{1, domain.PageHome, true},
		{2, domain.PageMovies, true},
		{3, domain.PageSeries, true},
		{4, domain.PageBooks, true},
		{5, domain.PageFavorites, true},
		{0, "", false},
		{6, "", false},
	}

	for _, tc := range cases {
		page, ok := PageAt(tc.num)
		if ok != tc.ok || page != tc.page {
			t.Errorf("PageAt(%d) = %q, %v; want %q, %v", tc.num, page, ok, tc.page, tc.ok)
		}
	}
}
