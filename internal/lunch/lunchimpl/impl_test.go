package lunchimpl

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/wapj/mcp-test/internal/lunch"
	"github.com/wapj/mcp-test/pkg/logger"
)

func newTestImpl() *LunchImpl {
	return New(Opts{Logger: logger.NewNop(), Rand: rand.New(rand.NewPCG(1, 2))})
}

func TestRecommend_KnownCuisine(t *testing.T) {
	l := newTestImpl()
	dishes, _ := dishesOf("일식")

	for i := 0; i < 50; i++ {
		rec := l.Recommend("일식")

		if rec.CuisineType != "일식" {
			t.Fatalf("CuisineType = %q", rec.CuisineType)
		}
		if !slices.Contains(dishes, rec.RecommendedMenu) {
			t.Fatalf("%q is not a 일식 dish", rec.RecommendedMenu)
		}
		if rec.Message != "오늘 점심으로 "+rec.RecommendedMenu+" 어떠세요?" {
			t.Errorf("Message = %q", rec.Message)
		}
		assertAlternatives(t, rec.Alternatives, dishes)
	}
}

func TestRecommend_RandomOrUnknown(t *testing.T) {
	l := newTestImpl()
	all := allDishes()

	for _, c := range []string{lunch.RandomCuisine, "멕시칸", ""} {
		rec := l.Recommend(c)
		if rec.CuisineType != randomLabel {
			t.Errorf("cuisine %q: CuisineType = %q, want %q", c, rec.CuisineType, randomLabel)
		}
		if !slices.Contains(all, rec.RecommendedMenu) {
			t.Errorf("cuisine %q: %q is not on the menu", c, rec.RecommendedMenu)
		}
		assertAlternatives(t, rec.Alternatives, all)
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	a, b := newTestImpl(), newTestImpl()
	for i := 0; i < 10; i++ {
		ra, rb := a.Recommend("한식"), b.Recommend("한식")
		if ra.RecommendedMenu != rb.RecommendedMenu || !slices.Equal(ra.Alternatives, rb.Alternatives) {
			t.Fatalf("same seed produced different picks: %+v vs %+v", ra, rb)
		}
	}
}

func assertAlternatives(t *testing.T, alts, from []string) {
	t.Helper()
	if len(alts) != maxAlternatives {
		t.Fatalf("got %d alternatives, want %d", len(alts), maxAlternatives)
	}
	seen := map[string]bool{}
	for _, a := range alts {
		if !slices.Contains(from, a) {
			t.Errorf("alternative %q not in candidate list", a)
		}
		if seen[a] {
			t.Errorf("alternative %q repeated", a)
		}
		seen[a] = true
	}
}

func TestFindRestaurants(t *testing.T) {
	got := newTestImpl().FindRestaurants("비빔밥", "판교")

	if len(got) != 3 {
		t.Fatalf("got %d restaurants, want 3", len(got))
	}
	for _, r := range got {
		if !strings.Contains(r.Name, "비빔밥") || !strings.HasPrefix(r.Name, "[샘플]") {
			t.Errorf("unexpected name %q", r.Name)
		}
		if r.Rating <= 0 || r.Address == "" || r.Phone == "" {
			t.Errorf("incomplete sample %+v", r)
		}
	}
}

func TestCuisines(t *testing.T) {
	want := []string{"한식", "중식", "일식", "양식", "분식", "패스트푸드"}
	if got := newTestImpl().Cuisines(); !slices.Equal(got, want) {
		t.Errorf("Cuisines() = %v, want %v", got, want)
	}
}
