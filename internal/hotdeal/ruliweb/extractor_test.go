package ruliweb

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/wapj/mcp-test/internal/domain"
	"github.com/wapj/mcp-test/pkg/logger"
)

// recordingLogger counts warnings so tests can tell faults from filtered rows.
type recordingLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Info(string, ...any)  {}
func (l *recordingLogger) Error(string, ...any) {}
func (l *recordingLogger) Warn(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}
func (l *recordingLogger) WithComponent(string) logger.Logger { return l }
func (l *recordingLogger) Printf(string, ...any)              {}

type row struct {
	category string
	title    string
	link     string
	image    bool
	recomd   string
	replies  string
	views    string
	time     string
	writer   string
	member   string
}

// render writes a listing row; empty fields leave their element out.
func (r row) render() string {
	var sb strings.Builder
	sb.WriteString(`<tr class="table_body default_list blocktarget"><td class="subject">`)
	if r.category != "" {
		fmt.Fprintf(&sb, `<a class="cate_label" href="#">%s</a>`, r.category)
	}
	if r.title != "" || r.link != "" {
		fmt.Fprintf(&sb, `<a class="subject_link deco" href="%s">%s`, r.link, r.title)
		if r.image {
			sb.WriteString(`<i class="icon-picture"></i>`)
		}
		sb.WriteString(`</a>`)
	}
	if r.replies != "" {
		fmt.Fprintf(&sb, `<span class="num_reply replycount"><span class="num">%s</span></span>`, r.replies)
	}
	if r.recomd != "" {
		fmt.Fprintf(&sb, `<span class="recomd">%s</span>`, r.recomd)
	}
	if r.views != "" {
		fmt.Fprintf(&sb, `<span class="hit">%s</span>`, r.views)
	}
	if r.time != "" {
		fmt.Fprintf(&sb, `<span class="time">%s</span>`, r.time)
	}
	if r.writer != "" {
		fmt.Fprintf(&sb, `<span class="writer text_over">%s</span>`, r.writer)
	}
	if r.member != "" {
		fmt.Fprintf(&sb, `<input type="hidden" class="member_srl" value="%s">`, r.member)
	}
	sb.WriteString(`</td></tr>`)
	return sb.String()
}

func page(rows ...row) string {
	var sb strings.Builder
	sb.WriteString(`<html><body><table><tbody>`)
	for _, r := range rows {
		sb.WriteString(r.render())
	}
	sb.WriteString(`</tbody></table></body></html>`)
	return sb.String()
}

func titles(deals []domain.HotDeal) []string {
	out := make([]string, 0, len(deals))
	for _, d := range deals {
		out = append(out, d.Title)
	}
	return out
}

func loadFixture(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/listing.html")
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}
	return string(b)
}

func TestExtract_Fixture(t *testing.T) {
	e := New(Opts{})
	deals := e.Extract(loadFixture(t), false)

	if len(deals) != 5 {
		t.Fatalf("expected 5 deals, got %d: %v", len(deals), titles(deals))
	}

	want := domain.HotDeal{
		Category:  "PC/하드웨어",
		Title:     "[11번가] 삼성 990 PRO 1TB (129,000원/무료)",
		Link:      "https://m.ruliweb.com/market/board/1020/read/70001",
		HasImage:  true,
		Recommend: 34,
		Replies:   12,
		Views:     12345,
		Time:      "10:25",
		Writer:    "핫딜러",
		MemberID:  "998877",
	}
	if !reflect.DeepEqual(deals[0], want) {
		t.Errorf("first deal mismatch\n got: %+v\nwant: %+v", deals[0], want)
	}

	bare := deals[4]
	wantBare := domain.HotDeal{
		Title:  "[네이버] 기프티콘 모음",
		Link:   "https://m.ruliweb.com/market/board/1020/read/70005",
		Time:   "2026.10.15",
		Writer: "익명",
	}
	if !reflect.DeepEqual(bare, wantBare) {
		t.Errorf("row without optional fields\n got: %+v\nwant: %+v", bare, wantBare)
	}
}

func TestExtract_FixtureExcludeExpired(t *testing.T) {
	e := New(Opts{})
	got := titles(e.Extract(loadFixture(t), true))

	want := []string{
		"[11번가] 삼성 990 PRO 1TB (129,000원/무료)",
		"[스팀] 엘든 링 50% 할인",
		"[네이버] 기프티콘 모음",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("titles = %v, want %v", got, want)
	}
}

func TestExtract_PreservesOrder(t *testing.T) {
	var rows []row
	var want []string
	for i := 1; i <= 7; i++ {
		title := fmt.Sprintf("deal %d", i)
		rows = append(rows, row{title: title, link: fmt.Sprintf("/read/%d", i)})
		want = append(want, title)
	}

	got := titles(New(Opts{}).Extract(page(rows...), false))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("titles = %v, want %v", got, want)
	}
}

func TestExtract_ExpiredKeywords(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{"sold out", "[옥션] 커피믹스 품절"},
		{"ended", "[쿠팡] 행사 종료"},
		{"closed", "마감 [11번가] 생수"},
		{"completed", "[위메프] 배송 완료된 딜"},
		// Substring match: "종료임박" (ending soon) still counts as expired.
		{"keyword inside longer word", "[지마켓] 종료임박 특가"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := page(row{title: "살아있는 딜"}, row{title: tt.title})
			e := New(Opts{})

			if got := titles(e.Extract(html, true)); !reflect.DeepEqual(got, []string{"살아있는 딜"}) {
				t.Errorf("excludeExpired=true: titles = %v", got)
			}
			if got := titles(e.Extract(html, false)); !reflect.DeepEqual(got, []string{"살아있는 딜", tt.title}) {
				t.Errorf("excludeExpired=false: titles = %v", got)
			}
		})
	}
}

func TestExtract_CustomKeywordsCaseInsensitive(t *testing.T) {
	e := New(Opts{ExpiredKeywords: []string{"Sold Out", " "}})
	html := page(row{title: "[Amazon] SOLD OUT headphones"}, row{title: "[Amazon] 품절 keyboard"})

	got := titles(e.Extract(html, true))
	want := []string{"[Amazon] 품절 keyboard"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("titles = %v, want %v", got, want)
	}
}

func TestIsExpired(t *testing.T) {
	e := New(Opts{})
	tests := []struct {
		title string
		want  bool
	}{
		{"", false},
		{"[G마켓] 라면", false},
		{"[G마켓] 라면 (품절)", true},
		{"조기마감", true},
	}
	for _, tt := range tests {
		if got := e.IsExpired(tt.title); got != tt.want {
			t.Errorf("IsExpired(%q) = %v, want %v", tt.title, got, tt.want)
		}
	}
}

func TestExtract_Views(t *testing.T) {
	tests := []struct {
		name  string
		views string
		want  int
	}{
		{"missing element", "", 0},
		{"thousands separators", "12,345", 12345},
		{"with label", "조회 1,234,567", 1234567},
		{"plain", "980", 980},
		// Unparseable counts silently default to zero.
		{"no digits", "조회 -", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deals := New(Opts{}).Extract(page(row{title: "t", views: tt.views}), false)
			if len(deals) != 1 {
				t.Fatalf("expected 1 deal, got %d", len(deals))
			}
			if deals[0].Views != tt.want {
				t.Errorf("Views = %d, want %d", deals[0].Views, tt.want)
			}
		})
	}
}

func TestExtract_Recommend(t *testing.T) {
	tests := []struct {
		recomd string
		want   int
	}{
		{"", 0},
		{"추천 34", 34},
		{"12 / 3", 12},
		// Unparseable counts silently default to zero.
		{"추천 많음", 0},
		{"99999999999999999999999", 0},
	}
	for _, tt := range tests {
		deals := New(Opts{}).Extract(page(row{title: "t", recomd: tt.recomd}), false)
		if len(deals) != 1 {
			t.Fatalf("recomd %q: expected 1 deal, got %d", tt.recomd, len(deals))
		}
		if deals[0].Recommend != tt.want {
			t.Errorf("recomd %q: Recommend = %d, want %d", tt.recomd, deals[0].Recommend, tt.want)
		}
	}
}

func TestExtract_Category(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"[할인]", "할인"},
		{"  [할인]  ", "할인"},
		{"[[이벤트]]", "이벤트"},
		{"무브라켓", "무브라켓"},
		{"", ""},
	}
	for _, tt := range tests {
		deals := New(Opts{}).Extract(page(row{title: "t", category: tt.in}), false)
		if len(deals) != 1 {
			t.Fatalf("category %q: expected 1 deal, got %d", tt.in, len(deals))
		}
		if deals[0].Category != tt.want {
			t.Errorf("category %q: got %q, want %q", tt.in, deals[0].Category, tt.want)
		}
	}
}

func TestExtract_MissingTitleAnchor(t *testing.T) {
	deals := New(Opts{}).Extract(page(row{writer: "작성자", views: "10"}), true)
	if len(deals) != 1 {
		t.Fatalf("expected 1 deal, got %d", len(deals))
	}

	d := deals[0]
	if d.Title != "" || d.Link != "" || d.HasImage {
		t.Errorf("expected empty title fields, got %+v", d)
	}
	if d.Writer != "작성자" || d.Views != 10 {
		t.Errorf("other fields not extracted: %+v", d)
	}
}

func TestExtract_ImageFlag(t *testing.T) {
	deals := New(Opts{}).Extract(page(
		row{title: "with picture", image: true},
		row{title: "without picture"},
	), false)

	if len(deals) != 2 {
		t.Fatalf("expected 2 deals, got %d", len(deals))
	}
	if !deals[0].HasImage || deals[1].HasImage {
		t.Errorf("HasImage = %v, %v", deals[0].HasImage, deals[1].HasImage)
	}
}

func TestExtract_SkipsFaultyRow(t *testing.T) {
	log := &recordingLogger{}
	e := New(Opts{Logger: log})

	html := page(
		row{title: "row 1", replies: "1"},
		row{title: "row 2", replies: "2"},
		row{title: "row 3", replies: "많음"},
		row{title: "row 4", replies: "4"},
		row{title: "row 5"},
	)

	deals := e.Extract(html, false)

	got := titles(deals)
	want := []string{"row 1", "row 2", "row 4", "row 5"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("titles = %v, want %v", got, want)
	}
	if deals[2].Replies != 4 {
		t.Errorf("row after the fault: Replies = %d, want 4", deals[2].Replies)
	}
	if len(log.warns) != 1 {
		t.Errorf("expected 1 warning for the faulty row, got %d", len(log.warns))
	}
}

func TestExtract_NegativeReplyCountIsAFault(t *testing.T) {
	log := &recordingLogger{}
	e := New(Opts{Logger: log})

	deals := e.Extract(page(
		row{title: "ok", replies: "3"},
		row{title: "negative", replies: "-3"},
	), false)

	if got := titles(deals); !reflect.DeepEqual(got, []string{"ok"}) {
		t.Errorf("titles = %v, want [ok]", got)
	}
	if len(log.warns) != 1 {
		t.Errorf("expected 1 warning, got %d", len(log.warns))
	}
}

func TestExtract_ExactClassMarkers(t *testing.T) {
	html := `<table><tbody>
<tr class="table_body default_list blocktarget"><td>
  <a class="subject_link deco" href="/read/1">normal</a>
  <span class="writer text_over">작성자</span>
</td></tr>
<tr class="table_body  default_list
  blocktarget"><td><a class="subject_link deco" href="/read/2">spaced</a></td></tr>
<tr class="table_body default_list blocktarget notice"><td>
  <a class="subject_link deco" href="/read/3">superset</a>
</td></tr>
<tr class="blocktarget table_body default_list"><td>
  <a class="subject_link deco" href="/read/4">reordered</a>
</td></tr>
<tr class="table_body default_list blocktarget"><td>
  <a class="subject_link deco ad" href="/read/5">anchor with extra class</a>
  <span class="writer text_over nick">광고</span>
</td></tr>
</tbody></table>`

	deals := New(Opts{}).Extract(html, false)

	if len(deals) != 3 {
		t.Fatalf("expected 3 rows, got %d: %v", len(deals), titles(deals))
	}

	want := []domain.HotDeal{
		{Title: "normal", Link: "/read/1", Writer: "작성자"},
		{Title: "spaced", Link: "/read/2"},
		{},
	}
	if !reflect.DeepEqual(deals, want) {
		t.Errorf("deals mismatch\n got: %+v\nwant: %+v", deals, want)
	}
}

func TestExtract_ExpiredRowIsNotAFault(t *testing.T) {
	log := &recordingLogger{}
	e := New(Opts{Logger: log})

	deals := e.Extract(page(row{title: "품절 딜", replies: "x"}), true)

	if len(deals) != 0 {
		t.Errorf("expected expired row to be dropped, got %v", titles(deals))
	}
	if len(log.warns) != 0 {
		t.Errorf("filtered rows should not be logged as faults, got %v", log.warns)
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	inputs := map[string]string{
		"empty":        "",
		"no rows":      `<html><body><p>점검 중입니다</p></body></html>`,
		"other table":  `<table><tr class="table_body notice"><td>공지</td></tr></table>`,
		"not markup":   "<<<>>> {\"json\": true}",
		"unclosed doc": `<html><body><table><tr class="table_body default_list`,
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			deals := New(Opts{}).Extract(in, true)
			if deals == nil {
				t.Fatal("expected empty slice, got nil")
			}
			if len(deals) != 0 {
				t.Errorf("expected no deals, got %d", len(deals))
			}
		})
	}
}

func TestExtract_Idempotent(t *testing.T) {
	e := New(Opts{})
	html := loadFixture(t)

	for _, exclude := range []bool{true, false} {
		a := e.Extract(html, exclude)
		b := e.Extract(html, exclude)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("excludeExpired=%v: results differ between calls", exclude)
		}
	}
}

func TestExtract_Concurrent(t *testing.T) {
	e := New(Opts{})
	html := loadFixture(t)
	want := e.Extract(html, true)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := e.Extract(html, true); !reflect.DeepEqual(got, want) {
				t.Error("concurrent extraction returned a different result")
			}
		}()
	}
	wg.Wait()
}

func TestDefaultExpiredKeywords_ReturnsCopy(t *testing.T) {
	k := DefaultExpiredKeywords()
	k[0] = "changed"

	if DefaultExpiredKeywords()[0] != "품절" {
		t.Error("mutating the returned slice changed the defaults")
	}
}
