package ruliweb

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/wapj/mcp-test/internal/domain"
	"github.com/wapj/mcp-test/pkg/logger"
	"golang.org/x/net/html"
)

// Multi-class markers must equal the whole class attribute; extra or
// reordered classes belong to other table rows and anchors.
const (
	rowTag      = "tr"
	rowClass    = "table_body default_list blocktarget"
	titleTag    = "a"
	titleClass  = "subject_link deco"
	writerTag   = "span"
	writerClass = "writer text_over"
)

const (
	categorySelector  = "a.cate_label"
	imageIconSelector = "i.icon-picture"
	recommendSelector = `span[class*="recomd"]`
	replySelector     = `span[class*="replycount"]`
	replyNumSelector  = "span.num"
	hitSelector       = `span[class*="hit"]`
	timeSelector      = "span.time"
	memberSelector    = "input.member_srl"
)

var digitsRegex = regexp.MustCompile(`\d+`)

// errExpired is not a fault: the row was filtered on purpose.
var errExpired = errors.New("deal expired")

type Opts struct {
	// ExpiredKeywords defaults to DefaultExpiredKeywords when empty.
	ExpiredKeywords []string
	Logger          logger.Logger
}

// Extractor turns the hot deal board's listing page into records.
// It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	keywords []string
	logger   logger.Logger
}

func New(opts Opts) *Extractor {
	keywords := opts.ExpiredKeywords
	if len(keywords) == 0 {
		keywords = defaultExpiredKeywords
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	return &Extractor{
		keywords: normalizeKeywords(keywords),
		logger:   log.WithComponent("RuliwebExtractor"),
	}
}

// IsExpired reports whether the title contains any expiration keyword.
// Matching is case-insensitive and substring based, so a keyword inside a
// longer word also counts.
func (e *Extractor) IsExpired(title string) bool {
	if title == "" {
		return false
	}

	lower := strings.ToLower(title)
	for _, k := range e.keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// Extract returns the listing rows found in htmlContent in document order.
// A row that cannot be extracted is logged and skipped; the result is never nil.
func (e *Extractor) Extract(htmlContent string, excludeExpired bool) []domain.HotDeal {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		e.logger.Warn("Failed to parse listing markup", "error", err)
		return []domain.HotDeal{}
	}

	rows := withClass(doc.Find(rowTag), rowClass)
	deals := make([]domain.HotDeal, 0, rows.Length())

	rows.Each(func(i int, row *goquery.Selection) {
		deal, err := e.extractRow(i, row, excludeExpired)
		if err != nil {
			if !errors.Is(err, errExpired) {
				e.logger.Warn("Failed to parse listing row, skipping", "row", i, "error", err)
			}
			return
		}
		deals = append(deals, deal)
	})

	e.logger.Debug("Extracted listing", "rows", rows.Length(), "deals", len(deals), "exclude_expired", excludeExpired)
	return deals
}

func (e *Extractor) extractRow(i int, row *goquery.Selection, excludeExpired bool) (deal domain.HotDeal, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ExtractionFault{Row: i, Field: "row", Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if category := first(row, categorySelector); category != nil {
		deal.Category = strings.Trim(strippedText(category), "[]")
	}

	title := firstWithClass(row, titleTag, titleClass)
	if title != nil {
		deal.Title = strippedText(title)
		deal.Link = title.AttrOr("href", "")
	}

	if excludeExpired && e.IsExpired(deal.Title) {
		return domain.HotDeal{}, errExpired
	}

	if title != nil {
		deal.HasImage = first(title, imageIconSelector) != nil
	}

	if recommend := first(row, recommendSelector); recommend != nil {
		deal.Recommend = firstNumber(strippedText(recommend))
	}

	if reply := first(row, replySelector); reply != nil {
		if num := first(reply, replyNumSelector); num != nil {
			n, err := strconv.Atoi(strippedText(num))
			if err != nil {
				return domain.HotDeal{}, &ExtractionFault{Row: i, Field: "replies", Err: err}
			}
			if n < 0 {
				return domain.HotDeal{}, &ExtractionFault{Row: i, Field: "replies", Err: fmt.Errorf("negative count %d", n)}
			}
			deal.Replies = n
		}
	}

	if hit := first(row, hitSelector); hit != nil {
		deal.Views = firstNumber(strings.ReplaceAll(strippedText(hit), ",", ""))
	}

	if t := first(row, timeSelector); t != nil {
		deal.Time = strippedText(t)
	}

	if writer := firstWithClass(row, writerTag, writerClass); writer != nil {
		deal.Writer = strippedText(writer)
	}

	if member := first(row, memberSelector); member != nil {
		deal.MemberID = member.AttrOr("value", "")
	}

	return deal, nil
}

// first returns the first descendant matching selector, or nil when there is none.
func first(s *goquery.Selection, selector string) *goquery.Selection {
	found := s.Find(selector).First()
	if found.Length() == 0 {
		return nil
	}
	return found
}

// withClass keeps the elements whose class attribute, with whitespace
// collapsed, is exactly class.
func withClass(s *goquery.Selection, class string) *goquery.Selection {
	return s.FilterFunction(func(_ int, el *goquery.Selection) bool {
		attr, ok := el.Attr("class")
		return ok && strings.Join(strings.Fields(attr), " ") == class
	})
}

// firstWithClass is first for an exact multi-class marker.
func firstWithClass(s *goquery.Selection, tag, class string) *goquery.Selection {
	found := withClass(s.Find(tag), class).First()
	if found.Length() == 0 {
		return nil
	}
	return found
}

// firstNumber parses the first run of digits in text. Text without digits,
// or a run too large for int, yields 0.
func firstNumber(text string) int {
	m := digitsRegex.FindString(text)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// strippedText concatenates every descendant text node, each trimmed of
// surrounding whitespace.
func strippedText(s *goquery.Selection) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(strings.TrimSpace(n.Data))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return sb.String()
}
