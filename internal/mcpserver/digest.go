package mcpserver

import (
	"fmt"
	"strings"

	"github.com/wapj/mcp-test/internal/domain"
	"github.com/wapj/mcp-test/pkg/formatter"
)

// renderDigest lists up to limit deals as a markdown bullet list.
// A non-positive limit lists every deal.
func renderDigest(deals []domain.HotDeal, limit int) string {
	if len(deals) == 0 {
		return "# 오늘의 핫딜\n\n진행 중인 핫딜이 없습니다.\n"
	}

	if limit > 0 && len(deals) > limit {
		deals = deals[:limit]
	}

	var sb strings.Builder
	sb.WriteString("# 오늘의 핫딜\n\n")
	for _, d := range deals {
		title := formatter.EscapeMarkdown(d.Title)
		if d.Link != "" {
			title = fmt.Sprintf("[%s](%s)", title, d.Link)
		}

		sb.WriteString("- ")
		if d.Category != "" {
			fmt.Fprintf(&sb, "`%s` ", d.Category)
		}
		sb.WriteString(title)
		if d.HasImage {
			sb.WriteString(" 🖼️")
		}
		fmt.Fprintf(&sb, " (추천 %s · 댓글 %s · 조회 %s",
			formatter.FormatNumber(d.Recommend),
			formatter.FormatNumber(d.Replies),
			formatter.FormatNumber(d.Views),
		)
		if d.Time != "" {
			fmt.Fprintf(&sb, " · %s", d.Time)
		}
		sb.WriteString(")\n")
	}
	return sb.String()
}
