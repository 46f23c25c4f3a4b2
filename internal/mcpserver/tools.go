package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/wapj/mcp-test/internal/lunch"
	apperrors "github.com/wapj/mcp-test/pkg/errors"
)

const briefingGuide = `today_briefing 프롬프트를 사용해서 오늘 하루 브리핑을 제공합니다.

다음 순서로 정보를 수집하고 정리합니다:
1. KBO 야구 랭킹 (get_kbo_rank)
2. 주요 뉴스 검색 (search_google_news)
3. 핫딜 정보 (get_hot_deal_info)
4. Jira 할당 이슈 확인
5. 구글 캘린더 일정 기반 업무 스케줄 작성

Claude Desktop 에서 'today_briefing 프롬프트 사용해서 오늘 브리핑해줘'라고 요청하세요.`

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("get_kbo_rank",
			mcp.WithDescription("한국 프로야구 구단의 랭킹을 가져오는 함수입니다."),
		),
		s.handleKboRank,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_hot_deal_info",
			mcp.WithDescription("루리웹 핫딜 정보를 가져옵니다. '핫딜' 이라는 키워드가 있을 때 사용하세요. "+
				"사용자가 상세정보를 알 수 있도록 링크도 함께 제공해주세요."),
			mcp.WithBoolean("exclude_expired",
				mcp.Description("품절, 종료된 상품을 제외하고 싶을 때 사용하는 플래그입니다. 기본값: true"),
				mcp.DefaultBool(true),
			),
		),
		s.handleHotDeals,
	)

	s.mcp.AddTool(
		mcp.NewTool("search_google_news",
			mcp.WithDescription("구글 뉴스에서 키워드 기반으로 뉴스를 검색합니다. '뉴스 검색'시 사용합니다. "+
				"'우리 회사 뉴스'를 찾아라고 하면 '"+s.config.News.DefaultKeyword+"'를 키워드로 뉴스를 검색해주세요. "+
				"사용자가 상세정보를 알 수 있도록 링크도 함께 제공해주세요."),
			mcp.WithString("keyword",
				mcp.Description("검색할 키워드. 기본값은 "+s.config.News.DefaultKeyword+" 입니다."),
				mcp.DefaultString(s.config.News.DefaultKeyword),
			),
			mcp.WithNumber("num_results",
				mcp.Description(fmt.Sprintf("반환할 뉴스 개수 (기본값: %d)", s.config.News.DefaultLimit)),
				mcp.DefaultNumber(float64(s.config.News.DefaultLimit)),
				mcp.Min(0),
			),
		),
		s.handleNewsSearch,
	)

	s.mcp.AddTool(
		mcp.NewTool("recommend_lunch_menu",
			mcp.WithDescription("점심 메뉴를 추천해주는 함수입니다. '점심', '메뉴', '추천' 키워드가 있을 때 사용하세요. "+
				"응답으로는 주어진 키워드에 따라 고려한 음식의 리스트를 알려주시고, 그중에 가장 추천하는 것 하나를 따로 알려주세요. "+
				"유머를 섞어서 응답해주시면 좋겠습니다."),
			mcp.WithString("cuisine_type",
				mcp.Description("음식 종류 (한식, 중식, 일식, 양식, 분식, 패스트푸드, random)"),
				mcp.DefaultString(lunch.RandomCuisine),
				mcp.Enum(append(s.lunch.Cuisines(), lunch.RandomCuisine)...),
			),
		),
		s.handleLunchMenu,
	)

	s.mcp.AddTool(
		mcp.NewTool("find_restaurants_near_pangyo",
			mcp.WithDescription("판교 근처에서 특정 메뉴를 파는 식당을 찾는 함수입니다. '식당', '판교', '맛집' 키워드가 있을 때 사용하세요."),
			mcp.WithString("menu",
				mcp.Required(),
				mcp.Description("찾고자 하는 메뉴 (예: 김치찌개, 짜장면, 라멘 등)"),
			),
			mcp.WithString("location",
				mcp.Description("지역 (기본값: 판교)"),
				mcp.DefaultString("판교"),
			),
		),
		s.handleRestaurants,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_today_briefing_guide",
			mcp.WithDescription("오늘 하루 브리핑을 요청하는 방법을 안내합니다. "+
				"'오늘 브리핑', '하루 요약', '일일 브리핑' 키워드가 있을 때 사용하세요."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText(briefingGuide), nil
		},
	)
}

func (s *Server) handleKboRank(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rank, err := s.kbo.GetRank(ctx)
	if err != nil {
		return s.toolError("KBO 랭킹을 가져오지 못했습니다", err), nil
	}
	return jsonResult(rank)
}

func (s *Server) handleHotDeals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	excludeExpired := req.GetBool("exclude_expired", true)

	deals, err := s.hotdeal.GetHotDeals(ctx, excludeExpired)
	if err != nil {
		return s.toolError("핫딜 정보를 가져오지 못했습니다", err), nil
	}
	return jsonResult(deals)
}

func (s *Server) handleNewsSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keyword := req.GetString("keyword", s.config.News.DefaultKeyword)
	limit := req.GetInt("num_results", s.config.News.DefaultLimit)

	articles, err := s.news.Search(ctx, keyword, limit)
	if err != nil {
		s.logger.Error("News search failed", "keyword", keyword, "error", err)
		res, _ := jsonResult([]map[string]string{
			{"error": fmt.Sprintf("뉴스 검색 중 오류가 발생했습니다: %v", err)},
		})
		res.IsError = true
		return res, nil
	}
	return jsonResult(articles)
}

func (s *Server) handleLunchMenu(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cuisine := req.GetString("cuisine_type", lunch.RandomCuisine)
	return jsonResult(s.lunch.Recommend(cuisine))
}

func (s *Server) handleRestaurants(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	menu, err := req.RequireString("menu")
	if err != nil || menu == "" {
		return mcp.NewToolResultError("menu 인자가 필요합니다"), nil
	}
	location := req.GetString("location", "판교")

	return jsonResult(s.lunch.FindRestaurants(menu, location))
}

// toolError reports a failed call to the model. Upstream trouble is expected
// now and then and only warned about; anything else is logged as an error.
func (s *Server) toolError(prefix string, err error) *mcp.CallToolResult {
	if apperrors.IsUpstream(err) {
		s.logger.Warn(prefix, "error", err)
	} else {
		s.logger.Error(prefix, "error", err)
	}

	if code := apperrors.GetCode(err); code != "" {
		return mcp.NewToolResultError(fmt.Sprintf("%s (HTTP %s): %v", prefix, code, err))
	}
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", prefix, err))
}
