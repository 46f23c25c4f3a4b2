package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const hotdealAnalysisTemplate = `핫딜 정보를 분석하고 구매 가이드를 제공해주세요:

%s

분석 포인트:
- 할인율과 실제 절약 금액
- 제품/서비스의 품질과 브랜드 신뢰도
- 구매 시기의 적절성 (계절성, 필요성)
- 숨겨진 비용이나 조건 확인
- 유사 상품 대비 경쟁력

가이드 형식:
🔥 핫딜 점수: [10점 만점]
💸 절약 금액: [실제 절약되는 금액]
✅ 구매 추천도:
   - 강추 😍 / 추천 👍 / 보통 😐 / 비추 👎
⏰ 구매 타이밍: [지금/나중에/패스]
🎯 추천 대상: [어떤 사람에게 적합한지]
⚠️ 주의사항: [구매 전 체크사항]

쇼핑 전문가처럼 꼼꼼하고 재미있게 분석해주세요!`

const todayBriefingTemplate = `첫번째로 get_kbo_rank() 도구를 사용하여 오늘자 야구단 랭킹을 가져옵니다.

두번째로 search_google_news() 도구를 사용하여 오늘자 주요뉴스를 검색하여 가져옵니다.

세번째로 get_hot_deal_info() 도구를 사용하여 핫딜 정보를 가져옵니다.

네번째로 Atlassian의 Jira를 사용하여 나에게 할당된 이슈들 중 POC 혹은 TODO, Development 단계에 있는 일감을 가져와서 알려주세요.

마지막으로 구글 캘린더에서 저의 하루 일정을 보고 일할 수 있는 시간표를 작성해주세요.
할당된 지라이슈를 보고 대략의 업무일정을 작성해주세요. 뽀모도로 기법을 사용합니다.
일하는 시간은 오전 9시 30분 ~ 19시이며 12시부터 13시 30분사이는 점심시간입니다.

출력은 다음과 같이 해주세요.

Output
# %s님을 위한 맞춤 요약

### 야구단 랭킹
[야구단 랭킹정보]

### 오늘자 주요 뉴스
[오늘자 주요 뉴스들] (링크를 함께 제공합니다)

### 오늘의 핫딜 정보
[오늘의 핫딜정보] (링크를 함께 제공합니다)

### 할당된 일감들
[지라에서 찾은 일감들]

### 오늘의 업무 일정
[업무일정]

### 힘을 주는 격언 한마디
[유머와 재치를 담아서 알아서 작성해주세요.]`

const echoPromptTemplate = "주어지는 메시지의 지시에 따르시오.\n메시지 : %s"

func (s *Server) registerPrompts() {
	s.mcp.AddPrompt(
		mcp.NewPrompt("echo",
			mcp.WithPromptDescription("주어진 메시지를 지시로 전달합니다."),
			mcp.WithArgument("message",
				mcp.ArgumentDescription("따를 지시 메시지"),
				mcp.RequiredArgument(),
			),
		),
		s.handleEchoPrompt,
	)

	s.mcp.AddPrompt(
		mcp.NewPrompt("hotdeal_analysis",
			mcp.WithPromptDescription("핫딜 정보를 분석하고 구매 가이드를 작성합니다."),
			mcp.WithArgument("deal_info",
				mcp.ArgumentDescription("분석할 핫딜 정보 (get_hot_deal_info 결과 등)"),
				mcp.RequiredArgument(),
			),
		),
		s.handleHotdealAnalysis,
	)

	s.mcp.AddPrompt(
		mcp.NewPrompt("today_briefing",
			mcp.WithPromptDescription("오늘 하루 브리핑을 위해 사용합니다. "+
				"'오늘 브리핑', '하루 요약', '일일 브리핑' 등의 키워드로 요청시 사용하세요."),
		),
		s.handleTodayBriefing,
	)
}

func (s *Server) handleEchoPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	message, ok := req.Params.Arguments["message"]
	if !ok {
		return nil, fmt.Errorf("message is required")
	}

	return mcp.NewGetPromptResult(
		"echo",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(fmt.Sprintf(echoPromptTemplate, message))),
		},
	), nil
}

func (s *Server) handleHotdealAnalysis(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	info := strings.TrimSpace(req.Params.Arguments["deal_info"])
	if info == "" {
		return nil, fmt.Errorf("deal_info is required")
	}

	return mcp.NewGetPromptResult(
		"핫딜 분석 가이드",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(fmt.Sprintf(hotdealAnalysisTemplate, info))),
		},
	), nil
}

func (s *Server) handleTodayBriefing(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return mcp.NewGetPromptResult(
		"오늘 하루 브리핑",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(fmt.Sprintf(todayBriefingTemplate, s.config.Briefing.UserName))),
		},
	), nil
}
