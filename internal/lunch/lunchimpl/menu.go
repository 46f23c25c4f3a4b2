package lunchimpl

const randomLabel = "랜덤"

type cuisine struct {
	name   string
	dishes []string
}

var menu = []cuisine{
	{"한식", []string{"김치찌개", "된장찌개", "불고기", "비빔밥", "갈비탕", "삼겹살", "냉면", "나물밥", "백반", "순두부찌개"}},
	{"중식", []string{"짜장면", "짬뽕", "탕수육", "볶음밥", "마파두부", "깐풍기", "양장피", "유린기", "칠리새우", "고추잡채"}},
	{"일식", []string{"초밥", "라멘", "우동", "덮밥", "돈까스", "규동", "사시미", "야키니쿠", "오야코동", "가츠동"}},
	{"양식", []string{"파스타", "피자", "스테이크", "리조또", "샐러드", "햄버거", "오믈렛", "스프", "그라탱", "라자냐"}},
	{"분식", []string{"떡볶이", "순대", "튀김", "김밥", "라면", "어묵", "만두", "토스트", "핫도그", "붕어빵"}},
	{"패스트푸드", []string{"햄버거", "치킨", "피자", "샌드위치", "타코", "버리토", "케밥", "서브웨이", "감자튀김", "너겟"}},
}

func dishesOf(name string) ([]string, bool) {
	for _, c := range menu {
		if c.name == name {
			return c.dishes, true
		}
	}
	return nil, false
}

func allDishes() []string {
	var all []string
	for _, c := range menu {
		all = append(all, c.dishes...)
	}
	return all
}

func cuisineNames() []string {
	names := make([]string, 0, len(menu))
	for _, c := range menu {
		names = append(names, c.name)
	}
	return names
}
