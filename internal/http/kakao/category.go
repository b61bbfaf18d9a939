package kakao

import "strings"

// ConnectMate activity categories.
const (
	CategorySports    = "운동"
	CategoryOutdoor   = "야외활동"
	CategoryStudy     = "스터디"
	CategoryCulture   = "문화"
	CategorySocial    = "소셜"
	CategoryFood      = "맛집"
	CategoryTravel    = "여행"
	CategoryGame      = "게임"
	CategoryHobby     = "취미"
	CategoryVolunteer = "봉사"
	CategoryOther     = "기타"
)

// categoryRules is checked in order; the first rule with a matching keyword wins.
var categoryRules = []struct {
	category string
	keywords []string
}{
	{CategorySports, []string{"운동", "체육", "헬스", "fitness", "gym", "스포츠", "요가", "필라테스", "수영", "볼링", "당구", "골프"}},
	{CategoryOutdoor, []string{"공원", "park", "자연", "등산", "캠핑", "산", "강", "바다", "해변", "낚시", "야외"}},
	{CategoryStudy, []string{"학교", "교육", "학원", "도서관", "library", "서점", "독서실", "스터디", "study"}},
	{CategoryCulture, []string{"문화", "예술", "미술관", "박물관", "museum", "gallery", "영화", "theater", "극장", "공연", "전시"}},
	{CategoryFood, []string{"음식점", "restaurant", "카페", "cafe", "디저트", "dessert", "베이커리", "주점", "술집", "bar", "한식", "중식", "일식", "양식", "분식"}},
	{CategoryTravel, []string{"숙박", "호텔", "hotel", "모텔", "펜션", "리조트", "게스트하우스", "관광", "여행", "tourist", "명소"}},
	{CategoryGame, []string{"게임", "game", "pc방", "오락", "vr", "플레이스테이션", "노래방", "karaoke", "방탈출"}},
	{CategoryHobby, []string{"취미", "hobby", "공방", "workshop", "클래스", "만들기", "수제", "도예", "그림", "음악", "댄스", "dance"}},
	{CategoryVolunteer, []string{"봉사", "volunteer", "복지", "자원봉사", "기부", "나눔", "charity", "welfare"}},
	{CategorySocial, []string{"커뮤니티", "community", "모임", "meeting", "동호회", "club", "파티", "party", "이벤트"}},
}

// MapCategory maps a Kakao category path such as "음식점 > 카페" to an
// activity category, defaulting to CategoryOther.
func MapCategory(kakaoCategory string) string {
	lower := strings.ToLower(kakaoCategory)
	if lower == "" {
		return CategoryOther
	}
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}
