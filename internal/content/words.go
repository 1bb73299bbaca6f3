package content

import "wordrobe/internal/models"

// extraWords feeds vocabulary levels that have no curated list. Each word is
// tagged with the level it belongs to.
var extraWords = []models.VocabWord{
	{Korean: "의자", English: "chair", Level: 6},
	{Korean: "창문", English: "window", Level: 6},
	{Korean: "연필", English: "pencil", Level: 6},
	{Korean: "시계", English: "clock", Level: 6},
	{Korean: "우산", English: "umbrella", Level: 6},
	{Korean: "거울", English: "mirror", Level: 6},
	{Korean: "의사", English: "doctor", Level: 7},
	{Korean: "가수", English: "singer", Level: 7},
	{Korean: "농부", English: "farmer", Level: 7},
	{Korean: "경찰", English: "police", Level: 7},
	{Korean: "요리사", English: "cook", Level: 7},
	{Korean: "비행기", English: "airplane", Level: 8},
	{Korean: "기차", English: "train", Level: 8},
	{Korean: "자전거", English: "bicycle", Level: 8},
	{Korean: "배", English: "ship", Level: 8},
	{Korean: "택시", English: "taxi", Level: 8},
	{Korean: "봄", English: "spring", Level: 9},
	{Korean: "여름", English: "summer", Level: 9},
	{Korean: "가을", English: "autumn", Level: 9},
	{Korean: "겨울", English: "winter", Level: 9},
	{Korean: "날씨", English: "weather", Level: 9},
	{Korean: "도서관", English: "library", Level: 10},
	{Korean: "병원", English: "hospital", Level: 10},
	{Korean: "박물관", English: "museum", Level: 10},
	{Korean: "공원", English: "park", Level: 10},
	{Korean: "시장", English: "market", Level: 10},
	{Korean: "학교", English: "school", Level: 10},
}
