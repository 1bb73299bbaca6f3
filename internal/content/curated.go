package content

import "wordrobe/internal/models"

// curatedLevels are the hand-picked sentence levels 1-10
var curatedLevels = []models.Level{
	{
		ID:          1,
		Description: "Level 1: Basic Greetings & Introductions",
		Sentences: []models.Sentence{
			{Korean: "나는 학생입니다.", English: []string{"I", "am", "a", "student"}},
			{Korean: "만나서 반가워요 :)", English: []string{"Nice", "to", "meet", "you"}},
			{Korean: "이것은 사과입니다.", English: []string{"This", "is", "an", "apple"}},
			{Korean: "안녕하세요!", English: []string{"Hello"}},
			{Korean: "저는 김민수입니다.", English: []string{"I", "am", "Minsu", "Kim"}},
			{Korean: "오늘은 좋은 날입니다.", English: []string{"Today", "is", "a", "good", "day"}},
			{Korean: "고맙습니다.", English: []string{"Thank", "you"}},
			{Korean: "실례합니다.", English: []string{"Excuse", "me"}},
			{Korean: "미안합니다.", English: []string{"I", "am", "sorry"}},
			{Korean: "안녕히 가세요.", English: []string{"Goodbye"}},
		},
	},
	{
		ID:          2,
		Description: "Level 2: Simple Actions",
		Sentences: []models.Sentence{
			{Korean: "그녀는 책을 읽습니다.", English: []string{"She", "reads", "a", "book"}},
			{Korean: "우리는 학교에 갑니다.", English: []string{"We", "go", "to", "school"}},
			{Korean: "그는 피자를 좋아합니다.", English: []string{"He", "likes", "pizza"}},
			{Korean: "나는 물을 마십니다.", English: []string{"I", "drink", "water"}},
			{Korean: "그들은 축구를 합니다.", English: []string{"They", "play", "soccer"}},
			{Korean: "고양이가 잡니다.", English: []string{"The", "cat", "sleeps"}},
			{Korean: "선생님이 가르칩니다.", English: []string{"The", "teacher", "teaches"}},
			{Korean: "나는 음악을 듣습니다.", English: []string{"I", "listen", "to", "music"}},
			{Korean: "그녀는 춤을 춥니다.", English: []string{"She", "dances"}},
			{Korean: "우리는 점심을 먹습니다.", English: []string{"We", "eat", "lunch"}},
		},
	},
	{
		ID:          3,
		Description: "Level 3: Questions",
		Sentences: []models.Sentence{
			{Korean: "지금 몇 시인가요?", English: []string{"What", "time", "is", "it", "now"}},
			{Korean: "어디에 사시나요?", English: []string{"Where", "do", "you", "live"}},
			{Korean: "영어를 할 수 있나요?", English: []string{"Can", "you", "speak", "English"}},
			{Korean: "이름이 무엇인가요?", English: []string{"What", "is", "your", "name"}},
			{Korean: "얼마나 오래 걸리나요?", English: []string{"How", "long", "does", "it", "take"}},
			{Korean: "누구와 함께 가나요?", English: []string{"Who", "are", "you", "going", "with"}},
			{Korean: "왜 늦었나요?", English: []string{"Why", "are", "you", "late"}},
			{Korean: "어떻게 지내세요?", English: []string{"How", "are", "you"}},
			{Korean: "언제 출발하나요?", English: []string{"When", "do", "you", "leave"}},
			{Korean: "어느 것을 선택하시겠어요?", English: []string{"Which", "one", "will", "you", "choose"}},
		},
	},
	{
		ID:          4,
		Description: "Level 4: Past Tense",
		Sentences: []models.Sentence{
			{Korean: "나는 어제 공부를 했습니다.", English: []string{"I", "studied", "yesterday"}},
			{Korean: "그들은 공원에 갔습니다.", English: []string{"They", "went", "to", "the", "park"}},
			{Korean: "그녀는 행복했습니다.", English: []string{"She", "was", "happy"}},
			{Korean: "우리는 영화를 봤습니다.", English: []string{"We", "watched", "a", "movie"}},
			{Korean: "그는 친구를 만났습니다.", English: []string{"He", "met", "his", "friend"}},
			{Korean: "나는 아침을 먹었습니다.", English: []string{"I", "ate", "breakfast"}},
			{Korean: "비가 왔습니다.", English: []string{"It", "rained"}},
			{Korean: "그들은 노래를 불렀습니다.", English: []string{"They", "sang", "a", "song"}},
			{Korean: "나는 집에 있었습니다.", English: []string{"I", "was", "at", "home"}},
			{Korean: "그녀는 책을 샀습니다.", English: []string{"She", "bought", "a", "book"}},
		},
	},
	{
		ID:          5,
		Description: "Level 5: Complex Sentences",
		Sentences: []models.Sentence{
			{Korean: "비가 와서 나는 집에 있었습니다.", English: []string{"I", "stayed", "home", "because", "it", "rained"}},
			{Korean: "내가 가장 좋아하는 색은 파란색입니다.", English: []string{"My", "favorite", "color", "is", "blue"}},
			{Korean: "내일 친구를 만날 것입니다.", English: []string{"I", "will", "meet", "my", "friend", "tomorrow"}},
			{Korean: "나는 피곤해서 일찍 잤습니다.", English: []string{"I", "went", "to", "bed", "early", "because", "I", "was", "tired"}},
			{Korean: "그는 운동을 좋아하지만 게으릅니다.", English: []string{"He", "likes", "sports", "but", "he", "is", "lazy"}},
			{Korean: "우리는 한국어와 영어를 배웁니다.", English: []string{"We", "learn", "Korean", "and", "English"}},
			{Korean: "나는 의사가 되고 싶습니다.", English: []string{"I", "want", "to", "be", "a", "doctor"}},
			{Korean: "그녀는 노래를 잘 부릅니다.", English: []string{"She", "sings", "very", "well"}},
			{Korean: "날씨가 좋으면 산책할 거예요.", English: []string{"If", "the", "weather", "is", "nice", "I", "will", "take", "a", "walk"}},
			{Korean: "나는 책을 읽는 것을 좋아합니다.", English: []string{"I", "like", "reading", "books"}},
		},
	},
	{
		ID:          6,
		Description: "Level 6: Daily Conversations",
		Sentences: []models.Sentence{
			{Korean: "저는 매일 아침 7시에 일어납니다.", English: []string{"I", "wake", "up", "at", "seven", "every", "morning"}},
			{Korean: "학교까지 걸어서 20분 걸립니다.", English: []string{"It", "takes", "twenty", "minutes", "to", "walk", "to", "school"}},
			{Korean: "주말에 보통 무엇을 하나요?", English: []string{"What", "do", "you", "usually", "do", "on", "weekends"}},
			{Korean: "저는 수학을 공부하고 있습니다.", English: []string{"I", "am", "studying", "math"}},
			{Korean: "오늘 날씨가 정말 좋네요.", English: []string{"The", "weather", "is", "really", "nice", "today"}},
			{Korean: "점심으로 무엇을 먹을까요?", English: []string{"What", "should", "we", "eat", "for", "lunch"}},
			{Korean: "저는 커피보다 차를 더 좋아합니다.", English: []string{"I", "prefer", "tea", "to", "coffee"}},
			{Korean: "숙제를 다 끝냈어요.", English: []string{"I", "have", "finished", "my", "homework"}},
			{Korean: "내일 시험이 있습니다.", English: []string{"I", "have", "a", "test", "tomorrow"}},
			{Korean: "지금 바쁜가요?", English: []string{"Are", "you", "busy", "now"}},
		},
	},
	{
		ID:          7,
		Description: "Level 7: Expressing Opinions",
		Sentences: []models.Sentence{
			{Korean: "제 생각에는 그게 좋은 아이디어입니다.", English: []string{"I", "think", "that", "is", "a", "good", "idea"}},
			{Korean: "저는 그 영화가 재미있다고 생각합니다.", English: []string{"I", "think", "the", "movie", "is", "interesting"}},
			{Korean: "스포츠를 하는 것은 건강에 좋습니다.", English: []string{"Playing", "sports", "is", "good", "for", "your", "health"}},
			{Korean: "저는 여행을 정말 좋아합니다.", English: []string{"I", "really", "love", "traveling"}},
			{Korean: "공부하는 것이 때때로 어렵습니다.", English: []string{"Studying", "is", "sometimes", "difficult"}},
			{Korean: "제 꿈은 과학자가 되는 것입니다.", English: []string{"My", "dream", "is", "to", "become", "a", "scientist"}},
			{Korean: "독서는 재미있고 유익합니다.", English: []string{"Reading", "is", "fun", "and", "useful"}},
			{Korean: "운동을 매일 해야 한다고 생각합니다.", English: []string{"I", "think", "we", "should", "exercise", "every", "day"}},
			{Korean: "저는 그것에 동의하지 않습니다.", English: []string{"I", "do", "not", "agree", "with", "that"}},
			{Korean: "음악은 우리 삶을 풍요롭게 합니다.", English: []string{"Music", "enriches", "our", "lives"}},
		},
	},
	{
		ID:          8,
		Description: "Level 8: Making Plans",
		Sentences: []models.Sentence{
			{Korean: "이번 주말에 영화 보러 갈까요?", English: []string{"Shall", "we", "go", "to", "the", "movies", "this", "weekend"}},
			{Korean: "저는 내년에 대학에 갈 계획입니다.", English: []string{"I", "plan", "to", "go", "to", "college", "next", "year"}},
			{Korean: "방학 때 여행을 가고 싶습니다.", English: []string{"I", "want", "to", "travel", "during", "vacation"}},
			{Korean: "오후 3시에 만나는 게 어때요?", English: []string{"How", "about", "meeting", "at", "three", "in", "the", "afternoon"}},
			{Korean: "저는 저녁에 친구들과 저녁을 먹을 겁니다.", English: []string{"I", "will", "have", "dinner", "with", "my", "friends", "tonight"}},
			{Korean: "다음 달에 생일 파티를 열 거예요.", English: []string{"I", "will", "have", "a", "birthday", "party", "next", "month"}},
			{Korean: "우리 같이 공부하면 어떨까요?", English: []string{"Why", "don't", "we", "study", "together"}},
			{Korean: "저는 매주 토요일에 수영을 하러 갑니다.", English: []string{"I", "go", "swimming", "every", "Saturday"}},
			{Korean: "여름에 캠핑을 가고 싶어요.", English: []string{"I", "want", "to", "go", "camping", "in", "summer"}},
			{Korean: "내일 몇 시에 만날까요?", English: []string{"What", "time", "shall", "we", "meet", "tomorrow"}},
		},
	},
	{
		ID:          9,
		Description: "Level 9: Describing Experiences",
		Sentences: []models.Sentence{
			{Korean: "저는 지난주에 서울에 다녀왔습니다.", English: []string{"I", "went", "to", "Seoul", "last", "week"}},
			{Korean: "그 경험은 정말 잊을 수 없어요.", English: []string{"That", "experience", "was", "really", "unforgettable"}},
			{Korean: "저는 아직 그곳에 가본 적이 없습니다.", English: []string{"I", "have", "never", "been", "there", "before"}},
			{Korean: "작년에 일본을 방문했을 때 정말 즐거웠습니다.", English: []string{"I", "really", "enjoyed", "when", "I", "visited", "Japan", "last", "year"}},
			{Korean: "그 영화를 이미 세 번 봤어요.", English: []string{"I", "have", "already", "watched", "that", "movie", "three", "times"}},
			{Korean: "저는 어렸을 때 피아노를 배웠습니다.", English: []string{"I", "learned", "to", "play", "the", "piano", "when", "I", "was", "young"}},
			{Korean: "그것은 제 인생에서 가장 행복한 날이었습니다.", English: []string{"It", "was", "the", "happiest", "day", "of", "my", "life"}},
			{Korean: "저는 그 책을 읽은 후로 많이 변했습니다.", English: []string{"I", "have", "changed", "a", "lot", "since", "I", "read", "that", "book"}},
			{Korean: "우리는 박물관에서 놀라운 것들을 봤습니다.", English: []string{"We", "saw", "amazing", "things", "at", "the", "museum"}},
			{Korean: "저는 그들을 5년 동안 알고 지냈습니다.", English: []string{"I", "have", "known", "them", "for", "five", "years"}},
		},
	},
	{
		ID:          10,
		Description: "Level 10: Advanced Expressions",
		Sentences: []models.Sentence{
			{Korean: "만약 내가 더 열심히 공부했다면 시험에 합격했을 것입니다.", English: []string{"If", "I", "had", "studied", "harder", "I", "would", "have", "passed", "the", "exam"}},
			{Korean: "환경을 보호하는 것은 우리 모두의 책임입니다.", English: []string{"Protecting", "the", "environment", "is", "everyone's", "responsibility"}},
			{Korean: "기술의 발전은 우리 삶을 크게 변화시켰습니다.", English: []string{"Technological", "advancement", "has", "greatly", "changed", "our", "lives"}},
			{Korean: "저는 그가 정직한 사람이라고 믿습니다.", English: []string{"I", "believe", "that", "he", "is", "an", "honest", "person"}},
			{Korean: "노력 없이는 성공할 수 없습니다.", English: []string{"You", "cannot", "succeed", "without", "effort"}},
			{Korean: "그녀는 영어를 유창하게 구사합니다.", English: []string{"She", "speaks", "English", "fluently"}},
			{Korean: "저는 다른 문화를 배우는 것에 관심이 있습니다.", English: []string{"I", "am", "interested", "in", "learning", "about", "different", "cultures"}},
			{Korean: "건강한 식습관을 유지하는 것이 중요합니다.", English: []string{"It", "is", "important", "to", "maintain", "healthy", "eating", "habits"}},
			{Korean: "저는 미래에 대해 낙관적입니다.", English: []string{"I", "am", "optimistic", "about", "the", "future"}},
			{Korean: "교육은 성공의 열쇠입니다.", English: []string{"Education", "is", "the", "key", "to", "success"}},
		},
	},
}

// curatedVocabLevels are the hand-picked vocabulary levels 1-5
var curatedVocabLevels = []models.VocabLevel{
	{
		ID:          1,
		Description: "Level 1: 3-Letter Words",
		Words: []models.VocabWord{
			{Korean: "개", English: "dog", Level: 1},
			{Korean: "고양이", English: "cat", Level: 1},
			{Korean: "버스", English: "bus", Level: 1},
			{Korean: "해", English: "sun", Level: 1},
			{Korean: "자물쇠", English: "key", Level: 1},
		},
	},
	{
		ID:          2,
		Description: "Level 2: 4-Letter Words",
		Words: []models.VocabWord{
			{Korean: "책", English: "book", Level: 2},
			{Korean: "나무", English: "tree", Level: 2},
			{Korean: "오리", English: "duck", Level: 2},
			{Korean: "사자", English: "lion", Level: 2},
			{Korean: "별", English: "star", Level: 2},
		},
	},
	{
		ID:          3,
		Description: "Level 3: 5-Letter Words",
		Words: []models.VocabWord{
			{Korean: "사과", English: "apple", Level: 3},
			{Korean: "물", English: "water", Level: 3},
			{Korean: "집", English: "house", Level: 3},
			{Korean: "빵", English: "bread", Level: 3},
			{Korean: "초록색", English: "green", Level: 3},
		},
	},
	{
		ID:          4,
		Description: "Level 4: Animals",
		Words: []models.VocabWord{
			{Korean: "호랑이", English: "tiger", Level: 4},
			{Korean: "얼룩말", English: "zebra", Level: 4},
			{Korean: "원숭이", English: "monkey", Level: 4},
			{Korean: "토끼", English: "rabbit", Level: 4},
			{Korean: "판다", English: "panda", Level: 4},
		},
	},
	{
		ID:          5,
		Description: "Level 5: Fruits",
		Words: []models.VocabWord{
			{Korean: "바나나", English: "banana", Level: 5},
			{Korean: "포도", English: "grape", Level: 5},
			{Korean: "오렌지", English: "orange", Level: 5},
			{Korean: "레몬", English: "lemon", Level: 5},
			{Korean: "복숭아", English: "peach", Level: 5},
		},
	},
}
