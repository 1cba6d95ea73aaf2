package content

func init() {
	registerGapFilling()
	registerComprehension()
	registerSentenceFormation()
	registerParagraphWriting()
	registerPronunciation()
}

func registerGapFilling() {
	register("gap_filling", "A1", []Item{
		{Text: "I _____ breakfast at 8 a.m. My sister _____ tea, but I _____ coffee.", Answers: []string{"have", "drinks", "prefer"}},
		{Text: "We _____ to the park on Sundays. My dad _____ the guitar and we _____ together.", Answers: []string{"go", "plays", "sing"}},
	})
	register("gap_filling", "A2", []Item{
		{Text: "Last weekend we _____ a picnic. The weather _____ sunny, so we _____ a great time.", Answers: []string{"had", "was", "had"}},
		{Text: "I _____ a new phone yesterday. It _____ very fast and I _____ it already.", Answers: []string{"bought", "is", "like"}},
	})
	register("gap_filling", "B1", []Item{
		{Text: "If I _____ earlier, I _____ caught the bus, but I _____ too late.", Answers: []string{"had left", "would have", "was"}},
		{Text: "She _____ working here since 2020 and _____ many projects; now she _____ a team.", Answers: []string{"has been", "has completed", "leads"}},
	})
	register("gap_filling", "B2", []Item{
		{Text: "Despite _____ exhausted, they _____ to finish on time; the result _____ outstanding.", Answers: []string{"being", "managed", "was"}},
		{Text: "Had I _____ your message, I _____ you back immediately, but my phone _____ off.", Answers: []string{"seen", "would have called", "was"}},
	})
}

func registerComprehension() {
	register("comprehension", "A1", []Item{
		{
			Text:     "Anna has a small dog. She takes it for a walk every morning. After the walk, she eats breakfast and goes to work.",
			Question: "When does Anna walk her dog?",
			Answers:  []string{"in the morning", "every morning"},
		},
		{
			Text:     "Jake likes reading. He goes to the library on Saturdays. He often reads adventure books with his friends.",
			Question: "Where does Jake go on Saturdays?",
			Answers:  []string{"the library", "to the library"},
		},
	})
	register("comprehension", "A2", []Item{
		{
			Text:     "Last month, Peter traveled to Spain. He visited Barcelona and Madrid. He enjoyed the local food and the warm weather.",
			Question: "Which cities did Peter visit?",
			Answers:  []string{"Barcelona and Madrid", "Madrid and Barcelona"},
		},
		{
			Text:     "Nora started a new hobby: photography. She practices on weekends in the park and shares her pictures online.",
			Question: "When does Nora practice photography?",
			Answers:  []string{"on weekends", "at weekends"},
		},
	})
	register("comprehension", "B1", []Item{
		{
			Text:     "Remote work has become more common. Many people save time by avoiding commuting. However, some miss the social aspect of the office.",
			Question: "What is one advantage mentioned about remote work?",
			Answers:  []string{"saving time", "no commuting", "avoiding commuting"},
		},
		{
			Text:     "Learning a language takes regular practice. Short, daily sessions are often more effective than long, rare ones.",
			Question: "What is considered more effective for learning a language?",
			Answers:  []string{"short daily sessions", "regular short practice"},
		},
	})
	register("comprehension", "B2", []Item{
		{
			Text:     "Public transportation can reduce traffic congestion and pollution. Yet, it requires investment and careful planning to be efficient.",
			Question: "What benefits can public transportation bring?",
			Answers:  []string{"reduce congestion", "reduce pollution", "less traffic and pollution"},
		},
		{
			Text:     "Social media platforms influence public opinion. While they connect people, they also spread misinformation quickly.",
			Question: "What is a risk mentioned about social media?",
			Answers:  []string{"misinformation", "spreading misinformation"},
		},
	})
}

func registerSentenceFormation() {
	register("sentence_formation", "A1", []Item{
		{Words: []string{"I", "have", "a", "cat"}, Sentences: []string{"I have a cat"}},
		{Words: []string{"We", "like", "to", "play", "games"}, Sentences: []string{"We like to play games"}},
	})
	register("sentence_formation", "A2", []Item{
		{Words: []string{"Yesterday", "I", "went", "to", "the", "cinema"}, Sentences: []string{"Yesterday I went to the cinema"}},
		{Words: []string{"She", "didn't", "go", "to", "school", "today"}, Sentences: []string{"She didn't go to school today"}},
	})
	register("sentence_formation", "B1", []Item{
		{Words: []string{"Although", "it", "was", "raining", "we", "decided", "to", "go", "out"}, Sentences: []string{"Although it was raining, we decided to go out"}},
		{Words: []string{"If", "I", "had", "more", "time", "I", "would", "travel"}, Sentences: []string{"If I had more time, I would travel"}},
	})
	register("sentence_formation", "B2", []Item{
		{Words: []string{"The", "report", "which", "was", "published", "yesterday", "caused", "a", "debate"}, Sentences: []string{"The report which was published yesterday caused a debate"}},
		{Words: []string{"Having", "finished", "the", "project", "they", "took", "a", "break"}, Sentences: []string{"Having finished the project, they took a break"}},
	})
}

func registerParagraphWriting() {
	register("paragraph_writing", "A1", []Item{
		{Topic: "Describe your daily routine"},
		{Topic: "Write about your favorite food"},
		{Topic: "Describe your family in a few sentences"},
	})
	register("paragraph_writing", "A2", []Item{
		{Topic: "Write about your last vacation"},
		{Topic: "Describe your weekend plans"},
		{Topic: "Write about a place you like in your city"},
	})
	register("paragraph_writing", "B1", []Item{
		{Topic: "Discuss the advantages and disadvantages of social media"},
		{Topic: "Write about a memorable learning experience"},
		{Topic: "Explain how you stay healthy and active"},
	})
	register("paragraph_writing", "B2", []Item{
		{Topic: "Explain your opinion on climate change and possible solutions"},
		{Topic: "Discuss work-life balance in modern life"},
		{Topic: "Should schools focus more on soft skills? Explain."},
	})
}

func registerPronunciation() {
	register("pronunciation", "A1", []Item{
		{Words: []string{"hello", "goodbye", "please", "thank you", "morning", "evening", "family", "friend"}},
	})
	register("pronunciation", "A2", []Item{
		{Words: []string{"weather", "family", "travel", "restaurant", "ticket", "holiday", "airport", "breakfast"}},
	})
	register("pronunciation", "B1", []Item{
		{Words: []string{"environment", "communication", "education", "technology", "decision", "community", "pollution", "influence"}},
	})
	register("pronunciation", "B2", []Item{
		{Words: []string{"responsibility", "opportunity", "characteristic", "development", "efficiency", "generation", "negotiation", "motivation"}},
	})
}
