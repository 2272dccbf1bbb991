package verse

const fallbackCategory = "perseverance"

// Curated fitness-themed scriptures, used when the scripture API is
// unavailable or no API key is configured.
var categories = []Category{
	{
		Name:         "strength",
		WorkoutTypes: []string{"upper_strength", "lower_power"},
		Verses: []Verse{
			{Reference: "Isaiah 40:31", Text: "But those who hope in the Lord will renew their strength. They will soar on wings like eagles; they will run and not grow weary, they will walk and not be faint.", Theme: "renewed strength"},
			{Reference: "Philippians 4:13", Text: "I can do all things through Christ who strengthens me.", Theme: "strength through Christ"},
			{Reference: "Psalm 18:32-34", Text: "It is God who arms me with strength and keeps my way secure. He makes my feet like the feet of a deer; he causes me to stand on the heights.", Theme: "God gives strength"},
			{Reference: "Deuteronomy 31:6", Text: "Be strong and courageous. Do not be afraid or terrified because of them, for the Lord your God goes with you; he will never leave you nor forsake you.", Theme: "courage and strength"},
			{Reference: "Psalm 28:7", Text: "The Lord is my strength and my shield; my heart trusts in him, and he helps me. My heart leaps for joy, and with my song I praise him.", Theme: "strength and trust"},
			{Reference: "Nehemiah 8:10", Text: "Do not grieve, for the joy of the Lord is your strength.", Theme: "joy as strength"},
		},
	},
	{
		Name:         "discipline",
		WorkoutTypes: []string{"upper_hypertrophy", "lower_hypertrophy"},
		Verses: []Verse{
			{Reference: "Hebrews 12:11", Text: "No discipline seems pleasant at the time, but painful. Later on, however, it produces a harvest of righteousness and peace for those who have been trained by it.", Theme: "discipline yields fruit"},
			{Reference: "1 Corinthians 9:27", Text: "I discipline my body like an athlete, training it to do what it should. Otherwise, I fear that after preaching to others I myself might be disqualified.", Theme: "discipline your body"},
			{Reference: "Proverbs 12:1", Text: "Whoever loves discipline loves knowledge, but whoever hates correction is stupid.", Theme: "love discipline"},
			{Reference: "Proverbs 25:28", Text: "A person without self-control is like a city with broken-down walls.", Theme: "self-control"},
			{Reference: "2 Timothy 1:7", Text: "For God has not given us a spirit of fear, but of power and of love and of a sound mind.", Theme: "power and sound mind"},
			{Reference: "Titus 2:11-12", Text: "For the grace of God has appeared that offers salvation to all people. It teaches us to say \"No\" to ungodliness and worldly passions, and to live self-controlled, upright and godly lives.", Theme: "self-controlled living"},
		},
	},
	{
		Name:         "endurance",
		WorkoutTypes: []string{"speed_arms"},
		Verses: []Verse{
			{Reference: "Hebrews 12:1", Text: "Therefore, since we are surrounded by such a great cloud of witnesses, let us throw off everything that hinders and the sin that so easily entangles. And let us run with perseverance the race marked out for us.", Theme: "run with endurance"},
			{Reference: "1 Corinthians 9:24-25", Text: "Do you not know that in a race all the runners run, but only one gets the prize? Run in such a way as to get the prize. Everyone who competes in the games goes into strict training.", Theme: "run to win"},
			{Reference: "2 Timothy 4:7", Text: "I have fought the good fight, I have finished the race, I have kept the faith.", Theme: "finished the race"},
			{Reference: "Galatians 6:9", Text: "Let us not become weary in doing good, for at the proper time we will reap a harvest if we do not give up.", Theme: "do not grow weary"},
			{Reference: "James 1:12", Text: "Blessed is the one who perseveres under trial because, having stood the test, that person will receive the crown of life that the Lord has promised to those who love him.", Theme: "blessed who perseveres"},
			{Reference: "Romans 5:3-4", Text: "Not only so, but we also glory in our sufferings, because we know that suffering produces perseverance; perseverance, character; and character, hope.", Theme: "suffering produces perseverance"},
		},
	},
	{
		Name:         "rest",
		WorkoutTypes: []string{"active_recovery", "rest_day"},
		Verses: []Verse{
			{Reference: "Matthew 11:28", Text: "Come to me, all you who are weary and burdened, and I will give you rest.", Theme: "rest for the weary"},
			{Reference: "Psalm 23:2-3", Text: "He makes me lie down in green pastures, he leads me beside quiet waters, he refreshes my soul.", Theme: "restores my soul"},
			{Reference: "Exodus 20:8-10", Text: "Remember the Sabbath day by keeping it holy. Six days you shall labor and do all your work, but the seventh day is a sabbath to the Lord your God.", Theme: "sabbath rest"},
			{Reference: "Psalm 127:2", Text: "In vain you rise early and stay up late, toiling for food to eat, for he grants sleep to those he loves.", Theme: "rest as gift"},
			{Reference: "Mark 6:31", Text: "Then, because so many people were coming and going that they did not even have a chance to eat, he said to them, \"Come with me by yourselves to a quiet place and get some rest.\"", Theme: "Jesus invites rest"},
			{Reference: "Isaiah 30:15", Text: "In repentance and rest is your salvation, in quietness and trust is your strength.", Theme: "rest and trust"},
		},
	},
	{
		Name:         "perseverance",
		WorkoutTypes: []string{},
		Verses: []Verse{
			{Reference: "Romans 8:28", Text: "And we know that in all things God works for the good of those who love him, who have been called according to his purpose.", Theme: "God works for good"},
			{Reference: "Joshua 1:9", Text: "Have I not commanded you? Be strong and courageous. Do not be afraid; do not be discouraged, for the Lord your God will be with you wherever you go.", Theme: "be courageous"},
			{Reference: "Proverbs 3:5-6", Text: "Trust in the Lord with all your heart and lean not on your own understanding; in all your ways submit to him, and he will make your paths straight.", Theme: "trust in the Lord"},
			{Reference: "Jeremiah 29:11", Text: "For I know the plans I have for you, declares the Lord, plans to prosper you and not to harm you, plans to give you hope and a future.", Theme: "hope and future"},
			{Reference: "Psalm 37:5", Text: "Commit your way to the Lord; trust in him and he will do this.", Theme: "commit your way"},
			{Reference: "Colossians 3:23", Text: "Whatever you do, work at it with all your heart, as working for the Lord, not for human masters.", Theme: "work for the Lord"},
		},
	},
}

// categoryForWorkoutType returns the category a workout type belongs to,
// falling back to perseverance.
func categoryForWorkoutType(workoutType string) Category {
	for _, c := range categories {
		for _, wt := range c.WorkoutTypes {
			if wt == workoutType {
				return c
			}
		}
	}
	for _, c := range categories {
		if c.Name == fallbackCategory {
			return c
		}
	}
	// unreachable as long as the fallback category exists
	return categories[len(categories)-1]
}
