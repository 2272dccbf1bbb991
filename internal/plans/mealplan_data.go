package plans

var mealPlan = MealPlan{
	Targets: DailyTargets{
		Protein:      200,
		CaloriesMin:  1800,
		CaloriesMax:  2200,
		WaterGallons: 1,
	},
	PrepTasks: []PrepTask{
		{ID: "grill_chicken", Task: "Grill chicken thighs (2 lbs)", Category: "protein", EstimatedTime: "25 min"},
		{ID: "cook_ground_beef", Task: "Brown ground beef (2 lbs)", Category: "protein", EstimatedTime: "15 min"},
		{ID: "hard_boil_eggs", Task: "Hard boil eggs (12)", Category: "protein", EstimatedTime: "15 min"},
		{ID: "cook_bacon", Task: "Cook bacon (1 lb)", Category: "protein", EstimatedTime: "20 min"},
		{ID: "roast_veggies", Task: "Roast mixed vegetables", Category: "sides", EstimatedTime: "30 min"},
		{ID: "make_rice", Task: "Cook rice (if eating carbs)", Category: "sides", EstimatedTime: "20 min"},
		{ID: "portion_nuts", Task: "Portion out nuts/snacks", Category: "snacks", EstimatedTime: "5 min"},
		{ID: "prep_shakes", Task: "Pre-portion protein powder", Category: "snacks", EstimatedTime: "5 min"},
		{ID: "wash_containers", Task: "Wash meal containers", Category: "prep", EstimatedTime: "10 min"},
		{ID: "clean_fridge", Task: "Clean out fridge", Category: "prep", EstimatedTime: "10 min"},
		{ID: "fill_bottles", Task: "Fill water bottles for week", Category: "prep", EstimatedTime: "5 min"},
	},
	Containers: []MealContainer{
		{ID: "lunch_1", Name: "Monday Lunch", Contents: "Chicken thighs + veggies", Protein: 45, Calories: 450},
		{ID: "lunch_2", Name: "Tuesday Lunch", Contents: "Ground beef bowl", Protein: 40, Calories: 400},
		{ID: "lunch_3", Name: "Wednesday Lunch", Contents: "Chicken thighs + veggies", Protein: 45, Calories: 450},
		{ID: "lunch_4", Name: "Thursday Lunch", Contents: "Ground beef bowl", Protein: 40, Calories: 400},
		{ID: "lunch_5", Name: "Friday Lunch", Contents: "Chicken thighs + veggies", Protein: 45, Calories: 450},
		{ID: "snack_eggs", Name: "Egg Snacks", Contents: "12 hard boiled eggs", Protein: 72, Calories: 840},
	},
	ShoppingList: []ShoppingItem{
		{Item: "Chicken thighs", Amount: "2 lbs", Category: "protein"},
		{Item: "Ground beef (80/20)", Amount: "2 lbs", Category: "protein"},
		{Item: "Eggs", Amount: "2 dozen", Category: "protein"},
		{Item: "Bacon", Amount: "1 lb", Category: "protein"},
		{Item: "Ribeye steaks", Amount: "2-3", Category: "protein"},
		{Item: "Broccoli", Amount: "2 heads", Category: "produce"},
		{Item: "Asparagus", Amount: "1 bunch", Category: "produce"},
		{Item: "Bell peppers", Amount: "3", Category: "produce"},
		{Item: "Onions", Amount: "2", Category: "produce"},
		{Item: "Mixed nuts", Amount: "1 container", Category: "snacks"},
		{Item: "Protein powder", Amount: "check supply", Category: "snacks"},
		{Item: "Greek yogurt", Amount: "4 cups", Category: "snacks"},
		{Item: "Olive oil", Amount: "check supply", Category: "pantry"},
		{Item: "Salt & seasonings", Amount: "check supply", Category: "pantry"},
	},
}
