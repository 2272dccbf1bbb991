package plans

// Workout templates follow Combat Strength Training principles. The map
// key doubles as the template id.
var workoutTemplates = map[string]WorkoutTemplate{
	"upper_strength": {
		ID:       "upper_strength",
		Name:     "Upper Strength - Push",
		Type:     "strength",
		Focus:    "Heavy Pressing - Tricep Power - Build Foundation",
		Duration: "45-50 min",
		Warmup: Warmup{
			Cardio:   "Rowing machine: 500m easy pace (2:00-2:30 pace)",
			Mobility: []string{"Arm circles (20 each)", "Band pull-aparts (15)", "Band dislocates (10)", "Push-up to downward dog (5)"},
		},
		Exercises: []Exercise{
			{ID: "bench_press", Name: "Barbell Bench Press", Sets: 5, Reps: "5", Tempo: "3-1-1", Notes: "Heavy. Control eccentric, drive up."},
			{ID: "ohp", Name: "Barbell Overhead Press", Sets: 4, Reps: "5-6", Tempo: "3-1-1", Notes: "Strict form. Squeeze glutes, brace core."},
			{ID: "incline_press", Name: "Incline Barbell Press", Sets: 3, Reps: "6-8", Tempo: "3-1-2", Notes: "30-45 deg angle."},
			{ID: "dips", Name: "Dips (Weighted if possible)", Sets: 4, Reps: "8-10", Tempo: "2-1-1", Notes: "Lean forward for chest."},
			{ID: "close_grip_bench", Name: "Close-Grip Bench Press", Sets: 3, Reps: "8-10", Tempo: "3-1-2", Notes: "TRICEP DESTROYER."},
			{ID: "band_pushdown", Name: "Band Tricep Pushdown", Sets: 3, Reps: "15-20", Tempo: "2-1-2", Notes: "Lock out hard."},
			{ID: "band_overhead_ext", Name: "Band Overhead Extension", Sets: 3, Reps: "12-15", Tempo: "2-1-2", Notes: "Full stretch."},
		},
		Core: []Exercise{
			{ID: "hanging_leg_raise", Name: "Hanging Leg Raises", Sets: 3, Reps: "10-12", Tempo: "controlled", Notes: "No swinging."},
			{ID: "ab_wheel", Name: "Ab Wheel Rollouts", Sets: 3, Reps: "8-10", Tempo: "2-1-2", Notes: "Keep core tight."},
		},
		Finisher: &Finisher{Name: "Row Intervals", Description: "5 x 200m sprints @ max effort, 45s rest between"},
	},
	"lower_power": {
		ID:       "lower_power",
		Name:     "Lower Power - Explosive",
		Type:     "power",
		Focus:    "Hip Hinge - Explosive Force - Rate of Force Production",
		Duration: "40-45 min",
		Warmup: Warmup{
			Cardio:   "Exercise bike: 3 min moderate, then 30s sprint / 30s easy x 3",
			Mobility: []string{"Leg swings (15 each)", "Hip circles (10 each)", "Bodyweight squats (15)", "Glute bridges (15)"},
		},
		Exercises: []Exercise{
			{ID: "deadlift", Name: "Barbell Deadlift", Sets: 5, Reps: "3-5", Tempo: "2-0-X", Notes: "EXPLOSIVE off floor. Reset each rep."},
			{ID: "jump_squat", Name: "Jump Squats", Sets: 4, Reps: "8", Tempo: "explosive", Notes: "Land soft, explode up."},
			{ID: "rdl", Name: "Romanian Deadlift", Sets: 4, Reps: "8-10", Tempo: "3-1-1", Notes: "Feel hamstring stretch."},
			{ID: "barbell_hip_thrust", Name: "Barbell Hip Thrust", Sets: 4, Reps: "8-10", Tempo: "2-2-1", Notes: "Explosive up, squeeze."},
			{ID: "split_squat_jump", Name: "Split Squat Jumps", Sets: 3, Reps: "6 each", Tempo: "explosive", Notes: "Switch legs mid-air."},
			{ID: "band_good_morning", Name: "Band Good Mornings", Sets: 3, Reps: "15", Tempo: "2-1-1", Notes: "Posterior chain."},
		},
		Core: []Exercise{
			{ID: "hollow_body", Name: "Hollow Body Hold", Sets: 3, Reps: "30s", Tempo: "hold", Notes: "Lower back pressed."},
			{ID: "dead_bug", Name: "Dead Bug", Sets: 3, Reps: "10 each", Tempo: "2-2-2", Notes: "Opposite arm/leg."},
		},
		Finisher: &Finisher{Name: "Bike Tabata", Description: "8 rounds: 20s ALL OUT sprint, 10s rest"},
	},
	"upper_hypertrophy": {
		ID:                  "upper_hypertrophy",
		Name:                "Upper Hypertrophy - Pull",
		Type:                "hypertrophy",
		Focus:               "Back Thickness - Bicep Pump - Time Under Tension",
		Duration:            "45-50 min",
		CircuitInstructions: "Supersets: A1/A2, then B1/B2. 45-60s rest.",
		Warmup: Warmup{
			Cardio:   "Rowing machine: 3 min moderate, focus on lat engagement",
			Mobility: []string{"Band pull-aparts (20)", "Band face pulls (15)", "Cat-cow (10)", "Arm circles"},
		},
		Exercises: []Exercise{
			{ID: "pullups", Name: "A1: Pull-ups", Sets: 4, Reps: "Max (aim 8-12)", Tempo: "3-1-2", Notes: "KING of back exercises."},
			{ID: "barbell_row", Name: "A2: Barbell Row", Sets: 4, Reps: "8-10", Tempo: "2-1-2", Notes: "Pull to lower chest."},
			{ID: "chinups", Name: "B1: Chin-ups", Sets: 3, Reps: "Max (aim 6-10)", Tempo: "3-1-2", Notes: "Bicep emphasis."},
			{ID: "band_row", Name: "B2: Band Seated Row", Sets: 3, Reps: "15-20", Tempo: "2-2-2", Notes: "Pull to belly button."},
			{ID: "barbell_curl", Name: "Barbell Curl", Sets: 4, Reps: "10-12", Tempo: "2-1-3", Notes: "3s negative!"},
			{ID: "hammer_curl", Name: "Band Hammer Curl", Sets: 3, Reps: "12-15", Tempo: "2-1-2", Notes: "Brachialis and forearms."},
			{ID: "incline_curl", Name: "Incline Curl", Sets: 3, Reps: "10-12", Tempo: "3-1-2", Notes: "Stretch at bottom."},
			{ID: "band_face_pull", Name: "Band Face Pulls", Sets: 3, Reps: "15-20", Tempo: "2-2-2", Notes: "External rotate at top."},
		},
		Core: []Exercise{
			{ID: "hanging_knee_raise", Name: "Hanging Knee Raises", Sets: 3, Reps: "12-15", Tempo: "controlled"},
			{ID: "side_plank", Name: "Side Plank", Sets: 3, Reps: "30s each", Tempo: "hold", Notes: "Squeeze obliques."},
		},
		Finisher: &Finisher{Name: "Bicep Burnout", Description: "21s method - 7 bottom, 7 top, 7 full. 2 rounds."},
	},
	"lower_hypertrophy": {
		ID:                  "lower_hypertrophy",
		Name:                "Lower Hypertrophy - Volume",
		Type:                "hypertrophy",
		Focus:               "Quad Development - Glute Pump - Slow Eccentrics",
		Duration:            "45-50 min",
		CircuitInstructions: "Keep rest under 60s. Focus on squeeze and stretch.",
		Warmup: Warmup{
			Cardio:   "Exercise bike: 5 min easy, increase resistance each minute",
			Mobility: []string{"Leg swings (15 each)", "Deep squat hold (30s)", "Walking lunges (10 each)", "Hip flexor stretch"},
		},
		Exercises: []Exercise{
			{ID: "back_squat", Name: "Barbell Back Squat", Sets: 4, Reps: "8-10", Tempo: "3-2-2", Notes: "2s pause at bottom!"},
			{ID: "front_squat", Name: "Barbell Front Squat", Sets: 3, Reps: "8-10", Tempo: "3-1-2", Notes: "Upright torso. Quad killer."},
			{ID: "walking_lunge", Name: "Walking Lunges", Sets: 3, Reps: "12 each", Tempo: "2-0-1", Notes: "Long stride for glutes."},
			{ID: "bulgarian_split", Name: "Bulgarian Split Squat", Sets: 3, Reps: "10 each", Tempo: "3-1-2", Notes: "Brutal and effective."},
			{ID: "band_leg_curl", Name: "Band Leg Curl", Sets: 3, Reps: "15-20", Tempo: "2-2-3", Notes: "Lying or standing."},
			{ID: "calf_raise", Name: "Standing Calf Raises", Sets: 4, Reps: "15-20", Tempo: "2-2-4", Notes: "4s negative!"},
		},
		Core: []Exercise{
			{ID: "weighted_situp", Name: "Weighted Sit-ups", Sets: 3, Reps: "15", Tempo: "2-1-2", Notes: "Hold plate on chest."},
			{ID: "pallof_press", Name: "Band Pallof Press", Sets: 3, Reps: "10 each", Tempo: "2-3-2", Notes: "Anti-rotation."},
		},
		Finisher: &Finisher{Name: "Row Power", Description: "1000m row for time. Record it. Beat it next week."},
	},
	"speed_arms": {
		ID:                  "speed_arms",
		Name:                "Speed & Arms Friday",
		Type:                "speed",
		Focus:               "Multi-Directional Speed - Arm Pump - Conditioning",
		Duration:            "40-45 min",
		CircuitInstructions: "Speed circuit first (3 rounds), then arm superset blast.",
		Warmup: Warmup{
			Cardio:   "Rowing: 2 min easy, then 10x 10s sprint / 20s easy",
			Mobility: []string{"High knees (30s)", "Butt kicks (30s)", "Lateral shuffles (30s)", "Jumping jacks (30s)"},
		},
		Exercises: []Exercise{
			{ID: "lateral_bounds", Name: "Lateral Bounds", Sets: 3, Reps: "8 each", Tempo: "explosive", Notes: "Stick landing."},
			{ID: "burpees", Name: "Burpees", Sets: 3, Reps: "10", Tempo: "fast", Notes: "Full extension jump."},
			{ID: "broad_jump", Name: "Broad Jumps", Sets: 3, Reps: "6", Tempo: "explosive", Notes: "Max distance."},
			{ID: "mountain_climbers", Name: "Mountain Climbers", Sets: 3, Reps: "20 each", Tempo: "fast", Notes: "Keep hips low."},
			{ID: "box_step_up", Name: "Explosive Step-ups", Sets: 3, Reps: "8 each", Tempo: "explosive", Notes: "Drive knee up."},
			{ID: "barbell_curl_heavy", Name: "SS1: Heavy Barbell Curl", Sets: 4, Reps: "6-8", Tempo: "2-1-2", Notes: "Strength focus."},
			{ID: "skull_crusher", Name: "SS1: Skull Crushers", Sets: 4, Reps: "8-10", Tempo: "3-1-1", Notes: "Tricep mass."},
			{ID: "band_curl_21s", Name: "SS2: Band Curl 21s", Sets: 2, Reps: "21", Tempo: "varied", Notes: "7/7/7."},
			{ID: "diamond_pushup", Name: "SS2: Diamond Push-ups", Sets: 2, Reps: "Max", Tempo: "2-1-1", Notes: "Tricep finisher."},
		},
		Core: []Exercise{
			{ID: "ab_wheel", Name: "Ab Wheel Rollouts", Sets: 3, Reps: "10", Tempo: "2-1-2"},
			{ID: "hollow_body", Name: "Hollow Body Hold", Sets: 3, Reps: "30s", Tempo: "hold"},
		},
		Finisher: &Finisher{Name: "Arm Pump Finisher", Description: "50 band curls + 50 band pushdowns. Chase the pump."},
	},
	"active_recovery": {
		ID:       "active_recovery",
		Name:     "Active Recovery",
		Type:     "conditioning",
		Focus:    "Low Intensity - Movement - Fat Burn",
		Duration: "30-45 min",
		Warmup: Warmup{
			Cardio:   "None needed",
			Mobility: []string{"5 min foam rolling or stretching"},
		},
		Exercises: []Exercise{
			{ID: "row_steady", Name: "Rowing - Steady State", Sets: 1, Reps: "20-30 min", Tempo: "2:10-2:20 pace", Notes: "Zone 2 cardio. Fat burning."},
			{ID: "mobility_flow", Name: "Mobility Flow", Sets: 1, Reps: "10 min", Tempo: "slow", Notes: "World's Greatest Stretch, hip openers."},
		},
		Core: []Exercise{
			{ID: "bird_dog", Name: "Bird Dog", Sets: 3, Reps: "8 each", Tempo: "hold 5s", Notes: "Slow and controlled."},
			{ID: "mcgill_curlup", Name: "McGill Curl-Up", Sets: 3, Reps: "10", Tempo: "hold 8s", Notes: "Spine neutral."},
		},
		Finisher: &Finisher{Name: "Optional Bike", Description: "15-20 min easy bike while watching TV or podcast."},
	},
	"rest_day": {
		ID:       "rest_day",
		Name:     "Rest Day",
		Type:     "rest",
		Focus:    "Recovery - Sleep - Nutrition",
		Duration: "0 min",
		Warmup: Warmup{
			Cardio:   "None",
			Mobility: []string{"Optional light stretching"},
		},
		Exercises: []Exercise{},
		Core:      []Exercise{},
	},
	"bench_curls": {
		ID:       "bench_curls",
		Name:     "Bench & Curls",
		Type:     "strength",
		Focus:    "Chest Press - Bicep Work - Band Finishers",
		Duration: "20 min",
		Warmup: Warmup{
			Cardio:   "Light rowing or arm circles (2 min)",
			Mobility: []string{"Arm circles (10 each)", "Band pull-aparts (10)", "Push-up stretch (5)"},
		},
		Exercises: []Exercise{
			{ID: "bench_press", Name: "Bench Press", Sets: 4, Reps: "8", Tempo: "3-1-1", Notes: "Control the weight. Solid foundation."},
			{ID: "barbell_curl", Name: "Barbell Curls", Sets: 4, Reps: "10", Tempo: "2-1-2", Notes: "Full range of motion. Squeeze at top."},
			{ID: "band_face_pull", Name: "Band Face Pulls", Sets: 3, Reps: "15", Tempo: "2-1-2", Notes: "External rotate at top. Rear delt health."},
			{ID: "band_pushdown", Name: "Band Pushdowns", Sets: 3, Reps: "15", Tempo: "2-1-2", Notes: "Lock out hard. Tricep finisher."},
		},
		Core: []Exercise{},
	},
	"gun_show": {
		ID:       "gun_show",
		Name:     "Gun Show",
		Type:     "hypertrophy",
		Focus:    "Arms Only - Biceps & Triceps - Pump Day",
		Duration: "20 min",
		Warmup: Warmup{
			Cardio:   "Light band curls and pushdowns (1 min each)",
			Mobility: []string{"Wrist circles (10 each)", "Arm swings (10 each)"},
		},
		Exercises: []Exercise{
			{ID: "barbell_curl", Name: "Barbell Curls", Sets: 4, Reps: "10", Tempo: "2-1-2", Notes: "Strict form. No swinging."},
			{ID: "close_grip_bench", Name: "Close-Grip Bench", Sets: 4, Reps: "10", Tempo: "3-1-2", Notes: "Tricep mass builder."},
			{ID: "hammer_curl", Name: "Hammer Curls", Sets: 3, Reps: "12", Tempo: "2-1-2", Notes: "Brachialis and forearms."},
			{ID: "band_pushdown", Name: "Band Pushdowns", Sets: 3, Reps: "20", Tempo: "2-1-1", Notes: "High reps for the pump."},
			{ID: "band_curl_burnout", Name: "Band Curls Burnout", Sets: 1, Reps: "50", Tempo: "fast", Notes: "Non-stop. Chase the pump."},
		},
		Core: []Exercise{},
	},
	"cold_plunge_day": {
		ID:       "cold_plunge_day",
		Name:     "Cold Plunge Day",
		Type:     "conditioning",
		Focus:    "Recovery - Cold Exposure - Mental Toughness",
		Duration: "20 min",
		Warmup: Warmup{
			Cardio:   "None - start light",
			Mobility: []string{"Deep breathing (1 min)"},
		},
		Exercises: []Exercise{
			{ID: "light_row", Name: "Light Row", Sets: 1, Reps: "5 min", Tempo: "easy", Notes: "Zone 1 effort. Just moving."},
			{ID: "full_stretch", Name: "Full Body Stretch", Sets: 1, Reps: "5 min", Tempo: "hold", Notes: "Focus on tight areas."},
			{ID: "cold_plunge", Name: "Cold Plunge", Sets: 1, Reps: "3-5 min", Tempo: "hold", Notes: "Breathe slow. Control the mind."},
			{ID: "deep_breathing", Name: "Deep Breathing", Sets: 1, Reps: "5 min", Tempo: "slow", Notes: "Box breathing. 4-4-4-4."},
		},
		Core: []Exercise{},
	},
}

// weeklySchedule maps lowercase weekday names to template ids. Sunday is
// meal prep day, tracked through the meal plan instead of a workout.
var weeklySchedule = map[string]string{
	"monday":    "bench_curls",
	"tuesday":   "rest_day",
	"wednesday": "gun_show",
	"thursday":  "rest_day",
	"friday":    "cold_plunge_day",
	"saturday":  "rest_day",
	"sunday":    "rest_day",
}
