package plans

// Workout playlists, all user or brand curated. Kept in rotation order,
// the daily pick indexes into this slice.
var playlists = []Playlist{
	{ID: "7x7eaTvnhauKYQ3TePrEdx", Name: "Gym Metal Workout", Creator: "illztherocker", Genre: "metal", SpotifyURL: "https://open.spotify.com/playlist/7x7eaTvnhauKYQ3TePrEdx", Vibe: "Pure metal aggression"},
	{ID: "1oWD4uRPIsVvFFMPYeUDZR", Name: "Heavy Metal Workout", Creator: "Bodybuilding.com", Genre: "metal", SpotifyURL: "https://open.spotify.com/playlist/1oWD4uRPIsVvFFMPYeUDZR", Vibe: "216 tracks of metal fury"},
	{ID: "6f36ma26ZFVQJ5ENPCTmYM", Name: "HEAVY METAL WORKOUT", Creator: "fitleague", Genre: "metal", SpotifyURL: "https://open.spotify.com/playlist/6f36ma26ZFVQJ5ENPCTmYM", Vibe: "43K saves - certified heavy"},
	{ID: "4VZBvkGpGez3xf9no7gG7M", Name: "Rock Workout Motivation", Creator: "LoFiRe", Genre: "rock", SpotifyURL: "https://open.spotify.com/playlist/4VZBvkGpGez3xf9no7gG7M", Vibe: "305K saves - best gym rock"},
	{ID: "6kXNv8J3HCYztxjOIUzApv", Name: "Hard Rock Workout", Creator: "Better Noise Music", Genre: "rock", SpotifyURL: "https://open.spotify.com/playlist/6kXNv8J3HCYztxjOIUzApv", Vibe: "61K saves - label curated"},
	{ID: "2lk6445GUpENJLdDyJFMHJ", Name: "100 Best Rock Workout Songs", Creator: "Tabata Songs", Genre: "rock", SpotifyURL: "https://open.spotify.com/playlist/2lk6445GUpENJLdDyJFMHJ", Vibe: "Rock essentials"},
	{ID: "2YLYJT19TUBMD4eDQEnivw", Name: "Workout Songs 2026", Creator: "Hype Songs Club", Genre: "rap", SpotifyURL: "https://open.spotify.com/playlist/2YLYJT19TUBMD4eDQEnivw", Vibe: "343K saves - certified bangers"},
	{ID: "009iSBUVKTJv0UFCfQow2t", Name: "Rap Workout 2026", Creator: "Curatify", Genre: "rap", SpotifyURL: "https://open.spotify.com/playlist/009iSBUVKTJv0UFCfQow2t", Vibe: "174K saves - gym rap"},
	{ID: "3Qlo8PGJKE53FgTcIjuIvJ", Name: "HIGH ENERGY RAP HYPE", Creator: "@robi.robillard", Genre: "rap", SpotifyURL: "https://open.spotify.com/playlist/3Qlo8PGJKE53FgTcIjuIvJ", Vibe: "101K saves - pump up"},
	{ID: "71z6BdHlnfNj4DKRhuu1Fk", Name: "RAGE - EDM WORKOUT", Creator: "Tribal Trap", Genre: "edm", SpotifyURL: "https://open.spotify.com/playlist/71z6BdHlnfNj4DKRhuu1Fk", Vibe: "643K saves - RAGE MODE"},
	{ID: "2kInpNnxZcN4e0IrGGlEbK", Name: "EDM Workout Bangers", Creator: "BLNDR", Genre: "edm", SpotifyURL: "https://open.spotify.com/playlist/2kInpNnxZcN4e0IrGGlEbK", Vibe: "324K saves - gym bangers"},
	{ID: "5ottDgGT4ns77bKbY46MYX", Name: "PEAK ENERGY - EDM Workout", Creator: "Dharma Worldwide", Genre: "edm", SpotifyURL: "https://open.spotify.com/playlist/5ottDgGT4ns77bKbY46MYX", Vibe: "101K saves - peak energy"},
	{ID: "5cAwvaSXeNSrSbmrOUSBzo", Name: "GYM MOTIVATION 2025 - BEASTMODE", Creator: "CHAPTER EIGHT", Genre: "mixed", SpotifyURL: "https://open.spotify.com/playlist/5cAwvaSXeNSrSbmrOUSBzo", Vibe: "507K saves - BEASTMODE"},
	{ID: "6fIvmRkmx5XKh4MeZhTPci", Name: "Gym Hits 2025 - Best Fitness Music", Creator: "NCS", Genre: "mixed", SpotifyURL: "https://open.spotify.com/playlist/6fIvmRkmx5XKh4MeZhTPci", Vibe: "74K saves - NCS bangers"},
	{ID: "3CdZIxeMIkbSjZAB0H5AEx", Name: "The Rock's Workout Playlist", Creator: "Dwayne Johnson", Genre: "mixed", SpotifyURL: "https://open.spotify.com/playlist/3CdZIxeMIkbSjZAB0H5AEx", Vibe: "Iron Paradise vibes"},
	{ID: "6oakYVnanX2Ao9jktCTtK8", Name: "Running Music 2025 - High BPM", Creator: "INVICTA", Genre: "cardio", SpotifyURL: "https://open.spotify.com/playlist/6oakYVnanX2Ao9jktCTtK8", Vibe: "High BPM cardio"},
	{ID: "353J1v6ffUKCFm3YRZMywf", Name: "WORKOUT MUSIC 2025 - HIGH ENERGY", Creator: "Shine", Genre: "cardio", SpotifyURL: "https://open.spotify.com/playlist/353J1v6ffUKCFm3YRZMywf", Vibe: "277 high energy tracks"},
	{ID: "0Cbn1Pc2HiQmP611NTIJfc", Name: "Running 2024 - Cardio Mix", Creator: "User", Genre: "cardio", SpotifyURL: "https://open.spotify.com/playlist/0Cbn1Pc2HiQmP611NTIJfc", Vibe: "281 cardio tracks"},
}

// Genres available for playlist filtering.
var playlistGenres = []string{"metal", "rock", "rap", "edm", "mixed", "cardio"}
