package onemorenight

import "github.com/manualworlds/onemorenight-options/pkg/options"

// Option keys contributed by the plugin
const (
	KeyTotalCharactersToWinWith = "total_characters_to_win_with"
	KeyStartingDifficulty       = "startingdifficulty"
	KeySoloMode                 = "solo_mode"
	KeyHardAchievements         = "hardachievements"
	KeyAchievementChallenges    = "achievement_challenges"
	KeyNonAchievementChallenges = "nonachievementchallenges"
	KeyFishsanity               = "fishsanity"
	KeyJumpscaresanity          = "jumpscaresanity"
	KeyBellLogic                = "bell_logic"
	KeyFlashlightSkins          = "flashlight_skins"
)

// Starting difficulty (State of Mind) values
const (
	DifficultyCalm       = 0
	DifficultyGuilty     = 1
	DifficultyDevastated = 2
	DifficultyScorched   = 3
	DifficultySoaked     = 4
)

// Fishsanity values
const (
	FishsanityDisabled            = 0
	FishsanityColorsOnly          = 1
	FishsanityColorsAndCharacters = 2
	FishsanityTrue                = 3
)

// TotalCharactersToWinWith limits how many character victories the goal needs
func TotalCharactersToWinWith() *options.Definition {
	return options.NewRange(KeyTotalCharactersToWinWith,
		"Number of characters to beat the game with before victory",
		"Instead of having to beat the game with all characters, you can limit locations to a subset of character victory locations.",
		10, 50, 50)
}

// StartingDifficulty picks the State of Mind the game starts on
func StartingDifficulty() *options.Definition {
	return options.NewChoice(KeyStartingDifficulty, "Starting Difficulty", `Choose which State of Mind (Difficulty) you want to start your game with.
The ones that aren't chosen will be added to the pool, so they can be found at a later point in the Multiworld.
It'd be a mouthful to write all of the changes to the various States of Mind here, so I'll give a brief
explanation of each. The further details for each of them can be seen in the States of Mind area.

Guilty: The base Difficulty. What you normally play on if you have never beaten TiTN (Trapped in the
Nightmare), so probably the most familiar to you out of all of them.
Calm: Less aggression and some more choices and health. However, you have less resources, so it's easier to get
overwhelmed.
Devastated: Threats are more aggressive, but you get some extra resources to support you.
Scorched: You have a brand new Threat to deal with, Heat. However, other Threats are slightly less aggressive
and you start with some spare power and an extra Glass Life (once it is lost, it's gone for good).
Soaked: Threats are less aggressive, one of your three hearts becomes Glass, and you only have to pick one
starting Threat instead of three. However, Jordi, Divine Punishment, and all of the J-Choices are added from
the moment you begin. A rough challenge mostly focusing on the office. Good luck.

If you're wondering "Where's Fooled"? It's a Trap. Sorry.`,
		DifficultyGuilty,
		options.Choice{Name: "calm", Value: DifficultyCalm},
		options.Choice{Name: "guilty", Value: DifficultyGuilty},
		options.Choice{Name: "devastated", Value: DifficultyDevastated},
		options.Choice{Name: "scorched", Value: DifficultyScorched},
		options.Choice{Name: "soaked", Value: DifficultySoaked},
	)
}

// SoloMode disables checks that need other players
func SoloMode() *options.Definition {
	return options.NewDefaultOnToggle(KeySoloMode, "Solo Mode", `Enable Solo Mode, a setting that disables some Checks and makes some Items Useful instead of Progression.
Recommended to enable if you plan on playing on your own instead of with friends.`)
}

// HardAchievements adds checks for the harder achievements
func HardAchievements() *options.Definition {
	return options.NewToggle(KeyHardAchievements, "Hard Achievements", `Enable checks for completing harder Achievements.
This includes the following Achievements:
- Empty-Handed (Beat the game itemless.)
- No time to think (Beat the game in under 35 minutes.)
- Bloodshed (Die 10 times in a run.)
- Hard Worker (Beat the game with no Quickly Outs and 3 Overtimes. Forces nights to be 15 seconds longer unless you happen to circumvent some of the time with The Moon Tarot Card or Pocket Watch Starter Item.)
- Burning with you (Beat the BiD Route on Scorched Difficulty.)
- Soaked with Guilt (Beat the PtWP Route on Soaked Difficulty.)
- Seen the Fish (Catch all 40 types of fish and complete the Fishing Book.)
- THEY HAVE TO DO SOMETHING: Hit all 37 buttons in the Lobby. There are two in particular that are annoying to do. Speed Coil is expected for one of them, but still unsure of a consistent way to get the second one. You should probably exclude this if you turn this on for other Achievements you don't mind doing, honestly.
- Strongest Hammer (Hit an almost Perfect score on the Hammer arcade game. Not easy to get consistently, so it's considered a Hard Achievement.)
- Are you ready for Barry? (Survive Night 10 or later without letting Barry go past the Dining Area.)
- Music of the Past (Complete the Lost Music Box Challenge. Also disables the Check for the mentioned Challenge.)
- Quick Thinker (Complete the Constant QTE Challenge. Also disables the Check for the mentioned Challenge.)
- Unmasked (Have Old Barry, Old Bunny, and Old Chicken active at the same time, then have your mask break but still survive the night. Considered a Hard Achievement because it can be a pain to setup without dying in the process.)
- Empty Victory (Beat the game while having 0 Max HP.)
- Green Runner (Beat the game on Guilty while using as little power as possible. The exact numbers are less than 225% + 50% extra per additional player. For example, 275% with 2 players, 325% with 3 players, etc.)
In addition, the Unfortunate (Make the Wheel of Fortune explode) Achievement will have its logic shifted, depending on if this Option is enabled or disabled.
- Enabled: Requires access to Night 13 or later (to account for if the player takes a bit to find the Wheel of Fortune, if at all. Ironically requires some luck to get.)
- Disabled: Requires the Lucky Clover Starter Item and access to Night 8 or later.
Overall, it's recommended to disable this Option if you don't feel confident in your skills (and maybe luck, too).
(17 Checks)`)
}

// AchievementChallenges adds checks for challenges tied to achievements
func AchievementChallenges() *options.Definition {
	return options.NewToggle(KeyAchievementChallenges, "Achievement Challenges", `Enable Checks for beating Challenges that are tied to Achievements.
(12 Checks)`)
}

// NonAchievementChallenges adds checks for the remaining challenges
func NonAchievementChallenges() *options.Definition {
	return options.NewToggle(KeyNonAchievementChallenges, "Non-Achievement Challenges", `Enable Checks for beating Challenges that are NOT tied to Achievements.
(2 Checks)`)
}

// Fishsanity selects which fish carry checks
func Fishsanity() *options.Definition {
	return options.NewChoice(KeyFishsanity, "Fishsanity", `Enable Checks for catching fish with the Fishing Rod. Please read the below information for details:

Colors Only: The 10 colored fish are the only ones with Checks on them.
They all have an equal 2.6% chance to be fished up.

Colors and Characters: The 10 colored fish and 34 character fish are Checks, totaling to 44 Checks.
Note that this also includes the Ticket and Fish Emoji...because yes.

True Fishsanity: EVERY fish is a Check.
CAUTION: This includes the 8 rarest fish in the game, each of which having a <2% chance of appearing. Be aware that completing your Checks may take a while with this enabled.
(52 Checks)`,
		FishsanityDisabled,
		options.Choice{Name: "disabled", Value: FishsanityDisabled},
		options.Choice{Name: "colors_only", Value: FishsanityColorsOnly},
		options.Choice{Name: "colors_and_characters", Value: FishsanityColorsAndCharacters},
		options.Choice{Name: "true_fishsanity", Value: FishsanityTrue},
	)
}

// Jumpscaresanity adds a check per threat jumpscare
func Jumpscaresanity() *options.Definition {
	return options.NewDefaultOnToggle(KeyJumpscaresanity, "Jumpscaresanity", `Enable Checks for being jumpscared by each of the game's Threats.
This includes Myself on Night 20, Scorched Myself on BiD Night 21, and False Savior on FS Night 21.
(52 Checks)`)
}

// BellLogic makes the Pocket Bell a logical requirement
func BellLogic() *options.Definition {
	return options.NewToggle(KeyBellLogic, "Bell Logic", `Enabling this Option will make it so the Pocket Bell Main Item is considered for logic in places such as
the "I'm Prepared" Achievement. If this is disabled, the Pocket Bell will be a Filler Item, meaning there's a chance it may not even show up in the Manual.
(which honestly might be for the better)`)
}

// FlashlightSkins adds flashlight skins as filler items
func FlashlightSkins() *options.Definition {
	return options.NewDefaultOnToggle(KeyFlashlightSkins, "Flashlight Skins", `Enable Flashlight Skins as items.
Note that these are all Filler, so enabling this is completely optional.`)
}

// Declared returns fresh copies of every option the plugin declares
func Declared() []*options.Definition {
	return append([]*options.Definition{TotalCharactersToWinWith()}, registered()...)
}

// registered returns the definitions inserted before options are defined
func registered() []*options.Definition {
	return []*options.Definition{
		StartingDifficulty(),
		SoloMode(),
		HardAchievements(),
		AchievementChallenges(),
		NonAchievementChallenges(),
		Fishsanity(),
		Jumpscaresanity(),
		BellLogic(),
		FlashlightSkins(),
	}
}
