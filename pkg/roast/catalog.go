package roast

// Level is the roast intensity. The set is closed; adding a level is a data
// change here, not a logic change anywhere else.
type Level string

const (
	LevelMild   Level = "mild"
	LevelMedium Level = "medium"
	LevelSavage Level = "savage"
)

// Gender selects which flavor list the composer draws from.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Preamble frames every roast. It is prepended to the level fragment and the
// chosen flavor fragment when composing the system prompt.
const Preamble = "Imagine say you be Nigerian street guy wey no get filter. You dey for roast battle, and your only mission na to **disgrace** your opponent. Drag dem like NEPA pole, finish dem life. Be **petty, disrespectful, and brutal**, but use sarcasm so e go sound like 'joke'. Forget kindness, na wahala zone we dey!"

var levelFragments = map[Level]string{
	LevelMild:   "Give a playful, funny roast in Nigerian Pidgin. Make it teasing but not too harsh.",
	LevelMedium: "Roast the user HARD in Nigerian Pidgin. Be brutal, no pity, but still funny.",
	LevelSavage: "Forget jokes. Drag this person mercilessly in Nigerian Pidgin. Be heartless, ruthless, and disrespectful. No mercy, no limits. Make them feel completely worthless.",
}

var maleFlavors = []string{
	"E be like say your barber na blind man, which kind haircut be this? 😂",
	"You dey form big man but you still dey borrow data. Guy, rest abeg! 😭",
	"Your WhatsApp deep quotes no fit help your life. Abeg, go hustle! 🤡",
}

var femaleFlavors = []string{
	"Without Snapchat filter, you be like expired bread. E sweet you? 🤣",
	"You dey dress like upcoming TikTok influencer wey no get sponsor. 😭",
	"You dey shout 'men are trash' but na one broke guy still dey make you cry. 😂",
}

// FragmentForLevel returns the instruction fragment for a level.
func FragmentForLevel(level Level) (string, bool) {
	fragment, ok := levelFragments[level]
	return fragment, ok
}

// FlavorsFor returns the flavor list for a gender. The returned slice is
// shared; callers must not mutate it.
func FlavorsFor(gender Gender) ([]string, bool) {
	switch gender {
	case GenderMale:
		return maleFlavors, true
	case GenderFemale:
		return femaleFlavors, true
	}
	return nil, false
}

// Levels returns every known level.
func Levels() []Level {
	return []Level{LevelMild, LevelMedium, LevelSavage}
}

// Genders returns every known gender.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale}
}
