package skills

import (
	"fmt"
	"strings"
)

// Skill is one trackable in-game exercise. Identity is the name alone:
// every other field can change while the program runs (reps get updated,
// goals may get edited), so equality and map keys must never depend on them.
type Skill struct {
	Name          string     `json:"name"`
	Type          SkillType  `json:"type"`
	Hits          SkillHits  `json:"hits"`
	Damage        [4]int     `json:"damage"`
	Unlocks       [4]int     `json:"unlocks"`
	Hashtags      [3]Hashtag `json:"hashtags"`
	Recharge      [4]int     `json:"recharge"`
	GoalReps      int        `json:"goalReps"`
	CompletedReps int        `json:"completedReps"`
}

// SameAs reports whether the two records describe the same skill,
// i.e. whether their names match.
func (s Skill) SameAs(other Skill) bool {
	return s.Name == other.Name
}

// RepsUntilGoal returns the reps needed until the goal is reached,
// or 0 if it is already reached.
func (s Skill) RepsUntilGoal() int {
	if remaining := s.GoalReps - s.CompletedReps; remaining > 0 {
		return remaining
	}
	return 0
}

// Percent returns the completion percentage, capped at 100.
func (s Skill) Percent() float64 {
	p := float64(s.CompletedReps) / float64(s.GoalReps)
	if p > 1 {
		p = 1
	}
	return p * 100
}

// PercentUncapped is like Percent but keeps going past 100.
func (s Skill) PercentUncapped() float64 {
	return float64(s.CompletedReps) / float64(s.GoalReps) * 100
}

// TranslationKey derives the localization lookup key from the skill name.
func (s Skill) TranslationKey() string {
	name := strings.ToLower(s.Name)
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "&", "and")
	return "skill_" + name
}

// SkillType can be one of:
//   - Arms
//   - Core
//   - Legs
//   - Yoga
type SkillType string

const (
	TypeArms SkillType = "Arms"
	TypeCore SkillType = "Core"
	TypeLegs SkillType = "Legs"
	TypeYoga SkillType = "Yoga"
)

func (st SkillType) String() string {
	return string(st)
}

func (st SkillType) IsValid() bool {
	switch st {
	case TypeArms, TypeCore, TypeLegs, TypeYoga:
		return true
	default:
		return false
	}
}

func ParseSkillType(s string) (SkillType, error) {
	if st := SkillType(s); st.IsValid() {
		return st, nil
	}
	return "", fmt.Errorf("unknown skill type: %q", s)
}

// SkillHits says what a skill does in combat: hit 1, 3 or 5 enemies, or heal.
type SkillHits string

const (
	HitsOne   SkillHits = "One"
	HitsThree SkillHits = "Three"
	HitsFive  SkillHits = "Five"
	HitsHeal  SkillHits = "Heal"
)

func (sh SkillHits) String() string {
	return string(sh)
}

func (sh SkillHits) IsValid() bool {
	switch sh {
	case HitsOne, HitsThree, HitsFive, HitsHeal:
		return true
	default:
		return false
	}
}

func ParseSkillHits(s string) (SkillHits, error) {
	if sh := SkillHits(s); sh.IsValid() {
		return sh, nil
	}
	return "", fmt.Errorf("unknown skill hits: %q", s)
}

// Hashtag describes a muscle group (or similar) worked by a skill.
// A skill has at least one real hashtag and at most three; the remaining
// slots carry HashtagEmpty. Values are the in-game spellings, spaces included.
type Hashtag string

const (
	HashtagEmpty       Hashtag = "#Empty"
	HashtagChest       Hashtag = "#Chest"
	HashtagUpperArms   Hashtag = "#Upper Arms"
	HashtagShoulders   Hashtag = "#Shoulders"
	HashtagTrapezius   Hashtag = "#Trapezius"
	HashtagCore        Hashtag = "#Core"
	HashtagPosture     Hashtag = "#Posture"
	HashtagLegs        Hashtag = "#Legs"
	HashtagGlutes      Hashtag = "#Glutes"
	HashtagLowerBody   Hashtag = "#Lower Body"
	HashtagAbs         Hashtag = "#Abs"
	HashtagWaist       Hashtag = "#Waist"
	HashtagStamina     Hashtag = "#Stamina"
	HashtagBack        Hashtag = "#Back"
	HashtagFlexibility Hashtag = "#Flexibility"
	HashtagAerobic     Hashtag = "#Aerobic"
)

func (h Hashtag) String() string {
	return string(h)
}

func (h Hashtag) IsValid() bool {
	for _, known := range AllHashtags() {
		if h == known {
			return true
		}
	}
	return false
}

func ParseHashtag(s string) (Hashtag, error) {
	if s == "" {
		return HashtagEmpty, nil
	}
	if h := Hashtag(s); h.IsValid() {
		return h, nil
	}
	return "", fmt.Errorf("unknown hashtag: %q", s)
}

// TranslationKey returns the fixed localization lookup key for the hashtag.
func (h Hashtag) TranslationKey() string {
	switch h {
	case HashtagEmpty:
		return "hashtag_empty"
	case HashtagChest:
		return "hashtag_chest"
	case HashtagUpperArms:
		return "hashtag_upper_arms"
	case HashtagShoulders:
		return "hashtag_shoulders"
	case HashtagTrapezius:
		return "hashtag_trapezius"
	case HashtagCore:
		return "hashtag_core"
	case HashtagPosture:
		return "hashtag_posture"
	case HashtagLegs:
		return "hashtag_legs"
	case HashtagGlutes:
		return "hashtag_glutes"
	case HashtagLowerBody:
		return "hashtag_lower_body"
	case HashtagAbs:
		return "hashtag_abs"
	case HashtagWaist:
		return "hashtag_waist"
	case HashtagStamina:
		return "hashtag_stamina"
	case HashtagBack:
		return "hashtag_back"
	case HashtagFlexibility:
		return "hashtag_flexibility"
	case HashtagAerobic:
		return "hashtag_aerobic"
	default:
		return "hashtag_empty"
	}
}

func AllHashtags() []Hashtag {
	return []Hashtag{
		HashtagEmpty,
		HashtagChest,
		HashtagUpperArms,
		HashtagShoulders,
		HashtagTrapezius,
		HashtagCore,
		HashtagPosture,
		HashtagLegs,
		HashtagGlutes,
		HashtagLowerBody,
		HashtagAbs,
		HashtagWaist,
		HashtagStamina,
		HashtagBack,
		HashtagFlexibility,
		HashtagAerobic,
	}
}
