package models

// Achievements is the per-user gamification state stored under
// achievements:{userId}. Level is derived from XP: xp/1000 + 1.
type Achievements struct {
	Unlocked []string `json:"unlocked"`
	XP       int      `json:"xp"`
	Level    int      `json:"level"`
	Streak   int      `json:"streak"`
}

// LevelForXP computes the level for a given XP total.
func LevelForXP(xp int) int {
	return xp/1000 + 1
}

// HasUnlocked reports whether the achievement id is already present.
func (a *Achievements) HasUnlocked(id string) bool {
	for _, u := range a.Unlocked {
		if u == id {
			return true
		}
	}
	return false
}
