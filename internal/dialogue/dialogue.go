// Package dialogue picks the panda's chat lines from mood pools derived
// from the pet's stats. The random source is injected so message choice
// is deterministic under test.
package dialogue

import (
	"fmt"

	"github.com/yt2025id-lab/panda-petgame/internal/model"
)

// Mood buckets, checked in priority order.
var (
	hungryLines  = []string{"I'm so hungry! 🤤", "My belly is rumbling... 😭", "Feed me please! 🎋", "I'm starving! 😫"}
	tiredLines   = []string{"So sleepy... 😴", "I need a nap... zzz", "Energy is low... 🥱", "Can't keep my eyes open..."}
	happyLines   = []string{"This is fun! 🎉", "Wheee! I'm so happy! 😄", "Best day ever! 🌟", "Yay! You're amazing! 💕"}
	sadLines     = []string{"I'm bored... 😔", "Can we play? 🥺", "I feel lonely...", "Cheer me up! 😞"}
	dirtyLines   = []string{"I need a bath! 🧼", "I'm so dirty... 🤢", "Can I have a wash? 🛁", "Eww, I'm muddy! 🙈"}
	sickLines    = []string{"I don't feel well... 🤒", "I'm not feeling great...", "Help me feel better! 💊", "My tummy hurts... 😖"}
	defaultLines = []string{"Hello! 👋", "What's up? 🐼", "How are you? 😊", "I'm here! 🎀", "Hiya! 👋", "Nice to see you! 💚"}
)

// ForStats returns a mood-appropriate line for the given stats. rand
// must return values in [0, 1).
func ForStats(stats model.PetStats, rand func() float64) string {
	pool := defaultLines
	switch {
	case stats.Hunger < 30:
		pool = hungryLines
	case stats.Energy < 20:
		pool = tiredLines
	case stats.Fun > 80:
		pool = happyLines
	case stats.Fun < 20:
		pool = sadLines
	case stats.Hygiene < 30:
		pool = dirtyLines
	case stats.Health < 50:
		pool = sickLines
	}
	return pick(pool, rand)
}

// Custom wraps an explicit message in the panda's voice.
func Custom(message string) string {
	return fmt.Sprintf("🐼 %s", message)
}

func pick(pool []string, rand func() float64) string {
	if rand == nil {
		return pool[0]
	}
	i := int(rand() * float64(len(pool)))
	if i >= len(pool) {
		i = len(pool) - 1
	}
	return pool[i]
}
