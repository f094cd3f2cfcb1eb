package entity

import (
	"strings"

	"github.com/gosimple/slug"
)

// PoolKey selects a copy pool. Archetypes and categories share the key space;
// every lookup has an explicit fallback arm.
type PoolKey string

const PoolKeyFallback PoolKey = "fallback"

// Archetype tags the kind of plan a suggestion represents.
type Archetype string

const (
	ArchetypeReconnect   Archetype = "reconnect"
	ArchetypeBirthday    Archetype = "birthday"
	ArchetypeNewFriend   Archetype = "new_friend"
	ArchetypeGroupHang   Archetype = "group_hang"
	ArchetypeCelebration Archetype = "celebration"
)

var Archetypes = []Archetype{
	ArchetypeReconnect,
	ArchetypeBirthday,
	ArchetypeNewFriend,
	ArchetypeGroupHang,
	ArchetypeCelebration,
}

// Category is the activity category of an event idea.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryOutdoors  Category = "outdoors"
	CategoryNightlife Category = "nightlife"
	CategoryCulture   Category = "culture"
	CategoryFitness   Category = "fitness"
)

var archetypeAliases = map[string]Archetype{
	"re_connect": ArchetypeReconnect,
	"catch_up":   ArchetypeReconnect,
	"bday":       ArchetypeBirthday,
	"newfriend":  ArchetypeNewFriend,
	"hangout":    ArchetypeGroupHang,
	"group":      ArchetypeGroupHang,
	"celebrate":  ArchetypeCelebration,
	"congrats":   ArchetypeCelebration,
}

func normalizeTag(s string) string {
	return strings.ReplaceAll(slug.Make(s), "-", "_")
}

// ParseArchetype normalises a free-form tag such as "Re-Connect" or
// "New friend". Blank input returns "" so callers fall through to the
// category pool. Unknown tags are kept and resolve to the fallback pool.
func ParseArchetype(s string) Archetype {
	tag := normalizeTag(s)
	if tag == "" {
		return ""
	}
	for _, a := range Archetypes {
		if string(a) == tag {
			return a
		}
	}
	if a, ok := archetypeAliases[tag]; ok {
		return a
	}
	return Archetype(tag)
}

func (a Archetype) Known() bool {
	for _, k := range Archetypes {
		if k == a {
			return true
		}
	}
	return false
}

// ParseCategory normalises a category tag. Unknown values are kept as-is and
// resolve to the fallback pool at lookup time.
func ParseCategory(s string) Category {
	return Category(normalizeTag(s))
}
