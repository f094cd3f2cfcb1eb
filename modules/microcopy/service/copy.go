// Package service selects UI copy deterministically. Every function is a pure
// function of its inputs: the same seed always yields the same string, so a
// screen re-rendered within one day never flickers between variants.
package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"social-planner/core/constants"
	"social-planner/core/prng"
	"social-planner/modules/microcopy/entity"
)

const (
	acceptShowRate  = 0.5
	dismissShowRate = 1.0 / 6
	draftVariants   = 3
)

// SeedForDate derives the daily seed from t's calendar date in t's location.
func SeedForDate(t time.Time) uint32 {
	return prng.HashString(t.Format(constants.DateLayout))
}

func lookup(pools map[entity.PoolKey][]string, key entity.PoolKey) []string {
	if pool, ok := pools[key]; ok && len(pool) > 0 {
		return pool
	}
	return pools[entity.PoolKeyFallback]
}

func archetypeKey(a entity.Archetype) entity.PoolKey {
	if a == "" {
		return entity.PoolKeyFallback
	}
	return entity.PoolKey(a)
}

type CompletionInput struct {
	Seed      uint32
	Archetype entity.Archetype
}

type CompletionCopy struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

func GetCompletionCopy(in CompletionInput) CompletionCopy {
	key := archetypeKey(in.Archetype)
	return CompletionCopy{
		Title:    prng.MustPick(in.Seed, "completion_title_"+string(key), lookup(entity.CompletionTitles, key)),
		Subtitle: prng.MustPick(in.Seed, "completion_subtitle", entity.CompletionSubtitles),
	}
}

type AcceptInput struct {
	Seed      uint32
	Archetype entity.Archetype
	Category  entity.Category
}

// GetAcceptFeedback keys the pool by archetype, then category, then fallback.
func GetAcceptFeedback(in AcceptInput) string {
	key := entity.PoolKeyFallback
	switch {
	case in.Archetype != "":
		key = entity.PoolKey(in.Archetype)
	case in.Category != "":
		key = entity.PoolKey(in.Category)
	}
	return prng.MustPick(in.Seed, "accept_"+string(key), lookup(entity.AcceptFeedback, key))
}

// ShouldShowAcceptFeedback throttles feedback to roughly every other accept.
// The first accept of a session (n <= 1) always shows.
func ShouldShowAcceptFeedback(seed uint32, n int) bool {
	if n <= 1 {
		return true
	}
	return prng.Draw(seed, fmt.Sprintf("accept_throttle_%d", n)) < acceptShowRate
}

type DismissInput struct {
	Seed      uint32
	Archetype entity.Archetype
	Index     int
}

// GetDismissFeedback fires for about one dismissal in six.
func GetDismissFeedback(in DismissInput) (string, bool) {
	key := archetypeKey(in.Archetype)
	if prng.Draw(in.Seed, fmt.Sprintf("dismiss_%s_%d", key, in.Index)) >= dismissShowRate {
		return "", false
	}
	return prng.MustPick(in.Seed, fmt.Sprintf("dismiss_pick_%d", in.Index), entity.DismissFeedback), true
}

type DeckHintInput struct {
	Seed      uint32
	Remaining int
}

func deckBucket(remaining int) entity.DeckBucket {
	switch {
	case remaining <= 0:
		return entity.DeckBucketEmpty
	case remaining == 1:
		return entity.DeckBucketLast
	case remaining <= 3:
		return entity.DeckBucketFew
	default:
		return entity.DeckBucketMany
	}
}

func GetDeckHint(in DeckHintInput) string {
	bucket := deckBucket(in.Remaining)
	return prng.MustPick(in.Seed, "deck_hint_"+string(bucket), entity.DeckHints[bucket])
}

type DraftInput struct {
	Seed            uint32
	Archetype       entity.Archetype
	FriendFirstName string
	EventTitle      string
}

var greetings = []string{"Hey!", "Hi!", "Yo!"}

const draftObject = "something fun"

func personalize(template, name, title string) string {
	out := template
	if name != "" {
		for _, g := range greetings {
			if strings.HasPrefix(out, g) {
				out = strings.TrimSuffix(g, "!") + " " + name + "!" + strings.TrimPrefix(out, g)
				break
			}
		}
	}
	if title != "" {
		out = strings.Replace(out, draftObject, title, 1)
	}
	return out
}

// GetDraftMessageVariants returns exactly three distinct message drafts as
// long as the fallback pool has at least three distinct entries.
func GetDraftMessageVariants(in DraftInput) []string {
	key := archetypeKey(in.Archetype)
	pool := lookup(entity.DraftMessages, key)
	fallback := entity.DraftMessages[entity.PoolKeyFallback]
	name := strings.TrimSpace(in.FriendFirstName)
	title := strings.TrimSpace(in.EventTitle)

	out := make([]string, 0, draftVariants)
	seen := make(map[string]bool, draftVariants)
	for i := 0; i < draftVariants; i++ {
		v := personalize(prng.MustPick(in.Seed, fmt.Sprintf("draft_%s_%d", key, i), pool), name, title)
		if seen[v] {
			idx, _ := prng.PickIndex(in.Seed, fmt.Sprintf("dedup_%d", i), len(fallback))
			v = personalize(fallback[idx], name, title)
			for step := 1; seen[v] && step < len(fallback); step++ {
				v = personalize(fallback[(idx+step)%len(fallback)], name, title)
			}
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// FormatReconnectRecencyLabel turns "days since last seen" into a coarse
// label. It never contains digits. Values outside (0, 180] are not trusted
// and produce no label.
func FormatReconnectRecencyLabel(daysSince int) (string, bool) {
	switch {
	case daysSince <= 0, daysSince > 180:
		return "", false
	case daysSince <= 7:
		return "This week", true
	case daysSince <= 14:
		return "Last week", true
	case daysSince <= 30:
		return "A few weeks ago", true
	case daysSince <= 90:
		return "A couple months ago", true
	default:
		return "A while ago", true
	}
}

// FormatCountdownLabel renders the time until the next idea refresh, rounded
// to the nearest five minutes.
func FormatCountdownLabel(remaining time.Duration) (string, bool) {
	if remaining <= 0 {
		return "", false
	}
	total := int(math.Round(remaining.Minutes()/5)) * 5
	if total == 0 {
		return "", false
	}

	h, m := total/60, total%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("New ideas in %dh %dm", h, m), true
	case h > 0:
		return fmt.Sprintf("New ideas in %dh", h), true
	default:
		return fmt.Sprintf("New ideas in %dm", m), true
	}
}
