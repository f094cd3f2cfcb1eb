package entity

// Copy pools. Order matters: selection is by index, so reordering or
// inserting entries changes which line a given seed shows.

var CompletionTitles = map[PoolKey][]string{
	PoolKey(ArchetypeReconnect): {
		"Back in touch",
		"That was overdue",
		"Good to reconnect",
		"The gap just closed",
	},
	PoolKey(ArchetypeBirthday): {
		"Birthday sorted",
		"They'll love this",
		"Celebration locked in",
	},
	PoolKey(ArchetypeNewFriend): {
		"New friend, first plan",
		"Off to a good start",
		"From hello to hangout",
	},
	PoolKey(ArchetypeGroupHang): {
		"The crew is set",
		"Group plan locked",
		"Everyone's in",
	},
	PoolKey(ArchetypeCelebration): {
		"Time to celebrate",
		"Cheers to that",
		"Big moment, bigger plans",
	},
	PoolKeyFallback: {
		"Plan made",
		"Nice one",
		"You're all set",
		"Look at you, planning",
	},
}

var CompletionSubtitles = []string{
	"We'll remind everyone before it starts.",
	"Your friends can see it on their calendars now.",
	"Nothing left to do but show up.",
	"We'll nudge anyone who hasn't replied.",
}

var AcceptFeedback = map[PoolKey][]string{
	PoolKey(ArchetypeReconnect): {
		"Love that. Old friends are the best friends.",
		"Reaching out is the hard part. Done.",
		"They'll be glad you did.",
	},
	PoolKey(ArchetypeBirthday): {
		"Birthday hero move.",
		"They're going to feel so loved.",
		"Nothing says happy birthday like a plan.",
	},
	PoolKey(ArchetypeNewFriend): {
		"Friendships start exactly like this.",
		"Bold. We like it.",
		"Great way to break the ice.",
	},
	PoolKey(ArchetypeGroupHang): {
		"Herding friends: achieved.",
		"The group chat thanks you.",
		"Someone had to organize it.",
	},
	PoolKey(ArchetypeCelebration): {
		"Celebrations are better together.",
		"Pop the confetti.",
		"Well deserved.",
	},
	PoolKey(CategoryFood): {
		"Good food, better company.",
		"Hungry already.",
		"Save room for dessert.",
	},
	PoolKey(CategoryOutdoors): {
		"Fresh air unlocked.",
		"Outside is calling.",
		"Don't forget sunscreen.",
	},
	PoolKey(CategoryNightlife): {
		"Night plans secured.",
		"Pace yourself.",
		"The night is young.",
	},
	PoolKey(CategoryCulture): {
		"Culture points earned.",
		"Very refined of you.",
		"Something to talk about after.",
	},
	PoolKey(CategoryFitness): {
		"Sweat now, brunch later.",
		"Workout buddies stick with it.",
		"Stretch first.",
	},
	PoolKeyFallback: {
		"Nice pick.",
		"Good call.",
		"Added to your plans.",
		"That one's a keeper.",
	},
}

var DismissFeedback = []string{
	"Got it, we'll show fewer like this.",
	"Noted. Fresh ideas coming up.",
	"Skipped. Plenty more where that came from.",
}

// DeckHints are keyed by how many ideas are left in the deck.
var DeckHints = map[DeckBucket][]string{
	DeckBucketEmpty: {
		"That's everything for today.",
		"You've seen them all. Check back tomorrow.",
	},
	DeckBucketLast: {
		"Last idea of the day.",
		"One more to go.",
	},
	DeckBucketFew: {
		"Just a couple left.",
		"Almost through today's ideas.",
	},
	DeckBucketMany: {
		"Swipe right on anything that sounds fun.",
		"Swipe left to skip, right to plan.",
		"Tap an idea to see who's free.",
	},
}

// Draft templates. A leading "Hey!", "Hi!" or "Yo!" gains the friend's first
// name; "something fun" becomes the event title.
var DraftMessages = map[PoolKey][]string{
	PoolKey(ArchetypeReconnect): {
		"Hey! It's been way too long. Want to catch up soon?",
		"Hi! I was just thinking about you. Coffee this week?",
		"Yo! We need to do something fun, it's been ages.",
		"Hey! Miss hanging out. Free this weekend?",
	},
	PoolKey(ArchetypeBirthday): {
		"Hey! Your birthday is coming up. Let me take you out for something fun!",
		"Hi! Birthday plans yet? I've got an idea.",
		"Yo! Birthday celebration on me this week?",
	},
	PoolKey(ArchetypeNewFriend): {
		"Hey! Great meeting you. Want to grab a coffee sometime?",
		"Hi! Up for something fun this week?",
		"Hey! We should hang out properly. When are you free?",
	},
	PoolKey(ArchetypeGroupHang): {
		"Hey! Rallying the crew for something fun. You in?",
		"Hi! Group hang this weekend? The more the merrier.",
		"Yo! Getting everyone together soon. Which day works?",
	},
	PoolKey(ArchetypeCelebration): {
		"Hey! We have to celebrate. Drinks on me?",
		"Hi! Congrats! Let's do something fun to mark it.",
		"Yo! Big news deserves a proper celebration.",
	},
	PoolKeyFallback: {
		"Hey! Want to do something fun this week?",
		"Hi! Free sometime soon? Would love to hang.",
		"Yo! Let's make a plan. When works for you?",
		"Hey! Been a minute. Up for something fun?",
		"Hi! Any chance you're around this weekend?",
	},
}

// DeckBucket groups remaining deck sizes for hint selection.
type DeckBucket string

const (
	DeckBucketEmpty DeckBucket = "empty"
	DeckBucketLast  DeckBucket = "last"
	DeckBucketFew   DeckBucket = "few"
	DeckBucketMany  DeckBucket = "many"
)
